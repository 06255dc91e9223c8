package audio

// Package audio post-processes extracted MP3 files: a best-effort ID3 tag
// pass writing the source title and creator so players show something better
// than the raw filename.
