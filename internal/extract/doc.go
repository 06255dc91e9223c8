package extract

// Package extract wraps the yt-dlp binary (via go-ytdlp) behind probe and
// download calls and narrows its open-ended JSON output to the handful of
// fields the API reports.
