package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
)

// Tagger writes ID3 frames to extracted MP3 files.
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag sets the title (TIT2) and artist (TPE1) frames on the MP3 at path.
// Empty values leave the corresponding frame untouched; existing frames
// other than the written ones are preserved.
func (t *Tagger) Tag(path, title, artist string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	return tag.Save()
}
