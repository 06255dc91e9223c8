package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

func TestTagger_MissingFile(t *testing.T) {
	tagger := NewTagger()
	err := tagger.Tag(filepath.Join(t.TempDir(), "gone.mp3"), "Title", "Artist")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTagger_WritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")

	// Minimal empty ID3v2.4 header so the parser has something to chew on.
	header := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}
	if err := os.WriteFile(path, header, 0644); err != nil {
		t.Fatalf("failed to seed mp3: %v", err)
	}

	tagger := NewTagger()
	if err := tagger.Tag(path, "Song Title", "somecreator"); err != nil {
		t.Fatalf("Tag failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to reopen mp3: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "Song Title" {
		t.Errorf("Title() = %q, expected Song Title", tag.Title())
	}
	if tag.Artist() != "somecreator" {
		t.Errorf("Artist() = %q, expected somecreator", tag.Artist())
	}
}
