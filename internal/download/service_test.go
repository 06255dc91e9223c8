package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/illestjason29/videodownloader/internal/extract"
)

// fakeExtractor drops configurable files into the download directory and
// records the arguments it was called with.
type fakeExtractor struct {
	info      *extract.Info
	err       error
	files     []string
	lastURL   string
	lastDir   string
	lastSel   string
	lastAudio bool
}

func (f *fakeExtractor) Probe(_ context.Context, url string) (*extract.Info, error) {
	f.lastURL = url
	return f.info, f.err
}

func (f *fakeExtractor) Download(_ context.Context, url, dir, selector string, audio bool) (*extract.Info, error) {
	f.lastURL = url
	f.lastDir = dir
	f.lastSel = selector
	f.lastAudio = audio
	if f.err != nil {
		return nil, f.err
	}
	for _, name := range f.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("media"), 0644); err != nil {
			return nil, err
		}
	}
	return f.info, nil
}

type fakeTagger struct {
	path   string
	title  string
	artist string
	err    error
}

func (f *fakeTagger) Tag(path, title, artist string) error {
	f.path = path
	f.title = title
	f.artist = artist
	return f.err
}

func TestService_Metadata(t *testing.T) {
	ext := &fakeExtractor{info: &extract.Info{
		ID:    "42",
		Title: "Clip",
		Formats: []extract.RawFormat{
			{FormatID: "v0", ACodec: "none", VCodec: "h264"},
			{FormatID: "v1", ACodec: "none", VCodec: "h265"},
			{FormatID: "a0", ACodec: "aac", VCodec: "none"},
		},
	}}
	svc := NewService(ext, nil, t.TempDir())

	meta, err := svc.Metadata(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if meta.ID != "42" || meta.Title != "Clip" {
		t.Errorf("unexpected id/title: %s / %s", meta.ID, meta.Title)
	}
	if len(meta.Formats) != 2 || len(meta.AudioFormats) != 1 {
		t.Errorf("partitioned %d video / %d audio formats, expected 2 / 1",
			len(meta.Formats), len(meta.AudioFormats))
	}
	if ext.lastURL != "https://example.com/v" {
		t.Errorf("probe called with %q", ext.lastURL)
	}
}

func TestService_Metadata_ExtractionFailure(t *testing.T) {
	wantErr := errors.New("Unsupported URL: https://example.com/v")
	svc := NewService(&fakeExtractor{err: wantErr}, nil, t.TempDir())

	if _, err := svc.Metadata(context.Background(), "https://example.com/v"); !errors.Is(err, wantErr) {
		t.Errorf("expected extraction error passthrough, got %v", err)
	}
}

func TestService_Download_Success(t *testing.T) {
	root := t.TempDir()
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Clip", Ext: "mp4"},
		files: []string{"Clip.mp4"},
	}
	svc := NewService(ext, nil, root)

	res, err := svc.Download(context.Background(), "https://example.com/v", "download-0")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if filepath.Base(res.Path) != "Clip.mp4" || res.Ext != "mp4" || res.Title != "Clip" {
		t.Errorf("unexpected result: %+v", res)
	}
	if ext.lastSel != "download-0" || ext.lastAudio {
		t.Errorf("extractor called with selector=%q audio=%v", ext.lastSel, ext.lastAudio)
	}
	if ext.lastDir != res.Dir {
		t.Errorf("result dir %s does not match extraction dir %s", res.Dir, ext.lastDir)
	}

	res.Cleanup()
	if _, err := os.Stat(res.Dir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after cleanup: %s", res.Dir)
	}
}

func TestService_Download_ExtFallbackFromSelector(t *testing.T) {
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Clip"},
		files: []string{"Clip.webm"},
	}
	svc := NewService(ext, nil, t.TempDir())

	res, err := svc.Download(context.Background(), "u", "bestvideo/webm")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer res.Cleanup()

	if res.Ext != "webm" {
		t.Errorf("Ext = %q, expected webm via selector fallback", res.Ext)
	}
}

func TestService_Download_FallbackToAnyFile(t *testing.T) {
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Clip", Ext: "mp4"},
		files: []string{"Clip.mkv"},
	}
	svc := NewService(ext, nil, t.TempDir())

	res, err := svc.Download(context.Background(), "u", "download-0")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer res.Cleanup()

	if res.Ext != "mkv" {
		t.Errorf("Ext = %q, expected mkv from the only file present", res.Ext)
	}
}

func TestService_Download_ExtractionFailureRemovesDir(t *testing.T) {
	root := t.TempDir()
	ext := &fakeExtractor{err: errors.New("network unreachable")}
	svc := NewService(ext, nil, root)

	if _, err := svc.Download(context.Background(), "u", "download-0"); err == nil {
		t.Fatal("expected extraction error")
	}
	if _, err := os.Stat(ext.lastDir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after failed download: %s", ext.lastDir)
	}
}

func TestService_Download_NoOutputRemovesDir(t *testing.T) {
	root := t.TempDir()
	ext := &fakeExtractor{info: &extract.Info{Title: "Clip", Ext: "mp4"}}
	svc := NewService(ext, nil, root)

	_, err := svc.Download(context.Background(), "u", "download-0")
	if !errors.Is(err, ErrNoOutput) {
		t.Fatalf("expected ErrNoOutput, got %v", err)
	}
	if _, err := os.Stat(ext.lastDir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after missing artifact: %s", ext.lastDir)
	}
}

func TestService_Audio_DefaultSelectorAndTagging(t *testing.T) {
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Song", Uploader: "somecreator"},
		files: []string{"Song.mp3"},
	}
	tagger := &fakeTagger{}
	svc := NewService(ext, tagger, t.TempDir())

	res, err := svc.Audio(context.Background(), "u", "")
	if err != nil {
		t.Fatalf("Audio failed: %v", err)
	}
	defer res.Cleanup()

	if ext.lastSel != DefaultAudioSelector || !ext.lastAudio {
		t.Errorf("extractor called with selector=%q audio=%v", ext.lastSel, ext.lastAudio)
	}
	if res.Ext != "mp3" {
		t.Errorf("Ext = %q, expected mp3", res.Ext)
	}
	if tagger.path != res.Path || tagger.title != "Song" || tagger.artist != "somecreator" {
		t.Errorf("tagger called with path=%q title=%q artist=%q", tagger.path, tagger.title, tagger.artist)
	}
}

func TestService_Audio_TaggerFailureIgnored(t *testing.T) {
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Song"},
		files: []string{"Song.mp3"},
	}
	svc := NewService(ext, &fakeTagger{err: errors.New("not an mp3")}, t.TempDir())

	res, err := svc.Audio(context.Background(), "u", "audio-0")
	if err != nil {
		t.Fatalf("Audio must succeed despite tagger failure: %v", err)
	}
	res.Cleanup()
}

func TestService_Audio_PrefersMP3OverSiblings(t *testing.T) {
	// yt-dlp leaves the pre-extraction container next to the MP3 when
	// keep-video style options sneak in; the MP3 must still win.
	ext := &fakeExtractor{
		info:  &extract.Info{Title: "Song", Ext: "m4a"},
		files: []string{"Song.m4a", "Song.mp3"},
	}
	svc := NewService(ext, nil, t.TempDir())

	res, err := svc.Audio(context.Background(), "u", "audio-0")
	if err != nil {
		t.Fatalf("Audio failed: %v", err)
	}
	defer res.Cleanup()

	if res.Ext != "mp3" {
		t.Errorf("Ext = %q, expected the extracted mp3", res.Ext)
	}
}
