package download

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/illestjason29/videodownloader/internal/extract"
	"github.com/illestjason29/videodownloader/internal/model"
	"github.com/illestjason29/videodownloader/internal/platform"
)

// Default values
const (
	// TempDirPrefix names per-request download directories.
	TempDirPrefix = "tikloader-"

	// AudioExt is the container every audio extraction ends up in.
	AudioExt = "mp3"

	// DefaultAudioSelector is used when the caller names no audio format.
	DefaultAudioSelector = "bestaudio/best"
)

// Result is one successfully downloaded artifact. The caller owns Dir and
// must call Cleanup once the file has been served.
type Result struct {
	Path  string
	Dir   string
	Ext   string
	Title string
}

// Cleanup removes the directory holding the artifact. Safe to call when the
// directory is already gone.
func (r *Result) Cleanup() {
	platform.RemoveDirectory(r.Dir)
}

// Service orchestrates metadata fetches and downloads for the HTTP surface.
// Requests share no state: each download gets a uniquely named directory, so
// concurrent requests never contend.
type Service struct {
	extractor Extractor
	tagger    Tagger
	tempRoot  string
}

// NewService creates the download service. tagger may be nil to skip the
// audio tag pass; an empty tempRoot falls back to the system temp directory.
func NewService(extractor Extractor, tagger Tagger, tempRoot string) *Service {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	return &Service{
		extractor: extractor,
		tagger:    tagger,
		tempRoot:  tempRoot,
	}
}

// Metadata probes url and assembles the metadata record without downloading
// anything. Extraction failures surface unchanged; there are no retries.
func (s *Service) Metadata(ctx context.Context, url string) (*model.VideoMetadata, error) {
	info, err := s.extractor.Probe(ctx, url)
	if err != nil {
		return nil, err
	}
	return info.Metadata(url), nil
}

// Download fetches the format selected by selector and returns the local
// file together with the source title.
func (s *Service) Download(ctx context.Context, url, selector string) (*Result, error) {
	return s.fetch(ctx, url, selector, false)
}

// Audio extracts the matching audio track as MP3. selector may be empty, in
// which case the best available audio is picked, falling back to the best
// overall format.
func (s *Service) Audio(ctx context.Context, url, selector string) (*Result, error) {
	if selector == "" {
		selector = DefaultAudioSelector
	}
	return s.fetch(ctx, url, selector, true)
}

func (s *Service) fetch(ctx context.Context, url, selector string, audio bool) (*Result, error) {
	dir := filepath.Join(s.tempRoot, TempDirPrefix+uuid.NewString())
	if err := os.MkdirAll(dir, platform.DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}

	info, err := s.extractor.Download(ctx, url, dir, selector, audio)
	if err != nil {
		platform.RemoveDirectory(dir)
		return nil, err
	}

	path, ok := platform.LocateDownload(dir, expectedExt(info, selector, audio))
	if !ok {
		platform.RemoveDirectory(dir)
		return nil, ErrNoOutput
	}

	title := info.Title
	if title == "" {
		title = filepath.Base(path)
	}

	if audio && s.tagger != nil {
		if err := s.tagger.Tag(path, title, info.CreatorName()); err != nil {
			log.Printf("tagging %s failed: %v", path, err)
		}
	}

	return &Result{
		Path:  path,
		Dir:   dir,
		Ext:   strings.TrimPrefix(filepath.Ext(path), "."),
		Title: title,
	}, nil
}

// expectedExt picks the extension the output file should carry: always mp3
// for audio extractions, else whatever the extractor reported, else the
// trailing component of the format selector.
func expectedExt(info *extract.Info, selector string, audio bool) string {
	if audio {
		return AudioExt
	}
	if info.Ext != "" {
		return info.Ext
	}
	parts := strings.Split(selector, "/")
	return parts[len(parts)-1]
}
