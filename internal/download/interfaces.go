package download

import (
	"context"

	"github.com/illestjason29/videodownloader/internal/extract"
	"github.com/illestjason29/videodownloader/internal/model"
)

// Extractor is the slice of the yt-dlp client the service depends on.
type Extractor interface {
	Probe(ctx context.Context, url string) (*extract.Info, error)
	Download(ctx context.Context, url, dir, selector string, audio bool) (*extract.Info, error)
}

// Tagger post-processes extracted audio files. Tagging is best effort; the
// service logs and otherwise ignores its errors.
type Tagger interface {
	Tag(path, title, artist string) error
}

// Downloader is the surface the HTTP handlers call.
type Downloader interface {
	Metadata(ctx context.Context, url string) (*model.VideoMetadata, error)
	Download(ctx context.Context, url, selector string) (*Result, error)
	Audio(ctx context.Context, url, selector string) (*Result, error)
}
