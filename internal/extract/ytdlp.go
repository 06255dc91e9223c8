package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"
)

// Extraction defaults shared by probe and download calls.
const (
	// OutputTemplate names downloaded files after the source title.
	OutputTemplate = "%(title)s.%(ext)s"

	// AudioCodec and AudioQuality drive the audio extraction postprocessor.
	AudioCodec   = "mp3"
	AudioQuality = "192K"

	// AudioSampleRateArgs pins extracted audio to a fixed sample rate.
	AudioSampleRateArgs = "ffmpeg:-ar 44100"
)

// Install makes sure a usable yt-dlp binary is available, downloading one
// when the host has none.
func Install(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

// Client runs yt-dlp with a fixed baseline configuration: quiet, single
// video only, certificate checks off, geo-restriction bypass on.
type Client struct{}

// NewClient returns a ready extraction client. The zero value is usable; the
// constructor exists for symmetry with the other services.
func NewClient() *Client {
	return &Client{}
}

func baseCommand() *ytdlp.Command {
	return ytdlp.New().
		Quiet().
		NoPlaylist().
		NoCheckCertificates().
		GeoBypass()
}

// Probe resolves url in metadata-only mode, without downloading anything.
// Failures carry the extractor's message and surface to the caller verbatim.
func (c *Client) Probe(ctx context.Context, url string) (*Info, error) {
	cmd := baseCommand().
		SkipDownload().
		DumpSingleJSON()

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extract info: %w", err)
	}
	return decodeInfo(res.Stdout)
}

// Download fetches the format selected by selector into dir, naming the file
// after the source title. With audio set the result is post-processed into
// an MP3 container at the fixed quality and sample rate. The returned info
// carries the title and container of the written file.
func (c *Client) Download(ctx context.Context, url, dir, selector string, audio bool) (*Info, error) {
	cmd := baseCommand().
		NoSimulate().
		DumpSingleJSON().
		ForceOverwrites().
		Output(filepath.Join(dir, OutputTemplate)).
		Format(selector)

	if audio {
		cmd = cmd.
			ExtractAudio().
			AudioFormat(AudioCodec).
			AudioQuality(AudioQuality).
			PostProcessorArgs(AudioSampleRateArgs)
	}

	res, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	return decodeInfo(res.Stdout)
}

func decodeInfo(stdout string) (*Info, error) {
	var info Info
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		return nil, fmt.Errorf("decode extractor output: %w", err)
	}
	return &info, nil
}
