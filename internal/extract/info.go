package extract

import (
	"fmt"
	"strings"

	"github.com/illestjason29/videodownloader/internal/model"
)

// CodecNone is yt-dlp's sentinel for an absent codec.
const CodecNone = "none"

// Watermark markers follow TikTok's metadata conventions. Detection is best
// effort and may miss watermark-free variants.
const (
	NoWatermarkNote   = "nowatermark"
	NoWatermarkSuffix = "nowm"
)

// Info is the narrow view of a yt-dlp info dump. Only the fields the API
// maps are decoded; everything else in the JSON is ignored and absent fields
// keep their zero values.
type Info struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Uploader           string      `json:"uploader"`
	Creator            string      `json:"creator"`
	Description        string      `json:"description"`
	Duration           float64     `json:"duration"`
	Thumbnail          string      `json:"thumbnail"`
	WebpageURL         string      `json:"webpage_url"`
	WebpageURLBasename string      `json:"webpage_url_basename"`
	Ext                string      `json:"ext"`
	Formats            []RawFormat `json:"formats"`
}

// RawFormat is one entry of the info dump's format list. Sizes decode as
// floats because yt-dlp reports approximate sizes fractionally.
type RawFormat struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	FormatNote     string  `json:"format_note"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	FPS            float64 `json:"fps"`
	Filesize       float64 `json:"filesize"`
	FilesizeApprox float64 `json:"filesize_approx"`
	TBR            float64 `json:"tbr"`
	ABR            float64 `json:"abr"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Preference     int     `json:"preference"`
}

// IsVideoOnly reports whether the descriptor carries video without audio.
func (f *RawFormat) IsVideoOnly() bool {
	return f.ACodec == CodecNone && f.VCodec != "" && f.VCodec != CodecNone
}

// IsAudioOnly reports whether the descriptor carries audio without video.
func (f *RawFormat) IsAudioOnly() bool {
	return f.VCodec == CodecNone && f.ACodec != "" && f.ACodec != CodecNone
}

// Resolution derives a display resolution: "WxH" when both dimensions are
// known, "Hp" when only the height is, otherwise empty.
func (f *RawFormat) Resolution() string {
	if f.Width > 0 && f.Height > 0 {
		return fmt.Sprintf("%dx%d", f.Width, f.Height)
	}
	if f.Height > 0 {
		return fmt.Sprintf("%dp", f.Height)
	}
	return ""
}

// Size prefers the exact reported size over the approximate one.
func (f *RawFormat) Size() int64 {
	if f.Filesize > 0 {
		return int64(f.Filesize)
	}
	return int64(f.FilesizeApprox)
}

func (f *RawFormat) toVideo() model.VideoFormat {
	return model.VideoFormat{
		FormatID:   f.FormatID,
		Ext:        f.Ext,
		FormatNote: f.FormatNote,
		Resolution: f.Resolution(),
		FPS:        f.FPS,
		Filesize:   f.Size(),
		TBR:        f.TBR,
		VCodec:     f.VCodec,
		ACodec:     f.ACodec,
		Preference: f.Preference,
	}
}

func (f *RawFormat) toAudio() model.AudioFormat {
	return model.AudioFormat{
		FormatID:   f.FormatID,
		Ext:        f.Ext,
		ABR:        f.ABR,
		Filesize:   f.Size(),
		FormatNote: f.FormatNote,
	}
}

// CreatorName returns the uploader, falling back to the creator field.
func (i *Info) CreatorName() string {
	if i.Uploader != "" {
		return i.Uploader
	}
	return i.Creator
}

// Metadata partitions the format list into video-only and audio-only entries
// and assembles the metadata record. Descriptors that are muxed or carry no
// codec at all are dropped. originalURL backfills webpage_url when the
// extractor does not report one.
func (i *Info) Metadata(originalURL string) *model.VideoMetadata {
	videoFormats := []model.VideoFormat{}
	audioFormats := []model.AudioFormat{}
	watermarkFree := false

	for idx := range i.Formats {
		f := &i.Formats[idx]
		switch {
		case f.IsVideoOnly():
			videoFormats = append(videoFormats, f.toVideo())
			if strings.Contains(strings.ToLower(f.FormatNote), NoWatermarkNote) {
				watermarkFree = true
			}
		case f.IsAudioOnly():
			audioFormats = append(audioFormats, f.toAudio())
		}
	}

	if strings.HasSuffix(i.WebpageURLBasename, NoWatermarkSuffix) {
		watermarkFree = true
	}

	title := i.Title
	if title == "" {
		title = model.DefaultTitle
	}
	webpageURL := i.WebpageURL
	if webpageURL == "" {
		webpageURL = originalURL
	}

	return &model.VideoMetadata{
		ID:                     i.ID,
		Title:                  title,
		Creator:                i.CreatorName(),
		Description:            i.Description,
		Duration:               i.Duration,
		Thumbnail:              i.Thumbnail,
		WebpageURL:             webpageURL,
		Formats:                videoFormats,
		AudioFormats:           audioFormats,
		WatermarkFreeAvailable: watermarkFree,
	}
}
