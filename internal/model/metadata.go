package model

// DefaultTitle replaces a missing title in extractor output.
const DefaultTitle = "TikTok Video"

// VideoMetadata aggregates everything the API reports about one video. It is
// assembled once per metadata request and never mutated afterwards.
type VideoMetadata struct {
	ID                     string        `json:"id"`
	Title                  string        `json:"title"`
	Creator                string        `json:"creator,omitempty"`
	Description            string        `json:"description,omitempty"`
	Duration               float64       `json:"duration,omitempty"`
	Thumbnail              string        `json:"thumbnail,omitempty"`
	WebpageURL             string        `json:"webpage_url"`
	Formats                []VideoFormat `json:"formats"`
	AudioFormats           []AudioFormat `json:"audio_formats"`
	WatermarkFreeAvailable bool          `json:"watermark_free_available"`
}
