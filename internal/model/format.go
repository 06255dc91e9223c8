package model

// VideoFormat describes one downloadable video-only stream reported by the
// extractor. Values are fixed at construction; optional fields are omitted
// from the JSON body when unknown.
type VideoFormat struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	FormatNote string  `json:"format_note,omitempty"`
	Resolution string  `json:"resolution,omitempty"`
	FPS        float64 `json:"fps,omitempty"`
	Filesize   int64   `json:"filesize,omitempty"`
	TBR        float64 `json:"tbr,omitempty"`
	VCodec     string  `json:"vcodec,omitempty"`
	ACodec     string  `json:"acodec,omitempty"`
	Preference int     `json:"preference,omitempty"`
}

// AudioFormat describes one audio-only extraction option.
type AudioFormat struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	ABR        float64 `json:"abr,omitempty"`
	Filesize   int64   `json:"filesize,omitempty"`
	FormatNote string  `json:"format_note,omitempty"`
}
