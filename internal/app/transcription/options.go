package transcription

import (
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// ResponseFormats lists the response formats accepted at the entry points.
// Availability varies by model; the value is passed through to the provider.
var ResponseFormats = []string{"json", "text", "srt", "verbose_json", "vtt", "diarized_json"}

// ValidResponseFormat reports whether format is one of ResponseFormats.
func ValidResponseFormat(format string) bool {
	for _, f := range ResponseFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Options configures a single transcription request. The zero value of an
// optional field means the provider default applies.
type Options struct {
	Model          string
	ResponseFormat string
	Prompt         string
}

// AudioRequest builds the provider request for the given audio stream. The
// audio handle and model are always set; response format and prompt are set
// only when non-empty, so the provider sees no key at all for omitted
// options. Identical inputs always yield an identical request.
func (o Options) AudioRequest(audio io.Reader, filename string) openai.AudioRequest {
	req := openai.AudioRequest{
		Model:    o.Model,
		Reader:   audio,
		FilePath: filename,
	}
	if o.ResponseFormat != "" {
		req.Format = openai.AudioResponseFormat(o.ResponseFormat)
	}
	if o.Prompt != "" {
		req.Prompt = o.Prompt
	}
	return req
}
