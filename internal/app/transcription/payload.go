package transcription

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Payload is the uniform mapping returned to callers. It always carries at
// least a "text" key; provider-specific fields pass through unchanged.
type Payload = map[string]any

// Dumper is implemented by results that can emit their complete structured
// form. When present it wins over every other conversion.
type Dumper interface {
	DumpPayload() Payload
}

// ToPayload normalizes an arbitrary provider result into a Payload. The
// fallback order is fixed: structured dump, then an existing mapping, then a
// text capability, then the string form of the whole result. An earlier case
// always wins; later cases are never consulted.
func ToPayload(result any) Payload {
	switch v := result.(type) {
	case Dumper:
		return v.DumpPayload()
	case openai.AudioResponse:
		return dumpAudioResponse(v)
	case map[string]any:
		return v
	case interface{ Transcript() string }:
		return Payload{"text": v.Transcript()}
	default:
		return Payload{"text": fmt.Sprint(result)}
	}
}

// TranscriptText extracts the transcript from a normalized payload. A payload
// whose "text" key is missing or not a string is a response-shape error,
// distinct from provider failures.
func TranscriptText(payload Payload) (string, error) {
	v, ok := payload["text"]
	if !ok {
		return "", ErrMissingText
	}
	text, ok := v.(string)
	if !ok {
		return "", ErrMissingText
	}
	return text, nil
}

// dumpAudioResponse is the structured dump for the provider's typed response.
// Optional fields appear only when the provider populated them; "text" is
// always present.
func dumpAudioResponse(resp openai.AudioResponse) Payload {
	payload := Payload{"text": resp.Text}
	if resp.Task != "" {
		payload["task"] = resp.Task
	}
	if resp.Language != "" {
		payload["language"] = resp.Language
	}
	if resp.Duration != 0 {
		payload["duration"] = resp.Duration
	}
	if len(resp.Segments) > 0 {
		payload["segments"] = resp.Segments
	}
	if len(resp.Words) > 0 {
		payload["words"] = resp.Words
	}
	return payload
}
