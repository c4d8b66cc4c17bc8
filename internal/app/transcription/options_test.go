package transcription

import (
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestOptionsAudioRequest(t *testing.T) {
	audio := strings.NewReader("fake audio")

	tests := []struct {
		name string
		opts Options
		want openai.AudioRequest
	}{
		{
			name: "model only, optional fields omitted",
			opts: Options{Model: "gpt-4o-transcribe"},
			want: openai.AudioRequest{Model: "gpt-4o-transcribe"},
		},
		{
			name: "response format set when present",
			opts: Options{Model: "whisper-1", ResponseFormat: "verbose_json"},
			want: openai.AudioRequest{Model: "whisper-1", Format: openai.AudioResponseFormatVerboseJSON},
		},
		{
			name: "prompt set when present",
			opts: Options{Model: "whisper-1", Prompt: "names: Walpole"},
			want: openai.AudioRequest{Model: "whisper-1", Prompt: "names: Walpole"},
		},
		{
			name: "all fields",
			opts: Options{Model: "gpt-4o-mini-transcribe", ResponseFormat: "srt", Prompt: "meeting"},
			want: openai.AudioRequest{Model: "gpt-4o-mini-transcribe", Format: openai.AudioResponseFormatSRT, Prompt: "meeting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.AudioRequest(audio, "clip.mp3")

			assert.Equal(t, audio, got.Reader)
			assert.Equal(t, "clip.mp3", got.FilePath)
			assert.Equal(t, tt.want.Model, got.Model)
			assert.Equal(t, tt.want.Format, got.Format)
			assert.Equal(t, tt.want.Prompt, got.Prompt)
		})
	}
}

func TestOptionsAudioRequestDeterministic(t *testing.T) {
	opts := Options{Model: "whisper-1", ResponseFormat: "json", Prompt: "p"}
	audio := strings.NewReader("bytes")

	first := opts.AudioRequest(audio, "a.mp3")
	second := opts.AudioRequest(audio, "a.mp3")
	assert.Equal(t, first, second)
}

func TestValidResponseFormat(t *testing.T) {
	for _, format := range ResponseFormats {
		assert.True(t, ValidResponseFormat(format), format)
	}
	assert.False(t, ValidResponseFormat("yaml"))
	assert.False(t, ValidResponseFormat(""))
	assert.False(t, ValidResponseFormat("JSON"))
}
