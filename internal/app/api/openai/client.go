package openai

import (
	openai "github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/config"
)

// NewClient creates the OpenAI API client from the process configuration.
// Timeouts and retries are whatever the SDK's HTTP client has built in; this
// layer adds no policy of its own.
func NewClient(cfg *config.Config) *openai.Client {
	return openai.NewClient(cfg.APIKey)
}
