package services

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"audio-transcriber/internal/api/v1/dto"
	"audio-transcriber/internal/app/transcription"
)

// TranscriptionService is the handlers' view of the transcription core.
// *transcription.Service satisfies it.
type TranscriptionService interface {
	TranscribeStream(ctx context.Context, audio io.Reader, filename string, opts transcription.Options) (openai.AudioResponse, error)
	TranscribePath(ctx context.Context, audioPath string, opts transcription.Options) (openai.AudioResponse, error)
}

// InsightsService generates discussion insights from a transcript.
type InsightsService interface {
	Insights(ctx context.Context) (*dto.InsightsResponse, error)
}
