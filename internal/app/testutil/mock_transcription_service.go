package testutil

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"

	"audio-transcriber/internal/app/transcription"
)

// MockTranscriptionService is a testify mock of the API layer's transcription
// service interface.
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) TranscribeStream(ctx context.Context, audio io.Reader, filename string, opts transcription.Options) (openai.AudioResponse, error) {
	args := m.Called(ctx, audio, filename, opts)
	return args.Get(0).(openai.AudioResponse), args.Error(1)
}

func (m *MockTranscriptionService) TranscribePath(ctx context.Context, audioPath string, opts transcription.Options) (openai.AudioResponse, error) {
	args := m.Called(ctx, audioPath, opts)
	return args.Get(0).(openai.AudioResponse), args.Error(1)
}
