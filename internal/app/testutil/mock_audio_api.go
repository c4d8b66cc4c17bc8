package testutil

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
)

// MockAudioAPI is a testify mock for the provider seam used by the
// transcription service.
type MockAudioAPI struct {
	mock.Mock
}

func (m *MockAudioAPI) CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(openai.AudioResponse), args.Error(1)
}
