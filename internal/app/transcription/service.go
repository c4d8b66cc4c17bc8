package transcription

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// AudioAPI is the provider seam. *openai.Client satisfies it.
type AudioAPI interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Service converts audio inputs to text through the provider. Each call is a
// single independent unit of work; callers construct one request, get one
// provider call, and never share mutable state.
type Service struct {
	api     AudioAPI
	uploads UploadConstraint
}

// NewService creates a transcription service backed by the given provider.
func NewService(api AudioAPI, uploads UploadConstraint) *Service {
	return &Service{
		api:     api,
		uploads: uploads,
	}
}

// TranscribeStream transcribes audio from an open byte stream. The raw
// provider response is returned unmodified; any provider failure comes back
// as a *ProviderError carrying the original message, without retries.
func (s *Service) TranscribeStream(ctx context.Context, audio io.Reader, filename string, opts Options) (openai.AudioResponse, error) {
	resp, err := s.api.CreateTranscription(ctx, opts.AudioRequest(audio, filename))
	if err != nil {
		return openai.AudioResponse{}, &ProviderError{Err: err}
	}
	return resp, nil
}

// TranscribePath transcribes audio from a file-system path. The path is
// validated before the file is opened; the handle is closed on every exit
// path.
func (s *Service) TranscribePath(ctx context.Context, audioPath string, opts Options) (openai.AudioResponse, error) {
	if _, err := s.uploads.CheckPath(audioPath); err != nil {
		return openai.AudioResponse{}, err
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return openai.AudioResponse{}, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	return s.TranscribeStream(ctx, file, filepath.Base(audioPath), opts)
}
