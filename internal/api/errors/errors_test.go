package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"audio-transcriber/internal/app/transcription"
)

func TestFromTranscription(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
		wantInMsg  string
	}{
		{
			name:       "unsupported content type",
			err:        &transcription.UnsupportedContentTypeError{ContentType: "video/avi"},
			wantKind:   KindUnsupportedMedia,
			wantStatus: http.StatusUnsupportedMediaType,
			wantInMsg:  "video/avi",
		},
		{
			name:       "empty upload",
			err:        transcription.ErrEmptyUpload,
			wantKind:   KindBadRequest,
			wantStatus: http.StatusBadRequest,
			wantInMsg:  "empty",
		},
		{
			name:       "payload too large",
			err:        &transcription.TooLargeError{Size: 30 << 20, MaxBytes: 25 << 20},
			wantKind:   KindPayloadTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantInMsg:  "30.0 MB",
		},
		{
			name:       "missing path",
			err:        fmt.Errorf("%w: /tmp/gone.mp3", transcription.ErrAudioNotFound),
			wantKind:   KindBadRequest,
			wantStatus: http.StatusBadRequest,
			wantInMsg:  "/tmp/gone.mp3",
		},
		{
			name:       "provider failure keeps the original message",
			err:        &transcription.ProviderError{Err: stderrors.New("401 invalid api key")},
			wantKind:   KindBadGateway,
			wantStatus: http.StatusBadGateway,
			wantInMsg:  "401 invalid api key",
		},
		{
			name:       "missing text is a distinct gateway failure",
			err:        transcription.ErrMissingText,
			wantKind:   KindBadGateway,
			wantStatus: http.StatusBadGateway,
			wantInMsg:  "text",
		},
		{
			name:       "unknown errors stay internal",
			err:        stderrors.New("boom"),
			wantKind:   KindInternal,
			wantStatus: http.StatusInternalServerError,
			wantInMsg:  "Internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromTranscription(tt.err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus())
			assert.Contains(t, apiErr.Message, tt.wantInMsg)
		})
	}
}

func TestProviderErrorMessageVerbatim(t *testing.T) {
	cause := stderrors.New("rate limit exceeded, retry after 20s")
	apiErr := FromTranscription(&transcription.ProviderError{Err: cause})
	assert.Equal(t, cause.Error(), apiErr.Message)
}
