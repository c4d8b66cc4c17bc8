package transcription

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation failures.
var (
	ErrEmptyUpload   = errors.New("uploaded file is empty")
	ErrAudioNotFound = errors.New("audio file not found")
	ErrNotAFile      = errors.New("expected a file")
	ErrMissingText   = errors.New("response missing `text` field")
)

// UnsupportedContentTypeError is returned when an upload declares a content
// type outside the allow-list.
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type: %s", e.ContentType)
}

// TooLargeError is returned when the input exceeds the upload ceiling.
type TooLargeError struct {
	Size     int64
	MaxBytes int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file is %.1f MB; limit is %d MB. Please compress or split it",
		float64(e.Size)/(1<<20), e.MaxBytes>>20)
}

// ProviderError wraps any failure from the provider call. The cause is kept
// verbatim and never classified further.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("transcription failed: %s", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
