package transcription

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"audio-transcriber/internal/config"
)

// UploadConstraint enforces the upload rules (size ceiling, content-type
// allow-list, non-empty) before any network cost is incurred. It decides on
// metadata only and never inspects audio content.
type UploadConstraint struct {
	MaxBytes int64
	allowed  map[string]struct{}
}

// NewUploadConstraint builds the constraint from the process configuration.
func NewUploadConstraint(cfg *config.Config) UploadConstraint {
	allowed := make(map[string]struct{}, len(cfg.AllowedContentTypes))
	for _, ct := range cfg.AllowedContentTypes {
		allowed[ct] = struct{}{}
	}
	return UploadConstraint{
		MaxBytes: cfg.MaxUploadBytes,
		allowed:  allowed,
	}
}

// CheckUpload accepts or rejects an in-memory upload given its declared
// content type (may be empty) and byte length.
func (u UploadConstraint) CheckUpload(contentType string, size int64) error {
	if contentType != "" {
		if _, ok := u.allowed[contentType]; !ok {
			return &UnsupportedContentTypeError{ContentType: contentType}
		}
	}
	if size == 0 {
		return ErrEmptyUpload
	}
	if size > u.MaxBytes {
		return &TooLargeError{Size: size, MaxBytes: u.MaxBytes}
	}
	return nil
}

// CheckPath accepts or rejects a file-system input, distinguishing a missing
// path from a directory before measuring size. It returns the measured size.
func (u UploadConstraint) CheckPath(path string) (int64, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", ErrAudioNotFound, path)
	}
	if err != nil {
		return 0, fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w at: %s", ErrNotAFile, path)
	}

	size := info.Size()
	if size == 0 {
		return 0, ErrEmptyUpload
	}
	if size > u.MaxBytes {
		return 0, &TooLargeError{Size: size, MaxBytes: u.MaxBytes}
	}
	return size, nil
}
