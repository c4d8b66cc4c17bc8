package transcription

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-transcriber/internal/config"
)

func testConstraint(t *testing.T) UploadConstraint {
	t.Helper()
	return NewUploadConstraint(&config.Config{
		MaxUploadBytes:      config.MaxUploadBytes,
		AllowedContentTypes: []string{"audio/mpeg", "audio/mp4", "audio/wav", "audio/webm"},
	})
}

func TestCheckUpload(t *testing.T) {
	uploads := testConstraint(t)

	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"accepted mp3", "audio/mpeg", 1024, nil},
		{"accepted at ceiling", "audio/wav", 25 << 20, nil},
		{"accepted without declared type", "", 1024, nil},
		{"empty upload", "audio/mpeg", 0, ErrEmptyUpload},
		{"empty without declared type", "", 0, ErrEmptyUpload},
		{"one byte over ceiling", "audio/mpeg", 25<<20 + 1, &TooLargeError{}},
		{"unsupported type", "video/mp4", 1024, &UnsupportedContentTypeError{}},
		{"unsupported type checked before size", "text/plain", 0, &UnsupportedContentTypeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uploads.CheckUpload(tt.contentType, tt.size)
			switch want := tt.wantErr.(type) {
			case nil:
				assert.NoError(t, err)
			case *TooLargeError:
				var tooLarge *TooLargeError
				require.ErrorAs(t, err, &tooLarge)
				assert.Equal(t, tt.size, tooLarge.Size)
			case *UnsupportedContentTypeError:
				var unsupported *UnsupportedContentTypeError
				require.ErrorAs(t, err, &unsupported)
				assert.Equal(t, tt.contentType, unsupported.ContentType)
			default:
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestCheckUploadSizeMessage(t *testing.T) {
	uploads := testConstraint(t)

	err := uploads.CheckUpload("audio/mpeg", 30<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "30.0 MB")
	assert.Contains(t, err.Error(), "25 MB")
}

func TestCheckPath(t *testing.T) {
	uploads := testConstraint(t)
	tempDir := t.TempDir()

	t.Run("nonexistent path", func(t *testing.T) {
		missing := filepath.Join(tempDir, "missing.mp3")
		_, err := uploads.CheckPath(missing)
		require.ErrorIs(t, err, ErrAudioNotFound)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		_, err := uploads.CheckPath(tempDir)
		require.ErrorIs(t, err, ErrNotAFile)
		assert.Contains(t, err.Error(), tempDir)
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(tempDir, "empty.mp3")
		require.NoError(t, os.WriteFile(empty, nil, 0o644))

		_, err := uploads.CheckPath(empty)
		assert.ErrorIs(t, err, ErrEmptyUpload)
	})

	t.Run("valid file returns size", func(t *testing.T) {
		valid := filepath.Join(tempDir, "valid.mp3")
		require.NoError(t, os.WriteFile(valid, []byte("audio bytes"), 0o644))

		size, err := uploads.CheckPath(valid)
		require.NoError(t, err)
		assert.Equal(t, int64(len("audio bytes")), size)
	})

	t.Run("oversized file", func(t *testing.T) {
		big := filepath.Join(tempDir, "big.mp3")
		f, err := os.Create(big)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(30<<20))
		require.NoError(t, f.Close())

		_, err = uploads.CheckPath(big)
		var tooLarge *TooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Contains(t, err.Error(), "30.0 MB")
		assert.Contains(t, err.Error(), "25 MB")
	})
}
