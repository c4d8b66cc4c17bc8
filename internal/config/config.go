package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is the transcription model used when the caller does not
	// pick one.
	DefaultModel = "gpt-4o-transcribe"

	// MaxUploadBytes is the upload ceiling enforced before any provider call.
	MaxUploadBytes = 25 << 20 // 25 MiB

	defaultAudioPath = "data/audio/recording.mp3"
	defaultHost      = "0.0.0.0"
	defaultPort      = "8000"
)

// supportedContentTypes lists the MIME types accepted for uploads.
var supportedContentTypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/mp4",
	"audio/mpeg3",
	"audio/mpg",
	"audio/mpga",
	"audio/m4a",
	"audio/wav",
	"audio/webm",
}

// Config holds the process-wide configuration. It is constructed once at
// startup and never mutated afterwards; components receive it by reference.
type Config struct {
	APIKey              string
	DefaultModel        string
	DefaultAudioPath    string
	MaxUploadBytes      int64
	AllowedContentTypes []string
	Host                string
	Port                string
	Environment         string
}

// Load builds the configuration from the process environment, reading a .env
// file first when one exists. It fails fast when the provider credential is
// missing.
func Load() (*Config, error) {
	loadDotEnv()

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set; set it in your environment or .env file")
	}

	cfg := &Config{
		APIKey:              apiKey,
		DefaultModel:        envOrDefault("TRANSCRIBER_MODEL", DefaultModel),
		DefaultAudioPath:    envOrDefault("TRANSCRIBER_AUDIO_PATH", defaultAudioPath),
		MaxUploadBytes:      MaxUploadBytes,
		AllowedContentTypes: supportedContentTypes,
		Host:                envOrDefault("TRANSCRIBER_HOST", defaultHost),
		Port:                envOrDefault("TRANSCRIBER_PORT", defaultPort),
		Environment:         envOrDefault("TRANSCRIBER_ENV", "development"),
	}

	return cfg, nil
}

// loadDotEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func loadDotEnv() {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			return
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
