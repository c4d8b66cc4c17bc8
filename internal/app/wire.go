//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"audio-transcriber/internal/api/server"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

// InitializeService builds the transcription service for the CLI.
func InitializeService(cfg *config.Config) *transcription.Service {
	wire.Build(
		provideAudioAPI,
		provideUploadConstraint,
		transcription.NewService,
	)
	return nil
}

// InitializeServer builds the HTTP API server.
func InitializeServer(cfg *config.Config, logger *slog.Logger) *server.Server {
	wire.Build(
		provideAudioAPI,
		provideUploadConstraint,
		transcription.NewService,
		provideServiceContainer,
		server.NewServer,
	)
	return nil
}
