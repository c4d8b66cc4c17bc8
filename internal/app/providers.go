package app

import (
	v1routes "audio-transcriber/internal/api/v1/routes"
	"audio-transcriber/internal/api/v1/services"
	openaiapi "audio-transcriber/internal/app/api/openai"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

// provideAudioAPI builds the remote provider client. OPENAI_API_KEY must be
// present in the configuration.
func provideAudioAPI(cfg *config.Config) transcription.AudioAPI {
	return openaiapi.NewClient(cfg)
}

func provideUploadConstraint(cfg *config.Config) transcription.UploadConstraint {
	return transcription.NewUploadConstraint(cfg)
}

func provideServiceContainer(svc *transcription.Service) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		TranscriptionService: svc,
		InsightsService:      services.NewStubInsightsService(),
	}
}
