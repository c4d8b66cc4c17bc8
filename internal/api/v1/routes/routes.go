package routes

import (
	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/v1/handlers"
	"audio-transcriber/internal/api/v1/services"
	"audio-transcriber/internal/config"
)

// ServiceContainer holds the services the route handlers depend on.
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	InsightsService      services.InsightsService
}

// Register wires the transcription API routes onto the router.
func Register(router *gin.Engine, container *ServiceContainer, cfg *config.Config) {
	transcribeHandler := handlers.NewTranscribeHandler(container.TranscriptionService, cfg)
	router.POST("/transcribe", transcribeHandler.Transcribe)

	insightsHandler := handlers.NewInsightsHandler(container.InsightsService)
	router.POST("/insights", insightsHandler.Generate)
}
