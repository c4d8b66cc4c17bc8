package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/v1/services"
)

// InsightsHandler handles the insights endpoint.
type InsightsHandler struct {
	service services.InsightsService
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(service services.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Generate handles POST /insights.
func (h *InsightsHandler) Generate(c *gin.Context) {
	insights, err := h.service.Insights(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to generate insights"))
		return
	}

	c.JSON(http.StatusOK, insights)
}
