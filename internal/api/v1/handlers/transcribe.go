package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transcriber/internal/api/errors"
	"audio-transcriber/internal/api/middleware"
	"audio-transcriber/internal/api/v1/dto"
	"audio-transcriber/internal/api/v1/services"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

// TranscribeHandler handles audio transcription uploads.
type TranscribeHandler struct {
	service      services.TranscriptionService
	uploads      transcription.UploadConstraint
	defaultModel string
}

// NewTranscribeHandler creates a new transcription handler.
func NewTranscribeHandler(service services.TranscriptionService, cfg *config.Config) *TranscribeHandler {
	return &TranscribeHandler{
		service:      service,
		uploads:      transcription.NewUploadConstraint(cfg),
		defaultModel: cfg.DefaultModel,
	}
}

// Transcribe handles POST /transcribe.
// Accepts a multipart form with the audio under "file" plus optional model,
// response_format and prompt fields, and responds with the normalized
// transcription payload.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	var form dto.TranscribeForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := h.uploads.CheckUpload(contentType, header.Size); err != nil {
		middleware.HandleError(c, errors.FromTranscription(err))
		return
	}

	opts := transcription.Options{
		Model:          form.Model,
		ResponseFormat: form.ResponseFormat,
		Prompt:         form.Prompt,
	}
	if opts.Model == "" {
		opts.Model = h.defaultModel
	}

	filename := header.Filename
	if filename == "" {
		filename = "audio_upload.mp3"
	}

	resp, err := h.service.TranscribeStream(c.Request.Context(), file, filename, opts)
	if err != nil {
		middleware.HandleError(c, errors.FromTranscription(err))
		return
	}

	c.JSON(http.StatusOK, transcription.ToPayload(resp))
}
