package errors

import (
	"errors"
	"net/http"

	"audio-transcriber/internal/app/transcription"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindBadRequest       ErrorKind = "bad_request"
	KindNotFound         ErrorKind = "not_found"
	KindUnsupportedMedia ErrorKind = "unsupported_media_type"
	KindPayloadTooLarge  ErrorKind = "payload_too_large"
	KindBadGateway       ErrorKind = "bad_gateway"
	KindInternal         ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromTranscription translates a transcription error into its API form.
// Validation failures map to their specific client statuses; provider
// failures surface the provider's message under a single bad_gateway kind.
func FromTranscription(err error) *APIError {
	var (
		unsupported *transcription.UnsupportedContentTypeError
		tooLarge    *transcription.TooLargeError
		provider    *transcription.ProviderError
	)

	switch {
	case errors.As(err, &unsupported):
		return &APIError{Kind: KindUnsupportedMedia, Message: unsupported.Error()}
	case errors.Is(err, transcription.ErrEmptyUpload):
		return &APIError{Kind: KindBadRequest, Message: "Uploaded file is empty."}
	case errors.As(err, &tooLarge):
		return &APIError{Kind: KindPayloadTooLarge, Message: tooLarge.Error()}
	case errors.Is(err, transcription.ErrAudioNotFound), errors.Is(err, transcription.ErrNotAFile):
		return &APIError{Kind: KindBadRequest, Message: err.Error()}
	case errors.As(err, &provider):
		// Original provider message, verbatim.
		return &APIError{Kind: KindBadGateway, Message: provider.Err.Error()}
	case errors.Is(err, transcription.ErrMissingText):
		return &APIError{Kind: KindBadGateway, Message: err.Error()}
	default:
		return &APIError{Kind: KindInternal, Message: "Internal server error"}
	}
}
