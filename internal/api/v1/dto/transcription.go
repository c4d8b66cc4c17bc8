package dto

// TranscribeForm carries the optional form fields of a transcription upload.
// The file part is read separately from the multipart body.
type TranscribeForm struct {
	Model          string `form:"model"`
	ResponseFormat string `form:"response_format" binding:"omitempty,oneof=json text srt verbose_json vtt diarized_json"`
	Prompt         string `form:"prompt"`
}
