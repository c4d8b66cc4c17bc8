package transcribe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/app/transcription"
	"audio-transcriber/internal/config"
)

var (
	model          string
	responseFormat string
	prompt         string
	saveTo         string
)

func init() {
	Cmd.Flags().StringVar(&model, "model", "",
		"Transcription model to use. Examples: gpt-4o-transcribe, gpt-4o-mini-transcribe, whisper-1")
	Cmd.Flags().StringVar(&responseFormat, "response-format", "",
		"Optional response format override (json, text, srt, verbose_json, vtt, diarized_json)")
	Cmd.Flags().StringVar(&prompt, "prompt", "",
		"Optional prompt to guide the transcription (not supported by diarization)")
	Cmd.Flags().StringVar(&saveTo, "save-to", "",
		"Optional file path to save the transcript instead of printing to stdout")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [audio_path]",
	Short: "Transcribe an audio file to text",
	Long: `Transcribe an audio file to text.

The audio path defaults to the configured recording when omitted. On success
the transcript is printed to stdout or written to --save-to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	audioPath := cfg.DefaultAudioPath
	if len(args) > 0 {
		audioPath = args[0]
	}

	if responseFormat != "" && !transcription.ValidResponseFormat(responseFormat) {
		return fmt.Errorf("invalid response format %q (choose from: %s)",
			responseFormat, strings.Join(transcription.ResponseFormats, ", "))
	}

	opts := transcription.Options{
		Model:          model,
		ResponseFormat: responseFormat,
		Prompt:         prompt,
	}
	if opts.Model == "" {
		opts.Model = cfg.DefaultModel
	}

	service := app.InitializeService(cfg)
	resp, err := service.TranscribePath(cmd.Context(), audioPath, opts)
	if err != nil {
		return err
	}

	text, err := transcription.TranscriptText(transcription.ToPayload(resp))
	if err != nil {
		return err
	}

	if saveTo != "" {
		return writeTranscript(saveTo, text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// writeTranscript saves the transcript, creating parent directories as
// needed.
func writeTranscript(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create transcript directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
