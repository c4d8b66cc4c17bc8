package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audio-transcriber/cmd/transcriber/cmd/serve"
	"audio-transcriber/cmd/transcriber/cmd/transcribe"
	"audio-transcriber/cmd/transcriber/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriber",
	Short: "Transcribe audio files with OpenAI's speech-to-text models",
	Long: `Transcribe audio files with OpenAI's speech-to-text models.

- transcribe a local audio file from the command line
- serve the HTTP API used by the browser recorder frontend`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Validation and provider
// failures exit with code 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "transcriber: error: %v\n", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
