package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app"
	"audio-transcriber/internal/config"
)

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Bind address (overrides TRANSCRIBER_HOST)")
	Cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides TRANSCRIBER_PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription HTTP API",
	Long: `Start the transcription HTTP API.

Serves POST /transcribe and POST /insights plus the browser recorder
frontend. Shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Host = host
	}
	if port != "" {
		cfg.Port = port
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	srv := app.InitializeServer(cfg, logger)

	if err := srv.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
