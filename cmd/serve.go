package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretmap/internal/domain"
	"github.com/mouse-blink/fretmap/internal/server"
)

var serveAddrFlag string

// runServer is replaced in tests.
var runServer = func(ctx context.Context, srv *server.Server, addr string) error {
	return srv.Run(ctx, addr)
}

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fretboard as a JSON API",
		Long: `Serve the fretboard as a JSON API.

Endpoints:
  GET /health
  GET /metrics
  GET /api/v1/fretboard?view=names|numbers
  GET /api/v1/notes/:string/:fret
  GET /api/v1/scales/:note
  GET /api/v1/chords
  GET /api/v1/chords/:spec`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fb, err := domain.FretboardFromConfig(cfg)
			if err != nil {
				return err
			}

			addr := cfg.Server.Address
			if cmd.Flags().Changed("addr") || addr == "" {
				addr = serveAddrFlag
			}

			level := slog.LevelInfo
			if verboseFlag {
				level = slog.LevelDebug
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, server.New(fb, logger), addr)
		},
	}
	cmd.Flags().StringVar(&serveAddrFlag, "addr", ":8080", "listen address")

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
