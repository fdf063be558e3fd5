package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/config"
	"opentdb-quiz/internal/domain"
	"opentdb-quiz/internal/logger"
	transport "opentdb-quiz/internal/transport/http"
)

// NewServeCmd serves trivia sessions over websockets, one session per connection.
func NewServeCmd(configPath *string) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trivia sessions over websockets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default from config)")
	return cmd
}

func runServer(ctx context.Context, cfg config.Config) error {
	defaults, err := resolveOptions(cfg)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	source, cleanup := newBatchSource(cfg, log)
	defer cleanup()

	finalPort := cfg.Server.Port
	if finalPort == "" {
		finalPort = "8080"
	}

	newGame := func(options domain.TriviaOptions) *app.Game {
		return app.NewGame(source, options, log, app.WithMaxAttempts(cfg.Quiz.MaxAttempts))
	}
	wsHandler := transport.NewWSHandler(newGame, defaults, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting trivia server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
