package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samosastudio/samosa/internal/config"
	"github.com/samosastudio/samosa/internal/gateway"
	"github.com/samosastudio/samosa/internal/gemini"
	"github.com/samosastudio/samosa/internal/handlers"
	"github.com/samosastudio/samosa/internal/ollama"
	"github.com/samosastudio/samosa/internal/openai"
	"github.com/samosastudio/samosa/internal/providers"
	"github.com/samosastudio/samosa/internal/storage"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the generation gateway",
		Long: `Starts the generation gateway on the specified port.

POST /generate accepts {"settings": {...}}, composes the scene prompt and
forwards it to the configured text-to-image provider. Generated images are
kept in an in-memory history per browser session.`,
		Example: `  # Start server on default port 8888
  samosa serve

  # Start server on custom port using Gemini
  GENERATION_PROVIDER=gemini samosa serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			gw := gateway.New(newGenerator(cfg), cfg.GenerationModel(), cfg.Timeout)
			handler := handlers.New(gw, storage.New(cfg.HistoryLimit, cfg.HistorySessions))

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Samosa gateway available", "addr", addr, "url", "http://localhost"+addr, "provider", cfg.Provider)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default $PORT or 8888)")

	return cmd
}

func newGenerator(cfg *config.Config) providers.Generator {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(cfg.GeminiAPIKey)
	case config.ProviderOllama:
		return ollama.New(cfg.OllamaURL, &http.Client{})
	default:
		return openai.New(cfg.Endpoint, cfg.APIKey, cfg.CustomerID, &http.Client{})
	}
}
