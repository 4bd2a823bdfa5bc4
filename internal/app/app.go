// Package app wires configuration, gateways, services, and the HTTP
// server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/morningfm/front/internal/config"
	"github.com/morningfm/front/internal/gateway"
	listensgw "github.com/morningfm/front/internal/gateway/listens"
	spotifygw "github.com/morningfm/front/internal/gateway/spotify"
	sunlightgw "github.com/morningfm/front/internal/gateway/sunlight"
	listenssvc "github.com/morningfm/front/internal/service/listens"
	sunlightsvc "github.com/morningfm/front/internal/service/sunlight"
	"github.com/morningfm/front/internal/transport/graphql"
	"github.com/morningfm/front/internal/transport/middleware"
	"github.com/morningfm/front/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// gateway set (the Spotify token exchange happens here, eagerly; a failed
// exchange aborts startup), assembles the schema, and serves HTTP until
// the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting front",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	gateways, err := buildGateways(ctx, cfg, logger)
	if err != nil {
		return err
	}

	handler, err := buildHandler(cfg, gateways, logger)
	if err != nil {
		return err
	}

	return serve(ctx, cfg.Server, handler, logger)
}

// buildGateways constructs the production gateway set.
func buildGateways(ctx context.Context, cfg *config.Config, logger *slog.Logger) (gateway.Set, error) {
	music, err := spotifygw.NewGateway(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, logger)
	if err != nil {
		return gateway.Set{}, fmt.Errorf("build music gateway: %w", err)
	}

	return gateway.Set{
		Listens:  listensgw.NewGateway(cfg.Listens.BaseURL, cfg.Listens.APIKey, cfg.Listens.Timeout, logger),
		Music:    music,
		Sunlight: sunlightgw.NewGateway(cfg.Sunlight.BaseURL, cfg.Sunlight.APIKey, cfg.Sunlight.Timeout, logger),
	}, nil
}

// buildHandler assembles services, schema, and routes.
func buildHandler(cfg *config.Config, gateways gateway.Set, logger *slog.Logger) (http.Handler, error) {
	listens := listenssvc.NewService(logger, gateways.Listens)
	sunlight := sunlightsvc.NewService(logger, gateways.Sunlight)

	schema, err := graphql.NewSchema(listens, sunlight)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	gqlHandler := graphql.NewHandler(schema, gateways.Music, logger)
	health := rest.NewHealthHandler(BuildVersion())

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	r.Method(http.MethodPost, "/graphql", gqlHandler)
	if cfg.GraphQL.PlaygroundEnabled {
		r.Method(http.MethodGet, "/graphql", graphql.Playground())
	}
	r.Get("/health", health.Health)

	return r, nil
}

// serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
