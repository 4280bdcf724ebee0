package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabulary-backend/internal/config"
	"github.com/heartmarshall/vocabulary-backend/internal/transport/dataloader"
	"github.com/heartmarshall/vocabulary-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocabulary-backend/internal/transport/rest"
)

// Run is the server entry point. It connects to the database and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return Serve(ctx, c)
}

// Serve runs the HTTP server and the refresh-token janitor. It returns after
// a graceful shutdown once ctx is cancelled, or on the first fatal error.
func Serve(ctx context.Context, c *Container) error {
	cfg := c.Config

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(c, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Log.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		c.Log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if cfg.Auth.CleanupInterval > 0 {
		g.Go(func() error {
			cleanupTokens(gctx, c, cfg.Auth.CleanupInterval)
			return nil
		})
	}

	return g.Wait()
}

// NewHandler assembles the middleware chain and the REST router.
func NewHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	cfg := c.Config

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(c.Auth, c.Log),
		User:      rest.NewUserHandler(c.Users, c.Log),
		Word:      rest.NewWordHandler(c.Words, cfg.Import.CSVMaxBytes, c.Log),
		Chapter:   rest.NewChapterHandler(c.Chapters, c.Log),
		WordProps: rest.NewWordPropsHandler(c.WordProps, c.Log),
		Learning:  rest.NewLearningHandler(c.Learning, c.Log),
		Health:    newHealthHandler(c),
	}

	return rest.NewRouter(
		handlers,
		limiter.Limit(cfg.RateLimit.AuthPerMinute),
		dataloader.Middleware(&dataloader.Repos{Word: c.Repos.Words}),
		middleware.RequestID,
		middleware.Recovery(c.Log),
		middleware.Logger(c.Log),
		corsMiddleware(cfg.CORS),
		middleware.Auth(c.Auth),
	)
}

// corsMiddleware is nil, and skipped by the chain, when no origin is allowed.
func corsMiddleware(cfg config.CORSConfig) middleware.Middleware {
	if strings.TrimSpace(cfg.AllowedOrigins) == "" {
		return nil
	}
	return middleware.CORS(cfg)
}

func newHealthHandler(c *Container) *rest.HealthHandler {
	if c.Spacy == nil {
		return rest.NewHealthHandler(c.Pool, nil, c.Languages(), Version)
	}
	return rest.NewHealthHandler(c.Pool, c.Spacy, c.Languages(), Version)
}

func cleanupTokens(ctx context.Context, c *Container, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Failures are logged by the service; the next tick retries.
			_, _ = c.Auth.CleanupExpiredTokens(ctx)
		}
	}
}
