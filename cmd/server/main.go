package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"chat-screener/corpus"
	"chat-screener/httpapi"
	"chat-screener/internal"
	"chat-screener/metadata"
	"chat-screener/moderation"
	"chat-screener/observability"
	"chat-screener/ratelimit"
	"chat-screener/repositories"
	"chat-screener/services"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a listener failure.
// Deferred cleanups run before main exits.
func run() (int, error) {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	location, err := metadata.ResolveLocation(config.Timezone)
	if err != nil {
		return exitConfig, fmt.Errorf("API_TIMEZONE: %w", err)
	}
	rules, err := config.RateRules()
	if err != nil {
		return exitConfig, err
	}

	repo, err := repositories.Open(config.Storage(), log)
	if err != nil {
		return exitRuntime, fmt.Errorf("storage failed to open: %w", err)
	}
	defer func() {
		log.Info("Closing storage...")
		if err := repo.Close(); err != nil {
			log.Warn("Storage close failed", "error", err)
		}
	}()

	limiter, closeLimiter := newLimiter(config.RedisAddr, log)
	defer closeLimiter()

	loader := corpus.NewFileLoader(config.CorpusFilePath)
	if _, err := loader.Load(context.Background()); err != nil {
		// The corpus is re-read per message, it may still be fixed while running.
		log.Warn("Banned word corpus not readable at startup", "path", loader.Path(), "error", err)
	}
	screener := moderation.NewScreener(loader, config.SimilarityThreshold, log)
	deriver := metadata.NewDeriver(location, time.Now)

	handler := httpapi.NewHandler(log,
		httpapi.Options{
			APIKey:         config.APIKey,
			Version:        config.APIVersion,
			RequestTimeout: config.RequestTimeout,
			Rules:          rules,
		},
		services.NewMessageProcessingService(log, screener, deriver),
		services.NewMessageStorageService(log, repo),
		services.NewMessageRetrievalService(log, repo),
		limiter,
	)

	api := &http.Server{
		Addr:              config.Address(),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", observability.Handler())
	metrics := &http.Server{
		Addr:              config.MetricsAddress(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range []*http.Server{api, metrics} {
		g.Go(func() error {
			log.Info("Starting HTTP server", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s failed: %w", srv.Addr, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	log.Info("Message screening API ready",
		"version", config.APIVersion,
		"storage", config.StorageDriver,
		"timezone", location.String(),
		"rate_limits", config.RedisAddr != "")

	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

// newLimiter returns a Redis limiter, or a no-op one when no address is configured.
func newLimiter(addr string, log *slog.Logger) (ratelimit.ILimiter, func()) {
	if addr == "" {
		log.Info("Rate limiting disabled, REDIS_ADDR is empty")
		return ratelimit.NoopLimiter{}, func() {}
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unreachable, rate limiting fails open", "address", addr, "error", err)
	}
	return ratelimit.NewRedisLimiter(client, log), func() { _ = client.Close() }
}
