package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trophycase/trophycase/internal/cache"
	"github.com/trophycase/trophycase/internal/config"
	"github.com/trophycase/trophycase/internal/github"
	"github.com/trophycase/trophycase/internal/observe"
	"github.com/trophycase/trophycase/internal/pipeline"
	"github.com/trophycase/trophycase/internal/server"
	"github.com/trophycase/trophycase/internal/stats"
	"github.com/trophycase/trophycase/internal/svg"
)

const (
	statsCacheTTL  = 4 * time.Hour
	renderCacheTTL = 1 * time.Hour
	cacheMaxSize   = 20_000
)

func main() {
	configureLogging()

	logBuildInfo()

	err := launchServer()
	if err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

func launchServer() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("configuration load failed: %w", err)
	}

	// configure telemetry before any instrumented handler or transport is built
	shutdownTelemetry, err := observe.Configure(ctx, cfg.Observe)
	if err != nil {
		return fmt.Errorf("telemetry bootstrap failed: %w", err)
	}
	defer shutdownTelemetry(ctx)

	p, err := configurePipeline(cfg)
	if err != nil {
		return fmt.Errorf("pipeline configuration failed: %w", err)
	}

	handler := configureServerRoutes(p)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler,
		MaxHeaderBytes:    20 << 10,         // 20 KB
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}

	err = server.Run(ctx, cfg.Server, srv)
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func configurePipeline(cfg config.Config) (*pipeline.Pipeline, error) {
	client := github.NewClient(cfg.Github, github.WithHTTPClient(&http.Client{
		Transport: observe.Transport(configureHTTPTransport(cfg.Server)),
		Timeout:   time.Duration(cfg.Github.TimeoutSeconds) * time.Second,
	}))

	pool, err := github.NewPool(cfg.Github.Tokens(), client.ViewerLogin)
	if err != nil {
		return nil, fmt.Errorf("credential pool configuration failed: %w", err)
	}

	statsCache, err := cache.NewMemory[stats.Bundle](statsCacheTTL, cacheMaxSize)
	if err != nil {
		return nil, fmt.Errorf("stats cache configuration failed: %w", err)
	}

	renderCache, err := cache.NewMemory[string](renderCacheTTL, cacheMaxSize)
	if err != nil {
		return nil, fmt.Errorf("render cache configuration failed: %w", err)
	}

	return pipeline.New(pool, github.NewAggregator(client), statsCache, renderCache, svg.Render), nil
}

func configureServerRoutes(p *pipeline.Pipeline) http.Handler {
	// wrap a mux such that HTTP telemetry is configured by default
	muxWithoutTelemetry := http.NewServeMux()
	mux := observe.NewMux(muxWithoutTelemetry)

	// Trophy requests are GET-only; the body limit guards against abuse.
	requestLimiter := maxRequestSize(4 << 10) // 4 KB
	standardRouteMiddleware := alice.New(requestLimiter)

	mux.Handle("GET /", standardRouteMiddleware.Then(handleTrophy(p)))

	// healthchecks are not included in telemetry
	muxWithoutTelemetry.Handle("GET /healthcheck", standardRouteMiddleware.Then(handleHealthCheck()))

	return mux
}

func configureLogging() {
	// default level is Info
	log.Logger = log.Level(zerolog.InfoLevel)

	if os.Getenv("ENV") == "development" {
		log.Logger = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(zerolog.DebugLevel)
	}

	zerolog.DefaultContextLogger = &log.Logger
}

func logBuildInfo() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	ev := log.Info()
	for _, v := range buildInfo.Settings {
		if strings.HasPrefix(v.Key, "vcs.") ||
			strings.HasPrefix(v.Key, "GO") ||
			v.Key == "CGO_ENABLED" {
			ev = ev.Str(v.Key, v.Value)
		}
	}

	ev.Msg("build information")
}

func configureHTTPTransport(cfg config.ServerConfig) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	transport.MaxIdleConns = cfg.OutgoingHTTPMaxIdleConns
	transport.MaxConnsPerHost = cfg.OutgoingHTTPMaxConnsPerHost

	return transport
}

func maxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, limit)
	}
}
