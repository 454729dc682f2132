package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Github  GithubConfig
	Server  ServerConfig
	Observe ObserveConfig
}

type ServerConfig struct {
	Port                   int `env:"SERVER_PORT, default=8080"`
	ShutdownTimeoutSeconds int `env:"SERVER_SHUTDOWN_TIMEOUT_SECS, default=25"`

	OutgoingHTTPMaxIdleConns    int `env:"SERVER_OUTGOING_MAX_IDLE_CONNS, default=100"`
	OutgoingHTTPMaxConnsPerHost int `env:"SERVER_OUTGOING_MAX_CONNS_PER_HOST, default=20"`
}

// ObserveConfig controls the OpenTelemetry SDK bootstrap. The exporter
// endpoint itself comes from the standard OTEL_EXPORTER_OTLP_* variables.
type ObserveConfig struct {
	Enabled                  bool   `env:"OBSERVE_ENABLED, default=false"`
	ServiceName              string `env:"OBSERVE_SERVICE_NAME, default=trophycase"`
	TraceBatchTimeoutSeconds int    `env:"OBSERVE_TRACE_BATCH_TIMEOUT_SECS, default=20"`
}

// GithubConfig specifies the GraphQL endpoint and the access tokens used to
// query it. Two token slots are supported; when both are set, requests rotate
// between them to spread rate-limit consumption.
type GithubConfig struct {
	APIURL string `env:"GITHUB_API, default=https://api.github.com/graphql"`

	Token  string `env:"GITHUB_TOKEN"`
	Token1 string `env:"GITHUB_TOKEN1"`
	Token2 string `env:"GITHUB_TOKEN2"`

	TimeoutSeconds int `env:"GITHUB_TIMEOUT_SECS, default=20"`
	MaxAttempts    int `env:"GITHUB_MAX_ATTEMPTS, default=3"`
}

// Tokens returns the configured tokens in slot order, with blank entries
// removed. GITHUB_TOKEN is accepted as a fallback alias for deployments that
// only configure a single token.
func (c GithubConfig) Tokens() []string {
	tokens := make([]string, 0, 3)
	for _, t := range []string{c.Token1, c.Token2, c.Token} {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func Load(ctx context.Context) (Config, error) {
	return load(ctx, nil) // load from OS environment
}

func load(ctx context.Context, lookup envconfig.Lookuper) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookup, // nil defaults to OS environment
	})
	if err != nil {
		return cfg, err
	}

	err = cfg.Github.Validate()
	if err != nil {
		return cfg, fmt.Errorf("invalid github configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the GitHub configuration is usable. Starting without
// any token would mean every GraphQL request fails authentication, so it is
// rejected up front.
func (c *GithubConfig) Validate() error {
	if len(c.Tokens()) == 0 {
		return errors.New("no GitHub token configured: set GITHUB_TOKEN1/GITHUB_TOKEN2 (or GITHUB_TOKEN)")
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("GITHUB_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts)
	}

	return nil
}
