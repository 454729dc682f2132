package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "token-a")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.github.com/graphql", cfg.Github.APIURL)
	assert.Equal(t, 20, cfg.Github.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Github.MaxAttempts)

	assert.False(t, cfg.Observe.Enabled)
	assert.Equal(t, "trophycase", cfg.Observe.ServiceName)
	assert.Equal(t, 20, cfg.Observe.TraceBatchTimeoutSeconds)
}

func TestLoad_NoTokens(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN1", "")
	t.Setenv("GITHUB_TOKEN2", "")

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no GitHub token configured")
}

func TestLoad_InvalidMaxAttempts(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "token-a")
	t.Setenv("GITHUB_MAX_ATTEMPTS", "0")

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_MAX_ATTEMPTS")
}

func TestTokens_SlotOrder(t *testing.T) {
	cfg := GithubConfig{Token1: "one", Token2: "two", Token: "fallback"}
	assert.Equal(t, []string{"one", "two", "fallback"}, cfg.Tokens())
}

func TestTokens_BlankEntriesRemoved(t *testing.T) {
	cfg := GithubConfig{Token1: "  ", Token2: "two"}
	assert.Equal(t, []string{"two"}, cfg.Tokens())
}

func TestTokens_SingleTokenAlias(t *testing.T) {
	cfg := GithubConfig{Token: "only"}
	assert.Equal(t, []string{"only"}, cfg.Tokens())
}
