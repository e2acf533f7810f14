package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "sir")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "./data/peyk.db", cfg.Database.Path)
	assert.Equal(t, 25, cfg.Search.DefaultLimit)
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidSearchLimits(t *testing.T) {
	t.Setenv("JWT_SECRET", "sir")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "60")
	t.Setenv("SEARCH_MAX_LIMIT", "50")

	// default > max tutarsızdır — başlangıçta yakalanır
	_, err := Load()
	assert.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitOrigins("a, b"))
	assert.Equal(t, []string{"a", "b"}, splitOrigins("a,,b"))
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Nil(t, splitOrigins(" , "))
}
