package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CATALOG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "exact", cfg.MatchMode)
	assert.Equal(t, "https://jp.finalfantasyxiv.com/lodestone", cfg.LodestoneBaseURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2, cfg.FetchMaxRetries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MATCH_MODE", "normalized")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("FETCH_RATE_PER_SECOND", "0.5")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CATALOG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "normalized", cfg.MatchMode)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.InDelta(t, 0.5, cfg.FetchRatePerSecond, 1e-9)
}

func TestLoadRejectsTwoCatalogSources(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("CATALOG_FILE", "catalog.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
