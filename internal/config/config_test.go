package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarag/pubhouse/internal/dataset"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7810, cfg.HTTP.Port)
	assert.Equal(t, "publishing_house.db", cfg.DB.Path)
	assert.Equal(t, "datasets", cfg.Seed.DatasetsDir)
	assert.Equal(t, 1.0, cfg.Seed.ScaleFactor)
	assert.Equal(t, 0.5, cfg.Seed.PaidProbability)
	assert.Empty(t, cfg.Auth.AccessSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("DB_PATH", "/tmp/pubhouse.db")
	t.Setenv("SEED_SCALE_FACTOR", "2.5")
	t.Setenv("SEED_PAID_PROBABILITY", "0.9")
	t.Setenv("API_ACCESS_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/pubhouse.db", cfg.DB.Path)
	assert.Equal(t, 2.5, cfg.Seed.ScaleFactor)
	assert.Equal(t, 0.9, cfg.Seed.PaidProbability)
	assert.Equal(t, "secret", cfg.Auth.AccessSecret)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("non-positive scale factor", func(t *testing.T) {
		t.Setenv("SEED_SCALE_FACTOR", "0")
		_, err := Load()
		assert.ErrorIs(t, err, dataset.ErrConfiguration)
		assert.ErrorContains(t, err, "SEED_SCALE_FACTOR")
	})

	t.Run("probability above one", func(t *testing.T) {
		t.Setenv("SEED_PAID_PROBABILITY", "1.5")
		_, err := Load()
		assert.ErrorIs(t, err, dataset.ErrConfiguration)
		assert.ErrorContains(t, err, "SEED_PAID_PROBABILITY")
	})
}
