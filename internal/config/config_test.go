package config_test

import (
	"net/url"
	"testing"
	"time"

	"group-reviews/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "SERVER_PORT", "REDIS_URL", "STATS_CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()

	assert.Error(t, err, ".env is absent in a fresh directory")
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "group_reviews", cfg.DBName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "reviews")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "reviews_test")
	t.Setenv("STATS_CACHE_TTL", "30s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "postgres://reviews:secret@db:5433/reviews_test?sslmode=disable", cfg.DSN())
}

func TestLoadConfig_BadDurationFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STATS_CACHE_TTL", "soon")

	cfg, _ := config.LoadConfig()

	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
}

func TestConfig_DSN_EscapesCredentials(t *testing.T) {
	cfg := config.Config{
		DBUser:     "app user",
		DBPassword: "p@ss/w:rd?",
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "group_reviews",
	}

	parsed, err := url.Parse(cfg.DSN())
	require.NoError(t, err)

	password, ok := parsed.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss/w:rd?", password)
	assert.Equal(t, "app user", parsed.User.Username())
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/group_reviews", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}
