package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/HajajeHamid/google-feedserver/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("FEEDCLIENT_URL", "http://sample.com/feed")
	t.Setenv("FEEDCLIENT_TIMEOUT", "5s")
	t.Setenv("FEEDCLIENT_LOG_LEVEL", "debug")

	cfg := config.Load()
	require.Equal(t, "http://sample.com/feed", cfg.ServiceURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FEEDCLIENT_URL", "")
	t.Setenv("FEEDCLIENT_TIMEOUT", "")
	t.Setenv("FEEDCLIENT_LOG_LEVEL", "")

	cfg := config.Load()
	require.Empty(t, cfg.ServiceURL)
	require.Equal(t, 20*time.Second, cfg.Timeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("FEEDCLIENT_TIMEOUT", "soon")

	cfg := config.Load()
	require.Equal(t, 20*time.Second, cfg.Timeout)
}
