package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		conf, err := Load(t.TempDir() + "/missing.yml")
		require.NoError(t, err)
		require.Equal(t, "http://localhost:8080/api", conf.Api.BaseURL)
		require.False(t, conf.Api.UseMockData)
		require.Equal(t, 30*time.Second, conf.UnreadPollInterval())
		require.Equal(t, 800*time.Millisecond, conf.MockLatency())
		require.Equal(t, []string{"Done", "Finalizada"}, conf.TrackerDoneStatuses())
	})

	t.Run(`environment`, func(t *testing.T) {
		t.Setenv("USE_MOCK_DATA", "true")
		t.Setenv("UNREAD_POLL_SEC", "5")
		conf, err := Load(t.TempDir() + "/missing.yml")
		require.NoError(t, err)
		require.True(t, conf.Api.UseMockData)
		require.Equal(t, 5*time.Second, conf.UnreadPollInterval())
	})
}
