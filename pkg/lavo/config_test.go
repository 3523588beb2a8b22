package lavo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromReader(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(`
base_url: https://api.lavo.exchange/
timeout: 5s
`))
	require.NoError(t, err)
	require.Equal(t, "https://api.lavo.exchange", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(`{}`))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", cfg.BaseURL)
	require.Equal(t, defaultHTTPTimeout, cfg.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader(`
timeout: soon
`))
	require.Error(t, err)
}

func TestConfigExpandsEnvInBaseURL(t *testing.T) {
	t.Setenv("LAVO_TEST_BASE", "http://10.0.0.1:9000")
	cfg := &Config{BaseURL: "${LAVO_TEST_BASE}"}
	require.NoError(t, cfg.Validate())
	require.Equal(t, "http://10.0.0.1:9000", cfg.BaseURL)
}

func TestConfigNewClient(t *testing.T) {
	cfg := &Config{BaseURL: "http://example.test", Timeout: time.Second}
	client := cfg.NewClient()
	require.Equal(t, "http://example.test", client.BaseURL())
}
