package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("PAYGATE_API_BASE_URL", "https://backend.test")
	t.Setenv("PAYGATE_EXPECTED_RECEIVER", "GateWallet111")
	t.Setenv("PAYGATE_DECRYPT_KEY", "s3cr3t-key")
}

func TestLoad(t *testing.T) {
	t.Run("loads required values and applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://backend.test", cfg.APIBaseURL)
		assert.Equal(t, "GateWallet111", cfg.ExpectedReceiver)
		assert.Equal(t, "s3cr3t-key", cfg.DecryptKey)
		assert.Equal(t, SOLAmount(1), cfg.ExpectedSOL)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, ".", cfg.DownloadDir)
		assert.False(t, cfg.TelemetryEnabled)
	})

	t.Run("fails when the backend URL is missing", func(t *testing.T) {
		t.Setenv("PAYGATE_API_BASE_URL", "")
		t.Setenv("PAYGATE_EXPECTED_RECEIVER", "GateWallet111")
		t.Setenv("PAYGATE_DECRYPT_KEY", "s3cr3t-key")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("fails when the expected receiver is missing", func(t *testing.T) {
		t.Setenv("PAYGATE_API_BASE_URL", "https://backend.test")
		t.Setenv("PAYGATE_EXPECTED_RECEIVER", "")
		t.Setenv("PAYGATE_DECRYPT_KEY", "s3cr3t-key")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("fails when the decrypt key is missing", func(t *testing.T) {
		t.Setenv("PAYGATE_API_BASE_URL", "https://backend.test")
		t.Setenv("PAYGATE_EXPECTED_RECEIVER", "GateWallet111")
		t.Setenv("PAYGATE_DECRYPT_KEY", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("overrides pass through", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PAYGATE_EXPECTED_SOL", "2.5")
		t.Setenv("PAYGATE_LOG_LEVEL", "debug")
		t.Setenv("PAYGATE_HTTP_TIMEOUT", "3s")
		t.Setenv("PAYGATE_DOWNLOAD_DIR", "/tmp/artifacts")
		t.Setenv("PAYGATE_TELEMETRY_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, SOLAmount(2.5), cfg.ExpectedSOL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "/tmp/artifacts", cfg.DownloadDir)
		assert.True(t, cfg.TelemetryEnabled)
	})
}

func TestSOLAmount_Decode(t *testing.T) {
	t.Run("parses a positive amount", func(t *testing.T) {
		var a SOLAmount
		require.NoError(t, a.Decode("2.5"))
		assert.Equal(t, SOLAmount(2.5), a)
	})

	t.Run("unparsable input falls back to one", func(t *testing.T) {
		var a SOLAmount
		require.NoError(t, a.Decode("abc"))
		assert.Equal(t, SOLAmount(1), a)
	})

	t.Run("zero falls back to one", func(t *testing.T) {
		var a SOLAmount
		require.NoError(t, a.Decode("0"))
		assert.Equal(t, SOLAmount(1), a)
	})

	t.Run("negative amounts are kept as parsed", func(t *testing.T) {
		var a SOLAmount
		require.NoError(t, a.Decode("-3"))
		assert.Equal(t, SOLAmount(-3), a)
	})

	t.Run("environment fallback applies end to end", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PAYGATE_EXPECTED_SOL", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, SOLAmount(1), cfg.ExpectedSOL)
	})
}
