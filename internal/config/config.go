// Package config loads process-wide configuration from environment variables.
// Configuration is read once at startup and treated as immutable afterwards;
// components receive the values they need explicitly instead of reaching for
// ambient globals.
//
// All variables share the "PAYGATE_" prefix. The expected receiver address
// and the decrypt key are hard requirements: the disclosure gate can never
// validate a payment against an undefined receiver, so a missing value fails
// startup instead of silently passing.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is shared by every environment variable consumed here.
const envPrefix = "paygate"

// SOLAmount is a SOL quantity parsed from the environment. Decoding never
// fails: an unparsable or zero value falls back to 1 SOL, mirroring the
// behavior the payment terms were originally published with. The fallback is
// an explicit product decision, not an error.
type SOLAmount float64

// Decode implements envconfig.Decoder.
func (a *SOLAmount) Decode(value string) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed == 0 {
		*a = 1
		return nil
	}

	*a = SOLAmount(parsed)
	return nil
}

// Config carries every tunable the process reads at startup.
type Config struct {
	// APIBaseURL is the base URL of the release backend serving the
	// transaction lookup and download dispatch endpoints.
	APIBaseURL string `envconfig:"API_BASE_URL" required:"true"`

	// ExpectedReceiver is the Solana address payments must be sent to.
	ExpectedReceiver string `envconfig:"EXPECTED_RECEIVER" required:"true"`

	// ExpectedSOL is the minimum payment amount, in SOL. Defaults to 1.
	ExpectedSOL SOLAmount `envconfig:"EXPECTED_SOL" default:"1"`

	// DecryptKey is the secret disclosed after a verified payment.
	DecryptKey string `envconfig:"DECRYPT_KEY" required:"true"`

	// LogLevel is the minimum level for the global logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// HTTPTimeout bounds a single backend request.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// DownloadDir is where fetched artifacts are written.
	DownloadDir string `envconfig:"DOWNLOAD_DIR" default:"."`

	// TelemetryEnabled toggles the OTLP telemetry pipelines.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}
