package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/convkit/dataformat"
	"github.com/erraggy/convkit/internal/fileio"
	"github.com/erraggy/convkit/password"
	"github.com/erraggy/convkit/qrcode"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputSize bounds inline text and file reads, in bytes.
	MaxInputSize int64

	// Data tool defaults.
	RootName string
	FullYAML bool

	// QREndpoint is the image service used by qrcode_url.
	QREndpoint string

	// PasswordLength is the default length for password_generate.
	PasswordLength int

	// Timezone is the default zone for datetime_convert.
	Timezone string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CONVKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize:   envInt64("CONVKIT_MAX_INPUT_SIZE", fileio.DefaultMaxSize),
		RootName:       envRootName("CONVKIT_ROOT_NAME", dataformat.DefaultRootName),
		FullYAML:       envBool("CONVKIT_FULL_YAML", false),
		QREndpoint:     envEndpoint("CONVKIT_QR_ENDPOINT", qrcode.DefaultEndpoint),
		PasswordLength: envIntRange("CONVKIT_PASSWORD_LENGTH", password.DefaultLength, password.MinLength, password.MaxLength),
		Timezone:       envTimezone("CONVKIT_TIMEZONE", "UTC"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envIntRange(key string, fallback, lo, hi int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback, "min", lo, "max", hi) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// envRootName accepts only names that are already valid XML element names.
func envRootName(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if dataformat.XMLName(v) != v {
		slog.Warn("invalid XML name env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envEndpoint(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, err := qrcode.BuildURL(qrcode.Request{Text: "probe", Endpoint: v}); err != nil {
		slog.Warn("invalid endpoint env var, using default", "key", key, "value", v, "default", fallback, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envTimezone(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if _, err := time.LoadLocation(v); err != nil {
		slog.Warn("invalid timezone env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
