package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearCONVKITEnv clears all CONVKIT_* env vars to isolate tests from the ambient environment.
func clearCONVKITEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONVKIT_MAX_INPUT_SIZE", "CONVKIT_ROOT_NAME", "CONVKIT_FULL_YAML",
		"CONVKIT_QR_ENDPOINT", "CONVKIT_PASSWORD_LENGTH", "CONVKIT_TIMEZONE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearCONVKITEnv(t)

	c := loadConfig()

	assert.Equal(t, int64(10*1024*1024), c.MaxInputSize)
	assert.Equal(t, "root", c.RootName)
	assert.False(t, c.FullYAML)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", c.QREndpoint)
	assert.Equal(t, 16, c.PasswordLength)
	assert.Equal(t, "UTC", c.Timezone)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearCONVKITEnv(t)
	t.Setenv("CONVKIT_MAX_INPUT_SIZE", "2048")
	t.Setenv("CONVKIT_ROOT_NAME", "catalog")
	t.Setenv("CONVKIT_FULL_YAML", "true")
	t.Setenv("CONVKIT_QR_ENDPOINT", "http://qr.example.com/render?fmt=png")
	t.Setenv("CONVKIT_PASSWORD_LENGTH", "32")
	t.Setenv("CONVKIT_TIMEZONE", "Asia/Tokyo")

	c := loadConfig()

	assert.Equal(t, int64(2048), c.MaxInputSize)
	assert.Equal(t, "catalog", c.RootName)
	assert.True(t, c.FullYAML)
	assert.Equal(t, "http://qr.example.com/render?fmt=png", c.QREndpoint)
	assert.Equal(t, 32, c.PasswordLength)
	assert.Equal(t, "Asia/Tokyo", c.Timezone)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearCONVKITEnv(t)
	t.Setenv("CONVKIT_MAX_INPUT_SIZE", "banana")
	t.Setenv("CONVKIT_ROOT_NAME", "1 bad name")
	t.Setenv("CONVKIT_FULL_YAML", "maybe")
	t.Setenv("CONVKIT_QR_ENDPOINT", "ftp://qr.example.com")
	t.Setenv("CONVKIT_PASSWORD_LENGTH", "500")
	t.Setenv("CONVKIT_TIMEZONE", "Mars/Olympus")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.Equal(t, int64(10*1024*1024), c.MaxInputSize)
	assert.Equal(t, "root", c.RootName)
	assert.False(t, c.FullYAML)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", c.QREndpoint)
	assert.Equal(t, 16, c.PasswordLength)
	assert.Equal(t, "UTC", c.Timezone)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearCONVKITEnv(t)
	// Only override some values; others stay at defaults.
	t.Setenv("CONVKIT_PASSWORD_LENGTH", "4")
	t.Setenv("CONVKIT_MAX_INPUT_SIZE", "-1")

	c := loadConfig()

	assert.Equal(t, 4, c.PasswordLength)
	// Unchanged defaults:
	assert.Equal(t, int64(10*1024*1024), c.MaxInputSize)
	assert.Equal(t, "root", c.RootName)
}

// withConfig swaps the package configuration for the duration of a test.
func withConfig(t *testing.T, c *serverConfig) {
	t.Helper()
	saved := cfg
	cfg = c
	t.Cleanup(func() { cfg = saved })
}
