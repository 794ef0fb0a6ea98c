package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleQRCode(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleQRCode([]string{"-s", "300", "hello", "world"}))
	})
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=hello%20world&ecc=M\n", out)
}

func TestHandleQRCode_WiFi(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleQRCode([]string{"--format", "json", "--wifi-ssid", "Home;Net", "--wifi-password", "pw"}))
	})
	assert.Contains(t, out, `"payload": "WIFI:T:WPA;S:Home\\;Net;P:pw;;"`)
}

func TestHandleQRCode_Presets(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleQRCode([]string{"--presets"}))
	})
	assert.Contains(t, out, "Presets:")
	assert.Contains(t, out, "Quartile")
}

func TestHandleQRCode_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"empty":       {},
		"too small":   {"-s", "50", "x"},
		"bad ecc":     {"-e", "Z", "x"},
		"text + wifi": {"--wifi-ssid", "net", "x"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, HandleQRCode(args))
		})
	}
}
