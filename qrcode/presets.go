package qrcode

import "strings"

// Preset is a sample payload for a common QR use.
type Preset struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Presets returns the sample payloads.
func Presets() []Preset {
	return []Preset{
		{"Website URL", "https://example.com"},
		{"Email", "mailto:contact@example.com"},
		{"Phone", "tel:+1234567890"},
		{"SMS", "sms:+1234567890"},
		{"WiFi", WiFi("WPA", "NetworkName", "Password")},
		{"Location", "geo:37.7749,-122.4194"},
	}
}

var wifiEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)

// WiFi formats a network join payload. security is "WPA", "WEP" or
// "nopass"; special characters in the SSID and password are escaped.
func WiFi(security, ssid, password string) string {
	return "WIFI:T:" + security + ";S:" + wifiEscaper.Replace(ssid) + ";P:" + wifiEscaper.Replace(password) + ";;"
}
