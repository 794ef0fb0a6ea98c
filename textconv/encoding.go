package textconv

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/convkit/converrors"
)

// Inline messages shown in place of a value that failed to decode.
const (
	InvalidBase64Message = "Invalid Base64 string"
	InvalidURLMessage    = "Invalid URL encoded string"
)

// Base64Encode encodes the UTF-8 bytes of text with standard padded Base64.
func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64Decode decodes standard Base64. Whitespace is ignored and missing
// padding is accepted. Malformed input returns a *converrors.EncodingError
// whose Message is InvalidBase64Message.
func Base64Decode(text string) (string, error) {
	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			return -1
		}
		return r
	}, text)

	enc := base64.StdEncoding
	if len(s)%4 != 0 && !strings.HasSuffix(s, "=") {
		enc = base64.RawStdEncoding
	}
	out, err := enc.DecodeString(s)
	if err != nil {
		return "", &converrors.EncodingError{Encoding: "base64", Message: InvalidBase64Message, Cause: err}
	}
	return string(out), nil
}

// DecodeBase64OrMessage returns the decoded text, or InvalidBase64Message
// when text is not valid Base64.
func DecodeBase64OrMessage(text string) string {
	out, err := Base64Decode(text)
	if err != nil {
		return InvalidBase64Message
	}
	return out
}

// URLEncode percent-encodes text as a URI component: every byte outside
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) is escaped, including spaces.
func URLEncode(text string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// URLDecode reverses URLEncode. A '+' is kept as is. A malformed escape or
// an escape sequence that is not valid UTF-8 returns a
// *converrors.EncodingError whose Message is InvalidURLMessage.
func URLDecode(text string) (string, error) {
	out, err := url.PathUnescape(text)
	if err != nil {
		return "", &converrors.EncodingError{Encoding: "url", Message: InvalidURLMessage, Cause: err}
	}
	if !utf8.ValidString(out) {
		return "", &converrors.EncodingError{Encoding: "url", Message: InvalidURLMessage}
	}
	return out, nil
}

// DecodeURLOrMessage returns the decoded text, or InvalidURLMessage when
// text is not a valid encoded component.
func DecodeURLOrMessage(text string) string {
	out, err := URLDecode(text)
	if err != nil {
		return InvalidURLMessage
	}
	return out
}
