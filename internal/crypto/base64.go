package crypto

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64URL encodes bytes to URL-safe base64 without padding.
func EncodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64URL decodes URL-safe base64, with or without trailing padding.
// Characters from the standard alphabet ('+', '/') are rejected.
func DecodeBase64URL(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return base64.URLEncoding.DecodeString(s)
	}
	return base64.RawURLEncoding.DecodeString(s)
}

// EncodeBase64URLPadded encodes bytes to URL-safe base64 with padding. Keys
// are presented in this form so they are 44 characters long.
func EncodeBase64URLPadded(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}
