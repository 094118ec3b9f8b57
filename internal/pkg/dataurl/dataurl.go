// Package dataurl encodes uploaded files as RFC 2397 data URLs, the form in
// which draft images are stored.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformed = errors.New("malformed data url")

// Encode returns "data:<mime>;base64,<payload>".
func Encode(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Decode parses a base64 data URL back into its mime type and bytes.
func Decode(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, ErrMalformed
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return "", nil, ErrMalformed
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, ErrMalformed
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrMalformed
	}
	return mimeType, data, nil
}

// IsDataURL reports whether s is an inline data URL rather than a remote URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
