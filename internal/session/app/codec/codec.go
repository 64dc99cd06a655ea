package codec

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
)

const (
	cookieSeparator      = ";"
	cookieValueSeparator = "="
	base64Padding        = "="
)

// EncodeBase64URL uses the URL-safe alphabet without padding.
func EncodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64URL accepts input with or without trailing padding.
func DecodeBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, base64Padding))
}

// ParseCookie splits a single "name=value" segment and URL-decodes the value.
func ParseCookie(segment string) (name, value string, err error) {
	name, rawValue, ok := strings.Cut(strings.TrimSpace(segment), cookieValueSeparator)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: %q has no name=value pair", domain.ErrMalformedCookie, segment)
	}

	value, err = CookieValue(strings.TrimSpace(rawValue))
	if err != nil {
		return "", "", err
	}

	return name, value, nil
}

// ParseCookies reads one or more raw Cookie header values. Malformed segments
// are skipped and the first occurrence of a repeated name wins.
func ParseCookies(headers ...string) map[string]string {
	result := make(map[string]string)
	for _, header := range headers {
		for _, segment := range strings.Split(header, cookieSeparator) {
			name, value, err := ParseCookie(segment)
			if err != nil {
				continue
			}

			if _, ok := result[name]; !ok {
				result[name] = value
			}
		}
	}

	return result
}

func CookieValue(raw string) (string, error) {
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: unescape value: %w", domain.ErrMalformedCookie, err)
	}

	return value, nil
}

// ConstantTimeEqual takes time independent of where expected and actual differ.
func ConstantTimeEqual(expected, actual []byte) bool {
	if len(expected) != len(actual) {
		return false
	}

	return subtle.ConstantTimeCompare(expected, actual) == 1
}

func EncodeIdentity(identity domain.Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("encode identity to json: %w", err)
	}

	return EncodeBase64URL(payload), nil
}

func DecodeIdentity(payload string) (domain.Identity, error) {
	data, err := DecodeBase64URL(payload)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode base64url: %w", domain.ErrMalformedPayload, err)
	}

	var identity domain.Identity
	err = json.Unmarshal(data, &identity)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode json: %w", domain.ErrMalformedPayload, err)
	}

	return identity, nil
}
