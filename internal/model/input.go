package model

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when the URL text is not an absolute http(s) URL
var ErrInvalidURL = errors.New("invalid audio URL")

// ParseAudioURL parses raw user input into an absolute http or https URL.
// Surrounding whitespace is ignored.
func ParseAudioURL(text string) (*url.URL, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidURL)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return parsed, nil
}

// ParseOffset parses a clip bound typed by the user. Non-numeric, negative,
// or empty text yields nil, which the session treats as an absent bound.
func ParseOffset(text string) *big.Int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	value, ok := new(big.Int).SetString(trimmed, 10)
	if !ok || value.Sign() < 0 {
		return nil
	}
	return value
}

// FormatOffset renders a clip bound for display, empty when absent
func FormatOffset(value *big.Int) string {
	if value == nil {
		return ""
	}
	return value.String()
}
