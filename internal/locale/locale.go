// Package locale validates the supported locale set and expands locale-agnostic
// routes into absolute, locale-prefixed URLs.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a supported locale identifier used as the first URL path segment.
type Code string

// ErrNoLocales is returned when the configured locale set is empty.
var ErrNoLocales = errors.New("at least one locale is required")

// ParseCodes validates raw locale identifiers, preserving their order. The
// first code is the default locale.
func ParseCodes(raw []string) ([]Code, error) {
	if len(raw) == 0 {
		return nil, ErrNoLocales
	}
	out := make([]Code, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		value := strings.TrimSpace(r)
		if value == "" {
			return nil, fmt.Errorf("empty locale code")
		}
		if strings.ContainsAny(value, "/?# ") {
			return nil, fmt.Errorf("locale %q is not a valid path segment", value)
		}
		if _, err := language.Parse(value); err != nil {
			return nil, fmt.Errorf("locale %q: %w", value, err)
		}
		if _, dup := seen[value]; dup {
			return nil, fmt.Errorf("duplicate locale %q", value)
		}
		seen[value] = struct{}{}
		out = append(out, Code(value))
	}
	return out, nil
}

// Strings converts codes back to plain strings.
func Strings(codes []Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}

// URL joins a base URL, an optional locale and a route path. An empty locale
// yields the unprefixed URL.
func URL(baseURL string, code Code, path string) string {
	if code == "" {
		return baseURL + path
	}
	return baseURL + "/" + string(code) + path
}
