package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds a single console answer. Every valid answer is a
// menu digit, a currency, an amount or an item name, so 256 bytes is plenty.
const DefaultMaxInputSize = 256

// EnvMaxInputSize is the environment variable to override the default.
const EnvMaxInputSize = "VENDING_MAX_INPUT_SIZE"

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput rejects oversized or malformed answers and drops control
// characters other than tab.
func SanitizeInput(input string) (string, error) {
	if limit := MaxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	return stripControl(input), nil
}

// MaxInputSize returns the configured limit in bytes.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

func stripControl(s string) string {
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' {
			return mapControl(s)
		}
	}
	return s
}

func mapControl(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\t' {
			out = append(out, r)
		}
	}
	return string(out)
}
