package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"------------------------------------------------------",
	"-         Welcome to the Vending Machine!            -",
	"------------------------------------------------------",
}

// Banner returns the welcome banner coloured for profile.
// termenv.Ascii yields the plain text.
func Banner(p termenv.Profile) string {
	// Teal frame, warm headline
	frame := p.Color("#2dd4bf")
	title := p.Color("#fbbf24")

	out := make([]string, len(bannerLines))
	for i, line := range bannerLines {
		color := frame
		if i == 1 {
			color = title
		}
		out[i] = p.String(line).Foreground(color).Bold().String()
	}
	return strings.Join(out, "\n")
}

// DetectBanner returns Banner for the terminal's colour profile.
func DetectBanner() string {
	return Banner(termenv.ColorProfile())
}
