package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders the console menus as markdown
// using glamour. Separator rows become thematic breaks so they are not read
// as setext headings.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}

	return func(content string) (string, error) {
		return r.Render(ToMarkdown(content))
	}, nil
}

// ToMarkdown rewrites menu text for a markdown renderer. Rows made only of
// dashes become "---" breaks; other lines keep a hard line break.
func ToMarkdown(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case len(trimmed) >= 3 && strings.Trim(trimmed, "-") == "":
			b.WriteString("\n---\n\n")
		case trimmed == "":
			b.WriteString("\n")
		case strings.HasPrefix(trimmed, "- "):
			b.WriteString(trimmed + "\n")
		default:
			b.WriteString(trimmed + "  \n")
		}
	}
	return b.String()
}
