package runner

import (
	"context"

	"github.com/aretw0/vending/pkg/ports"
)

// IOHandler defines the strategy for interacting with the operator at the console.
// It extends ports.Prompter so the purchase engine can ask its own questions.
type IOHandler interface {
	ports.Prompter

	// Show presents a block of content (menus, the catalog) to the user.
	// Content may be transformed by a ContentRenderer before being written.
	Show(ctx context.Context, content string) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// It is used to style menus (e.g. Markdown rendering in a terminal).
type ContentRenderer func(string) (string, error)
