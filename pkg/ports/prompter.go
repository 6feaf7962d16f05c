package ports

import "context"

// Prompter is the line-oriented conversation with the person at the machine.
// Implementations decide how prompts are rendered (plain text, markdown, JSON).
type Prompter interface {
	// Ask shows prompt and blocks until a line of input is available.
	// The returned line is trimmed of surrounding whitespace.
	Ask(ctx context.Context, prompt string) (string, error)

	// Say shows a message that needs no answer.
	Say(ctx context.Context, msg string) error
}
