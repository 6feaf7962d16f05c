/*
Package runner implements the console loop for a vending Machine.

It owns every prompt and message the user sees: the role menu, the customer
purchase loop and the administrator menu. Input and output go through an
IOHandler, so the same flows run against a terminal or a scripted buffer.

# Key Components

  - Runner: drives the menus until the user exits or the input ends.
  - IOHandler: a ports.Prompter that can also show blocks of content.
  - TextHandler: the line-oriented implementation over io.Reader/io.Writer.

# Usage

	r := runner.NewRunner(machine,
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
