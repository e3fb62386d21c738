package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Exec(ctx context.Context, name string, args []string) error
}

// runREPL starts a simple read–eval–print loop over the command table.
//
// It reads a line from reader, parses the first token as the command and
// hands the rest to a.Exec. Errors are printed to errOut and the loop goes
// on. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Interactive commands read their answers from the same reader, so the
// loop must not buffer ahead of the current line.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, errOut io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("multitool %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			if err := a.Exec(ctx, cmd, parts[1:]); err != nil {
				printError(errOut, err)
			}
		}
	}
}

// Run restores the session and then either executes args as a single
// command or, with no args, starts the REPL.
func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	if len(args) > 0 {
		return a.Exec(ctx, args[0], args[1:])
	}

	printlnFn("Welcome to multitool (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}
