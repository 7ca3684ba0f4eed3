package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	Dispatch(ctx context.Context, name string, args []string) error
}

func prompt(status string) string {
	if status == "" {
		return "dk> "
	}
	return fmt.Sprintf("dk %s> ", status)
}

// runREPL reads commands line by line and dispatches them until EOF, a
// cancelled context or "exit"/"quit". The prompt is rebuilt from statusFn
// before every read, so it follows login and logout immediately. Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(w, prompt(statusFn()))

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		if err := a.Dispatch(ctx, cmd, args); err != nil {
			if errors.Is(err, ErrUnknownCommand) {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			fmt.Fprintln(w, describeError(err))
		}
	}
}
