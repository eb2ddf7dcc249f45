package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
	Health(ctx context.Context) error
}

const helpText = "Available commands: signup, login, verify (whoami), logout, health, help, exit"

// dispatch runs one command and reports whether the session should end.
// Command errors are printed here and also returned for one-shot callers.
func dispatch(ctx context.Context, a execIface, cmd string) (bool, error) {
	var err error

	switch cmd {
	case "help":
		printlnFn(helpText)
	case "signup", "register":
		err = a.SignUp(ctx)
	case "login":
		err = a.Login(ctx)
	case "verify", "whoami":
		err = a.WhoAmI(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "health":
		err = a.Health(ctx)
	case "exit", "quit":
		printlnFn("Bye!")
		return true, nil
	default:
		printlnFn("Unknown command:", cmd)
		return false, fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	if err != nil {
		printlnFn("Error:", err.Error())
	}
	return false, err
}

// runREPL reads commands line by line until EOF, "exit" or "quit", or
// until ctx is cancelled. Command errors do not stop the loop.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn("feelflow> ")
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if quit, _ := dispatch(ctx, a, parts[0]); quit {
			return
		}
	}
}
