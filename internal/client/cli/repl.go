package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Features(ctx context.Context) error
	Conversations(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Start(ctx context.Context, username string) error
	Open(ctx context.Context, conversationID string) error
	Send(ctx context.Context, text string) error
	Compose(ctx context.Context) error
	History(ctx context.Context) error
	Passphrase(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: features, (ls) conversations, search <q>, start <user>, open <id>, " +
		"send <text>, compose, history, passphrase set|clear|status, logout, exit"
)

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "features":
			err = a.Features(ctx)

		case "ls", "conversations":
			err = a.Conversations(ctx)

		case "search":
			err = a.Search(ctx, rest)

		case "start":
			if len(args) != 1 {
				printlnFn("Usage: start <username>")
				continue
			}
			err = a.Start(ctx, args[0])

		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <conversation id>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "send":
			if rest == "" {
				printlnFn("Usage: send <text>")
				continue
			}
			err = a.Send(ctx, rest)

		case "compose":
			err = a.Compose(ctx)

		case "history":
			err = a.History(ctx)

		case "passphrase":
			err = a.Passphrase(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
