package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, asks for credentials, starts the connectivity
// watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to tenantline (type 'help' for commands)\n")

	if err := a.Login(ctx); err != nil {
		a.printf("Login failed: %v\n", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
