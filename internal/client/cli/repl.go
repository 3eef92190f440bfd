package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ClearSelected()
}

// runREPL starts a simple read-eval-print loop for the userdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Page commands go through Navigate, so the
// route guard decides what is actually shown. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - dashboard      welcome screen
//	  - users | l      list all users
//	  - show <id>      show a single user
//	  - profile        show your profile
//	  - edit           edit your name and email
//	  - delete         delete your account
//	  - clear          forget the selected user
//	  - logout         log out
//	  - exit | quit    leave the program
//
//	Always:
//	  - go <path>      open a route, e.g. "go /users/42"
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("userdesk %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: dashboard, users (l), show <id>, profile, edit, delete, clear, go <path>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, go <path>, exit")
			}

		case "register":
			_ = a.Navigate(ctx, RouteRegister)

		case "login":
			_ = a.Navigate(ctx, RouteLogin)

		case "dashboard":
			_ = a.Navigate(ctx, RouteDashboard)

		case "users", "l", "list":
			_ = a.Navigate(ctx, RouteUserList)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Navigate(ctx, userRoutePrefix+args[0])

		case "profile":
			_ = a.Navigate(ctx, RouteProfile)

		case "edit":
			_ = a.Navigate(ctx, RouteProfileEdit)

		case "delete":
			if !a.isLoggedIn(ctx) {
				printlnFn("You are not logged in. Type 'login' or 'register'.")
				continue
			}
			var id string
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Delete(ctx, id)

		case "clear":
			a.ClearSelected()

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
