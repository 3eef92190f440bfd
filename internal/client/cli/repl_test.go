package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }

func (f *fakeExec) Navigate(_ context.Context, path string) error {
	f.calls = append(f.calls, "go "+path)
	if path == RouteLogin {
		f.loggedIn = true
	}
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}

func (f *fakeExec) ClearSelected() { f.calls = append(f.calls, "clear") }

// capturePrintln swaps printlnFn for the test and returns the captured lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"dashboard",
		"l",
		"show 42",
		"profile",
		"edit",
		"clear",
		"go /users/7",
		"delete",
		"delete 9",
		"logout",
		"foobar",
		"exit",
		"users", // never reached
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	want := []string{
		"go " + RouteLogin,
		"go " + RouteDashboard,
		"go " + RouteUserList,
		"go /users/42",
		"go " + RouteProfile,
		"go " + RouteProfileEdit,
		"clear",
		"go /users/7",
		"delete ",
		"delete 9",
		"logout",
	}
	assert.Equal(t, want, exec.calls)

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Available commands: register, login, go <path>, exit")
	assert.Contains(t, joined, "Available commands: dashboard, users (l)")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "userdesk status > ")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("show\ngo\n\n"))

	require.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Usage: go <path>")
}

func TestRunREPL_DeleteRequiresLogin(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("delete\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "You are not logged in. Type 'login' or 'register'.")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("register"))

	assert.Equal(t, []string{"go " + RouteRegister}, exec.calls)
}
