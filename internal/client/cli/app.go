package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/client/storage"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	session services.AuthService
	users   services.UserService
	reader  *bufio.Reader
	out     io.Writer

	mu    sync.Mutex
	route string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	var (
		db     *sql.DB
		tokens credentials.Repository = credentials.NewMemoryRepository()
	)
	if c.DatabasePath != "" {
		db, err = storage.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
			return nil, err
		}
		tokens = credentials.NewSQLiteRepository(db)
	} else {
		logger.Warn(ctx, "no database path configured, session will not survive a restart")
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, tokens, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := wire(apiClient, tokens, logger, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.db = db

	return a, nil
}

// wire builds both stores over apiClient and registers the unauthorized
// hooks. sessionExpired goes first so it still sees the user that
// Invalidate is about to drop.
func wire(apiClient *client.HTTPClient, tokens credentials.Repository, logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	session := services.NewSessionStore(apiClient, tokens, logger)
	users := services.NewDirectoryStore(apiClient, logger)

	a := newApp(session, users, reader, out)
	a.logger = logger

	apiClient.OnUnauthorized(a.sessionExpired)
	apiClient.OnUnauthorized(session.Invalidate)
	return a
}

func newApp(session services.AuthService, users services.UserService, reader *bufio.Reader, out io.Writer) *App {
	return &App{
		logger:  logging.Discard(),
		session: session,
		users:   users,
		reader:  reader,
		out:     out,
		route:   RouteRoot,
	}
}

// Run shows the banner, restores the stored session and blocks in the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printBanner(a.out)
	a.Start(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

// Start resolves the stored session and opens the root route.
func (a *App) Start(ctx context.Context) {
	fmt.Fprintln(a.out, "Loading...")
	a.session.CheckAuth(ctx)
	_ = a.Navigate(ctx, RouteRoot)
}

func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error(context.Background(), "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.HasAccessToken(ctx)
}

// sessionExpired runs after the API rejected the stored token. The tokens
// are already cleared at this point. A 401 without a signed-in user, such as
// a wrong password, is left to the screen that made the request.
func (a *App) sessionExpired(ctx context.Context) {
	if a.session.CurrentUser() == nil {
		return
	}
	a.setRoute(RouteLogin)
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
}

func (a *App) setRoute(r string) {
	a.mu.Lock()
	a.route = r
	a.mu.Unlock()
}

func (a *App) currentRoute() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) status() string {
	s := a.currentRoute()
	if u := a.session.CurrentUser(); u != nil {
		s = u.Name + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Navigate opens path after passing it through the route guard. A redirect
// to /login only prints a hint; the form opens when /login is asked for
// directly.
func (a *App) Navigate(ctx context.Context, path string) error {
	requested := cleanRoute(path)
	target := resolveRoute(requested, a.isLoggedIn(ctx))
	a.setRoute(target)

	if target != requested {
		a.logger.Debug(ctx, "route redirected", "from", requested, "to", target)
	}

	pattern, id, ok := matchRoute(target)
	if !ok {
		fmt.Fprintf(a.out, "Page not found: %s\n", target)
		return nil
	}

	switch pattern {
	case RouteLogin:
		if target != requested {
			fmt.Fprintln(a.out, "You are not logged in. Type 'login' or 'register'.")
			return nil
		}
		return a.Login(ctx)
	case RouteRegister:
		return a.Register(ctx)
	case RouteDashboard:
		return a.Dashboard(ctx)
	case RouteUserList:
		return a.UserList(ctx)
	case RouteProfile:
		return a.Profile(ctx)
	case RouteProfileEdit:
		return a.EditProfile(ctx)
	case RouteUser:
		return a.ShowUser(ctx, id)
	}
	return nil
}
