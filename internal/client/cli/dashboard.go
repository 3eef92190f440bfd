package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/userdesk/internal/buildinfo"
	"github.com/dmitrijs2005/userdesk/internal/jwtx"
)

const appName = "userdesk"

func printBanner(w io.Writer) {
	fmt.Fprint(w, figure.NewFigure(appName, "", true).String())
	fmt.Fprintln(w)
	buildinfo.PrintBuildData(w)
	fmt.Fprintln(w)
}

// Dashboard greets the signed-in user. If the store has no user yet (token
// present but never checked) the session is resolved first.
func (a *App) Dashboard(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Loading...")
		if user = a.session.CheckAuth(ctx); user == nil {
			a.setRoute(RouteLogin)
			fmt.Fprintln(a.out, "Could not restore your session. Type 'login' to sign in.")
			return nil
		}
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n\n", user.Name)
	fmt.Fprintf(a.out, "  Name:          %s\n", user.Name)
	fmt.Fprintf(a.out, "  Email:         %s\n", user.Email)
	fmt.Fprintf(a.out, "  Member since:  %s\n", user.Joined())

	exp, err := a.session.AccessTokenExpiry(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "  Session until: %s\n", exp.Local().Format(time.DateTime))
	case errors.Is(err, jwtx.ErrNoExpiry):
	default:
		a.logger.Debug(ctx, "cannot read token expiry", "error", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Type 'users' to view all users, 'profile' for your profile, 'help' for more.")
	return nil
}
