package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password, validates them locally and signs in.
// On success the dashboard is shown. The password slice is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.LoginCredentials{Email: email, Password: string(password)}
	if err := creds.Validate(); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintln(a.out, "Logging in...")
	res, err := a.session.Login(ctx, creds)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return a.Navigate(ctx, RouteDashboard)
}

// Register prompts for name, email and password and creates an account.
// A successful sign-up is also a sign-in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.RegisterCredentials{Name: name, Email: email, Password: string(password)}
	if err := creds.Validate(); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintln(a.out, "Creating account...")
	res, err := a.session.Register(ctx, creds)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return a.Navigate(ctx, RouteDashboard)
}

// Logout forgets the session locally and returns to the login hint.
func (a *App) Logout(ctx context.Context) error {
	fmt.Fprintln(a.out, "Logging out...")
	a.session.Logout(ctx)
	a.users.ClearSelected()
	fmt.Fprintln(a.out, "Logged out.")
	return a.Navigate(ctx, RouteRoot)
}
