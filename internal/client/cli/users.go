package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// UserList fetches and prints every user. The signed-in user's row is marked.
func (a *App) UserList(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading users...")
	res, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	users := res.Value
	fmt.Fprintf(a.out, "All Users (%d)\n", len(users))
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}

	var selfID string
	if me := a.session.CurrentUser(); me != nil {
		selfID = me.ID
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tJOINED\tID\t")
	for _, u := range users {
		name := u.Name
		if u.ID == selfID {
			name += " (you)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", name, u.Email, u.Joined(), u.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if selfID != "" {
		fmt.Fprintln(a.out, "Type 'edit' to change your profile or 'delete' to remove your account.")
	}
	return nil
}

// ShowUser loads a user into the selected slot and prints it.
func (a *App) ShowUser(ctx context.Context, id string) error {
	res, err := a.users.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	a.printProfile(res.Value)
	return nil
}

func (a *App) printProfile(u *models.User) {
	fmt.Fprintln(a.out, "User Profile")
	fmt.Fprintf(a.out, "  Name:          %s\n", u.Name)
	fmt.Fprintf(a.out, "  Email:         %s\n", u.Email)
	fmt.Fprintf(a.out, "  Member since:  %s\n", u.Joined())
}

// Profile shows the signed-in user, fetched fresh from the API.
func (a *App) Profile(ctx context.Context) error {
	me := a.session.CurrentUser()
	if me == nil {
		fmt.Fprintln(a.out, "User not authenticated")
		return nil
	}
	return a.ShowUser(ctx, me.ID)
}

// EditProfile prompts for name and email, pre-filled with the current
// values. Both are required.
func (a *App) EditProfile(ctx context.Context) error {
	me := a.session.CurrentUser()
	if me == nil {
		fmt.Fprintln(a.out, "User not authenticated")
		return nil
	}

	fmt.Fprintln(a.out, "Edit Profile")
	name, err := GetTextWithDefault(a.reader, "Name", me.Name, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextWithDefault(a.reader, "Email", me.Email, a.out)
	if err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		fmt.Fprintln(a.out, "Error: Name and email are required")
		return nil
	}

	patch := models.UpdateUserData{Name: &name, Email: &email}
	if err := patch.Validate(); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	preview := patch.Apply(*me)
	fmt.Fprintf(a.out, "Saving as %s <%s>\n", preview.Name, preview.Email)

	fmt.Fprintln(a.out, "Updating...")
	res, err := a.users.Update(ctx, me.ID, patch)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	// the dashboard reads the session copy
	a.session.Refresh(res.Value)

	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Delete removes a user account after confirmation. Only the signed-in
// user's own account may be deleted; an empty id means "mine". Deleting your
// own account ends the session.
func (a *App) Delete(ctx context.Context, id string) error {
	me := a.session.CurrentUser()
	if me == nil {
		fmt.Fprintln(a.out, "User not authenticated")
		return nil
	}
	if id == "" {
		id = me.ID
	}
	if id != me.ID {
		fmt.Fprintln(a.out, "You can only delete your own account.")
		return nil
	}

	ok, err := Confirm(a.reader, "Are you sure you want to delete this user?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	fmt.Fprintln(a.out, "Deleting...")
	res, err := a.users.Delete(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, res.Message)

	a.session.Logout(ctx)
	return a.Navigate(ctx, RouteRoot)
}

// ClearSelected drops the user loaded by the last show/profile.
func (a *App) ClearSelected() {
	a.users.ClearSelected()
	fmt.Fprintln(a.out, "Selection cleared.")
}
