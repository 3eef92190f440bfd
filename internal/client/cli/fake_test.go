package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/jwtx"
)

type fakeSession struct {
	user     *models.User
	hasToken bool
	expiry   time.Time

	loginCreds models.LoginCredentials
	loginRes   services.Result[*models.User]
	loginErr   error

	regCreds models.RegisterCredentials
	regRes   services.Result[*models.User]
	regErr   error

	// user returned by the next CheckAuth; nil keeps the current one
	checkUser *models.User

	calls []string
}

var _ services.AuthService = (*fakeSession)(nil)

func (f *fakeSession) CheckAuth(context.Context) *models.User {
	f.calls = append(f.calls, "CheckAuth")
	if f.checkUser != nil {
		f.user = f.checkUser
	}
	if !f.hasToken {
		f.user = nil
	}
	return f.user.Clone()
}

func (f *fakeSession) Register(_ context.Context, creds models.RegisterCredentials) (services.Result[*models.User], error) {
	f.calls = append(f.calls, "Register")
	f.regCreds = creds
	if f.regErr == nil {
		f.user, f.hasToken = f.regRes.Value, true
	}
	return f.regRes, f.regErr
}

func (f *fakeSession) Login(_ context.Context, creds models.LoginCredentials) (services.Result[*models.User], error) {
	f.calls = append(f.calls, "Login")
	f.loginCreds = creds
	if f.loginErr == nil {
		f.user, f.hasToken = f.loginRes.Value, true
	}
	return f.loginRes, f.loginErr
}

func (f *fakeSession) Logout(context.Context) {
	f.calls = append(f.calls, "Logout")
	f.user, f.hasToken = nil, false
}

func (f *fakeSession) Invalidate(context.Context) {
	f.calls = append(f.calls, "Invalidate")
	f.user = nil
}

func (f *fakeSession) Refresh(u *models.User) bool {
	f.calls = append(f.calls, "Refresh")
	if u == nil || f.user == nil || f.user.ID != u.ID {
		return false
	}
	f.user = u.Clone()
	return true
}

func (f *fakeSession) CurrentUser() *models.User { return f.user.Clone() }

func (f *fakeSession) Snapshot() models.Session { return models.Session{User: f.user.Clone()} }

func (f *fakeSession) HasAccessToken(context.Context) bool { return f.hasToken }

func (f *fakeSession) AccessTokenExpiry(context.Context) (time.Time, error) {
	if f.expiry.IsZero() {
		return time.Time{}, jwtx.ErrNoExpiry
	}
	return f.expiry, nil
}

type fakeUsers struct {
	users    []models.User
	selected *models.User

	listErr   error
	getErr    error
	updateErr error
	deleteErr error

	lastPatch models.UpdateUserData
	calls     []string
}

var _ services.UserService = (*fakeUsers)(nil)

func (f *fakeUsers) List(context.Context) (services.Result[[]models.User], error) {
	f.calls = append(f.calls, "List")
	if f.listErr != nil {
		return services.Result[[]models.User]{}, f.listErr
	}
	return services.Result[[]models.User]{Value: models.CloneUsers(f.users), Message: "Users fetched successfully"}, nil
}

func (f *fakeUsers) Get(_ context.Context, id string) (services.Result[*models.User], error) {
	f.calls = append(f.calls, "Get "+id)
	if f.getErr != nil {
		return services.Result[*models.User]{}, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			f.selected = u.Clone()
			return services.Result[*models.User]{Value: u.Clone(), Message: "User fetched successfully"}, nil
		}
	}
	return services.Result[*models.User]{}, &services.OperationError{Op: "get user", Message: "User not found"}
}

func (f *fakeUsers) Update(_ context.Context, id string, patch models.UpdateUserData) (services.Result[*models.User], error) {
	f.calls = append(f.calls, "Update "+id)
	f.lastPatch = patch
	if f.updateErr != nil {
		return services.Result[*models.User]{}, f.updateErr
	}
	u := patch.Apply(models.User{ID: id})
	return services.Result[*models.User]{Value: &u, Message: "User updated successfully"}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) (services.Result[string], error) {
	f.calls = append(f.calls, "Delete "+id)
	if f.deleteErr != nil {
		return services.Result[string]{}, f.deleteErr
	}
	return services.Result[string]{Value: id, Message: "User deleted successfully"}, nil
}

func (f *fakeUsers) ClearSelected() {
	f.calls = append(f.calls, "ClearSelected")
	f.selected = nil
}

func (f *fakeUsers) Users() []models.User { return models.CloneUsers(f.users) }
func (f *fakeUsers) Selected() *models.User { return f.selected.Clone() }
func (f *fakeUsers) Snapshot() models.Directory { return models.Directory{Users: f.Users()} }

// newTestApp builds an App over fakes. input feeds the line reader; the
// returned buffer captures screen output.
func newTestApp(t *testing.T, s *fakeSession, u *fakeUsers, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return newApp(s, u, rdr(input), &out), &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
