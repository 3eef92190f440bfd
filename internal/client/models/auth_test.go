package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestLoginCredentials_Validate(t *testing.T) {
	require.NoError(t, LoginCredentials{Email: "a@example.com", Password: "x"}.Validate())
	require.Error(t, LoginCredentials{Email: "", Password: "x"}.Validate())
	require.Error(t, LoginCredentials{Email: "not-an-email", Password: "x"}.Validate())
	require.Error(t, LoginCredentials{Email: "a@example.com"}.Validate())
}

func TestRegisterCredentials_Validate(t *testing.T) {
	ok := RegisterCredentials{Name: "Ann", Email: "ann@example.com", Password: "secret1"}
	require.NoError(t, ok.Validate())

	noName := ok
	noName.Name = ""
	require.Error(t, noName.Validate())

	shortPw := ok
	shortPw.Password = "123"
	require.Error(t, shortPw.Validate())

	badEmail := ok
	badEmail.Email = "ann"
	require.Error(t, badEmail.Validate())
}

func TestUpdateUserData_Validate(t *testing.T) {
	require.ErrorIs(t, UpdateUserData{}.Validate(), ErrEmptyPatch)
	require.NoError(t, UpdateUserData{Name: ptr("Ann")}.Validate())
	require.NoError(t, UpdateUserData{Name: ptr("Ann"), Email: ptr("ann@example.com")}.Validate())
	require.Error(t, UpdateUserData{Name: ptr("   ")}.Validate())
	require.Error(t, UpdateUserData{Email: ptr("nope")}.Validate())
	require.Error(t, UpdateUserData{Email: ptr("")}.Validate())
}

func TestUpdateUserData_Apply(t *testing.T) {
	u := User{ID: "1", Name: "A", Email: "a@example.com"}

	got := UpdateUserData{Name: ptr("B")}.Apply(u)

	require.Equal(t, User{ID: "1", Name: "B", Email: "a@example.com"}, got)
	require.Equal(t, "A", u.Name)
}
