package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		path     string
		hasToken bool
		want     string
	}{
		{"/", true, RouteDashboard},
		{"/", false, RouteLogin},
		{"/login", true, RouteDashboard},
		{"/login", false, RouteLogin},
		{"/register", true, RouteDashboard},
		{"/register", false, RouteRegister},
		{"/dashboard", true, RouteDashboard},
		{"/dashboard", false, RouteLogin},
		{"/userlist", false, RouteLogin},
		{"/profile", false, RouteLogin},
		{"/profile/edit", false, RouteLogin},
		{"/profile/edit", true, RouteProfileEdit},
		{"/users/42", true, "/users/42"},
		{"/users/42", false, RouteLogin},
		{"userlist/", true, RouteUserList},
		{" /dashboard ", true, RouteDashboard},
		{"/nowhere", false, "/nowhere"},
		{"/users/", true, "/users"},
	}

	for _, tt := range tests {
		got := resolveRoute(tt.path, tt.hasToken)
		assert.Equal(t, tt.want, got, "resolveRoute(%q, %v)", tt.path, tt.hasToken)
	}
}

func TestMatchRoute(t *testing.T) {
	pattern, id, ok := matchRoute("/users/abc")
	assert.True(t, ok)
	assert.Equal(t, RouteUser, pattern)
	assert.Equal(t, "abc", id)

	_, _, ok = matchRoute("/users/a/b")
	assert.False(t, ok)

	pattern, id, ok = matchRoute("/profile")
	assert.True(t, ok)
	assert.Equal(t, RouteProfile, pattern)
	assert.Empty(t, id)
}
