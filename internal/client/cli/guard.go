package cli

import (
	"path"
	"strings"
)

const (
	RouteRoot        = "/"
	RouteLogin       = "/login"
	RouteRegister    = "/register"
	RouteDashboard   = "/dashboard"
	RouteUserList    = "/userlist"
	RouteProfile     = "/profile"
	RouteProfileEdit = "/profile/edit"
	RouteUser        = "/users/:id"
)

const userRoutePrefix = "/users/"

// cleanRoute normalizes user input such as "userlist/" to "/userlist".
func cleanRoute(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// matchRoute returns the route pattern for p and the :id parameter, if any.
// ok is false for paths outside the route table.
func matchRoute(p string) (pattern, id string, ok bool) {
	switch p {
	case RouteRoot, RouteLogin, RouteRegister, RouteDashboard, RouteUserList, RouteProfile, RouteProfileEdit:
		return p, "", true
	}
	if rest, found := strings.CutPrefix(p, userRoutePrefix); found && rest != "" && !strings.Contains(rest, "/") {
		return RouteUser, rest, true
	}
	return "", "", false
}

func isAuthenticatedRoute(pattern string) bool {
	switch pattern {
	case RouteDashboard, RouteUserList, RouteProfile, RouteProfileEdit, RouteUser:
		return true
	}
	return false
}

// resolveRoute applies the navigation guard and returns the path that should
// actually be shown. Token presence is the only input; no request is made.
// Unknown paths are returned unchanged.
func resolveRoute(p string, hasToken bool) string {
	p = cleanRoute(p)

	pattern, _, ok := matchRoute(p)
	if !ok {
		return p
	}

	switch {
	case pattern == RouteRoot:
		if hasToken {
			return RouteDashboard
		}
		return RouteLogin
	case pattern == RouteLogin || pattern == RouteRegister:
		if hasToken {
			return RouteDashboard
		}
	case isAuthenticatedRoute(pattern):
		if !hasToken {
			return RouteLogin
		}
	}
	return p
}
