// Package credentials persists the access/refresh token pair between runs.
//
// A non-empty access token is the only local signal that the user may be
// authenticated; the route guard and the session check read nothing else.
package credentials

import "context"

type Repository interface {
	// AccessToken returns the stored access token, or "" when absent.
	AccessToken(ctx context.Context) (string, error)
	// RefreshToken returns the stored refresh token, or "" when absent.
	RefreshToken(ctx context.Context) (string, error)
	// Save stores both tokens atomically, replacing any previous pair.
	Save(ctx context.Context, accessToken, refreshToken string) error
	// Clear removes both tokens. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
