// Package common contains shared constants and small helpers used across
// userdesk components.
package common

// Keys of the persisted credential pair.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

// HTTP header names and values attached by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	BearerScheme            = "Bearer"
	RequestIDHeaderName     = "X-Request-ID"
)
