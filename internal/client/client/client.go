package client

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// UnauthorizedHook runs after a 401 response has cleared the stored tokens.
type UnauthorizedHook func(ctx context.Context)

type Client interface {
	Me(ctx context.Context) (*models.MeResponse, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UpdateUserData) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.MessageResponse, error)

	OnUnauthorized(hook UnauthorizedHook)
}
