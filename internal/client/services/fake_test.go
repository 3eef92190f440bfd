package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

const (
	testTimeout = 2 * time.Second
	testTick    = 5 * time.Millisecond
)

// fakeClient implements client.Client. Each method delegates to its func
// field when set and records the call.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	MeFn       func(ctx context.Context) (*models.MeResponse, error)
	RegisterFn func(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error)
	LoginFn    func(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	ListFn     func(ctx context.Context) ([]models.User, error)
	GetFn      func(ctx context.Context, id string) (*models.User, error)
	UpdateFn   func(ctx context.Context, id string, patch models.UpdateUserData) (*models.User, error)
	DeleteFn   func(ctx context.Context, id string) (*models.MessageResponse, error)

	hooks []client.UnauthorizedHook
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Me(ctx context.Context) (*models.MeResponse, error) {
	f.record("Me")
	if f.MeFn == nil {
		return &models.MeResponse{}, nil
	}
	return f.MeFn(ctx)
}

func (f *fakeClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	f.record("Register")
	if f.RegisterFn == nil {
		return &models.AuthResponse{}, nil
	}
	return f.RegisterFn(ctx, creds)
}

func (f *fakeClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return &models.AuthResponse{}, nil
	}
	return f.LoginFn(ctx, creds)
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.record("ListUsers")
	if f.ListFn == nil {
		return []models.User{}, nil
	}
	return f.ListFn(ctx)
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	f.record("GetUser")
	if f.GetFn == nil {
		return &models.User{ID: id}, nil
	}
	return f.GetFn(ctx, id)
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, patch models.UpdateUserData) (*models.User, error) {
	f.record("UpdateUser")
	if f.UpdateFn == nil {
		u := patch.Apply(models.User{ID: id})
		return &u, nil
	}
	return f.UpdateFn(ctx, id, patch)
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) (*models.MessageResponse, error) {
	f.record("DeleteUser")
	if f.DeleteFn == nil {
		return &models.MessageResponse{}, nil
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeClient) OnUnauthorized(hook client.UnauthorizedHook) {
	f.hooks = append(f.hooks, hook)
}

func strptr(s string) *string { return &s }
