package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/userdesk/internal/jwtx"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// AuthService defines the session operations used by the CLI.
//
// Contract:
//   - CheckAuth: restore the session from the persisted access token.
//   - Register / Login: authenticate and persist the token pair.
//   - Logout: forget the user and both tokens locally.
//   - Invalidate: drop the user after the API rejected the token.
//   - Refresh: replace the session copy of the signed-in user after an edit.
//
// Failures are returned as *OperationError.
type AuthService interface {
	CheckAuth(ctx context.Context) *models.User
	Register(ctx context.Context, creds models.RegisterCredentials) (Result[*models.User], error)
	Login(ctx context.Context, creds models.LoginCredentials) (Result[*models.User], error)
	Logout(ctx context.Context)
	Invalidate(ctx context.Context)
	Refresh(u *models.User) bool

	CurrentUser() *models.User
	Snapshot() models.Session
	HasAccessToken(ctx context.Context) bool
	AccessTokenExpiry(ctx context.Context) (time.Time, error)
}

// SessionStore is the concrete AuthService.
type SessionStore struct {
	client client.Client
	tokens credentials.Repository
	logger logging.Logger

	mu   sync.RWMutex
	user *models.User

	// in-flight counters; a flag reads true while its counter is positive
	signingUp  int
	loggingIn  int
	loggingOut int
	checking   int
	checked    bool
}

var _ AuthService = (*SessionStore)(nil)

// NewSessionStore creates a store with no user. CheckingAuth reports true
// until the first CheckAuth completes.
func NewSessionStore(c client.Client, tokens credentials.Repository, logger logging.Logger) *SessionStore {
	return &SessionStore{client: c, tokens: tokens, logger: logger}
}

func (s *SessionStore) track(counter *int) func() {
	s.mu.Lock()
	*counter++
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		*counter--
		s.mu.Unlock()
	}
}

func (s *SessionStore) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u.Clone()
	s.mu.Unlock()
}

func (s *SessionStore) clearTokens(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear credentials", "error", err)
	}
}

// CheckAuth resolves the current user from the persisted access token.
// Without a token it makes no request. Any failure, including a response
// without a user, clears the stored tokens.
func (s *SessionStore) CheckAuth(ctx context.Context) *models.User {
	done := s.track(&s.checking)
	defer func() {
		s.mu.Lock()
		s.checked = true
		s.mu.Unlock()
		done()
	}()

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cannot read access token", "error", err)
	}
	if token == "" {
		s.setUser(nil)
		return nil
	}

	resp, err := s.client.Me(ctx)
	if err == nil && (resp == nil || resp.User == nil) {
		err = fmt.Errorf("%w: no user in identity response", client.ErrMalformedResponse)
	}
	if err != nil {
		s.logger.Info(ctx, "stored session rejected", "error", err)
		s.clearTokens(ctx)
		s.setUser(nil)
		return nil
	}

	s.setUser(resp.User)
	s.logger.Debug(ctx, "session restored", "user_id", resp.User.ID)
	return resp.User.Clone()
}

func (s *SessionStore) Register(ctx context.Context, creds models.RegisterCredentials) (Result[*models.User], error) {
	done := s.track(&s.signingUp)
	defer done()

	return s.authenticate(ctx, "register", "Registration successful", "Registration failed",
		func() (*models.AuthResponse, error) { return s.client.Register(ctx, creds) })
}

func (s *SessionStore) Login(ctx context.Context, creds models.LoginCredentials) (Result[*models.User], error) {
	done := s.track(&s.loggingIn)
	defer done()

	return s.authenticate(ctx, "login", "Login successful", "Login failed",
		func() (*models.AuthResponse, error) { return s.client.Login(ctx, creds) })
}

// authenticate is shared by Register and Login: both answer with a token
// pair and the user.
func (s *SessionStore) authenticate(ctx context.Context, op, okMsg, failMsg string, call func() (*models.AuthResponse, error)) (Result[*models.User], error) {
	resp, err := call()
	if err == nil && (resp == nil || resp.AccessToken == "" || resp.User == nil) {
		err = fmt.Errorf("%w: missing token or user", client.ErrMalformedResponse)
	}
	if err != nil {
		s.logger.Warn(ctx, op+" failed", "error", err)
		return Result[*models.User]{}, failure(op, failMsg, err)
	}

	if err := s.tokens.Save(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		s.logger.Error(ctx, "failed to persist credentials", "error", err)
		return Result[*models.User]{}, failure(op, failMsg, err)
	}
	s.setUser(resp.User)

	msg := resp.Message
	if msg == "" {
		msg = okMsg
	}
	s.logger.Info(ctx, op+" succeeded", "user_id", resp.User.ID)
	return Result[*models.User]{Value: resp.User.Clone(), Message: msg}, nil
}

// Logout is local only and cannot fail; storage errors are logged.
func (s *SessionStore) Logout(ctx context.Context) {
	done := s.track(&s.loggingOut)
	defer done()

	s.setUser(nil)
	s.clearTokens(ctx)
	s.logger.Info(ctx, "logged out")
}

// Invalidate forgets the user. It is registered as an unauthorized hook, so
// the tokens are already gone when it runs.
func (s *SessionStore) Invalidate(ctx context.Context) {
	s.setUser(nil)
	s.logger.Debug(ctx, "session invalidated")
}

// Refresh replaces the current user with u when both have the same id and
// reports whether it did. Tokens are never touched.
func (s *SessionStore) Refresh(u *models.User) bool {
	if u == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ID != u.ID {
		return false
	}
	s.user = u.Clone()
	return true
}

func (s *SessionStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *SessionStore) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{
		User:         s.user.Clone(),
		SigningUp:    s.signingUp > 0,
		LoggingIn:    s.loggingIn > 0,
		LoggingOut:   s.loggingOut > 0,
		CheckingAuth: s.checking > 0 || !s.checked,
	}
}

// HasAccessToken reports whether a token is persisted. The route guard uses
// it as the only authentication signal.
func (s *SessionStore) HasAccessToken(ctx context.Context) bool {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		s.logger.Warn(ctx, "cannot read access token", "error", err)
		return false
	}
	return token != ""
}

// AccessTokenExpiry returns the exp claim of the stored token, for display.
func (s *SessionStore) AccessTokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("read access token: %w", err)
	}
	if token == "" {
		return time.Time{}, jwtx.ErrNoExpiry
	}
	return jwtx.ExpiresAt(token)
}
