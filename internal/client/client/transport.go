package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/google/uuid"
)

// authTransport decorates every request with the bearer token and reacts to
// 401 answers, whichever store issued the call.
type authTransport struct {
	base   http.RoundTripper
	tokens credentials.Repository
	logger logging.Logger

	mu    sync.RWMutex
	hooks []UnauthorizedHook
}

func (t *authTransport) addHook(h UnauthorizedHook) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, h)
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not modify the caller's request.
	req = req.Clone(ctx)

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	token, err := t.tokens.AccessToken(ctx)
	if err != nil {
		t.logger.Warn(ctx, "cannot read access token", "error", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	t.logger.Debug(ctx, "api request", "method", req.Method, "path", req.URL.Path, "request_id", requestID)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	t.logger.Debug(ctx, "api response", "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized {
		t.unauthorized(ctx)
	}

	return resp, nil
}

func (t *authTransport) unauthorized(ctx context.Context) {
	if err := t.tokens.Clear(ctx); err != nil {
		t.logger.Error(ctx, "cannot clear credentials after 401", "error", err)
	}

	t.mu.RLock()
	hooks := append([]UnauthorizedHook(nil), t.hooks...)
	t.mu.RUnlock()

	for _, h := range hooks {
		h(ctx)
	}
}
