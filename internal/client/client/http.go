package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	transport *authTransport
}

type Option func(*HTTPClient)

// WithBaseTransport replaces the underlying RoundTripper (default
// http.DefaultTransport).
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.transport.base = rt }
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:5000/api"), reading the bearer token from tokens.
func NewHTTPClient(baseURL string, tokens credentials.Repository, logger logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	u.RawQuery, u.Fragment = "", ""

	t := &authTransport{base: http.DefaultTransport, tokens: tokens, logger: logger}
	c := &HTTPClient{baseURL: u, transport: t, http: &http.Client{Transport: t}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) OnUnauthorized(hook UnauthorizedHook) {
	c.transport.addHook(hook)
}

func (c *HTTPClient) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL.String() + "/" + strings.Join(escaped, "/")
}

// do sends a JSON request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func mapError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		apiErr.Message = er.Error
	}

	return apiErr
}

func (c *HTTPClient) Me(ctx context.Context) (*models.MeResponse, error) {
	var resp models.MeResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("auth", "me"), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("auth", "register"), creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("auth", "login"), creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, c.endpoint("users"), nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, fmt.Errorf("%w: empty user list body", ErrMalformedResponse)
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	if err := c.do(ctx, http.MethodGet, c.endpoint("users", id), nil, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: empty user body", ErrMalformedResponse)
	}
	return user, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, patch models.UpdateUserData) (*models.User, error) {
	var user *models.User
	if err := c.do(ctx, http.MethodPut, c.endpoint("users", id), patch, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: empty user body", ErrMalformedResponse)
	}
	return user, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.do(ctx, http.MethodDelete, c.endpoint("users", id), nil, &resp)
	if errors.Is(err, ErrMalformedResponse) {
		// 204 or a non-JSON body still means the user is gone.
		return &models.MessageResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
