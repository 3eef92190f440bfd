// Package client is the HTTP wrapper around the user-management API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the session and directory
// stores. HTTPClient implements it on net/http with an authTransport that
// plays the part of request/response interceptors:
//
//   - outgoing: attaches "Authorization: Bearer <token>" when an access token
//     is persisted, plus an X-Request-ID on every call;
//   - incoming: on 401 clears both persisted tokens and runs every hook
//     registered with OnUnauthorized.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the server "error" message.
// Sentinels are matched with errors.Is: ErrUnauthorized (401/403),
// ErrUnavailable (transport failure), ErrMalformedResponse (undecodable body).
package client
