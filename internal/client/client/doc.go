// Package client talks to the Dungeon Keeper backend on behalf of the CLI.
//
// # Overview
//
// The package provides:
//  1. BearerTransport, an http.RoundTripper that attaches the current session
//     credential to every outbound request as "Authorization: Bearer <token>"
//     and stamps each request with an X-Request-ID.
//  2. APIClient, typed calls for the REST endpoints under /api/v1.
//
// The credential is read from a CredentialSource at send time, so a login or
// logout takes effect on the very next request. The dispatcher never decodes
// the credential and never ends the session on its own.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrNotFound. Other non-2xx responses are
// returned as *APIError.
package client
