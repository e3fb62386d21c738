// Package client is the HTTP client for the Multitool backend.
//
// # Overview
//
// HTTPClient is the single chokepoint for backend calls. It
//  1. attaches "Authorization: Bearer <access token>" when a token is stored,
//     and omits the header entirely otherwise;
//  2. on a 401, refreshes the token pair once and replays the original
//     request exactly once with the new access token;
//  3. when the refresh fails, clears the token store, notifies the
//     registered auth-failure handler and returns ErrUnauthorized;
//  4. converts any other non-2xx response into an *APIError carrying the
//     server's message.
//
// JSON, form, multipart and download requests all share this contract.
// Request bodies are materialised into memory before the first attempt so
// the retry sends identical bytes.
//
// # Refresh
//
// Concurrent refreshes are coalesced: all callers that observe a 401 while a
// refresh is in flight wait for that single refresh. A caller whose failed
// request carried an access token that has already been replaced retries
// directly without refreshing again.
//
// # Error Handling
//
// Sentinel errors for errors.Is: ErrUnauthorized, ErrUnavailable,
// ErrNoRefreshToken. Status errors are *APIError; errors.Is(err,
// ErrUnauthorized) also holds for 401 and 403 status errors.
//
// # Local Database
//
// InitDatabase opens the SQLite file used by the token store and applies the
// embedded goose migrations.
package client
