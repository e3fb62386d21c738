// Package common contains shared constants and sentinel errors used across
// the multitool client components.
package common

// HTTP header names and values used on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
	ContentTypeJSON         = "application/json"
	ContentTypeForm         = "application/x-www-form-urlencoded"
)

// Metadata keys of persisted client state.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	LastUsernameKey = "last_username"
)

// UserTypeAdmin is the user_type value that unlocks admin-only screens.
const UserTypeAdmin = "admin"
