// Package models defines the wire types exchanged with the backend REST API.
// Every entity is a read-only snapshot of server state keyed by a
// server-assigned id; the client never patches them locally.
package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sachink160/multitool-client/internal/common"
)

// TokenPair is the access/refresh credential pair issued by /login and
// /refresh. The two tokens are always stored and replaced together.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// AccessExpiry reads the exp claim of the access token without verifying
// its signature. It is informational only; expiry is enforced by the server.
func (p TokenPair) AccessExpiry() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(p.AccessToken, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	if exp == nil {
		return time.Time{}, common.ErrTokenNoExpiry
	}
	return exp.Time, nil
}

// User is the identity record returned by GET /profile.
type User struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	Email               string `json:"email"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
	Fullname            string `json:"fullname,omitempty"`
	Phone               string `json:"phone,omitempty"`
	UserType            string `json:"user_type,omitempty"`
	IsSubscribed        bool   `json:"is_subscribed,omitempty"`
	SubscriptionEndDate string `json:"subscription_end_date,omitempty"`
}

// IsAdmin reports whether the account may open admin-only screens. The
// server enforces the same rule; this only hides what would be rejected.
func (u *User) IsAdmin() bool {
	return u != nil && strings.EqualFold(u.UserType, common.UserTypeAdmin)
}

// UserProfile is the richer /profile view including the usage snapshot.
type UserProfile struct {
	User
	CurrentUsage *UsageInfo `json:"current_usage,omitempty"`
}

// RegisterRequest is the account-creation form.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Fullname string `json:"fullname" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=5,max=20"`
	UserType string `json:"user_type" validate:"required,max=32"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	Fullname *string `json:"fullname,omitempty" validate:"omitempty,max=128"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// MessageResponse is the generic {"message": "..."} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
