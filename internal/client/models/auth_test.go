package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/common"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestTokenPair_Complete(t *testing.T) {
	require.True(t, TokenPair{AccessToken: "a", RefreshToken: "r"}.Complete())
	require.False(t, TokenPair{AccessToken: "a"}.Complete())
	require.False(t, TokenPair{RefreshToken: "r"}.Complete())
}

func TestTokenPair_AccessExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	p := TokenPair{AccessToken: signed(t, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()})}

	got, err := p.AccessExpiry()
	require.NoError(t, err)
	require.True(t, exp.Equal(got))
}

func TestTokenPair_AccessExpiry_NoClaim(t *testing.T) {
	p := TokenPair{AccessToken: signed(t, jwt.MapClaims{"sub": "u1"})}
	_, err := p.AccessExpiry()
	require.ErrorIs(t, err, common.ErrTokenNoExpiry)
}

func TestTokenPair_AccessExpiry_Garbage(t *testing.T) {
	_, err := TokenPair{AccessToken: "not-a-jwt"}.AccessExpiry()
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestUser_IsAdmin(t *testing.T) {
	require.True(t, (&User{UserType: "admin"}).IsAdmin())
	require.True(t, (&User{UserType: "Admin"}).IsAdmin())
	require.False(t, (&User{UserType: "user"}).IsAdmin())
	require.False(t, (*User)(nil).IsAdmin())
}
