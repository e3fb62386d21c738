package services

import "errors"

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrForbidden        = errors.New("admin access required")
)
