package domain

import "errors"

var (
	// Authentication / account errors.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")

	// Authorization errors.
	ErrForbidden = errors.New("not enough permissions")

	// Generic persistence / validation errors.
	ErrNotFound      = errors.New("record not found")
	ErrInvalidID     = errors.New("invalid identifier")
	ErrInvalidStatus = errors.New("invalid status")
)
