package lib

import (
	"errors"
)

// Catalog errors
var (
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPasswordRequired   = errors.New("password is required")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// Listing errors
var (
	ErrPresenterClosed = errors.New("presenter closed")
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrInvalidViewMode = errors.New("invalid view mode")
)
