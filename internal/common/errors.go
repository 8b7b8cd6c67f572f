// Package common defines sentinel errors shared across stallkeeper
// components. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (raised locally, before any I/O).
	ErrValidation = errors.New("validation error")

	// Session / auth flow errors.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials deliberately covers wrong password, unknown
	// username and not-yet-approved accounts alike.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// Registration errors.
	ErrUsernameTaken = errors.New("username taken")
)
