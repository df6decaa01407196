package service

import "errors"

// Error kinds returned by the services. Handlers map these to HTTP
// status codes; anything else is an internal failure.
var (
	ErrNotFound           = errors.New("article not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// ValidationError marks a missing or empty required field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
