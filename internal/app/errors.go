package service

import "errors"

// Sentinel kinds for service lifecycle and request validation errors.
var (
	ErrAlreadyStarted = errors.New("service already started")
	ErrNotStarted     = errors.New("service not started")
	ErrTooManyMods    = errors.New("too many modifications in request")
)
