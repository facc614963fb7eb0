package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown username, a
	// wrong password or missing fields. Callers cannot tell these apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
