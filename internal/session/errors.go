package session

import "errors"

var (
	// ErrSessionNotFound is returned by Store.Get for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	ErrEmptySessionID    = errors.New("empty session id")
	ErrUnknownBackend    = errors.New("unknown session backend")
	ErrCorruptedSession  = errors.New("corrupted session value")
	ErrConnectingToRedis = errors.New("error connecting to redis")
)
