// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store maps session identifiers to user ids.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set binds sessionID to userID, replacing any previous binding.
	Set(ctx context.Context, sessionID string, userID int64) error

	// Get returns the user bound to sessionID or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (int64, error)

	// Clear removes sessionID. Clearing an unknown session is not an error.
	Clear(ctx context.Context, sessionID string) error
}
