// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// Hasher computes and checks password hashes.
type Hasher interface {
	// Hash derives a one-way hash from the raw password.
	Hash(raw string) (Hash, error)

	// Verify reports whether raw matches h.
	Verify(raw string, h Hash) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher backed by bcrypt.
// A cost outside bcrypt's accepted range yields ErrInvalidCost.
func NewBcryptHasher(cost int) (Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (b *bcryptHasher) Hash(raw string) (Hash, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), b.cost)
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return Hash{digest: digest}, nil
}

// Verify relies on bcrypt's constant-time comparison.
func (b *bcryptHasher) Verify(raw string, h Hash) bool {
	if h.IsZero() {
		return false
	}
	return bcrypt.CompareHashAndPassword(h.digest, []byte(raw)) == nil
}
