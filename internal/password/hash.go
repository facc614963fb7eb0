// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"database/sql/driver"
	"fmt"
)

const redacted = "[REDACTED]"

// Hash is a one-way password digest.
// The zero value is an empty hash that never verifies.
type Hash struct {
	digest []byte
}

// IsZero reports whether the hash carries no digest.
func (h Hash) IsZero() bool {
	return len(h.digest) == 0
}

// String implements fmt.Stringer without revealing the digest.
func (h Hash) String() string {
	return redacted
}

// GoString keeps %#v from printing the digest.
func (h Hash) GoString() string {
	return "password.Hash{" + redacted + "}"
}

// MarshalJSON never writes the digest.
func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Value implements driver.Valuer so the store can persist the hash.
func (h Hash) Value() (driver.Value, error) {
	if h.IsZero() {
		return nil, ErrEmptyHash
	}
	return string(h.digest), nil
}

// Scan implements sql.Scanner so the store can load the hash.
func (h *Hash) Scan(src any) error {
	switch v := src.(type) {
	case string:
		h.digest = []byte(v)
	case []byte:
		h.digest = append([]byte(nil), v...)
	case nil:
		h.digest = nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedHashSource, src)
	}
	return nil
}
