// Package password hashes raw passwords and verifies them against stored
// hashes.
//
// The resulting [Hash] is opaque: it can be persisted and loaded by the
// store through database/sql, but it exposes no accessor for the digest and
// never prints or serialises it.
package password
