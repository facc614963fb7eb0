// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// recipe book handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgNotLoggedIn is returned by session endpoints when the request
	// carries no live session.
	MsgNotLoggedIn = "Not logged in"

	// MsgUnauthorized is returned by recipe endpoints when the request
	// carries no live session or its user no longer exists.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidCredentials is returned by login for an unknown username, a
	// wrong password and an unreadable body alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUsernameTaken is returned when signup hits an existing username.
	MsgUsernameTaken = "Username has already been taken"

	// MsgInvalidData is returned when the database rejects a row that passed
	// validation.
	MsgInvalidData = "Invalid data was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
