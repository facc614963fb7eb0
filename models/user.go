// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered account.
// It deliberately carries no credential material: the password hash lives
// only inside the store and is handed out as an opaque value by
// store.UserRepository.FindCredentials.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique, non-blank login name.
	Username string `json:"username"`

	// ImageURL is an optional avatar link. Nil means the user never set one.
	ImageURL *string `json:"image_url"`

	// Bio is an optional free-form description.
	Bio *string `json:"bio"`
}

// Owner returns the short owner summary embedded into recipes.
func (u User) Owner() Owner {
	return Owner{ID: u.ID, Username: u.Username}
}

// NewUser holds the profile fields of an account that is about to be created.
type NewUser struct {
	Username string
	ImageURL *string
	Bio      *string
}

// SignupRequest is the payload accepted by the signup endpoint.
// Password is the raw password; it is hashed by the auth service and
// dropped right after.
type SignupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// Profile strips the raw password from the request.
func (r SignupRequest) Profile() NewUser {
	return NewUser{
		Username: r.Username,
		ImageURL: r.ImageURL,
		Bio:      r.Bio,
	}
}

// Credentials is the payload accepted by the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
