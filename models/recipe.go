// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recipe is a persisted recipe together with the summary of its owner.
type Recipe struct {
	ID                int64
	Title             string
	Instructions      string
	MinutesToComplete *int

	// UserID references the owning user. It is set once at creation from the
	// authenticated actor and never changes.
	UserID int64

	// Owner is filled by the store from the users table.
	Owner Owner
}

// Owner is the part of a user exposed next to a recipe.
type Owner struct {
	ID       int64
	Username string
}

// RecipeDraft is the client-provided part of a recipe.
// It has no owner field on purpose: ownership always comes from the session.
type RecipeDraft struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// NewRecipe is a draft bound to its owner, ready to be stored.
type NewRecipe struct {
	RecipeDraft
	UserID int64
}

// OwnedBy binds the draft to the given owner.
func (d RecipeDraft) OwnedBy(userID int64) NewRecipe {
	return NewRecipe{RecipeDraft: d, UserID: userID}
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}
