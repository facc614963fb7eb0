package http

import "github.com/MKhiriev/go-recipe-book/models"

// Response views are built field by field so nothing is serialized by
// accident.

type userView struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

func newUserView(u models.User) userView {
	return userView{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

type ownerView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type recipeView struct {
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	User              ownerView `json:"user"`
}

func newRecipeView(r models.Recipe) recipeView {
	return recipeView{
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		User: ownerView{
			ID:       r.Owner.ID,
			Username: r.Owner.Username,
		},
	}
}

// newRecipeViews never returns nil so an empty list encodes as [].
func newRecipeViews(recipes []models.Recipe) []recipeView {
	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, newRecipeView(r))
	}
	return views
}
