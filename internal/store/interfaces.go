package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/internal/password"
	"github.com/MKhiriev/go-recipe-book/models"
)

// UserRepository persists and looks up user accounts.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type UserRepository interface {
	// CreateUser validates and inserts a user with the given password hash.
	// A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.NewUser, hash password.Hash) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no user has the id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when no user has the name.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindCredentials returns the user together with the stored hash.
	// This is the only way to read a hash back.
	FindCredentials(ctx context.Context, username string) (models.User, password.Hash, error)
}

// RecipeRepository persists and lists recipes.
type RecipeRepository interface {
	// CreateRecipe validates and inserts a recipe and returns it together
	// with its owner. A missing owner yields ErrOwnerNotFound.
	CreateRecipe(ctx context.Context, recipe models.NewRecipe) (models.Recipe, error)

	// ListRecipes returns every recipe with its owner, ordered by id.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
}

// ErrorClassificator maps driver errors of one SQL dialect onto
// [ConstraintKind] values.
type ErrorClassificator interface {
	Classify(err error) ConstraintKind
}
