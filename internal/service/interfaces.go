package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-book/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users.
type AuthService interface {
	// Signup validates the request, hashes the password and creates the
	// user. The username is stored trimmed.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login returns the user matching the credentials. Unknown users and
	// wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// UserByID resolves a session's user id to a live user.
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// RecipeService lists and creates recipes.
type RecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// CreateRecipe stores the draft owned by ownerID. The owner always comes
	// from the authenticated session.
	CreateRecipe(ctx context.Context, ownerID int64, draft models.RecipeDraft) (models.Recipe, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
