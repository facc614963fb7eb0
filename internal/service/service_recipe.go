package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository
	logger           *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes failed: %w", err)
	}

	return recipes, nil
}

// CreateRecipe binds the draft to ownerID and stores it. Validation errors
// from the store are returned as is.
func (s *recipeService) CreateRecipe(ctx context.Context, ownerID int64, draft models.RecipeDraft) (models.Recipe, error) {
	recipe, err := s.recipeRepository.CreateRecipe(ctx, draft.OwnedBy(ownerID))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("owner", ownerID).Msg("recipe creation failed")
		return models.Recipe{}, fmt.Errorf("recipe creation failed: %w", err)
	}

	return recipe, nil
}
