package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

type recipeRepository struct {
	db        *DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, validator validators.Validator, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:        db,
		validator: validator,
		logger:    logger,
	}
}

// CreateRecipe inserts the recipe in one statement and then reads the owner
// summary. A foreign key violation means the owner is gone and yields
// [ErrOwnerNotFound].
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.NewRecipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, err
	}

	query, args, err := buildInsertRecipeQuery(r.db.builder, recipe)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error building query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Recipe
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Title, &created.Instructions, &created.MinutesToComplete, &created.UserID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error inserting recipe")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.Recipe{}, ErrOwnerNotFound
		case CheckViolation, NotNullViolation:
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	owner, err := r.owner(ctx, created.UserID)
	if err != nil {
		return models.Recipe{}, err
	}
	created.Owner = owner

	return created, nil
}

func (r *recipeRepository) owner(ctx context.Context, userID int64) (models.Owner, error) {
	query, args, err := buildSelectUserQuery(r.db.builder, sq.Eq{"id": userID})
	if err != nil {
		return models.Owner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.ImageURL, &user.Bio)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Owner{}, ErrOwnerNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.owner").Msg("error selecting owner")
		return models.Owner{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user.Owner(), nil
}

// ListRecipes returns every recipe joined with its owner. The result is
// never nil.
func (r *recipeRepository) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error selecting recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&recipe.Instructions,
			&recipe.MinutesToComplete,
			&recipe.UserID,
			&recipe.Owner.Username,
		); err != nil {
			log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error scanning recipe")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		recipe.Owner.ID = recipe.UserID
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error iterating recipes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}
