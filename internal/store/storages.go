package store

import (
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
)

// Storages groups the repositories built on one database pool.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
}

func NewStorages(db *DB, validator validators.Validator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, validator, log),
		RecipeRepository: NewRecipeRepository(db, validator, log),
	}
}
