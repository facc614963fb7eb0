package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/password"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are reported with the request trace id.
type userRepository struct {
	db        *DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, validator validators.Validator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:        db,
		validator: validator,
		logger:    logger,
	}
}

// CreateUser inserts the user and returns the stored row.
//
// Error handling:
//   - blank username → validation error, nothing is written;
//   - zero hash → [password.ErrEmptyHash];
//   - unique violation → [ErrUsernameAlreadyExists];
//   - check / not-null violation → [ErrConstraintViolation];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.NewUser, hash password.Hash) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}
	if hash.IsZero() {
		return models.User{}, password.ErrEmptyHash
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user, hash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Username, &created.ImageURL, &created.Bio)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		case CheckViolation, NotNullViolation:
			return models.User{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.ImageURL, &found.Bio)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// FindCredentials loads the user and the stored password hash.
func (r *userRepository) FindCredentials(ctx context.Context, username string) (models.User, password.Hash, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCredentials").Msg("error building query")
		return models.User{}, password.Hash{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		found models.User
		hash  password.Hash
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.ImageURL, &found.Bio, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, password.Hash{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCredentials").Msg("error selecting credentials")
		return models.User{}, password.Hash{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, hash, nil
}
