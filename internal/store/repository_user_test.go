package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"slices"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := &userRepository{
		db:        db,
		validator: newValidator(),
		logger:    logger.Nop(),
	}
	return repo, mock
}

var insertUserSQL = regexp.QuoteMeta("INSERT INTO users (username,password_hash,image_url,bio) VALUES ($1,$2,$3,$4) RETURNING id, username, image_url, bio")

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	hash := newTestHash(t, "secret")

	rows := sqlmock.NewRows(userColumns).AddRow(1, "john", nil, "cooks a lot")
	mock.ExpectQuery(insertUserSQL).
		WithArgs("john", sqlmock.AnyArg(), nil, "cooks a lot").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.NewUser{Username: "john", Bio: ptr("cooks a lot")}, hash)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john", created.Username)
	assert.Nil(t, created.ImageURL)
	require.NotNil(t, created.Bio)
	assert.Equal(t, "cooks a lot", *created.Bio)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_BlankUsernameNeverHitsDB(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "   "}, newTestHash(t, "secret"))
	require.ErrorIs(t, err, validators.ErrEmptyUsername)
	require.ErrorIs(t, err, validators.ErrValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unique violation", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrUsernameAlreadyExists},
		{name: "check violation", dbErr: pgError(pgerrcode.CheckViolation), wantErr: ErrConstraintViolation},
		{name: "not null violation", dbErr: pgError(pgerrcode.NotNullViolation), wantErr: ErrConstraintViolation},
		{name: "network error", dbErr: errors.New("db network error"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery(insertUserSQL).WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "john"}, newTestHash(t, "secret"))
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// wrong shape → scan error
	mock.ExpectQuery(insertUserSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.CreateUser(context.Background(), models.NewUser{Username: "john"}, newTestHash(t, "secret"))
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByID(t *testing.T) {
	query := regexp.QuoteMeta("SELECT id, username, image_url, bio FROM users WHERE id = $1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(query).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(7, "ann", "https://img", nil))

		user, err := repo.FindUserByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "ann", user.Username)
		require.NotNil(t, user.ImageURL)
		assert.Equal(t, "https://img", *user.ImageURL)
		assert.Nil(t, user.Bio)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByID(context.Background(), 7)
		require.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindUserByID(context.Background(), 7)
		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindCredentials(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	stored := newTestHash(t, "secret")
	digest, err := stored.Value()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, image_url, bio, password_hash FROM users WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(slices.Concat(userColumns, []string{"password_hash"})).AddRow(1, "john", nil, nil, digest))

	user, hash, err := repo.FindCredentials(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
	assert.False(t, hash.IsZero())
	assert.Equal(t, stored, hash)
}

func TestFindCredentials_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("FROM users").WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, hash, err := repo.FindCredentials(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNoUserWasFound)
	assert.True(t, hash.IsZero())
}
