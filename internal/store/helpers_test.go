package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/password"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

const validInstructions = "Mix everything together, then bake for forty minutes until golden."

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return wrapDB(conn, config.DialectPostgres, logger.Nop()), mock
}

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "recipes.db")

	db, err := NewConnectSQLite(t.Context(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newTestHash(t *testing.T, raw string) password.Hash {
	t.Helper()
	hasher, err := password.NewBcryptHasher(4)
	require.NoError(t, err)
	h, err := hasher.Hash(raw)
	require.NoError(t, err)
	return h
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T {
	return &v
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func newValidator() validators.Validator {
	return validators.NewRecipeBookValidator()
}

