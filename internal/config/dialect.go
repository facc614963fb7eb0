package config

import (
	"errors"
	"strings"
)

// Dialect names the SQL backend a DSN points to.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// DetectDialect infers the SQL dialect from the DSN.
func DetectDialect(dsn string) (Dialect, error) {
	lower := strings.ToLower(dsn)
	path, _, _ := strings.Cut(lower, "?")

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasPrefix(lower, "sqlite://"),
		strings.HasSuffix(path, ".db"),
		strings.HasSuffix(path, ".sqlite"),
		strings.HasSuffix(path, ".sqlite3"):
		return DialectSQLite, nil
	default:
		return "", ErrUnsupportedDSN
	}
}

// SQLitePath turns a "sqlite://" DSN into what go-sqlite3 accepts; other
// DSNs are returned unchanged.
func SQLitePath(dsn string) string {
	if strings.HasPrefix(strings.ToLower(dsn), "sqlite://") {
		return dsn[len("sqlite://"):]
	}
	return dsn
}
