package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps *sql.DB with the driver name, the placeholder format of its SQL
// dialect and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens a connection for cfg.Driver and applies migrations.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Error().Err(err).Str("func", "NewConnectDB").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// statementBuilder returns a squirrel builder using the dialect placeholders.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	placeholder := db.placeholder
	if placeholder == nil {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// retryable reports whether the classifier considers err transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
