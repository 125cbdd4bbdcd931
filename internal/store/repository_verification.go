package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
	"github.com/MKhiriev/go-id-verifier/models"
)

// verificationRepository is the SQL implementation of
// [VerificationRepository]. It works against PostgreSQL and SQLite; the
// dialect is carried by [DB].
type verificationRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	clock  func() time.Time
	logger *logger.Logger
}

// NewVerificationRepository constructs a [VerificationRepository] backed by db.
func NewVerificationRepository(db *DB, log *logger.Logger) VerificationRepository {
	log.Debug().Msg("creating verification repository")
	return &verificationRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		clock:  now,
		logger: log,
	}
}

// Save upserts record. New records get an id and a creation time here.
func (r *verificationRepository) Save(ctx context.Context, record models.VerificationRecord) (models.VerificationRecord, error) {
	log := logger.FromContext(ctx)

	ts := r.clock()
	if record.ID == "" {
		record.ID = r.ids.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = ts
	}
	record.UpdatedAt = ts
	record.Explanation = nonNilNarrative(record.Explanation)

	query, args, err := buildUpsertVerificationQuery(r.db.statementBuilder(), record)
	if err != nil {
		log.Error().Err(err).Str("func", "*verificationRepository.Save").Msg("error building upsert query")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).
			Str("func", "*verificationRepository.Save").
			Str("record_id", record.ID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error saving verification record")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (r *verificationRepository) GetByID(ctx context.Context, id string) (models.VerificationRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVerificationByIDQuery(r.db.statementBuilder(), id)
	if err != nil {
		log.Error().Err(err).Str("func", "*verificationRepository.GetByID").Msg("error building select query")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanVerification(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VerificationRecord{}, ErrVerificationNotFound
	}
	if err != nil {
		log.Error().Err(err).
			Str("func", "*verificationRepository.GetByID").
			Str("record_id", id).
			Bool("retryable", r.db.retryable(err)).
			Msg("error scanning verification record")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *verificationRepository) ListRecent(ctx context.Context, limit int) ([]models.VerificationRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.VerificationRecord{}, nil
	}

	query, args, err := buildSelectRecentVerificationsQuery(r.db.statementBuilder(), limit)
	if err != nil {
		log.Error().Err(err).Str("func", "*verificationRepository.ListRecent").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).
			Str("func", "*verificationRepository.ListRecent").
			Bool("retryable", r.db.retryable(err)).
			Msg("error listing verification records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.VerificationRecord, 0, limit)
	for rows.Next() {
		record, scanErr := scanVerification(rows)
		if scanErr != nil {
			log.Error().Err(scanErr).Str("func", "*verificationRepository.ListRecent").Msg("error scanning verification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("func", "*verificationRepository.ListRecent").Msg("error iterating verification rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *verificationRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
