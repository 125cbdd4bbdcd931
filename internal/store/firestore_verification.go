package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
	"github.com/MKhiriev/go-id-verifier/models"
)

// firestoreVerificationRepository implements [VerificationRepository] on a
// Firestore collection. The record id doubles as the document id.
type firestoreVerificationRepository struct {
	client     *firestore.Client
	collection string
	ids        *utils.UUIDGenerator
	clock      func() time.Time
	logger     *logger.Logger
}

// NewFirestoreVerificationRepository creates a Firestore client for
// projectID.
func NewFirestoreVerificationRepository(ctx context.Context, projectID, collection string, log *logger.Logger) (*firestoreVerificationRepository, error) {
	if projectID == "" {
		return nil, errors.New("projectID must be provided to create a firestore client")
	}
	if collection == "" {
		collection = models.VerificationRecord{}.TableName()
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Str("func", "NewFirestoreVerificationRepository").Msg("failed to create Firestore client")
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &firestoreVerificationRepository{
		client:     client,
		collection: collection,
		ids:        utils.NewUUIDGenerator(),
		clock:      now,
		logger:     log,
	}, nil
}

func (r *firestoreVerificationRepository) Save(ctx context.Context, record models.VerificationRecord) (models.VerificationRecord, error) {
	ts := r.clock()
	if record.ID == "" {
		record.ID = r.ids.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = ts
	}
	record.UpdatedAt = ts
	record.Explanation = nonNilNarrative(record.Explanation)

	if _, err := r.client.Collection(r.collection).Doc(record.ID).Set(ctx, record); err != nil {
		logger.FromContext(ctx).Error().Err(err).
			Str("func", "*firestoreVerificationRepository.Save").
			Str("record_id", record.ID).
			Msg("error saving verification document")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (r *firestoreVerificationRepository) GetByID(ctx context.Context, id string) (models.VerificationRecord, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.VerificationRecord{}, ErrVerificationNotFound
	}
	if err != nil {
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var record models.VerificationRecord
	if err = snap.DataTo(&record); err != nil {
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	record.Explanation = nonNilNarrative(record.Explanation)

	return record, nil
}

func (r *firestoreVerificationRepository) ListRecent(ctx context.Context, limit int) ([]models.VerificationRecord, error) {
	if limit <= 0 {
		return []models.VerificationRecord{}, nil
	}

	docs, err := r.client.Collection(r.collection).
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*firestoreVerificationRepository.ListRecent").Msg("error listing verification documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	records := make([]models.VerificationRecord, 0, len(docs))
	for _, doc := range docs {
		var record models.VerificationRecord
		if err = doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.Explanation = nonNilNarrative(record.Explanation)
		records = append(records, record)
	}

	return records, nil
}

func (r *firestoreVerificationRepository) Ping(ctx context.Context) error {
	_, err := r.client.Collection(r.collection).Limit(1).Documents(ctx).GetAll()
	return err
}

func (r *firestoreVerificationRepository) Close() error {
	return r.client.Close()
}
