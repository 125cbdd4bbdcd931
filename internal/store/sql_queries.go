package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-verifier/models"
	sq "github.com/Masterminds/squirrel"
)

const verificationsTable = "verifications"

// verificationColumns lists the persisted columns in scan order.
var verificationColumns = []string{
	"id",
	"file_name",
	"file_hash",
	"storage_bucket",
	"storage_key",
	"risk_level",
	"risk_score",
	"explanation",
	"name",
	"id_number",
	"dob",
	"address",
	"expiry_date",
	"face_match_confidence",
	"is_tampered",
	"created_at",
	"updated_at",
}

// upsertSuffix updates every mutable column on an id conflict. created_at
// is left untouched. Both PostgreSQL and SQLite understand this form.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	file_name = excluded.file_name,
	file_hash = excluded.file_hash,
	storage_bucket = excluded.storage_bucket,
	storage_key = excluded.storage_key,
	risk_level = excluded.risk_level,
	risk_score = excluded.risk_score,
	explanation = excluded.explanation,
	name = excluded.name,
	id_number = excluded.id_number,
	dob = excluded.dob,
	address = excluded.address,
	expiry_date = excluded.expiry_date,
	face_match_confidence = excluded.face_match_confidence,
	is_tampered = excluded.is_tampered,
	updated_at = excluded.updated_at`

func buildUpsertVerificationQuery(b sq.StatementBuilderType, r models.VerificationRecord) (string, []any, error) {
	explanation, err := json.Marshal(nonNilNarrative(r.Explanation))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingExplanation, err)
	}

	f := r.ExtractedData
	return b.Insert(verificationsTable).
		Columns(verificationColumns...).
		Values(
			r.ID,
			r.FileName,
			r.FileHash,
			r.StorageBucket,
			r.StorageKey,
			r.RiskLevel,
			r.RiskScore,
			string(explanation),
			nullString(f.Name),
			nullString(f.IDNumber),
			nullString(f.DOB),
			nullString(f.Address),
			nullString(f.ExpiryDate),
			nullFloat(r.FaceMatchConfidence),
			r.IsTampered,
			r.CreatedAt,
			r.UpdatedAt,
		).
		Suffix(upsertSuffix).
		ToSql()
}

func buildSelectVerificationByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(verificationColumns...).
		From(verificationsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectRecentVerificationsQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(verificationColumns...).
		From(verificationsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVerification(row rowScanner) (models.VerificationRecord, error) {
	var (
		r           models.VerificationRecord
		explanation []byte
		fields      [5]nullableString
		confidence  nullableFloat
	)

	err := row.Scan(
		&r.ID,
		&r.FileName,
		&r.FileHash,
		&r.StorageBucket,
		&r.StorageKey,
		&r.RiskLevel,
		&r.RiskScore,
		&explanation,
		&fields[0],
		&fields[1],
		&fields[2],
		&fields[3],
		&fields[4],
		&confidence,
		&r.IsTampered,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return models.VerificationRecord{}, err
	}

	if len(explanation) > 0 {
		if err = json.Unmarshal(explanation, &r.Explanation); err != nil {
			return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrEncodingExplanation, err)
		}
	}
	r.Explanation = nonNilNarrative(r.Explanation)

	r.ExtractedData = models.IdentityFields{
		Name:       fields[0].ptr(),
		IDNumber:   fields[1].ptr(),
		DOB:        fields[2].ptr(),
		Address:    fields[3].ptr(),
		ExpiryDate: fields[4].ptr(),
	}
	r.FaceMatchConfidence = confidence.ptr()
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()

	return r, nil
}

func nonNilNarrative(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// nullableString scans a nullable text column into an optional value.
type nullableString struct {
	value string
	valid bool
}

func (n *nullableString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.value, n.valid = "", false
	case string:
		n.value, n.valid = v, true
	case []byte:
		n.value, n.valid = string(v), true
	default:
		return fmt.Errorf("cannot scan %T into nullable string", src)
	}
	return nil
}

func (n nullableString) ptr() *string {
	if !n.valid {
		return nil
	}
	return &n.value
}

// nullableFloat scans a nullable double column into an optional value.
type nullableFloat struct {
	value float64
	valid bool
}

func (n *nullableFloat) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.value, n.valid = 0, false
	case float64:
		n.value, n.valid = v, true
	case float32:
		n.value, n.valid = float64(v), true
	case int64:
		n.value, n.valid = float64(v), true
	default:
		return fmt.Errorf("cannot scan %T into nullable float", src)
	}
	return nil
}

func (n nullableFloat) ptr() *float64 {
	if !n.valid {
		return nil
	}
	return &n.value
}

// now is the repository clock, truncated to microseconds so values survive a
// round trip through TIMESTAMPTZ unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
