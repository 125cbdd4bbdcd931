package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-verifier/internal/adapter"
	"github.com/MKhiriev/go-id-verifier/internal/crypto"
	"github.com/MKhiriev/go-id-verifier/internal/extractor"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/metrics"
	"github.com/MKhiriev/go-id-verifier/internal/risk"
	"github.com/MKhiriev/go-id-verifier/internal/store"
	"github.com/MKhiriev/go-id-verifier/models"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 1000

	// statsWindow is how many recent records the statistics cover.
	statsWindow = 1000

	serviceName = "go-id-verifier"
)

// Failure stages reported to metrics.
const (
	stageObjectStorage  = "object_storage"
	stageImageAnalysis  = "image_analysis"
	stageTextExtraction = "text_extraction"
	stageEncryption     = "encryption"
	stagePersist        = "persist"
)

type verificationService struct {
	objects  store.ObjectStorage
	records  store.VerificationRepository
	images   adapter.ImageAnalyzer
	text     adapter.TextExtractor
	fraud    adapter.FraudModel
	envelope crypto.PiiEnvelope
	metrics  *metrics.Metrics
	clock    func() time.Time

	logger *logger.Logger
}

// NewVerificationService wires the pipeline collaborators. m may be nil.
func NewVerificationService(
	objects store.ObjectStorage,
	records store.VerificationRepository,
	images adapter.ImageAnalyzer,
	text adapter.TextExtractor,
	fraud adapter.FraudModel,
	envelope crypto.PiiEnvelope,
	m *metrics.Metrics,
	logger *logger.Logger,
) VerificationService {
	return &verificationService{
		objects:  objects,
		records:  records,
		images:   images,
		text:     text,
		fraud:    fraud,
		envelope: envelope,
		metrics:  m,
		clock:    time.Now,
		logger:   logger,
	}
}

// Verify runs the pipeline. Any collaborator failure before persistence
// aborts the run; nothing is stored in that case. The fraud model never
// fails the run.
func (s *verificationService) Verify(ctx context.Context, upload models.Upload) (models.VerificationResult, error) {
	started := s.clock()
	fingerprint := crypto.Fingerprint(upload.Data)
	log := logger.FromContext(ctx).ForVerification("", fingerprint)

	key, err := s.objects.Put(ctx, upload.FileName, upload.ContentType, upload.Data)
	if err != nil {
		return s.fail(log, stageObjectStorage, fmt.Errorf("%w: %w", ErrObjectStorage, err))
	}

	data, err := s.objects.Get(ctx, key)
	if err != nil {
		return s.fail(log, stageObjectStorage, fmt.Errorf("%w: %w", ErrObjectStorage, err))
	}

	faces, err := s.images.DetectFaces(ctx, data)
	if err != nil {
		return s.fail(log, stageImageAnalysis, fmt.Errorf("%w: %w", ErrImageAnalysis, err))
	}

	tamper, err := s.images.DetectTampering(ctx, data)
	if err != nil {
		return s.fail(log, stageImageAnalysis, fmt.Errorf("%w: %w", ErrImageAnalysis, err))
	}

	quality, err := s.images.AnalyzeQuality(ctx, data)
	if err != nil {
		return s.fail(log, stageImageAnalysis, fmt.Errorf("%w: %w", ErrImageAnalysis, err))
	}

	lines, err := s.text.ExtractLines(ctx, data)
	if err != nil {
		return s.fail(log, stageTextExtraction, fmt.Errorf("%w: %w", ErrTextExtraction, err))
	}

	fields := extractor.Extract(lines)
	bundle := models.NewSignalBundle(faces, tamper, quality, fields)

	_, hint := risk.Score(bundle, 0)
	adjustment := s.fraud.Score(ctx, fingerprint, hint.Short())
	assessment := risk.Assess(bundle, adjustment)

	log.Debug().
		Any("fields", fields.Presence()).
		Int("lines", len(lines)).
		Int("adjustment", adjustment).
		Int("score", assessment.Score).
		Msg("document assessed")

	protected, err := s.envelope.EncryptFields(fields)
	if err != nil {
		return s.fail(log, stageEncryption, fmt.Errorf("%w: %w", ErrProtectFields, err))
	}

	record := models.VerificationRecord{
		FileName:            upload.FileName,
		FileHash:            fingerprint,
		StorageBucket:       s.objects.Bucket(),
		StorageKey:          key,
		RiskLevel:           assessment.Tier.String(),
		RiskScore:           assessment.Score,
		Explanation:         assessment.Narrative,
		ExtractedData:       protected,
		FaceMatchConfidence: faces.HighestConfidence,
		IsTampered:          tamper.Tampered,
	}

	saved, err := s.records.Save(ctx, record)
	if err != nil {
		return s.fail(log, stagePersist, fmt.Errorf("%w: %w", ErrPersistRecord, err))
	}

	s.metrics.IncrementVerification(assessment.Tier.Short(), assessment.Score)
	s.metrics.ObserveVerifyLatency(s.clock().Sub(started))

	logger.FromContext(ctx).ForVerification(saved.ID, fingerprint).Info().
		Str("risk_level", saved.RiskLevel).
		Int("risk_score", saved.RiskScore).
		Msg("verification completed")

	return models.NewVerificationResult(saved.ID, assessment, fields), nil
}

func (s *verificationService) fail(log *logger.Logger, stage string, err error) (models.VerificationResult, error) {
	s.metrics.IncrementFailure(stage)
	log.Error().Err(err).Str("func", "*verificationService.Verify").Str("stage", stage).Msg("verification failed")
	return models.VerificationResult{}, err
}

func (s *verificationService) GetVerification(ctx context.Context, id string) (models.VerificationRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrVerificationNotFound) {
			logger.FromContext(ctx).Error().Err(err).Str("func", "*verificationService.GetVerification").Str("record_id", id).Msg("error reading verification")
		}
		return models.VerificationRecord{}, err
	}

	return s.decryptRecord(ctx, record)
}

func (s *verificationService) ListVerifications(ctx context.Context, limit int) ([]models.VerificationRecord, error) {
	records, err := s.records.ListRecent(ctx, normalizeLimit(limit))
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*verificationService.ListVerifications").Msg("error listing verifications")
		return nil, err
	}

	decrypted := make([]models.VerificationRecord, 0, len(records))
	for _, record := range records {
		r, err := s.decryptRecord(ctx, record)
		if err != nil {
			return nil, err
		}
		decrypted = append(decrypted, r)
	}

	return decrypted, nil
}

func (s *verificationService) decryptRecord(ctx context.Context, record models.VerificationRecord) (models.VerificationRecord, error) {
	fields, err := s.envelope.DecryptFields(record.ExtractedData)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*verificationService.decryptRecord").Str("record_id", record.ID).Msg("error decrypting identity fields")
		return models.VerificationRecord{}, fmt.Errorf("%w: %w", ErrReadRecord, err)
	}

	record.ExtractedData = fields
	return record, nil
}

// Stats counts tiers over the latest records. Records whose level cannot be
// parsed count towards the total only.
func (s *verificationService) Stats(ctx context.Context) (models.VerificationStats, error) {
	records, err := s.records.ListRecent(ctx, statsWindow)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "*verificationService.Stats").Msg("error listing verifications")
		return models.VerificationStats{}, err
	}

	return computeStats(records), nil
}

func computeStats(records []models.VerificationRecord) models.VerificationStats {
	counts := make(map[models.RiskTier]int, 3)
	total := 0
	for _, r := range records {
		total += r.RiskScore
		if tier, err := models.ParseRiskTier(r.RiskLevel); err == nil {
			counts[tier]++
		}
	}

	stats := models.VerificationStats{
		TotalVerifications: len(records),
		LowRiskCount:       counts[models.RiskLow],
		MediumRiskCount:    counts[models.RiskMedium],
		HighRiskCount:      counts[models.RiskHigh],
		RiskDistribution:   make(map[string]int, 3),
	}
	for _, tier := range models.RiskTiers() {
		stats.RiskDistribution[strings.ToLower(tier.Short())] = counts[tier]
	}
	if len(records) > 0 {
		stats.AverageRiskScore = math.Round(float64(total)/float64(len(records))*100) / 100
	}

	return stats
}

func (s *verificationService) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:    "UP",
		Service:   serviceName,
		Timestamp: s.clock().UnixMilli(),
	}

	// Backend failures are reported, never returned, so the group never cancels.
	var g errgroup.Group
	g.Go(func() error {
		status.ObjectStorage = connectivity(s.objects.Ping(ctx))
		return nil
	})
	g.Go(func() error {
		status.RecordStore = connectivity(s.records.Ping(ctx))
		return nil
	})
	_ = g.Wait()

	return status
}

func connectivity(err error) string {
	if err != nil {
		return "ERROR: " + err.Error()
	}
	return "CONNECTED"
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
