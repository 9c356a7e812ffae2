package service

import (
	"context"
	"time"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/extractor"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/storage"
	"github.com/rajpal07/self-exclusion-app/pkg/logger"
)

// Service runs the field extractor over recognized card text and keeps the
// result available for a short retrieval window. The recognized text and
// token positions are dropped as soon as extraction returns.
type Service struct {
	extractor *extractor.Extractor
	store     *storage.ScanStore
	log       *logger.Logger
}

// NewService creates a new scan service
func NewService(ex *extractor.Extractor, store *storage.ScanStore, log *logger.Logger) *Service {
	return &Service{
		extractor: ex,
		store:     store,
		log:       log,
	}
}

// Scan extracts identity fields from recognized text and optional tokens
// and stores the result under a fresh scan ID. Extraction is synchronous
// and bounded; it cannot fail, only produce a low-confidence result.
func (s *Service) Scan(ctx context.Context, text string, tokens []domain.RecognizedToken) *domain.ScanRecord {
	start := time.Now()

	result := s.extractor.Extract(text, tokens)

	rec := &domain.ScanRecord{
		ScanID:    storage.NewScanID(),
		Result:    result,
		CreatedAt: time.Now(),
	}
	s.store.Store(rec)

	s.log.Info().
		Str("scan_id", rec.ScanID).
		Int("token_count", len(tokens)).
		Bool("name_found", result.Name != nil).
		Bool("dob_found", result.DateOfBirth != nil).
		Bool("id_found", result.IDNumber != nil).
		Int("confidence", result.Confidence).
		Dur("duration", time.Since(start)).
		Msg("id scan processed")

	return rec
}

// GetScan retrieves a scan record by ID, or nil if unknown or expired
func (s *Service) GetScan(scanID string) *domain.ScanRecord {
	return s.store.Get(scanID)
}
