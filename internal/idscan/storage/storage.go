package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
)

// ScanStore holds scan results in memory for short-lived retrieval by the
// scanning UI. Nothing is written to disk or a database: only the extracted
// fields are stored, never the recognized text or the source image, and
// records expire after a TTL.
type ScanStore struct {
	mu    sync.RWMutex
	scans map[string]*domain.ScanRecord
	ttl   time.Duration
}

// NewScanStore creates an in-memory scan store with the given TTL and
// starts its cleanup loop.
func NewScanStore(ttl time.Duration) *ScanStore {
	s := &ScanStore{
		scans: make(map[string]*domain.ScanRecord),
		ttl:   ttl,
	}
	go s.cleanupLoop()
	return s
}

// NewScanID creates a random scan identifier
func NewScanID() string {
	return uuid.New().String()
}

// Store stores a scan record
func (s *ScanStore) Store(rec *domain.ScanRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scans[rec.ScanID] = rec
}

// Get retrieves a scan record by ID, or nil if absent or expired
func (s *ScanStore) Get(scanID string) *domain.ScanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.scans[scanID]
	if !ok || time.Since(rec.CreatedAt) > s.ttl {
		return nil
	}
	return rec
}

// Delete removes a scan record
func (s *ScanStore) Delete(scanID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scans, scanID)
}

// cleanupLoop periodically removes expired records
func (s *ScanStore) cleanupLoop() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for range ticker.C {
		s.cleanup()
	}
}

func (s *ScanStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	for id, rec := range s.scans {
		if rec.CreatedAt.Before(cutoff) {
			delete(s.scans, id)
		}
	}
}
