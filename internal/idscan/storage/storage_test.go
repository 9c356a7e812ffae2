package storage_test

import (
	"testing"
	"time"

	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanStore_StoreAndGet(t *testing.T) {
	store := storage.NewScanStore(15 * time.Minute)

	name := "JANE CITIZEN"
	rec := &domain.ScanRecord{
		ScanID:    storage.NewScanID(),
		Result:    domain.ScannedData{Name: &name, Confidence: 80},
		CreatedAt: time.Now(),
	}
	store.Store(rec)

	got := store.Get(rec.ScanID)
	require.NotNil(t, got)
	assert.Equal(t, rec.ScanID, got.ScanID)
	assert.Equal(t, 80, got.Result.Confidence)
}

func TestScanStore_UnknownID(t *testing.T) {
	store := storage.NewScanStore(15 * time.Minute)

	assert.Nil(t, store.Get("missing"))
}

func TestScanStore_ExpiredRecord(t *testing.T) {
	store := storage.NewScanStore(15 * time.Minute)

	rec := &domain.ScanRecord{
		ScanID:    storage.NewScanID(),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	store.Store(rec)

	assert.Nil(t, store.Get(rec.ScanID))
}

func TestScanStore_Delete(t *testing.T) {
	store := storage.NewScanStore(15 * time.Minute)

	rec := &domain.ScanRecord{
		ScanID:    storage.NewScanID(),
		CreatedAt: time.Now(),
	}
	store.Store(rec)
	store.Delete(rec.ScanID)

	assert.Nil(t, store.Get(rec.ScanID))
}

func TestNewScanID_Unique(t *testing.T) {
	assert.NotEqual(t, storage.NewScanID(), storage.NewScanID())
}
