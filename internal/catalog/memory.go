package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/framedesk/order-intake/internal/entity"
)

// MemoryStore is a map-backed Store for tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[entity.CatalogKey]*entity.CatalogEntry
}

// NewMemoryStore returns an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[entity.CatalogKey]*entity.CatalogEntry)}
}

func (s *MemoryStore) FindExact(_ context.Context, vendorID, brand, model, colorCode string, eyeSize int) (*entity.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if eq(e.VendorID, vendorID) && eq(e.Brand, brand) && eq(e.Model, model) &&
			eq(e.ColorCode, colorCode) && e.EyeSize == eyeSize {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindByModelSize(_ context.Context, vendorID, brand, model string, eyeSize int) ([]*entity.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.CatalogEntry
	for _, e := range s.entries {
		if eq(e.VendorID, vendorID) && eq(e.Brand, brand) && eq(e.Model, model) && e.EyeSize == eyeSize {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindBySize(_ context.Context, vendorID string, eyeSize int) ([]*entity.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.CatalogEntry
	for _, e := range s.entries {
		if eq(e.VendorID, vendorID) && e.EyeSize == eyeSize {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpsertBatch(_ context.Context, entries []*entity.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		cp := *e
		s.entries[normalizedKey(e)] = &cp
	}
	return nil
}

// Len reports the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func normalizedKey(e *entity.CatalogEntry) entity.CatalogKey {
	return entity.CatalogKey{
		VendorID:  strings.ToLower(e.VendorID),
		Model:     strings.ToUpper(e.Model),
		ColorCode: strings.ToUpper(e.ColorCode),
		EyeSize:   e.EyeSize,
	}
}

func eq(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
