// Package catalog defines the Catalog Store collaborator contract: a
// queryable table of known vendor SKUs, populated offline by the crawler
// and read-only to the cross-referencer.
package catalog

import (
	"context"

	"github.com/framedesk/order-intake/internal/entity"
)

// Store is the catalog collaborator interface. The crawler writes through
// UpsertBatch; everything else is a read path. Crawler upserts and live
// ingestion are assumed not to run concurrently against the same vendor's
// rows.
type Store interface {
	// FindExact returns the single entry keyed by
	// (vendorID, brand, model, colorCode, eyeSize), or nil when absent.
	FindExact(ctx context.Context, vendorID, brand, model, colorCode string, eyeSize int) (*entity.CatalogEntry, error)

	// FindByModelSize returns entries matching (vendorID, brand, model,
	// eyeSize) across all color variants.
	FindByModelSize(ctx context.Context, vendorID, brand, model string, eyeSize int) ([]*entity.CatalogEntry, error)

	// FindBySize returns all of a vendor's entries with the given eye
	// size; the fuzzy matching tier narrows these in memory.
	FindBySize(ctx context.Context, vendorID string, eyeSize int) ([]*entity.CatalogEntry, error)

	// UpsertBatch inserts or replaces entries on the key
	// (vendor_id, model, color, eye_size); latest crawl wins.
	UpsertBatch(ctx context.Context, entries []*entity.CatalogEntry) error
}
