package catalog

import (
	"context"
	"testing"

	"github.com/framedesk/order-intake/internal/entity"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), ":memory:", nil)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteUpsertAndFind(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	wholesale := 24.50
	err := store.UpsertBatch(ctx, []*entity.CatalogEntry{
		{
			VendorID: "ModernOptical", Brand: "Attitudes", Model: "Attitudes 37",
			ColorCode: "Black", ColorName: "Shiny Black", SKU: "ATT37/BLACK/52",
			UPC: "812802020112", WholesaleCost: &wholesale,
			EyeSize: 52, Bridge: 17, TempleLength: 140, FullSize: "52-17-140",
			InStock: true, AvailabilityStatus: "IN_STOCK",
		},
		{
			VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
			ColorCode: "BROWN", EyeSize: 52, InStock: false, AvailabilityStatus: "BACKORDERED",
		},
		{
			VendorID: "modernoptical", Brand: "B.M.E.C.", Model: "BIG MENS 12",
			ColorCode: "GUNMETAL", EyeSize: 58, InStock: true,
		},
	})
	if err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	// Lookups normalize case the same way writes do.
	e, err := store.FindExact(ctx, "modernoptical", "attitudes", "attitudes 37", "black", 52)
	if err != nil {
		t.Fatalf("FindExact: %v", err)
	}
	if e == nil {
		t.Fatal("entry not found")
	}
	if e.VendorID != "modernoptical" || e.Model != "ATTITUDES 37" || e.ColorCode != "BLACK" {
		t.Errorf("stored entry not normalized: %+v", e)
	}
	if e.UPC != "812802020112" || !e.InStock || string(e.AvailabilityStatus) != "IN_STOCK" {
		t.Errorf("entry fields lost: %+v", e)
	}
	if e.WholesaleCost == nil || *e.WholesaleCost != 24.50 {
		t.Errorf("WholesaleCost = %v", e.WholesaleCost)
	}

	// Absent rows are (nil, nil), not an error.
	e, err = store.FindExact(ctx, "modernoptical", "ATTITUDES", "ATTITUDES 37", "NAVY", 52)
	if err != nil || e != nil {
		t.Fatalf("miss: got (%v, %v), want (nil, nil)", e, err)
	}

	variants, err := store.FindByModelSize(ctx, "modernoptical", "ATTITUDES", "ATTITUDES 37", 52)
	if err != nil {
		t.Fatalf("FindByModelSize: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(variants))
	}

	atSize, err := store.FindBySize(ctx, "modernoptical", 58)
	if err != nil {
		t.Fatalf("FindBySize: %v", err)
	}
	if len(atSize) != 1 || atSize[0].Brand != "B.M.E.C." {
		t.Fatalf("FindBySize = %+v", atSize)
	}
}

func TestSQLiteUpsertLatestWins(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := &entity.CatalogEntry{
		VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
		ColorCode: "BLACK", EyeSize: 52, InStock: true, AvailabilityStatus: "IN_STOCK",
	}
	if err := store.UpsertBatch(ctx, []*entity.CatalogEntry{first}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := *first
	second.InStock = false
	second.AvailabilityStatus = "DISCONTINUED"
	second.UPC = "000000000001"
	if err := store.UpsertBatch(ctx, []*entity.CatalogEntry{&second}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	e, err := store.FindExact(ctx, "modernoptical", "ATTITUDES", "ATTITUDES 37", "BLACK", 52)
	if err != nil || e == nil {
		t.Fatalf("FindExact: %v %v", e, err)
	}
	if e.InStock || string(e.AvailabilityStatus) != "DISCONTINUED" || e.UPC != "000000000001" {
		t.Fatalf("latest crawl must win: %+v", e)
	}

	// Still exactly one row for the key.
	all, err := store.FindBySize(ctx, "modernoptical", 52)
	if err != nil {
		t.Fatalf("FindBySize: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d rows, want 1", len(all))
	}
}

func TestSQLiteEmptyBatchNoop(t *testing.T) {
	store := openTestStore(t)
	if err := store.UpsertBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}
