package crossref

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

// countingStore wraps a Store and counts FindExact calls, optionally
// failing the first n of them.
type countingStore struct {
	catalog.Store
	mu        sync.Mutex
	exact     int
	failFirst int
}

func (s *countingStore) FindExact(ctx context.Context, vendorID, brand, model, colorCode string, eyeSize int) (*entity.CatalogEntry, error) {
	s.mu.Lock()
	s.exact++
	fail := s.exact <= s.failFirst
	s.mu.Unlock()
	if fail {
		return nil, common.ErrLookupTransient
	}
	return s.Store.FindExact(ctx, vendorID, brand, model, colorCode, eyeSize)
}

func (s *countingStore) exactCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exact
}

func fastCfg() common.CrossrefConfig {
	return common.CrossrefConfig{
		BatchSize:     5,
		MaxRetries:    2,
		RetryBaseWait: time.Millisecond,
		LookupTimeout: time.Second,
	}
}

func TestEnrichMergesCatalogFields(t *testing.T) {
	e := NewEnricher(seedStore(t), nil, fastCfg(), nil)

	items := []entity.LineItem{
		{SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52", Quantity: 1},
		{SKU: "NOPE/NOPE/99", Brand: "NOPE", Model: "NOPE", ColorCode: "X", Size: "99", Quantity: 2},
	}
	out, stats := e.Enrich(context.Background(), "modernoptical", items)

	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}
	hit := out[0]
	if !hit.APIVerified || hit.ConfidenceScore != ConfidenceExact {
		t.Fatalf("first item not verified: %+v", hit)
	}
	if hit.UPC != "812802020112" || hit.EyeSize != 52 || hit.FullSize != "52-17-140" {
		t.Errorf("catalog fields not merged: %+v", hit)
	}
	if hit.Quantity != 1 || hit.SKU != "ATTITUDES/ATTITUDES-37/BLACK" {
		t.Errorf("raw fields must survive the merge: %+v", hit)
	}
	miss := out[1]
	if miss.APIVerified || miss.ConfidenceScore != ConfidenceNone || miss.ValidationReason == "" {
		t.Fatalf("second item should be unvalidated with a reason: %+v", miss)
	}

	if stats.TotalFrames != 2 || stats.Validated != 1 {
		t.Errorf("stats = %+v, want 2 total / 1 validated", stats)
	}
	if stats.ValidationRate != 50 {
		t.Errorf("ValidationRate = %v, want 50", stats.ValidationRate)
	}
}

// Identical SKUs within one order hit the per-run cache instead of the
// store a second time.
func TestEnrichRunCache(t *testing.T) {
	store := &countingStore{Store: seedStore(t)}
	cfg := fastCfg()
	cfg.BatchSize = 1 // force separate batches so the cache must carry over
	e := NewEnricher(store, nil, cfg, nil)

	same := entity.LineItem{SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52", Quantity: 1}
	out, stats := e.Enrich(context.Background(), "modernoptical", []entity.LineItem{same, same, same})

	if stats.Validated != 3 {
		t.Fatalf("stats = %+v, want 3 validated", stats)
	}
	for i, it := range out {
		if !it.APIVerified {
			t.Fatalf("item %d not verified: %+v", i, it)
		}
	}
	if calls := store.exactCalls(); calls != 1 {
		t.Fatalf("store hit %d times, want 1 (cache miss only)", calls)
	}
}

func TestEnrichRetriesThenSucceeds(t *testing.T) {
	store := &countingStore{Store: seedStore(t), failFirst: 1}
	e := NewEnricher(store, nil, fastCfg(), nil)

	items := []entity.LineItem{
		{SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52", Quantity: 1},
	}
	out, stats := e.Enrich(context.Background(), "modernoptical", items)
	if stats.Validated != 1 || !out[0].APIVerified {
		t.Fatalf("expected success after retry, got %+v", out[0])
	}
	if calls := store.exactCalls(); calls != 2 {
		t.Fatalf("store hit %d times, want 2 (fail + retry)", calls)
	}
}

// An outage longer than the retry ceiling degrades the items to
// unvalidated instead of failing the order.
func TestEnrichDegradesAfterRetryCeiling(t *testing.T) {
	store := &countingStore{Store: seedStore(t), failFirst: 1000}
	e := NewEnricher(store, nil, fastCfg(), nil)

	items := []entity.LineItem{
		{SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52", Quantity: 1},
		{SKU: "B.M.E.C./BIG-MENS-12/GUNMETAL", Brand: "B.M.E.C.", Model: "BIG MENS 12", ColorCode: "GUNMETAL", Size: "58", Quantity: 1},
	}
	out, stats := e.Enrich(context.Background(), "modernoptical", items)

	if stats.Validated != 0 {
		t.Fatalf("stats = %+v, want 0 validated", stats)
	}
	for i, it := range out {
		if it.APIVerified {
			t.Fatalf("item %d verified during outage: %+v", i, it)
		}
		if it.ValidationReason != "catalog unavailable after retries" {
			t.Errorf("item %d reason = %q", i, it.ValidationReason)
		}
	}
	// MaxRetries=2 means 3 attempts of 2 concurrent lookups each.
	if calls := store.exactCalls(); calls != 6 {
		t.Fatalf("store hit %d times, want 6", calls)
	}
}

func TestEnrichCancelledContext(t *testing.T) {
	store := &countingStore{Store: seedStore(t), failFirst: 1000}
	e := NewEnricher(store, nil, fastCfg(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items := []entity.LineItem{
		{SKU: "A/B/52", Brand: "A", Model: "B", ColorCode: "C", Size: "52", Quantity: 1},
	}
	out, stats := e.Enrich(ctx, "modernoptical", items)
	if stats.Validated != 0 || out[0].APIVerified {
		t.Fatalf("cancelled enrich must not validate, got %+v", out[0])
	}
}

func TestEnrichPolicyCanReject(t *testing.T) {
	rejectAll := MatchPolicyFunc(func(_ entity.LineItem, r entity.ValidationResult) entity.ValidationResult {
		r.Validated = false
		r.Confidence = ConfidenceNone
		r.Reason = "rejected by policy"
		return r
	})
	e := NewEnricher(seedStore(t), rejectAll, fastCfg(), nil)

	items := []entity.LineItem{
		{SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52", Quantity: 1},
	}
	out, stats := e.Enrich(context.Background(), "modernoptical", items)
	if stats.Validated != 0 || out[0].APIVerified {
		t.Fatalf("policy rejection ignored: %+v", out[0])
	}
	if out[0].ValidationReason != "rejected by policy" {
		t.Errorf("reason = %q", out[0].ValidationReason)
	}
}

func TestEnrichEmptyItems(t *testing.T) {
	e := NewEnricher(seedStore(t), nil, fastCfg(), nil)
	out, stats := e.Enrich(context.Background(), "modernoptical", nil)
	if len(out) != 0 || stats.TotalFrames != 0 || stats.ValidationRate != 0 {
		t.Fatalf("unexpected output for empty order: %v %+v", out, stats)
	}
}
