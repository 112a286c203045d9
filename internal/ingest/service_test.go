package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/crossref"
	"github.com/framedesk/order-intake/internal/detect"
	"github.com/framedesk/order-intake/internal/dupes"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
	"github.com/framedesk/order-intake/internal/parse/htmlparse"
	"github.com/framedesk/order-intake/internal/parse/pdfparse"
)

const confirmationHTML = `<html><body>
<div class="order-number">Order #1484047</div>
<span class="order-date">7/21/2023</span>
<table class="customer-info">
  <tr><td>Account #:</td><td>AZ6372</td></tr>
  <tr><td>Name:</td><td>PARADISE VALLEY EYECARE</td></tr>
  <tr><td>City:</td><td>PHOENIX</td></tr>
  <tr><td>State:</td><td>AZ</td></tr>
</table>
<table class="order-items">
  <tr><th>Model</th><th>Color</th><th>Size</th><th>Qty</th></tr>
  <tr><td colspan="4">ATTITUDES</td></tr>
  <tr><td>Attitudes 37</td><td>BLACK</td><td>52-17-140</td><td>1</td></tr>
  <tr><td colspan="4">B.M.E.C.</td></tr>
  <tr><td>Big Mens 12</td><td>GUNMETAL</td><td>58-17-150</td><td>2</td></tr>
</table>
</body></html>`

type fakeOrderStore struct {
	orders []dupes.StoredOrder
	err    error
}

func (s *fakeOrderStore) ListOrderIdentities(_ context.Context, _ uuid.UUID, _ string) ([]dupes.StoredOrder, error) {
	return s.orders, s.err
}

func seededCatalog(t *testing.T, entries ...*entity.CatalogEntry) *catalog.MemoryStore {
	t.Helper()
	store := catalog.NewMemoryStore()
	if err := store.UpsertBatch(context.Background(), entries); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func fullCatalog(t *testing.T) *catalog.MemoryStore {
	return seededCatalog(t,
		&entity.CatalogEntry{
			VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
			ColorCode: "BLACK", UPC: "812802020112", EyeSize: 52, InStock: true,
		},
		&entity.CatalogEntry{
			VendorID: "modernoptical", Brand: "B.M.E.C.", Model: "BIG MENS 12",
			ColorCode: "GUNMETAL", EyeSize: 58, InStock: true,
		},
	)
}

func newEngine(t *testing.T, store catalog.Store, orderStore dupes.OrderStore) *Service {
	t.Helper()
	registry := parse.NewRegistry(nil)
	registry.Register(htmlparse.New(nil), "modernoptical.com")
	registry.Register(pdfparse.New(nil), "safilo.com", "mysafilo.com")

	cfg := common.CrossrefConfig{BatchSize: 5, MaxRetries: 1, RetryBaseWait: time.Millisecond}
	return NewService(
		detect.NewDetector(nil),
		registry,
		crossref.NewEnricher(store, nil, cfg, nil),
		dupes.NewDetector(orderStore, true, nil),
		nil,
	)
}

func confirmationEmail() *entity.InboundEmail {
	return &entity.InboundEmail{
		Headers: entity.EmailHeaders{
			From:      "Modern Optical <orders@modernoptical.com>",
			Subject:   "Modern Optical Order Confirmation #1484047",
			MessageID: "<abc@modernoptical.com>",
		},
		Plain: "Your order from Modern Optical International is confirmed. See modernoptical.com.",
		HTML:  confirmationHTML,
	}
}

func TestIngestEmailEndToEnd(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{})

	result, err := engine.IngestEmail(context.Background(), uuid.New(), confirmationEmail())
	if err != nil {
		t.Fatalf("IngestEmail: %v", err)
	}

	if result.Vendor != "modernoptical" {
		t.Errorf("Vendor = %q", result.Vendor)
	}
	if result.Order.OrderNumber != "1484047" {
		t.Errorf("OrderNumber = %q", result.Order.OrderNumber)
	}
	if result.Order.CustomerName != "PARADISE VALLEY EYECARE" {
		t.Errorf("CustomerName = %q", result.Order.CustomerName)
	}
	if result.AccountNumber == nil || *result.AccountNumber != "AZ6372" {
		t.Errorf("AccountNumber = %v", result.AccountNumber)
	}
	if result.Order.TotalPieces != 3 {
		t.Errorf("TotalPieces = %d, want 3", result.Order.TotalPieces)
	}
	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(result.Items))
	}
	for i, it := range result.Items {
		if !it.APIVerified || it.ConfidenceScore != crossref.ConfidenceExact {
			t.Errorf("item %d not exactly matched: %+v", i, it)
		}
	}
	if result.Items[0].UPC != "812802020112" {
		t.Errorf("catalog UPC not merged: %+v", result.Items[0])
	}
	if result.Order.ParseStatus != constants.ParseStatusParsed {
		t.Errorf("ParseStatus = %q, want PARSED", result.Order.ParseStatus)
	}
	if result.EnrichmentStats.ValidationRate != 100 {
		t.Errorf("ValidationRate = %v, want 100", result.EnrichmentStats.ValidationRate)
	}
	if result.IsDuplicate {
		t.Error("fresh order flagged duplicate")
	}
	if result.ParsedAt.IsZero() {
		t.Error("ParsedAt not set")
	}
}

func TestIngestEmailPartialValidation(t *testing.T) {
	// Only one of the two frames exists in the catalog.
	store := seededCatalog(t, &entity.CatalogEntry{
		VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
		ColorCode: "BLACK", EyeSize: 52, InStock: true,
	})
	engine := newEngine(t, store, &fakeOrderStore{})

	result, err := engine.IngestEmail(context.Background(), uuid.New(), confirmationEmail())
	if err != nil {
		t.Fatalf("IngestEmail: %v", err)
	}
	if result.Order.ParseStatus != constants.ParseStatusPartial {
		t.Errorf("ParseStatus = %q, want PARTIAL", result.Order.ParseStatus)
	}
	if result.EnrichmentStats.Validated != 1 || result.EnrichmentStats.ValidationRate != 50 {
		t.Errorf("stats = %+v", result.EnrichmentStats)
	}
}

func TestIngestEmailNoParser(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{})

	email := &entity.InboundEmail{
		Headers: entity.EmailHeaders{
			From:    "sales@unknownvendor.example",
			Subject: "Order Confirmation",
		},
		Plain: "thanks for your order",
	}
	_, err := engine.IngestEmail(context.Background(), uuid.New(), email)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestIngestEmailUnreadableDocument(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{})

	email := confirmationEmail()
	email.HTML = "" // detected fine, but nothing to parse
	_, err := engine.IngestEmail(context.Background(), uuid.New(), email)
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestIngestEmailNoExtractableData(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{})

	email := confirmationEmail()
	email.HTML = "<html><body><p>Modern Optical International thanks you!</p></body></html>"
	_, err := engine.IngestEmail(context.Background(), uuid.New(), email)
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("err = %v, want ErrParse for empty extraction", err)
	}
}

func TestIngestEmailDuplicate(t *testing.T) {
	orderStore := &fakeOrderStore{orders: []dupes.StoredOrder{{
		Vendor:        "modernoptical",
		OrderNumber:   "1484047",
		AccountNumber: "AZ6372",
		CustomerName:  "PARADISE VALLEY EYECARE",
	}}}
	engine := newEngine(t, fullCatalog(t), orderStore)

	result, err := engine.IngestEmail(context.Background(), uuid.New(), confirmationEmail())
	if err != nil {
		t.Fatalf("IngestEmail: %v", err)
	}
	if !result.IsDuplicate {
		t.Fatal("expected duplicate flag")
	}
	if result.DuplicateNote == "" {
		t.Error("duplicate must carry a note")
	}
}

// A broken duplicate store degrades to "not a duplicate" instead of
// failing ingestion.
func TestIngestEmailDupStoreFailure(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{err: errors.New("db down")})

	result, err := engine.IngestEmail(context.Background(), uuid.New(), confirmationEmail())
	if err != nil {
		t.Fatalf("IngestEmail: %v", err)
	}
	if result.IsDuplicate {
		t.Fatal("failed check must not flag duplicate")
	}
}

func TestValidateResultPayload(t *testing.T) {
	engine := newEngine(t, fullCatalog(t), &fakeOrderStore{})
	result, err := engine.IngestEmail(context.Background(), uuid.New(), confirmationEmail())
	if err != nil {
		t.Fatalf("IngestEmail: %v", err)
	}
	if err := ValidateResultPayload(result); err != nil {
		t.Fatalf("engine output violates its own schema: %v", err)
	}

	bad := *result
	bad.Vendor = ""
	if err := ValidateResultPayload(&bad); err == nil {
		t.Fatal("empty vendor must violate the schema")
	}
}
