package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

const brandsJSON = `{"brands":[
  {"id":"att","name":"Attitudes"},
  {"id":"bmec","name":"B.M.E.C."}
]}`

const attProductsJSON = `{"products":[
  {
    "model":"Attitudes 37",
    "material":"metal",
    "gender":"womens",
    "wholesale":24.50,
    "msrp":89.00,
    "colors":[
      {"code":"Black","name":"Shiny Black","sizes":[
        {"eye":52,"bridge":17,"temple":140,"upc":"812802020112","in_stock":true,"status":"IN_STOCK"},
        {"eye":54,"bridge":17,"temple":140,"in_stock":false,"status":"BACKORDERED"}
      ]},
      {"code":"Brown","name":"Matte Brown","sizes":[
        {"eye":52,"bridge":17,"temple":140,"sku":"ATT37/BROWN/52","in_stock":true}
      ]}
    ]
  }
]}`

const bmecProductsJSON = `{"products":[
  {
    "model":"Big Mens 12",
    "gender":"mens",
    "colors":[
      {"code":"Gunmetal","sizes":[
        {"eye":58,"bridge":17,"temple":150,"in_stock":false,"status":"weird"}
      ]}
    ]
  }
]}`

func newVendorAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/brands", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(brandsJSON))
	})
	mux.HandleFunc("/brands/att/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(attProductsJSON))
	})
	mux.HandleFunc("/brands/bmec/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bmecProductsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testCfg() common.CrawlerConfig {
	return common.CrawlerConfig{
		RequestTimeout: 2 * time.Second,
		RequestDelay:   0,
		MaxRetries:     2,
		UpsertBatch:    2, // small batch to exercise mid-run flushes
	}
}

func TestCrawlFlattensAndUpserts(t *testing.T) {
	srv := newVendorAPI(t)
	store := catalog.NewMemoryStore()
	api := NewAPIClient(srv.URL, 2*time.Second, 2, nil)
	c := New(api, store, testCfg(), nil)

	stats, err := c.Run(context.Background(), "ModernOptical")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Brands != 2 || stats.Models != 2 {
		t.Errorf("stats = %+v, want 2 brands / 2 models", stats)
	}
	if stats.Entries != 4 || stats.Upserted != 4 {
		t.Errorf("stats = %+v, want 4 entries upserted", stats)
	}
	if len(stats.FailedBrands) != 0 {
		t.Errorf("unexpected failed brands: %v", stats.FailedBrands)
	}
	if store.Len() != 4 {
		t.Fatalf("store has %d entries, want 4", store.Len())
	}

	// Vendor id is normalized; model/color are upcased for keying.
	e, err := store.FindExact(context.Background(), "modernoptical", "ATTITUDES", "ATTITUDES 37", "BLACK", 52)
	if err != nil {
		t.Fatalf("FindExact: %v", err)
	}
	if e == nil {
		t.Fatal("flattened entry not found")
	}
	if e.UPC != "812802020112" || e.FullSize != "52-17-140" || !e.InStock {
		t.Errorf("entry = %+v", e)
	}
	if e.WholesaleCost == nil || *e.WholesaleCost != 24.50 {
		t.Errorf("WholesaleCost = %v, want 24.50", e.WholesaleCost)
	}
	if e.SKU != "ATTITUDES 37/BLACK/52" {
		t.Errorf("synthesized SKU = %q", e.SKU)
	}

	// Native SKU from the API wins over synthesis.
	e, err = store.FindExact(context.Background(), "modernoptical", "ATTITUDES", "ATTITUDES 37", "BROWN", 52)
	if err != nil || e == nil {
		t.Fatalf("FindExact brown: %v %v", e, err)
	}
	if e.SKU != "ATT37/BROWN/52" {
		t.Errorf("SKU = %q, want native ATT37/BROWN/52", e.SKU)
	}

	// Unknown status strings map to UNKNOWN.
	e, err = store.FindExact(context.Background(), "modernoptical", "B.M.E.C.", "BIG MENS 12", "GUNMETAL", 58)
	if err != nil || e == nil {
		t.Fatalf("FindExact bmec: %v %v", e, err)
	}
	if string(e.AvailabilityStatus) != "UNKNOWN" {
		t.Errorf("AvailabilityStatus = %q, want UNKNOWN", e.AvailabilityStatus)
	}
}

func TestCrawlIsIdempotent(t *testing.T) {
	srv := newVendorAPI(t)
	store := catalog.NewMemoryStore()
	api := NewAPIClient(srv.URL, 2*time.Second, 2, nil)
	c := New(api, store, testCfg(), nil)

	if _, err := c.Run(context.Background(), "modernoptical"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := c.Run(context.Background(), "modernoptical"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if store.Len() != 4 {
		t.Fatalf("store has %d entries after recrawl, want 4 (upsert, not insert)", store.Len())
	}
}

func TestCrawlContinuesPastFailedBrand(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/brands", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(brandsJSON))
	})
	mux.HandleFunc("/brands/att/products", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound) // 4xx: no retry
	})
	mux.HandleFunc("/brands/bmec/products", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(bmecProductsJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := catalog.NewMemoryStore()
	api := NewAPIClient(srv.URL, 2*time.Second, 2, nil)
	c := New(api, store, testCfg(), nil)

	stats, err := c.Run(context.Background(), "modernoptical")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(stats.FailedBrands) != 1 || stats.FailedBrands[0] != "Attitudes" {
		t.Fatalf("FailedBrands = %v, want [Attitudes]", stats.FailedBrands)
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d entries, want 1 from the surviving brand", store.Len())
	}
}

func TestCrawlBrandIndexFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, 2*time.Second, 0, nil)
	c := New(api, catalog.NewMemoryStore(), testCfg(), nil)
	if _, err := c.Run(context.Background(), "modernoptical"); err == nil {
		t.Fatal("expected error when the brand index cannot be fetched")
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(brandsJSON))
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, 2*time.Second, 3, nil)
	brands, err := api.Brands(context.Background())
	if err != nil {
		t.Fatalf("Brands: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("got %d brands, want 2", len(brands))
	}
	if calls.Load() != 2 {
		t.Fatalf("server saw %d calls, want 2 (one failure, one retry)", calls.Load())
	}
}

func TestFlattenEmptyProduct(t *testing.T) {
	var entries []*entity.CatalogEntry = flatten("v", "b", Product{Model: "m1"})
	if len(entries) != 0 {
		t.Fatalf("product without colors must flatten to nothing, got %d", len(entries))
	}
}
