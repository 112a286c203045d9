package crossref

import (
	"context"
	"testing"

	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/entity"
)

func seedStore(t *testing.T) *catalog.MemoryStore {
	t.Helper()
	store := catalog.NewMemoryStore()
	err := store.UpsertBatch(context.Background(), []*entity.CatalogEntry{
		{
			VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
			ColorCode: "BLACK", SKU: "ATTITUDES/ATTITUDES-37/BLACK",
			UPC: "812802020112", EyeSize: 52, Bridge: 17, FullSize: "52-17-140",
			InStock: true, AvailabilityStatus: "IN_STOCK",
		},
		{
			VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
			ColorCode: "BROWN", EyeSize: 54, InStock: false, AvailabilityStatus: "BACKORDERED",
		},
		{
			VendorID: "modernoptical", Brand: "ATTITUDES", Model: "ATTITUDES 37",
			ColorCode: "CRYSTAL", EyeSize: 54, InStock: true, AvailabilityStatus: "IN_STOCK",
		},
		{
			VendorID: "modernoptical", Brand: "B.M.E.C.", Model: "BIG MENS 12",
			ColorCode: "GUNMETAL", EyeSize: 58, InStock: true,
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestMatchTiers(t *testing.T) {
	m := NewMatcher(seedStore(t), nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		item       entity.LineItem
		validated  bool
		confidence int
	}{
		{
			name: "exact match",
			item: entity.LineItem{
				Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52",
			},
			validated: true, confidence: ConfidenceExact,
		},
		{
			name: "exact match is case insensitive",
			item: entity.LineItem{
				Brand: "attitudes", Model: "Attitudes 37", ColorCode: "black", Size: "52",
			},
			validated: true, confidence: ConfidenceExact,
		},
		{
			name: "color variant",
			item: entity.LineItem{
				Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "NAVY", Size: "54",
			},
			validated: true, confidence: ConfidenceColorVariant,
		},
		{
			name: "fuzzy brand punctuation",
			item: entity.LineItem{
				Brand: "BMEC", Model: "BIG MENS 12", ColorCode: "GREY", Size: "58",
			},
			validated: true, confidence: ConfidenceFuzzy,
		},
		{
			name: "no match",
			item: entity.LineItem{
				Brand: "NOSUCH", Model: "FRAME 1", ColorCode: "RED", Size: "52",
			},
			validated: false, confidence: ConfidenceNone,
		},
		{
			name: "unparseable size",
			item: entity.LineItem{
				Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "n/a",
			},
			validated: false, confidence: ConfidenceNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := m.Match(ctx, "modernoptical", tt.item)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if res.Validated != tt.validated {
				t.Errorf("Validated = %v, want %v (reason %q)", res.Validated, tt.validated, res.Reason)
			}
			if res.Confidence != tt.confidence {
				t.Errorf("Confidence = %d, want %d", res.Confidence, tt.confidence)
			}
			if tt.validated && res.BestMatch == nil {
				t.Error("validated result must carry a BestMatch")
			}
			if !tt.validated && res.Reason == "" {
				t.Error("unvalidated result must carry a reason")
			}
		})
	}
}

func TestMatchColorVariantPrefersInStock(t *testing.T) {
	m := NewMatcher(seedStore(t), nil)
	item := entity.LineItem{Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "NAVY", Size: "54"}
	res, err := m.Match(context.Background(), "modernoptical", item)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.BestMatch == nil || !res.BestMatch.InStock {
		t.Fatalf("BestMatch = %+v, want the in-stock variant", res.BestMatch)
	}
}

func TestMatchWrongVendorNoMatch(t *testing.T) {
	m := NewMatcher(seedStore(t), nil)
	item := entity.LineItem{Brand: "ATTITUDES", Model: "ATTITUDES 37", ColorCode: "BLACK", Size: "52"}
	res, err := m.Match(context.Background(), "safilo", item)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Validated {
		t.Fatalf("catalog rows must be partitioned by vendor, got %+v", res)
	}
}

func TestFuzzyKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"B.M.E.C.", "bmec"},
		{"Attitudes 37", "attitudes37"},
		{"  GB+ ", "gb"},
	}
	for _, tt := range tests {
		if got := fuzzyKey(tt.in); got != tt.want {
			t.Errorf("fuzzyKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
