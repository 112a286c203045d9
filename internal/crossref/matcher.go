// Package crossref validates raw line items against the vendor catalog and
// assigns each a 0-100 confidence score.
package crossref

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/entity"
)

// Confidence tiers. Matching stops at the first tier that yields a match,
// so an exact match can never score below a partial one.
const (
	ConfidenceExact        = 100 // (brand, model, colorCode, size)
	ConfidenceColorVariant = 70  // (brand, model, size), color ignored
	ConfidenceFuzzy        = 50  // normalized brand/model + size
	ConfidenceNone         = 0
)

// Matcher runs the tiered catalog match for single line items.
type Matcher struct {
	store  catalog.Store
	logger *slog.Logger
}

// NewMatcher returns a matcher over the given catalog store.
func NewMatcher(store catalog.Store, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{store: store, logger: logger}
}

// Match finds the best catalog entry for one raw line item. Store errors
// bubble up so the caller's retry policy can handle them; a clean "no
// match" comes back as an unvalidated result with a reason.
func (m *Matcher) Match(ctx context.Context, vendorID string, item entity.LineItem) (entity.ValidationResult, error) {
	size, err := strconv.Atoi(strings.TrimSpace(item.Size))
	if err != nil {
		return entity.ValidationResult{
			Validated:  false,
			Confidence: ConfidenceNone,
			Reason:     fmt.Sprintf("unparseable size %q", item.Size),
		}, nil
	}

	// Tier 1: exact.
	exact, err := m.store.FindExact(ctx, vendorID, item.Brand, item.Model, item.ColorCode, size)
	if err != nil {
		return entity.ValidationResult{}, err
	}
	if exact != nil {
		return entity.ValidationResult{
			Validated:  true,
			Confidence: ConfidenceExact,
			Reason:     "exact match on brand/model/color/size",
			BestMatch:  exact,
		}, nil
	}

	// Tier 2: same frame, color variant mismatch (color-name vs
	// color-code confusion is common across the two source formats).
	variants, err := m.store.FindByModelSize(ctx, vendorID, item.Brand, item.Model, size)
	if err != nil {
		return entity.ValidationResult{}, err
	}
	if len(variants) > 0 {
		best := pickPreferred(variants)
		return entity.ValidationResult{
			Validated:  true,
			Confidence: ConfidenceColorVariant,
			Reason:     fmt.Sprintf("matched brand/model/size; color %q not found", item.ColorCode),
			BestMatch:  best,
			Warnings:   []string{"color variant not confirmed"},
		}, nil
	}

	// Tier 3: fuzzy brand/model over the vendor's entries at this size.
	candidates, err := m.store.FindBySize(ctx, vendorID, size)
	if err != nil {
		return entity.ValidationResult{}, err
	}
	wantBrand, wantModel := fuzzyKey(item.Brand), fuzzyKey(item.Model)
	for _, c := range candidates {
		if fuzzyKey(c.Brand) == wantBrand && fuzzyKey(c.Model) == wantModel {
			return entity.ValidationResult{
				Validated:  true,
				Confidence: ConfidenceFuzzy,
				Reason:     "fuzzy match on normalized brand/model with size",
				BestMatch:  c,
				Warnings:   []string{"matched after brand/model normalization"},
			}, nil
		}
	}

	return entity.ValidationResult{
		Validated:  false,
		Confidence: ConfidenceNone,
		Reason:     fmt.Sprintf("no catalog match for %s %s %s size %d", item.Brand, item.Model, item.ColorCode, size),
	}, nil
}

// pickPreferred chooses among color variants, preferring in-stock rows.
func pickPreferred(entries []*entity.CatalogEntry) *entity.CatalogEntry {
	for _, e := range entries {
		if e.InStock {
			return e
		}
	}
	return entries[0]
}

// fuzzyKey lowercases and strips punctuation/whitespace, so "B.M.E.C."
// and "BMEC" compare equal.
func fuzzyKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
