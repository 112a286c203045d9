package crossref

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

// Enricher cross-references the line items of one order against the
// catalog, in bounded-concurrency batches with per-batch retry.
type Enricher struct {
	matcher *Matcher
	policy  MatchPolicy
	cfg     common.CrossrefConfig
	logger  *slog.Logger
}

// NewEnricher wires a matcher over the store with the given policy. A nil
// policy means DefaultPolicy.
func NewEnricher(store catalog.Store, policy MatchPolicy, cfg common.CrossrefConfig, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = DefaultPolicy
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	return &Enricher{
		matcher: NewMatcher(store, logger),
		policy:  policy,
		cfg:     cfg,
		logger:  logger,
	}
}

// runCache avoids repeat lookups for identical SKUs within one order
// (duplicate frame models in different quantities are common). It is
// private to one Enrich call and never shared across calls.
type runCache map[string]entity.ValidationResult

// Enrich validates every line item and merges catalog data into the
// enriched output. Lookup failures degrade items to unvalidated after the
// retry ceiling; they never fail the order.
func (e *Enricher) Enrich(ctx context.Context, vendorID string, items []entity.LineItem) ([]entity.EnrichedLineItem, entity.EnrichmentStats) {
	start := time.Now()
	cache := make(runCache, len(items))
	out := make([]entity.EnrichedLineItem, len(items))

	for lo := 0; lo < len(items); lo += e.cfg.BatchSize {
		hi := lo + e.cfg.BatchSize
		if hi > len(items) {
			hi = len(items)
		}
		e.enrichBatch(ctx, vendorID, items[lo:hi], out[lo:hi], cache)

		if e.cfg.BatchDelay > 0 && hi < len(items) {
			select {
			case <-ctx.Done():
			case <-time.After(e.cfg.BatchDelay):
			}
		}
	}

	stats := buildStats(out, time.Since(start))
	e.logger.Info("crossref.enrich.done",
		"vendor", vendorID,
		"total", stats.TotalFrames,
		"validated", stats.Validated,
		"rate", stats.ValidationRate,
	)
	return out, stats
}

// enrichBatch resolves one batch: cached SKUs serially, the misses
// concurrently, retrying the misses as a group on transient failure.
func (e *Enricher) enrichBatch(ctx context.Context, vendorID string, items []entity.LineItem, out []entity.EnrichedLineItem, cache runCache) {
	miss := make([]int, 0, len(items))
	for i, item := range items {
		if res, ok := cache[item.SKU]; ok && item.SKU != "" {
			out[i] = merge(item, e.policy.Apply(item, res))
			continue
		}
		miss = append(miss, i)
	}
	if len(miss) == 0 {
		return
	}

	results, err := e.lookupWithRetry(ctx, vendorID, items, miss)
	if err != nil {
		// Retries exhausted: mark the batch's remaining items unvalidated
		// rather than failing the whole order.
		e.logger.Warn("crossref.batch.unavailable", "vendor", vendorID, "items", len(miss), "error", err)
		for _, i := range miss {
			res := entity.ValidationResult{
				Validated:  false,
				Confidence: ConfidenceNone,
				Reason:     "catalog unavailable after retries",
				Warnings:   []string{err.Error()},
			}
			out[i] = merge(items[i], e.policy.Apply(items[i], res))
		}
		return
	}

	for _, i := range miss {
		res := results[i]
		if items[i].SKU != "" {
			cache[items[i].SKU] = res
		}
		out[i] = merge(items[i], e.policy.Apply(items[i], res))
	}
}

// lookupWithRetry issues the batch's lookups concurrently and retries the
// whole batch with exponential backoff on any store error. The retry
// policy is attempt-count-bounded, not time-bounded.
func (e *Enricher) lookupWithRetry(ctx context.Context, vendorID string, items []entity.LineItem, miss []int) (map[int]entity.ValidationResult, error) {
	wait := e.cfg.RetryBaseWait
	if wait <= 0 {
		wait = 500 * time.Millisecond
	}

	var lastErr error
	for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			e.logger.Debug("crossref.batch.retry", "attempt", attempt, "wait", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		results, err := e.lookupBatch(ctx, vendorID, items, miss)
		if err == nil {
			return results, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, common.WrapError(lastErr, "catalog lookup failed")
}

func (e *Enricher) lookupBatch(ctx context.Context, vendorID string, items []entity.LineItem, miss []int) (map[int]entity.ValidationResult, error) {
	lookupCtx := ctx
	if e.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, e.cfg.LookupTimeout)
		defer cancel()
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  = make(map[int]entity.ValidationResult, len(miss))
		firstErr error
	)
	for _, i := range miss {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := e.matcher.Match(lookupCtx, vendorID, items[i])
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// merge copies the best match's catalog fields onto the raw item. The raw
// LineItem itself is never mutated.
func merge(item entity.LineItem, res entity.ValidationResult) entity.EnrichedLineItem {
	enriched := entity.EnrichedLineItem{
		LineItem:         item,
		APIVerified:      res.Validated,
		ConfidenceScore:  res.Confidence,
		ValidationReason: res.Reason,
	}
	if m := res.BestMatch; m != nil {
		enriched.UPC = m.UPC
		enriched.EAN = m.EAN
		enriched.WholesaleCost = m.WholesaleCost
		enriched.MSRP = m.MSRP
		enriched.EyeSize = m.EyeSize
		enriched.Bridge = m.Bridge
		enriched.FullSize = m.FullSize
		enriched.Material = m.Material
		enriched.Gender = m.Gender
		enriched.AvailabilityStatus = string(m.AvailabilityStatus)
		if enriched.ColorName == "" {
			enriched.ColorName = m.ColorName
		}
	}
	return enriched
}

func buildStats(items []entity.EnrichedLineItem, elapsed time.Duration) entity.EnrichmentStats {
	stats := entity.EnrichmentStats{
		TotalFrames:           len(items),
		ProcessingTimeSeconds: elapsed.Seconds(),
	}
	for _, it := range items {
		if it.APIVerified {
			stats.Validated++
		}
	}
	if stats.TotalFrames > 0 {
		stats.ValidationRate = float64(stats.Validated) / float64(stats.TotalFrames) * 100
	}
	if secs := elapsed.Seconds(); secs > 0 {
		stats.FramesPerSecond = float64(stats.TotalFrames) / secs
	}
	return stats
}
