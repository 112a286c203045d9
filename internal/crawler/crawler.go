package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

// Stats summarizes one crawl run.
type Stats struct {
	Brands       int      `json:"brands"`
	Models       int      `json:"models"`
	Entries      int      `json:"entries"`
	Upserted     int      `json:"upserted"`
	FailedBrands []string `json:"failed_brands,omitempty"`
	Duration     float64  `json:"duration_seconds"`
}

// Crawler flattens the vendor's nested model/color/size variants into
// catalog rows and upserts them in batches.
type Crawler struct {
	api    ProductAPI
	store  catalog.Store
	cfg    common.CrawlerConfig
	logger *slog.Logger
}

// New wires a crawler over the given API and store.
func New(api ProductAPI, store catalog.Store, cfg common.CrawlerConfig, logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UpsertBatch <= 0 {
		cfg.UpsertBatch = 100
	}
	return &Crawler{api: api, store: store, cfg: cfg, logger: logger}
}

// Run walks every brand of the vendor. A brand that fails after retries is
// recorded and skipped; the crawl continues. The inter-brand delay
// rate-limits the live API.
func (c *Crawler) Run(ctx context.Context, vendorID string) (Stats, error) {
	start := time.Now()
	stats := Stats{}

	brands, err := c.api.Brands(ctx)
	if err != nil {
		return stats, common.WrapError(err, "fetch brand index")
	}
	stats.Brands = len(brands)
	c.logger.Info("crawler.start", "vendor", vendorID, "brands", len(brands))

	var pending []*entity.CatalogEntry
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if err := c.store.UpsertBatch(ctx, pending); err != nil {
			return common.WrapError(err, "upsert catalog batch")
		}
		stats.Upserted += len(pending)
		pending = pending[:0]
		return nil
	}

	for i, brand := range brands {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		products, err := c.api.Products(ctx, brand.ID)
		if err != nil {
			c.logger.Warn("crawler.brand.failed", "brand", brand.Name, "error", err)
			stats.FailedBrands = append(stats.FailedBrands, brand.Name)
			continue
		}
		stats.Models += len(products)

		for _, p := range products {
			entries := flatten(vendorID, brand.Name, p)
			stats.Entries += len(entries)
			pending = append(pending, entries...)
			if len(pending) >= c.cfg.UpsertBatch {
				if err := flush(); err != nil {
					return stats, err
				}
			}
		}
		c.logger.Info("crawler.brand.done", "brand", brand.Name, "models", len(products))

		if c.cfg.RequestDelay > 0 && i < len(brands)-1 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-time.After(c.cfg.RequestDelay):
			}
		}
	}

	if err := flush(); err != nil {
		return stats, err
	}
	stats.Duration = time.Since(start).Seconds()
	c.logger.Info("crawler.done",
		"vendor", vendorID,
		"brands", stats.Brands,
		"models", stats.Models,
		"entries", stats.Entries,
		"upserted", stats.Upserted,
		"failed_brands", len(stats.FailedBrands),
	)
	return stats, nil
}

// flatten expands one product's color and size variants into catalog rows.
func flatten(vendorID, brandName string, p Product) []*entity.CatalogEntry {
	var out []*entity.CatalogEntry
	for _, color := range p.Colors {
		for _, size := range color.Sizes {
			e := &entity.CatalogEntry{
				VendorID:     strings.ToLower(vendorID),
				Brand:        strings.ToUpper(brandName),
				Model:        strings.ToUpper(p.Model),
				ColorCode:    strings.ToUpper(color.Code),
				ColorName:    color.Name,
				SKU:          size.SKU,
				UPC:          size.UPC,
				EAN:          size.EAN,
				EyeSize:      size.Eye,
				Bridge:       size.Bridge,
				TempleLength: size.Temple,
				FullSize:     fullSize(size.Eye, size.Bridge, size.Temple),
				Material:     p.Material,
				Gender:       p.Gender,
				InStock:      size.InStock,
			}
			if p.Wholesale > 0 {
				w := p.Wholesale
				e.WholesaleCost = &w
			}
			if p.MSRP > 0 {
				m := p.MSRP
				e.MSRP = &m
			}
			if e.SKU == "" {
				e.SKU = fmt.Sprintf("%s/%s/%d", e.Model, e.ColorCode, e.EyeSize)
			}
			e.AvailabilityStatus = availability(size.Status, size.InStock)
			out = append(out, e)
		}
	}
	return out
}

func fullSize(eye, bridge, temple int) string {
	if bridge == 0 && temple == 0 {
		return fmt.Sprintf("%d", eye)
	}
	return fmt.Sprintf("%d-%d-%d", eye, bridge, temple)
}

func availability(status string, inStock bool) constants.AvailabilityStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case string(constants.AvailabilityInStock):
		return constants.AvailabilityInStock
	case string(constants.AvailabilityBackordered):
		return constants.AvailabilityBackordered
	case string(constants.AvailabilityDiscontinued):
		return constants.AvailabilityDiscontinued
	case "":
		if inStock {
			return constants.AvailabilityInStock
		}
		return constants.AvailabilityUnknown
	default:
		return constants.AvailabilityUnknown
	}
}
