package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/crawler"
	repo "github.com/framedesk/order-intake/internal/repository"
	svc "github.com/framedesk/order-intake/internal/server"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		vendor     = flag.String("vendor", "", "vendor id to crawl (required)")
		sqlitePath = flag.String("sqlite", "", "write to a local SQLite catalog instead of Postgres")
		apiURL     = flag.String("api", "", "catalog API base URL (overrides CATALOG_API_URL)")
	)
	flag.Parse()

	if *vendor == "" {
		printError("Error: --vendor is required (one of %v)\n", constants.AllVendors())
		os.Exit(1)
	}
	vendorID := constants.NormalizeVendor(*vendor)
	if !constants.IsKnownVendor(vendorID) {
		printError("Error: unknown vendor %q\n", *vendor)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *apiURL != "" {
		cfg.Crawler.BaseURL = *apiURL
	}
	if cfg.Crawler.BaseURL == "" {
		printError("Error: catalog API base URL is required (--api or CATALOG_API_URL)\n")
		os.Exit(1)
	}

	var store catalog.Store
	if *sqlitePath != "" {
		s, err := catalog.OpenSQLite(ctx, *sqlitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite catalog", "path", *sqlitePath, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := s.Close(); err != nil {
				logger.Error("failed to close sqlite catalog", "error", err)
			}
		}()
		store = s
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --sqlite is given\n")
			os.Exit(1)
		}
		entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer svc.CloseDB(entc, pool, logger)
		store = repo.NewCatalogStore(entc, logger)
	}

	api := crawler.NewAPIClient(cfg.Crawler.BaseURL, cfg.Crawler.RequestTimeout, cfg.Crawler.MaxRetries, logger)
	c := crawler.New(api, store, cfg.Crawler, logger)

	logger.Info("starting catalog crawl", "vendor", vendorID, "api", cfg.Crawler.BaseURL)
	stats, err := c.Run(ctx, vendorID)
	if err != nil {
		logger.Error("crawl failed", "vendor", vendorID, "error", err)
		os.Exit(1)
	}

	logger.Info("crawl complete",
		"vendor", vendorID,
		"brands", stats.Brands,
		"models", stats.Models,
		"entries", stats.Entries,
		"upserted", stats.Upserted,
		"failed_brands", stats.FailedBrands,
		"duration", stats.Duration)

	fmt.Printf("Crawl complete!\n")
	fmt.Printf("- Brands walked: %d\n", stats.Brands)
	fmt.Printf("- Models seen: %d\n", stats.Models)
	fmt.Printf("- Entries upserted: %d\n", stats.Upserted)
	if len(stats.FailedBrands) > 0 {
		fmt.Printf("- Failed brands: %v\n", stats.FailedBrands)
	}
}
