package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/framedesk/order-intake/gen/proto/orders/v1"
	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/crawler"
)

type CatalogServer struct {
	ordersv1.UnimplementedCatalogServiceServer
	crawler *crawler.Crawler
	logger  *slog.Logger
}

func NewCatalogServer(c *crawler.Crawler, logger *slog.Logger) *CatalogServer {
	return &CatalogServer{crawler: c, logger: logger}
}

// CrawlVendor implements ordersv1.CatalogServiceServer. Crawls must not
// run concurrently with live ingestion for the same vendor; the caller is
// expected to schedule them off-hours.
func (s *CatalogServer) CrawlVendor(ctx context.Context, req *ordersv1.CrawlVendorRequest) (*ordersv1.CrawlVendorResponse, error) {
	vendorID := constants.NormalizeVendor(req.GetVendorId())
	if strings.TrimSpace(vendorID) == "" {
		return nil, status.Error(codes.InvalidArgument, "vendor_id is required")
	}
	if !constants.IsKnownVendor(vendorID) {
		return nil, status.Error(codes.InvalidArgument, "unknown vendor "+vendorID)
	}

	s.logger.Info("starting catalog crawl", "vendor", vendorID)
	stats, err := s.crawler.Run(ctx, vendorID)
	if err != nil {
		s.logger.Error("catalog crawl failed", "vendor", vendorID, "error", err)
		return nil, status.Error(codes.Internal, "crawl failed: "+err.Error())
	}

	return &ordersv1.CrawlVendorResponse{
		Brands:          int32(stats.Brands),
		Models:          int32(stats.Models),
		Entries:         int32(stats.Entries),
		Upserted:        int32(stats.Upserted),
		FailedBrands:    stats.FailedBrands,
		DurationSeconds: stats.Duration,
	}, nil
}
