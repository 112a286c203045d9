package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ordersv1 "github.com/framedesk/order-intake/gen/proto/orders/v1"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/crawler"
	"github.com/framedesk/order-intake/internal/crossref"
	"github.com/framedesk/order-intake/internal/detect"
	"github.com/framedesk/order-intake/internal/dupes"
	"github.com/framedesk/order-intake/internal/export"
	"github.com/framedesk/order-intake/internal/ingest"
	"github.com/framedesk/order-intake/internal/parse"
	"github.com/framedesk/order-intake/internal/parse/htmlparse"
	"github.com/framedesk/order-intake/internal/parse/pdfparse"
	repo "github.com/framedesk/order-intake/internal/repository"
	svc "github.com/framedesk/order-intake/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	accountsRepo := repo.NewAccountRepository(entc, logger)
	ordersRepo := repo.NewOrderRepository(entc, logger)
	catalogStore := repo.NewCatalogStore(entc, logger)

	detector := detect.NewDetector(logger)

	registry := parse.NewRegistry(logger)
	registry.Register(htmlparse.New(logger))
	registry.Register(pdfparse.New(logger))

	enricher := crossref.NewEnricher(catalogStore, nil, cfg.Crossref, logger)
	dupDetector := dupes.NewDetector(ordersRepo, cfg.Dupes.Strict, logger)

	engine := ingest.NewService(detector, registry, enricher, dupDetector, logger)
	ingestionService := svc.NewIngestionServer(engine, accountsRepo, ordersRepo, logger)
	ordersv1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	apiClient := crawler.NewAPIClient(cfg.Crawler.BaseURL, cfg.Crawler.RequestTimeout, cfg.Crawler.MaxRetries, logger)
	catalogService := svc.NewCatalogServer(crawler.New(apiClient, catalogStore, cfg.Crawler, logger), logger)
	ordersv1.RegisterCatalogServiceServer(grpcServer, catalogService)

	exportService := svc.NewExportServer(export.NewService(ordersRepo, logger), logger)
	ordersv1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("order-intake listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
