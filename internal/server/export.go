package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/framedesk/order-intake/gen/proto/orders/v1"
	"github.com/framedesk/order-intake/internal/export"
)

type ExportServer struct {
	ordersv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

// ExportOrders implements ordersv1.ExportServiceServer.
func (s *ExportServer) ExportOrders(ctx context.Context, req *ordersv1.ExportOrdersRequest) (*ordersv1.ExportOrdersResponse, error) {
	aid := strings.TrimSpace(req.GetAccountId())
	accountID, err := uuid.Parse(aid)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "account_id must be a UUID")
	}

	parseDate := func(s string) (*time.Time, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	data, err := s.svc.ExportOrdersXLSX(ctx, accountID, from, to)
	if err != nil {
		s.logger.Error("export failed", "account_id", accountID, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	name := fmt.Sprintf("orders-%s-%s.xlsx", accountID.String()[:8], time.Now().UTC().Format("20060102"))
	return &ordersv1.ExportOrdersResponse{Xlsx: data, FileName: name}, nil
}
