// Package export produces XLSX order books from persisted orders.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/framedesk/order-intake/internal/repository"
)

// Service is a tiny façade over the order repository that produces XLSX
// bytes for exports.
type Service struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

func NewService(orders repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, logger: logger}
}

// ExportOrdersXLSX returns an XLSX workbook (as bytes) with one row per
// line item for the given account and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all orders for the account.
func (s *Service) ExportOrdersXLSX(ctx context.Context, accountID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.orders.ListOrders(ctx, accountID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Order Date",
		"Vendor",
		"Order #",
		"Customer",
		"Brand",
		"Model",
		"Color",
		"Size",
		"Qty",
		"Wholesale",
		"Verified",
		"Confidence",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for _, o := range orders {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		for _, item := range o.Edges.Items {
			write(1, o.OrderDate)
			write(2, o.Vendor)
			write(3, o.OrderNumber)
			write(4, o.CustomerName)
			write(5, item.Brand)
			write(6, item.Model)
			write(7, item.ColorCode)
			write(8, item.Size)
			write(9, item.Quantity)
			if item.WholesaleCost != nil {
				write(10, fmt.Sprintf("%.2f", *item.WholesaleCost))
			}
			write(11, item.APIVerified)
			write(12, item.ConfidenceScore)
			write(13, item.AvailabilityStatus)
			row++
			rows++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 16) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 24) // order/customer
	_ = f.SetColWidth(sheet, "E", "G", 18) // brand/model/color
	_ = f.SetColWidth(sheet, "M", "M", 16) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"account_id", accountID.String(),
		"orders", len(orders),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
