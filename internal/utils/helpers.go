package utils

import (
	"fmt"
	"time"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/gen/ent"
	ordersv1 "github.com/framedesk/order-intake/gen/proto/orders/v1"
	"github.com/framedesk/order-intake/internal/entity"
)

// ToCatalogEntry converts an ent row into the transfer shape the
// cross-referencer consumes.
func ToCatalogEntry(row *ent.CatalogEntry) *entity.CatalogEntry {
	return &entity.CatalogEntry{
		VendorID:           row.VendorID,
		Brand:              row.Brand,
		Model:              row.Model,
		ColorCode:          row.ColorCode,
		ColorName:          row.ColorName,
		SKU:                row.Sku,
		UPC:                row.Upc,
		EAN:                row.Ean,
		WholesaleCost:      row.WholesaleCost,
		MSRP:               row.Msrp,
		EyeSize:            row.EyeSize,
		Bridge:             row.Bridge,
		TempleLength:       row.TempleLength,
		FullSize:           row.FullSize,
		Material:           row.Material,
		Gender:             row.Gender,
		InStock:            row.InStock,
		AvailabilityStatus: constants.AvailabilityStatus(row.AvailabilityStatus),
	}
}

func ToCatalogEntries(rows []*ent.CatalogEntry) []*entity.CatalogEntry {
	out := make([]*entity.CatalogEntry, len(rows))
	for i, row := range rows {
		out[i] = ToCatalogEntry(row)
	}
	return out
}

// ToPBResult converts the engine output into the gRPC response shape.
func ToPBResult(result *entity.IngestResult) *ordersv1.IngestEmailResponse {
	resp := &ordersv1.IngestEmailResponse{
		Vendor: result.Vendor,
		Order: &ordersv1.OrderSummary{
			OrderNumber:   result.Order.OrderNumber,
			CustomerName:  result.Order.CustomerName,
			AccountNumber: result.Order.AccountNumber,
			OrderDate:     result.Order.OrderDate,
			TotalPieces:   int32(result.Order.TotalPieces),
			RepName:       result.Order.RepName,
			ParseStatus:   string(result.Order.ParseStatus),
		},
		ParsedAt: result.ParsedAt.UTC().Format(time.RFC3339),
		Stats: &ordersv1.EnrichmentStats{
			TotalFrames:           int32(result.EnrichmentStats.TotalFrames),
			Validated:             int32(result.EnrichmentStats.Validated),
			ValidationRate:        result.EnrichmentStats.ValidationRate,
			ProcessingTimeSeconds: result.EnrichmentStats.ProcessingTimeSeconds,
			FramesPerSecond:       result.EnrichmentStats.FramesPerSecond,
		},
		IsDuplicate:   result.IsDuplicate,
		DuplicateNote: result.DuplicateNote,
	}
	if result.AccountNumber != nil {
		resp.AccountNumber = *result.AccountNumber
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, ToPBItem(item))
	}
	return resp
}

func ToPBItem(item entity.EnrichedLineItem) *ordersv1.EnrichedItem {
	return &ordersv1.EnrichedItem{
		Sku:                item.SKU,
		Brand:              item.Brand,
		Model:              item.Model,
		ColorCode:          item.ColorCode,
		ColorName:          item.ColorName,
		Size:               item.Size,
		Quantity:           int32(item.Quantity),
		OrderType:          string(item.OrderType),
		Upc:                item.UPC,
		WholesaleCost:      moneyOrEmpty(item.WholesaleCost),
		Msrp:               moneyOrEmpty(item.MSRP),
		ApiVerified:        item.APIVerified,
		ConfidenceScore:    int32(item.ConfidenceScore),
		ValidationReason:   item.ValidationReason,
		AvailabilityStatus: item.AvailabilityStatus,
	}
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}
