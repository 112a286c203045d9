package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/framedesk/order-intake/gen/ent"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/dupes"
	"github.com/framedesk/order-intake/internal/entity"
)

// OrderRepository persists ingest results and serves the duplicate
// detector's identity listing.
type OrderRepository interface {
	dupes.OrderStore
	SaveIngestResult(ctx context.Context, accountID uuid.UUID, result *entity.IngestResult) (uuid.UUID, error)
	ListOrders(ctx context.Context, accountID uuid.UUID, from, to *time.Time) ([]*ent.Order, error)
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) ListOrderIdentities(ctx context.Context, accountID uuid.UUID, vendor string) ([]dupes.StoredOrder, error) {
	rows, err := r.client.Order.Query().
		Where(order.AccountID(accountID), order.VendorEqualFold(vendor)).
		Select(order.FieldVendor, order.FieldOrderNumber, order.FieldVendorAccountNumber, order.FieldCustomerName).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list order identities", "account_id", accountID, "error", err)
		return nil, common.WrapError(err, "list order identities")
	}
	out := make([]dupes.StoredOrder, len(rows))
	for i, row := range rows {
		out[i] = dupes.StoredOrder{
			Vendor:        row.Vendor,
			OrderNumber:   row.OrderNumber,
			AccountNumber: row.VendorAccountNumber,
			CustomerName:  row.CustomerName,
		}
	}
	return out, nil
}

// SaveIngestResult stores the order row and its enriched items in one
// transaction. The engine result is immutable; this is a plain insert.
func (r *orderRepository) SaveIngestResult(ctx context.Context, accountID uuid.UUID, result *entity.IngestResult) (uuid.UUID, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, common.WrapError(err, "begin tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := tx.Order.Create().
		SetAccountID(accountID).
		SetVendor(result.Vendor).
		SetOrderNumber(result.Order.OrderNumber).
		SetVendorAccountNumber(result.Order.AccountNumber).
		SetCustomerName(result.Order.CustomerName).
		SetRepName(result.Order.RepName).
		SetOrderDate(result.Order.OrderDate).
		SetTotalPieces(result.Order.TotalPieces).
		SetParseStatus(string(result.Order.ParseStatus)).
		SetValidationRate(result.EnrichmentStats.ValidationRate).
		SetParsedAt(result.ParsedAt).
		Save(ctx)
	if err != nil {
		return uuid.Nil, common.WrapError(err, "insert order")
	}

	itemBuilders := make([]*ent.OrderItemCreate, len(result.Items))
	for i, item := range result.Items {
		itemBuilders[i] = tx.OrderItem.Create().
			SetOrderID(row.ID).
			SetSku(item.SKU).
			SetBrand(item.Brand).
			SetModel(item.Model).
			SetColorCode(item.ColorCode).
			SetColorName(item.ColorName).
			SetSize(item.Size).
			SetQuantity(item.Quantity).
			SetOrderType(string(item.OrderType)).
			SetUpc(item.UPC).
			SetNillableWholesaleCost(item.WholesaleCost).
			SetNillableMsrp(item.MSRP).
			SetAPIVerified(item.APIVerified).
			SetConfidenceScore(item.ConfidenceScore).
			SetValidationReason(item.ValidationReason).
			SetAvailabilityStatus(item.AvailabilityStatus)
	}
	if _, err = tx.OrderItem.CreateBulk(itemBuilders...).Save(ctx); err != nil {
		return uuid.Nil, common.WrapError(err, "insert order items")
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, common.WrapError(err, "commit order")
	}
	r.logger.Info("order persisted", "order_id", row.ID, "order_number", result.Order.OrderNumber, "items", len(result.Items))
	return row.ID, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, accountID uuid.UUID, from, to *time.Time) ([]*ent.Order, error) {
	q := r.client.Order.Query().Where(order.AccountID(accountID))
	if from != nil {
		q = q.Where(order.ParsedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(order.ParsedAtLTE(*to))
	}
	rows, err := q.Order(order.ByParsedAt()).WithItems().All(ctx)
	if err != nil {
		r.logger.Error("failed to list orders", "account_id", accountID, "error", err)
		return nil, err
	}
	return rows, nil
}
