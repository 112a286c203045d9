package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/framedesk/order-intake/gen/ent"
	"github.com/framedesk/order-intake/gen/ent/catalogentry"
	"github.com/framedesk/order-intake/internal/catalog"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/utils"
)

type catalogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCatalogStore returns the Postgres-backed catalog store.
func NewCatalogStore(client *ent.Client, logger *slog.Logger) catalog.Store {
	return &catalogRepository{client: client, logger: logger}
}

func (r *catalogRepository) FindExact(ctx context.Context, vendorID, brand, model, colorCode string, eyeSize int) (*entity.CatalogEntry, error) {
	row, err := r.client.CatalogEntry.Query().
		Where(
			catalogentry.VendorIDEqualFold(vendorID),
			catalogentry.BrandEqualFold(brand),
			catalogentry.ModelEqualFold(model),
			catalogentry.ColorCodeEqualFold(colorCode),
			catalogentry.EyeSize(eyeSize),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, common.WrapError(err, "catalog exact lookup")
	}
	return utils.ToCatalogEntry(row), nil
}

func (r *catalogRepository) FindByModelSize(ctx context.Context, vendorID, brand, model string, eyeSize int) ([]*entity.CatalogEntry, error) {
	rows, err := r.client.CatalogEntry.Query().
		Where(
			catalogentry.VendorIDEqualFold(vendorID),
			catalogentry.BrandEqualFold(brand),
			catalogentry.ModelEqualFold(model),
			catalogentry.EyeSize(eyeSize),
		).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "catalog model/size lookup")
	}
	return utils.ToCatalogEntries(rows), nil
}

func (r *catalogRepository) FindBySize(ctx context.Context, vendorID string, eyeSize int) ([]*entity.CatalogEntry, error) {
	rows, err := r.client.CatalogEntry.Query().
		Where(
			catalogentry.VendorIDEqualFold(vendorID),
			catalogentry.EyeSize(eyeSize),
		).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "catalog size lookup")
	}
	return utils.ToCatalogEntries(rows), nil
}

// UpsertBatch writes crawled rows on the (vendor_id, model, color_code,
// eye_size) key; conflicting rows are updated in place.
func (r *catalogRepository) UpsertBatch(ctx context.Context, entries []*entity.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	builders := make([]*ent.CatalogEntryCreate, len(entries))
	for i, e := range entries {
		b := r.client.CatalogEntry.Create().
			SetVendorID(e.VendorID).
			SetBrand(e.Brand).
			SetModel(e.Model).
			SetColorCode(e.ColorCode).
			SetColorName(e.ColorName).
			SetSku(e.SKU).
			SetUpc(e.UPC).
			SetEan(e.EAN).
			SetNillableWholesaleCost(e.WholesaleCost).
			SetNillableMsrp(e.MSRP).
			SetEyeSize(e.EyeSize).
			SetBridge(e.Bridge).
			SetTempleLength(e.TempleLength).
			SetFullSize(e.FullSize).
			SetMaterial(e.Material).
			SetGender(e.Gender).
			SetInStock(e.InStock).
			SetAvailabilityStatus(string(e.AvailabilityStatus))
		builders[i] = b
	}
	err := r.client.CatalogEntry.
		CreateBulk(builders...).
		OnConflict(
			sql.ConflictColumns(
				catalogentry.FieldVendorID,
				catalogentry.FieldModel,
				catalogentry.FieldColorCode,
				catalogentry.FieldEyeSize,
			),
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert catalog batch", "entries", len(entries), "error", err)
		return common.WrapError(err, "catalog upsert")
	}
	r.logger.Debug("catalog batch upserted", "entries", len(entries))
	return nil
}
