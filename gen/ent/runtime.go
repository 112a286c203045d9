// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/framedesk/order-intake/db/ent/schema"
	"github.com/framedesk/order-intake/gen/ent/account"
	"github.com/framedesk/order-intake/gen/ent/catalogentry"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[1].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = accountDescName.Validators[0].(func(string) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[2].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[3].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() uuid.UUID)
	catalogentryFields := schema.CatalogEntry{}.Fields()
	_ = catalogentryFields
	// catalogentryDescVendorID is the schema descriptor for vendor_id field.
	catalogentryDescVendorID := catalogentryFields[0].Descriptor()
	// catalogentry.VendorIDValidator is a validator for the "vendor_id" field. It is called by the builders before save.
	catalogentry.VendorIDValidator = catalogentryDescVendorID.Validators[0].(func(string) error)
	// catalogentryDescBrand is the schema descriptor for brand field.
	catalogentryDescBrand := catalogentryFields[1].Descriptor()
	// catalogentry.BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	catalogentry.BrandValidator = catalogentryDescBrand.Validators[0].(func(string) error)
	// catalogentryDescModel is the schema descriptor for model field.
	catalogentryDescModel := catalogentryFields[2].Descriptor()
	// catalogentry.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	catalogentry.ModelValidator = catalogentryDescModel.Validators[0].(func(string) error)
	// catalogentryDescColorCode is the schema descriptor for color_code field.
	catalogentryDescColorCode := catalogentryFields[3].Descriptor()
	// catalogentry.ColorCodeValidator is a validator for the "color_code" field. It is called by the builders before save.
	catalogentry.ColorCodeValidator = catalogentryDescColorCode.Validators[0].(func(string) error)
	// catalogentryDescEyeSize is the schema descriptor for eye_size field.
	catalogentryDescEyeSize := catalogentryFields[10].Descriptor()
	// catalogentry.EyeSizeValidator is a validator for the "eye_size" field. It is called by the builders before save.
	catalogentry.EyeSizeValidator = catalogentryDescEyeSize.Validators[0].(func(int) error)
	// catalogentryDescInStock is the schema descriptor for in_stock field.
	catalogentryDescInStock := catalogentryFields[16].Descriptor()
	// catalogentry.DefaultInStock holds the default value on creation for the in_stock field.
	catalogentry.DefaultInStock = catalogentryDescInStock.Default.(bool)
	// catalogentryDescCrawledAt is the schema descriptor for crawled_at field.
	catalogentryDescCrawledAt := catalogentryFields[18].Descriptor()
	// catalogentry.DefaultCrawledAt holds the default value on creation for the crawled_at field.
	catalogentry.DefaultCrawledAt = catalogentryDescCrawledAt.Default.(func() time.Time)
	// catalogentry.UpdateDefaultCrawledAt holds the default value on update for the crawled_at field.
	catalogentry.UpdateDefaultCrawledAt = catalogentryDescCrawledAt.UpdateDefault.(func() time.Time)
	orderFields := schema.Order{}.Fields()
	_ = orderFields
	// orderDescVendor is the schema descriptor for vendor field.
	orderDescVendor := orderFields[2].Descriptor()
	// order.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	order.VendorValidator = orderDescVendor.Validators[0].(func(string) error)
	// orderDescOrderNumber is the schema descriptor for order_number field.
	orderDescOrderNumber := orderFields[3].Descriptor()
	// order.OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	order.OrderNumberValidator = orderDescOrderNumber.Validators[0].(func(string) error)
	// orderDescTotalPieces is the schema descriptor for total_pieces field.
	orderDescTotalPieces := orderFields[8].Descriptor()
	// order.TotalPiecesValidator is a validator for the "total_pieces" field. It is called by the builders before save.
	order.TotalPiecesValidator = orderDescTotalPieces.Validators[0].(func(int) error)
	// orderDescParseStatus is the schema descriptor for parse_status field.
	orderDescParseStatus := orderFields[9].Descriptor()
	// order.ParseStatusValidator is a validator for the "parse_status" field. It is called by the builders before save.
	order.ParseStatusValidator = orderDescParseStatus.Validators[0].(func(string) error)
	// orderDescCreatedAt is the schema descriptor for created_at field.
	orderDescCreatedAt := orderFields[12].Descriptor()
	// order.DefaultCreatedAt holds the default value on creation for the created_at field.
	order.DefaultCreatedAt = orderDescCreatedAt.Default.(func() time.Time)
	// orderDescID is the schema descriptor for id field.
	orderDescID := orderFields[0].Descriptor()
	// order.DefaultID holds the default value on creation for the id field.
	order.DefaultID = orderDescID.Default.(func() uuid.UUID)
	orderitemFields := schema.OrderItem{}.Fields()
	_ = orderitemFields
	// orderitemDescSku is the schema descriptor for sku field.
	orderitemDescSku := orderitemFields[2].Descriptor()
	// orderitem.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	orderitem.SkuValidator = orderitemDescSku.Validators[0].(func(string) error)
	// orderitemDescQuantity is the schema descriptor for quantity field.
	orderitemDescQuantity := orderitemFields[8].Descriptor()
	// orderitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	orderitem.QuantityValidator = orderitemDescQuantity.Validators[0].(func(int) error)
	// orderitemDescAPIVerified is the schema descriptor for api_verified field.
	orderitemDescAPIVerified := orderitemFields[13].Descriptor()
	// orderitem.DefaultAPIVerified holds the default value on creation for the api_verified field.
	orderitem.DefaultAPIVerified = orderitemDescAPIVerified.Default.(bool)
	// orderitemDescConfidenceScore is the schema descriptor for confidence_score field.
	orderitemDescConfidenceScore := orderitemFields[14].Descriptor()
	// orderitem.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	orderitem.ConfidenceScoreValidator = orderitemDescConfidenceScore.Validators[0].(func(int) error)
	// orderitemDescID is the schema descriptor for id field.
	orderitemDescID := orderitemFields[0].Descriptor()
	// orderitem.DefaultID holds the default value on creation for the id field.
	orderitem.DefaultID = orderitemDescID.Default.(func() uuid.UUID)
}
