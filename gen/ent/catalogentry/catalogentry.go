// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the catalogentry type in the database.
	Label = "catalog_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldColorCode holds the string denoting the color_code field in the database.
	FieldColorCode = "color_code"
	// FieldColorName holds the string denoting the color_name field in the database.
	FieldColorName = "color_name"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldUpc holds the string denoting the upc field in the database.
	FieldUpc = "upc"
	// FieldEan holds the string denoting the ean field in the database.
	FieldEan = "ean"
	// FieldWholesaleCost holds the string denoting the wholesale_cost field in the database.
	FieldWholesaleCost = "wholesale_cost"
	// FieldMsrp holds the string denoting the msrp field in the database.
	FieldMsrp = "msrp"
	// FieldEyeSize holds the string denoting the eye_size field in the database.
	FieldEyeSize = "eye_size"
	// FieldBridge holds the string denoting the bridge field in the database.
	FieldBridge = "bridge"
	// FieldTempleLength holds the string denoting the temple_length field in the database.
	FieldTempleLength = "temple_length"
	// FieldFullSize holds the string denoting the full_size field in the database.
	FieldFullSize = "full_size"
	// FieldMaterial holds the string denoting the material field in the database.
	FieldMaterial = "material"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldInStock holds the string denoting the in_stock field in the database.
	FieldInStock = "in_stock"
	// FieldAvailabilityStatus holds the string denoting the availability_status field in the database.
	FieldAvailabilityStatus = "availability_status"
	// FieldCrawledAt holds the string denoting the crawled_at field in the database.
	FieldCrawledAt = "crawled_at"
	// Table holds the table name of the catalogentry in the database.
	Table = "catalog_entries"
)

// Columns holds all SQL columns for catalogentry fields.
var Columns = []string{
	FieldID,
	FieldVendorID,
	FieldBrand,
	FieldModel,
	FieldColorCode,
	FieldColorName,
	FieldSku,
	FieldUpc,
	FieldEan,
	FieldWholesaleCost,
	FieldMsrp,
	FieldEyeSize,
	FieldBridge,
	FieldTempleLength,
	FieldFullSize,
	FieldMaterial,
	FieldGender,
	FieldInStock,
	FieldAvailabilityStatus,
	FieldCrawledAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VendorIDValidator is a validator for the "vendor_id" field. It is called by the builders before save.
	VendorIDValidator func(string) error
	// BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	BrandValidator func(string) error
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// ColorCodeValidator is a validator for the "color_code" field. It is called by the builders before save.
	ColorCodeValidator func(string) error
	// EyeSizeValidator is a validator for the "eye_size" field. It is called by the builders before save.
	EyeSizeValidator func(int) error
	// DefaultInStock holds the default value on creation for the "in_stock" field.
	DefaultInStock bool
	// DefaultCrawledAt holds the default value on creation for the "crawled_at" field.
	DefaultCrawledAt func() time.Time
	// UpdateDefaultCrawledAt holds the default value on update for the "crawled_at" field.
	UpdateDefaultCrawledAt func() time.Time
)

// OrderOption defines the ordering options for the CatalogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByBrand orders the results by the brand field.
func ByBrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrand, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByColorCode orders the results by the color_code field.
func ByColorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorCode, opts...).ToFunc()
}

// ByColorName orders the results by the color_name field.
func ByColorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColorName, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
}

// ByUpc orders the results by the upc field.
func ByUpc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpc, opts...).ToFunc()
}

// ByEan orders the results by the ean field.
func ByEan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEan, opts...).ToFunc()
}

// ByWholesaleCost orders the results by the wholesale_cost field.
func ByWholesaleCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWholesaleCost, opts...).ToFunc()
}

// ByMsrp orders the results by the msrp field.
func ByMsrp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMsrp, opts...).ToFunc()
}

// ByEyeSize orders the results by the eye_size field.
func ByEyeSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEyeSize, opts...).ToFunc()
}

// ByBridge orders the results by the bridge field.
func ByBridge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBridge, opts...).ToFunc()
}

// ByTempleLength orders the results by the temple_length field.
func ByTempleLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTempleLength, opts...).ToFunc()
}

// ByFullSize orders the results by the full_size field.
func ByFullSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullSize, opts...).ToFunc()
}

// ByMaterial orders the results by the material field.
func ByMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterial, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByInStock orders the results by the in_stock field.
func ByInStock(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInStock, opts...).ToFunc()
}

// ByAvailabilityStatus orders the results by the availability_status field.
func ByAvailabilityStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailabilityStatus, opts...).ToFunc()
}

// ByCrawledAt orders the results by the crawled_at field.
func ByCrawledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrawledAt, opts...).ToFunc()
}
