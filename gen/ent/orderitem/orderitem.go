// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the orderitem type in the database.
	Label = "order_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrderID holds the string denoting the order_id field in the database.
	FieldOrderID = "order_id"
	// FieldSku holds the string denoting the sku field in the database.
	FieldSku = "sku"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldColorCode holds the string denoting the color_code field in the database.
	FieldColorCode = "color_code"
	// FieldColorName holds the string denoting the color_name field in the database.
	FieldColorName = "color_name"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldOrderType holds the string denoting the order_type field in the database.
	FieldOrderType = "order_type"
	// FieldUpc holds the string denoting the upc field in the database.
	FieldUpc = "upc"
	// FieldWholesaleCost holds the string denoting the wholesale_cost field in the database.
	FieldWholesaleCost = "wholesale_cost"
	// FieldMsrp holds the string denoting the msrp field in the database.
	FieldMsrp = "msrp"
	// FieldAPIVerified holds the string denoting the api_verified field in the database.
	FieldAPIVerified = "api_verified"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldValidationReason holds the string denoting the validation_reason field in the database.
	FieldValidationReason = "validation_reason"
	// FieldAvailabilityStatus holds the string denoting the availability_status field in the database.
	FieldAvailabilityStatus = "availability_status"
	// EdgeOrder holds the string denoting the order edge name in mutations.
	EdgeOrder = "order"
	// Table holds the table name of the orderitem in the database.
	Table = "order_items"
	// OrderTable is the table that holds the order relation/edge.
	OrderTable = "order_items"
	// OrderInverseTable is the table name for the Order entity.
	// It exists in this package in order to avoid circular dependency with the "order" package.
	OrderInverseTable = "orders"
	// OrderColumn is the table column denoting the order relation/edge.
	OrderColumn = "order_id"
)

// Columns holds all SQL columns for orderitem fields.
var Columns = []string{
	FieldID,
	FieldOrderID,
	FieldSku,
	FieldBrand,
	FieldModel,
	FieldColorCode,
	FieldColorName,
	FieldSize,
	FieldQuantity,
	FieldOrderType,
	FieldUpc,
	FieldWholesaleCost,
	FieldMsrp,
	FieldAPIVerified,
	FieldConfidenceScore,
	FieldValidationReason,
	FieldAvailabilityStatus,
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
	// SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	SkuValidator func(string) error
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultAPIVerified holds the default value on creation for the "api_verified" field.
	DefaultAPIVerified bool
	// ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	ConfidenceScoreValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OrderItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrderID orders the results by the order_id field.
func ByOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderID, opts...).ToFunc()
}

// BySku orders the results by the sku field.
func BySku(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSku, opts...).ToFunc()
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

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByOrderType orders the results by the order_type field.
func ByOrderType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderType, opts...).ToFunc()
}

// ByUpc orders the results by the upc field.
func ByUpc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpc, opts...).ToFunc()
}

// ByWholesaleCost orders the results by the wholesale_cost field.
func ByWholesaleCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWholesaleCost, opts...).ToFunc()
}

// ByMsrp orders the results by the msrp field.
func ByMsrp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMsrp, opts...).ToFunc()
}

// ByAPIVerified orders the results by the api_verified field.
func ByAPIVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIVerified, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByValidationReason orders the results by the validation_reason field.
func ByValidationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationReason, opts...).ToFunc()
}

// ByAvailabilityStatus orders the results by the availability_status field.
func ByAvailabilityStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailabilityStatus, opts...).ToFunc()
}

// ByOrderField orders the results by order field.
func ByOrderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrderStep(), sql.OrderByField(field, opts...))
	}
}
func newOrderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
	)
}
