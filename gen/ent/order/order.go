// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldVendor holds the string denoting the vendor field in the database.
	FieldVendor = "vendor"
	// FieldOrderNumber holds the string denoting the order_number field in the database.
	FieldOrderNumber = "order_number"
	// FieldVendorAccountNumber holds the string denoting the vendor_account_number field in the database.
	FieldVendorAccountNumber = "vendor_account_number"
	// FieldCustomerName holds the string denoting the customer_name field in the database.
	FieldCustomerName = "customer_name"
	// FieldRepName holds the string denoting the rep_name field in the database.
	FieldRepName = "rep_name"
	// FieldOrderDate holds the string denoting the order_date field in the database.
	FieldOrderDate = "order_date"
	// FieldTotalPieces holds the string denoting the total_pieces field in the database.
	FieldTotalPieces = "total_pieces"
	// FieldParseStatus holds the string denoting the parse_status field in the database.
	FieldParseStatus = "parse_status"
	// FieldValidationRate holds the string denoting the validation_rate field in the database.
	FieldValidationRate = "validation_rate"
	// FieldParsedAt holds the string denoting the parsed_at field in the database.
	FieldParsedAt = "parsed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "orders"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "order_items"
	// ItemsInverseTable is the table name for the OrderItem entity.
	// It exists in this package in order to avoid circular dependency with the "orderitem" package.
	ItemsInverseTable = "order_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldVendor,
	FieldOrderNumber,
	FieldVendorAccountNumber,
	FieldCustomerName,
	FieldRepName,
	FieldOrderDate,
	FieldTotalPieces,
	FieldParseStatus,
	FieldValidationRate,
	FieldParsedAt,
	FieldCreatedAt,
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
	// VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	VendorValidator func(string) error
	// OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	OrderNumberValidator func(string) error
	// TotalPiecesValidator is a validator for the "total_pieces" field. It is called by the builders before save.
	TotalPiecesValidator func(int) error
	// ParseStatusValidator is a validator for the "parse_status" field. It is called by the builders before save.
	ParseStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByVendor orders the results by the vendor field.
func ByVendor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendor, opts...).ToFunc()
}

// ByOrderNumber orders the results by the order_number field.
func ByOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderNumber, opts...).ToFunc()
}

// ByVendorAccountNumber orders the results by the vendor_account_number field.
func ByVendorAccountNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorAccountNumber, opts...).ToFunc()
}

// ByCustomerName orders the results by the customer_name field.
func ByCustomerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerName, opts...).ToFunc()
}

// ByRepName orders the results by the rep_name field.
func ByRepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepName, opts...).ToFunc()
}

// ByOrderDate orders the results by the order_date field.
func ByOrderDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderDate, opts...).ToFunc()
}

// ByTotalPieces orders the results by the total_pieces field.
func ByTotalPieces(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPieces, opts...).ToFunc()
}

// ByParseStatus orders the results by the parse_status field.
func ByParseStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParseStatus, opts...).ToFunc()
}

// ByValidationRate orders the results by the validation_rate field.
func ByValidationRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationRate, opts...).ToFunc()
}

// ByParsedAt orders the results by the parsed_at field.
func ByParsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
