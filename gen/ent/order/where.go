// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/framedesk/order-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAccountID, v))
}

// Vendor applies equality check predicate on the "vendor" field. It's identical to VendorEQ.
func Vendor(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVendor, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// VendorAccountNumber applies equality check predicate on the "vendor_account_number" field. It's identical to VendorAccountNumberEQ.
func VendorAccountNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVendorAccountNumber, v))
}

// CustomerName applies equality check predicate on the "customer_name" field. It's identical to CustomerNameEQ.
func CustomerName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// RepName applies equality check predicate on the "rep_name" field. It's identical to RepNameEQ.
func RepName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRepName, v))
}

// OrderDate applies equality check predicate on the "order_date" field. It's identical to OrderDateEQ.
func OrderDate(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderDate, v))
}

// TotalPieces applies equality check predicate on the "total_pieces" field. It's identical to TotalPiecesEQ.
func TotalPieces(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPieces, v))
}

// ParseStatus applies equality check predicate on the "parse_status" field. It's identical to ParseStatusEQ.
func ParseStatus(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParseStatus, v))
}

// ValidationRate applies equality check predicate on the "validation_rate" field. It's identical to ValidationRateEQ.
func ValidationRate(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldValidationRate, v))
}

// ParsedAt applies equality check predicate on the "parsed_at" field. It's identical to ParsedAtEQ.
func ParsedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldAccountID, vs...))
}

// VendorEQ applies the EQ predicate on the "vendor" field.
func VendorEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVendor, v))
}

// VendorNEQ applies the NEQ predicate on the "vendor" field.
func VendorNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldVendor, v))
}

// VendorIn applies the In predicate on the "vendor" field.
func VendorIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldVendor, vs...))
}

// VendorNotIn applies the NotIn predicate on the "vendor" field.
func VendorNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldVendor, vs...))
}

// VendorGT applies the GT predicate on the "vendor" field.
func VendorGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldVendor, v))
}

// VendorGTE applies the GTE predicate on the "vendor" field.
func VendorGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldVendor, v))
}

// VendorLT applies the LT predicate on the "vendor" field.
func VendorLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldVendor, v))
}

// VendorLTE applies the LTE predicate on the "vendor" field.
func VendorLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldVendor, v))
}

// VendorContains applies the Contains predicate on the "vendor" field.
func VendorContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldVendor, v))
}

// VendorHasPrefix applies the HasPrefix predicate on the "vendor" field.
func VendorHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldVendor, v))
}

// VendorHasSuffix applies the HasSuffix predicate on the "vendor" field.
func VendorHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldVendor, v))
}

// VendorEqualFold applies the EqualFold predicate on the "vendor" field.
func VendorEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldVendor, v))
}

// VendorContainsFold applies the ContainsFold predicate on the "vendor" field.
func VendorContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldVendor, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderNumber, v))
}

// VendorAccountNumberEQ applies the EQ predicate on the "vendor_account_number" field.
func VendorAccountNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldVendorAccountNumber, v))
}

// VendorAccountNumberNEQ applies the NEQ predicate on the "vendor_account_number" field.
func VendorAccountNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldVendorAccountNumber, v))
}

// VendorAccountNumberIn applies the In predicate on the "vendor_account_number" field.
func VendorAccountNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldVendorAccountNumber, vs...))
}

// VendorAccountNumberNotIn applies the NotIn predicate on the "vendor_account_number" field.
func VendorAccountNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldVendorAccountNumber, vs...))
}

// VendorAccountNumberGT applies the GT predicate on the "vendor_account_number" field.
func VendorAccountNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldVendorAccountNumber, v))
}

// VendorAccountNumberGTE applies the GTE predicate on the "vendor_account_number" field.
func VendorAccountNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldVendorAccountNumber, v))
}

// VendorAccountNumberLT applies the LT predicate on the "vendor_account_number" field.
func VendorAccountNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldVendorAccountNumber, v))
}

// VendorAccountNumberLTE applies the LTE predicate on the "vendor_account_number" field.
func VendorAccountNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldVendorAccountNumber, v))
}

// VendorAccountNumberContains applies the Contains predicate on the "vendor_account_number" field.
func VendorAccountNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldVendorAccountNumber, v))
}

// VendorAccountNumberHasPrefix applies the HasPrefix predicate on the "vendor_account_number" field.
func VendorAccountNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldVendorAccountNumber, v))
}

// VendorAccountNumberHasSuffix applies the HasSuffix predicate on the "vendor_account_number" field.
func VendorAccountNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldVendorAccountNumber, v))
}

// VendorAccountNumberIsNil applies the IsNil predicate on the "vendor_account_number" field.
func VendorAccountNumberIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldVendorAccountNumber))
}

// VendorAccountNumberNotNil applies the NotNil predicate on the "vendor_account_number" field.
func VendorAccountNumberNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldVendorAccountNumber))
}

// VendorAccountNumberEqualFold applies the EqualFold predicate on the "vendor_account_number" field.
func VendorAccountNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldVendorAccountNumber, v))
}

// VendorAccountNumberContainsFold applies the ContainsFold predicate on the "vendor_account_number" field.
func VendorAccountNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldVendorAccountNumber, v))
}

// CustomerNameEQ applies the EQ predicate on the "customer_name" field.
func CustomerNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCustomerName, v))
}

// CustomerNameNEQ applies the NEQ predicate on the "customer_name" field.
func CustomerNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCustomerName, v))
}

// CustomerNameIn applies the In predicate on the "customer_name" field.
func CustomerNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCustomerName, vs...))
}

// CustomerNameNotIn applies the NotIn predicate on the "customer_name" field.
func CustomerNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCustomerName, vs...))
}

// CustomerNameGT applies the GT predicate on the "customer_name" field.
func CustomerNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCustomerName, v))
}

// CustomerNameGTE applies the GTE predicate on the "customer_name" field.
func CustomerNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCustomerName, v))
}

// CustomerNameLT applies the LT predicate on the "customer_name" field.
func CustomerNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCustomerName, v))
}

// CustomerNameLTE applies the LTE predicate on the "customer_name" field.
func CustomerNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCustomerName, v))
}

// CustomerNameContains applies the Contains predicate on the "customer_name" field.
func CustomerNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCustomerName, v))
}

// CustomerNameHasPrefix applies the HasPrefix predicate on the "customer_name" field.
func CustomerNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCustomerName, v))
}

// CustomerNameHasSuffix applies the HasSuffix predicate on the "customer_name" field.
func CustomerNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCustomerName, v))
}

// CustomerNameIsNil applies the IsNil predicate on the "customer_name" field.
func CustomerNameIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCustomerName))
}

// CustomerNameNotNil applies the NotNil predicate on the "customer_name" field.
func CustomerNameNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCustomerName))
}

// CustomerNameEqualFold applies the EqualFold predicate on the "customer_name" field.
func CustomerNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCustomerName, v))
}

// CustomerNameContainsFold applies the ContainsFold predicate on the "customer_name" field.
func CustomerNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCustomerName, v))
}

// RepNameEQ applies the EQ predicate on the "rep_name" field.
func RepNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRepName, v))
}

// RepNameNEQ applies the NEQ predicate on the "rep_name" field.
func RepNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRepName, v))
}

// RepNameIn applies the In predicate on the "rep_name" field.
func RepNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRepName, vs...))
}

// RepNameNotIn applies the NotIn predicate on the "rep_name" field.
func RepNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRepName, vs...))
}

// RepNameGT applies the GT predicate on the "rep_name" field.
func RepNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldRepName, v))
}

// RepNameGTE applies the GTE predicate on the "rep_name" field.
func RepNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldRepName, v))
}

// RepNameLT applies the LT predicate on the "rep_name" field.
func RepNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldRepName, v))
}

// RepNameLTE applies the LTE predicate on the "rep_name" field.
func RepNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldRepName, v))
}

// RepNameContains applies the Contains predicate on the "rep_name" field.
func RepNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldRepName, v))
}

// RepNameHasPrefix applies the HasPrefix predicate on the "rep_name" field.
func RepNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldRepName, v))
}

// RepNameHasSuffix applies the HasSuffix predicate on the "rep_name" field.
func RepNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldRepName, v))
}

// RepNameIsNil applies the IsNil predicate on the "rep_name" field.
func RepNameIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldRepName))
}

// RepNameNotNil applies the NotNil predicate on the "rep_name" field.
func RepNameNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldRepName))
}

// RepNameEqualFold applies the EqualFold predicate on the "rep_name" field.
func RepNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldRepName, v))
}

// RepNameContainsFold applies the ContainsFold predicate on the "rep_name" field.
func RepNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldRepName, v))
}

// OrderDateEQ applies the EQ predicate on the "order_date" field.
func OrderDateEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderDate, v))
}

// OrderDateNEQ applies the NEQ predicate on the "order_date" field.
func OrderDateNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderDate, v))
}

// OrderDateIn applies the In predicate on the "order_date" field.
func OrderDateIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderDate, vs...))
}

// OrderDateNotIn applies the NotIn predicate on the "order_date" field.
func OrderDateNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderDate, vs...))
}

// OrderDateGT applies the GT predicate on the "order_date" field.
func OrderDateGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderDate, v))
}

// OrderDateGTE applies the GTE predicate on the "order_date" field.
func OrderDateGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderDate, v))
}

// OrderDateLT applies the LT predicate on the "order_date" field.
func OrderDateLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderDate, v))
}

// OrderDateLTE applies the LTE predicate on the "order_date" field.
func OrderDateLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderDate, v))
}

// OrderDateContains applies the Contains predicate on the "order_date" field.
func OrderDateContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderDate, v))
}

// OrderDateHasPrefix applies the HasPrefix predicate on the "order_date" field.
func OrderDateHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderDate, v))
}

// OrderDateHasSuffix applies the HasSuffix predicate on the "order_date" field.
func OrderDateHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderDate, v))
}

// OrderDateIsNil applies the IsNil predicate on the "order_date" field.
func OrderDateIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldOrderDate))
}

// OrderDateNotNil applies the NotNil predicate on the "order_date" field.
func OrderDateNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldOrderDate))
}

// OrderDateEqualFold applies the EqualFold predicate on the "order_date" field.
func OrderDateEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderDate, v))
}

// OrderDateContainsFold applies the ContainsFold predicate on the "order_date" field.
func OrderDateContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderDate, v))
}

// TotalPiecesEQ applies the EQ predicate on the "total_pieces" field.
func TotalPiecesEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPieces, v))
}

// TotalPiecesNEQ applies the NEQ predicate on the "total_pieces" field.
func TotalPiecesNEQ(v int) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotalPieces, v))
}

// TotalPiecesIn applies the In predicate on the "total_pieces" field.
func TotalPiecesIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotalPieces, vs...))
}

// TotalPiecesNotIn applies the NotIn predicate on the "total_pieces" field.
func TotalPiecesNotIn(vs ...int) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotalPieces, vs...))
}

// TotalPiecesGT applies the GT predicate on the "total_pieces" field.
func TotalPiecesGT(v int) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotalPieces, v))
}

// TotalPiecesGTE applies the GTE predicate on the "total_pieces" field.
func TotalPiecesGTE(v int) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotalPieces, v))
}

// TotalPiecesLT applies the LT predicate on the "total_pieces" field.
func TotalPiecesLT(v int) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotalPieces, v))
}

// TotalPiecesLTE applies the LTE predicate on the "total_pieces" field.
func TotalPiecesLTE(v int) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotalPieces, v))
}

// ParseStatusEQ applies the EQ predicate on the "parse_status" field.
func ParseStatusEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParseStatus, v))
}

// ParseStatusNEQ applies the NEQ predicate on the "parse_status" field.
func ParseStatusNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldParseStatus, v))
}

// ParseStatusIn applies the In predicate on the "parse_status" field.
func ParseStatusIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldParseStatus, vs...))
}

// ParseStatusNotIn applies the NotIn predicate on the "parse_status" field.
func ParseStatusNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldParseStatus, vs...))
}

// ParseStatusGT applies the GT predicate on the "parse_status" field.
func ParseStatusGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldParseStatus, v))
}

// ParseStatusGTE applies the GTE predicate on the "parse_status" field.
func ParseStatusGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldParseStatus, v))
}

// ParseStatusLT applies the LT predicate on the "parse_status" field.
func ParseStatusLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldParseStatus, v))
}

// ParseStatusLTE applies the LTE predicate on the "parse_status" field.
func ParseStatusLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldParseStatus, v))
}

// ParseStatusContains applies the Contains predicate on the "parse_status" field.
func ParseStatusContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldParseStatus, v))
}

// ParseStatusHasPrefix applies the HasPrefix predicate on the "parse_status" field.
func ParseStatusHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldParseStatus, v))
}

// ParseStatusHasSuffix applies the HasSuffix predicate on the "parse_status" field.
func ParseStatusHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldParseStatus, v))
}

// ParseStatusEqualFold applies the EqualFold predicate on the "parse_status" field.
func ParseStatusEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldParseStatus, v))
}

// ParseStatusContainsFold applies the ContainsFold predicate on the "parse_status" field.
func ParseStatusContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldParseStatus, v))
}

// ValidationRateEQ applies the EQ predicate on the "validation_rate" field.
func ValidationRateEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldValidationRate, v))
}

// ValidationRateNEQ applies the NEQ predicate on the "validation_rate" field.
func ValidationRateNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldValidationRate, v))
}

// ValidationRateIn applies the In predicate on the "validation_rate" field.
func ValidationRateIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldValidationRate, vs...))
}

// ValidationRateNotIn applies the NotIn predicate on the "validation_rate" field.
func ValidationRateNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldValidationRate, vs...))
}

// ValidationRateGT applies the GT predicate on the "validation_rate" field.
func ValidationRateGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldValidationRate, v))
}

// ValidationRateGTE applies the GTE predicate on the "validation_rate" field.
func ValidationRateGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldValidationRate, v))
}

// ValidationRateLT applies the LT predicate on the "validation_rate" field.
func ValidationRateLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldValidationRate, v))
}

// ValidationRateLTE applies the LTE predicate on the "validation_rate" field.
func ValidationRateLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldValidationRate, v))
}

// ParsedAtEQ applies the EQ predicate on the "parsed_at" field.
func ParsedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldParsedAt, v))
}

// ParsedAtNEQ applies the NEQ predicate on the "parsed_at" field.
func ParsedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldParsedAt, v))
}

// ParsedAtIn applies the In predicate on the "parsed_at" field.
func ParsedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldParsedAt, vs...))
}

// ParsedAtNotIn applies the NotIn predicate on the "parsed_at" field.
func ParsedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldParsedAt, vs...))
}

// ParsedAtGT applies the GT predicate on the "parsed_at" field.
func ParsedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldParsedAt, v))
}

// ParsedAtGTE applies the GTE predicate on the "parsed_at" field.
func ParsedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldParsedAt, v))
}

// ParsedAtLT applies the LT predicate on the "parsed_at" field.
func ParsedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldParsedAt, v))
}

// ParsedAtLTE applies the LTE predicate on the "parsed_at" field.
func ParsedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldParsedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.OrderItem) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
