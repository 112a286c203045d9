// Code generated by ent, DO NOT EDIT.

package orderitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/framedesk/order-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldID, id))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldSku, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldBrand, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldModel, v))
}

// ColorCode applies equality check predicate on the "color_code" field. It's identical to ColorCodeEQ.
func ColorCode(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldColorCode, v))
}

// ColorName applies equality check predicate on the "color_name" field. It's identical to ColorNameEQ.
func ColorName(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldColorName, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldSize, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// OrderType applies equality check predicate on the "order_type" field. It's identical to OrderTypeEQ.
func OrderType(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderType, v))
}

// Upc applies equality check predicate on the "upc" field. It's identical to UpcEQ.
func Upc(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldUpc, v))
}

// WholesaleCost applies equality check predicate on the "wholesale_cost" field. It's identical to WholesaleCostEQ.
func WholesaleCost(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldWholesaleCost, v))
}

// Msrp applies equality check predicate on the "msrp" field. It's identical to MsrpEQ.
func Msrp(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMsrp, v))
}

// APIVerified applies equality check predicate on the "api_verified" field. It's identical to APIVerifiedEQ.
func APIVerified(v bool) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldAPIVerified, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldConfidenceScore, v))
}

// ValidationReason applies equality check predicate on the "validation_reason" field. It's identical to ValidationReasonEQ.
func ValidationReason(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldValidationReason, v))
}

// AvailabilityStatus applies equality check predicate on the "availability_status" field. It's identical to AvailabilityStatusEQ.
func AvailabilityStatus(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldAvailabilityStatus, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldOrderID, vs...))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldSku, v))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldSku, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandIsNil applies the IsNil predicate on the "brand" field.
func BrandIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldBrand))
}

// BrandNotNil applies the NotNil predicate on the "brand" field.
func BrandNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldBrand))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldBrand, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldModel, v))
}

// ColorCodeEQ applies the EQ predicate on the "color_code" field.
func ColorCodeEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldColorCode, v))
}

// ColorCodeNEQ applies the NEQ predicate on the "color_code" field.
func ColorCodeNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldColorCode, v))
}

// ColorCodeIn applies the In predicate on the "color_code" field.
func ColorCodeIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldColorCode, vs...))
}

// ColorCodeNotIn applies the NotIn predicate on the "color_code" field.
func ColorCodeNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldColorCode, vs...))
}

// ColorCodeGT applies the GT predicate on the "color_code" field.
func ColorCodeGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldColorCode, v))
}

// ColorCodeGTE applies the GTE predicate on the "color_code" field.
func ColorCodeGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldColorCode, v))
}

// ColorCodeLT applies the LT predicate on the "color_code" field.
func ColorCodeLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldColorCode, v))
}

// ColorCodeLTE applies the LTE predicate on the "color_code" field.
func ColorCodeLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldColorCode, v))
}

// ColorCodeContains applies the Contains predicate on the "color_code" field.
func ColorCodeContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldColorCode, v))
}

// ColorCodeHasPrefix applies the HasPrefix predicate on the "color_code" field.
func ColorCodeHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldColorCode, v))
}

// ColorCodeHasSuffix applies the HasSuffix predicate on the "color_code" field.
func ColorCodeHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldColorCode, v))
}

// ColorCodeIsNil applies the IsNil predicate on the "color_code" field.
func ColorCodeIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldColorCode))
}

// ColorCodeNotNil applies the NotNil predicate on the "color_code" field.
func ColorCodeNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldColorCode))
}

// ColorCodeEqualFold applies the EqualFold predicate on the "color_code" field.
func ColorCodeEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldColorCode, v))
}

// ColorCodeContainsFold applies the ContainsFold predicate on the "color_code" field.
func ColorCodeContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldColorCode, v))
}

// ColorNameEQ applies the EQ predicate on the "color_name" field.
func ColorNameEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldColorName, v))
}

// ColorNameNEQ applies the NEQ predicate on the "color_name" field.
func ColorNameNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldColorName, v))
}

// ColorNameIn applies the In predicate on the "color_name" field.
func ColorNameIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldColorName, vs...))
}

// ColorNameNotIn applies the NotIn predicate on the "color_name" field.
func ColorNameNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldColorName, vs...))
}

// ColorNameGT applies the GT predicate on the "color_name" field.
func ColorNameGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldColorName, v))
}

// ColorNameGTE applies the GTE predicate on the "color_name" field.
func ColorNameGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldColorName, v))
}

// ColorNameLT applies the LT predicate on the "color_name" field.
func ColorNameLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldColorName, v))
}

// ColorNameLTE applies the LTE predicate on the "color_name" field.
func ColorNameLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldColorName, v))
}

// ColorNameContains applies the Contains predicate on the "color_name" field.
func ColorNameContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldColorName, v))
}

// ColorNameHasPrefix applies the HasPrefix predicate on the "color_name" field.
func ColorNameHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldColorName, v))
}

// ColorNameHasSuffix applies the HasSuffix predicate on the "color_name" field.
func ColorNameHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldColorName, v))
}

// ColorNameIsNil applies the IsNil predicate on the "color_name" field.
func ColorNameIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldColorName))
}

// ColorNameNotNil applies the NotNil predicate on the "color_name" field.
func ColorNameNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldColorName))
}

// ColorNameEqualFold applies the EqualFold predicate on the "color_name" field.
func ColorNameEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldColorName, v))
}

// ColorNameContainsFold applies the ContainsFold predicate on the "color_name" field.
func ColorNameContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldColorName, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldSize, v))
}

// SizeContains applies the Contains predicate on the "size" field.
func SizeContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldSize, v))
}

// SizeHasPrefix applies the HasPrefix predicate on the "size" field.
func SizeHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldSize, v))
}

// SizeHasSuffix applies the HasSuffix predicate on the "size" field.
func SizeHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldSize, v))
}

// SizeIsNil applies the IsNil predicate on the "size" field.
func SizeIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldSize))
}

// SizeNotNil applies the NotNil predicate on the "size" field.
func SizeNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldSize))
}

// SizeEqualFold applies the EqualFold predicate on the "size" field.
func SizeEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldSize, v))
}

// SizeContainsFold applies the ContainsFold predicate on the "size" field.
func SizeContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldSize, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldQuantity, v))
}

// OrderTypeEQ applies the EQ predicate on the "order_type" field.
func OrderTypeEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldOrderType, v))
}

// OrderTypeNEQ applies the NEQ predicate on the "order_type" field.
func OrderTypeNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldOrderType, v))
}

// OrderTypeIn applies the In predicate on the "order_type" field.
func OrderTypeIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldOrderType, vs...))
}

// OrderTypeNotIn applies the NotIn predicate on the "order_type" field.
func OrderTypeNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldOrderType, vs...))
}

// OrderTypeGT applies the GT predicate on the "order_type" field.
func OrderTypeGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldOrderType, v))
}

// OrderTypeGTE applies the GTE predicate on the "order_type" field.
func OrderTypeGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldOrderType, v))
}

// OrderTypeLT applies the LT predicate on the "order_type" field.
func OrderTypeLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldOrderType, v))
}

// OrderTypeLTE applies the LTE predicate on the "order_type" field.
func OrderTypeLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldOrderType, v))
}

// OrderTypeContains applies the Contains predicate on the "order_type" field.
func OrderTypeContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldOrderType, v))
}

// OrderTypeHasPrefix applies the HasPrefix predicate on the "order_type" field.
func OrderTypeHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldOrderType, v))
}

// OrderTypeHasSuffix applies the HasSuffix predicate on the "order_type" field.
func OrderTypeHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldOrderType, v))
}

// OrderTypeIsNil applies the IsNil predicate on the "order_type" field.
func OrderTypeIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldOrderType))
}

// OrderTypeNotNil applies the NotNil predicate on the "order_type" field.
func OrderTypeNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldOrderType))
}

// OrderTypeEqualFold applies the EqualFold predicate on the "order_type" field.
func OrderTypeEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldOrderType, v))
}

// OrderTypeContainsFold applies the ContainsFold predicate on the "order_type" field.
func OrderTypeContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldOrderType, v))
}

// UpcEQ applies the EQ predicate on the "upc" field.
func UpcEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldUpc, v))
}

// UpcNEQ applies the NEQ predicate on the "upc" field.
func UpcNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldUpc, v))
}

// UpcIn applies the In predicate on the "upc" field.
func UpcIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldUpc, vs...))
}

// UpcNotIn applies the NotIn predicate on the "upc" field.
func UpcNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldUpc, vs...))
}

// UpcGT applies the GT predicate on the "upc" field.
func UpcGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldUpc, v))
}

// UpcGTE applies the GTE predicate on the "upc" field.
func UpcGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldUpc, v))
}

// UpcLT applies the LT predicate on the "upc" field.
func UpcLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldUpc, v))
}

// UpcLTE applies the LTE predicate on the "upc" field.
func UpcLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldUpc, v))
}

// UpcContains applies the Contains predicate on the "upc" field.
func UpcContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldUpc, v))
}

// UpcHasPrefix applies the HasPrefix predicate on the "upc" field.
func UpcHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldUpc, v))
}

// UpcHasSuffix applies the HasSuffix predicate on the "upc" field.
func UpcHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldUpc, v))
}

// UpcIsNil applies the IsNil predicate on the "upc" field.
func UpcIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldUpc))
}

// UpcNotNil applies the NotNil predicate on the "upc" field.
func UpcNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldUpc))
}

// UpcEqualFold applies the EqualFold predicate on the "upc" field.
func UpcEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldUpc, v))
}

// UpcContainsFold applies the ContainsFold predicate on the "upc" field.
func UpcContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldUpc, v))
}

// WholesaleCostEQ applies the EQ predicate on the "wholesale_cost" field.
func WholesaleCostEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldWholesaleCost, v))
}

// WholesaleCostNEQ applies the NEQ predicate on the "wholesale_cost" field.
func WholesaleCostNEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldWholesaleCost, v))
}

// WholesaleCostIn applies the In predicate on the "wholesale_cost" field.
func WholesaleCostIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldWholesaleCost, vs...))
}

// WholesaleCostNotIn applies the NotIn predicate on the "wholesale_cost" field.
func WholesaleCostNotIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldWholesaleCost, vs...))
}

// WholesaleCostGT applies the GT predicate on the "wholesale_cost" field.
func WholesaleCostGT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldWholesaleCost, v))
}

// WholesaleCostGTE applies the GTE predicate on the "wholesale_cost" field.
func WholesaleCostGTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldWholesaleCost, v))
}

// WholesaleCostLT applies the LT predicate on the "wholesale_cost" field.
func WholesaleCostLT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldWholesaleCost, v))
}

// WholesaleCostLTE applies the LTE predicate on the "wholesale_cost" field.
func WholesaleCostLTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldWholesaleCost, v))
}

// WholesaleCostIsNil applies the IsNil predicate on the "wholesale_cost" field.
func WholesaleCostIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldWholesaleCost))
}

// WholesaleCostNotNil applies the NotNil predicate on the "wholesale_cost" field.
func WholesaleCostNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldWholesaleCost))
}

// MsrpEQ applies the EQ predicate on the "msrp" field.
func MsrpEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldMsrp, v))
}

// MsrpNEQ applies the NEQ predicate on the "msrp" field.
func MsrpNEQ(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldMsrp, v))
}

// MsrpIn applies the In predicate on the "msrp" field.
func MsrpIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldMsrp, vs...))
}

// MsrpNotIn applies the NotIn predicate on the "msrp" field.
func MsrpNotIn(vs ...float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldMsrp, vs...))
}

// MsrpGT applies the GT predicate on the "msrp" field.
func MsrpGT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldMsrp, v))
}

// MsrpGTE applies the GTE predicate on the "msrp" field.
func MsrpGTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldMsrp, v))
}

// MsrpLT applies the LT predicate on the "msrp" field.
func MsrpLT(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldMsrp, v))
}

// MsrpLTE applies the LTE predicate on the "msrp" field.
func MsrpLTE(v float64) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldMsrp, v))
}

// MsrpIsNil applies the IsNil predicate on the "msrp" field.
func MsrpIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldMsrp))
}

// MsrpNotNil applies the NotNil predicate on the "msrp" field.
func MsrpNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldMsrp))
}

// APIVerifiedEQ applies the EQ predicate on the "api_verified" field.
func APIVerifiedEQ(v bool) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldAPIVerified, v))
}

// APIVerifiedNEQ applies the NEQ predicate on the "api_verified" field.
func APIVerifiedNEQ(v bool) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldAPIVerified, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldConfidenceScore, v))
}

// ValidationReasonEQ applies the EQ predicate on the "validation_reason" field.
func ValidationReasonEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldValidationReason, v))
}

// ValidationReasonNEQ applies the NEQ predicate on the "validation_reason" field.
func ValidationReasonNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldValidationReason, v))
}

// ValidationReasonIn applies the In predicate on the "validation_reason" field.
func ValidationReasonIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldValidationReason, vs...))
}

// ValidationReasonNotIn applies the NotIn predicate on the "validation_reason" field.
func ValidationReasonNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldValidationReason, vs...))
}

// ValidationReasonGT applies the GT predicate on the "validation_reason" field.
func ValidationReasonGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldValidationReason, v))
}

// ValidationReasonGTE applies the GTE predicate on the "validation_reason" field.
func ValidationReasonGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldValidationReason, v))
}

// ValidationReasonLT applies the LT predicate on the "validation_reason" field.
func ValidationReasonLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldValidationReason, v))
}

// ValidationReasonLTE applies the LTE predicate on the "validation_reason" field.
func ValidationReasonLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldValidationReason, v))
}

// ValidationReasonContains applies the Contains predicate on the "validation_reason" field.
func ValidationReasonContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldValidationReason, v))
}

// ValidationReasonHasPrefix applies the HasPrefix predicate on the "validation_reason" field.
func ValidationReasonHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldValidationReason, v))
}

// ValidationReasonHasSuffix applies the HasSuffix predicate on the "validation_reason" field.
func ValidationReasonHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldValidationReason, v))
}

// ValidationReasonIsNil applies the IsNil predicate on the "validation_reason" field.
func ValidationReasonIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldValidationReason))
}

// ValidationReasonNotNil applies the NotNil predicate on the "validation_reason" field.
func ValidationReasonNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldValidationReason))
}

// ValidationReasonEqualFold applies the EqualFold predicate on the "validation_reason" field.
func ValidationReasonEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldValidationReason, v))
}

// ValidationReasonContainsFold applies the ContainsFold predicate on the "validation_reason" field.
func ValidationReasonContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldValidationReason, v))
}

// AvailabilityStatusEQ applies the EQ predicate on the "availability_status" field.
func AvailabilityStatusEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEQ(FieldAvailabilityStatus, v))
}

// AvailabilityStatusNEQ applies the NEQ predicate on the "availability_status" field.
func AvailabilityStatusNEQ(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNEQ(FieldAvailabilityStatus, v))
}

// AvailabilityStatusIn applies the In predicate on the "availability_status" field.
func AvailabilityStatusIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIn(FieldAvailabilityStatus, vs...))
}

// AvailabilityStatusNotIn applies the NotIn predicate on the "availability_status" field.
func AvailabilityStatusNotIn(vs ...string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotIn(FieldAvailabilityStatus, vs...))
}

// AvailabilityStatusGT applies the GT predicate on the "availability_status" field.
func AvailabilityStatusGT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGT(FieldAvailabilityStatus, v))
}

// AvailabilityStatusGTE applies the GTE predicate on the "availability_status" field.
func AvailabilityStatusGTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldGTE(FieldAvailabilityStatus, v))
}

// AvailabilityStatusLT applies the LT predicate on the "availability_status" field.
func AvailabilityStatusLT(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLT(FieldAvailabilityStatus, v))
}

// AvailabilityStatusLTE applies the LTE predicate on the "availability_status" field.
func AvailabilityStatusLTE(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldLTE(FieldAvailabilityStatus, v))
}

// AvailabilityStatusContains applies the Contains predicate on the "availability_status" field.
func AvailabilityStatusContains(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContains(FieldAvailabilityStatus, v))
}

// AvailabilityStatusHasPrefix applies the HasPrefix predicate on the "availability_status" field.
func AvailabilityStatusHasPrefix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasPrefix(FieldAvailabilityStatus, v))
}

// AvailabilityStatusHasSuffix applies the HasSuffix predicate on the "availability_status" field.
func AvailabilityStatusHasSuffix(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldHasSuffix(FieldAvailabilityStatus, v))
}

// AvailabilityStatusIsNil applies the IsNil predicate on the "availability_status" field.
func AvailabilityStatusIsNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldIsNull(FieldAvailabilityStatus))
}

// AvailabilityStatusNotNil applies the NotNil predicate on the "availability_status" field.
func AvailabilityStatusNotNil() predicate.OrderItem {
	return predicate.OrderItem(sql.FieldNotNull(FieldAvailabilityStatus))
}

// AvailabilityStatusEqualFold applies the EqualFold predicate on the "availability_status" field.
func AvailabilityStatusEqualFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldEqualFold(FieldAvailabilityStatus, v))
}

// AvailabilityStatusContainsFold applies the ContainsFold predicate on the "availability_status" field.
func AvailabilityStatusContainsFold(v string) predicate.OrderItem {
	return predicate.OrderItem(sql.FieldContainsFold(FieldAvailabilityStatus, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.OrderItem {
	return predicate.OrderItem(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderItem) predicate.OrderItem {
	return predicate.OrderItem(sql.NotPredicates(p))
}
