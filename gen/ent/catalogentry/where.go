// Code generated by ent, DO NOT EDIT.

package catalogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/framedesk/order-intake/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldID, id))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldVendorID, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldBrand, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldModel, v))
}

// ColorCode applies equality check predicate on the "color_code" field. It's identical to ColorCodeEQ.
func ColorCode(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldColorCode, v))
}

// ColorName applies equality check predicate on the "color_name" field. It's identical to ColorNameEQ.
func ColorName(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldColorName, v))
}

// Sku applies equality check predicate on the "sku" field. It's identical to SkuEQ.
func Sku(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldSku, v))
}

// Upc applies equality check predicate on the "upc" field. It's identical to UpcEQ.
func Upc(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUpc, v))
}

// Ean applies equality check predicate on the "ean" field. It's identical to EanEQ.
func Ean(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldEan, v))
}

// WholesaleCost applies equality check predicate on the "wholesale_cost" field. It's identical to WholesaleCostEQ.
func WholesaleCost(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldWholesaleCost, v))
}

// Msrp applies equality check predicate on the "msrp" field. It's identical to MsrpEQ.
func Msrp(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMsrp, v))
}

// EyeSize applies equality check predicate on the "eye_size" field. It's identical to EyeSizeEQ.
func EyeSize(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldEyeSize, v))
}

// Bridge applies equality check predicate on the "bridge" field. It's identical to BridgeEQ.
func Bridge(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldBridge, v))
}

// TempleLength applies equality check predicate on the "temple_length" field. It's identical to TempleLengthEQ.
func TempleLength(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldTempleLength, v))
}

// FullSize applies equality check predicate on the "full_size" field. It's identical to FullSizeEQ.
func FullSize(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldFullSize, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMaterial, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldGender, v))
}

// InStock applies equality check predicate on the "in_stock" field. It's identical to InStockEQ.
func InStock(v bool) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldInStock, v))
}

// AvailabilityStatus applies equality check predicate on the "availability_status" field. It's identical to AvailabilityStatusEQ.
func AvailabilityStatus(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldAvailabilityStatus, v))
}

// CrawledAt applies equality check predicate on the "crawled_at" field. It's identical to CrawledAtEQ.
func CrawledAt(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCrawledAt, v))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldVendorID, v))
}

// VendorIDContains applies the Contains predicate on the "vendor_id" field.
func VendorIDContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldVendorID, v))
}

// VendorIDHasPrefix applies the HasPrefix predicate on the "vendor_id" field.
func VendorIDHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldVendorID, v))
}

// VendorIDHasSuffix applies the HasSuffix predicate on the "vendor_id" field.
func VendorIDHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldVendorID, v))
}

// VendorIDEqualFold applies the EqualFold predicate on the "vendor_id" field.
func VendorIDEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldVendorID, v))
}

// VendorIDContainsFold applies the ContainsFold predicate on the "vendor_id" field.
func VendorIDContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldVendorID, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldBrand, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldModel, v))
}

// ColorCodeEQ applies the EQ predicate on the "color_code" field.
func ColorCodeEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldColorCode, v))
}

// ColorCodeNEQ applies the NEQ predicate on the "color_code" field.
func ColorCodeNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldColorCode, v))
}

// ColorCodeIn applies the In predicate on the "color_code" field.
func ColorCodeIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldColorCode, vs...))
}

// ColorCodeNotIn applies the NotIn predicate on the "color_code" field.
func ColorCodeNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldColorCode, vs...))
}

// ColorCodeGT applies the GT predicate on the "color_code" field.
func ColorCodeGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldColorCode, v))
}

// ColorCodeGTE applies the GTE predicate on the "color_code" field.
func ColorCodeGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldColorCode, v))
}

// ColorCodeLT applies the LT predicate on the "color_code" field.
func ColorCodeLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldColorCode, v))
}

// ColorCodeLTE applies the LTE predicate on the "color_code" field.
func ColorCodeLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldColorCode, v))
}

// ColorCodeContains applies the Contains predicate on the "color_code" field.
func ColorCodeContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldColorCode, v))
}

// ColorCodeHasPrefix applies the HasPrefix predicate on the "color_code" field.
func ColorCodeHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldColorCode, v))
}

// ColorCodeHasSuffix applies the HasSuffix predicate on the "color_code" field.
func ColorCodeHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldColorCode, v))
}

// ColorCodeEqualFold applies the EqualFold predicate on the "color_code" field.
func ColorCodeEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldColorCode, v))
}

// ColorCodeContainsFold applies the ContainsFold predicate on the "color_code" field.
func ColorCodeContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldColorCode, v))
}

// ColorNameEQ applies the EQ predicate on the "color_name" field.
func ColorNameEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldColorName, v))
}

// ColorNameNEQ applies the NEQ predicate on the "color_name" field.
func ColorNameNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldColorName, v))
}

// ColorNameIn applies the In predicate on the "color_name" field.
func ColorNameIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldColorName, vs...))
}

// ColorNameNotIn applies the NotIn predicate on the "color_name" field.
func ColorNameNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldColorName, vs...))
}

// ColorNameGT applies the GT predicate on the "color_name" field.
func ColorNameGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldColorName, v))
}

// ColorNameGTE applies the GTE predicate on the "color_name" field.
func ColorNameGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldColorName, v))
}

// ColorNameLT applies the LT predicate on the "color_name" field.
func ColorNameLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldColorName, v))
}

// ColorNameLTE applies the LTE predicate on the "color_name" field.
func ColorNameLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldColorName, v))
}

// ColorNameContains applies the Contains predicate on the "color_name" field.
func ColorNameContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldColorName, v))
}

// ColorNameHasPrefix applies the HasPrefix predicate on the "color_name" field.
func ColorNameHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldColorName, v))
}

// ColorNameHasSuffix applies the HasSuffix predicate on the "color_name" field.
func ColorNameHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldColorName, v))
}

// ColorNameIsNil applies the IsNil predicate on the "color_name" field.
func ColorNameIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldColorName))
}

// ColorNameNotNil applies the NotNil predicate on the "color_name" field.
func ColorNameNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldColorName))
}

// ColorNameEqualFold applies the EqualFold predicate on the "color_name" field.
func ColorNameEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldColorName, v))
}

// ColorNameContainsFold applies the ContainsFold predicate on the "color_name" field.
func ColorNameContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldColorName, v))
}

// SkuEQ applies the EQ predicate on the "sku" field.
func SkuEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldSku, v))
}

// SkuNEQ applies the NEQ predicate on the "sku" field.
func SkuNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldSku, v))
}

// SkuIn applies the In predicate on the "sku" field.
func SkuIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldSku, vs...))
}

// SkuNotIn applies the NotIn predicate on the "sku" field.
func SkuNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldSku, vs...))
}

// SkuGT applies the GT predicate on the "sku" field.
func SkuGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldSku, v))
}

// SkuGTE applies the GTE predicate on the "sku" field.
func SkuGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldSku, v))
}

// SkuLT applies the LT predicate on the "sku" field.
func SkuLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldSku, v))
}

// SkuLTE applies the LTE predicate on the "sku" field.
func SkuLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldSku, v))
}

// SkuContains applies the Contains predicate on the "sku" field.
func SkuContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldSku, v))
}

// SkuHasPrefix applies the HasPrefix predicate on the "sku" field.
func SkuHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldSku, v))
}

// SkuHasSuffix applies the HasSuffix predicate on the "sku" field.
func SkuHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldSku, v))
}

// SkuIsNil applies the IsNil predicate on the "sku" field.
func SkuIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldSku))
}

// SkuNotNil applies the NotNil predicate on the "sku" field.
func SkuNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldSku))
}

// SkuEqualFold applies the EqualFold predicate on the "sku" field.
func SkuEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldSku, v))
}

// SkuContainsFold applies the ContainsFold predicate on the "sku" field.
func SkuContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldSku, v))
}

// UpcEQ applies the EQ predicate on the "upc" field.
func UpcEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldUpc, v))
}

// UpcNEQ applies the NEQ predicate on the "upc" field.
func UpcNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldUpc, v))
}

// UpcIn applies the In predicate on the "upc" field.
func UpcIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldUpc, vs...))
}

// UpcNotIn applies the NotIn predicate on the "upc" field.
func UpcNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldUpc, vs...))
}

// UpcGT applies the GT predicate on the "upc" field.
func UpcGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldUpc, v))
}

// UpcGTE applies the GTE predicate on the "upc" field.
func UpcGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldUpc, v))
}

// UpcLT applies the LT predicate on the "upc" field.
func UpcLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldUpc, v))
}

// UpcLTE applies the LTE predicate on the "upc" field.
func UpcLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldUpc, v))
}

// UpcContains applies the Contains predicate on the "upc" field.
func UpcContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldUpc, v))
}

// UpcHasPrefix applies the HasPrefix predicate on the "upc" field.
func UpcHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldUpc, v))
}

// UpcHasSuffix applies the HasSuffix predicate on the "upc" field.
func UpcHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldUpc, v))
}

// UpcIsNil applies the IsNil predicate on the "upc" field.
func UpcIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldUpc))
}

// UpcNotNil applies the NotNil predicate on the "upc" field.
func UpcNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldUpc))
}

// UpcEqualFold applies the EqualFold predicate on the "upc" field.
func UpcEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldUpc, v))
}

// UpcContainsFold applies the ContainsFold predicate on the "upc" field.
func UpcContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldUpc, v))
}

// EanEQ applies the EQ predicate on the "ean" field.
func EanEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldEan, v))
}

// EanNEQ applies the NEQ predicate on the "ean" field.
func EanNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldEan, v))
}

// EanIn applies the In predicate on the "ean" field.
func EanIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldEan, vs...))
}

// EanNotIn applies the NotIn predicate on the "ean" field.
func EanNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldEan, vs...))
}

// EanGT applies the GT predicate on the "ean" field.
func EanGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldEan, v))
}

// EanGTE applies the GTE predicate on the "ean" field.
func EanGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldEan, v))
}

// EanLT applies the LT predicate on the "ean" field.
func EanLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldEan, v))
}

// EanLTE applies the LTE predicate on the "ean" field.
func EanLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldEan, v))
}

// EanContains applies the Contains predicate on the "ean" field.
func EanContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldEan, v))
}

// EanHasPrefix applies the HasPrefix predicate on the "ean" field.
func EanHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldEan, v))
}

// EanHasSuffix applies the HasSuffix predicate on the "ean" field.
func EanHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldEan, v))
}

// EanIsNil applies the IsNil predicate on the "ean" field.
func EanIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldEan))
}

// EanNotNil applies the NotNil predicate on the "ean" field.
func EanNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldEan))
}

// EanEqualFold applies the EqualFold predicate on the "ean" field.
func EanEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldEan, v))
}

// EanContainsFold applies the ContainsFold predicate on the "ean" field.
func EanContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldEan, v))
}

// WholesaleCostEQ applies the EQ predicate on the "wholesale_cost" field.
func WholesaleCostEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldWholesaleCost, v))
}

// WholesaleCostNEQ applies the NEQ predicate on the "wholesale_cost" field.
func WholesaleCostNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldWholesaleCost, v))
}

// WholesaleCostIn applies the In predicate on the "wholesale_cost" field.
func WholesaleCostIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldWholesaleCost, vs...))
}

// WholesaleCostNotIn applies the NotIn predicate on the "wholesale_cost" field.
func WholesaleCostNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldWholesaleCost, vs...))
}

// WholesaleCostGT applies the GT predicate on the "wholesale_cost" field.
func WholesaleCostGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldWholesaleCost, v))
}

// WholesaleCostGTE applies the GTE predicate on the "wholesale_cost" field.
func WholesaleCostGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldWholesaleCost, v))
}

// WholesaleCostLT applies the LT predicate on the "wholesale_cost" field.
func WholesaleCostLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldWholesaleCost, v))
}

// WholesaleCostLTE applies the LTE predicate on the "wholesale_cost" field.
func WholesaleCostLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldWholesaleCost, v))
}

// WholesaleCostIsNil applies the IsNil predicate on the "wholesale_cost" field.
func WholesaleCostIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldWholesaleCost))
}

// WholesaleCostNotNil applies the NotNil predicate on the "wholesale_cost" field.
func WholesaleCostNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldWholesaleCost))
}

// MsrpEQ applies the EQ predicate on the "msrp" field.
func MsrpEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMsrp, v))
}

// MsrpNEQ applies the NEQ predicate on the "msrp" field.
func MsrpNEQ(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldMsrp, v))
}

// MsrpIn applies the In predicate on the "msrp" field.
func MsrpIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldMsrp, vs...))
}

// MsrpNotIn applies the NotIn predicate on the "msrp" field.
func MsrpNotIn(vs ...float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldMsrp, vs...))
}

// MsrpGT applies the GT predicate on the "msrp" field.
func MsrpGT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldMsrp, v))
}

// MsrpGTE applies the GTE predicate on the "msrp" field.
func MsrpGTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldMsrp, v))
}

// MsrpLT applies the LT predicate on the "msrp" field.
func MsrpLT(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldMsrp, v))
}

// MsrpLTE applies the LTE predicate on the "msrp" field.
func MsrpLTE(v float64) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldMsrp, v))
}

// MsrpIsNil applies the IsNil predicate on the "msrp" field.
func MsrpIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldMsrp))
}

// MsrpNotNil applies the NotNil predicate on the "msrp" field.
func MsrpNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldMsrp))
}

// EyeSizeEQ applies the EQ predicate on the "eye_size" field.
func EyeSizeEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldEyeSize, v))
}

// EyeSizeNEQ applies the NEQ predicate on the "eye_size" field.
func EyeSizeNEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldEyeSize, v))
}

// EyeSizeIn applies the In predicate on the "eye_size" field.
func EyeSizeIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldEyeSize, vs...))
}

// EyeSizeNotIn applies the NotIn predicate on the "eye_size" field.
func EyeSizeNotIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldEyeSize, vs...))
}

// EyeSizeGT applies the GT predicate on the "eye_size" field.
func EyeSizeGT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldEyeSize, v))
}

// EyeSizeGTE applies the GTE predicate on the "eye_size" field.
func EyeSizeGTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldEyeSize, v))
}

// EyeSizeLT applies the LT predicate on the "eye_size" field.
func EyeSizeLT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldEyeSize, v))
}

// EyeSizeLTE applies the LTE predicate on the "eye_size" field.
func EyeSizeLTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldEyeSize, v))
}

// BridgeEQ applies the EQ predicate on the "bridge" field.
func BridgeEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldBridge, v))
}

// BridgeNEQ applies the NEQ predicate on the "bridge" field.
func BridgeNEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldBridge, v))
}

// BridgeIn applies the In predicate on the "bridge" field.
func BridgeIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldBridge, vs...))
}

// BridgeNotIn applies the NotIn predicate on the "bridge" field.
func BridgeNotIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldBridge, vs...))
}

// BridgeGT applies the GT predicate on the "bridge" field.
func BridgeGT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldBridge, v))
}

// BridgeGTE applies the GTE predicate on the "bridge" field.
func BridgeGTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldBridge, v))
}

// BridgeLT applies the LT predicate on the "bridge" field.
func BridgeLT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldBridge, v))
}

// BridgeLTE applies the LTE predicate on the "bridge" field.
func BridgeLTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldBridge, v))
}

// BridgeIsNil applies the IsNil predicate on the "bridge" field.
func BridgeIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldBridge))
}

// BridgeNotNil applies the NotNil predicate on the "bridge" field.
func BridgeNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldBridge))
}

// TempleLengthEQ applies the EQ predicate on the "temple_length" field.
func TempleLengthEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldTempleLength, v))
}

// TempleLengthNEQ applies the NEQ predicate on the "temple_length" field.
func TempleLengthNEQ(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldTempleLength, v))
}

// TempleLengthIn applies the In predicate on the "temple_length" field.
func TempleLengthIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldTempleLength, vs...))
}

// TempleLengthNotIn applies the NotIn predicate on the "temple_length" field.
func TempleLengthNotIn(vs ...int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldTempleLength, vs...))
}

// TempleLengthGT applies the GT predicate on the "temple_length" field.
func TempleLengthGT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldTempleLength, v))
}

// TempleLengthGTE applies the GTE predicate on the "temple_length" field.
func TempleLengthGTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldTempleLength, v))
}

// TempleLengthLT applies the LT predicate on the "temple_length" field.
func TempleLengthLT(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldTempleLength, v))
}

// TempleLengthLTE applies the LTE predicate on the "temple_length" field.
func TempleLengthLTE(v int) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldTempleLength, v))
}

// TempleLengthIsNil applies the IsNil predicate on the "temple_length" field.
func TempleLengthIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldTempleLength))
}

// TempleLengthNotNil applies the NotNil predicate on the "temple_length" field.
func TempleLengthNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldTempleLength))
}

// FullSizeEQ applies the EQ predicate on the "full_size" field.
func FullSizeEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldFullSize, v))
}

// FullSizeNEQ applies the NEQ predicate on the "full_size" field.
func FullSizeNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldFullSize, v))
}

// FullSizeIn applies the In predicate on the "full_size" field.
func FullSizeIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldFullSize, vs...))
}

// FullSizeNotIn applies the NotIn predicate on the "full_size" field.
func FullSizeNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldFullSize, vs...))
}

// FullSizeGT applies the GT predicate on the "full_size" field.
func FullSizeGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldFullSize, v))
}

// FullSizeGTE applies the GTE predicate on the "full_size" field.
func FullSizeGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldFullSize, v))
}

// FullSizeLT applies the LT predicate on the "full_size" field.
func FullSizeLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldFullSize, v))
}

// FullSizeLTE applies the LTE predicate on the "full_size" field.
func FullSizeLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldFullSize, v))
}

// FullSizeContains applies the Contains predicate on the "full_size" field.
func FullSizeContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldFullSize, v))
}

// FullSizeHasPrefix applies the HasPrefix predicate on the "full_size" field.
func FullSizeHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldFullSize, v))
}

// FullSizeHasSuffix applies the HasSuffix predicate on the "full_size" field.
func FullSizeHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldFullSize, v))
}

// FullSizeIsNil applies the IsNil predicate on the "full_size" field.
func FullSizeIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldFullSize))
}

// FullSizeNotNil applies the NotNil predicate on the "full_size" field.
func FullSizeNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldFullSize))
}

// FullSizeEqualFold applies the EqualFold predicate on the "full_size" field.
func FullSizeEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldFullSize, v))
}

// FullSizeContainsFold applies the ContainsFold predicate on the "full_size" field.
func FullSizeContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldFullSize, v))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialIsNil applies the IsNil predicate on the "material" field.
func MaterialIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldMaterial))
}

// MaterialNotNil applies the NotNil predicate on the "material" field.
func MaterialNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldMaterial))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldMaterial, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldGender, v))
}

// InStockEQ applies the EQ predicate on the "in_stock" field.
func InStockEQ(v bool) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldInStock, v))
}

// InStockNEQ applies the NEQ predicate on the "in_stock" field.
func InStockNEQ(v bool) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldInStock, v))
}

// AvailabilityStatusEQ applies the EQ predicate on the "availability_status" field.
func AvailabilityStatusEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldAvailabilityStatus, v))
}

// AvailabilityStatusNEQ applies the NEQ predicate on the "availability_status" field.
func AvailabilityStatusNEQ(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldAvailabilityStatus, v))
}

// AvailabilityStatusIn applies the In predicate on the "availability_status" field.
func AvailabilityStatusIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldAvailabilityStatus, vs...))
}

// AvailabilityStatusNotIn applies the NotIn predicate on the "availability_status" field.
func AvailabilityStatusNotIn(vs ...string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldAvailabilityStatus, vs...))
}

// AvailabilityStatusGT applies the GT predicate on the "availability_status" field.
func AvailabilityStatusGT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldAvailabilityStatus, v))
}

// AvailabilityStatusGTE applies the GTE predicate on the "availability_status" field.
func AvailabilityStatusGTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldAvailabilityStatus, v))
}

// AvailabilityStatusLT applies the LT predicate on the "availability_status" field.
func AvailabilityStatusLT(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldAvailabilityStatus, v))
}

// AvailabilityStatusLTE applies the LTE predicate on the "availability_status" field.
func AvailabilityStatusLTE(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldAvailabilityStatus, v))
}

// AvailabilityStatusContains applies the Contains predicate on the "availability_status" field.
func AvailabilityStatusContains(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContains(FieldAvailabilityStatus, v))
}

// AvailabilityStatusHasPrefix applies the HasPrefix predicate on the "availability_status" field.
func AvailabilityStatusHasPrefix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasPrefix(FieldAvailabilityStatus, v))
}

// AvailabilityStatusHasSuffix applies the HasSuffix predicate on the "availability_status" field.
func AvailabilityStatusHasSuffix(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldHasSuffix(FieldAvailabilityStatus, v))
}

// AvailabilityStatusIsNil applies the IsNil predicate on the "availability_status" field.
func AvailabilityStatusIsNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIsNull(FieldAvailabilityStatus))
}

// AvailabilityStatusNotNil applies the NotNil predicate on the "availability_status" field.
func AvailabilityStatusNotNil() predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotNull(FieldAvailabilityStatus))
}

// AvailabilityStatusEqualFold applies the EqualFold predicate on the "availability_status" field.
func AvailabilityStatusEqualFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEqualFold(FieldAvailabilityStatus, v))
}

// AvailabilityStatusContainsFold applies the ContainsFold predicate on the "availability_status" field.
func AvailabilityStatusContainsFold(v string) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldContainsFold(FieldAvailabilityStatus, v))
}

// CrawledAtEQ applies the EQ predicate on the "crawled_at" field.
func CrawledAtEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldEQ(FieldCrawledAt, v))
}

// CrawledAtNEQ applies the NEQ predicate on the "crawled_at" field.
func CrawledAtNEQ(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNEQ(FieldCrawledAt, v))
}

// CrawledAtIn applies the In predicate on the "crawled_at" field.
func CrawledAtIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldIn(FieldCrawledAt, vs...))
}

// CrawledAtNotIn applies the NotIn predicate on the "crawled_at" field.
func CrawledAtNotIn(vs ...time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldNotIn(FieldCrawledAt, vs...))
}

// CrawledAtGT applies the GT predicate on the "crawled_at" field.
func CrawledAtGT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGT(FieldCrawledAt, v))
}

// CrawledAtGTE applies the GTE predicate on the "crawled_at" field.
func CrawledAtGTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldGTE(FieldCrawledAt, v))
}

// CrawledAtLT applies the LT predicate on the "crawled_at" field.
func CrawledAtLT(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLT(FieldCrawledAt, v))
}

// CrawledAtLTE applies the LTE predicate on the "crawled_at" field.
func CrawledAtLTE(v time.Time) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.FieldLTE(FieldCrawledAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CatalogEntry) predicate.CatalogEntry {
	return predicate.CatalogEntry(sql.NotPredicates(p))
}
