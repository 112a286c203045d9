// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/framedesk/order-intake/gen/ent/catalogentry"
	"github.com/framedesk/order-intake/gen/ent/predicate"
)

// CatalogEntryUpdate is the builder for updating CatalogEntry entities.
type CatalogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (_u *CatalogEntryUpdate) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *CatalogEntryUpdate) SetVendorID(v string) *CatalogEntryUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableVendorID(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *CatalogEntryUpdate) SetBrand(v string) *CatalogEntryUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableBrand(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CatalogEntryUpdate) SetModel(v string) *CatalogEntryUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableModel(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *CatalogEntryUpdate) SetColorCode(v string) *CatalogEntryUpdate {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableColorCode(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *CatalogEntryUpdate) SetColorName(v string) *CatalogEntryUpdate {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableColorName(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// ClearColorName clears the value of the "color_name" field.
func (_u *CatalogEntryUpdate) ClearColorName() *CatalogEntryUpdate {
	_u.mutation.ClearColorName()
	return _u
}

// SetSku sets the "sku" field.
func (_u *CatalogEntryUpdate) SetSku(v string) *CatalogEntryUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableSku(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *CatalogEntryUpdate) ClearSku() *CatalogEntryUpdate {
	_u.mutation.ClearSku()
	return _u
}

// SetUpc sets the "upc" field.
func (_u *CatalogEntryUpdate) SetUpc(v string) *CatalogEntryUpdate {
	_u.mutation.SetUpc(v)
	return _u
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableUpc(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetUpc(*v)
	}
	return _u
}

// ClearUpc clears the value of the "upc" field.
func (_u *CatalogEntryUpdate) ClearUpc() *CatalogEntryUpdate {
	_u.mutation.ClearUpc()
	return _u
}

// SetEan sets the "ean" field.
func (_u *CatalogEntryUpdate) SetEan(v string) *CatalogEntryUpdate {
	_u.mutation.SetEan(v)
	return _u
}

// SetNillableEan sets the "ean" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableEan(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetEan(*v)
	}
	return _u
}

// ClearEan clears the value of the "ean" field.
func (_u *CatalogEntryUpdate) ClearEan() *CatalogEntryUpdate {
	_u.mutation.ClearEan()
	return _u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_u *CatalogEntryUpdate) SetWholesaleCost(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetWholesaleCost()
	_u.mutation.SetWholesaleCost(v)
	return _u
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableWholesaleCost(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetWholesaleCost(*v)
	}
	return _u
}

// AddWholesaleCost adds value to the "wholesale_cost" field.
func (_u *CatalogEntryUpdate) AddWholesaleCost(v float64) *CatalogEntryUpdate {
	_u.mutation.AddWholesaleCost(v)
	return _u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (_u *CatalogEntryUpdate) ClearWholesaleCost() *CatalogEntryUpdate {
	_u.mutation.ClearWholesaleCost()
	return _u
}

// SetMsrp sets the "msrp" field.
func (_u *CatalogEntryUpdate) SetMsrp(v float64) *CatalogEntryUpdate {
	_u.mutation.ResetMsrp()
	_u.mutation.SetMsrp(v)
	return _u
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableMsrp(v *float64) *CatalogEntryUpdate {
	if v != nil {
		_u.SetMsrp(*v)
	}
	return _u
}

// AddMsrp adds value to the "msrp" field.
func (_u *CatalogEntryUpdate) AddMsrp(v float64) *CatalogEntryUpdate {
	_u.mutation.AddMsrp(v)
	return _u
}

// ClearMsrp clears the value of the "msrp" field.
func (_u *CatalogEntryUpdate) ClearMsrp() *CatalogEntryUpdate {
	_u.mutation.ClearMsrp()
	return _u
}

// SetEyeSize sets the "eye_size" field.
func (_u *CatalogEntryUpdate) SetEyeSize(v int) *CatalogEntryUpdate {
	_u.mutation.ResetEyeSize()
	_u.mutation.SetEyeSize(v)
	return _u
}

// SetNillableEyeSize sets the "eye_size" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableEyeSize(v *int) *CatalogEntryUpdate {
	if v != nil {
		_u.SetEyeSize(*v)
	}
	return _u
}

// AddEyeSize adds value to the "eye_size" field.
func (_u *CatalogEntryUpdate) AddEyeSize(v int) *CatalogEntryUpdate {
	_u.mutation.AddEyeSize(v)
	return _u
}

// SetBridge sets the "bridge" field.
func (_u *CatalogEntryUpdate) SetBridge(v int) *CatalogEntryUpdate {
	_u.mutation.ResetBridge()
	_u.mutation.SetBridge(v)
	return _u
}

// SetNillableBridge sets the "bridge" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableBridge(v *int) *CatalogEntryUpdate {
	if v != nil {
		_u.SetBridge(*v)
	}
	return _u
}

// AddBridge adds value to the "bridge" field.
func (_u *CatalogEntryUpdate) AddBridge(v int) *CatalogEntryUpdate {
	_u.mutation.AddBridge(v)
	return _u
}

// ClearBridge clears the value of the "bridge" field.
func (_u *CatalogEntryUpdate) ClearBridge() *CatalogEntryUpdate {
	_u.mutation.ClearBridge()
	return _u
}

// SetTempleLength sets the "temple_length" field.
func (_u *CatalogEntryUpdate) SetTempleLength(v int) *CatalogEntryUpdate {
	_u.mutation.ResetTempleLength()
	_u.mutation.SetTempleLength(v)
	return _u
}

// SetNillableTempleLength sets the "temple_length" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableTempleLength(v *int) *CatalogEntryUpdate {
	if v != nil {
		_u.SetTempleLength(*v)
	}
	return _u
}

// AddTempleLength adds value to the "temple_length" field.
func (_u *CatalogEntryUpdate) AddTempleLength(v int) *CatalogEntryUpdate {
	_u.mutation.AddTempleLength(v)
	return _u
}

// ClearTempleLength clears the value of the "temple_length" field.
func (_u *CatalogEntryUpdate) ClearTempleLength() *CatalogEntryUpdate {
	_u.mutation.ClearTempleLength()
	return _u
}

// SetFullSize sets the "full_size" field.
func (_u *CatalogEntryUpdate) SetFullSize(v string) *CatalogEntryUpdate {
	_u.mutation.SetFullSize(v)
	return _u
}

// SetNillableFullSize sets the "full_size" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableFullSize(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetFullSize(*v)
	}
	return _u
}

// ClearFullSize clears the value of the "full_size" field.
func (_u *CatalogEntryUpdate) ClearFullSize() *CatalogEntryUpdate {
	_u.mutation.ClearFullSize()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *CatalogEntryUpdate) SetMaterial(v string) *CatalogEntryUpdate {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableMaterial(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *CatalogEntryUpdate) ClearMaterial() *CatalogEntryUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// SetGender sets the "gender" field.
func (_u *CatalogEntryUpdate) SetGender(v string) *CatalogEntryUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableGender(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *CatalogEntryUpdate) ClearGender() *CatalogEntryUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetInStock sets the "in_stock" field.
func (_u *CatalogEntryUpdate) SetInStock(v bool) *CatalogEntryUpdate {
	_u.mutation.SetInStock(v)
	return _u
}

// SetNillableInStock sets the "in_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableInStock(v *bool) *CatalogEntryUpdate {
	if v != nil {
		_u.SetInStock(*v)
	}
	return _u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_u *CatalogEntryUpdate) SetAvailabilityStatus(v string) *CatalogEntryUpdate {
	_u.mutation.SetAvailabilityStatus(v)
	return _u
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_u *CatalogEntryUpdate) SetNillableAvailabilityStatus(v *string) *CatalogEntryUpdate {
	if v != nil {
		_u.SetAvailabilityStatus(*v)
	}
	return _u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (_u *CatalogEntryUpdate) ClearAvailabilityStatus() *CatalogEntryUpdate {
	_u.mutation.ClearAvailabilityStatus()
	return _u
}

// SetCrawledAt sets the "crawled_at" field.
func (_u *CatalogEntryUpdate) SetCrawledAt(v time.Time) *CatalogEntryUpdate {
	_u.mutation.SetCrawledAt(v)
	return _u
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_u *CatalogEntryUpdate) Mutation() *CatalogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CatalogEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CatalogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogEntryUpdate) defaults() {
	if _, ok := _u.mutation.CrawledAt(); !ok {
		v := catalogentry.UpdateDefaultCrawledAt()
		_u.mutation.SetCrawledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogEntryUpdate) check() error {
	if v, ok := _u.mutation.VendorID(); ok {
		if err := catalogentry.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.vendor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := catalogentry.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := catalogentry.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorCode(); ok {
		if err := catalogentry.ColorCodeValidator(v); err != nil {
			return &ValidationError{Name: "color_code", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.color_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EyeSize(); ok {
		if err := catalogentry.EyeSizeValidator(v); err != nil {
			return &ValidationError{Name: "eye_size", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.eye_size": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(catalogentry.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(catalogentry.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(catalogentry.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(catalogentry.FieldColorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(catalogentry.FieldColorName, field.TypeString, value)
	}
	if _u.mutation.ColorNameCleared() {
		_spec.ClearField(catalogentry.FieldColorName, field.TypeString)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(catalogentry.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(catalogentry.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Upc(); ok {
		_spec.SetField(catalogentry.FieldUpc, field.TypeString, value)
	}
	if _u.mutation.UpcCleared() {
		_spec.ClearField(catalogentry.FieldUpc, field.TypeString)
	}
	if value, ok := _u.mutation.Ean(); ok {
		_spec.SetField(catalogentry.FieldEan, field.TypeString, value)
	}
	if _u.mutation.EanCleared() {
		_spec.ClearField(catalogentry.FieldEan, field.TypeString)
	}
	if value, ok := _u.mutation.WholesaleCost(); ok {
		_spec.SetField(catalogentry.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWholesaleCost(); ok {
		_spec.AddField(catalogentry.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if _u.mutation.WholesaleCostCleared() {
		_spec.ClearField(catalogentry.FieldWholesaleCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Msrp(); ok {
		_spec.SetField(catalogentry.FieldMsrp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMsrp(); ok {
		_spec.AddField(catalogentry.FieldMsrp, field.TypeFloat64, value)
	}
	if _u.mutation.MsrpCleared() {
		_spec.ClearField(catalogentry.FieldMsrp, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EyeSize(); ok {
		_spec.SetField(catalogentry.FieldEyeSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEyeSize(); ok {
		_spec.AddField(catalogentry.FieldEyeSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bridge(); ok {
		_spec.SetField(catalogentry.FieldBridge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBridge(); ok {
		_spec.AddField(catalogentry.FieldBridge, field.TypeInt, value)
	}
	if _u.mutation.BridgeCleared() {
		_spec.ClearField(catalogentry.FieldBridge, field.TypeInt)
	}
	if value, ok := _u.mutation.TempleLength(); ok {
		_spec.SetField(catalogentry.FieldTempleLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTempleLength(); ok {
		_spec.AddField(catalogentry.FieldTempleLength, field.TypeInt, value)
	}
	if _u.mutation.TempleLengthCleared() {
		_spec.ClearField(catalogentry.FieldTempleLength, field.TypeInt)
	}
	if value, ok := _u.mutation.FullSize(); ok {
		_spec.SetField(catalogentry.FieldFullSize, field.TypeString, value)
	}
	if _u.mutation.FullSizeCleared() {
		_spec.ClearField(catalogentry.FieldFullSize, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(catalogentry.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(catalogentry.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(catalogentry.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(catalogentry.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.InStock(); ok {
		_spec.SetField(catalogentry.FieldInStock, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailabilityStatus(); ok {
		_spec.SetField(catalogentry.FieldAvailabilityStatus, field.TypeString, value)
	}
	if _u.mutation.AvailabilityStatusCleared() {
		_spec.ClearField(catalogentry.FieldAvailabilityStatus, field.TypeString)
	}
	if value, ok := _u.mutation.CrawledAt(); ok {
		_spec.SetField(catalogentry.FieldCrawledAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CatalogEntryUpdateOne is the builder for updating a single CatalogEntry entity.
type CatalogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CatalogEntryMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *CatalogEntryUpdateOne) SetVendorID(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableVendorID(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *CatalogEntryUpdateOne) SetBrand(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableBrand(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *CatalogEntryUpdateOne) SetModel(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableModel(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *CatalogEntryUpdateOne) SetColorCode(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableColorCode(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *CatalogEntryUpdateOne) SetColorName(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableColorName(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// ClearColorName clears the value of the "color_name" field.
func (_u *CatalogEntryUpdateOne) ClearColorName() *CatalogEntryUpdateOne {
	_u.mutation.ClearColorName()
	return _u
}

// SetSku sets the "sku" field.
func (_u *CatalogEntryUpdateOne) SetSku(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableSku(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *CatalogEntryUpdateOne) ClearSku() *CatalogEntryUpdateOne {
	_u.mutation.ClearSku()
	return _u
}

// SetUpc sets the "upc" field.
func (_u *CatalogEntryUpdateOne) SetUpc(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetUpc(v)
	return _u
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableUpc(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetUpc(*v)
	}
	return _u
}

// ClearUpc clears the value of the "upc" field.
func (_u *CatalogEntryUpdateOne) ClearUpc() *CatalogEntryUpdateOne {
	_u.mutation.ClearUpc()
	return _u
}

// SetEan sets the "ean" field.
func (_u *CatalogEntryUpdateOne) SetEan(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetEan(v)
	return _u
}

// SetNillableEan sets the "ean" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableEan(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetEan(*v)
	}
	return _u
}

// ClearEan clears the value of the "ean" field.
func (_u *CatalogEntryUpdateOne) ClearEan() *CatalogEntryUpdateOne {
	_u.mutation.ClearEan()
	return _u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_u *CatalogEntryUpdateOne) SetWholesaleCost(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetWholesaleCost()
	_u.mutation.SetWholesaleCost(v)
	return _u
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableWholesaleCost(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetWholesaleCost(*v)
	}
	return _u
}

// AddWholesaleCost adds value to the "wholesale_cost" field.
func (_u *CatalogEntryUpdateOne) AddWholesaleCost(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddWholesaleCost(v)
	return _u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (_u *CatalogEntryUpdateOne) ClearWholesaleCost() *CatalogEntryUpdateOne {
	_u.mutation.ClearWholesaleCost()
	return _u
}

// SetMsrp sets the "msrp" field.
func (_u *CatalogEntryUpdateOne) SetMsrp(v float64) *CatalogEntryUpdateOne {
	_u.mutation.ResetMsrp()
	_u.mutation.SetMsrp(v)
	return _u
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableMsrp(v *float64) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetMsrp(*v)
	}
	return _u
}

// AddMsrp adds value to the "msrp" field.
func (_u *CatalogEntryUpdateOne) AddMsrp(v float64) *CatalogEntryUpdateOne {
	_u.mutation.AddMsrp(v)
	return _u
}

// ClearMsrp clears the value of the "msrp" field.
func (_u *CatalogEntryUpdateOne) ClearMsrp() *CatalogEntryUpdateOne {
	_u.mutation.ClearMsrp()
	return _u
}

// SetEyeSize sets the "eye_size" field.
func (_u *CatalogEntryUpdateOne) SetEyeSize(v int) *CatalogEntryUpdateOne {
	_u.mutation.ResetEyeSize()
	_u.mutation.SetEyeSize(v)
	return _u
}

// SetNillableEyeSize sets the "eye_size" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableEyeSize(v *int) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetEyeSize(*v)
	}
	return _u
}

// AddEyeSize adds value to the "eye_size" field.
func (_u *CatalogEntryUpdateOne) AddEyeSize(v int) *CatalogEntryUpdateOne {
	_u.mutation.AddEyeSize(v)
	return _u
}

// SetBridge sets the "bridge" field.
func (_u *CatalogEntryUpdateOne) SetBridge(v int) *CatalogEntryUpdateOne {
	_u.mutation.ResetBridge()
	_u.mutation.SetBridge(v)
	return _u
}

// SetNillableBridge sets the "bridge" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableBridge(v *int) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetBridge(*v)
	}
	return _u
}

// AddBridge adds value to the "bridge" field.
func (_u *CatalogEntryUpdateOne) AddBridge(v int) *CatalogEntryUpdateOne {
	_u.mutation.AddBridge(v)
	return _u
}

// ClearBridge clears the value of the "bridge" field.
func (_u *CatalogEntryUpdateOne) ClearBridge() *CatalogEntryUpdateOne {
	_u.mutation.ClearBridge()
	return _u
}

// SetTempleLength sets the "temple_length" field.
func (_u *CatalogEntryUpdateOne) SetTempleLength(v int) *CatalogEntryUpdateOne {
	_u.mutation.ResetTempleLength()
	_u.mutation.SetTempleLength(v)
	return _u
}

// SetNillableTempleLength sets the "temple_length" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableTempleLength(v *int) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetTempleLength(*v)
	}
	return _u
}

// AddTempleLength adds value to the "temple_length" field.
func (_u *CatalogEntryUpdateOne) AddTempleLength(v int) *CatalogEntryUpdateOne {
	_u.mutation.AddTempleLength(v)
	return _u
}

// ClearTempleLength clears the value of the "temple_length" field.
func (_u *CatalogEntryUpdateOne) ClearTempleLength() *CatalogEntryUpdateOne {
	_u.mutation.ClearTempleLength()
	return _u
}

// SetFullSize sets the "full_size" field.
func (_u *CatalogEntryUpdateOne) SetFullSize(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetFullSize(v)
	return _u
}

// SetNillableFullSize sets the "full_size" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableFullSize(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetFullSize(*v)
	}
	return _u
}

// ClearFullSize clears the value of the "full_size" field.
func (_u *CatalogEntryUpdateOne) ClearFullSize() *CatalogEntryUpdateOne {
	_u.mutation.ClearFullSize()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *CatalogEntryUpdateOne) SetMaterial(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableMaterial(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *CatalogEntryUpdateOne) ClearMaterial() *CatalogEntryUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// SetGender sets the "gender" field.
func (_u *CatalogEntryUpdateOne) SetGender(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableGender(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *CatalogEntryUpdateOne) ClearGender() *CatalogEntryUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetInStock sets the "in_stock" field.
func (_u *CatalogEntryUpdateOne) SetInStock(v bool) *CatalogEntryUpdateOne {
	_u.mutation.SetInStock(v)
	return _u
}

// SetNillableInStock sets the "in_stock" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableInStock(v *bool) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetInStock(*v)
	}
	return _u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_u *CatalogEntryUpdateOne) SetAvailabilityStatus(v string) *CatalogEntryUpdateOne {
	_u.mutation.SetAvailabilityStatus(v)
	return _u
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_u *CatalogEntryUpdateOne) SetNillableAvailabilityStatus(v *string) *CatalogEntryUpdateOne {
	if v != nil {
		_u.SetAvailabilityStatus(*v)
	}
	return _u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (_u *CatalogEntryUpdateOne) ClearAvailabilityStatus() *CatalogEntryUpdateOne {
	_u.mutation.ClearAvailabilityStatus()
	return _u
}

// SetCrawledAt sets the "crawled_at" field.
func (_u *CatalogEntryUpdateOne) SetCrawledAt(v time.Time) *CatalogEntryUpdateOne {
	_u.mutation.SetCrawledAt(v)
	return _u
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_u *CatalogEntryUpdateOne) Mutation() *CatalogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CatalogEntryUpdate builder.
func (_u *CatalogEntryUpdateOne) Where(ps ...predicate.CatalogEntry) *CatalogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CatalogEntryUpdateOne) Select(field string, fields ...string) *CatalogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CatalogEntry entity.
func (_u *CatalogEntryUpdateOne) Save(ctx context.Context) (*CatalogEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CatalogEntryUpdateOne) SaveX(ctx context.Context) *CatalogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CatalogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CatalogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CatalogEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.CrawledAt(); !ok {
		v := catalogentry.UpdateDefaultCrawledAt()
		_u.mutation.SetCrawledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CatalogEntryUpdateOne) check() error {
	if v, ok := _u.mutation.VendorID(); ok {
		if err := catalogentry.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.vendor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := catalogentry.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := catalogentry.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ColorCode(); ok {
		if err := catalogentry.ColorCodeValidator(v); err != nil {
			return &ValidationError{Name: "color_code", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.color_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EyeSize(); ok {
		if err := catalogentry.EyeSizeValidator(v); err != nil {
			return &ValidationError{Name: "eye_size", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.eye_size": %w`, err)}
		}
	}
	return nil
}

func (_u *CatalogEntryUpdateOne) sqlSave(ctx context.Context) (_node *CatalogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(catalogentry.Table, catalogentry.Columns, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CatalogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, catalogentry.FieldID)
		for _, f := range fields {
			if !catalogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != catalogentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(catalogentry.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(catalogentry.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(catalogentry.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(catalogentry.FieldColorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(catalogentry.FieldColorName, field.TypeString, value)
	}
	if _u.mutation.ColorNameCleared() {
		_spec.ClearField(catalogentry.FieldColorName, field.TypeString)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(catalogentry.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(catalogentry.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.Upc(); ok {
		_spec.SetField(catalogentry.FieldUpc, field.TypeString, value)
	}
	if _u.mutation.UpcCleared() {
		_spec.ClearField(catalogentry.FieldUpc, field.TypeString)
	}
	if value, ok := _u.mutation.Ean(); ok {
		_spec.SetField(catalogentry.FieldEan, field.TypeString, value)
	}
	if _u.mutation.EanCleared() {
		_spec.ClearField(catalogentry.FieldEan, field.TypeString)
	}
	if value, ok := _u.mutation.WholesaleCost(); ok {
		_spec.SetField(catalogentry.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWholesaleCost(); ok {
		_spec.AddField(catalogentry.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if _u.mutation.WholesaleCostCleared() {
		_spec.ClearField(catalogentry.FieldWholesaleCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Msrp(); ok {
		_spec.SetField(catalogentry.FieldMsrp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMsrp(); ok {
		_spec.AddField(catalogentry.FieldMsrp, field.TypeFloat64, value)
	}
	if _u.mutation.MsrpCleared() {
		_spec.ClearField(catalogentry.FieldMsrp, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EyeSize(); ok {
		_spec.SetField(catalogentry.FieldEyeSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEyeSize(); ok {
		_spec.AddField(catalogentry.FieldEyeSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bridge(); ok {
		_spec.SetField(catalogentry.FieldBridge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBridge(); ok {
		_spec.AddField(catalogentry.FieldBridge, field.TypeInt, value)
	}
	if _u.mutation.BridgeCleared() {
		_spec.ClearField(catalogentry.FieldBridge, field.TypeInt)
	}
	if value, ok := _u.mutation.TempleLength(); ok {
		_spec.SetField(catalogentry.FieldTempleLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTempleLength(); ok {
		_spec.AddField(catalogentry.FieldTempleLength, field.TypeInt, value)
	}
	if _u.mutation.TempleLengthCleared() {
		_spec.ClearField(catalogentry.FieldTempleLength, field.TypeInt)
	}
	if value, ok := _u.mutation.FullSize(); ok {
		_spec.SetField(catalogentry.FieldFullSize, field.TypeString, value)
	}
	if _u.mutation.FullSizeCleared() {
		_spec.ClearField(catalogentry.FieldFullSize, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(catalogentry.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(catalogentry.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(catalogentry.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(catalogentry.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.InStock(); ok {
		_spec.SetField(catalogentry.FieldInStock, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AvailabilityStatus(); ok {
		_spec.SetField(catalogentry.FieldAvailabilityStatus, field.TypeString, value)
	}
	if _u.mutation.AvailabilityStatusCleared() {
		_spec.ClearField(catalogentry.FieldAvailabilityStatus, field.TypeString)
	}
	if value, ok := _u.mutation.CrawledAt(); ok {
		_spec.SetField(catalogentry.FieldCrawledAt, field.TypeTime, value)
	}
	_node = &CatalogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{catalogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
