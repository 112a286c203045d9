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
)

// CatalogEntryCreate is the builder for creating a CatalogEntry entity.
type CatalogEntryCreate struct {
	config
	mutation *CatalogEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVendorID sets the "vendor_id" field.
func (_c *CatalogEntryCreate) SetVendorID(v string) *CatalogEntryCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetBrand sets the "brand" field.
func (_c *CatalogEntryCreate) SetBrand(v string) *CatalogEntryCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *CatalogEntryCreate) SetModel(v string) *CatalogEntryCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetColorCode sets the "color_code" field.
func (_c *CatalogEntryCreate) SetColorCode(v string) *CatalogEntryCreate {
	_c.mutation.SetColorCode(v)
	return _c
}

// SetColorName sets the "color_name" field.
func (_c *CatalogEntryCreate) SetColorName(v string) *CatalogEntryCreate {
	_c.mutation.SetColorName(v)
	return _c
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableColorName(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetColorName(*v)
	}
	return _c
}

// SetSku sets the "sku" field.
func (_c *CatalogEntryCreate) SetSku(v string) *CatalogEntryCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableSku(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetSku(*v)
	}
	return _c
}

// SetUpc sets the "upc" field.
func (_c *CatalogEntryCreate) SetUpc(v string) *CatalogEntryCreate {
	_c.mutation.SetUpc(v)
	return _c
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableUpc(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetUpc(*v)
	}
	return _c
}

// SetEan sets the "ean" field.
func (_c *CatalogEntryCreate) SetEan(v string) *CatalogEntryCreate {
	_c.mutation.SetEan(v)
	return _c
}

// SetNillableEan sets the "ean" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableEan(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetEan(*v)
	}
	return _c
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_c *CatalogEntryCreate) SetWholesaleCost(v float64) *CatalogEntryCreate {
	_c.mutation.SetWholesaleCost(v)
	return _c
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableWholesaleCost(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetWholesaleCost(*v)
	}
	return _c
}

// SetMsrp sets the "msrp" field.
func (_c *CatalogEntryCreate) SetMsrp(v float64) *CatalogEntryCreate {
	_c.mutation.SetMsrp(v)
	return _c
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableMsrp(v *float64) *CatalogEntryCreate {
	if v != nil {
		_c.SetMsrp(*v)
	}
	return _c
}

// SetEyeSize sets the "eye_size" field.
func (_c *CatalogEntryCreate) SetEyeSize(v int) *CatalogEntryCreate {
	_c.mutation.SetEyeSize(v)
	return _c
}

// SetBridge sets the "bridge" field.
func (_c *CatalogEntryCreate) SetBridge(v int) *CatalogEntryCreate {
	_c.mutation.SetBridge(v)
	return _c
}

// SetNillableBridge sets the "bridge" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableBridge(v *int) *CatalogEntryCreate {
	if v != nil {
		_c.SetBridge(*v)
	}
	return _c
}

// SetTempleLength sets the "temple_length" field.
func (_c *CatalogEntryCreate) SetTempleLength(v int) *CatalogEntryCreate {
	_c.mutation.SetTempleLength(v)
	return _c
}

// SetNillableTempleLength sets the "temple_length" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableTempleLength(v *int) *CatalogEntryCreate {
	if v != nil {
		_c.SetTempleLength(*v)
	}
	return _c
}

// SetFullSize sets the "full_size" field.
func (_c *CatalogEntryCreate) SetFullSize(v string) *CatalogEntryCreate {
	_c.mutation.SetFullSize(v)
	return _c
}

// SetNillableFullSize sets the "full_size" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableFullSize(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetFullSize(*v)
	}
	return _c
}

// SetMaterial sets the "material" field.
func (_c *CatalogEntryCreate) SetMaterial(v string) *CatalogEntryCreate {
	_c.mutation.SetMaterial(v)
	return _c
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableMaterial(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetMaterial(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *CatalogEntryCreate) SetGender(v string) *CatalogEntryCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableGender(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetInStock sets the "in_stock" field.
func (_c *CatalogEntryCreate) SetInStock(v bool) *CatalogEntryCreate {
	_c.mutation.SetInStock(v)
	return _c
}

// SetNillableInStock sets the "in_stock" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableInStock(v *bool) *CatalogEntryCreate {
	if v != nil {
		_c.SetInStock(*v)
	}
	return _c
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_c *CatalogEntryCreate) SetAvailabilityStatus(v string) *CatalogEntryCreate {
	_c.mutation.SetAvailabilityStatus(v)
	return _c
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableAvailabilityStatus(v *string) *CatalogEntryCreate {
	if v != nil {
		_c.SetAvailabilityStatus(*v)
	}
	return _c
}

// SetCrawledAt sets the "crawled_at" field.
func (_c *CatalogEntryCreate) SetCrawledAt(v time.Time) *CatalogEntryCreate {
	_c.mutation.SetCrawledAt(v)
	return _c
}

// SetNillableCrawledAt sets the "crawled_at" field if the given value is not nil.
func (_c *CatalogEntryCreate) SetNillableCrawledAt(v *time.Time) *CatalogEntryCreate {
	if v != nil {
		_c.SetCrawledAt(*v)
	}
	return _c
}

// Mutation returns the CatalogEntryMutation object of the builder.
func (_c *CatalogEntryCreate) Mutation() *CatalogEntryMutation {
	return _c.mutation
}

// Save creates the CatalogEntry in the database.
func (_c *CatalogEntryCreate) Save(ctx context.Context) (*CatalogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CatalogEntryCreate) SaveX(ctx context.Context) *CatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CatalogEntryCreate) defaults() {
	if _, ok := _c.mutation.InStock(); !ok {
		v := catalogentry.DefaultInStock
		_c.mutation.SetInStock(v)
	}
	if _, ok := _c.mutation.CrawledAt(); !ok {
		v := catalogentry.DefaultCrawledAt()
		_c.mutation.SetCrawledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CatalogEntryCreate) check() error {
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "CatalogEntry.vendor_id"`)}
	}
	if v, ok := _c.mutation.VendorID(); ok {
		if err := catalogentry.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.vendor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Brand(); !ok {
		return &ValidationError{Name: "brand", err: errors.New(`ent: missing required field "CatalogEntry.brand"`)}
	}
	if v, ok := _c.mutation.Brand(); ok {
		if err := catalogentry.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.brand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "CatalogEntry.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := catalogentry.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColorCode(); !ok {
		return &ValidationError{Name: "color_code", err: errors.New(`ent: missing required field "CatalogEntry.color_code"`)}
	}
	if v, ok := _c.mutation.ColorCode(); ok {
		if err := catalogentry.ColorCodeValidator(v); err != nil {
			return &ValidationError{Name: "color_code", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.color_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EyeSize(); !ok {
		return &ValidationError{Name: "eye_size", err: errors.New(`ent: missing required field "CatalogEntry.eye_size"`)}
	}
	if v, ok := _c.mutation.EyeSize(); ok {
		if err := catalogentry.EyeSizeValidator(v); err != nil {
			return &ValidationError{Name: "eye_size", err: fmt.Errorf(`ent: validator failed for field "CatalogEntry.eye_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InStock(); !ok {
		return &ValidationError{Name: "in_stock", err: errors.New(`ent: missing required field "CatalogEntry.in_stock"`)}
	}
	if _, ok := _c.mutation.CrawledAt(); !ok {
		return &ValidationError{Name: "crawled_at", err: errors.New(`ent: missing required field "CatalogEntry.crawled_at"`)}
	}
	return nil
}

func (_c *CatalogEntryCreate) sqlSave(ctx context.Context) (*CatalogEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CatalogEntryCreate) createSpec() (*CatalogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CatalogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(catalogentry.Table, sqlgraph.NewFieldSpec(catalogentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(catalogentry.FieldVendorID, field.TypeString, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(catalogentry.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(catalogentry.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ColorCode(); ok {
		_spec.SetField(catalogentry.FieldColorCode, field.TypeString, value)
		_node.ColorCode = value
	}
	if value, ok := _c.mutation.ColorName(); ok {
		_spec.SetField(catalogentry.FieldColorName, field.TypeString, value)
		_node.ColorName = value
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(catalogentry.FieldSku, field.TypeString, value)
		_node.Sku = value
	}
	if value, ok := _c.mutation.Upc(); ok {
		_spec.SetField(catalogentry.FieldUpc, field.TypeString, value)
		_node.Upc = value
	}
	if value, ok := _c.mutation.Ean(); ok {
		_spec.SetField(catalogentry.FieldEan, field.TypeString, value)
		_node.Ean = value
	}
	if value, ok := _c.mutation.WholesaleCost(); ok {
		_spec.SetField(catalogentry.FieldWholesaleCost, field.TypeFloat64, value)
		_node.WholesaleCost = &value
	}
	if value, ok := _c.mutation.Msrp(); ok {
		_spec.SetField(catalogentry.FieldMsrp, field.TypeFloat64, value)
		_node.Msrp = &value
	}
	if value, ok := _c.mutation.EyeSize(); ok {
		_spec.SetField(catalogentry.FieldEyeSize, field.TypeInt, value)
		_node.EyeSize = value
	}
	if value, ok := _c.mutation.Bridge(); ok {
		_spec.SetField(catalogentry.FieldBridge, field.TypeInt, value)
		_node.Bridge = value
	}
	if value, ok := _c.mutation.TempleLength(); ok {
		_spec.SetField(catalogentry.FieldTempleLength, field.TypeInt, value)
		_node.TempleLength = value
	}
	if value, ok := _c.mutation.FullSize(); ok {
		_spec.SetField(catalogentry.FieldFullSize, field.TypeString, value)
		_node.FullSize = value
	}
	if value, ok := _c.mutation.Material(); ok {
		_spec.SetField(catalogentry.FieldMaterial, field.TypeString, value)
		_node.Material = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(catalogentry.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.InStock(); ok {
		_spec.SetField(catalogentry.FieldInStock, field.TypeBool, value)
		_node.InStock = value
	}
	if value, ok := _c.mutation.AvailabilityStatus(); ok {
		_spec.SetField(catalogentry.FieldAvailabilityStatus, field.TypeString, value)
		_node.AvailabilityStatus = value
	}
	if value, ok := _c.mutation.CrawledAt(); ok {
		_spec.SetField(catalogentry.FieldCrawledAt, field.TypeTime, value)
		_node.CrawledAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CatalogEntry.Create().
//		SetVendorID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CatalogEntryUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *CatalogEntryCreate) OnConflict(opts ...sql.ConflictOption) *CatalogEntryUpsertOne {
	_c.conflict = opts
	return &CatalogEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CatalogEntryCreate) OnConflictColumns(columns ...string) *CatalogEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CatalogEntryUpsertOne{
		create: _c,
	}
}

type (
	// CatalogEntryUpsertOne is the builder for "upsert"-ing
	//  one CatalogEntry node.
	CatalogEntryUpsertOne struct {
		create *CatalogEntryCreate
	}

	// CatalogEntryUpsert is the "OnConflict" setter.
	CatalogEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetVendorID sets the "vendor_id" field.
func (u *CatalogEntryUpsert) SetVendorID(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldVendorID, v)
	return u
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateVendorID() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldVendorID)
	return u
}

// SetBrand sets the "brand" field.
func (u *CatalogEntryUpsert) SetBrand(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldBrand, v)
	return u
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateBrand() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldBrand)
	return u
}

// SetModel sets the "model" field.
func (u *CatalogEntryUpsert) SetModel(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateModel() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldModel)
	return u
}

// SetColorCode sets the "color_code" field.
func (u *CatalogEntryUpsert) SetColorCode(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldColorCode, v)
	return u
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateColorCode() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldColorCode)
	return u
}

// SetColorName sets the "color_name" field.
func (u *CatalogEntryUpsert) SetColorName(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldColorName, v)
	return u
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateColorName() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldColorName)
	return u
}

// ClearColorName clears the value of the "color_name" field.
func (u *CatalogEntryUpsert) ClearColorName() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldColorName)
	return u
}

// SetSku sets the "sku" field.
func (u *CatalogEntryUpsert) SetSku(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldSku, v)
	return u
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateSku() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldSku)
	return u
}

// ClearSku clears the value of the "sku" field.
func (u *CatalogEntryUpsert) ClearSku() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldSku)
	return u
}

// SetUpc sets the "upc" field.
func (u *CatalogEntryUpsert) SetUpc(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldUpc, v)
	return u
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateUpc() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldUpc)
	return u
}

// ClearUpc clears the value of the "upc" field.
func (u *CatalogEntryUpsert) ClearUpc() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldUpc)
	return u
}

// SetEan sets the "ean" field.
func (u *CatalogEntryUpsert) SetEan(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldEan, v)
	return u
}

// UpdateEan sets the "ean" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateEan() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldEan)
	return u
}

// ClearEan clears the value of the "ean" field.
func (u *CatalogEntryUpsert) ClearEan() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldEan)
	return u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *CatalogEntryUpsert) SetWholesaleCost(v float64) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldWholesaleCost, v)
	return u
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateWholesaleCost() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldWholesaleCost)
	return u
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *CatalogEntryUpsert) AddWholesaleCost(v float64) *CatalogEntryUpsert {
	u.Add(catalogentry.FieldWholesaleCost, v)
	return u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *CatalogEntryUpsert) ClearWholesaleCost() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldWholesaleCost)
	return u
}

// SetMsrp sets the "msrp" field.
func (u *CatalogEntryUpsert) SetMsrp(v float64) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldMsrp, v)
	return u
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateMsrp() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldMsrp)
	return u
}

// AddMsrp adds v to the "msrp" field.
func (u *CatalogEntryUpsert) AddMsrp(v float64) *CatalogEntryUpsert {
	u.Add(catalogentry.FieldMsrp, v)
	return u
}

// ClearMsrp clears the value of the "msrp" field.
func (u *CatalogEntryUpsert) ClearMsrp() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldMsrp)
	return u
}

// SetEyeSize sets the "eye_size" field.
func (u *CatalogEntryUpsert) SetEyeSize(v int) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldEyeSize, v)
	return u
}

// UpdateEyeSize sets the "eye_size" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateEyeSize() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldEyeSize)
	return u
}

// AddEyeSize adds v to the "eye_size" field.
func (u *CatalogEntryUpsert) AddEyeSize(v int) *CatalogEntryUpsert {
	u.Add(catalogentry.FieldEyeSize, v)
	return u
}

// SetBridge sets the "bridge" field.
func (u *CatalogEntryUpsert) SetBridge(v int) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldBridge, v)
	return u
}

// UpdateBridge sets the "bridge" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateBridge() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldBridge)
	return u
}

// AddBridge adds v to the "bridge" field.
func (u *CatalogEntryUpsert) AddBridge(v int) *CatalogEntryUpsert {
	u.Add(catalogentry.FieldBridge, v)
	return u
}

// ClearBridge clears the value of the "bridge" field.
func (u *CatalogEntryUpsert) ClearBridge() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldBridge)
	return u
}

// SetTempleLength sets the "temple_length" field.
func (u *CatalogEntryUpsert) SetTempleLength(v int) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldTempleLength, v)
	return u
}

// UpdateTempleLength sets the "temple_length" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateTempleLength() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldTempleLength)
	return u
}

// AddTempleLength adds v to the "temple_length" field.
func (u *CatalogEntryUpsert) AddTempleLength(v int) *CatalogEntryUpsert {
	u.Add(catalogentry.FieldTempleLength, v)
	return u
}

// ClearTempleLength clears the value of the "temple_length" field.
func (u *CatalogEntryUpsert) ClearTempleLength() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldTempleLength)
	return u
}

// SetFullSize sets the "full_size" field.
func (u *CatalogEntryUpsert) SetFullSize(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldFullSize, v)
	return u
}

// UpdateFullSize sets the "full_size" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateFullSize() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldFullSize)
	return u
}

// ClearFullSize clears the value of the "full_size" field.
func (u *CatalogEntryUpsert) ClearFullSize() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldFullSize)
	return u
}

// SetMaterial sets the "material" field.
func (u *CatalogEntryUpsert) SetMaterial(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldMaterial, v)
	return u
}

// UpdateMaterial sets the "material" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateMaterial() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldMaterial)
	return u
}

// ClearMaterial clears the value of the "material" field.
func (u *CatalogEntryUpsert) ClearMaterial() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldMaterial)
	return u
}

// SetGender sets the "gender" field.
func (u *CatalogEntryUpsert) SetGender(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateGender() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *CatalogEntryUpsert) ClearGender() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldGender)
	return u
}

// SetInStock sets the "in_stock" field.
func (u *CatalogEntryUpsert) SetInStock(v bool) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldInStock, v)
	return u
}

// UpdateInStock sets the "in_stock" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateInStock() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldInStock)
	return u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *CatalogEntryUpsert) SetAvailabilityStatus(v string) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldAvailabilityStatus, v)
	return u
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateAvailabilityStatus() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldAvailabilityStatus)
	return u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *CatalogEntryUpsert) ClearAvailabilityStatus() *CatalogEntryUpsert {
	u.SetNull(catalogentry.FieldAvailabilityStatus)
	return u
}

// SetCrawledAt sets the "crawled_at" field.
func (u *CatalogEntryUpsert) SetCrawledAt(v time.Time) *CatalogEntryUpsert {
	u.Set(catalogentry.FieldCrawledAt, v)
	return u
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *CatalogEntryUpsert) UpdateCrawledAt() *CatalogEntryUpsert {
	u.SetExcluded(catalogentry.FieldCrawledAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CatalogEntryUpsertOne) UpdateNewValues() *CatalogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CatalogEntryUpsertOne) Ignore() *CatalogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CatalogEntryUpsertOne) DoNothing() *CatalogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CatalogEntryCreate.OnConflict
// documentation for more info.
func (u *CatalogEntryUpsertOne) Update(set func(*CatalogEntryUpsert)) *CatalogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CatalogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *CatalogEntryUpsertOne) SetVendorID(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateVendorID() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateVendorID()
	})
}

// SetBrand sets the "brand" field.
func (u *CatalogEntryUpsertOne) SetBrand(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateBrand() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateBrand()
	})
}

// SetModel sets the "model" field.
func (u *CatalogEntryUpsertOne) SetModel(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateModel() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateModel()
	})
}

// SetColorCode sets the "color_code" field.
func (u *CatalogEntryUpsertOne) SetColorCode(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetColorCode(v)
	})
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateColorCode() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateColorCode()
	})
}

// SetColorName sets the "color_name" field.
func (u *CatalogEntryUpsertOne) SetColorName(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetColorName(v)
	})
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateColorName() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateColorName()
	})
}

// ClearColorName clears the value of the "color_name" field.
func (u *CatalogEntryUpsertOne) ClearColorName() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearColorName()
	})
}

// SetSku sets the "sku" field.
func (u *CatalogEntryUpsertOne) SetSku(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateSku() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateSku()
	})
}

// ClearSku clears the value of the "sku" field.
func (u *CatalogEntryUpsertOne) ClearSku() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearSku()
	})
}

// SetUpc sets the "upc" field.
func (u *CatalogEntryUpsertOne) SetUpc(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetUpc(v)
	})
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateUpc() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateUpc()
	})
}

// ClearUpc clears the value of the "upc" field.
func (u *CatalogEntryUpsertOne) ClearUpc() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearUpc()
	})
}

// SetEan sets the "ean" field.
func (u *CatalogEntryUpsertOne) SetEan(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetEan(v)
	})
}

// UpdateEan sets the "ean" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateEan() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateEan()
	})
}

// ClearEan clears the value of the "ean" field.
func (u *CatalogEntryUpsertOne) ClearEan() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearEan()
	})
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *CatalogEntryUpsertOne) SetWholesaleCost(v float64) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetWholesaleCost(v)
	})
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *CatalogEntryUpsertOne) AddWholesaleCost(v float64) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddWholesaleCost(v)
	})
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateWholesaleCost() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateWholesaleCost()
	})
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *CatalogEntryUpsertOne) ClearWholesaleCost() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearWholesaleCost()
	})
}

// SetMsrp sets the "msrp" field.
func (u *CatalogEntryUpsertOne) SetMsrp(v float64) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetMsrp(v)
	})
}

// AddMsrp adds v to the "msrp" field.
func (u *CatalogEntryUpsertOne) AddMsrp(v float64) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddMsrp(v)
	})
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateMsrp() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateMsrp()
	})
}

// ClearMsrp clears the value of the "msrp" field.
func (u *CatalogEntryUpsertOne) ClearMsrp() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearMsrp()
	})
}

// SetEyeSize sets the "eye_size" field.
func (u *CatalogEntryUpsertOne) SetEyeSize(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetEyeSize(v)
	})
}

// AddEyeSize adds v to the "eye_size" field.
func (u *CatalogEntryUpsertOne) AddEyeSize(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddEyeSize(v)
	})
}

// UpdateEyeSize sets the "eye_size" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateEyeSize() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateEyeSize()
	})
}

// SetBridge sets the "bridge" field.
func (u *CatalogEntryUpsertOne) SetBridge(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetBridge(v)
	})
}

// AddBridge adds v to the "bridge" field.
func (u *CatalogEntryUpsertOne) AddBridge(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddBridge(v)
	})
}

// UpdateBridge sets the "bridge" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateBridge() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateBridge()
	})
}

// ClearBridge clears the value of the "bridge" field.
func (u *CatalogEntryUpsertOne) ClearBridge() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearBridge()
	})
}

// SetTempleLength sets the "temple_length" field.
func (u *CatalogEntryUpsertOne) SetTempleLength(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetTempleLength(v)
	})
}

// AddTempleLength adds v to the "temple_length" field.
func (u *CatalogEntryUpsertOne) AddTempleLength(v int) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddTempleLength(v)
	})
}

// UpdateTempleLength sets the "temple_length" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateTempleLength() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateTempleLength()
	})
}

// ClearTempleLength clears the value of the "temple_length" field.
func (u *CatalogEntryUpsertOne) ClearTempleLength() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearTempleLength()
	})
}

// SetFullSize sets the "full_size" field.
func (u *CatalogEntryUpsertOne) SetFullSize(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetFullSize(v)
	})
}

// UpdateFullSize sets the "full_size" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateFullSize() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateFullSize()
	})
}

// ClearFullSize clears the value of the "full_size" field.
func (u *CatalogEntryUpsertOne) ClearFullSize() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearFullSize()
	})
}

// SetMaterial sets the "material" field.
func (u *CatalogEntryUpsertOne) SetMaterial(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetMaterial(v)
	})
}

// UpdateMaterial sets the "material" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateMaterial() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateMaterial()
	})
}

// ClearMaterial clears the value of the "material" field.
func (u *CatalogEntryUpsertOne) ClearMaterial() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearMaterial()
	})
}

// SetGender sets the "gender" field.
func (u *CatalogEntryUpsertOne) SetGender(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateGender() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *CatalogEntryUpsertOne) ClearGender() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearGender()
	})
}

// SetInStock sets the "in_stock" field.
func (u *CatalogEntryUpsertOne) SetInStock(v bool) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetInStock(v)
	})
}

// UpdateInStock sets the "in_stock" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateInStock() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateInStock()
	})
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *CatalogEntryUpsertOne) SetAvailabilityStatus(v string) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetAvailabilityStatus(v)
	})
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateAvailabilityStatus() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateAvailabilityStatus()
	})
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *CatalogEntryUpsertOne) ClearAvailabilityStatus() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearAvailabilityStatus()
	})
}

// SetCrawledAt sets the "crawled_at" field.
func (u *CatalogEntryUpsertOne) SetCrawledAt(v time.Time) *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetCrawledAt(v)
	})
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *CatalogEntryUpsertOne) UpdateCrawledAt() *CatalogEntryUpsertOne {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateCrawledAt()
	})
}

// Exec executes the query.
func (u *CatalogEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CatalogEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CatalogEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CatalogEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CatalogEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CatalogEntryCreateBulk is the builder for creating many CatalogEntry entities in bulk.
type CatalogEntryCreateBulk struct {
	config
	err      error
	builders []*CatalogEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CatalogEntry entities in the database.
func (_c *CatalogEntryCreateBulk) Save(ctx context.Context) ([]*CatalogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CatalogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CatalogEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CatalogEntryCreateBulk) SaveX(ctx context.Context) []*CatalogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CatalogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CatalogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CatalogEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CatalogEntryUpsert) {
//			SetVendorID(v+v).
//		}).
//		Exec(ctx)
func (_c *CatalogEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CatalogEntryUpsertBulk {
	_c.conflict = opts
	return &CatalogEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CatalogEntryCreateBulk) OnConflictColumns(columns ...string) *CatalogEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CatalogEntryUpsertBulk{
		create: _c,
	}
}

// CatalogEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CatalogEntry nodes.
type CatalogEntryUpsertBulk struct {
	create *CatalogEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CatalogEntryUpsertBulk) UpdateNewValues() *CatalogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CatalogEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CatalogEntryUpsertBulk) Ignore() *CatalogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CatalogEntryUpsertBulk) DoNothing() *CatalogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CatalogEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CatalogEntryUpsertBulk) Update(set func(*CatalogEntryUpsert)) *CatalogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CatalogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetVendorID sets the "vendor_id" field.
func (u *CatalogEntryUpsertBulk) SetVendorID(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetVendorID(v)
	})
}

// UpdateVendorID sets the "vendor_id" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateVendorID() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateVendorID()
	})
}

// SetBrand sets the "brand" field.
func (u *CatalogEntryUpsertBulk) SetBrand(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateBrand() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateBrand()
	})
}

// SetModel sets the "model" field.
func (u *CatalogEntryUpsertBulk) SetModel(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateModel() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateModel()
	})
}

// SetColorCode sets the "color_code" field.
func (u *CatalogEntryUpsertBulk) SetColorCode(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetColorCode(v)
	})
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateColorCode() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateColorCode()
	})
}

// SetColorName sets the "color_name" field.
func (u *CatalogEntryUpsertBulk) SetColorName(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetColorName(v)
	})
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateColorName() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateColorName()
	})
}

// ClearColorName clears the value of the "color_name" field.
func (u *CatalogEntryUpsertBulk) ClearColorName() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearColorName()
	})
}

// SetSku sets the "sku" field.
func (u *CatalogEntryUpsertBulk) SetSku(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateSku() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateSku()
	})
}

// ClearSku clears the value of the "sku" field.
func (u *CatalogEntryUpsertBulk) ClearSku() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearSku()
	})
}

// SetUpc sets the "upc" field.
func (u *CatalogEntryUpsertBulk) SetUpc(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetUpc(v)
	})
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateUpc() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateUpc()
	})
}

// ClearUpc clears the value of the "upc" field.
func (u *CatalogEntryUpsertBulk) ClearUpc() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearUpc()
	})
}

// SetEan sets the "ean" field.
func (u *CatalogEntryUpsertBulk) SetEan(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetEan(v)
	})
}

// UpdateEan sets the "ean" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateEan() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateEan()
	})
}

// ClearEan clears the value of the "ean" field.
func (u *CatalogEntryUpsertBulk) ClearEan() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearEan()
	})
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *CatalogEntryUpsertBulk) SetWholesaleCost(v float64) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetWholesaleCost(v)
	})
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *CatalogEntryUpsertBulk) AddWholesaleCost(v float64) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddWholesaleCost(v)
	})
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateWholesaleCost() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateWholesaleCost()
	})
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *CatalogEntryUpsertBulk) ClearWholesaleCost() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearWholesaleCost()
	})
}

// SetMsrp sets the "msrp" field.
func (u *CatalogEntryUpsertBulk) SetMsrp(v float64) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetMsrp(v)
	})
}

// AddMsrp adds v to the "msrp" field.
func (u *CatalogEntryUpsertBulk) AddMsrp(v float64) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddMsrp(v)
	})
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateMsrp() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateMsrp()
	})
}

// ClearMsrp clears the value of the "msrp" field.
func (u *CatalogEntryUpsertBulk) ClearMsrp() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearMsrp()
	})
}

// SetEyeSize sets the "eye_size" field.
func (u *CatalogEntryUpsertBulk) SetEyeSize(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetEyeSize(v)
	})
}

// AddEyeSize adds v to the "eye_size" field.
func (u *CatalogEntryUpsertBulk) AddEyeSize(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddEyeSize(v)
	})
}

// UpdateEyeSize sets the "eye_size" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateEyeSize() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateEyeSize()
	})
}

// SetBridge sets the "bridge" field.
func (u *CatalogEntryUpsertBulk) SetBridge(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetBridge(v)
	})
}

// AddBridge adds v to the "bridge" field.
func (u *CatalogEntryUpsertBulk) AddBridge(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddBridge(v)
	})
}

// UpdateBridge sets the "bridge" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateBridge() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateBridge()
	})
}

// ClearBridge clears the value of the "bridge" field.
func (u *CatalogEntryUpsertBulk) ClearBridge() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearBridge()
	})
}

// SetTempleLength sets the "temple_length" field.
func (u *CatalogEntryUpsertBulk) SetTempleLength(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetTempleLength(v)
	})
}

// AddTempleLength adds v to the "temple_length" field.
func (u *CatalogEntryUpsertBulk) AddTempleLength(v int) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.AddTempleLength(v)
	})
}

// UpdateTempleLength sets the "temple_length" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateTempleLength() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateTempleLength()
	})
}

// ClearTempleLength clears the value of the "temple_length" field.
func (u *CatalogEntryUpsertBulk) ClearTempleLength() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearTempleLength()
	})
}

// SetFullSize sets the "full_size" field.
func (u *CatalogEntryUpsertBulk) SetFullSize(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetFullSize(v)
	})
}

// UpdateFullSize sets the "full_size" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateFullSize() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateFullSize()
	})
}

// ClearFullSize clears the value of the "full_size" field.
func (u *CatalogEntryUpsertBulk) ClearFullSize() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearFullSize()
	})
}

// SetMaterial sets the "material" field.
func (u *CatalogEntryUpsertBulk) SetMaterial(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetMaterial(v)
	})
}

// UpdateMaterial sets the "material" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateMaterial() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateMaterial()
	})
}

// ClearMaterial clears the value of the "material" field.
func (u *CatalogEntryUpsertBulk) ClearMaterial() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearMaterial()
	})
}

// SetGender sets the "gender" field.
func (u *CatalogEntryUpsertBulk) SetGender(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateGender() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *CatalogEntryUpsertBulk) ClearGender() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearGender()
	})
}

// SetInStock sets the "in_stock" field.
func (u *CatalogEntryUpsertBulk) SetInStock(v bool) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetInStock(v)
	})
}

// UpdateInStock sets the "in_stock" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateInStock() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateInStock()
	})
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *CatalogEntryUpsertBulk) SetAvailabilityStatus(v string) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetAvailabilityStatus(v)
	})
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateAvailabilityStatus() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateAvailabilityStatus()
	})
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *CatalogEntryUpsertBulk) ClearAvailabilityStatus() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.ClearAvailabilityStatus()
	})
}

// SetCrawledAt sets the "crawled_at" field.
func (u *CatalogEntryUpsertBulk) SetCrawledAt(v time.Time) *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.SetCrawledAt(v)
	})
}

// UpdateCrawledAt sets the "crawled_at" field to the value that was provided on create.
func (u *CatalogEntryUpsertBulk) UpdateCrawledAt() *CatalogEntryUpsertBulk {
	return u.Update(func(s *CatalogEntryUpsert) {
		s.UpdateCrawledAt()
	})
}

// Exec executes the query.
func (u *CatalogEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CatalogEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CatalogEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CatalogEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
