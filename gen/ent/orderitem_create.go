// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/google/uuid"
)

// OrderItemCreate is the builder for creating a OrderItem entity.
type OrderItemCreate struct {
	config
	mutation *OrderItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrderID sets the "order_id" field.
func (_c *OrderItemCreate) SetOrderID(v uuid.UUID) *OrderItemCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetSku sets the "sku" field.
func (_c *OrderItemCreate) SetSku(v string) *OrderItemCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetBrand sets the "brand" field.
func (_c *OrderItemCreate) SetBrand(v string) *OrderItemCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableBrand(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetBrand(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *OrderItemCreate) SetModel(v string) *OrderItemCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableModel(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetColorCode sets the "color_code" field.
func (_c *OrderItemCreate) SetColorCode(v string) *OrderItemCreate {
	_c.mutation.SetColorCode(v)
	return _c
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableColorCode(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetColorCode(*v)
	}
	return _c
}

// SetColorName sets the "color_name" field.
func (_c *OrderItemCreate) SetColorName(v string) *OrderItemCreate {
	_c.mutation.SetColorName(v)
	return _c
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableColorName(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetColorName(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *OrderItemCreate) SetSize(v string) *OrderItemCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableSize(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *OrderItemCreate) SetQuantity(v int) *OrderItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetOrderType sets the "order_type" field.
func (_c *OrderItemCreate) SetOrderType(v string) *OrderItemCreate {
	_c.mutation.SetOrderType(v)
	return _c
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableOrderType(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetOrderType(*v)
	}
	return _c
}

// SetUpc sets the "upc" field.
func (_c *OrderItemCreate) SetUpc(v string) *OrderItemCreate {
	_c.mutation.SetUpc(v)
	return _c
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableUpc(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetUpc(*v)
	}
	return _c
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_c *OrderItemCreate) SetWholesaleCost(v float64) *OrderItemCreate {
	_c.mutation.SetWholesaleCost(v)
	return _c
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableWholesaleCost(v *float64) *OrderItemCreate {
	if v != nil {
		_c.SetWholesaleCost(*v)
	}
	return _c
}

// SetMsrp sets the "msrp" field.
func (_c *OrderItemCreate) SetMsrp(v float64) *OrderItemCreate {
	_c.mutation.SetMsrp(v)
	return _c
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableMsrp(v *float64) *OrderItemCreate {
	if v != nil {
		_c.SetMsrp(*v)
	}
	return _c
}

// SetAPIVerified sets the "api_verified" field.
func (_c *OrderItemCreate) SetAPIVerified(v bool) *OrderItemCreate {
	_c.mutation.SetAPIVerified(v)
	return _c
}

// SetNillableAPIVerified sets the "api_verified" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableAPIVerified(v *bool) *OrderItemCreate {
	if v != nil {
		_c.SetAPIVerified(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *OrderItemCreate) SetConfidenceScore(v int) *OrderItemCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetValidationReason sets the "validation_reason" field.
func (_c *OrderItemCreate) SetValidationReason(v string) *OrderItemCreate {
	_c.mutation.SetValidationReason(v)
	return _c
}

// SetNillableValidationReason sets the "validation_reason" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableValidationReason(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetValidationReason(*v)
	}
	return _c
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_c *OrderItemCreate) SetAvailabilityStatus(v string) *OrderItemCreate {
	_c.mutation.SetAvailabilityStatus(v)
	return _c
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableAvailabilityStatus(v *string) *OrderItemCreate {
	if v != nil {
		_c.SetAvailabilityStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderItemCreate) SetID(v uuid.UUID) *OrderItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderItemCreate) SetNillableID(v *uuid.UUID) *OrderItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *OrderItemCreate) SetOrder(v *Order) *OrderItemCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_c *OrderItemCreate) Mutation() *OrderItemMutation {
	return _c.mutation
}

// Save creates the OrderItem in the database.
func (_c *OrderItemCreate) Save(ctx context.Context) (*OrderItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderItemCreate) SaveX(ctx context.Context) *OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderItemCreate) defaults() {
	if _, ok := _c.mutation.APIVerified(); !ok {
		v := orderitem.DefaultAPIVerified
		_c.mutation.SetAPIVerified(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderItemCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "OrderItem.order_id"`)}
	}
	if _, ok := _c.mutation.Sku(); !ok {
		return &ValidationError{Name: "sku", err: errors.New(`ent: missing required field "OrderItem.sku"`)}
	}
	if v, ok := _c.mutation.Sku(); ok {
		if err := orderitem.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "OrderItem.sku": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "OrderItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.APIVerified(); !ok {
		return &ValidationError{Name: "api_verified", err: errors.New(`ent: missing required field "OrderItem.api_verified"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "OrderItem.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := orderitem.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "OrderItem.confidence_score": %w`, err)}
		}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "OrderItem.order"`)}
	}
	return nil
}

func (_c *OrderItemCreate) sqlSave(ctx context.Context) (*OrderItem, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderItemCreate) createSpec() (*OrderItem, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderitem.Table, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(orderitem.FieldSku, field.TypeString, value)
		_node.Sku = value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(orderitem.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(orderitem.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.ColorCode(); ok {
		_spec.SetField(orderitem.FieldColorCode, field.TypeString, value)
		_node.ColorCode = value
	}
	if value, ok := _c.mutation.ColorName(); ok {
		_spec.SetField(orderitem.FieldColorName, field.TypeString, value)
		_node.ColorName = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(orderitem.FieldSize, field.TypeString, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.OrderType(); ok {
		_spec.SetField(orderitem.FieldOrderType, field.TypeString, value)
		_node.OrderType = value
	}
	if value, ok := _c.mutation.Upc(); ok {
		_spec.SetField(orderitem.FieldUpc, field.TypeString, value)
		_node.Upc = value
	}
	if value, ok := _c.mutation.WholesaleCost(); ok {
		_spec.SetField(orderitem.FieldWholesaleCost, field.TypeFloat64, value)
		_node.WholesaleCost = &value
	}
	if value, ok := _c.mutation.Msrp(); ok {
		_spec.SetField(orderitem.FieldMsrp, field.TypeFloat64, value)
		_node.Msrp = &value
	}
	if value, ok := _c.mutation.APIVerified(); ok {
		_spec.SetField(orderitem.FieldAPIVerified, field.TypeBool, value)
		_node.APIVerified = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(orderitem.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ValidationReason(); ok {
		_spec.SetField(orderitem.FieldValidationReason, field.TypeString, value)
		_node.ValidationReason = value
	}
	if value, ok := _c.mutation.AvailabilityStatus(); ok {
		_spec.SetField(orderitem.FieldAvailabilityStatus, field.TypeString, value)
		_node.AvailabilityStatus = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderItem.Create().
//		SetOrderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderItemUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderItemCreate) OnConflict(opts ...sql.ConflictOption) *OrderItemUpsertOne {
	_c.conflict = opts
	return &OrderItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderItemCreate) OnConflictColumns(columns ...string) *OrderItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderItemUpsertOne{
		create: _c,
	}
}

type (
	// OrderItemUpsertOne is the builder for "upsert"-ing
	//  one OrderItem node.
	OrderItemUpsertOne struct {
		create *OrderItemCreate
	}

	// OrderItemUpsert is the "OnConflict" setter.
	OrderItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrderID sets the "order_id" field.
func (u *OrderItemUpsert) SetOrderID(v uuid.UUID) *OrderItemUpsert {
	u.Set(orderitem.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateOrderID() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldOrderID)
	return u
}

// SetSku sets the "sku" field.
func (u *OrderItemUpsert) SetSku(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldSku, v)
	return u
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateSku() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldSku)
	return u
}

// SetBrand sets the "brand" field.
func (u *OrderItemUpsert) SetBrand(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldBrand, v)
	return u
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateBrand() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldBrand)
	return u
}

// ClearBrand clears the value of the "brand" field.
func (u *OrderItemUpsert) ClearBrand() *OrderItemUpsert {
	u.SetNull(orderitem.FieldBrand)
	return u
}

// SetModel sets the "model" field.
func (u *OrderItemUpsert) SetModel(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateModel() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *OrderItemUpsert) ClearModel() *OrderItemUpsert {
	u.SetNull(orderitem.FieldModel)
	return u
}

// SetColorCode sets the "color_code" field.
func (u *OrderItemUpsert) SetColorCode(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldColorCode, v)
	return u
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateColorCode() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldColorCode)
	return u
}

// ClearColorCode clears the value of the "color_code" field.
func (u *OrderItemUpsert) ClearColorCode() *OrderItemUpsert {
	u.SetNull(orderitem.FieldColorCode)
	return u
}

// SetColorName sets the "color_name" field.
func (u *OrderItemUpsert) SetColorName(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldColorName, v)
	return u
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateColorName() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldColorName)
	return u
}

// ClearColorName clears the value of the "color_name" field.
func (u *OrderItemUpsert) ClearColorName() *OrderItemUpsert {
	u.SetNull(orderitem.FieldColorName)
	return u
}

// SetSize sets the "size" field.
func (u *OrderItemUpsert) SetSize(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateSize() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldSize)
	return u
}

// ClearSize clears the value of the "size" field.
func (u *OrderItemUpsert) ClearSize() *OrderItemUpsert {
	u.SetNull(orderitem.FieldSize)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *OrderItemUpsert) SetQuantity(v int) *OrderItemUpsert {
	u.Set(orderitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateQuantity() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderItemUpsert) AddQuantity(v int) *OrderItemUpsert {
	u.Add(orderitem.FieldQuantity, v)
	return u
}

// SetOrderType sets the "order_type" field.
func (u *OrderItemUpsert) SetOrderType(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldOrderType, v)
	return u
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateOrderType() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldOrderType)
	return u
}

// ClearOrderType clears the value of the "order_type" field.
func (u *OrderItemUpsert) ClearOrderType() *OrderItemUpsert {
	u.SetNull(orderitem.FieldOrderType)
	return u
}

// SetUpc sets the "upc" field.
func (u *OrderItemUpsert) SetUpc(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldUpc, v)
	return u
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateUpc() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldUpc)
	return u
}

// ClearUpc clears the value of the "upc" field.
func (u *OrderItemUpsert) ClearUpc() *OrderItemUpsert {
	u.SetNull(orderitem.FieldUpc)
	return u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *OrderItemUpsert) SetWholesaleCost(v float64) *OrderItemUpsert {
	u.Set(orderitem.FieldWholesaleCost, v)
	return u
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateWholesaleCost() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldWholesaleCost)
	return u
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *OrderItemUpsert) AddWholesaleCost(v float64) *OrderItemUpsert {
	u.Add(orderitem.FieldWholesaleCost, v)
	return u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *OrderItemUpsert) ClearWholesaleCost() *OrderItemUpsert {
	u.SetNull(orderitem.FieldWholesaleCost)
	return u
}

// SetMsrp sets the "msrp" field.
func (u *OrderItemUpsert) SetMsrp(v float64) *OrderItemUpsert {
	u.Set(orderitem.FieldMsrp, v)
	return u
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateMsrp() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldMsrp)
	return u
}

// AddMsrp adds v to the "msrp" field.
func (u *OrderItemUpsert) AddMsrp(v float64) *OrderItemUpsert {
	u.Add(orderitem.FieldMsrp, v)
	return u
}

// ClearMsrp clears the value of the "msrp" field.
func (u *OrderItemUpsert) ClearMsrp() *OrderItemUpsert {
	u.SetNull(orderitem.FieldMsrp)
	return u
}

// SetAPIVerified sets the "api_verified" field.
func (u *OrderItemUpsert) SetAPIVerified(v bool) *OrderItemUpsert {
	u.Set(orderitem.FieldAPIVerified, v)
	return u
}

// UpdateAPIVerified sets the "api_verified" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateAPIVerified() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldAPIVerified)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *OrderItemUpsert) SetConfidenceScore(v int) *OrderItemUpsert {
	u.Set(orderitem.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateConfidenceScore() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *OrderItemUpsert) AddConfidenceScore(v int) *OrderItemUpsert {
	u.Add(orderitem.FieldConfidenceScore, v)
	return u
}

// SetValidationReason sets the "validation_reason" field.
func (u *OrderItemUpsert) SetValidationReason(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldValidationReason, v)
	return u
}

// UpdateValidationReason sets the "validation_reason" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateValidationReason() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldValidationReason)
	return u
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (u *OrderItemUpsert) ClearValidationReason() *OrderItemUpsert {
	u.SetNull(orderitem.FieldValidationReason)
	return u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *OrderItemUpsert) SetAvailabilityStatus(v string) *OrderItemUpsert {
	u.Set(orderitem.FieldAvailabilityStatus, v)
	return u
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *OrderItemUpsert) UpdateAvailabilityStatus() *OrderItemUpsert {
	u.SetExcluded(orderitem.FieldAvailabilityStatus)
	return u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *OrderItemUpsert) ClearAvailabilityStatus() *OrderItemUpsert {
	u.SetNull(orderitem.FieldAvailabilityStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(orderitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderItemUpsertOne) UpdateNewValues() *OrderItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(orderitem.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderItemUpsertOne) Ignore() *OrderItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderItemUpsertOne) DoNothing() *OrderItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderItemCreate.OnConflict
// documentation for more info.
func (u *OrderItemUpsertOne) Update(set func(*OrderItemUpsert)) *OrderItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *OrderItemUpsertOne) SetOrderID(v uuid.UUID) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateOrderID() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateOrderID()
	})
}

// SetSku sets the "sku" field.
func (u *OrderItemUpsertOne) SetSku(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateSku() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateSku()
	})
}

// SetBrand sets the "brand" field.
func (u *OrderItemUpsertOne) SetBrand(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateBrand() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateBrand()
	})
}

// ClearBrand clears the value of the "brand" field.
func (u *OrderItemUpsertOne) ClearBrand() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearBrand()
	})
}

// SetModel sets the "model" field.
func (u *OrderItemUpsertOne) SetModel(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateModel() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *OrderItemUpsertOne) ClearModel() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearModel()
	})
}

// SetColorCode sets the "color_code" field.
func (u *OrderItemUpsertOne) SetColorCode(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetColorCode(v)
	})
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateColorCode() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateColorCode()
	})
}

// ClearColorCode clears the value of the "color_code" field.
func (u *OrderItemUpsertOne) ClearColorCode() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearColorCode()
	})
}

// SetColorName sets the "color_name" field.
func (u *OrderItemUpsertOne) SetColorName(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetColorName(v)
	})
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateColorName() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateColorName()
	})
}

// ClearColorName clears the value of the "color_name" field.
func (u *OrderItemUpsertOne) ClearColorName() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearColorName()
	})
}

// SetSize sets the "size" field.
func (u *OrderItemUpsertOne) SetSize(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateSize() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *OrderItemUpsertOne) ClearSize() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearSize()
	})
}

// SetQuantity sets the "quantity" field.
func (u *OrderItemUpsertOne) SetQuantity(v int) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderItemUpsertOne) AddQuantity(v int) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateQuantity() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetOrderType sets the "order_type" field.
func (u *OrderItemUpsertOne) SetOrderType(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetOrderType(v)
	})
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateOrderType() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateOrderType()
	})
}

// ClearOrderType clears the value of the "order_type" field.
func (u *OrderItemUpsertOne) ClearOrderType() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearOrderType()
	})
}

// SetUpc sets the "upc" field.
func (u *OrderItemUpsertOne) SetUpc(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetUpc(v)
	})
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateUpc() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateUpc()
	})
}

// ClearUpc clears the value of the "upc" field.
func (u *OrderItemUpsertOne) ClearUpc() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearUpc()
	})
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *OrderItemUpsertOne) SetWholesaleCost(v float64) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetWholesaleCost(v)
	})
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *OrderItemUpsertOne) AddWholesaleCost(v float64) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddWholesaleCost(v)
	})
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateWholesaleCost() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateWholesaleCost()
	})
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *OrderItemUpsertOne) ClearWholesaleCost() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearWholesaleCost()
	})
}

// SetMsrp sets the "msrp" field.
func (u *OrderItemUpsertOne) SetMsrp(v float64) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetMsrp(v)
	})
}

// AddMsrp adds v to the "msrp" field.
func (u *OrderItemUpsertOne) AddMsrp(v float64) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddMsrp(v)
	})
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateMsrp() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateMsrp()
	})
}

// ClearMsrp clears the value of the "msrp" field.
func (u *OrderItemUpsertOne) ClearMsrp() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearMsrp()
	})
}

// SetAPIVerified sets the "api_verified" field.
func (u *OrderItemUpsertOne) SetAPIVerified(v bool) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetAPIVerified(v)
	})
}

// UpdateAPIVerified sets the "api_verified" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateAPIVerified() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateAPIVerified()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *OrderItemUpsertOne) SetConfidenceScore(v int) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *OrderItemUpsertOne) AddConfidenceScore(v int) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateConfidenceScore() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetValidationReason sets the "validation_reason" field.
func (u *OrderItemUpsertOne) SetValidationReason(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetValidationReason(v)
	})
}

// UpdateValidationReason sets the "validation_reason" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateValidationReason() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateValidationReason()
	})
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (u *OrderItemUpsertOne) ClearValidationReason() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearValidationReason()
	})
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *OrderItemUpsertOne) SetAvailabilityStatus(v string) *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetAvailabilityStatus(v)
	})
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *OrderItemUpsertOne) UpdateAvailabilityStatus() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateAvailabilityStatus()
	})
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *OrderItemUpsertOne) ClearAvailabilityStatus() *OrderItemUpsertOne {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearAvailabilityStatus()
	})
}

// Exec executes the query.
func (u *OrderItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrderItemUpsertOne.ID is not supported by MySQL driver. Use OrderItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderItemCreateBulk is the builder for creating many OrderItem entities in bulk.
type OrderItemCreateBulk struct {
	config
	err      error
	builders []*OrderItemCreate
	conflict []sql.ConflictOption
}

// Save creates the OrderItem entities in the database.
func (_c *OrderItemCreateBulk) Save(ctx context.Context) ([]*OrderItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderItemMutation)
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
func (_c *OrderItemCreateBulk) SaveX(ctx context.Context) []*OrderItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrderItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderItemUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderItemUpsertBulk {
	_c.conflict = opts
	return &OrderItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderItemCreateBulk) OnConflictColumns(columns ...string) *OrderItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderItemUpsertBulk{
		create: _c,
	}
}

// OrderItemUpsertBulk is the builder for "upsert"-ing
// a bulk of OrderItem nodes.
type OrderItemUpsertBulk struct {
	create *OrderItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(orderitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderItemUpsertBulk) UpdateNewValues() *OrderItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(orderitem.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrderItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderItemUpsertBulk) Ignore() *OrderItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderItemUpsertBulk) DoNothing() *OrderItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderItemCreateBulk.OnConflict
// documentation for more info.
func (u *OrderItemUpsertBulk) Update(set func(*OrderItemUpsert)) *OrderItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *OrderItemUpsertBulk) SetOrderID(v uuid.UUID) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateOrderID() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateOrderID()
	})
}

// SetSku sets the "sku" field.
func (u *OrderItemUpsertBulk) SetSku(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateSku() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateSku()
	})
}

// SetBrand sets the "brand" field.
func (u *OrderItemUpsertBulk) SetBrand(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateBrand() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateBrand()
	})
}

// ClearBrand clears the value of the "brand" field.
func (u *OrderItemUpsertBulk) ClearBrand() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearBrand()
	})
}

// SetModel sets the "model" field.
func (u *OrderItemUpsertBulk) SetModel(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateModel() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *OrderItemUpsertBulk) ClearModel() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearModel()
	})
}

// SetColorCode sets the "color_code" field.
func (u *OrderItemUpsertBulk) SetColorCode(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetColorCode(v)
	})
}

// UpdateColorCode sets the "color_code" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateColorCode() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateColorCode()
	})
}

// ClearColorCode clears the value of the "color_code" field.
func (u *OrderItemUpsertBulk) ClearColorCode() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearColorCode()
	})
}

// SetColorName sets the "color_name" field.
func (u *OrderItemUpsertBulk) SetColorName(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetColorName(v)
	})
}

// UpdateColorName sets the "color_name" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateColorName() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateColorName()
	})
}

// ClearColorName clears the value of the "color_name" field.
func (u *OrderItemUpsertBulk) ClearColorName() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearColorName()
	})
}

// SetSize sets the "size" field.
func (u *OrderItemUpsertBulk) SetSize(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateSize() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *OrderItemUpsertBulk) ClearSize() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearSize()
	})
}

// SetQuantity sets the "quantity" field.
func (u *OrderItemUpsertBulk) SetQuantity(v int) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *OrderItemUpsertBulk) AddQuantity(v int) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateQuantity() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetOrderType sets the "order_type" field.
func (u *OrderItemUpsertBulk) SetOrderType(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetOrderType(v)
	})
}

// UpdateOrderType sets the "order_type" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateOrderType() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateOrderType()
	})
}

// ClearOrderType clears the value of the "order_type" field.
func (u *OrderItemUpsertBulk) ClearOrderType() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearOrderType()
	})
}

// SetUpc sets the "upc" field.
func (u *OrderItemUpsertBulk) SetUpc(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetUpc(v)
	})
}

// UpdateUpc sets the "upc" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateUpc() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateUpc()
	})
}

// ClearUpc clears the value of the "upc" field.
func (u *OrderItemUpsertBulk) ClearUpc() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearUpc()
	})
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (u *OrderItemUpsertBulk) SetWholesaleCost(v float64) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetWholesaleCost(v)
	})
}

// AddWholesaleCost adds v to the "wholesale_cost" field.
func (u *OrderItemUpsertBulk) AddWholesaleCost(v float64) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddWholesaleCost(v)
	})
}

// UpdateWholesaleCost sets the "wholesale_cost" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateWholesaleCost() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateWholesaleCost()
	})
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (u *OrderItemUpsertBulk) ClearWholesaleCost() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearWholesaleCost()
	})
}

// SetMsrp sets the "msrp" field.
func (u *OrderItemUpsertBulk) SetMsrp(v float64) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetMsrp(v)
	})
}

// AddMsrp adds v to the "msrp" field.
func (u *OrderItemUpsertBulk) AddMsrp(v float64) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddMsrp(v)
	})
}

// UpdateMsrp sets the "msrp" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateMsrp() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateMsrp()
	})
}

// ClearMsrp clears the value of the "msrp" field.
func (u *OrderItemUpsertBulk) ClearMsrp() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearMsrp()
	})
}

// SetAPIVerified sets the "api_verified" field.
func (u *OrderItemUpsertBulk) SetAPIVerified(v bool) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetAPIVerified(v)
	})
}

// UpdateAPIVerified sets the "api_verified" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateAPIVerified() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateAPIVerified()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *OrderItemUpsertBulk) SetConfidenceScore(v int) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *OrderItemUpsertBulk) AddConfidenceScore(v int) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateConfidenceScore() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetValidationReason sets the "validation_reason" field.
func (u *OrderItemUpsertBulk) SetValidationReason(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetValidationReason(v)
	})
}

// UpdateValidationReason sets the "validation_reason" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateValidationReason() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateValidationReason()
	})
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (u *OrderItemUpsertBulk) ClearValidationReason() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearValidationReason()
	})
}

// SetAvailabilityStatus sets the "availability_status" field.
func (u *OrderItemUpsertBulk) SetAvailabilityStatus(v string) *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.SetAvailabilityStatus(v)
	})
}

// UpdateAvailabilityStatus sets the "availability_status" field to the value that was provided on create.
func (u *OrderItemUpsertBulk) UpdateAvailabilityStatus() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.UpdateAvailabilityStatus()
	})
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (u *OrderItemUpsertBulk) ClearAvailabilityStatus() *OrderItemUpsertBulk {
	return u.Update(func(s *OrderItemUpsert) {
		s.ClearAvailabilityStatus()
	})
}

// Exec executes the query.
func (u *OrderItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
