// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/framedesk/order-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdate) SetOrderID(v uuid.UUID) *OrderItemUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *OrderItemUpdate) SetSku(v string) *OrderItemUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableSku(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *OrderItemUpdate) SetBrand(v string) *OrderItemUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableBrand(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *OrderItemUpdate) ClearBrand() *OrderItemUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// SetModel sets the "model" field.
func (_u *OrderItemUpdate) SetModel(v string) *OrderItemUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableModel(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *OrderItemUpdate) ClearModel() *OrderItemUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *OrderItemUpdate) SetColorCode(v string) *OrderItemUpdate {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableColorCode(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// ClearColorCode clears the value of the "color_code" field.
func (_u *OrderItemUpdate) ClearColorCode() *OrderItemUpdate {
	_u.mutation.ClearColorCode()
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *OrderItemUpdate) SetColorName(v string) *OrderItemUpdate {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableColorName(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// ClearColorName clears the value of the "color_name" field.
func (_u *OrderItemUpdate) ClearColorName() *OrderItemUpdate {
	_u.mutation.ClearColorName()
	return _u
}

// SetSize sets the "size" field.
func (_u *OrderItemUpdate) SetSize(v string) *OrderItemUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableSize(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *OrderItemUpdate) ClearSize() *OrderItemUpdate {
	_u.mutation.ClearSize()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdate) SetQuantity(v int) *OrderItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableQuantity(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdate) AddQuantity(v int) *OrderItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *OrderItemUpdate) SetOrderType(v string) *OrderItemUpdate {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderType(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// ClearOrderType clears the value of the "order_type" field.
func (_u *OrderItemUpdate) ClearOrderType() *OrderItemUpdate {
	_u.mutation.ClearOrderType()
	return _u
}

// SetUpc sets the "upc" field.
func (_u *OrderItemUpdate) SetUpc(v string) *OrderItemUpdate {
	_u.mutation.SetUpc(v)
	return _u
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableUpc(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetUpc(*v)
	}
	return _u
}

// ClearUpc clears the value of the "upc" field.
func (_u *OrderItemUpdate) ClearUpc() *OrderItemUpdate {
	_u.mutation.ClearUpc()
	return _u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_u *OrderItemUpdate) SetWholesaleCost(v float64) *OrderItemUpdate {
	_u.mutation.ResetWholesaleCost()
	_u.mutation.SetWholesaleCost(v)
	return _u
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableWholesaleCost(v *float64) *OrderItemUpdate {
	if v != nil {
		_u.SetWholesaleCost(*v)
	}
	return _u
}

// AddWholesaleCost adds value to the "wholesale_cost" field.
func (_u *OrderItemUpdate) AddWholesaleCost(v float64) *OrderItemUpdate {
	_u.mutation.AddWholesaleCost(v)
	return _u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (_u *OrderItemUpdate) ClearWholesaleCost() *OrderItemUpdate {
	_u.mutation.ClearWholesaleCost()
	return _u
}

// SetMsrp sets the "msrp" field.
func (_u *OrderItemUpdate) SetMsrp(v float64) *OrderItemUpdate {
	_u.mutation.ResetMsrp()
	_u.mutation.SetMsrp(v)
	return _u
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableMsrp(v *float64) *OrderItemUpdate {
	if v != nil {
		_u.SetMsrp(*v)
	}
	return _u
}

// AddMsrp adds value to the "msrp" field.
func (_u *OrderItemUpdate) AddMsrp(v float64) *OrderItemUpdate {
	_u.mutation.AddMsrp(v)
	return _u
}

// ClearMsrp clears the value of the "msrp" field.
func (_u *OrderItemUpdate) ClearMsrp() *OrderItemUpdate {
	_u.mutation.ClearMsrp()
	return _u
}

// SetAPIVerified sets the "api_verified" field.
func (_u *OrderItemUpdate) SetAPIVerified(v bool) *OrderItemUpdate {
	_u.mutation.SetAPIVerified(v)
	return _u
}

// SetNillableAPIVerified sets the "api_verified" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableAPIVerified(v *bool) *OrderItemUpdate {
	if v != nil {
		_u.SetAPIVerified(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *OrderItemUpdate) SetConfidenceScore(v int) *OrderItemUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableConfidenceScore(v *int) *OrderItemUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *OrderItemUpdate) AddConfidenceScore(v int) *OrderItemUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetValidationReason sets the "validation_reason" field.
func (_u *OrderItemUpdate) SetValidationReason(v string) *OrderItemUpdate {
	_u.mutation.SetValidationReason(v)
	return _u
}

// SetNillableValidationReason sets the "validation_reason" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableValidationReason(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetValidationReason(*v)
	}
	return _u
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (_u *OrderItemUpdate) ClearValidationReason() *OrderItemUpdate {
	_u.mutation.ClearValidationReason()
	return _u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_u *OrderItemUpdate) SetAvailabilityStatus(v string) *OrderItemUpdate {
	_u.mutation.SetAvailabilityStatus(v)
	return _u
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableAvailabilityStatus(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetAvailabilityStatus(*v)
	}
	return _u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (_u *OrderItemUpdate) ClearAvailabilityStatus() *OrderItemUpdate {
	_u.mutation.ClearAvailabilityStatus()
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdate) SetOrder(v *Order) *OrderItemUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdate) ClearOrder() *OrderItemUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.Sku(); ok {
		if err := orderitem.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "OrderItem.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := orderitem.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "OrderItem.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(orderitem.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(orderitem.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(orderitem.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(orderitem.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(orderitem.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(orderitem.FieldColorCode, field.TypeString, value)
	}
	if _u.mutation.ColorCodeCleared() {
		_spec.ClearField(orderitem.FieldColorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(orderitem.FieldColorName, field.TypeString, value)
	}
	if _u.mutation.ColorNameCleared() {
		_spec.ClearField(orderitem.FieldColorName, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(orderitem.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(orderitem.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(orderitem.FieldOrderType, field.TypeString, value)
	}
	if _u.mutation.OrderTypeCleared() {
		_spec.ClearField(orderitem.FieldOrderType, field.TypeString)
	}
	if value, ok := _u.mutation.Upc(); ok {
		_spec.SetField(orderitem.FieldUpc, field.TypeString, value)
	}
	if _u.mutation.UpcCleared() {
		_spec.ClearField(orderitem.FieldUpc, field.TypeString)
	}
	if value, ok := _u.mutation.WholesaleCost(); ok {
		_spec.SetField(orderitem.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWholesaleCost(); ok {
		_spec.AddField(orderitem.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if _u.mutation.WholesaleCostCleared() {
		_spec.ClearField(orderitem.FieldWholesaleCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Msrp(); ok {
		_spec.SetField(orderitem.FieldMsrp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMsrp(); ok {
		_spec.AddField(orderitem.FieldMsrp, field.TypeFloat64, value)
	}
	if _u.mutation.MsrpCleared() {
		_spec.ClearField(orderitem.FieldMsrp, field.TypeFloat64)
	}
	if value, ok := _u.mutation.APIVerified(); ok {
		_spec.SetField(orderitem.FieldAPIVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(orderitem.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(orderitem.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationReason(); ok {
		_spec.SetField(orderitem.FieldValidationReason, field.TypeString, value)
	}
	if _u.mutation.ValidationReasonCleared() {
		_spec.ClearField(orderitem.FieldValidationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AvailabilityStatus(); ok {
		_spec.SetField(orderitem.FieldAvailabilityStatus, field.TypeString, value)
	}
	if _u.mutation.AvailabilityStatusCleared() {
		_spec.ClearField(orderitem.FieldAvailabilityStatus, field.TypeString)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdateOne) SetOrderID(v uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *OrderItemUpdateOne) SetSku(v string) *OrderItemUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableSku(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *OrderItemUpdateOne) SetBrand(v string) *OrderItemUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableBrand(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *OrderItemUpdateOne) ClearBrand() *OrderItemUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// SetModel sets the "model" field.
func (_u *OrderItemUpdateOne) SetModel(v string) *OrderItemUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableModel(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *OrderItemUpdateOne) ClearModel() *OrderItemUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetColorCode sets the "color_code" field.
func (_u *OrderItemUpdateOne) SetColorCode(v string) *OrderItemUpdateOne {
	_u.mutation.SetColorCode(v)
	return _u
}

// SetNillableColorCode sets the "color_code" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableColorCode(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetColorCode(*v)
	}
	return _u
}

// ClearColorCode clears the value of the "color_code" field.
func (_u *OrderItemUpdateOne) ClearColorCode() *OrderItemUpdateOne {
	_u.mutation.ClearColorCode()
	return _u
}

// SetColorName sets the "color_name" field.
func (_u *OrderItemUpdateOne) SetColorName(v string) *OrderItemUpdateOne {
	_u.mutation.SetColorName(v)
	return _u
}

// SetNillableColorName sets the "color_name" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableColorName(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetColorName(*v)
	}
	return _u
}

// ClearColorName clears the value of the "color_name" field.
func (_u *OrderItemUpdateOne) ClearColorName() *OrderItemUpdateOne {
	_u.mutation.ClearColorName()
	return _u
}

// SetSize sets the "size" field.
func (_u *OrderItemUpdateOne) SetSize(v string) *OrderItemUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableSize(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *OrderItemUpdateOne) ClearSize() *OrderItemUpdateOne {
	_u.mutation.ClearSize()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderItemUpdateOne) SetQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableQuantity(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderItemUpdateOne) AddQuantity(v int) *OrderItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *OrderItemUpdateOne) SetOrderType(v string) *OrderItemUpdateOne {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderType(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// ClearOrderType clears the value of the "order_type" field.
func (_u *OrderItemUpdateOne) ClearOrderType() *OrderItemUpdateOne {
	_u.mutation.ClearOrderType()
	return _u
}

// SetUpc sets the "upc" field.
func (_u *OrderItemUpdateOne) SetUpc(v string) *OrderItemUpdateOne {
	_u.mutation.SetUpc(v)
	return _u
}

// SetNillableUpc sets the "upc" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableUpc(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetUpc(*v)
	}
	return _u
}

// ClearUpc clears the value of the "upc" field.
func (_u *OrderItemUpdateOne) ClearUpc() *OrderItemUpdateOne {
	_u.mutation.ClearUpc()
	return _u
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (_u *OrderItemUpdateOne) SetWholesaleCost(v float64) *OrderItemUpdateOne {
	_u.mutation.ResetWholesaleCost()
	_u.mutation.SetWholesaleCost(v)
	return _u
}

// SetNillableWholesaleCost sets the "wholesale_cost" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableWholesaleCost(v *float64) *OrderItemUpdateOne {
	if v != nil {
		_u.SetWholesaleCost(*v)
	}
	return _u
}

// AddWholesaleCost adds value to the "wholesale_cost" field.
func (_u *OrderItemUpdateOne) AddWholesaleCost(v float64) *OrderItemUpdateOne {
	_u.mutation.AddWholesaleCost(v)
	return _u
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (_u *OrderItemUpdateOne) ClearWholesaleCost() *OrderItemUpdateOne {
	_u.mutation.ClearWholesaleCost()
	return _u
}

// SetMsrp sets the "msrp" field.
func (_u *OrderItemUpdateOne) SetMsrp(v float64) *OrderItemUpdateOne {
	_u.mutation.ResetMsrp()
	_u.mutation.SetMsrp(v)
	return _u
}

// SetNillableMsrp sets the "msrp" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableMsrp(v *float64) *OrderItemUpdateOne {
	if v != nil {
		_u.SetMsrp(*v)
	}
	return _u
}

// AddMsrp adds value to the "msrp" field.
func (_u *OrderItemUpdateOne) AddMsrp(v float64) *OrderItemUpdateOne {
	_u.mutation.AddMsrp(v)
	return _u
}

// ClearMsrp clears the value of the "msrp" field.
func (_u *OrderItemUpdateOne) ClearMsrp() *OrderItemUpdateOne {
	_u.mutation.ClearMsrp()
	return _u
}

// SetAPIVerified sets the "api_verified" field.
func (_u *OrderItemUpdateOne) SetAPIVerified(v bool) *OrderItemUpdateOne {
	_u.mutation.SetAPIVerified(v)
	return _u
}

// SetNillableAPIVerified sets the "api_verified" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableAPIVerified(v *bool) *OrderItemUpdateOne {
	if v != nil {
		_u.SetAPIVerified(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *OrderItemUpdateOne) SetConfidenceScore(v int) *OrderItemUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableConfidenceScore(v *int) *OrderItemUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *OrderItemUpdateOne) AddConfidenceScore(v int) *OrderItemUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetValidationReason sets the "validation_reason" field.
func (_u *OrderItemUpdateOne) SetValidationReason(v string) *OrderItemUpdateOne {
	_u.mutation.SetValidationReason(v)
	return _u
}

// SetNillableValidationReason sets the "validation_reason" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableValidationReason(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetValidationReason(*v)
	}
	return _u
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (_u *OrderItemUpdateOne) ClearValidationReason() *OrderItemUpdateOne {
	_u.mutation.ClearValidationReason()
	return _u
}

// SetAvailabilityStatus sets the "availability_status" field.
func (_u *OrderItemUpdateOne) SetAvailabilityStatus(v string) *OrderItemUpdateOne {
	_u.mutation.SetAvailabilityStatus(v)
	return _u
}

// SetNillableAvailabilityStatus sets the "availability_status" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableAvailabilityStatus(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetAvailabilityStatus(*v)
	}
	return _u
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (_u *OrderItemUpdateOne) ClearAvailabilityStatus() *OrderItemUpdateOne {
	_u.mutation.ClearAvailabilityStatus()
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) SetOrder(v *Order) *OrderItemUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) ClearOrder() *OrderItemUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.Sku(); ok {
		if err := orderitem.SkuValidator(v); err != nil {
			return &ValidationError{Name: "sku", err: fmt.Errorf(`ent: validator failed for field "OrderItem.sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := orderitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "OrderItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := orderitem.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "OrderItem.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
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
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(orderitem.FieldSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(orderitem.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(orderitem.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(orderitem.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(orderitem.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ColorCode(); ok {
		_spec.SetField(orderitem.FieldColorCode, field.TypeString, value)
	}
	if _u.mutation.ColorCodeCleared() {
		_spec.ClearField(orderitem.FieldColorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ColorName(); ok {
		_spec.SetField(orderitem.FieldColorName, field.TypeString, value)
	}
	if _u.mutation.ColorNameCleared() {
		_spec.ClearField(orderitem.FieldColorName, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(orderitem.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(orderitem.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(orderitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(orderitem.FieldOrderType, field.TypeString, value)
	}
	if _u.mutation.OrderTypeCleared() {
		_spec.ClearField(orderitem.FieldOrderType, field.TypeString)
	}
	if value, ok := _u.mutation.Upc(); ok {
		_spec.SetField(orderitem.FieldUpc, field.TypeString, value)
	}
	if _u.mutation.UpcCleared() {
		_spec.ClearField(orderitem.FieldUpc, field.TypeString)
	}
	if value, ok := _u.mutation.WholesaleCost(); ok {
		_spec.SetField(orderitem.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWholesaleCost(); ok {
		_spec.AddField(orderitem.FieldWholesaleCost, field.TypeFloat64, value)
	}
	if _u.mutation.WholesaleCostCleared() {
		_spec.ClearField(orderitem.FieldWholesaleCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Msrp(); ok {
		_spec.SetField(orderitem.FieldMsrp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMsrp(); ok {
		_spec.AddField(orderitem.FieldMsrp, field.TypeFloat64, value)
	}
	if _u.mutation.MsrpCleared() {
		_spec.ClearField(orderitem.FieldMsrp, field.TypeFloat64)
	}
	if value, ok := _u.mutation.APIVerified(); ok {
		_spec.SetField(orderitem.FieldAPIVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(orderitem.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(orderitem.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationReason(); ok {
		_spec.SetField(orderitem.FieldValidationReason, field.TypeString, value)
	}
	if _u.mutation.ValidationReasonCleared() {
		_spec.ClearField(orderitem.FieldValidationReason, field.TypeString)
	}
	if value, ok := _u.mutation.AvailabilityStatus(); ok {
		_spec.SetField(orderitem.FieldAvailabilityStatus, field.TypeString, value)
	}
	if _u.mutation.AvailabilityStatusCleared() {
		_spec.ClearField(orderitem.FieldAvailabilityStatus, field.TypeString)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
