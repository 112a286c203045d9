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
	"github.com/framedesk/order-intake/gen/ent/account"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/framedesk/order-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OrderUpdate) SetAccountID(v uuid.UUID) *OrderUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableAccountID(v *uuid.UUID) *OrderUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *OrderUpdate) SetVendor(v string) *OrderUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableVendor(v *string) *OrderUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdate) SetOrderNumber(v string) *OrderUpdate {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (_u *OrderUpdate) SetVendorAccountNumber(v string) *OrderUpdate {
	_u.mutation.SetVendorAccountNumber(v)
	return _u
}

// SetNillableVendorAccountNumber sets the "vendor_account_number" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableVendorAccountNumber(v *string) *OrderUpdate {
	if v != nil {
		_u.SetVendorAccountNumber(*v)
	}
	return _u
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (_u *OrderUpdate) ClearVendorAccountNumber() *OrderUpdate {
	_u.mutation.ClearVendorAccountNumber()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdate) SetCustomerName(v string) *OrderUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCustomerName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdate) ClearCustomerName() *OrderUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetRepName sets the "rep_name" field.
func (_u *OrderUpdate) SetRepName(v string) *OrderUpdate {
	_u.mutation.SetRepName(v)
	return _u
}

// SetNillableRepName sets the "rep_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRepName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetRepName(*v)
	}
	return _u
}

// ClearRepName clears the value of the "rep_name" field.
func (_u *OrderUpdate) ClearRepName() *OrderUpdate {
	_u.mutation.ClearRepName()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *OrderUpdate) SetOrderDate(v string) *OrderUpdate {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderDate(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *OrderUpdate) ClearOrderDate() *OrderUpdate {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTotalPieces sets the "total_pieces" field.
func (_u *OrderUpdate) SetTotalPieces(v int) *OrderUpdate {
	_u.mutation.ResetTotalPieces()
	_u.mutation.SetTotalPieces(v)
	return _u
}

// SetNillableTotalPieces sets the "total_pieces" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotalPieces(v *int) *OrderUpdate {
	if v != nil {
		_u.SetTotalPieces(*v)
	}
	return _u
}

// AddTotalPieces adds value to the "total_pieces" field.
func (_u *OrderUpdate) AddTotalPieces(v int) *OrderUpdate {
	_u.mutation.AddTotalPieces(v)
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *OrderUpdate) SetParseStatus(v string) *OrderUpdate {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableParseStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// SetValidationRate sets the "validation_rate" field.
func (_u *OrderUpdate) SetValidationRate(v float64) *OrderUpdate {
	_u.mutation.ResetValidationRate()
	_u.mutation.SetValidationRate(v)
	return _u
}

// SetNillableValidationRate sets the "validation_rate" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableValidationRate(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetValidationRate(*v)
	}
	return _u
}

// AddValidationRate adds value to the "validation_rate" field.
func (_u *OrderUpdate) AddValidationRate(v float64) *OrderUpdate {
	_u.mutation.AddValidationRate(v)
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *OrderUpdate) SetParsedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableParsedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdate) SetCreatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *OrderUpdate) SetAccount(v *Account) *OrderUpdate {
	return _u.SetAccountID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *OrderUpdate) ClearAccount() *OrderUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := order.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Order.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPieces(); ok {
		if err := order.TotalPiecesValidator(v); err != nil {
			return &ValidationError{Name: "total_pieces", err: fmt.Errorf(`ent: validator failed for field "Order.total_pieces": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParseStatus(); ok {
		if err := order.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "Order.parse_status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.account"`)
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(order.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAccountNumber(); ok {
		_spec.SetField(order.FieldVendorAccountNumber, field.TypeString, value)
	}
	if _u.mutation.VendorAccountNumberCleared() {
		_spec.ClearField(order.FieldVendorAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.RepName(); ok {
		_spec.SetField(order.FieldRepName, field.TypeString, value)
	}
	if _u.mutation.RepNameCleared() {
		_spec.ClearField(order.FieldRepName, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(order.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPieces(); ok {
		_spec.SetField(order.FieldTotalPieces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPieces(); ok {
		_spec.AddField(order.FieldTotalPieces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(order.FieldParseStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationRate(); ok {
		_spec.SetField(order.FieldValidationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationRate(); ok {
		_spec.AddField(order.FieldValidationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(order.FieldParsedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.AccountTable,
			Columns: []string{order.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.AccountTable,
			Columns: []string{order.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetAccountID sets the "account_id" field.
func (_u *OrderUpdateOne) SetAccountID(v uuid.UUID) *OrderUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableAccountID(v *uuid.UUID) *OrderUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *OrderUpdateOne) SetVendor(v string) *OrderUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableVendor(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetOrderNumber sets the "order_number" field.
func (_u *OrderUpdateOne) SetOrderNumber(v string) *OrderUpdateOne {
	_u.mutation.SetOrderNumber(v)
	return _u
}

// SetNillableOrderNumber sets the "order_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderNumber(*v)
	}
	return _u
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (_u *OrderUpdateOne) SetVendorAccountNumber(v string) *OrderUpdateOne {
	_u.mutation.SetVendorAccountNumber(v)
	return _u
}

// SetNillableVendorAccountNumber sets the "vendor_account_number" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableVendorAccountNumber(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetVendorAccountNumber(*v)
	}
	return _u
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (_u *OrderUpdateOne) ClearVendorAccountNumber() *OrderUpdateOne {
	_u.mutation.ClearVendorAccountNumber()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *OrderUpdateOne) SetCustomerName(v string) *OrderUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCustomerName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *OrderUpdateOne) ClearCustomerName() *OrderUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetRepName sets the "rep_name" field.
func (_u *OrderUpdateOne) SetRepName(v string) *OrderUpdateOne {
	_u.mutation.SetRepName(v)
	return _u
}

// SetNillableRepName sets the "rep_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRepName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetRepName(*v)
	}
	return _u
}

// ClearRepName clears the value of the "rep_name" field.
func (_u *OrderUpdateOne) ClearRepName() *OrderUpdateOne {
	_u.mutation.ClearRepName()
	return _u
}

// SetOrderDate sets the "order_date" field.
func (_u *OrderUpdateOne) SetOrderDate(v string) *OrderUpdateOne {
	_u.mutation.SetOrderDate(v)
	return _u
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderDate(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderDate(*v)
	}
	return _u
}

// ClearOrderDate clears the value of the "order_date" field.
func (_u *OrderUpdateOne) ClearOrderDate() *OrderUpdateOne {
	_u.mutation.ClearOrderDate()
	return _u
}

// SetTotalPieces sets the "total_pieces" field.
func (_u *OrderUpdateOne) SetTotalPieces(v int) *OrderUpdateOne {
	_u.mutation.ResetTotalPieces()
	_u.mutation.SetTotalPieces(v)
	return _u
}

// SetNillableTotalPieces sets the "total_pieces" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotalPieces(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetTotalPieces(*v)
	}
	return _u
}

// AddTotalPieces adds value to the "total_pieces" field.
func (_u *OrderUpdateOne) AddTotalPieces(v int) *OrderUpdateOne {
	_u.mutation.AddTotalPieces(v)
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *OrderUpdateOne) SetParseStatus(v string) *OrderUpdateOne {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableParseStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// SetValidationRate sets the "validation_rate" field.
func (_u *OrderUpdateOne) SetValidationRate(v float64) *OrderUpdateOne {
	_u.mutation.ResetValidationRate()
	_u.mutation.SetValidationRate(v)
	return _u
}

// SetNillableValidationRate sets the "validation_rate" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableValidationRate(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetValidationRate(*v)
	}
	return _u
}

// AddValidationRate adds value to the "validation_rate" field.
func (_u *OrderUpdateOne) AddValidationRate(v float64) *OrderUpdateOne {
	_u.mutation.AddValidationRate(v)
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *OrderUpdateOne) SetParsedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableParsedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdateOne) SetCreatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *OrderUpdateOne) SetAccount(v *Account) *OrderUpdateOne {
	return _u.SetAccountID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *OrderUpdateOne) ClearAccount() *OrderUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.Vendor(); ok {
		if err := order.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Order.vendor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPieces(); ok {
		if err := order.TotalPiecesValidator(v); err != nil {
			return &ValidationError{Name: "total_pieces", err: fmt.Errorf(`ent: validator failed for field "Order.total_pieces": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParseStatus(); ok {
		if err := order.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "Order.parse_status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.account"`)
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(order.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAccountNumber(); ok {
		_spec.SetField(order.FieldVendorAccountNumber, field.TypeString, value)
	}
	if _u.mutation.VendorAccountNumberCleared() {
		_spec.ClearField(order.FieldVendorAccountNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(order.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.RepName(); ok {
		_spec.SetField(order.FieldRepName, field.TypeString, value)
	}
	if _u.mutation.RepNameCleared() {
		_spec.ClearField(order.FieldRepName, field.TypeString)
	}
	if value, ok := _u.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
	}
	if _u.mutation.OrderDateCleared() {
		_spec.ClearField(order.FieldOrderDate, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPieces(); ok {
		_spec.SetField(order.FieldTotalPieces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPieces(); ok {
		_spec.AddField(order.FieldTotalPieces, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(order.FieldParseStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationRate(); ok {
		_spec.SetField(order.FieldValidationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValidationRate(); ok {
		_spec.AddField(order.FieldValidationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(order.FieldParsedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.AccountTable,
			Columns: []string{order.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.AccountTable,
			Columns: []string{order.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
