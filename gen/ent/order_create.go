// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/framedesk/order-intake/gen/ent/account"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/google/uuid"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *OrderCreate) SetAccountID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *OrderCreate) SetVendor(v string) *OrderCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *OrderCreate) SetOrderNumber(v string) *OrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (_c *OrderCreate) SetVendorAccountNumber(v string) *OrderCreate {
	_c.mutation.SetVendorAccountNumber(v)
	return _c
}

// SetNillableVendorAccountNumber sets the "vendor_account_number" field if the given value is not nil.
func (_c *OrderCreate) SetNillableVendorAccountNumber(v *string) *OrderCreate {
	if v != nil {
		_c.SetVendorAccountNumber(*v)
	}
	return _c
}

// SetCustomerName sets the "customer_name" field.
func (_c *OrderCreate) SetCustomerName(v string) *OrderCreate {
	_c.mutation.SetCustomerName(v)
	return _c
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCustomerName(v *string) *OrderCreate {
	if v != nil {
		_c.SetCustomerName(*v)
	}
	return _c
}

// SetRepName sets the "rep_name" field.
func (_c *OrderCreate) SetRepName(v string) *OrderCreate {
	_c.mutation.SetRepName(v)
	return _c
}

// SetNillableRepName sets the "rep_name" field if the given value is not nil.
func (_c *OrderCreate) SetNillableRepName(v *string) *OrderCreate {
	if v != nil {
		_c.SetRepName(*v)
	}
	return _c
}

// SetOrderDate sets the "order_date" field.
func (_c *OrderCreate) SetOrderDate(v string) *OrderCreate {
	_c.mutation.SetOrderDate(v)
	return _c
}

// SetNillableOrderDate sets the "order_date" field if the given value is not nil.
func (_c *OrderCreate) SetNillableOrderDate(v *string) *OrderCreate {
	if v != nil {
		_c.SetOrderDate(*v)
	}
	return _c
}

// SetTotalPieces sets the "total_pieces" field.
func (_c *OrderCreate) SetTotalPieces(v int) *OrderCreate {
	_c.mutation.SetTotalPieces(v)
	return _c
}

// SetParseStatus sets the "parse_status" field.
func (_c *OrderCreate) SetParseStatus(v string) *OrderCreate {
	_c.mutation.SetParseStatus(v)
	return _c
}

// SetValidationRate sets the "validation_rate" field.
func (_c *OrderCreate) SetValidationRate(v float64) *OrderCreate {
	_c.mutation.SetValidationRate(v)
	return _c
}

// SetParsedAt sets the "parsed_at" field.
func (_c *OrderCreate) SetParsedAt(v time.Time) *OrderCreate {
	_c.mutation.SetParsedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *OrderCreate) SetAccount(v *Account) *OrderCreate {
	return _c.SetAccountID(v.ID)
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_c *OrderCreate) AddItemIDs(ids ...uuid.UUID) *OrderCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_c *OrderCreate) AddItems(v ...*OrderItem) *OrderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Order.account_id"`)}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Order.vendor"`)}
	}
	if v, ok := _c.mutation.Vendor(); ok {
		if err := order.VendorValidator(v); err != nil {
			return &ValidationError{Name: "vendor", err: fmt.Errorf(`ent: validator failed for field "Order.vendor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Order.order_number"`)}
	}
	if v, ok := _c.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPieces(); !ok {
		return &ValidationError{Name: "total_pieces", err: errors.New(`ent: missing required field "Order.total_pieces"`)}
	}
	if v, ok := _c.mutation.TotalPieces(); ok {
		if err := order.TotalPiecesValidator(v); err != nil {
			return &ValidationError{Name: "total_pieces", err: fmt.Errorf(`ent: validator failed for field "Order.total_pieces": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParseStatus(); !ok {
		return &ValidationError{Name: "parse_status", err: errors.New(`ent: missing required field "Order.parse_status"`)}
	}
	if v, ok := _c.mutation.ParseStatus(); ok {
		if err := order.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "Order.parse_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationRate(); !ok {
		return &ValidationError{Name: "validation_rate", err: errors.New(`ent: missing required field "Order.validation_rate"`)}
	}
	if _, ok := _c.mutation.ParsedAt(); !ok {
		return &ValidationError{Name: "parsed_at", err: errors.New(`ent: missing required field "Order.parsed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Order.account"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(order.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.VendorAccountNumber(); ok {
		_spec.SetField(order.FieldVendorAccountNumber, field.TypeString, value)
		_node.VendorAccountNumber = value
	}
	if value, ok := _c.mutation.CustomerName(); ok {
		_spec.SetField(order.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := _c.mutation.RepName(); ok {
		_spec.SetField(order.FieldRepName, field.TypeString, value)
		_node.RepName = value
	}
	if value, ok := _c.mutation.OrderDate(); ok {
		_spec.SetField(order.FieldOrderDate, field.TypeString, value)
		_node.OrderDate = value
	}
	if value, ok := _c.mutation.TotalPieces(); ok {
		_spec.SetField(order.FieldTotalPieces, field.TypeInt, value)
		_node.TotalPieces = value
	}
	if value, ok := _c.mutation.ParseStatus(); ok {
		_spec.SetField(order.FieldParseStatus, field.TypeString, value)
		_node.ParseStatus = value
	}
	if value, ok := _c.mutation.ValidationRate(); ok {
		_spec.SetField(order.FieldValidationRate, field.TypeFloat64, value)
		_node.ValidationRate = value
	}
	if value, ok := _c.mutation.ParsedAt(); ok {
		_spec.SetField(order.FieldParsedAt, field.TypeTime, value)
		_node.ParsedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
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
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreate) OnConflict(opts ...sql.ConflictOption) *OrderUpsertOne {
	_c.conflict = opts
	return &OrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreate) OnConflictColumns(columns ...string) *OrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertOne{
		create: _c,
	}
}

type (
	// OrderUpsertOne is the builder for "upsert"-ing
	//  one Order node.
	OrderUpsertOne struct {
		create *OrderCreate
	}

	// OrderUpsert is the "OnConflict" setter.
	OrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *OrderUpsert) SetAccountID(v uuid.UUID) *OrderUpsert {
	u.Set(order.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderUpsert) UpdateAccountID() *OrderUpsert {
	u.SetExcluded(order.FieldAccountID)
	return u
}

// SetVendor sets the "vendor" field.
func (u *OrderUpsert) SetVendor(v string) *OrderUpsert {
	u.Set(order.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *OrderUpsert) UpdateVendor() *OrderUpsert {
	u.SetExcluded(order.FieldVendor)
	return u
}

// SetOrderNumber sets the "order_number" field.
func (u *OrderUpsert) SetOrderNumber(v string) *OrderUpsert {
	u.Set(order.FieldOrderNumber, v)
	return u
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *OrderUpsert) UpdateOrderNumber() *OrderUpsert {
	u.SetExcluded(order.FieldOrderNumber)
	return u
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (u *OrderUpsert) SetVendorAccountNumber(v string) *OrderUpsert {
	u.Set(order.FieldVendorAccountNumber, v)
	return u
}

// UpdateVendorAccountNumber sets the "vendor_account_number" field to the value that was provided on create.
func (u *OrderUpsert) UpdateVendorAccountNumber() *OrderUpsert {
	u.SetExcluded(order.FieldVendorAccountNumber)
	return u
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (u *OrderUpsert) ClearVendorAccountNumber() *OrderUpsert {
	u.SetNull(order.FieldVendorAccountNumber)
	return u
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsert) SetCustomerName(v string) *OrderUpsert {
	u.Set(order.FieldCustomerName, v)
	return u
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCustomerName() *OrderUpsert {
	u.SetExcluded(order.FieldCustomerName)
	return u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsert) ClearCustomerName() *OrderUpsert {
	u.SetNull(order.FieldCustomerName)
	return u
}

// SetRepName sets the "rep_name" field.
func (u *OrderUpsert) SetRepName(v string) *OrderUpsert {
	u.Set(order.FieldRepName, v)
	return u
}

// UpdateRepName sets the "rep_name" field to the value that was provided on create.
func (u *OrderUpsert) UpdateRepName() *OrderUpsert {
	u.SetExcluded(order.FieldRepName)
	return u
}

// ClearRepName clears the value of the "rep_name" field.
func (u *OrderUpsert) ClearRepName() *OrderUpsert {
	u.SetNull(order.FieldRepName)
	return u
}

// SetOrderDate sets the "order_date" field.
func (u *OrderUpsert) SetOrderDate(v string) *OrderUpsert {
	u.Set(order.FieldOrderDate, v)
	return u
}

// UpdateOrderDate sets the "order_date" field to the value that was provided on create.
func (u *OrderUpsert) UpdateOrderDate() *OrderUpsert {
	u.SetExcluded(order.FieldOrderDate)
	return u
}

// ClearOrderDate clears the value of the "order_date" field.
func (u *OrderUpsert) ClearOrderDate() *OrderUpsert {
	u.SetNull(order.FieldOrderDate)
	return u
}

// SetTotalPieces sets the "total_pieces" field.
func (u *OrderUpsert) SetTotalPieces(v int) *OrderUpsert {
	u.Set(order.FieldTotalPieces, v)
	return u
}

// UpdateTotalPieces sets the "total_pieces" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTotalPieces() *OrderUpsert {
	u.SetExcluded(order.FieldTotalPieces)
	return u
}

// AddTotalPieces adds v to the "total_pieces" field.
func (u *OrderUpsert) AddTotalPieces(v int) *OrderUpsert {
	u.Add(order.FieldTotalPieces, v)
	return u
}

// SetParseStatus sets the "parse_status" field.
func (u *OrderUpsert) SetParseStatus(v string) *OrderUpsert {
	u.Set(order.FieldParseStatus, v)
	return u
}

// UpdateParseStatus sets the "parse_status" field to the value that was provided on create.
func (u *OrderUpsert) UpdateParseStatus() *OrderUpsert {
	u.SetExcluded(order.FieldParseStatus)
	return u
}

// SetValidationRate sets the "validation_rate" field.
func (u *OrderUpsert) SetValidationRate(v float64) *OrderUpsert {
	u.Set(order.FieldValidationRate, v)
	return u
}

// UpdateValidationRate sets the "validation_rate" field to the value that was provided on create.
func (u *OrderUpsert) UpdateValidationRate() *OrderUpsert {
	u.SetExcluded(order.FieldValidationRate)
	return u
}

// AddValidationRate adds v to the "validation_rate" field.
func (u *OrderUpsert) AddValidationRate(v float64) *OrderUpsert {
	u.Add(order.FieldValidationRate, v)
	return u
}

// SetParsedAt sets the "parsed_at" field.
func (u *OrderUpsert) SetParsedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldParsedAt, v)
	return u
}

// UpdateParsedAt sets the "parsed_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateParsedAt() *OrderUpsert {
	u.SetExcluded(order.FieldParsedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsert) SetCreatedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCreatedAt() *OrderUpsert {
	u.SetExcluded(order.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertOne) UpdateNewValues() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(order.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderUpsertOne) Ignore() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertOne) DoNothing() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreate.OnConflict
// documentation for more info.
func (u *OrderUpsertOne) Update(set func(*OrderUpsert)) *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *OrderUpsertOne) SetAccountID(v uuid.UUID) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateAccountID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateAccountID()
	})
}

// SetVendor sets the "vendor" field.
func (u *OrderUpsertOne) SetVendor(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateVendor() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVendor()
	})
}

// SetOrderNumber sets the "order_number" field.
func (u *OrderUpsertOne) SetOrderNumber(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderNumber(v)
	})
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateOrderNumber() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderNumber()
	})
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (u *OrderUpsertOne) SetVendorAccountNumber(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetVendorAccountNumber(v)
	})
}

// UpdateVendorAccountNumber sets the "vendor_account_number" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateVendorAccountNumber() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVendorAccountNumber()
	})
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (u *OrderUpsertOne) ClearVendorAccountNumber() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearVendorAccountNumber()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsertOne) SetCustomerName(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCustomerName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerName()
	})
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsertOne) ClearCustomerName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerName()
	})
}

// SetRepName sets the "rep_name" field.
func (u *OrderUpsertOne) SetRepName(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetRepName(v)
	})
}

// UpdateRepName sets the "rep_name" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateRepName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRepName()
	})
}

// ClearRepName clears the value of the "rep_name" field.
func (u *OrderUpsertOne) ClearRepName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearRepName()
	})
}

// SetOrderDate sets the "order_date" field.
func (u *OrderUpsertOne) SetOrderDate(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderDate(v)
	})
}

// UpdateOrderDate sets the "order_date" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateOrderDate() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderDate()
	})
}

// ClearOrderDate clears the value of the "order_date" field.
func (u *OrderUpsertOne) ClearOrderDate() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearOrderDate()
	})
}

// SetTotalPieces sets the "total_pieces" field.
func (u *OrderUpsertOne) SetTotalPieces(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPieces(v)
	})
}

// AddTotalPieces adds v to the "total_pieces" field.
func (u *OrderUpsertOne) AddTotalPieces(v int) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPieces(v)
	})
}

// UpdateTotalPieces sets the "total_pieces" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTotalPieces() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPieces()
	})
}

// SetParseStatus sets the "parse_status" field.
func (u *OrderUpsertOne) SetParseStatus(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetParseStatus(v)
	})
}

// UpdateParseStatus sets the "parse_status" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateParseStatus() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateParseStatus()
	})
}

// SetValidationRate sets the "validation_rate" field.
func (u *OrderUpsertOne) SetValidationRate(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetValidationRate(v)
	})
}

// AddValidationRate adds v to the "validation_rate" field.
func (u *OrderUpsertOne) AddValidationRate(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddValidationRate(v)
	})
}

// UpdateValidationRate sets the "validation_rate" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateValidationRate() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateValidationRate()
	})
}

// SetParsedAt sets the "parsed_at" field.
func (u *OrderUpsertOne) SetParsedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetParsedAt(v)
	})
}

// UpdateParsedAt sets the "parsed_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateParsedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateParsedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsertOne) SetCreatedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCreatedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrderUpsertOne.ID is not supported by MySQL driver. Use OrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
	conflict []sql.ConflictOption
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderUpsertBulk {
	_c.conflict = opts
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflictColumns(columns ...string) *OrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OrderUpsertBulk is the builder for "upsert"-ing
// a bulk of Order nodes.
type OrderUpsertBulk struct {
	create *OrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertBulk) UpdateNewValues() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(order.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderUpsertBulk) Ignore() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertBulk) DoNothing() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreateBulk.OnConflict
// documentation for more info.
func (u *OrderUpsertBulk) Update(set func(*OrderUpsert)) *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *OrderUpsertBulk) SetAccountID(v uuid.UUID) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateAccountID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateAccountID()
	})
}

// SetVendor sets the "vendor" field.
func (u *OrderUpsertBulk) SetVendor(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateVendor() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVendor()
	})
}

// SetOrderNumber sets the "order_number" field.
func (u *OrderUpsertBulk) SetOrderNumber(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderNumber(v)
	})
}

// UpdateOrderNumber sets the "order_number" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateOrderNumber() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderNumber()
	})
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (u *OrderUpsertBulk) SetVendorAccountNumber(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetVendorAccountNumber(v)
	})
}

// UpdateVendorAccountNumber sets the "vendor_account_number" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateVendorAccountNumber() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateVendorAccountNumber()
	})
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (u *OrderUpsertBulk) ClearVendorAccountNumber() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearVendorAccountNumber()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *OrderUpsertBulk) SetCustomerName(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCustomerName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCustomerName()
	})
}

// ClearCustomerName clears the value of the "customer_name" field.
func (u *OrderUpsertBulk) ClearCustomerName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearCustomerName()
	})
}

// SetRepName sets the "rep_name" field.
func (u *OrderUpsertBulk) SetRepName(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetRepName(v)
	})
}

// UpdateRepName sets the "rep_name" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateRepName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRepName()
	})
}

// ClearRepName clears the value of the "rep_name" field.
func (u *OrderUpsertBulk) ClearRepName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearRepName()
	})
}

// SetOrderDate sets the "order_date" field.
func (u *OrderUpsertBulk) SetOrderDate(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderDate(v)
	})
}

// UpdateOrderDate sets the "order_date" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateOrderDate() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderDate()
	})
}

// ClearOrderDate clears the value of the "order_date" field.
func (u *OrderUpsertBulk) ClearOrderDate() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearOrderDate()
	})
}

// SetTotalPieces sets the "total_pieces" field.
func (u *OrderUpsertBulk) SetTotalPieces(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPieces(v)
	})
}

// AddTotalPieces adds v to the "total_pieces" field.
func (u *OrderUpsertBulk) AddTotalPieces(v int) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPieces(v)
	})
}

// UpdateTotalPieces sets the "total_pieces" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTotalPieces() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPieces()
	})
}

// SetParseStatus sets the "parse_status" field.
func (u *OrderUpsertBulk) SetParseStatus(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetParseStatus(v)
	})
}

// UpdateParseStatus sets the "parse_status" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateParseStatus() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateParseStatus()
	})
}

// SetValidationRate sets the "validation_rate" field.
func (u *OrderUpsertBulk) SetValidationRate(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetValidationRate(v)
	})
}

// AddValidationRate adds v to the "validation_rate" field.
func (u *OrderUpsertBulk) AddValidationRate(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddValidationRate(v)
	})
}

// UpdateValidationRate sets the "validation_rate" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateValidationRate() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateValidationRate()
	})
}

// SetParsedAt sets the "parsed_at" field.
func (u *OrderUpsertBulk) SetParsedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetParsedAt(v)
	})
}

// UpdateParsedAt sets the "parsed_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateParsedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateParsedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsertBulk) SetCreatedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCreatedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
