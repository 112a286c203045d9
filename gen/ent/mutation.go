// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/framedesk/order-intake/gen/ent/account"
	"github.com/framedesk/order-intake/gen/ent/catalogentry"
	"github.com/framedesk/order-intake/gen/ent/order"
	"github.com/framedesk/order-intake/gen/ent/orderitem"
	"github.com/framedesk/order-intake/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount      = "Account"
	TypeCatalogEntry = "CatalogEntry"
	TypeOrder        = "Order"
	TypeOrderItem    = "OrderItem"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	orders        map[uuid.UUID]struct{}
	removedorders map[uuid.UUID]struct{}
	clearedorders bool
	done          bool
	oldValue      func(context.Context) (*Account, error)
	predicates    []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id uuid.UUID) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AccountMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AccountMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AccountMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *AccountMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *AccountMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *AccountMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *AccountMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *AccountMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *AccountMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *AccountMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, account.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldName:
		return m.Name()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldName:
		return m.OldName(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldName:
		m.ResetName()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.orders != nil {
		edges = append(edges, account.EdgeOrders)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedorders != nil {
		edges = append(edges, account.EdgeOrders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedorders {
		edges = append(edges, account.EdgeOrders)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeOrders:
		return m.clearedorders
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeOrders:
		m.ResetOrders()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// CatalogEntryMutation represents an operation that mutates the CatalogEntry nodes in the graph.
type CatalogEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	vendor_id           *string
	brand               *string
	model               *string
	color_code          *string
	color_name          *string
	sku                 *string
	upc                 *string
	ean                 *string
	wholesale_cost      *float64
	addwholesale_cost   *float64
	msrp                *float64
	addmsrp             *float64
	eye_size            *int
	addeye_size         *int
	bridge              *int
	addbridge           *int
	temple_length       *int
	addtemple_length    *int
	full_size           *string
	material            *string
	gender              *string
	in_stock            *bool
	availability_status *string
	crawled_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*CatalogEntry, error)
	predicates          []predicate.CatalogEntry
}

var _ ent.Mutation = (*CatalogEntryMutation)(nil)

// catalogentryOption allows management of the mutation configuration using functional options.
type catalogentryOption func(*CatalogEntryMutation)

// newCatalogEntryMutation creates new mutation for the CatalogEntry entity.
func newCatalogEntryMutation(c config, op Op, opts ...catalogentryOption) *CatalogEntryMutation {
	m := &CatalogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCatalogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCatalogEntryID sets the ID field of the mutation.
func withCatalogEntryID(id int) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CatalogEntry
		)
		m.oldValue = func(ctx context.Context) (*CatalogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CatalogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCatalogEntry sets the old CatalogEntry of the mutation.
func withCatalogEntry(node *CatalogEntry) catalogentryOption {
	return func(m *CatalogEntryMutation) {
		m.oldValue = func(context.Context) (*CatalogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CatalogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CatalogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CatalogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CatalogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CatalogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *CatalogEntryMutation) SetVendorID(s string) {
	m.vendor_id = &s
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *CatalogEntryMutation) VendorID() (r string, exists bool) {
	v := m.vendor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldVendorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *CatalogEntryMutation) ResetVendorID() {
	m.vendor_id = nil
}

// SetBrand sets the "brand" field.
func (m *CatalogEntryMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *CatalogEntryMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldBrand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ResetBrand resets all changes to the "brand" field.
func (m *CatalogEntryMutation) ResetBrand() {
	m.brand = nil
}

// SetModel sets the "model" field.
func (m *CatalogEntryMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *CatalogEntryMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *CatalogEntryMutation) ResetModel() {
	m.model = nil
}

// SetColorCode sets the "color_code" field.
func (m *CatalogEntryMutation) SetColorCode(s string) {
	m.color_code = &s
}

// ColorCode returns the value of the "color_code" field in the mutation.
func (m *CatalogEntryMutation) ColorCode() (r string, exists bool) {
	v := m.color_code
	if v == nil {
		return
	}
	return *v, true
}

// OldColorCode returns the old "color_code" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldColorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorCode: %w", err)
	}
	return oldValue.ColorCode, nil
}

// ResetColorCode resets all changes to the "color_code" field.
func (m *CatalogEntryMutation) ResetColorCode() {
	m.color_code = nil
}

// SetColorName sets the "color_name" field.
func (m *CatalogEntryMutation) SetColorName(s string) {
	m.color_name = &s
}

// ColorName returns the value of the "color_name" field in the mutation.
func (m *CatalogEntryMutation) ColorName() (r string, exists bool) {
	v := m.color_name
	if v == nil {
		return
	}
	return *v, true
}

// OldColorName returns the old "color_name" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldColorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorName: %w", err)
	}
	return oldValue.ColorName, nil
}

// ClearColorName clears the value of the "color_name" field.
func (m *CatalogEntryMutation) ClearColorName() {
	m.color_name = nil
	m.clearedFields[catalogentry.FieldColorName] = struct{}{}
}

// ColorNameCleared returns if the "color_name" field was cleared in this mutation.
func (m *CatalogEntryMutation) ColorNameCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldColorName]
	return ok
}

// ResetColorName resets all changes to the "color_name" field.
func (m *CatalogEntryMutation) ResetColorName() {
	m.color_name = nil
	delete(m.clearedFields, catalogentry.FieldColorName)
}

// SetSku sets the "sku" field.
func (m *CatalogEntryMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *CatalogEntryMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ClearSku clears the value of the "sku" field.
func (m *CatalogEntryMutation) ClearSku() {
	m.sku = nil
	m.clearedFields[catalogentry.FieldSku] = struct{}{}
}

// SkuCleared returns if the "sku" field was cleared in this mutation.
func (m *CatalogEntryMutation) SkuCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldSku]
	return ok
}

// ResetSku resets all changes to the "sku" field.
func (m *CatalogEntryMutation) ResetSku() {
	m.sku = nil
	delete(m.clearedFields, catalogentry.FieldSku)
}

// SetUpc sets the "upc" field.
func (m *CatalogEntryMutation) SetUpc(s string) {
	m.upc = &s
}

// Upc returns the value of the "upc" field in the mutation.
func (m *CatalogEntryMutation) Upc() (r string, exists bool) {
	v := m.upc
	if v == nil {
		return
	}
	return *v, true
}

// OldUpc returns the old "upc" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldUpc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpc: %w", err)
	}
	return oldValue.Upc, nil
}

// ClearUpc clears the value of the "upc" field.
func (m *CatalogEntryMutation) ClearUpc() {
	m.upc = nil
	m.clearedFields[catalogentry.FieldUpc] = struct{}{}
}

// UpcCleared returns if the "upc" field was cleared in this mutation.
func (m *CatalogEntryMutation) UpcCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldUpc]
	return ok
}

// ResetUpc resets all changes to the "upc" field.
func (m *CatalogEntryMutation) ResetUpc() {
	m.upc = nil
	delete(m.clearedFields, catalogentry.FieldUpc)
}

// SetEan sets the "ean" field.
func (m *CatalogEntryMutation) SetEan(s string) {
	m.ean = &s
}

// Ean returns the value of the "ean" field in the mutation.
func (m *CatalogEntryMutation) Ean() (r string, exists bool) {
	v := m.ean
	if v == nil {
		return
	}
	return *v, true
}

// OldEan returns the old "ean" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldEan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEan: %w", err)
	}
	return oldValue.Ean, nil
}

// ClearEan clears the value of the "ean" field.
func (m *CatalogEntryMutation) ClearEan() {
	m.ean = nil
	m.clearedFields[catalogentry.FieldEan] = struct{}{}
}

// EanCleared returns if the "ean" field was cleared in this mutation.
func (m *CatalogEntryMutation) EanCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldEan]
	return ok
}

// ResetEan resets all changes to the "ean" field.
func (m *CatalogEntryMutation) ResetEan() {
	m.ean = nil
	delete(m.clearedFields, catalogentry.FieldEan)
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (m *CatalogEntryMutation) SetWholesaleCost(f float64) {
	m.wholesale_cost = &f
	m.addwholesale_cost = nil
}

// WholesaleCost returns the value of the "wholesale_cost" field in the mutation.
func (m *CatalogEntryMutation) WholesaleCost() (r float64, exists bool) {
	v := m.wholesale_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldWholesaleCost returns the old "wholesale_cost" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldWholesaleCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWholesaleCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWholesaleCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWholesaleCost: %w", err)
	}
	return oldValue.WholesaleCost, nil
}

// AddWholesaleCost adds f to the "wholesale_cost" field.
func (m *CatalogEntryMutation) AddWholesaleCost(f float64) {
	if m.addwholesale_cost != nil {
		*m.addwholesale_cost += f
	} else {
		m.addwholesale_cost = &f
	}
}

// AddedWholesaleCost returns the value that was added to the "wholesale_cost" field in this mutation.
func (m *CatalogEntryMutation) AddedWholesaleCost() (r float64, exists bool) {
	v := m.addwholesale_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (m *CatalogEntryMutation) ClearWholesaleCost() {
	m.wholesale_cost = nil
	m.addwholesale_cost = nil
	m.clearedFields[catalogentry.FieldWholesaleCost] = struct{}{}
}

// WholesaleCostCleared returns if the "wholesale_cost" field was cleared in this mutation.
func (m *CatalogEntryMutation) WholesaleCostCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldWholesaleCost]
	return ok
}

// ResetWholesaleCost resets all changes to the "wholesale_cost" field.
func (m *CatalogEntryMutation) ResetWholesaleCost() {
	m.wholesale_cost = nil
	m.addwholesale_cost = nil
	delete(m.clearedFields, catalogentry.FieldWholesaleCost)
}

// SetMsrp sets the "msrp" field.
func (m *CatalogEntryMutation) SetMsrp(f float64) {
	m.msrp = &f
	m.addmsrp = nil
}

// Msrp returns the value of the "msrp" field in the mutation.
func (m *CatalogEntryMutation) Msrp() (r float64, exists bool) {
	v := m.msrp
	if v == nil {
		return
	}
	return *v, true
}

// OldMsrp returns the old "msrp" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldMsrp(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsrp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsrp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsrp: %w", err)
	}
	return oldValue.Msrp, nil
}

// AddMsrp adds f to the "msrp" field.
func (m *CatalogEntryMutation) AddMsrp(f float64) {
	if m.addmsrp != nil {
		*m.addmsrp += f
	} else {
		m.addmsrp = &f
	}
}

// AddedMsrp returns the value that was added to the "msrp" field in this mutation.
func (m *CatalogEntryMutation) AddedMsrp() (r float64, exists bool) {
	v := m.addmsrp
	if v == nil {
		return
	}
	return *v, true
}

// ClearMsrp clears the value of the "msrp" field.
func (m *CatalogEntryMutation) ClearMsrp() {
	m.msrp = nil
	m.addmsrp = nil
	m.clearedFields[catalogentry.FieldMsrp] = struct{}{}
}

// MsrpCleared returns if the "msrp" field was cleared in this mutation.
func (m *CatalogEntryMutation) MsrpCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldMsrp]
	return ok
}

// ResetMsrp resets all changes to the "msrp" field.
func (m *CatalogEntryMutation) ResetMsrp() {
	m.msrp = nil
	m.addmsrp = nil
	delete(m.clearedFields, catalogentry.FieldMsrp)
}

// SetEyeSize sets the "eye_size" field.
func (m *CatalogEntryMutation) SetEyeSize(i int) {
	m.eye_size = &i
	m.addeye_size = nil
}

// EyeSize returns the value of the "eye_size" field in the mutation.
func (m *CatalogEntryMutation) EyeSize() (r int, exists bool) {
	v := m.eye_size
	if v == nil {
		return
	}
	return *v, true
}

// OldEyeSize returns the old "eye_size" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldEyeSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEyeSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEyeSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEyeSize: %w", err)
	}
	return oldValue.EyeSize, nil
}

// AddEyeSize adds i to the "eye_size" field.
func (m *CatalogEntryMutation) AddEyeSize(i int) {
	if m.addeye_size != nil {
		*m.addeye_size += i
	} else {
		m.addeye_size = &i
	}
}

// AddedEyeSize returns the value that was added to the "eye_size" field in this mutation.
func (m *CatalogEntryMutation) AddedEyeSize() (r int, exists bool) {
	v := m.addeye_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetEyeSize resets all changes to the "eye_size" field.
func (m *CatalogEntryMutation) ResetEyeSize() {
	m.eye_size = nil
	m.addeye_size = nil
}

// SetBridge sets the "bridge" field.
func (m *CatalogEntryMutation) SetBridge(i int) {
	m.bridge = &i
	m.addbridge = nil
}

// Bridge returns the value of the "bridge" field in the mutation.
func (m *CatalogEntryMutation) Bridge() (r int, exists bool) {
	v := m.bridge
	if v == nil {
		return
	}
	return *v, true
}

// OldBridge returns the old "bridge" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldBridge(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBridge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBridge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBridge: %w", err)
	}
	return oldValue.Bridge, nil
}

// AddBridge adds i to the "bridge" field.
func (m *CatalogEntryMutation) AddBridge(i int) {
	if m.addbridge != nil {
		*m.addbridge += i
	} else {
		m.addbridge = &i
	}
}

// AddedBridge returns the value that was added to the "bridge" field in this mutation.
func (m *CatalogEntryMutation) AddedBridge() (r int, exists bool) {
	v := m.addbridge
	if v == nil {
		return
	}
	return *v, true
}

// ClearBridge clears the value of the "bridge" field.
func (m *CatalogEntryMutation) ClearBridge() {
	m.bridge = nil
	m.addbridge = nil
	m.clearedFields[catalogentry.FieldBridge] = struct{}{}
}

// BridgeCleared returns if the "bridge" field was cleared in this mutation.
func (m *CatalogEntryMutation) BridgeCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldBridge]
	return ok
}

// ResetBridge resets all changes to the "bridge" field.
func (m *CatalogEntryMutation) ResetBridge() {
	m.bridge = nil
	m.addbridge = nil
	delete(m.clearedFields, catalogentry.FieldBridge)
}

// SetTempleLength sets the "temple_length" field.
func (m *CatalogEntryMutation) SetTempleLength(i int) {
	m.temple_length = &i
	m.addtemple_length = nil
}

// TempleLength returns the value of the "temple_length" field in the mutation.
func (m *CatalogEntryMutation) TempleLength() (r int, exists bool) {
	v := m.temple_length
	if v == nil {
		return
	}
	return *v, true
}

// OldTempleLength returns the old "temple_length" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldTempleLength(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTempleLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTempleLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTempleLength: %w", err)
	}
	return oldValue.TempleLength, nil
}

// AddTempleLength adds i to the "temple_length" field.
func (m *CatalogEntryMutation) AddTempleLength(i int) {
	if m.addtemple_length != nil {
		*m.addtemple_length += i
	} else {
		m.addtemple_length = &i
	}
}

// AddedTempleLength returns the value that was added to the "temple_length" field in this mutation.
func (m *CatalogEntryMutation) AddedTempleLength() (r int, exists bool) {
	v := m.addtemple_length
	if v == nil {
		return
	}
	return *v, true
}

// ClearTempleLength clears the value of the "temple_length" field.
func (m *CatalogEntryMutation) ClearTempleLength() {
	m.temple_length = nil
	m.addtemple_length = nil
	m.clearedFields[catalogentry.FieldTempleLength] = struct{}{}
}

// TempleLengthCleared returns if the "temple_length" field was cleared in this mutation.
func (m *CatalogEntryMutation) TempleLengthCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldTempleLength]
	return ok
}

// ResetTempleLength resets all changes to the "temple_length" field.
func (m *CatalogEntryMutation) ResetTempleLength() {
	m.temple_length = nil
	m.addtemple_length = nil
	delete(m.clearedFields, catalogentry.FieldTempleLength)
}

// SetFullSize sets the "full_size" field.
func (m *CatalogEntryMutation) SetFullSize(s string) {
	m.full_size = &s
}

// FullSize returns the value of the "full_size" field in the mutation.
func (m *CatalogEntryMutation) FullSize() (r string, exists bool) {
	v := m.full_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFullSize returns the old "full_size" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldFullSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullSize: %w", err)
	}
	return oldValue.FullSize, nil
}

// ClearFullSize clears the value of the "full_size" field.
func (m *CatalogEntryMutation) ClearFullSize() {
	m.full_size = nil
	m.clearedFields[catalogentry.FieldFullSize] = struct{}{}
}

// FullSizeCleared returns if the "full_size" field was cleared in this mutation.
func (m *CatalogEntryMutation) FullSizeCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldFullSize]
	return ok
}

// ResetFullSize resets all changes to the "full_size" field.
func (m *CatalogEntryMutation) ResetFullSize() {
	m.full_size = nil
	delete(m.clearedFields, catalogentry.FieldFullSize)
}

// SetMaterial sets the "material" field.
func (m *CatalogEntryMutation) SetMaterial(s string) {
	m.material = &s
}

// Material returns the value of the "material" field in the mutation.
func (m *CatalogEntryMutation) Material() (r string, exists bool) {
	v := m.material
	if v == nil {
		return
	}
	return *v, true
}

// OldMaterial returns the old "material" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldMaterial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaterial: %w", err)
	}
	return oldValue.Material, nil
}

// ClearMaterial clears the value of the "material" field.
func (m *CatalogEntryMutation) ClearMaterial() {
	m.material = nil
	m.clearedFields[catalogentry.FieldMaterial] = struct{}{}
}

// MaterialCleared returns if the "material" field was cleared in this mutation.
func (m *CatalogEntryMutation) MaterialCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldMaterial]
	return ok
}

// ResetMaterial resets all changes to the "material" field.
func (m *CatalogEntryMutation) ResetMaterial() {
	m.material = nil
	delete(m.clearedFields, catalogentry.FieldMaterial)
}

// SetGender sets the "gender" field.
func (m *CatalogEntryMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *CatalogEntryMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *CatalogEntryMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[catalogentry.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *CatalogEntryMutation) GenderCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *CatalogEntryMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, catalogentry.FieldGender)
}

// SetInStock sets the "in_stock" field.
func (m *CatalogEntryMutation) SetInStock(b bool) {
	m.in_stock = &b
}

// InStock returns the value of the "in_stock" field in the mutation.
func (m *CatalogEntryMutation) InStock() (r bool, exists bool) {
	v := m.in_stock
	if v == nil {
		return
	}
	return *v, true
}

// OldInStock returns the old "in_stock" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldInStock(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInStock is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInStock requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInStock: %w", err)
	}
	return oldValue.InStock, nil
}

// ResetInStock resets all changes to the "in_stock" field.
func (m *CatalogEntryMutation) ResetInStock() {
	m.in_stock = nil
}

// SetAvailabilityStatus sets the "availability_status" field.
func (m *CatalogEntryMutation) SetAvailabilityStatus(s string) {
	m.availability_status = &s
}

// AvailabilityStatus returns the value of the "availability_status" field in the mutation.
func (m *CatalogEntryMutation) AvailabilityStatus() (r string, exists bool) {
	v := m.availability_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailabilityStatus returns the old "availability_status" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldAvailabilityStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailabilityStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailabilityStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailabilityStatus: %w", err)
	}
	return oldValue.AvailabilityStatus, nil
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (m *CatalogEntryMutation) ClearAvailabilityStatus() {
	m.availability_status = nil
	m.clearedFields[catalogentry.FieldAvailabilityStatus] = struct{}{}
}

// AvailabilityStatusCleared returns if the "availability_status" field was cleared in this mutation.
func (m *CatalogEntryMutation) AvailabilityStatusCleared() bool {
	_, ok := m.clearedFields[catalogentry.FieldAvailabilityStatus]
	return ok
}

// ResetAvailabilityStatus resets all changes to the "availability_status" field.
func (m *CatalogEntryMutation) ResetAvailabilityStatus() {
	m.availability_status = nil
	delete(m.clearedFields, catalogentry.FieldAvailabilityStatus)
}

// SetCrawledAt sets the "crawled_at" field.
func (m *CatalogEntryMutation) SetCrawledAt(t time.Time) {
	m.crawled_at = &t
}

// CrawledAt returns the value of the "crawled_at" field in the mutation.
func (m *CatalogEntryMutation) CrawledAt() (r time.Time, exists bool) {
	v := m.crawled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCrawledAt returns the old "crawled_at" field's value of the CatalogEntry entity.
// If the CatalogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CatalogEntryMutation) OldCrawledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrawledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrawledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrawledAt: %w", err)
	}
	return oldValue.CrawledAt, nil
}

// ResetCrawledAt resets all changes to the "crawled_at" field.
func (m *CatalogEntryMutation) ResetCrawledAt() {
	m.crawled_at = nil
}

// Where appends a list predicates to the CatalogEntryMutation builder.
func (m *CatalogEntryMutation) Where(ps ...predicate.CatalogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CatalogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CatalogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CatalogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CatalogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CatalogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CatalogEntry).
func (m *CatalogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CatalogEntryMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.vendor_id != nil {
		fields = append(fields, catalogentry.FieldVendorID)
	}
	if m.brand != nil {
		fields = append(fields, catalogentry.FieldBrand)
	}
	if m.model != nil {
		fields = append(fields, catalogentry.FieldModel)
	}
	if m.color_code != nil {
		fields = append(fields, catalogentry.FieldColorCode)
	}
	if m.color_name != nil {
		fields = append(fields, catalogentry.FieldColorName)
	}
	if m.sku != nil {
		fields = append(fields, catalogentry.FieldSku)
	}
	if m.upc != nil {
		fields = append(fields, catalogentry.FieldUpc)
	}
	if m.ean != nil {
		fields = append(fields, catalogentry.FieldEan)
	}
	if m.wholesale_cost != nil {
		fields = append(fields, catalogentry.FieldWholesaleCost)
	}
	if m.msrp != nil {
		fields = append(fields, catalogentry.FieldMsrp)
	}
	if m.eye_size != nil {
		fields = append(fields, catalogentry.FieldEyeSize)
	}
	if m.bridge != nil {
		fields = append(fields, catalogentry.FieldBridge)
	}
	if m.temple_length != nil {
		fields = append(fields, catalogentry.FieldTempleLength)
	}
	if m.full_size != nil {
		fields = append(fields, catalogentry.FieldFullSize)
	}
	if m.material != nil {
		fields = append(fields, catalogentry.FieldMaterial)
	}
	if m.gender != nil {
		fields = append(fields, catalogentry.FieldGender)
	}
	if m.in_stock != nil {
		fields = append(fields, catalogentry.FieldInStock)
	}
	if m.availability_status != nil {
		fields = append(fields, catalogentry.FieldAvailabilityStatus)
	}
	if m.crawled_at != nil {
		fields = append(fields, catalogentry.FieldCrawledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CatalogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldVendorID:
		return m.VendorID()
	case catalogentry.FieldBrand:
		return m.Brand()
	case catalogentry.FieldModel:
		return m.Model()
	case catalogentry.FieldColorCode:
		return m.ColorCode()
	case catalogentry.FieldColorName:
		return m.ColorName()
	case catalogentry.FieldSku:
		return m.Sku()
	case catalogentry.FieldUpc:
		return m.Upc()
	case catalogentry.FieldEan:
		return m.Ean()
	case catalogentry.FieldWholesaleCost:
		return m.WholesaleCost()
	case catalogentry.FieldMsrp:
		return m.Msrp()
	case catalogentry.FieldEyeSize:
		return m.EyeSize()
	case catalogentry.FieldBridge:
		return m.Bridge()
	case catalogentry.FieldTempleLength:
		return m.TempleLength()
	case catalogentry.FieldFullSize:
		return m.FullSize()
	case catalogentry.FieldMaterial:
		return m.Material()
	case catalogentry.FieldGender:
		return m.Gender()
	case catalogentry.FieldInStock:
		return m.InStock()
	case catalogentry.FieldAvailabilityStatus:
		return m.AvailabilityStatus()
	case catalogentry.FieldCrawledAt:
		return m.CrawledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CatalogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case catalogentry.FieldVendorID:
		return m.OldVendorID(ctx)
	case catalogentry.FieldBrand:
		return m.OldBrand(ctx)
	case catalogentry.FieldModel:
		return m.OldModel(ctx)
	case catalogentry.FieldColorCode:
		return m.OldColorCode(ctx)
	case catalogentry.FieldColorName:
		return m.OldColorName(ctx)
	case catalogentry.FieldSku:
		return m.OldSku(ctx)
	case catalogentry.FieldUpc:
		return m.OldUpc(ctx)
	case catalogentry.FieldEan:
		return m.OldEan(ctx)
	case catalogentry.FieldWholesaleCost:
		return m.OldWholesaleCost(ctx)
	case catalogentry.FieldMsrp:
		return m.OldMsrp(ctx)
	case catalogentry.FieldEyeSize:
		return m.OldEyeSize(ctx)
	case catalogentry.FieldBridge:
		return m.OldBridge(ctx)
	case catalogentry.FieldTempleLength:
		return m.OldTempleLength(ctx)
	case catalogentry.FieldFullSize:
		return m.OldFullSize(ctx)
	case catalogentry.FieldMaterial:
		return m.OldMaterial(ctx)
	case catalogentry.FieldGender:
		return m.OldGender(ctx)
	case catalogentry.FieldInStock:
		return m.OldInStock(ctx)
	case catalogentry.FieldAvailabilityStatus:
		return m.OldAvailabilityStatus(ctx)
	case catalogentry.FieldCrawledAt:
		return m.OldCrawledAt(ctx)
	}
	return nil, fmt.Errorf("unknown CatalogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldVendorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case catalogentry.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case catalogentry.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case catalogentry.FieldColorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorCode(v)
		return nil
	case catalogentry.FieldColorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorName(v)
		return nil
	case catalogentry.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case catalogentry.FieldUpc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpc(v)
		return nil
	case catalogentry.FieldEan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEan(v)
		return nil
	case catalogentry.FieldWholesaleCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWholesaleCost(v)
		return nil
	case catalogentry.FieldMsrp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsrp(v)
		return nil
	case catalogentry.FieldEyeSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEyeSize(v)
		return nil
	case catalogentry.FieldBridge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBridge(v)
		return nil
	case catalogentry.FieldTempleLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTempleLength(v)
		return nil
	case catalogentry.FieldFullSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullSize(v)
		return nil
	case catalogentry.FieldMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaterial(v)
		return nil
	case catalogentry.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case catalogentry.FieldInStock:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInStock(v)
		return nil
	case catalogentry.FieldAvailabilityStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailabilityStatus(v)
		return nil
	case catalogentry.FieldCrawledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrawledAt(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CatalogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addwholesale_cost != nil {
		fields = append(fields, catalogentry.FieldWholesaleCost)
	}
	if m.addmsrp != nil {
		fields = append(fields, catalogentry.FieldMsrp)
	}
	if m.addeye_size != nil {
		fields = append(fields, catalogentry.FieldEyeSize)
	}
	if m.addbridge != nil {
		fields = append(fields, catalogentry.FieldBridge)
	}
	if m.addtemple_length != nil {
		fields = append(fields, catalogentry.FieldTempleLength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CatalogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case catalogentry.FieldWholesaleCost:
		return m.AddedWholesaleCost()
	case catalogentry.FieldMsrp:
		return m.AddedMsrp()
	case catalogentry.FieldEyeSize:
		return m.AddedEyeSize()
	case catalogentry.FieldBridge:
		return m.AddedBridge()
	case catalogentry.FieldTempleLength:
		return m.AddedTempleLength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CatalogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case catalogentry.FieldWholesaleCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWholesaleCost(v)
		return nil
	case catalogentry.FieldMsrp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMsrp(v)
		return nil
	case catalogentry.FieldEyeSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEyeSize(v)
		return nil
	case catalogentry.FieldBridge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBridge(v)
		return nil
	case catalogentry.FieldTempleLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTempleLength(v)
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CatalogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(catalogentry.FieldColorName) {
		fields = append(fields, catalogentry.FieldColorName)
	}
	if m.FieldCleared(catalogentry.FieldSku) {
		fields = append(fields, catalogentry.FieldSku)
	}
	if m.FieldCleared(catalogentry.FieldUpc) {
		fields = append(fields, catalogentry.FieldUpc)
	}
	if m.FieldCleared(catalogentry.FieldEan) {
		fields = append(fields, catalogentry.FieldEan)
	}
	if m.FieldCleared(catalogentry.FieldWholesaleCost) {
		fields = append(fields, catalogentry.FieldWholesaleCost)
	}
	if m.FieldCleared(catalogentry.FieldMsrp) {
		fields = append(fields, catalogentry.FieldMsrp)
	}
	if m.FieldCleared(catalogentry.FieldBridge) {
		fields = append(fields, catalogentry.FieldBridge)
	}
	if m.FieldCleared(catalogentry.FieldTempleLength) {
		fields = append(fields, catalogentry.FieldTempleLength)
	}
	if m.FieldCleared(catalogentry.FieldFullSize) {
		fields = append(fields, catalogentry.FieldFullSize)
	}
	if m.FieldCleared(catalogentry.FieldMaterial) {
		fields = append(fields, catalogentry.FieldMaterial)
	}
	if m.FieldCleared(catalogentry.FieldGender) {
		fields = append(fields, catalogentry.FieldGender)
	}
	if m.FieldCleared(catalogentry.FieldAvailabilityStatus) {
		fields = append(fields, catalogentry.FieldAvailabilityStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CatalogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ClearField(name string) error {
	switch name {
	case catalogentry.FieldColorName:
		m.ClearColorName()
		return nil
	case catalogentry.FieldSku:
		m.ClearSku()
		return nil
	case catalogentry.FieldUpc:
		m.ClearUpc()
		return nil
	case catalogentry.FieldEan:
		m.ClearEan()
		return nil
	case catalogentry.FieldWholesaleCost:
		m.ClearWholesaleCost()
		return nil
	case catalogentry.FieldMsrp:
		m.ClearMsrp()
		return nil
	case catalogentry.FieldBridge:
		m.ClearBridge()
		return nil
	case catalogentry.FieldTempleLength:
		m.ClearTempleLength()
		return nil
	case catalogentry.FieldFullSize:
		m.ClearFullSize()
		return nil
	case catalogentry.FieldMaterial:
		m.ClearMaterial()
		return nil
	case catalogentry.FieldGender:
		m.ClearGender()
		return nil
	case catalogentry.FieldAvailabilityStatus:
		m.ClearAvailabilityStatus()
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CatalogEntryMutation) ResetField(name string) error {
	switch name {
	case catalogentry.FieldVendorID:
		m.ResetVendorID()
		return nil
	case catalogentry.FieldBrand:
		m.ResetBrand()
		return nil
	case catalogentry.FieldModel:
		m.ResetModel()
		return nil
	case catalogentry.FieldColorCode:
		m.ResetColorCode()
		return nil
	case catalogentry.FieldColorName:
		m.ResetColorName()
		return nil
	case catalogentry.FieldSku:
		m.ResetSku()
		return nil
	case catalogentry.FieldUpc:
		m.ResetUpc()
		return nil
	case catalogentry.FieldEan:
		m.ResetEan()
		return nil
	case catalogentry.FieldWholesaleCost:
		m.ResetWholesaleCost()
		return nil
	case catalogentry.FieldMsrp:
		m.ResetMsrp()
		return nil
	case catalogentry.FieldEyeSize:
		m.ResetEyeSize()
		return nil
	case catalogentry.FieldBridge:
		m.ResetBridge()
		return nil
	case catalogentry.FieldTempleLength:
		m.ResetTempleLength()
		return nil
	case catalogentry.FieldFullSize:
		m.ResetFullSize()
		return nil
	case catalogentry.FieldMaterial:
		m.ResetMaterial()
		return nil
	case catalogentry.FieldGender:
		m.ResetGender()
		return nil
	case catalogentry.FieldInStock:
		m.ResetInStock()
		return nil
	case catalogentry.FieldAvailabilityStatus:
		m.ResetAvailabilityStatus()
		return nil
	case catalogentry.FieldCrawledAt:
		m.ResetCrawledAt()
		return nil
	}
	return fmt.Errorf("unknown CatalogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CatalogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CatalogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CatalogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CatalogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CatalogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CatalogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CatalogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CatalogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CatalogEntry edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	vendor                *string
	order_number          *string
	vendor_account_number *string
	customer_name         *string
	rep_name              *string
	order_date            *string
	total_pieces          *int
	addtotal_pieces       *int
	parse_status          *string
	validation_rate       *float64
	addvalidation_rate    *float64
	parsed_at             *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	account               *uuid.UUID
	clearedaccount        bool
	items                 map[uuid.UUID]struct{}
	removeditems          map[uuid.UUID]struct{}
	cleareditems          bool
	done                  bool
	oldValue              func(context.Context) (*Order, error)
	predicates            []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *OrderMutation) SetAccountID(u uuid.UUID) {
	m.account = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *OrderMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *OrderMutation) ResetAccountID() {
	m.account = nil
}

// SetVendor sets the "vendor" field.
func (m *OrderMutation) SetVendor(s string) {
	m.vendor = &s
}

// Vendor returns the value of the "vendor" field in the mutation.
func (m *OrderMutation) Vendor() (r string, exists bool) {
	v := m.vendor
	if v == nil {
		return
	}
	return *v, true
}

// OldVendor returns the old "vendor" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldVendor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendor: %w", err)
	}
	return oldValue.Vendor, nil
}

// ResetVendor resets all changes to the "vendor" field.
func (m *OrderMutation) ResetVendor() {
	m.vendor = nil
}

// SetOrderNumber sets the "order_number" field.
func (m *OrderMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *OrderMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *OrderMutation) ResetOrderNumber() {
	m.order_number = nil
}

// SetVendorAccountNumber sets the "vendor_account_number" field.
func (m *OrderMutation) SetVendorAccountNumber(s string) {
	m.vendor_account_number = &s
}

// VendorAccountNumber returns the value of the "vendor_account_number" field in the mutation.
func (m *OrderMutation) VendorAccountNumber() (r string, exists bool) {
	v := m.vendor_account_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorAccountNumber returns the old "vendor_account_number" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldVendorAccountNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorAccountNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorAccountNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorAccountNumber: %w", err)
	}
	return oldValue.VendorAccountNumber, nil
}

// ClearVendorAccountNumber clears the value of the "vendor_account_number" field.
func (m *OrderMutation) ClearVendorAccountNumber() {
	m.vendor_account_number = nil
	m.clearedFields[order.FieldVendorAccountNumber] = struct{}{}
}

// VendorAccountNumberCleared returns if the "vendor_account_number" field was cleared in this mutation.
func (m *OrderMutation) VendorAccountNumberCleared() bool {
	_, ok := m.clearedFields[order.FieldVendorAccountNumber]
	return ok
}

// ResetVendorAccountNumber resets all changes to the "vendor_account_number" field.
func (m *OrderMutation) ResetVendorAccountNumber() {
	m.vendor_account_number = nil
	delete(m.clearedFields, order.FieldVendorAccountNumber)
}

// SetCustomerName sets the "customer_name" field.
func (m *OrderMutation) SetCustomerName(s string) {
	m.customer_name = &s
}

// CustomerName returns the value of the "customer_name" field in the mutation.
func (m *OrderMutation) CustomerName() (r string, exists bool) {
	v := m.customer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerName returns the old "customer_name" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCustomerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerName: %w", err)
	}
	return oldValue.CustomerName, nil
}

// ClearCustomerName clears the value of the "customer_name" field.
func (m *OrderMutation) ClearCustomerName() {
	m.customer_name = nil
	m.clearedFields[order.FieldCustomerName] = struct{}{}
}

// CustomerNameCleared returns if the "customer_name" field was cleared in this mutation.
func (m *OrderMutation) CustomerNameCleared() bool {
	_, ok := m.clearedFields[order.FieldCustomerName]
	return ok
}

// ResetCustomerName resets all changes to the "customer_name" field.
func (m *OrderMutation) ResetCustomerName() {
	m.customer_name = nil
	delete(m.clearedFields, order.FieldCustomerName)
}

// SetRepName sets the "rep_name" field.
func (m *OrderMutation) SetRepName(s string) {
	m.rep_name = &s
}

// RepName returns the value of the "rep_name" field in the mutation.
func (m *OrderMutation) RepName() (r string, exists bool) {
	v := m.rep_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepName returns the old "rep_name" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldRepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepName: %w", err)
	}
	return oldValue.RepName, nil
}

// ClearRepName clears the value of the "rep_name" field.
func (m *OrderMutation) ClearRepName() {
	m.rep_name = nil
	m.clearedFields[order.FieldRepName] = struct{}{}
}

// RepNameCleared returns if the "rep_name" field was cleared in this mutation.
func (m *OrderMutation) RepNameCleared() bool {
	_, ok := m.clearedFields[order.FieldRepName]
	return ok
}

// ResetRepName resets all changes to the "rep_name" field.
func (m *OrderMutation) ResetRepName() {
	m.rep_name = nil
	delete(m.clearedFields, order.FieldRepName)
}

// SetOrderDate sets the "order_date" field.
func (m *OrderMutation) SetOrderDate(s string) {
	m.order_date = &s
}

// OrderDate returns the value of the "order_date" field in the mutation.
func (m *OrderMutation) OrderDate() (r string, exists bool) {
	v := m.order_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderDate returns the old "order_date" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderDate: %w", err)
	}
	return oldValue.OrderDate, nil
}

// ClearOrderDate clears the value of the "order_date" field.
func (m *OrderMutation) ClearOrderDate() {
	m.order_date = nil
	m.clearedFields[order.FieldOrderDate] = struct{}{}
}

// OrderDateCleared returns if the "order_date" field was cleared in this mutation.
func (m *OrderMutation) OrderDateCleared() bool {
	_, ok := m.clearedFields[order.FieldOrderDate]
	return ok
}

// ResetOrderDate resets all changes to the "order_date" field.
func (m *OrderMutation) ResetOrderDate() {
	m.order_date = nil
	delete(m.clearedFields, order.FieldOrderDate)
}

// SetTotalPieces sets the "total_pieces" field.
func (m *OrderMutation) SetTotalPieces(i int) {
	m.total_pieces = &i
	m.addtotal_pieces = nil
}

// TotalPieces returns the value of the "total_pieces" field in the mutation.
func (m *OrderMutation) TotalPieces() (r int, exists bool) {
	v := m.total_pieces
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPieces returns the old "total_pieces" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalPieces(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPieces is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPieces requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPieces: %w", err)
	}
	return oldValue.TotalPieces, nil
}

// AddTotalPieces adds i to the "total_pieces" field.
func (m *OrderMutation) AddTotalPieces(i int) {
	if m.addtotal_pieces != nil {
		*m.addtotal_pieces += i
	} else {
		m.addtotal_pieces = &i
	}
}

// AddedTotalPieces returns the value that was added to the "total_pieces" field in this mutation.
func (m *OrderMutation) AddedTotalPieces() (r int, exists bool) {
	v := m.addtotal_pieces
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPieces resets all changes to the "total_pieces" field.
func (m *OrderMutation) ResetTotalPieces() {
	m.total_pieces = nil
	m.addtotal_pieces = nil
}

// SetParseStatus sets the "parse_status" field.
func (m *OrderMutation) SetParseStatus(s string) {
	m.parse_status = &s
}

// ParseStatus returns the value of the "parse_status" field in the mutation.
func (m *OrderMutation) ParseStatus() (r string, exists bool) {
	v := m.parse_status
	if v == nil {
		return
	}
	return *v, true
}

// OldParseStatus returns the old "parse_status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldParseStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseStatus: %w", err)
	}
	return oldValue.ParseStatus, nil
}

// ResetParseStatus resets all changes to the "parse_status" field.
func (m *OrderMutation) ResetParseStatus() {
	m.parse_status = nil
}

// SetValidationRate sets the "validation_rate" field.
func (m *OrderMutation) SetValidationRate(f float64) {
	m.validation_rate = &f
	m.addvalidation_rate = nil
}

// ValidationRate returns the value of the "validation_rate" field in the mutation.
func (m *OrderMutation) ValidationRate() (r float64, exists bool) {
	v := m.validation_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationRate returns the old "validation_rate" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldValidationRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationRate: %w", err)
	}
	return oldValue.ValidationRate, nil
}

// AddValidationRate adds f to the "validation_rate" field.
func (m *OrderMutation) AddValidationRate(f float64) {
	if m.addvalidation_rate != nil {
		*m.addvalidation_rate += f
	} else {
		m.addvalidation_rate = &f
	}
}

// AddedValidationRate returns the value that was added to the "validation_rate" field in this mutation.
func (m *OrderMutation) AddedValidationRate() (r float64, exists bool) {
	v := m.addvalidation_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidationRate resets all changes to the "validation_rate" field.
func (m *OrderMutation) ResetValidationRate() {
	m.validation_rate = nil
	m.addvalidation_rate = nil
}

// SetParsedAt sets the "parsed_at" field.
func (m *OrderMutation) SetParsedAt(t time.Time) {
	m.parsed_at = &t
}

// ParsedAt returns the value of the "parsed_at" field in the mutation.
func (m *OrderMutation) ParsedAt() (r time.Time, exists bool) {
	v := m.parsed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAt returns the old "parsed_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldParsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAt: %w", err)
	}
	return oldValue.ParsedAt, nil
}

// ResetParsedAt resets all changes to the "parsed_at" field.
func (m *OrderMutation) ResetParsedAt() {
	m.parsed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *OrderMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[order.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *OrderMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) AccountIDs() (ids []uuid.UUID) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *OrderMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.account != nil {
		fields = append(fields, order.FieldAccountID)
	}
	if m.vendor != nil {
		fields = append(fields, order.FieldVendor)
	}
	if m.order_number != nil {
		fields = append(fields, order.FieldOrderNumber)
	}
	if m.vendor_account_number != nil {
		fields = append(fields, order.FieldVendorAccountNumber)
	}
	if m.customer_name != nil {
		fields = append(fields, order.FieldCustomerName)
	}
	if m.rep_name != nil {
		fields = append(fields, order.FieldRepName)
	}
	if m.order_date != nil {
		fields = append(fields, order.FieldOrderDate)
	}
	if m.total_pieces != nil {
		fields = append(fields, order.FieldTotalPieces)
	}
	if m.parse_status != nil {
		fields = append(fields, order.FieldParseStatus)
	}
	if m.validation_rate != nil {
		fields = append(fields, order.FieldValidationRate)
	}
	if m.parsed_at != nil {
		fields = append(fields, order.FieldParsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldAccountID:
		return m.AccountID()
	case order.FieldVendor:
		return m.Vendor()
	case order.FieldOrderNumber:
		return m.OrderNumber()
	case order.FieldVendorAccountNumber:
		return m.VendorAccountNumber()
	case order.FieldCustomerName:
		return m.CustomerName()
	case order.FieldRepName:
		return m.RepName()
	case order.FieldOrderDate:
		return m.OrderDate()
	case order.FieldTotalPieces:
		return m.TotalPieces()
	case order.FieldParseStatus:
		return m.ParseStatus()
	case order.FieldValidationRate:
		return m.ValidationRate()
	case order.FieldParsedAt:
		return m.ParsedAt()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldAccountID:
		return m.OldAccountID(ctx)
	case order.FieldVendor:
		return m.OldVendor(ctx)
	case order.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case order.FieldVendorAccountNumber:
		return m.OldVendorAccountNumber(ctx)
	case order.FieldCustomerName:
		return m.OldCustomerName(ctx)
	case order.FieldRepName:
		return m.OldRepName(ctx)
	case order.FieldOrderDate:
		return m.OldOrderDate(ctx)
	case order.FieldTotalPieces:
		return m.OldTotalPieces(ctx)
	case order.FieldParseStatus:
		return m.OldParseStatus(ctx)
	case order.FieldValidationRate:
		return m.OldValidationRate(ctx)
	case order.FieldParsedAt:
		return m.OldParsedAt(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case order.FieldVendor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendor(v)
		return nil
	case order.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case order.FieldVendorAccountNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorAccountNumber(v)
		return nil
	case order.FieldCustomerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerName(v)
		return nil
	case order.FieldRepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepName(v)
		return nil
	case order.FieldOrderDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderDate(v)
		return nil
	case order.FieldTotalPieces:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPieces(v)
		return nil
	case order.FieldParseStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseStatus(v)
		return nil
	case order.FieldValidationRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationRate(v)
		return nil
	case order.FieldParsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAt(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_pieces != nil {
		fields = append(fields, order.FieldTotalPieces)
	}
	if m.addvalidation_rate != nil {
		fields = append(fields, order.FieldValidationRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTotalPieces:
		return m.AddedTotalPieces()
	case order.FieldValidationRate:
		return m.AddedValidationRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldTotalPieces:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPieces(v)
		return nil
	case order.FieldValidationRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidationRate(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldVendorAccountNumber) {
		fields = append(fields, order.FieldVendorAccountNumber)
	}
	if m.FieldCleared(order.FieldCustomerName) {
		fields = append(fields, order.FieldCustomerName)
	}
	if m.FieldCleared(order.FieldRepName) {
		fields = append(fields, order.FieldRepName)
	}
	if m.FieldCleared(order.FieldOrderDate) {
		fields = append(fields, order.FieldOrderDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldVendorAccountNumber:
		m.ClearVendorAccountNumber()
		return nil
	case order.FieldCustomerName:
		m.ClearCustomerName()
		return nil
	case order.FieldRepName:
		m.ClearRepName()
		return nil
	case order.FieldOrderDate:
		m.ClearOrderDate()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldAccountID:
		m.ResetAccountID()
		return nil
	case order.FieldVendor:
		m.ResetVendor()
		return nil
	case order.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case order.FieldVendorAccountNumber:
		m.ResetVendorAccountNumber()
		return nil
	case order.FieldCustomerName:
		m.ResetCustomerName()
		return nil
	case order.FieldRepName:
		m.ResetRepName()
		return nil
	case order.FieldOrderDate:
		m.ResetOrderDate()
		return nil
	case order.FieldTotalPieces:
		m.ResetTotalPieces()
		return nil
	case order.FieldParseStatus:
		m.ResetParseStatus()
		return nil
	case order.FieldValidationRate:
		m.ResetValidationRate()
		return nil
	case order.FieldParsedAt:
		m.ResetParsedAt()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, order.EdgeAccount)
	}
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, order.EdgeAccount)
	}
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeAccount:
		return m.clearedaccount
	case order.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	case order.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeAccount:
		m.ResetAccount()
		return nil
	case order.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	sku                 *string
	brand               *string
	model               *string
	color_code          *string
	color_name          *string
	size                *string
	quantity            *int
	addquantity         *int
	order_type          *string
	upc                 *string
	wholesale_cost      *float64
	addwholesale_cost   *float64
	msrp                *float64
	addmsrp             *float64
	api_verified        *bool
	confidence_score    *int
	addconfidence_score *int
	validation_reason   *string
	availability_status *string
	clearedFields       map[string]struct{}
	_order              *uuid.UUID
	cleared_order       bool
	done                bool
	oldValue            func(context.Context) (*OrderItem, error)
	predicates          []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id uuid.UUID) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetSku sets the "sku" field.
func (m *OrderItemMutation) SetSku(s string) {
	m.sku = &s
}

// Sku returns the value of the "sku" field in the mutation.
func (m *OrderItemMutation) Sku() (r string, exists bool) {
	v := m.sku
	if v == nil {
		return
	}
	return *v, true
}

// OldSku returns the old "sku" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldSku(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSku is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSku requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSku: %w", err)
	}
	return oldValue.Sku, nil
}

// ResetSku resets all changes to the "sku" field.
func (m *OrderItemMutation) ResetSku() {
	m.sku = nil
}

// SetBrand sets the "brand" field.
func (m *OrderItemMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *OrderItemMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldBrand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ClearBrand clears the value of the "brand" field.
func (m *OrderItemMutation) ClearBrand() {
	m.brand = nil
	m.clearedFields[orderitem.FieldBrand] = struct{}{}
}

// BrandCleared returns if the "brand" field was cleared in this mutation.
func (m *OrderItemMutation) BrandCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldBrand]
	return ok
}

// ResetBrand resets all changes to the "brand" field.
func (m *OrderItemMutation) ResetBrand() {
	m.brand = nil
	delete(m.clearedFields, orderitem.FieldBrand)
}

// SetModel sets the "model" field.
func (m *OrderItemMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *OrderItemMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *OrderItemMutation) ClearModel() {
	m.model = nil
	m.clearedFields[orderitem.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *OrderItemMutation) ModelCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *OrderItemMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, orderitem.FieldModel)
}

// SetColorCode sets the "color_code" field.
func (m *OrderItemMutation) SetColorCode(s string) {
	m.color_code = &s
}

// ColorCode returns the value of the "color_code" field in the mutation.
func (m *OrderItemMutation) ColorCode() (r string, exists bool) {
	v := m.color_code
	if v == nil {
		return
	}
	return *v, true
}

// OldColorCode returns the old "color_code" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldColorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorCode: %w", err)
	}
	return oldValue.ColorCode, nil
}

// ClearColorCode clears the value of the "color_code" field.
func (m *OrderItemMutation) ClearColorCode() {
	m.color_code = nil
	m.clearedFields[orderitem.FieldColorCode] = struct{}{}
}

// ColorCodeCleared returns if the "color_code" field was cleared in this mutation.
func (m *OrderItemMutation) ColorCodeCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldColorCode]
	return ok
}

// ResetColorCode resets all changes to the "color_code" field.
func (m *OrderItemMutation) ResetColorCode() {
	m.color_code = nil
	delete(m.clearedFields, orderitem.FieldColorCode)
}

// SetColorName sets the "color_name" field.
func (m *OrderItemMutation) SetColorName(s string) {
	m.color_name = &s
}

// ColorName returns the value of the "color_name" field in the mutation.
func (m *OrderItemMutation) ColorName() (r string, exists bool) {
	v := m.color_name
	if v == nil {
		return
	}
	return *v, true
}

// OldColorName returns the old "color_name" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldColorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColorName: %w", err)
	}
	return oldValue.ColorName, nil
}

// ClearColorName clears the value of the "color_name" field.
func (m *OrderItemMutation) ClearColorName() {
	m.color_name = nil
	m.clearedFields[orderitem.FieldColorName] = struct{}{}
}

// ColorNameCleared returns if the "color_name" field was cleared in this mutation.
func (m *OrderItemMutation) ColorNameCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldColorName]
	return ok
}

// ResetColorName resets all changes to the "color_name" field.
func (m *OrderItemMutation) ResetColorName() {
	m.color_name = nil
	delete(m.clearedFields, orderitem.FieldColorName)
}

// SetSize sets the "size" field.
func (m *OrderItemMutation) SetSize(s string) {
	m.size = &s
}

// Size returns the value of the "size" field in the mutation.
func (m *OrderItemMutation) Size() (r string, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ClearSize clears the value of the "size" field.
func (m *OrderItemMutation) ClearSize() {
	m.size = nil
	m.clearedFields[orderitem.FieldSize] = struct{}{}
}

// SizeCleared returns if the "size" field was cleared in this mutation.
func (m *OrderItemMutation) SizeCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldSize]
	return ok
}

// ResetSize resets all changes to the "size" field.
func (m *OrderItemMutation) ResetSize() {
	m.size = nil
	delete(m.clearedFields, orderitem.FieldSize)
}

// SetQuantity sets the "quantity" field.
func (m *OrderItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *OrderItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *OrderItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *OrderItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *OrderItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetOrderType sets the "order_type" field.
func (m *OrderItemMutation) SetOrderType(s string) {
	m.order_type = &s
}

// OrderType returns the value of the "order_type" field in the mutation.
func (m *OrderItemMutation) OrderType() (r string, exists bool) {
	v := m.order_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderType returns the old "order_type" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderType: %w", err)
	}
	return oldValue.OrderType, nil
}

// ClearOrderType clears the value of the "order_type" field.
func (m *OrderItemMutation) ClearOrderType() {
	m.order_type = nil
	m.clearedFields[orderitem.FieldOrderType] = struct{}{}
}

// OrderTypeCleared returns if the "order_type" field was cleared in this mutation.
func (m *OrderItemMutation) OrderTypeCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldOrderType]
	return ok
}

// ResetOrderType resets all changes to the "order_type" field.
func (m *OrderItemMutation) ResetOrderType() {
	m.order_type = nil
	delete(m.clearedFields, orderitem.FieldOrderType)
}

// SetUpc sets the "upc" field.
func (m *OrderItemMutation) SetUpc(s string) {
	m.upc = &s
}

// Upc returns the value of the "upc" field in the mutation.
func (m *OrderItemMutation) Upc() (r string, exists bool) {
	v := m.upc
	if v == nil {
		return
	}
	return *v, true
}

// OldUpc returns the old "upc" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldUpc(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpc: %w", err)
	}
	return oldValue.Upc, nil
}

// ClearUpc clears the value of the "upc" field.
func (m *OrderItemMutation) ClearUpc() {
	m.upc = nil
	m.clearedFields[orderitem.FieldUpc] = struct{}{}
}

// UpcCleared returns if the "upc" field was cleared in this mutation.
func (m *OrderItemMutation) UpcCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldUpc]
	return ok
}

// ResetUpc resets all changes to the "upc" field.
func (m *OrderItemMutation) ResetUpc() {
	m.upc = nil
	delete(m.clearedFields, orderitem.FieldUpc)
}

// SetWholesaleCost sets the "wholesale_cost" field.
func (m *OrderItemMutation) SetWholesaleCost(f float64) {
	m.wholesale_cost = &f
	m.addwholesale_cost = nil
}

// WholesaleCost returns the value of the "wholesale_cost" field in the mutation.
func (m *OrderItemMutation) WholesaleCost() (r float64, exists bool) {
	v := m.wholesale_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldWholesaleCost returns the old "wholesale_cost" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldWholesaleCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWholesaleCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWholesaleCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWholesaleCost: %w", err)
	}
	return oldValue.WholesaleCost, nil
}

// AddWholesaleCost adds f to the "wholesale_cost" field.
func (m *OrderItemMutation) AddWholesaleCost(f float64) {
	if m.addwholesale_cost != nil {
		*m.addwholesale_cost += f
	} else {
		m.addwholesale_cost = &f
	}
}

// AddedWholesaleCost returns the value that was added to the "wholesale_cost" field in this mutation.
func (m *OrderItemMutation) AddedWholesaleCost() (r float64, exists bool) {
	v := m.addwholesale_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearWholesaleCost clears the value of the "wholesale_cost" field.
func (m *OrderItemMutation) ClearWholesaleCost() {
	m.wholesale_cost = nil
	m.addwholesale_cost = nil
	m.clearedFields[orderitem.FieldWholesaleCost] = struct{}{}
}

// WholesaleCostCleared returns if the "wholesale_cost" field was cleared in this mutation.
func (m *OrderItemMutation) WholesaleCostCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldWholesaleCost]
	return ok
}

// ResetWholesaleCost resets all changes to the "wholesale_cost" field.
func (m *OrderItemMutation) ResetWholesaleCost() {
	m.wholesale_cost = nil
	m.addwholesale_cost = nil
	delete(m.clearedFields, orderitem.FieldWholesaleCost)
}

// SetMsrp sets the "msrp" field.
func (m *OrderItemMutation) SetMsrp(f float64) {
	m.msrp = &f
	m.addmsrp = nil
}

// Msrp returns the value of the "msrp" field in the mutation.
func (m *OrderItemMutation) Msrp() (r float64, exists bool) {
	v := m.msrp
	if v == nil {
		return
	}
	return *v, true
}

// OldMsrp returns the old "msrp" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldMsrp(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsrp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsrp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsrp: %w", err)
	}
	return oldValue.Msrp, nil
}

// AddMsrp adds f to the "msrp" field.
func (m *OrderItemMutation) AddMsrp(f float64) {
	if m.addmsrp != nil {
		*m.addmsrp += f
	} else {
		m.addmsrp = &f
	}
}

// AddedMsrp returns the value that was added to the "msrp" field in this mutation.
func (m *OrderItemMutation) AddedMsrp() (r float64, exists bool) {
	v := m.addmsrp
	if v == nil {
		return
	}
	return *v, true
}

// ClearMsrp clears the value of the "msrp" field.
func (m *OrderItemMutation) ClearMsrp() {
	m.msrp = nil
	m.addmsrp = nil
	m.clearedFields[orderitem.FieldMsrp] = struct{}{}
}

// MsrpCleared returns if the "msrp" field was cleared in this mutation.
func (m *OrderItemMutation) MsrpCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldMsrp]
	return ok
}

// ResetMsrp resets all changes to the "msrp" field.
func (m *OrderItemMutation) ResetMsrp() {
	m.msrp = nil
	m.addmsrp = nil
	delete(m.clearedFields, orderitem.FieldMsrp)
}

// SetAPIVerified sets the "api_verified" field.
func (m *OrderItemMutation) SetAPIVerified(b bool) {
	m.api_verified = &b
}

// APIVerified returns the value of the "api_verified" field in the mutation.
func (m *OrderItemMutation) APIVerified() (r bool, exists bool) {
	v := m.api_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIVerified returns the old "api_verified" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldAPIVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIVerified: %w", err)
	}
	return oldValue.APIVerified, nil
}

// ResetAPIVerified resets all changes to the "api_verified" field.
func (m *OrderItemMutation) ResetAPIVerified() {
	m.api_verified = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *OrderItemMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *OrderItemMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *OrderItemMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *OrderItemMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *OrderItemMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetValidationReason sets the "validation_reason" field.
func (m *OrderItemMutation) SetValidationReason(s string) {
	m.validation_reason = &s
}

// ValidationReason returns the value of the "validation_reason" field in the mutation.
func (m *OrderItemMutation) ValidationReason() (r string, exists bool) {
	v := m.validation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationReason returns the old "validation_reason" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldValidationReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationReason: %w", err)
	}
	return oldValue.ValidationReason, nil
}

// ClearValidationReason clears the value of the "validation_reason" field.
func (m *OrderItemMutation) ClearValidationReason() {
	m.validation_reason = nil
	m.clearedFields[orderitem.FieldValidationReason] = struct{}{}
}

// ValidationReasonCleared returns if the "validation_reason" field was cleared in this mutation.
func (m *OrderItemMutation) ValidationReasonCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldValidationReason]
	return ok
}

// ResetValidationReason resets all changes to the "validation_reason" field.
func (m *OrderItemMutation) ResetValidationReason() {
	m.validation_reason = nil
	delete(m.clearedFields, orderitem.FieldValidationReason)
}

// SetAvailabilityStatus sets the "availability_status" field.
func (m *OrderItemMutation) SetAvailabilityStatus(s string) {
	m.availability_status = &s
}

// AvailabilityStatus returns the value of the "availability_status" field in the mutation.
func (m *OrderItemMutation) AvailabilityStatus() (r string, exists bool) {
	v := m.availability_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailabilityStatus returns the old "availability_status" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldAvailabilityStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailabilityStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailabilityStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailabilityStatus: %w", err)
	}
	return oldValue.AvailabilityStatus, nil
}

// ClearAvailabilityStatus clears the value of the "availability_status" field.
func (m *OrderItemMutation) ClearAvailabilityStatus() {
	m.availability_status = nil
	m.clearedFields[orderitem.FieldAvailabilityStatus] = struct{}{}
}

// AvailabilityStatusCleared returns if the "availability_status" field was cleared in this mutation.
func (m *OrderItemMutation) AvailabilityStatusCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldAvailabilityStatus]
	return ok
}

// ResetAvailabilityStatus resets all changes to the "availability_status" field.
func (m *OrderItemMutation) ResetAvailabilityStatus() {
	m.availability_status = nil
	delete(m.clearedFields, orderitem.FieldAvailabilityStatus)
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.sku != nil {
		fields = append(fields, orderitem.FieldSku)
	}
	if m.brand != nil {
		fields = append(fields, orderitem.FieldBrand)
	}
	if m.model != nil {
		fields = append(fields, orderitem.FieldModel)
	}
	if m.color_code != nil {
		fields = append(fields, orderitem.FieldColorCode)
	}
	if m.color_name != nil {
		fields = append(fields, orderitem.FieldColorName)
	}
	if m.size != nil {
		fields = append(fields, orderitem.FieldSize)
	}
	if m.quantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.order_type != nil {
		fields = append(fields, orderitem.FieldOrderType)
	}
	if m.upc != nil {
		fields = append(fields, orderitem.FieldUpc)
	}
	if m.wholesale_cost != nil {
		fields = append(fields, orderitem.FieldWholesaleCost)
	}
	if m.msrp != nil {
		fields = append(fields, orderitem.FieldMsrp)
	}
	if m.api_verified != nil {
		fields = append(fields, orderitem.FieldAPIVerified)
	}
	if m.confidence_score != nil {
		fields = append(fields, orderitem.FieldConfidenceScore)
	}
	if m.validation_reason != nil {
		fields = append(fields, orderitem.FieldValidationReason)
	}
	if m.availability_status != nil {
		fields = append(fields, orderitem.FieldAvailabilityStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldSku:
		return m.Sku()
	case orderitem.FieldBrand:
		return m.Brand()
	case orderitem.FieldModel:
		return m.Model()
	case orderitem.FieldColorCode:
		return m.ColorCode()
	case orderitem.FieldColorName:
		return m.ColorName()
	case orderitem.FieldSize:
		return m.Size()
	case orderitem.FieldQuantity:
		return m.Quantity()
	case orderitem.FieldOrderType:
		return m.OrderType()
	case orderitem.FieldUpc:
		return m.Upc()
	case orderitem.FieldWholesaleCost:
		return m.WholesaleCost()
	case orderitem.FieldMsrp:
		return m.Msrp()
	case orderitem.FieldAPIVerified:
		return m.APIVerified()
	case orderitem.FieldConfidenceScore:
		return m.ConfidenceScore()
	case orderitem.FieldValidationReason:
		return m.ValidationReason()
	case orderitem.FieldAvailabilityStatus:
		return m.AvailabilityStatus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldSku:
		return m.OldSku(ctx)
	case orderitem.FieldBrand:
		return m.OldBrand(ctx)
	case orderitem.FieldModel:
		return m.OldModel(ctx)
	case orderitem.FieldColorCode:
		return m.OldColorCode(ctx)
	case orderitem.FieldColorName:
		return m.OldColorName(ctx)
	case orderitem.FieldSize:
		return m.OldSize(ctx)
	case orderitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case orderitem.FieldOrderType:
		return m.OldOrderType(ctx)
	case orderitem.FieldUpc:
		return m.OldUpc(ctx)
	case orderitem.FieldWholesaleCost:
		return m.OldWholesaleCost(ctx)
	case orderitem.FieldMsrp:
		return m.OldMsrp(ctx)
	case orderitem.FieldAPIVerified:
		return m.OldAPIVerified(ctx)
	case orderitem.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case orderitem.FieldValidationReason:
		return m.OldValidationReason(ctx)
	case orderitem.FieldAvailabilityStatus:
		return m.OldAvailabilityStatus(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldSku:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSku(v)
		return nil
	case orderitem.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case orderitem.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case orderitem.FieldColorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorCode(v)
		return nil
	case orderitem.FieldColorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColorName(v)
		return nil
	case orderitem.FieldSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case orderitem.FieldOrderType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderType(v)
		return nil
	case orderitem.FieldUpc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpc(v)
		return nil
	case orderitem.FieldWholesaleCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWholesaleCost(v)
		return nil
	case orderitem.FieldMsrp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsrp(v)
		return nil
	case orderitem.FieldAPIVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIVerified(v)
		return nil
	case orderitem.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case orderitem.FieldValidationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationReason(v)
		return nil
	case orderitem.FieldAvailabilityStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailabilityStatus(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, orderitem.FieldQuantity)
	}
	if m.addwholesale_cost != nil {
		fields = append(fields, orderitem.FieldWholesaleCost)
	}
	if m.addmsrp != nil {
		fields = append(fields, orderitem.FieldMsrp)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, orderitem.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldQuantity:
		return m.AddedQuantity()
	case orderitem.FieldWholesaleCost:
		return m.AddedWholesaleCost()
	case orderitem.FieldMsrp:
		return m.AddedMsrp()
	case orderitem.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case orderitem.FieldWholesaleCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWholesaleCost(v)
		return nil
	case orderitem.FieldMsrp:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMsrp(v)
		return nil
	case orderitem.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderitem.FieldBrand) {
		fields = append(fields, orderitem.FieldBrand)
	}
	if m.FieldCleared(orderitem.FieldModel) {
		fields = append(fields, orderitem.FieldModel)
	}
	if m.FieldCleared(orderitem.FieldColorCode) {
		fields = append(fields, orderitem.FieldColorCode)
	}
	if m.FieldCleared(orderitem.FieldColorName) {
		fields = append(fields, orderitem.FieldColorName)
	}
	if m.FieldCleared(orderitem.FieldSize) {
		fields = append(fields, orderitem.FieldSize)
	}
	if m.FieldCleared(orderitem.FieldOrderType) {
		fields = append(fields, orderitem.FieldOrderType)
	}
	if m.FieldCleared(orderitem.FieldUpc) {
		fields = append(fields, orderitem.FieldUpc)
	}
	if m.FieldCleared(orderitem.FieldWholesaleCost) {
		fields = append(fields, orderitem.FieldWholesaleCost)
	}
	if m.FieldCleared(orderitem.FieldMsrp) {
		fields = append(fields, orderitem.FieldMsrp)
	}
	if m.FieldCleared(orderitem.FieldValidationReason) {
		fields = append(fields, orderitem.FieldValidationReason)
	}
	if m.FieldCleared(orderitem.FieldAvailabilityStatus) {
		fields = append(fields, orderitem.FieldAvailabilityStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	switch name {
	case orderitem.FieldBrand:
		m.ClearBrand()
		return nil
	case orderitem.FieldModel:
		m.ClearModel()
		return nil
	case orderitem.FieldColorCode:
		m.ClearColorCode()
		return nil
	case orderitem.FieldColorName:
		m.ClearColorName()
		return nil
	case orderitem.FieldSize:
		m.ClearSize()
		return nil
	case orderitem.FieldOrderType:
		m.ClearOrderType()
		return nil
	case orderitem.FieldUpc:
		m.ClearUpc()
		return nil
	case orderitem.FieldWholesaleCost:
		m.ClearWholesaleCost()
		return nil
	case orderitem.FieldMsrp:
		m.ClearMsrp()
		return nil
	case orderitem.FieldValidationReason:
		m.ClearValidationReason()
		return nil
	case orderitem.FieldAvailabilityStatus:
		m.ClearAvailabilityStatus()
		return nil
	}
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldSku:
		m.ResetSku()
		return nil
	case orderitem.FieldBrand:
		m.ResetBrand()
		return nil
	case orderitem.FieldModel:
		m.ResetModel()
		return nil
	case orderitem.FieldColorCode:
		m.ResetColorCode()
		return nil
	case orderitem.FieldColorName:
		m.ResetColorName()
		return nil
	case orderitem.FieldSize:
		m.ResetSize()
		return nil
	case orderitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case orderitem.FieldOrderType:
		m.ResetOrderType()
		return nil
	case orderitem.FieldUpc:
		m.ResetUpc()
		return nil
	case orderitem.FieldWholesaleCost:
		m.ResetWholesaleCost()
		return nil
	case orderitem.FieldMsrp:
		m.ResetMsrp()
		return nil
	case orderitem.FieldAPIVerified:
		m.ResetAPIVerified()
		return nil
	case orderitem.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case orderitem.FieldValidationReason:
		m.ResetValidationReason()
		return nil
	case orderitem.FieldAvailabilityStatus:
		m.ResetAvailabilityStatus()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}
