package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/framedesk/order-intake/db/ent/schema/utils"
)

// Order is one ingested vendor order.
type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite indexes
		field.UUID("account_id", uuid.UUID{}),
		field.String("vendor").NotEmpty(),
		field.String("order_number").NotEmpty(),
		field.String("vendor_account_number").Optional(),
		field.String("customer_name").Optional(),
		field.String("rep_name").Optional(),
		field.String("order_date").Optional(),
		field.Int("total_pieces").NonNegative(),
		field.String("parse_status").
			Validate(utils.EnumValidator("PARSED", "PARTIAL", "FAILED")),
		field.Float("validation_rate").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Time("parsed_at"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY orders -> ONE account
		edge.From("account", Account.Type).
			Ref("orders").
			Field("account_id").
			Required().
			Unique(),
		// ONE order -> MANY items
		edge.To("items", OrderItem.Type),
	}
}

func (Order) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate detection scans per-account order identities.
		index.Fields("account_id", "vendor", "order_number"),
		index.Fields("account_id", "created_at"),
	}
}
