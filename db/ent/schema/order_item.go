package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// OrderItem is one enriched line item of an ingested order.
type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("order_id", uuid.UUID{}),
		field.String("sku").NotEmpty(),
		field.String("brand").Optional(),
		field.String("model").Optional(),
		field.String("color_code").Optional(),
		field.String("color_name").Optional(),
		field.String("size").Optional(),
		field.Int("quantity").Positive(),
		field.String("order_type").Optional(),
		field.String("upc").Optional(),
		field.Float("wholesale_cost").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("msrp").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("api_verified").Default(false),
		field.Int("confidence_score").Range(0, 100),
		field.String("validation_reason").Optional(),
		field.String("availability_status").Optional(),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE order
		edge.From("order", Order.Type).
			Ref("items").
			Field("order_id").
			Required().
			Unique(),
	}
}
