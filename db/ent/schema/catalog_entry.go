package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CatalogEntry is a crawled vendor product row, read-only to the
// cross-referencer.
type CatalogEntry struct{ ent.Schema }

func (CatalogEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "catalog_entries"},
	}
}

func (CatalogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("vendor_id").NotEmpty(),
		field.String("brand").NotEmpty(),
		field.String("model").NotEmpty(),
		field.String("color_code").NotEmpty(),
		field.String("color_name").Optional(),
		field.String("sku").Optional(),
		field.String("upc").Optional(),
		field.String("ean").Optional(),
		field.Float("wholesale_cost").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("msrp").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("eye_size").NonNegative(),
		field.Int("bridge").Optional(),
		field.Int("temple_length").Optional(),
		field.String("full_size").Optional(),
		field.String("material").Optional(),
		field.String("gender").Optional(),
		field.Bool("in_stock").Default(false),
		field.String("availability_status").Optional(),
		field.Time("crawled_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CatalogEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Upsert key: latest crawl wins, never insert duplicates.
		index.Fields("vendor_id", "model", "color_code", "eye_size").Unique(),
		index.Fields("vendor_id", "brand", "model", "eye_size"),
		index.Fields("vendor_id", "eye_size"),
	}
}
