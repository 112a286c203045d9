// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// CatalogEntriesColumns holds the columns for the "catalog_entries" table.
	CatalogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "vendor_id", Type: field.TypeString},
		{Name: "brand", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "color_code", Type: field.TypeString},
		{Name: "color_name", Type: field.TypeString, Nullable: true},
		{Name: "sku", Type: field.TypeString, Nullable: true},
		{Name: "upc", Type: field.TypeString, Nullable: true},
		{Name: "ean", Type: field.TypeString, Nullable: true},
		{Name: "wholesale_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "msrp", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "eye_size", Type: field.TypeInt},
		{Name: "bridge", Type: field.TypeInt, Nullable: true},
		{Name: "temple_length", Type: field.TypeInt, Nullable: true},
		{Name: "full_size", Type: field.TypeString, Nullable: true},
		{Name: "material", Type: field.TypeString, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "in_stock", Type: field.TypeBool, Default: false},
		{Name: "availability_status", Type: field.TypeString, Nullable: true},
		{Name: "crawled_at", Type: field.TypeTime},
	}
	// CatalogEntriesTable holds the schema information for the "catalog_entries" table.
	CatalogEntriesTable = &schema.Table{
		Name:       "catalog_entries",
		Columns:    CatalogEntriesColumns,
		PrimaryKey: []*schema.Column{CatalogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "catalogentry_vendor_id_model_color_code_eye_size",
				Unique:  true,
				Columns: []*schema.Column{CatalogEntriesColumns[1], CatalogEntriesColumns[3], CatalogEntriesColumns[4], CatalogEntriesColumns[11]},
			},
			{
				Name:    "catalogentry_vendor_id_brand_model_eye_size",
				Unique:  false,
				Columns: []*schema.Column{CatalogEntriesColumns[1], CatalogEntriesColumns[2], CatalogEntriesColumns[3], CatalogEntriesColumns[11]},
			},
			{
				Name:    "catalogentry_vendor_id_eye_size",
				Unique:  false,
				Columns: []*schema.Column{CatalogEntriesColumns[1], CatalogEntriesColumns[11]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor", Type: field.TypeString},
		{Name: "order_number", Type: field.TypeString},
		{Name: "vendor_account_number", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "rep_name", Type: field.TypeString, Nullable: true},
		{Name: "order_date", Type: field.TypeString, Nullable: true},
		{Name: "total_pieces", Type: field.TypeInt},
		{Name: "parse_status", Type: field.TypeString},
		{Name: "validation_rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "parsed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "orders_accounts_orders",
				Columns:    []*schema.Column{OrdersColumns[12]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "order_account_id_vendor_order_number",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[12], OrdersColumns[1], OrdersColumns[2]},
			},
			{
				Name:    "order_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[12], OrdersColumns[11]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sku", Type: field.TypeString},
		{Name: "brand", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "color_code", Type: field.TypeString, Nullable: true},
		{Name: "color_name", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "order_type", Type: field.TypeString, Nullable: true},
		{Name: "upc", Type: field.TypeString, Nullable: true},
		{Name: "wholesale_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "msrp", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "api_verified", Type: field.TypeBool, Default: false},
		{Name: "confidence_score", Type: field.TypeInt},
		{Name: "validation_reason", Type: field.TypeString, Nullable: true},
		{Name: "availability_status", Type: field.TypeString, Nullable: true},
		{Name: "order_id", Type: field.TypeUUID},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_items_orders_items",
				Columns:    []*schema.Column{OrderItemsColumns[16]},
				RefColumns: []*schema.Column{OrdersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CatalogEntriesTable,
		OrdersTable,
		OrderItemsTable,
	}
)

func init() {
	AccountsTable.Annotation = &entsql.Annotation{
		Table: "accounts",
	}
	CatalogEntriesTable.Annotation = &entsql.Annotation{
		Table: "catalog_entries",
	}
	OrdersTable.ForeignKeys[0].RefTable = AccountsTable
	OrdersTable.Annotation = &entsql.Annotation{
		Table: "orders",
	}
	OrderItemsTable.ForeignKeys[0].RefTable = OrdersTable
	OrderItemsTable.Annotation = &entsql.Annotation{
		Table: "order_items",
	}
}
