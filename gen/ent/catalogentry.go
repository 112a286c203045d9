// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/framedesk/order-intake/gen/ent/catalogentry"
)

// CatalogEntry is the model entity for the CatalogEntry schema.
type CatalogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID string `json:"vendor_id,omitempty"`
	// Brand holds the value of the "brand" field.
	Brand string `json:"brand,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// ColorCode holds the value of the "color_code" field.
	ColorCode string `json:"color_code,omitempty"`
	// ColorName holds the value of the "color_name" field.
	ColorName string `json:"color_name,omitempty"`
	// Sku holds the value of the "sku" field.
	Sku string `json:"sku,omitempty"`
	// Upc holds the value of the "upc" field.
	Upc string `json:"upc,omitempty"`
	// Ean holds the value of the "ean" field.
	Ean string `json:"ean,omitempty"`
	// WholesaleCost holds the value of the "wholesale_cost" field.
	WholesaleCost *float64 `json:"wholesale_cost,omitempty"`
	// Msrp holds the value of the "msrp" field.
	Msrp *float64 `json:"msrp,omitempty"`
	// EyeSize holds the value of the "eye_size" field.
	EyeSize int `json:"eye_size,omitempty"`
	// Bridge holds the value of the "bridge" field.
	Bridge int `json:"bridge,omitempty"`
	// TempleLength holds the value of the "temple_length" field.
	TempleLength int `json:"temple_length,omitempty"`
	// FullSize holds the value of the "full_size" field.
	FullSize string `json:"full_size,omitempty"`
	// Material holds the value of the "material" field.
	Material string `json:"material,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender string `json:"gender,omitempty"`
	// InStock holds the value of the "in_stock" field.
	InStock bool `json:"in_stock,omitempty"`
	// AvailabilityStatus holds the value of the "availability_status" field.
	AvailabilityStatus string `json:"availability_status,omitempty"`
	// CrawledAt holds the value of the "crawled_at" field.
	CrawledAt    time.Time `json:"crawled_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CatalogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldInStock:
			values[i] = new(sql.NullBool)
		case catalogentry.FieldWholesaleCost, catalogentry.FieldMsrp:
			values[i] = new(sql.NullFloat64)
		case catalogentry.FieldID, catalogentry.FieldEyeSize, catalogentry.FieldBridge, catalogentry.FieldTempleLength:
			values[i] = new(sql.NullInt64)
		case catalogentry.FieldVendorID, catalogentry.FieldBrand, catalogentry.FieldModel, catalogentry.FieldColorCode, catalogentry.FieldColorName, catalogentry.FieldSku, catalogentry.FieldUpc, catalogentry.FieldEan, catalogentry.FieldFullSize, catalogentry.FieldMaterial, catalogentry.FieldGender, catalogentry.FieldAvailabilityStatus:
			values[i] = new(sql.NullString)
		case catalogentry.FieldCrawledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CatalogEntry fields.
func (_m *CatalogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case catalogentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case catalogentry.FieldVendorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value.Valid {
				_m.VendorID = value.String
			}
		case catalogentry.FieldBrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand", values[i])
			} else if value.Valid {
				_m.Brand = value.String
			}
		case catalogentry.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case catalogentry.FieldColorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_code", values[i])
			} else if value.Valid {
				_m.ColorCode = value.String
			}
		case catalogentry.FieldColorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color_name", values[i])
			} else if value.Valid {
				_m.ColorName = value.String
			}
		case catalogentry.FieldSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sku", values[i])
			} else if value.Valid {
				_m.Sku = value.String
			}
		case catalogentry.FieldUpc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upc", values[i])
			} else if value.Valid {
				_m.Upc = value.String
			}
		case catalogentry.FieldEan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ean", values[i])
			} else if value.Valid {
				_m.Ean = value.String
			}
		case catalogentry.FieldWholesaleCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wholesale_cost", values[i])
			} else if value.Valid {
				_m.WholesaleCost = new(float64)
				*_m.WholesaleCost = value.Float64
			}
		case catalogentry.FieldMsrp:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field msrp", values[i])
			} else if value.Valid {
				_m.Msrp = new(float64)
				*_m.Msrp = value.Float64
			}
		case catalogentry.FieldEyeSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field eye_size", values[i])
			} else if value.Valid {
				_m.EyeSize = int(value.Int64)
			}
		case catalogentry.FieldBridge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bridge", values[i])
			} else if value.Valid {
				_m.Bridge = int(value.Int64)
			}
		case catalogentry.FieldTempleLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field temple_length", values[i])
			} else if value.Valid {
				_m.TempleLength = int(value.Int64)
			}
		case catalogentry.FieldFullSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_size", values[i])
			} else if value.Valid {
				_m.FullSize = value.String
			}
		case catalogentry.FieldMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material", values[i])
			} else if value.Valid {
				_m.Material = value.String
			}
		case catalogentry.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case catalogentry.FieldInStock:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field in_stock", values[i])
			} else if value.Valid {
				_m.InStock = value.Bool
			}
		case catalogentry.FieldAvailabilityStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field availability_status", values[i])
			} else if value.Valid {
				_m.AvailabilityStatus = value.String
			}
		case catalogentry.FieldCrawledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field crawled_at", values[i])
			} else if value.Valid {
				_m.CrawledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CatalogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CatalogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CatalogEntry.
// Note that you need to call CatalogEntry.Unwrap() before calling this method if this CatalogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CatalogEntry) Update() *CatalogEntryUpdateOne {
	return NewCatalogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CatalogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CatalogEntry) Unwrap() *CatalogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CatalogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CatalogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CatalogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vendor_id=")
	builder.WriteString(_m.VendorID)
	builder.WriteString(", ")
	builder.WriteString("brand=")
	builder.WriteString(_m.Brand)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("color_code=")
	builder.WriteString(_m.ColorCode)
	builder.WriteString(", ")
	builder.WriteString("color_name=")
	builder.WriteString(_m.ColorName)
	builder.WriteString(", ")
	builder.WriteString("sku=")
	builder.WriteString(_m.Sku)
	builder.WriteString(", ")
	builder.WriteString("upc=")
	builder.WriteString(_m.Upc)
	builder.WriteString(", ")
	builder.WriteString("ean=")
	builder.WriteString(_m.Ean)
	builder.WriteString(", ")
	if v := _m.WholesaleCost; v != nil {
		builder.WriteString("wholesale_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Msrp; v != nil {
		builder.WriteString("msrp=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("eye_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.EyeSize))
	builder.WriteString(", ")
	builder.WriteString("bridge=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bridge))
	builder.WriteString(", ")
	builder.WriteString("temple_length=")
	builder.WriteString(fmt.Sprintf("%v", _m.TempleLength))
	builder.WriteString(", ")
	builder.WriteString("full_size=")
	builder.WriteString(_m.FullSize)
	builder.WriteString(", ")
	builder.WriteString("material=")
	builder.WriteString(_m.Material)
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	builder.WriteString("in_stock=")
	builder.WriteString(fmt.Sprintf("%v", _m.InStock))
	builder.WriteString(", ")
	builder.WriteString("availability_status=")
	builder.WriteString(_m.AvailabilityStatus)
	builder.WriteString(", ")
	builder.WriteString("crawled_at=")
	builder.WriteString(_m.CrawledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CatalogEntries is a parsable slice of CatalogEntry.
type CatalogEntries []*CatalogEntry
