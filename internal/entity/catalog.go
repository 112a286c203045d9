package entity

import "github.com/framedesk/order-intake/constants"

// CatalogEntry is the canonical vendor product record, upserted by the
// crawler and read-only to the cross-referencer.
type CatalogEntry struct {
	VendorID           string                       `json:"vendor_id"`
	Brand              string                       `json:"brand"`
	Model              string                       `json:"model"`
	ColorCode          string                       `json:"color_code"`
	ColorName          string                       `json:"color_name,omitempty"`
	SKU                string                       `json:"sku"`
	UPC                string                       `json:"upc,omitempty"`
	EAN                string                       `json:"ean,omitempty"`
	WholesaleCost      *float64                     `json:"wholesale_cost,omitempty"`
	MSRP               *float64                     `json:"msrp,omitempty"`
	EyeSize            int                          `json:"eye_size"`
	Bridge             int                          `json:"bridge,omitempty"`
	TempleLength       int                          `json:"temple_length,omitempty"`
	FullSize           string                       `json:"full_size,omitempty"`
	Material           string                       `json:"material,omitempty"`
	Gender             string                       `json:"gender,omitempty"`
	InStock            bool                         `json:"in_stock"`
	AvailabilityStatus constants.AvailabilityStatus `json:"availability_status,omitempty"`
}

// CatalogKey is the unique upsert key for catalog rows:
// (vendor_id, model, color, eye_size), latest crawl wins.
type CatalogKey struct {
	VendorID  string
	Model     string
	ColorCode string
	EyeSize   int
}

// Key returns the entry's unique catalog key.
func (e *CatalogEntry) Key() CatalogKey {
	return CatalogKey{
		VendorID:  e.VendorID,
		Model:     e.Model,
		ColorCode: e.ColorCode,
		EyeSize:   e.EyeSize,
	}
}
