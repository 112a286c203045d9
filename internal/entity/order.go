package entity

import (
	"time"

	"github.com/framedesk/order-intake/constants"
)

// ParsedOrder is the raw, unvalidated output of one format parser.
// It is produced fresh per parse and never mutated after being returned.
type ParsedOrder struct {
	VendorName      string     `json:"vendor_name"`
	OrderNumber     string     `json:"order_number"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	AccountNumber   string     `json:"account_number,omitempty"`
	CustomerName    string     `json:"customer_name"`
	CustomerCode    string     `json:"customer_code,omitempty"`
	PlacedByRep     string     `json:"placed_by_rep,omitempty"`
	OrderDate       string     `json:"order_date"`
	ShipAddress     *Address   `json:"ship_address,omitempty"`
	TermsOfSale     string     `json:"terms_of_sale,omitempty"`
	ShipMethod      string     `json:"ship_method,omitempty"`
	LineItems       []LineItem `json:"line_items"`
	Warnings        []string   `json:"warnings,omitempty"`
}

// Address is a shipping address block extracted from the order document.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// LineItem is one raw frame variant as extracted from the source document.
// PDF-sourced SKUs decompose as BRAND/COLOR/SIZE; HTML-sourced SKUs are
// synthesized from brand+model+color when the vendor supplies none.
type LineItem struct {
	SKU          string              `json:"sku"`
	Brand        string              `json:"brand"`
	Model        string              `json:"model"`
	ColorCode    string              `json:"color_code"`
	ColorName    string              `json:"color_name,omitempty"`
	Size         string              `json:"size"`
	TempleLength string              `json:"temple_length,omitempty"`
	Quantity     int                 `json:"quantity"`
	OrderType    constants.OrderType `json:"order_type,omitempty"`
}

// EnrichedLineItem is a LineItem merged with its best catalog match. This is
// the only line-item shape handed to the persistence layer.
type EnrichedLineItem struct {
	LineItem

	UPC                string   `json:"upc,omitempty"`
	EAN                string   `json:"ean,omitempty"`
	WholesaleCost      *float64 `json:"wholesale_cost,omitempty"`
	MSRP               *float64 `json:"msrp,omitempty"`
	EyeSize            int      `json:"eye_size,omitempty"`
	Bridge             int      `json:"bridge,omitempty"`
	FullSize           string   `json:"full_size,omitempty"`
	Material           string   `json:"material,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	AvailabilityStatus string   `json:"availability_status,omitempty"`

	APIVerified      bool   `json:"api_verified"`
	ConfidenceScore  int    `json:"confidence_score"`
	ValidationReason string `json:"validation_reason"`
}

// EnrichmentStats summarizes one cross-referencing pass.
type EnrichmentStats struct {
	TotalFrames           int     `json:"totalFrames"`
	Validated             int     `json:"validated"`
	ValidationRate        float64 `json:"validationRate"`
	ProcessingTimeSeconds float64 `json:"processingTimeSeconds"`
	FramesPerSecond       float64 `json:"framesPerSecond"`
}

// OrderSummary is the order-level slice of the engine output.
type OrderSummary struct {
	OrderNumber   string                `json:"order_number"`
	CustomerName  string                `json:"customer_name"`
	AccountNumber string                `json:"account_number"`
	OrderDate     string                `json:"order_date"`
	TotalPieces   int                   `json:"total_pieces"`
	RepName       string                `json:"rep_name,omitempty"`
	ParseStatus   constants.ParseStatus `json:"parse_status"`
}

// IngestResult is the engine's output for one ingested message, handed to
// the persistence layer and then discarded.
type IngestResult struct {
	Vendor          string             `json:"vendor"`
	AccountNumber   *string            `json:"account_number"`
	Order           OrderSummary       `json:"order"`
	Items           []EnrichedLineItem `json:"items"`
	ParsedAt        time.Time          `json:"parsed_at"`
	EnrichmentStats EnrichmentStats    `json:"enrichment_stats"`
	IsDuplicate     bool               `json:"is_duplicate"`
	DuplicateNote   string             `json:"duplicate_note,omitempty"`
}

// TotalPieces sums the quantities of all line items.
func (o *ParsedOrder) TotalPieces() int {
	total := 0
	for _, it := range o.LineItems {
		total += it.Quantity
	}
	return total
}
