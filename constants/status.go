package constants

// ParseStatus is the canonical outcome for one ingested message.
type ParseStatus string

// Stable values (store these exact strings in DB).
const (
	ParseStatusParsed  ParseStatus = "PARSED"  // all required fields extracted
	ParseStatusPartial ParseStatus = "PARTIAL" // order extracted, some items unvalidated
	ParseStatusFailed  ParseStatus = "FAILED"  // source document unreadable
)

// OrderType distinguishes how a line item was ordered.
type OrderType string

const (
	OrderTypeStock       OrderType = "STOCK"
	OrderTypeBackorder   OrderType = "BACKORDER"
	OrderTypeSpecial     OrderType = "SPECIAL"
	OrderTypeConsignment OrderType = "CONSIGNMENT"
)

// AvailabilityStatus mirrors the vendor catalog's stock flags.
type AvailabilityStatus string

const (
	AvailabilityInStock      AvailabilityStatus = "IN_STOCK"
	AvailabilityBackordered  AvailabilityStatus = "BACKORDERED"
	AvailabilityDiscontinued AvailabilityStatus = "DISCONTINUED"
	AvailabilityUnknown      AvailabilityStatus = "UNKNOWN"
)
