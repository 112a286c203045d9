package entity

// ValidationResult is the cross-referencer's verdict for one line item.
// It never mutates the raw LineItem it describes.
type ValidationResult struct {
	Validated  bool          `json:"validated"`
	Confidence int           `json:"confidence"` // 0-100
	Reason     string        `json:"reason"`
	BestMatch  *CatalogEntry `json:"best_match,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// ValidationReport is the non-throwing output of ValidateParsedData: always
// returned, even on partial data.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
