package parse

import (
	"fmt"
	"strings"

	"github.com/framedesk/order-intake/internal/entity"
)

// ValidateParsedData checks that a parsed order carries the minimum
// required fields: a non-empty order number and at least one line item.
// It never fails: the report is returned even on partial data, listing
// each missing or invalid field.
func ValidateParsedData(order *entity.ParsedOrder) entity.ValidationReport {
	report := entity.ValidationReport{Errors: []string{}}
	if order == nil {
		report.Errors = append(report.Errors, "no order parsed")
		return report
	}

	if strings.TrimSpace(order.OrderNumber) == "" {
		report.Errors = append(report.Errors, "order_number is empty")
	}
	if len(order.LineItems) == 0 {
		report.Errors = append(report.Errors, "no line items extracted")
	}
	for i, item := range order.LineItems {
		if strings.TrimSpace(item.Model) == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("line item %d: model is empty", i+1))
		}
		if item.Quantity <= 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("line item %d: quantity must be positive", i+1))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
