// Package htmlparse extracts Modern Optical order confirmations from HTML
// email bodies. It handles both the original template (CSS class hooks) and
// the forwarded dialect (classes stripped, styles inlined) by attempting
// class lookups first and falling back to label-anchored traversal.
package htmlparse

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
)

// Parser parses Modern Optical order-confirmation emails.
type Parser struct {
	logger *slog.Logger
}

// New returns a Modern Optical HTML parser.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Vendor implements parse.Parser.
func (p *Parser) Vendor() string {
	return string(constants.VendorModernOptical)
}

var (
	reOrderNumber = regexp.MustCompile(`(?i)order\s*(?:number|no\.?|#)\s*:?\s*#?([0-9][0-9-]*)`)
	reOrderDate   = regexp.MustCompile(`(?i)(?:order\s+)?date\s*:?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`)
	reDigits      = regexp.MustCompile(`[0-9][0-9-]*`)
)

// Parse implements parse.Parser.
func (p *Parser) Parse(_ context.Context, content parse.EmailContent) (*entity.ParsedOrder, error) {
	if strings.TrimSpace(content.HTML) == "" {
		return nil, &parse.ParseError{Vendor: p.Vendor(), Reason: "empty html body"}
	}
	doc, err := parseDoc(content.HTML)
	if err != nil {
		return nil, &parse.ParseError{Vendor: p.Vendor(), Reason: "malformed html", Cause: err}
	}

	order := &entity.ParsedOrder{VendorName: p.Vendor()}
	docText := textContent(doc)

	order.OrderNumber = p.extractOrderNumber(doc, docText)
	order.OrderDate = p.extractOrderDate(doc, docText)
	p.extractCustomer(doc, order)
	p.extractLineItems(doc, order)

	p.logger.Info("htmlparse.done",
		"order_number", order.OrderNumber,
		"account_number", order.AccountNumber,
		"items", len(order.LineItems),
		"warnings", len(order.Warnings),
	)
	return order, nil
}

// extractOrderNumber tries the class hook first, then a label-anchored scan
// of the whole document text.
func (p *Parser) extractOrderNumber(doc *html.Node, docText string) string {
	if n := findByClass(doc, "", "order-number"); n != nil {
		if m := reDigits.FindString(textContent(n)); m != "" {
			return m
		}
	}
	if m := reOrderNumber.FindStringSubmatch(docText); m != nil {
		return m[1]
	}
	return ""
}

func (p *Parser) extractOrderDate(doc *html.Node, docText string) string {
	if n := findByClass(doc, "", "order-date"); n != nil {
		if t := textContent(n); t != "" {
			if m := reOrderDate.FindStringSubmatch("date: " + t); m != nil {
				return m[1]
			}
			return t
		}
	}
	if m := reOrderDate.FindStringSubmatch(docText); m != nil {
		return m[1]
	}
	return ""
}

// customerLabels maps row labels in the customer/ship-address block onto
// ParsedOrder fields.
func (p *Parser) extractCustomer(doc *html.Node, order *entity.ParsedOrder) {
	table := findByClass(doc, "table", "customer-info")
	if table == nil {
		table = p.findCustomerTable(doc)
	}
	if table == nil {
		order.Warnings = append(order.Warnings, "customer block not found")
		return
	}

	order.AccountNumber = labeledValue(table, "account", "account #", "account number")
	order.CustomerName = labeledValue(table, "name", "customer", "customer name")

	addr := entity.Address{
		Street:     labeledValue(table, "address", "street", "ship address"),
		City:       labeledValue(table, "city"),
		State:      labeledValue(table, "state"),
		PostalCode: labeledValue(table, "zip", "postal code", "zip code"),
		Phone:      labeledValue(table, "phone", "telephone"),
	}
	// Some templates collapse the locality into one "City/State/Zip" row.
	if addr.City == "" {
		if combined := labeledValue(table, "city/state/zip", "city, state, zip"); combined != "" {
			addr.City, addr.State, addr.PostalCode = splitLocality(combined)
		}
	}
	if addr != (entity.Address{}) {
		order.ShipAddress = &addr
	}
}

// findCustomerTable locates the customer block structurally: the first
// table containing an account-number row, else one whose preceding heading
// names a customer or ship-address section.
func (p *Parser) findCustomerTable(doc *html.Node) *html.Node {
	for _, t := range findTables(doc) {
		if labeledValue(t, "account", "account #", "account number") != "" {
			return t
		}
	}
	for _, t := range findTables(doc) {
		h := strings.ToLower(precedingHeadingText(t))
		if strings.Contains(h, "customer") || strings.Contains(h, "ship address") {
			return t
		}
	}
	return nil
}

// splitLocality splits "PHOENIX, AZ 85032" into its parts.
func splitLocality(s string) (city, state, zip string) {
	s = collapseSpace(s)
	if i := strings.Index(s, ","); i >= 0 {
		city = strings.TrimSpace(s[:i])
		rest := strings.Fields(s[i+1:])
		if len(rest) > 0 {
			state = rest[0]
		}
		if len(rest) > 1 {
			zip = rest[1]
		}
		return city, state, zip
	}
	parts := strings.Fields(s)
	if len(parts) == 3 {
		return parts[0], parts[1], parts[2]
	}
	return s, "", ""
}

// itemColumns is the header-index map of an order-items table.
type itemColumns struct {
	model, color, size, qty, status, orderType, brand int
}

func newItemColumns() itemColumns {
	return itemColumns{model: -1, color: -1, size: -1, qty: -1, status: -1, orderType: -1, brand: -1}
}

func headerColumns(texts []string) (itemColumns, bool) {
	cols := newItemColumns()
	for i, t := range texts {
		switch normalizeLabel(t) {
		case "model", "style":
			cols.model = i
		case "color", "colour":
			cols.color = i
		case "size", "eye size":
			cols.size = i
		case "qty", "quantity", "pcs":
			cols.qty = i
		case "status", "availability":
			cols.status = i
		case "order type":
			cols.orderType = i
		case "brand", "collection":
			cols.brand = i
		}
	}
	return cols, cols.model >= 0 && cols.color >= 0
}

// extractLineItems locates the repeating Order Items table and yields one
// LineItem per data row. Brand comes from a brand column, a single-cell
// section row inside the table, the table's preceding heading, or the
// Order Type column, in that order.
func (p *Parser) extractLineItems(doc *html.Node, order *entity.ParsedOrder) {
	table := findByClass(doc, "table", "order-items")
	var cols itemColumns
	var rows []*html.Node

	candidates := findTables(doc)
	if table != nil {
		candidates = []*html.Node{table}
	}
	found := false
	for _, t := range candidates {
		trs := tableRows(t)
		for _, tr := range trs {
			if c, ok := headerColumns(cellTexts(tr)); ok {
				cols, rows, table, found = c, trs, t, true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		order.Warnings = append(order.Warnings, "order items table not found")
		return
	}

	sectionBrand := collapseSpace(precedingHeadingText(table))
	headerSeen := false
	for _, tr := range rows {
		texts := cellTexts(tr)
		if !headerSeen {
			if _, ok := headerColumns(texts); ok {
				headerSeen = true
			}
			continue
		}
		if isSpacerRow(texts) {
			continue
		}
		// A row with a single populated cell is a brand section divider.
		if populated := nonEmpty(texts); len(texts) == 1 || populated == 1 && texts[0] != "" {
			sectionBrand = texts[0]
			continue
		}

		item, warn := buildItem(texts, cols, sectionBrand)
		if warn != "" {
			order.Warnings = append(order.Warnings, warn)
		}
		if item != nil {
			order.LineItems = append(order.LineItems, *item)
		}
	}
}

func nonEmpty(texts []string) int {
	n := 0
	for _, t := range texts {
		if t != "" {
			n++
		}
	}
	return n
}

func buildItem(texts []string, cols itemColumns, sectionBrand string) (*entity.LineItem, string) {
	cell := func(i int) string {
		if i < 0 || i >= len(texts) {
			return ""
		}
		return texts[i]
	}

	model := cell(cols.model)
	color := cell(cols.color)
	if model == "" && color == "" {
		return nil, ""
	}

	item := entity.LineItem{
		Model:     strings.ToUpper(model),
		ColorCode: strings.ToUpper(color),
		ColorName: strings.ToUpper(color),
		Quantity:  1,
	}

	item.Size, item.TempleLength = splitSize(cell(cols.size))

	var warn string
	if q := cell(cols.qty); q != "" {
		n := 0
		if _, err := fmt.Sscanf(q, "%d", &n); err != nil || n <= 0 {
			warn = fmt.Sprintf("unparseable quantity %q for model %s", q, item.Model)
			n = 1
		}
		item.Quantity = n
	}

	if ot := cell(cols.orderType); ot != "" {
		item.OrderType = constants.OrderType(strings.ToUpper(collapseSpace(ot)))
	}

	item.Brand = strings.ToUpper(collapseSpace(firstNonEmpty(cell(cols.brand), sectionBrand, cell(cols.orderType))))
	item.SKU = synthesizeSKU(item.Brand, item.Model, item.ColorCode)
	return &item, warn
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// splitSize decomposes a size column like "58-17-150", "58/17", or "58"
// into eye size and temple length.
func splitSize(s string) (size, temple string) {
	parts := strings.FieldsFunc(collapseSpace(s), func(r rune) bool {
		return r == '-' || r == '/' || r == 'x' || r == ' '
	})
	if len(parts) == 0 {
		return "", ""
	}
	size = parts[0]
	if len(parts) >= 3 {
		temple = parts[2]
	}
	return size, temple
}

// synthesizeSKU builds a vendor-style SKU for HTML line items, which carry
// no native SKU field.
func synthesizeSKU(brand, model, color string) string {
	join := func(s string) string {
		return strings.ReplaceAll(collapseSpace(s), " ", "-")
	}
	return strings.ToUpper(fmt.Sprintf("%s/%s/%s", join(brand), join(model), join(color)))
}
