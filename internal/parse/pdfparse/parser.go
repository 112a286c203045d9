// Package pdfparse extracts Safilo order receipts from PDF attachments.
// Safilo PDFs are text-dump only: no structure survives except line order,
// so extraction is line-anchored regex matching over the plain text.
package pdfparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
)

// Parser parses Safilo PDF order receipts.
type Parser struct {
	logger *slog.Logger
}

// New returns a Safilo PDF parser.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Vendor implements parse.Parser.
func (p *Parser) Vendor() string {
	return string(constants.VendorSafilo)
}

var (
	reMetaOrderNumber = regexp.MustCompile(`(?im)^\s*Order\s*Number\s*:\s*(\S+)`)
	reMetaCustomer    = regexp.MustCompile(`(?im)^\s*Customer\s*:\s*(.+?)\s*$`)
	reMetaAccount     = regexp.MustCompile(`(?im)^\s*Account\s*:\s*(\S+)`)
	reMetaRep         = regexp.MustCompile(`(?im)^\s*Rep\s*:\s*(.+?)\s*$`)
	reMetaDate        = regexp.MustCompile(`(?im)^\s*Date\s*:\s*(\S+)`)

	// One item line: SKU token BRAND/COLORCODE/SIZE, then quantity, then an
	// optional unit price column.
	reItemLine = regexp.MustCompile(`^\s*(\S+/\S+/\d{2})\s+(\d+)(?:\s+([\d,]+\.\d{2}))?\s*$`)

	// Looser probe used to surface malformed SKU tokens as warnings instead
	// of silently dropping the line.
	reSKUProbe = regexp.MustCompile(`^\s*(\S+/\S+)\s+(\d+)`)
)

// Parse implements parse.Parser. The PDF is taken from the first
// PDF-looking attachment; the email bodies are ignored for this vendor.
func (p *Parser) Parse(_ context.Context, content parse.EmailContent) (*entity.ParsedOrder, error) {
	var data []byte
	for _, a := range content.Attachments {
		if constants.IsPDFAttachment(a.ContentType, a.FileName) {
			data = a.Content
			break
		}
	}
	if len(data) == 0 {
		return nil, &parse.ParseError{Vendor: p.Vendor(), Reason: "no pdf attachment"}
	}

	text, err := ExtractText(data)
	if err != nil {
		return nil, &parse.ParseError{Vendor: p.Vendor(), Reason: "text extraction failed", Cause: err}
	}

	order := p.parseText(text)
	p.logger.Info("pdfparse.done",
		"order_number", order.OrderNumber,
		"items", len(order.LineItems),
		"warnings", len(order.Warnings),
	)
	return order, nil
}

// ExtractText pulls the plain text out of raw PDF bytes. An empty buffer,
// an invalid PDF, or a document yielding zero text are all errors; the
// caller turns them into a ParseError rather than a partial order.
func ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty pdf buffer")
	}
	// The pdf reader panics on some corrupt cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("invalid pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	text = b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("pdf yielded no extractable text")
	}
	return text, nil
}

// parseText applies line-anchored extraction to the dumped text. Exported
// metadata comes from labeled lines; items from SKU-token lines.
func (p *Parser) parseText(text string) *entity.ParsedOrder {
	order := &entity.ParsedOrder{VendorName: p.Vendor()}

	if m := reMetaOrderNumber.FindStringSubmatch(text); m != nil {
		order.OrderNumber = m[1]
	}
	if m := reMetaCustomer.FindStringSubmatch(text); m != nil {
		order.CustomerName = strings.ToUpper(m[1])
	}
	if m := reMetaAccount.FindStringSubmatch(text); m != nil {
		order.AccountNumber = m[1]
	}
	if m := reMetaRep.FindStringSubmatch(text); m != nil {
		order.PlacedByRep = m[1]
	}
	if m := reMetaDate.FindStringSubmatch(text); m != nil {
		order.OrderDate = m[1]
	}

	for _, line := range strings.Split(text, "\n") {
		if m := reItemLine.FindStringSubmatch(line); m != nil {
			sku, qtyStr := m[1], m[2]
			dec, err := DecomposeSKU(sku)
			if err != nil {
				order.Warnings = append(order.Warnings, err.Error())
				continue
			}
			qty, _ := strconv.Atoi(qtyStr)
			if qty <= 0 {
				qty = 1
			}
			order.LineItems = append(order.LineItems, entity.LineItem{
				SKU: strings.ToUpper(sku),
				// Safilo receipts carry the styled model name in the
				// brand slot of the SKU.
				Brand:     strings.ToUpper(dec.Brand),
				Model:     strings.ToUpper(dec.Brand),
				ColorCode: strings.ToUpper(dec.ColorCode),
				Size:      strconv.Itoa(dec.Size),
				Quantity:  qty,
			})
			continue
		}
		// A line that looks like an item but whose SKU does not decompose
		// is recorded, not dropped.
		if m := reSKUProbe.FindStringSubmatch(line); m != nil {
			if _, err := DecomposeSKU(m[1]); err != nil {
				order.Warnings = append(order.Warnings, err.Error())
			}
		}
	}
	return order
}
