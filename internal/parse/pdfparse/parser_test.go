package pdfparse

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
)

const receiptText = `SAFILO USA
Order Receipt

Order Number: SO-2231187
Date: 07/21/2023
Customer: Paradise Valley Eyecare
Account: AZ6372
Rep: J. Morales

Item                      Qty    Price
CARRERA-8892/R80/56       1      68.00
HEXAGON/0086/52           2      54.50
SA1066/807/48             1
BROKEN/SKU 3
TOTAL PIECES 4
`

func TestParseText(t *testing.T) {
	p := New(nil)
	order := p.parseText(receiptText)

	if order.VendorName != "safilo" {
		t.Errorf("VendorName = %q", order.VendorName)
	}
	if order.OrderNumber != "SO-2231187" {
		t.Errorf("OrderNumber = %q", order.OrderNumber)
	}
	if order.OrderDate != "07/21/2023" {
		t.Errorf("OrderDate = %q", order.OrderDate)
	}
	if order.CustomerName != "PARADISE VALLEY EYECARE" {
		t.Errorf("CustomerName = %q", order.CustomerName)
	}
	if order.AccountNumber != "AZ6372" {
		t.Errorf("AccountNumber = %q", order.AccountNumber)
	}
	if order.PlacedByRep != "J. Morales" {
		t.Errorf("PlacedByRep = %q", order.PlacedByRep)
	}

	if len(order.LineItems) != 3 {
		t.Fatalf("got %d items, want 3: %+v", len(order.LineItems), order.LineItems)
	}
	want := []entity.LineItem{
		{SKU: "CARRERA-8892/R80/56", Brand: "CARRERA-8892", Model: "CARRERA-8892", ColorCode: "R80", Size: "56", Quantity: 1},
		{SKU: "HEXAGON/0086/52", Brand: "HEXAGON", Model: "HEXAGON", ColorCode: "0086", Size: "52", Quantity: 2},
		{SKU: "SA1066/807/48", Brand: "SA1066", Model: "SA1066", ColorCode: "807", Size: "48", Quantity: 1},
	}
	for i, w := range want {
		if order.LineItems[i] != w {
			t.Errorf("item %d = %+v, want %+v", i, order.LineItems[i], w)
		}
	}
	if order.TotalPieces() != 4 {
		t.Errorf("TotalPieces = %d, want 4", order.TotalPieces())
	}

	// The malformed SKU line surfaces as a warning, not a dropped row.
	if len(order.Warnings) != 1 || !strings.Contains(order.Warnings[0], "BROKEN/SKU") {
		t.Errorf("warnings = %v, want one mentioning BROKEN/SKU", order.Warnings)
	}
}

func TestParseTextBadSizeIsWarning(t *testing.T) {
	p := New(nil)
	order := p.parseText("Order Number: 1\nGOOD/COL/54  1\nBAD/COL/19  2\n")
	if len(order.LineItems) != 1 {
		t.Fatalf("got %d items, want 1", len(order.LineItems))
	}
	if len(order.Warnings) != 1 || !strings.Contains(order.Warnings[0], "out of range") {
		t.Fatalf("warnings = %v, want out-of-range warning", order.Warnings)
	}
}

func TestParseNoPDFAttachment(t *testing.T) {
	p := New(nil)
	content := parse.EmailContent{
		Plain: "receipt attached",
		Attachments: []entity.Attachment{
			{ContentType: "image/png", FileName: "logo.png", Content: []byte{1}},
		},
	}
	_, err := p.Parse(context.Background(), content)
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestParseInvalidPDFBytes(t *testing.T) {
	p := New(nil)
	content := parse.EmailContent{
		Attachments: []entity.Attachment{
			{ContentType: "application/pdf", FileName: "receipt.pdf", Content: []byte("not a pdf at all")},
		},
	}
	_, err := p.Parse(context.Background(), content)
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
	var perr *parse.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %T, want *parse.ParseError", err)
	}
}

func TestExtractTextEmptyBuffer(t *testing.T) {
	if _, err := ExtractText(nil); err == nil {
		t.Fatal("expected error for empty buffer")
	}
	if _, err := ExtractText([]byte{}); err == nil {
		t.Fatal("expected error for empty buffer")
	}
}
