package htmlparse

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
)

// classDialectHTML is the vendor's original confirmation template, with CSS
// class hooks intact.
const classDialectHTML = `<html><body>
<div class="order-number">Order #1484047</div>
<span class="order-date">7/21/2023</span>
<table class="customer-info">
  <tr><td>Account #:</td><td>AZ6372</td></tr>
  <tr><td>Name:</td><td>PARADISE VALLEY EYECARE</td></tr>
  <tr><td>Address:</td><td>4001 E BELL RD</td></tr>
  <tr><td>City:</td><td>PHOENIX</td></tr>
  <tr><td>State:</td><td>AZ</td></tr>
  <tr><td>Zip:</td><td>85032</td></tr>
  <tr><td>Phone:</td><td>(602) 555-0134</td></tr>
</table>
<table class="order-items">
  <tr><th>Model</th><th>Color</th><th>Size</th><th>Qty</th><th>Order Type</th></tr>
  <tr><td colspan="5">ATTITUDES</td></tr>
  <tr><td>Attitudes 37</td><td>BLACK</td><td>52-17-140</td><td>1</td><td>Stock</td></tr>
  <tr><td>Attitudes 41</td><td>TORTOISE</td><td>54-16-140</td><td>2</td><td>Stock</td></tr>
  <tr><td>&nbsp;</td><td>&nbsp;</td><td>&nbsp;</td><td>&nbsp;</td><td>&nbsp;</td></tr>
  <tr><td colspan="5">B.M.E.C.</td></tr>
  <tr><td>Big Mens 12</td><td>GUNMETAL</td><td>58-17-150</td><td>1</td><td>Backorder</td></tr>
</table>
</body></html>`

// forwardedDialectHTML is the same order after a mail client forwarded it:
// classes stripped, styles inlined, headings demoted to plain markup.
const forwardedDialectHTML = `<html><body style="font-family:Arial">
<p style="font-weight:bold">Order Number: 1484047</p>
<p>Order Date: 7/21/2023</p>
<table style="border:0">
  <tr><td style="padding:2px">Account #</td><td>AZ6372</td></tr>
  <tr><td>Name</td><td>PARADISE VALLEY EYECARE</td></tr>
  <tr><td>Address</td><td>4001 E BELL RD</td></tr>
  <tr><td>City/State/Zip</td><td>PHOENIX, AZ 85032</td></tr>
  <tr><td>Phone</td><td>(602) 555-0134</td></tr>
</table>
<table style="border:1px solid #ccc">
  <tr><td style="font-weight:bold">Model</td><td>Color</td><td>Size</td><td>Qty</td><td>Order Type</td></tr>
  <tr><td colspan="5" style="background:#eee">ATTITUDES</td></tr>
  <tr><td>Attitudes 37</td><td>BLACK</td><td>52-17-140</td><td>1</td><td>Stock</td></tr>
  <tr><td>Attitudes 41</td><td>TORTOISE</td><td>54-16-140</td><td>2</td><td>Stock</td></tr>
  <tr><td colspan="5" style="background:#eee">B.M.E.C.</td></tr>
  <tr><td>Big Mens 12</td><td>GUNMETAL</td><td>58-17-150</td><td>1</td><td>Backorder</td></tr>
</table>
</body></html>`

func parseHTML(t *testing.T, src string) *entity.ParsedOrder {
	t.Helper()
	p := New(nil)
	order, err := p.Parse(context.Background(), parse.EmailContent{HTML: src})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return order
}

func checkOrder(t *testing.T, order *entity.ParsedOrder) {
	t.Helper()
	if order.OrderNumber != "1484047" {
		t.Errorf("OrderNumber = %q, want 1484047", order.OrderNumber)
	}
	if order.OrderDate != "7/21/2023" {
		t.Errorf("OrderDate = %q, want 7/21/2023", order.OrderDate)
	}
	if order.AccountNumber != "AZ6372" {
		t.Errorf("AccountNumber = %q, want AZ6372", order.AccountNumber)
	}
	if order.CustomerName != "PARADISE VALLEY EYECARE" {
		t.Errorf("CustomerName = %q", order.CustomerName)
	}
	if order.ShipAddress == nil {
		t.Fatal("ShipAddress is nil")
	}
	if order.ShipAddress.City != "PHOENIX" || order.ShipAddress.State != "AZ" || order.ShipAddress.PostalCode != "85032" {
		t.Errorf("locality = %q/%q/%q, want PHOENIX/AZ/85032",
			order.ShipAddress.City, order.ShipAddress.State, order.ShipAddress.PostalCode)
	}
	if len(order.LineItems) != 3 {
		t.Fatalf("got %d line items, want 3: %+v", len(order.LineItems), order.LineItems)
	}
	if got := order.TotalPieces(); got != 4 {
		t.Errorf("TotalPieces = %d, want 4", got)
	}

	want := []entity.LineItem{
		{
			SKU: "ATTITUDES/ATTITUDES-37/BLACK", Brand: "ATTITUDES",
			Model: "ATTITUDES 37", ColorCode: "BLACK", ColorName: "BLACK",
			Size: "52", TempleLength: "140", Quantity: 1, OrderType: constants.OrderTypeStock,
		},
		{
			SKU: "ATTITUDES/ATTITUDES-41/TORTOISE", Brand: "ATTITUDES",
			Model: "ATTITUDES 41", ColorCode: "TORTOISE", ColorName: "TORTOISE",
			Size: "54", TempleLength: "140", Quantity: 2, OrderType: constants.OrderTypeStock,
		},
		{
			SKU: "B.M.E.C./BIG-MENS-12/GUNMETAL", Brand: "B.M.E.C.",
			Model: "BIG MENS 12", ColorCode: "GUNMETAL", ColorName: "GUNMETAL",
			Size: "58", TempleLength: "150", Quantity: 1, OrderType: constants.OrderTypeBackorder,
		},
	}
	for i, w := range want {
		if order.LineItems[i] != w {
			t.Errorf("item %d = %+v, want %+v", i, order.LineItems[i], w)
		}
	}
}

func TestParseClassDialect(t *testing.T) {
	order := parseHTML(t, classDialectHTML)
	checkOrder(t, order)
	if order.VendorName != "modernoptical" {
		t.Errorf("VendorName = %q", order.VendorName)
	}
}

func TestParseForwardedDialect(t *testing.T) {
	checkOrder(t, parseHTML(t, forwardedDialectHTML))
}

// Both dialects carry the same order; the extracted data must agree apart
// from incidental warnings.
func TestDialectEquivalence(t *testing.T) {
	a := parseHTML(t, classDialectHTML)
	b := parseHTML(t, forwardedDialectHTML)
	a.Warnings, b.Warnings = nil, nil
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("dialects disagree:\n class: %+v\n fwd:   %+v", a, b)
	}
}

// Parsing is pure: the same input yields an equal, freshly allocated order.
func TestParseIdempotent(t *testing.T) {
	a := parseHTML(t, classDialectHTML)
	b := parseHTML(t, classDialectHTML)
	if a == b {
		t.Fatal("expected distinct allocations")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeat parse differs:\n first:  %+v\n second: %+v", a, b)
	}
}

func TestParseEmptyHTML(t *testing.T) {
	p := New(nil)
	for _, src := range []string{"", "   \n\t"} {
		_, err := p.Parse(context.Background(), parse.EmailContent{HTML: src})
		if !errors.Is(err, common.ErrParse) {
			t.Fatalf("Parse(%q) err = %v, want ErrParse", src, err)
		}
	}
}

func TestParseMissingSectionsWarns(t *testing.T) {
	// Readable HTML with no recognizable blocks parses with warnings, not
	// an error; validation downstream decides what to do with it.
	order := parseHTML(t, "<html><body><p>Thanks for your order!</p></body></html>")
	if order.OrderNumber != "" || len(order.LineItems) != 0 {
		t.Fatalf("unexpected extraction: %+v", order)
	}
	if len(order.Warnings) == 0 {
		t.Fatal("expected warnings for missing sections")
	}
}

func TestBadQuantityDefaultsToOne(t *testing.T) {
	src := `<table>
	<tr><th>Model</th><th>Color</th><th>Qty</th></tr>
	<tr><td>Attitudes 37</td><td>BLACK</td><td>n/a</td></tr>
	</table>`
	order := parseHTML(t, src)
	if len(order.LineItems) != 1 {
		t.Fatalf("got %d items, want 1", len(order.LineItems))
	}
	if order.LineItems[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want fallback 1", order.LineItems[0].Quantity)
	}
	if len(order.Warnings) == 0 {
		t.Error("expected a quantity warning")
	}
}

func TestSplitSize(t *testing.T) {
	tests := []struct {
		in, size, temple string
	}{
		{"58-17-150", "58", "150"},
		{"52/17/140", "52", "140"},
		{"54", "54", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		size, temple := splitSize(tt.in)
		if size != tt.size || temple != tt.temple {
			t.Errorf("splitSize(%q) = (%q, %q), want (%q, %q)", tt.in, size, temple, tt.size, tt.temple)
		}
	}
}

func TestSplitLocality(t *testing.T) {
	city, state, zip := splitLocality("PHOENIX, AZ 85032")
	if city != "PHOENIX" || state != "AZ" || zip != "85032" {
		t.Fatalf("got (%q, %q, %q)", city, state, zip)
	}
	city, state, zip = splitLocality("PHOENIX AZ 85032")
	if city != "PHOENIX" || state != "AZ" || zip != "85032" {
		t.Fatalf("no-comma form: got (%q, %q, %q)", city, state, zip)
	}
}
