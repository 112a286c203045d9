package parse

import (
	"context"
	"errors"
	"testing"

	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

type stubParser struct {
	vendor string
	order  *entity.ParsedOrder
	err    error
	calls  int
}

func (p *stubParser) Vendor() string { return p.vendor }

func (p *stubParser) Parse(ctx context.Context, content EmailContent) (*entity.ParsedOrder, error) {
	p.calls++
	return p.order, p.err
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry(nil)
	p := &stubParser{vendor: "modernoptical", order: &entity.ParsedOrder{OrderNumber: "1"}}
	r.Register(p, "modernoptical.com")

	if !r.HasParser("modernoptical") {
		t.Fatal("expected parser for own vendor identity")
	}
	if !r.HasParser("modernoptical.com") {
		t.Fatal("expected parser for extra identity")
	}
	if !r.HasParser("  ModernOptical.COM ") {
		t.Fatal("identity lookup should be normalized")
	}

	got, err := r.ParseEmail(context.Background(), "modernoptical.com", "<html/>", "", nil)
	if err != nil {
		t.Fatalf("ParseEmail: %v", err)
	}
	if got == nil || got.OrderNumber != "1" {
		t.Fatalf("ParseEmail returned %+v", got)
	}
	if p.calls != 1 {
		t.Fatalf("parser called %d times, want 1", p.calls)
	}
}

func TestRegistryUnknownIdentity(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&stubParser{vendor: "safilo"})

	got, err := r.ParseEmail(context.Background(), "unknownvendor.example", "", "", nil)
	if err != nil {
		t.Fatalf("unknown identity must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("unknown identity must yield nil order, got %+v", got)
	}
	if r.HasParser("unknownvendor.example") {
		t.Fatal("HasParser should be false for unknown identity")
	}
}

func TestRegistryParserErrorPropagates(t *testing.T) {
	r := NewRegistry(nil)
	perr := &ParseError{Vendor: "safilo", Reason: "no pdf attachment"}
	r.Register(&stubParser{vendor: "safilo", err: perr})

	_, err := r.ParseEmail(context.Background(), "safilo", "", "", nil)
	if !errors.Is(err, common.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestValidateParsedData(t *testing.T) {
	good := &entity.ParsedOrder{
		OrderNumber: "1484047",
		LineItems: []entity.LineItem{
			{Model: "ATTITUDES 37", Quantity: 1},
		},
	}
	report := ValidateParsedData(good)
	if !report.Valid || len(report.Errors) != 0 {
		t.Fatalf("expected valid report, got %+v", report)
	}

	tests := []struct {
		name      string
		order     *entity.ParsedOrder
		wantValid bool
		wantErrs  int
	}{
		{"nil order", nil, false, 1},
		{"missing order number", &entity.ParsedOrder{
			LineItems: []entity.LineItem{{Model: "M", Quantity: 1}},
		}, false, 1},
		{"no items", &entity.ParsedOrder{OrderNumber: "7"}, false, 1},
		{"bad item fields", &entity.ParsedOrder{
			OrderNumber: "7",
			LineItems:   []entity.LineItem{{Model: "", Quantity: 0}},
		}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateParsedData(tt.order)
			if r.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", r.Valid, tt.wantValid, r.Errors)
			}
			if len(r.Errors) != tt.wantErrs {
				t.Fatalf("got %d errors %v, want %d", len(r.Errors), r.Errors, tt.wantErrs)
			}
		})
	}
}
