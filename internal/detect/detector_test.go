package detect

import (
	"testing"

	"github.com/framedesk/order-intake/internal/entity"
)

func TestDetectSubjectAndBody(t *testing.T) {
	d := NewDetector(nil)

	tests := []struct {
		name string
		in   Signals
		want string
	}{
		{
			name: "modern optical confirmation",
			in: Signals{
				Subject:       "Your Order Confirmation #1484047",
				FromAddress:   "noreply@modernoptical.com",
				PlainTextBody: "Thank you for ordering from Modern Optical International.",
			},
			want: "modernoptical",
		},
		{
			name: "safilo receipt",
			in: Signals{
				Subject:       "Safilo Order Receipt",
				FromAddress:   "orders@safilo.com",
				PlainTextBody: "Your order has been received. Visit mysafilo.com for status.",
			},
			want: "safilo",
		},
		{
			name: "generic subject alone does not match",
			in: Signals{
				Subject:       "Order Confirmation",
				FromAddress:   "sales@acmeframes.example",
				PlainTextBody: "Thanks for your order.",
			},
			want: "acmeframes.example",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.in); got != tt.want {
				t.Fatalf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectForwardedEmail(t *testing.T) {
	d := NewDetector(nil)

	// Forwarding rewrites the live From header; the original sender survives
	// only as quoted text in the body.
	s := Signals{
		Subject:     "FW: your order",
		FromAddress: "drsmith@paradisevalleyeyecare.com",
		PlainTextBody: "FYI, order went through.\n\n" +
			"---------- Forwarded message ----------\n" +
			"> From: Modern Optical <orders@modernoptical.com>\n" +
			"> Subject: Your Order Confirmation\n",
	}
	if got := d.Detect(s); got != "modernoptical" {
		t.Fatalf("Detect() = %q, want modernoptical", got)
	}
}

func TestDetectBrandPhraseInFooter(t *testing.T) {
	d := NewDetector(nil)

	s := Signals{
		Subject:     "FW: frames",
		FromAddress: "assistant@clinic.example",
		HTMLBody:    "<html><body><p>order attached</p><footer>Safilo Group S.p.A.</footer></body></html>",
	}
	if got := d.Detect(s); got != "safilo" {
		t.Fatalf("Detect() = %q, want safilo", got)
	}
}

func TestDetectThreadHeaders(t *testing.T) {
	d := NewDetector(nil)

	s := Signals{
		Subject:          "RE: order status",
		FromAddress:      "someone@gmail.com",
		HeaderReferences: "<abc123@mail.modernoptical.com>",
	}
	if got := d.Detect(s); got != "modernoptical" {
		t.Fatalf("Detect() = %q, want modernoptical", got)
	}
}

func TestDetectFallbackSenderDomain(t *testing.T) {
	d := NewDetector(nil)

	tests := []struct {
		from string
		want string
	}{
		{"orders@luxfra.example", "luxfra.example"},
		{"Lux Frames <Orders@LuxFra.Example>", "luxfra.example"},
		{"no-at-sign", "no-at-sign"},
	}
	for _, tt := range tests {
		got := d.Detect(Signals{FromAddress: tt.from})
		if got != tt.want {
			t.Fatalf("Detect(from=%q) = %q, want %q", tt.from, got, tt.want)
		}
	}
}

func TestDetectPriorityContentOverHeaders(t *testing.T) {
	d := NewDetector(nil)

	// Body signals must win over thread headers pointing elsewhere.
	s := Signals{
		Subject:          "Modern Optical Order Confirmation",
		FromAddress:      "relay@forwarder.example",
		PlainTextBody:    "see modernoptical.com for details",
		HeaderReferences: "<x@safilo.com>",
	}
	if got := d.Detect(s); got != "modernoptical" {
		t.Fatalf("Detect() = %q, want modernoptical", got)
	}
}

func TestSignalsFromEmail(t *testing.T) {
	email := &entity.InboundEmail{
		Headers: entity.EmailHeaders{
			Subject:    "s",
			From:       "f@x.com",
			References: "r",
			InReplyTo:  "i",
		},
		Plain: "p",
		HTML:  "<b>h</b>",
	}
	s := SignalsFromEmail(email)
	if s.Subject != "s" || s.FromAddress != "f@x.com" || s.PlainTextBody != "p" ||
		s.HTMLBody != "<b>h</b>" || s.HeaderReferences != "r" || s.HeaderInReplyTo != "i" {
		t.Fatalf("unexpected signals: %+v", s)
	}
}
