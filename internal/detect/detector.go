// Package detect resolves which vendor sent an inbound order email.
//
// Forwarded emails lose the authoritative From header (it becomes the
// forwarder's address), so detection degrades through content-based signals
// before trusting headers. The priority order is an explicit rule list,
// evaluated first-match-wins.
package detect

import (
	"log/slog"
	"strings"

	"github.com/framedesk/order-intake/internal/entity"
)

// Signals are the detection inputs pulled off one inbound email.
type Signals struct {
	Subject          string
	FromAddress      string
	PlainTextBody    string
	HTMLBody         string
	HeaderReferences string
	HeaderInReplyTo  string
}

// SignalsFromEmail extracts detection signals from a webhook payload.
func SignalsFromEmail(email *entity.InboundEmail) Signals {
	return Signals{
		Subject:          email.Headers.Subject,
		FromAddress:      email.Headers.From,
		PlainTextBody:    email.Plain,
		HTMLBody:         email.HTML,
		HeaderReferences: email.Headers.References,
		HeaderInReplyTo:  email.Headers.InReplyTo,
	}
}

// rule is one (predicate, vendor identity) pair in the detection chain.
type rule struct {
	name   string
	vendor string
	match  func(s *Signals) bool
}

// Detector runs the ordered detection chain.
type Detector struct {
	rules  []rule
	logger *slog.Logger
}

// NewDetector builds a detector with the default vendor rule chain.
func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{rules: buildRules(), logger: logger}
}

// Detect returns the normalized vendor identity for the message, or the raw
// sender domain when no rule matches. It never fails: ambiguity degrades to
// the fallback identity.
func (d *Detector) Detect(s Signals) string {
	for _, r := range d.rules {
		if r.match(&s) {
			d.logger.Debug("detect.matched", "rule", r.name, "vendor", r.vendor)
			return r.vendor
		}
	}
	fallback := senderDomain(s.FromAddress)
	d.logger.Info("detect.fallback", "from", s.FromAddress, "identity", fallback)
	return fallback
}

// senderDomain returns the domain portion of an address like
// "Name <user@host>" or "user@host", verbatim (lowercased).
func senderDomain(from string) string {
	addr := from
	if i := strings.LastIndex(addr, "<"); i >= 0 {
		addr = addr[i+1:]
		addr = strings.TrimSuffix(strings.TrimSpace(addr), ">")
	}
	if i := strings.LastIndex(addr, "@"); i >= 0 {
		addr = addr[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(addr))
}
