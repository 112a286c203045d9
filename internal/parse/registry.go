package parse

import (
	"context"
	"log/slog"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/entity"
)

// Registry maps vendor identities to parser instances. A parser may be
// registered under several keys (a normalized address and a domain, say) so
// the detector's fallback chain can resolve to a concrete parser without
// knowing parser internals.
type Registry struct {
	parsers map[string]Parser
	logger  *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{parsers: make(map[string]Parser), logger: logger}
}

// Register binds a parser to one or more identity keys. The parser's own
// vendor identity is always included.
func (r *Registry) Register(p Parser, identities ...string) {
	keys := append([]string{p.Vendor()}, identities...)
	for _, id := range keys {
		key := constants.NormalizeVendor(id)
		if key == "" {
			continue
		}
		if prev, ok := r.parsers[key]; ok && prev != p {
			r.logger.Warn("registry.rebind", "identity", key, "vendor", p.Vendor())
		}
		r.parsers[key] = p
	}
}

// HasParser reports whether a parser is registered for the identity.
func (r *Registry) HasParser(identity string) bool {
	_, ok := r.parsers[constants.NormalizeVendor(identity)]
	return ok
}

// ParseEmail dispatches to the parser registered for the identity.
// Unknown identities yield (nil, nil): not parseable, not an error.
func (r *Registry) ParseEmail(ctx context.Context, identity, html, plain string, attachments []entity.Attachment) (*entity.ParsedOrder, error) {
	p, ok := r.parsers[constants.NormalizeVendor(identity)]
	if !ok {
		r.logger.Info("registry.no_parser", "identity", identity)
		return nil, nil
	}
	return p.Parse(ctx, EmailContent{HTML: html, Plain: plain, Attachments: attachments})
}
