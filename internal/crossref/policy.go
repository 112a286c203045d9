package crossref

import "github.com/framedesk/order-intake/internal/entity"

// MatchPolicy is the open extension point over the core matching tiers.
// A consumer can reject or downgrade a proposed match (missing UPC above a
// price threshold, discontinued stock) without touching the matcher.
type MatchPolicy interface {
	Apply(item entity.LineItem, result entity.ValidationResult) entity.ValidationResult
}

// MatchPolicyFunc adapts a function to the MatchPolicy interface.
type MatchPolicyFunc func(item entity.LineItem, result entity.ValidationResult) entity.ValidationResult

func (f MatchPolicyFunc) Apply(item entity.LineItem, result entity.ValidationResult) entity.ValidationResult {
	return f(item, result)
}

// DefaultPolicy accepts every match the tiers produce.
var DefaultPolicy MatchPolicy = MatchPolicyFunc(
	func(_ entity.LineItem, r entity.ValidationResult) entity.ValidationResult { return r },
)
