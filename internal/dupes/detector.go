// Package dupes flags orders that were already ingested for an account, to
// avoid double-booking inventory. The policy is intentionally conservative:
// a false "duplicate" silently drops a real order, which is worse than an
// occasional true duplicate slipping through to downstream reconciliation.
package dupes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// StoredOrder is the identity projection of an already-persisted order.
type StoredOrder struct {
	Vendor        string
	OrderNumber   string
	AccountNumber string
	CustomerName  string
}

// OrderStore is the collaborator that lists existing orders per account.
type OrderStore interface {
	ListOrderIdentities(ctx context.Context, accountID uuid.UUID, vendor string) ([]StoredOrder, error)
}

// CheckResult is the outcome of one duplicate check. Duplicates are a
// normal outcome, not an error.
type CheckResult struct {
	IsDuplicate bool   `json:"isDuplicate"`
	Message     string `json:"message"`
}

// Detector checks new orders against stored ones.
type Detector struct {
	store  OrderStore
	strict bool
	logger *slog.Logger
}

// NewDetector returns a duplicate detector. In strict mode every tie-break
// field present on both sides must agree before a duplicate is declared;
// in lenient mode one agreeing tie-break field suffices even when another
// disagrees.
func NewDetector(store OrderStore, strict bool, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{store: store, strict: strict, logger: logger}
}

// Check compares the new order's identity fields against every stored
// order for the account. A matching orderNumber with no disagreeing
// tie-break field is a duplicate; vendors reuse order numbers across
// customers, so customerName and accountNumber break ties.
func (d *Detector) Check(ctx context.Context, accountID uuid.UUID, vendor, orderNumber, customerName, accountNumber string) (CheckResult, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return CheckResult{Message: "no order number; duplicate check skipped"}, nil
	}

	existing, err := d.store.ListOrderIdentities(ctx, accountID, vendor)
	if err != nil {
		return CheckResult{}, fmt.Errorf("list existing orders: %w", err)
	}

	for _, stored := range existing {
		if !fieldEq(stored.OrderNumber, orderNumber) {
			continue
		}
		if d.matchesTieBreaks(stored, customerName, accountNumber) {
			msg := fmt.Sprintf("order %s already ingested for this account", orderNumber)
			d.logger.Info("dupes.duplicate", "order_number", orderNumber, "account_id", accountID)
			return CheckResult{IsDuplicate: true, Message: msg}, nil
		}
		d.logger.Info("dupes.order_number_collision",
			"order_number", orderNumber,
			"stored_customer", stored.CustomerName,
			"new_customer", customerName,
		)
	}
	return CheckResult{Message: "no duplicate found"}, nil
}

// matchesTieBreaks applies the strictness policy to the tie-break fields.
// A field is comparable only when non-empty on both sides; missing values
// can neither confirm nor deny.
func (d *Detector) matchesTieBreaks(stored StoredOrder, customerName, accountNumber string) bool {
	agree, disagree := 0, 0
	compare := func(a, b string) {
		if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
			return
		}
		if fieldEq(a, b) {
			agree++
		} else {
			disagree++
		}
	}
	compare(stored.CustomerName, customerName)
	compare(stored.AccountNumber, accountNumber)

	if d.strict {
		return disagree == 0
	}
	return disagree == 0 || agree > 0
}

func fieldEq(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
