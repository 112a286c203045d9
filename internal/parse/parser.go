// Package parse defines the format-parser contract and the registry that
// maps detected vendor identities onto concrete parsers.
package parse

import (
	"context"
	"fmt"

	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
)

// EmailContent is the source material handed to one format parser.
type EmailContent struct {
	HTML        string
	Plain       string
	Attachments []entity.Attachment
}

// Parser extracts a raw, unvalidated order from one vendor's format.
// Implementations form a closed set registered at startup.
type Parser interface {
	// Vendor is the normalized identity this parser handles.
	Vendor() string
	// Parse returns a fresh ParsedOrder, or a *ParseError when the source
	// document is structurally unreadable. Recoverable extraction problems
	// are recorded as order warnings, not errors.
	Parse(ctx context.Context, content EmailContent) (*entity.ParsedOrder, error)
}

// ParseError marks a source document that could not be read at all (empty
// HTML, invalid PDF, zero extractable text). It is fatal for that single
// message only.
type ParseError struct {
	Vendor string
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Vendor, e.Reason, e.Cause)
	}
	return fmt.Sprintf("parse %s: %s", e.Vendor, e.Reason)
}

func (e *ParseError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return common.ErrParse
}

// Is lets errors.Is(err, common.ErrParse) match every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == common.ErrParse
}
