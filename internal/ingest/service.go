// Package ingest is the engine entry point: one synchronous pass from raw
// email to validated, deduplicated, enriched order records.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/crossref"
	"github.com/framedesk/order-intake/internal/detect"
	"github.com/framedesk/order-intake/internal/dupes"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/parse"
)

// Service coordinates detect → parse → cross-reference → duplicate-check.
// It is stateless across invocations; everything it produces lives only
// for the duration of one call.
type Service struct {
	detector *detect.Detector
	registry *parse.Registry
	enricher *crossref.Enricher
	dupes    *dupes.Detector
	logger   *slog.Logger
}

// NewService wires the engine components together.
func NewService(detector *detect.Detector, registry *parse.Registry, enricher *crossref.Enricher, dup *dupes.Detector, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		detector: detector,
		registry: registry,
		enricher: enricher,
		dupes:    dup,
		logger:   logger,
	}
}

// IngestEmail processes one webhook payload end-to-end. Only a
// structurally unreadable source document returns an error; parse warnings
// and lookup failures degrade the validation fields instead.
func (s *Service) IngestEmail(ctx context.Context, accountID uuid.UUID, email *entity.InboundEmail) (*entity.IngestResult, error) {
	ctx = common.WithMessageID(ctx, email.Headers.MessageID)

	identity := s.detector.Detect(detect.SignalsFromEmail(email))
	s.logger.Info("ingest.detected", "identity", identity, "message_id", email.Headers.MessageID)

	if !s.registry.HasParser(identity) {
		return nil, common.NewAppError("NO_PARSER",
			"no parser registered for vendor identity "+identity, common.ErrNotFound)
	}

	order, err := s.registry.ParseEmail(ctx, identity, email.HTML, email.Plain, email.Attachments)
	if err != nil {
		s.logger.Error("ingest.parse.failed", "identity", identity, "error", err)
		return nil, err
	}

	report := parse.ValidateParsedData(order)
	if !report.Valid && order.OrderNumber == "" && len(order.LineItems) == 0 {
		// Nothing usable came out: treat as unreadable rather than
		// persisting an empty shell.
		return nil, &parse.ParseError{Vendor: identity, Reason: "no extractable order data"}
	}

	enriched, stats := s.enricher.Enrich(ctx, order.VendorName, order.LineItems)

	result := s.assemble(order, enriched, stats, report)

	dupRes, err := s.dupes.Check(ctx, accountID, order.VendorName, order.OrderNumber, order.CustomerName, order.AccountNumber)
	if err != nil {
		// A failed duplicate check must not drop the order; downstream
		// reconciliation catches true duplicates.
		s.logger.Warn("ingest.dupes.unavailable", "order_number", order.OrderNumber, "error", err)
	} else {
		result.IsDuplicate = dupRes.IsDuplicate
		result.DuplicateNote = dupRes.Message
	}

	if err := ValidateResultPayload(result); err != nil {
		s.logger.Error("ingest.output.schema_violation", "error", err)
	}

	s.logger.Info("ingest.done",
		"vendor", result.Vendor,
		"order_number", result.Order.OrderNumber,
		"items", len(result.Items),
		"validation_rate", result.EnrichmentStats.ValidationRate,
		"duplicate", result.IsDuplicate,
	)
	return result, nil
}

func (s *Service) assemble(order *entity.ParsedOrder, items []entity.EnrichedLineItem, stats entity.EnrichmentStats, report entity.ValidationReport) *entity.IngestResult {
	status := constants.ParseStatusParsed
	if !report.Valid || stats.ValidationRate < 100 {
		status = constants.ParseStatusPartial
	}

	var accountNumber *string
	if order.AccountNumber != "" {
		n := order.AccountNumber
		accountNumber = &n
	}

	return &entity.IngestResult{
		Vendor:        order.VendorName,
		AccountNumber: accountNumber,
		Order: entity.OrderSummary{
			OrderNumber:   order.OrderNumber,
			CustomerName:  order.CustomerName,
			AccountNumber: order.AccountNumber,
			OrderDate:     order.OrderDate,
			TotalPieces:   order.TotalPieces(),
			RepName:       order.PlacedByRep,
			ParseStatus:   status,
		},
		Items:           items,
		ParsedAt:        time.Now().UTC(),
		EnrichmentStats: stats,
	}
}
