package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordersv1 "github.com/framedesk/order-intake/gen/proto/orders/v1"
	"github.com/framedesk/order-intake/internal/common"
	"github.com/framedesk/order-intake/internal/entity"
	"github.com/framedesk/order-intake/internal/ingest"
	"github.com/framedesk/order-intake/internal/repository"
	"github.com/framedesk/order-intake/internal/utils"
)

type IngestionServer struct {
	ordersv1.UnimplementedIngestionServiceServer
	engine   *ingest.Service
	accounts repository.AccountRepository
	orders   repository.OrderRepository
	logger   *slog.Logger
}

func NewIngestionServer(engine *ingest.Service, accounts repository.AccountRepository, orders repository.OrderRepository, logger *slog.Logger) *IngestionServer {
	return &IngestionServer{
		engine:   engine,
		accounts: accounts,
		orders:   orders,
		logger:   logger,
	}
}

// IngestEmail implements ordersv1.IngestionServiceServer. Duplicates come
// back with is_duplicate set and are not persisted again.
func (s *IngestionServer) IngestEmail(ctx context.Context, req *ordersv1.IngestEmailRequest) (*ordersv1.IngestEmailResponse, error) {
	aid := strings.TrimSpace(req.GetAccountId())
	if aid == "" {
		s.logger.Error("ingest request missing account_id")
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	accountID, err := uuid.Parse(aid)
	if err != nil {
		s.logger.Error("invalid account_id format for ingest", "account_id", aid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "account_id must be a UUID")
	}
	if exists, _ := s.accounts.Exists(ctx, accountID); !exists {
		s.logger.Error("account not found for ingest", "account_id", accountID)
		return nil, status.Error(codes.InvalidArgument, "account not found")
	}

	email := emailFromRequest(req)
	if email.HTML == "" && email.Plain == "" && len(email.Attachments) == 0 {
		return nil, status.Error(codes.InvalidArgument, "email has no content")
	}

	s.logger.Info("starting email ingest", "account_id", accountID, "message_id", email.Headers.MessageID)

	result, err := s.engine.IngestEmail(ctx, accountID, email)
	if err != nil {
		if errors.Is(err, common.ErrParse) {
			s.logger.Warn("unreadable source document", "message_id", email.Headers.MessageID, "error", err)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		s.logger.Error("ingest failed", "message_id", email.Headers.MessageID, "error", err)
		return nil, status.Error(codes.Internal, "ingest failed")
	}

	if !result.IsDuplicate {
		if _, err := s.orders.SaveIngestResult(ctx, accountID, result); err != nil {
			s.logger.Error("failed to persist ingest result", "order_number", result.Order.OrderNumber, "error", err)
			return nil, status.Error(codes.Internal, "persist failed")
		}
	}

	return utils.ToPBResult(result), nil
}

func emailFromRequest(req *ordersv1.IngestEmailRequest) *entity.InboundEmail {
	h := req.GetHeaders()
	email := &entity.InboundEmail{
		Headers: entity.EmailHeaders{
			From:       h.GetFrom(),
			To:         h.GetTo(),
			Subject:    h.GetSubject(),
			Date:       h.GetDate(),
			MessageID:  h.GetMessageId(),
			References: h.GetReferences(),
			InReplyTo:  h.GetInReplyTo(),
		},
		Envelope: entity.EmailEnvelope{
			From: req.GetEnvelopeFrom(),
			To:   req.GetEnvelopeTo(),
		},
		Plain: req.GetPlain(),
		HTML:  req.GetHtml(),
	}
	for _, a := range req.GetAttachments() {
		email.Attachments = append(email.Attachments, entity.Attachment{
			ContentType: a.GetContentType(),
			FileName:    a.GetFileName(),
			Size:        int(a.GetSize()),
			Content:     a.GetContent(),
		})
	}
	return email
}
