package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/framedesk/order-intake/gen/ent"
	"github.com/framedesk/order-intake/gen/ent/account"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error)
	CreateAccount(ctx context.Context, name string) (*ent.Account, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type accountRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAccountRepository(client *ent.Client, logger *slog.Logger) AccountRepository {
	return &accountRepository{client: client, logger: logger}
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error) {
	return r.client.Account.Query().Where(account.ID(id)).Only(ctx)
}

func (r *accountRepository) CreateAccount(ctx context.Context, name string) (*ent.Account, error) {
	row, err := r.client.Account.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create account", "name", name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *accountRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Account.Query().Where(account.ID(id)).Exist(ctx)
}
