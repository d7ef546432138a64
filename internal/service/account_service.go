package service

import (
	"context"

	"github.com/carson-networks/bank-dashboard/internal/storage"
)

// AccountService handles read-only account projections.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns every account. The dashboard shows them all on one
// screen, so there is no pagination here.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i := range rows {
		accounts[i] = accountFromStorage(&rows[i])
	}
	return accounts, nil
}

// GetAccount retrieves an account by id. Returns account.ErrNotFound when the
// id does not exist.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := accountFromStorage(row)
	return &converted, nil
}
