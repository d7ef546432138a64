package service

import (
	"context"

	"github.com/carson-networks/bank-dashboard/internal/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// TransactionService handles read-only transaction projections.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListAccountTransactions returns one page of the account's transactions,
// newest first. Non-positive page or limit values are clamped to the
// defaults rather than handed to the database.
func (s *TransactionService) ListAccountTransactions(ctx context.Context, accountID string, page, limit int) ([]Transaction, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	rows, err := s.storage.Transactions.ListForAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i := range rows {
		transactions[i] = transactionFromStorage(&rows[i])
	}
	return transactions, nil
}
