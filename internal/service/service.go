package service

import (
	"github.com/carson-networks/bank-dashboard/internal/storage"
)

// Service holds the read-only query services backing the dashboard.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
	}
}
