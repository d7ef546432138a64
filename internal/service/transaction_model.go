package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	AccountID   string
	Type        transaction.Type
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Type:        row.Type,
		Amount:      row.Amount,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
