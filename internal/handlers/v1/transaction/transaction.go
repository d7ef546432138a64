package transaction

import (
	"time"

	"github.com/carson-networks/bank-dashboard/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          int64   `json:"id" doc:"Store-assigned identifier"`
	AccountID   string  `json:"accountId" doc:"Owning account id"`
	Type        string  `json:"type" doc:"DEPOSIT, WITHDRAWAL or TRANSFER"`
	Amount      float64 `json:"amount" doc:"Unsigned amount; direction is implied by type"`
	Description string  `json:"description" doc:"Free text"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation timestamp"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.InexactFloat64(),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
