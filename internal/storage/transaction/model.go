package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Type is the closed set of transaction types. Anything else is rejected
// before it reaches the store.
type Type string

const (
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
	TypeTransfer   Type = "TRANSFER"
)

// Valid reports whether t is one of the supported transaction types.
func (t Type) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return true
	}
	return false
}

// Transaction represents an immutable transaction record. Amount is the
// unsigned magnitude; direction is implied by Type.
type Transaction struct {
	ID          int64           `db:"id"`
	AccountID   string          `db:"account_id"`
	Type        Type            `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for appending a new transaction row.
type TransactionCreate struct {
	AccountID   string
	Type        Type
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time // defaults to now if zero
}

// ITransactionTable defines the interface for read-only transaction storage
// operations.
type ITransactionTable interface {
	ListForAccount(ctx context.Context, accountID string, limit, offset int) ([]Transaction, error)
}
