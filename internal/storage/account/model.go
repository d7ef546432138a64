package account

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no account exists for the requested id.
var ErrNotFound = errors.New("account not found")

// Type is the closed set of account types.
type Type string

const (
	TypeChecking Type = "CHECKING"
	TypeSavings  Type = "SAVINGS"
)

// Account represents an account record.
type Account struct {
	ID            string          `db:"id"`
	AccountNumber string          `db:"account_number"`
	AccountType   Type            `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	AccountHolder string          `db:"account_holder"`
	CreatedAt     time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID            string
	AccountNumber string
	AccountType   Type
	Balance       decimal.Decimal
	AccountHolder string
	CreatedAt     time.Time // defaults to now if zero
}

// IAccountTable defines the interface for read-only account storage
// operations. This abstraction allows swapping the implementation without
// changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
}
