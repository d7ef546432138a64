package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID            string
	AccountNumber string
	AccountType   account.Type
	Balance       decimal.Decimal
	AccountHolder string
	CreatedAt     time.Time
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:            row.ID,
		AccountNumber: row.AccountNumber,
		AccountType:   row.AccountType,
		Balance:       row.Balance,
		AccountHolder: row.AccountHolder,
		CreatedAt:     row.CreatedAt,
	}
}
