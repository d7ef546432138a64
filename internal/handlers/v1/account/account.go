package account

import (
	"time"

	"github.com/carson-networks/bank-dashboard/internal/service"
)

// Account is the API response model for an account. Balance is a JSON number
// to match the dashboard client.
type Account struct {
	ID            string  `json:"id" doc:"Account id"`
	AccountNumber string  `json:"accountNumber" doc:"Unique display identifier"`
	AccountType   string  `json:"accountType" doc:"CHECKING or SAVINGS"`
	Balance       float64 `json:"balance" doc:"Current balance"`
	AccountHolder string  `json:"accountHolder" doc:"Display name"`
	CreatedAt     string  `json:"createdAt" doc:"RFC3339 creation timestamp"`
}

func fromService(acc *service.Account) Account {
	return Account{
		ID:            acc.ID,
		AccountNumber: acc.AccountNumber,
		AccountType:   string(acc.AccountType),
		Balance:       acc.Balance.InexactFloat64(),
		AccountHolder: acc.AccountHolder,
		CreatedAt:     acc.CreatedAt.Format(time.RFC3339),
	}
}
