package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/storage"
	"github.com/carson-networks/bank-dashboard/internal/storage/account"
)

// SeedAccounts inserts the demo accounts the dashboard ships with. Inserts
// are conflict-free so running it on every startup is safe.
type SeedAccounts struct {
	IAction
}

func (s *SeedAccounts) Perform(ctx context.Context, writer *storage.Writer) error {
	seeds := []account.AccountCreate{
		{
			ID:            "1",
			AccountNumber: "1001",
			AccountType:   account.TypeChecking,
			Balance:       decimal.NewFromInt(5000),
			AccountHolder: "John Doe",
		},
		{
			ID:            "2",
			AccountNumber: "1002",
			AccountType:   account.TypeSavings,
			Balance:       decimal.NewFromInt(10000),
			AccountHolder: "Jane Smith",
		},
	}

	for i := range seeds {
		if err := writer.Account.Insert(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	return nil
}
