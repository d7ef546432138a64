package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/storage"
	"github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the
// account's current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnsupportedTransactionType is returned for any type outside the
// DEPOSIT/WITHDRAWAL/TRANSFER set.
var ErrUnsupportedTransactionType = errors.New("unsupported transaction type")

// ApplyTransaction posts a transaction against an account. It locks the
// account row, computes and persists the new balance, and appends the
// transaction record, all within the operator's single database transaction.
// Concurrent posts against the same account serialize on the row lock, and a
// failed insert never leaves a dangling balance update.
type ApplyTransaction struct {
	AccountID   string
	Type        transaction.Type
	Amount      decimal.Decimal
	Description string

	// Set by Perform on success.
	NewBalance    decimal.Decimal
	TransactionID int64

	IAction
}

func (a *ApplyTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByIDForUpdate(ctx, a.AccountID)
	if err != nil {
		return err
	}

	newBalance, err := computeNewBalance(a.Type, account.Balance, a.Amount)
	if err != nil {
		return err
	}

	if err := writer.Account.UpdateBalance(ctx, a.AccountID, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	transactionID, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:   a.AccountID,
		Type:        a.Type,
		Amount:      a.Amount,
		Description: a.Description,
	})
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	a.NewBalance = newBalance
	a.TransactionID = transactionID
	return nil
}

// computeNewBalance applies the single business rule of the system. Deposits
// increase the balance unconditionally; withdrawals and transfers may not
// take the balance below zero.
func computeNewBalance(transactionType transaction.Type, balance, amount decimal.Decimal) (decimal.Decimal, error) {
	switch transactionType {
	case transaction.TypeDeposit:
		return balance.Add(amount), nil
	case transaction.TypeWithdrawal, transaction.TypeTransfer:
		if amount.GreaterThan(balance) {
			return decimal.Decimal{}, ErrInsufficientFunds
		}
		return balance.Sub(amount), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnsupportedTransactionType, transactionType)
	}
}
