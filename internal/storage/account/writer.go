package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate loads an account and takes a row lock, serializing
// concurrent balance updates against the same account for the lifetime of
// the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id string) (*Account, error) {
	return w.findByID(ctx, id, true)
}

// Insert creates a new account. Existing ids are left untouched so the seed
// fixture can run on every startup.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) error {
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := psql.Insert(
		im.Into("accounts", "id", "account_number", "account_type", "balance", "account_holder", "created_at"),
		im.Values(psql.Arg(create.ID, create.AccountNumber, create.AccountType, create.Balance, create.AccountHolder, createdAt)),
		im.OnConflict("id").DoNothing(),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// UpdateBalance commits the new balance for the given account.
func (w *Writer) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	query := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
