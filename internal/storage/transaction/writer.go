package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
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

// Insert appends a transaction row and returns its assigned identifier.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := psql.Insert(
		im.Into("transactions", "account_id", "type", "amount", "description", "created_at"),
		im.Values(psql.Arg(create.AccountID, create.Type, create.Amount, create.Description, createdAt)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
}
