package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "account_id", "type", "amount", "description", "created_at"}

type Reader struct {
	exec bob.Executor
}

var _ ITransactionTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListForAccount returns a window of the account's transactions ordered by
// creation time descending. The id tiebreak keeps pages stable when several
// rows share a created_at.
func (r *Reader) ListForAccount(ctx context.Context, accountID string, limit, offset int) ([]Transaction, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
		sm.Limit(limit),
		sm.Offset(offset),
	)

	return bob.All(ctx, r.exec, query, scan.StructMapper[Transaction]())
}
