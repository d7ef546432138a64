package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{"id", "account_number", "account_type", "balance", "account_holder", "created_at"}

type Reader struct {
	exec bob.Executor
}

// Ensure Reader implements IAccountTable at compile time.
var _ IAccountTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every account ordered by id. The dashboard account list is
// unpaginated.
func (r *Reader) List(ctx context.Context) ([]Account, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, query, scan.StructMapper[Account]())
}

// FindByID retrieves an account by primary key. Returns ErrNotFound when the
// id does not exist.
func (r *Reader) FindByID(ctx context.Context, id string) (*Account, error) {
	return r.findByID(ctx, id, false)
}

func (r *Reader) findByID(ctx context.Context, id string, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
