package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/bank-dashboard/internal/config"
	"github.com/carson-networks/bank-dashboard/internal/storage/account"
	"github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// Storage is the process-lifetime database handle. It is constructed once in
// main and passed explicitly to every component that needs it.
type Storage struct {
	db  *sql.DB
	bdb bob.DB

	Accounts     account.IAccountTable
	Transactions transaction.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return NewStorageWithDB(db), nil
}

// NewStorageWithDB wraps an existing connection. Used by tests that manage
// their own database lifecycle.
func NewStorageWithDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)
	return &Storage{
		db:           db,
		bdb:          bdb,
		Accounts:     account.NewReader(bdb),
		Transactions: transaction.NewReader(bdb),
	}
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}
