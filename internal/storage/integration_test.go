package storage_test

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/bank-dashboard/internal/operator"
	"github.com/carson-networks/bank-dashboard/internal/operator/actions"
	"github.com/carson-networks/bank-dashboard/internal/service"
	"github.com/carson-networks/bank-dashboard/internal/storage"
	"github.com/carson-networks/bank-dashboard/internal/storage/account"
	"github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// These tests run the full write path (migrations, seed, operator, row
// locking) against a disposable Postgres. Set INTEGRATION_TESTS=1 and have
// Docker available to run them.

type integrationEnv struct {
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	svc       *service.Service
}

func setupIntegration(t *testing.T) *integrationEnv {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run storage integration tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("bank"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewStorageWithDB(db)
	require.NoError(t, store.Migrate())

	delegator := operator.NewOperatorDelegator(store, 4)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	require.NoError(t, delegator.Process(ctx, &actions.SeedAccounts{}))

	return &integrationEnv{
		store:     store,
		delegator: delegator,
		svc:       service.NewService(store),
	}
}

func TestIntegration_SeedAccountsArePresent(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	accounts, err := env.svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "1", accounts[0].ID)
	assert.Equal(t, account.TypeChecking, accounts[0].AccountType)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "2", accounts[1].ID)
	assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(10000)))
}

func TestIntegration_SeedIsIdempotent(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	require.NoError(t, env.delegator.Process(ctx, &actions.SeedAccounts{}))

	accounts, err := env.svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestIntegration_DepositUpdatesBalanceAndAppendsRow(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	apply := &actions.ApplyTransaction{
		AccountID:   "1",
		Type:        transaction.TypeDeposit,
		Amount:      decimal.NewFromInt(500),
		Description: "payroll",
	}
	require.NoError(t, env.delegator.Process(ctx, apply))
	assert.True(t, apply.NewBalance.Equal(decimal.NewFromInt(5500)))
	assert.NotZero(t, apply.TransactionID)

	acc, err := env.svc.Account.GetAccount(ctx, "1")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(5500)))

	rows, err := env.svc.Transaction.ListAccountTransactions(ctx, "1", 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, apply.TransactionID, rows[0].ID)
	assert.Equal(t, transaction.TypeDeposit, rows[0].Type)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "payroll", rows[0].Description)
}

func TestIntegration_OverdraftRollsBackCompletely(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	apply := &actions.ApplyTransaction{
		AccountID: "1",
		Type:      transaction.TypeWithdrawal,
		Amount:    decimal.NewFromInt(6000),
	}
	err := env.delegator.Process(ctx, apply)
	assert.ErrorIs(t, err, actions.ErrInsufficientFunds)

	acc, getErr := env.svc.Account.GetAccount(ctx, "1")
	require.NoError(t, getErr)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(5000)))

	rows, listErr := env.svc.Transaction.ListAccountTransactions(ctx, "1", 1, 10)
	require.NoError(t, listErr)
	assert.Empty(t, rows)
}

func TestIntegration_UnknownAccountIsNotFound(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	err := env.delegator.Process(ctx, &actions.ApplyTransaction{
		AccountID: "999",
		Type:      transaction.TypeDeposit,
		Amount:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestIntegration_PaginationWindowsNewestFirst(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, env.delegator.Process(ctx, &actions.ApplyTransaction{
			AccountID:   "2",
			Type:        transaction.TypeDeposit,
			Amount:      decimal.NewFromInt(1),
			Description: "drip",
		}))
	}

	all, err := env.svc.Transaction.ListAccountTransactions(ctx, "2", 1, 100)
	require.NoError(t, err)
	require.Len(t, all, 12)
	for i := 1; i < len(all); i++ {
		assert.True(t, !all[i].CreatedAt.After(all[i-1].CreatedAt))
	}

	page2, err := env.svc.Transaction.ListAccountTransactions(ctx, "2", 2, 5)
	require.NoError(t, err)
	require.Len(t, page2, 5)
	for i := range page2 {
		assert.Equal(t, all[5+i].ID, page2[i].ID)
	}
}

func TestIntegration_ConcurrentDepositsSerializePerAccount(t *testing.T) {
	env := setupIntegration(t)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = env.delegator.Process(ctx, &actions.ApplyTransaction{
				AccountID: "2",
				Type:      transaction.TypeDeposit,
				Amount:    decimal.NewFromInt(100),
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	acc, err := env.svc.Account.GetAccount(ctx, "2")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(11000)),
		"expected 11000, got %s", acc.Balance)

	rows, err := env.svc.Transaction.ListAccountTransactions(ctx, "2", 1, 100)
	require.NoError(t, err)
	assert.Len(t, rows, workers)
}
