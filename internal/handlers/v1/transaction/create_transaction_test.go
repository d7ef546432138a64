package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-dashboard/internal/operator/actions"
	storageaccount "github.com/carson-networks/bank-dashboard/internal/storage/account"
	storagetransaction "github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// mockOperator is a hand mock for transactionApplier.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op transactionApplier) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

func TestHTTP_CreateTransaction_Deposit(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		apply, ok := a.(*actions.ApplyTransaction)
		return ok &&
			apply.AccountID == "1" &&
			apply.Type == storagetransaction.TypeDeposit &&
			apply.Amount.Equal(decimal.NewFromInt(500)) &&
			apply.Description == "payroll"
	})).Run(func(args mock.Arguments) {
		apply := args.Get(1).(*actions.ApplyTransaction)
		apply.NewBalance = decimal.NewFromInt(5500)
		apply.TransactionID = 1
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/api/accounts/1/transactions", CreateTransactionBody{
		Type:        "DEPOSIT",
		Amount:      500,
		Description: "payroll",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction successful", body.Message)
	assert.Equal(t, float64(5500), body.NewBalance)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(storageaccount.ErrNotFound)

	resp := newCreateTestAPI(t, mockOp).Post("/api/accounts/999/transactions", CreateTransactionBody{
		Type:   "DEPOSIT",
		Amount: 500,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_InsufficientFunds(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrInsufficientFunds)

	resp := newCreateTestAPI(t, mockOp).Post("/api/accounts/1/transactions", CreateTransactionBody{
		Type:   "WITHDRAWAL",
		Amount: 6000,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_UnsupportedType(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrUnsupportedTransactionType)

	resp := newCreateTestAPI(t, mockOp).Post("/api/accounts/1/transactions", CreateTransactionBody{
		Type:   "REFUND",
		Amount: 10,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_StorageError(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/api/accounts/1/transactions", CreateTransactionBody{
		Type:   "DEPOSIT",
		Amount: 10,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
