package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/operator/actions"
	"github.com/carson-networks/bank-dashboard/internal/storage/account"
	"github.com/carson-networks/bank-dashboard/internal/storage/transaction"
)

// CreateTransactionBody is the request body for posting a transaction.
type CreateTransactionBody struct {
	Type        string  `json:"type,omitempty" doc:"DEPOSIT, WITHDRAWAL or TRANSFER"`
	Amount      float64 `json:"amount,omitempty" doc:"Positive amount"`
	Description string  `json:"description,omitempty" doc:"Free text"`
}

// CreateTransactionInput is the Huma input for posting a transaction.
type CreateTransactionInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a successful post.
type CreateTransactionResponse struct {
	Message    string  `json:"message" doc:"Human-readable confirmation"`
	NewBalance float64 `json:"newBalance" doc:"Account balance after the transaction"`
}

// CreateTransactionOutput is the Huma output for posting a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionApplier is the interface the handler needs from the operator.
type transactionApplier interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /api/accounts/{id}/transactions.
type CreateTransactionHandler struct {
	Operator transactionApplier
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op transactionApplier) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/accounts/{id}/transactions",
		Summary:     "Post a transaction",
		Description: "Applies a transaction to the account and records it.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.ApplyTransaction{
		AccountID:   input.ID,
		Type:        transaction.Type(input.Body.Type),
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Description: input.Body.Description,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("applyTransactionMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		switch {
		case errors.Is(err, account.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "Account not found")
		case errors.Is(err, actions.ErrInsufficientFunds):
			return nil, huma.NewError(http.StatusBadRequest, "Insufficient funds")
		case errors.Is(err, actions.ErrUnsupportedTransactionType):
			return nil, huma.NewError(http.StatusBadRequest, "Unsupported transaction type")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "Error recording transaction", err)
		}
	}

	if logData != nil {
		logData.AddData("transactionID", action.TransactionID)
	}

	return &CreateTransactionOutput{
		Body: CreateTransactionResponse{
			Message:    "Transaction successful",
			NewBalance: action.NewBalance.InexactFloat64(),
		},
	}, nil
}
