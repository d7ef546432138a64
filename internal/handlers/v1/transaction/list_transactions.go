package transaction

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/service"
)

// ListTransactionsInput is the Huma input for listing an account's
// transactions. Page and limit stay strings so that absent or non-numeric
// values fall back to the defaults instead of failing schema validation,
// which is what the dashboard client has always relied on.
type ListTransactionsInput struct {
	ID    string `path:"id" doc:"Account id"`
	Page  string `query:"page" doc:"1-based page number, default 1"`
	Limit string `query:"limit" doc:"Page size, default 10"`
}

// ListTransactionsOutput is the Huma output for listing transactions. The
// body is a bare array ordered newest first.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing an account's transactions.
type transactionLister interface {
	ListAccountTransactions(ctx context.Context, accountID string, page, limit int) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/accounts/{id}/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}/transactions",
		Summary:     "List account transactions",
		Description: "Returns a page of the account's transactions, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// intOrDefault parses a query value, falling back when it is absent or not a
// number.
func intOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	page := intOrDefault(input.Page, 1)
	limit := intOrDefault(input.Limit, 10)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListAccountTransactions(ctx, input.ID, page, limit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Database error", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	body := make([]Transaction, len(transactions))
	for i := range transactions {
		body[i] = fromService(&transactions[i])
	}

	return &ListTransactionsOutput{Body: body}, nil
}
