package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-dashboard/internal/service"
	storageaccount "github.com/carson-networks/bank-dashboard/internal/storage/account"
)

// GetAccountInput is the Huma input for fetching a single account.
type GetAccountInput struct {
	ID string `path:"id" doc:"Account id"`
}

// GetAccountOutput is the Huma output for fetching a single account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching one account.
type accountGetter interface {
	GetAccount(ctx context.Context, id string) (*service.Account, error)
}

// GetAccountHandler handles GET /api/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Get account",
		Description: "Returns a single account by id.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	account, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		if errors.Is(err, storageaccount.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "Account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "Database error", err)
	}

	return &GetAccountOutput{Body: fromService(account)}, nil
}
