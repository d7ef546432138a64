package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/account"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/status"
	"github.com/carson-networks/bank-dashboard/internal/handlers/v1/transaction"
	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/operator"
	"github.com/carson-networks/bank-dashboard/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler assembles the full HTTP surface: the huma API under /api, the
// plain status endpoint, request logging, and CORS.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Banking Dashboard API", "1.0.0")
	// The schema link transformer injects a $schema key into response
	// bodies; the dashboard client expects the documented shapes exactly.
	humaConfig.CreateHooks = nil
	humaConfig.Transformers = nil
	humaAPI := humago.New(mux, humaConfig)

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return CORS(logging.RequestLogger(r.Logger, mux))
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
