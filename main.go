package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-dashboard/api"
	"github.com/carson-networks/bank-dashboard/internal/config"
	"github.com/carson-networks/bank-dashboard/internal/logging"
	"github.com/carson-networks/bank-dashboard/internal/operator"
	"github.com/carson-networks/bank-dashboard/internal/operator/actions"
	"github.com/carson-networks/bank-dashboard/internal/service"
	"github.com/carson-networks/bank-dashboard/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("bank-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if err := dbStorage.Migrate(); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	if envConfig.SeedDemoData {
		if err := delegator.Process(context.Background(), &actions.SeedAccounts{}); err != nil {
			logrus.WithError(err).Fatal("actions.SeedAccounts")
			return
		}
	}

	svc := service.NewService(dbStorage)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logrus.Info("bank-dashboard shutting down")
}
