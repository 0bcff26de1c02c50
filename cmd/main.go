package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tehl/bank-api/config"
	"github.com/Tehl/bank-api/internal/accountdata"
	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/connections/bizfibank"
	"github.com/Tehl/bank-api/internal/connections/fairwaybank"
	"github.com/Tehl/bank-api/internal/core"
	"github.com/Tehl/bank-api/internal/http"
	"github.com/Tehl/bank-api/internal/memstore"
	"github.com/Tehl/bank-api/internal/sqlite"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application", "storage", cfg.StorageDriver)

	userRepository, accountRepository, cleanup, err := buildRepositories(cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create repositories", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	connectionManager := connections.NewManager()
	providers := []connections.Provider{
		bizfibank.NewProvider(cfg.BizfiBank, logger),
		fairwaybank.NewProvider(cfg.FairWayBank, logger),
	}
	for _, provider := range providers {
		if err := connectionManager.RegisterProvider(provider); err != nil {
			slog.ErrorContext(ctx, "failed to register connection provider", "error", err)
			os.Exit(1)
		}
	}

	accountData := accountdata.NewPassThroughProvider(connectionManager)

	usersHandler := http.NewUsersHandler(userRepository, accountRepository, accountData, connectionManager, logger)
	accountsHandler := http.NewAccountsHandler(accountRepository, accountData, logger)
	httpServer := http.NewServer(usersHandler, accountsHandler, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	if err = httpServer.Stop(ctx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}

func buildRepositories(cfg config.Config) (core.UserRepository, core.BankAccountRepository, func(), error) {
	if cfg.StorageDriver == config.StorageDriverSQLite {
		dbClient, err := sqlite.NewClient(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}

		cleanup := func() {
			_ = dbClient.Close()
		}

		return sqlite.NewUserStore(dbClient.DB()), sqlite.NewAccountStore(dbClient.DB()), cleanup, nil
	}

	return memstore.NewUserStore(), memstore.NewAccountStore(), func() {}, nil
}
