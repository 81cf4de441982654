package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/appleboblin/finance/internal/cli"
	"github.com/appleboblin/finance/internal/services"
	"github.com/appleboblin/finance/internal/ui"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.SlogLevel())

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	// The connection is the one shared resource; release it on every exit path.
	defer repo.Close()

	accounts := services.NewAccountService(repo)
	ledger := services.NewLedgerService(repo)

	menu := ui.NewMenu(accounts, ledger, os.Stdin, os.Stdout)
	menu.Run(context.Background())

	logger.Info("Finance application stopped")
}
