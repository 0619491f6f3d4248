package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/nldates/internal/cli"
	"github.com/alexanderramin/nldates/internal/config"
	"github.com/alexanderramin/nldates/internal/db"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/locale"
	"github.com/alexanderramin/nldates/internal/repository"
	"github.com/alexanderramin/nldates/internal/resolver"
	"github.com/alexanderramin/nldates/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		// Invalid phrases were already reported as "Invalid date".
		if !errors.Is(err, domain.ErrInvalidDate) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger := cfg.NewLogger(os.Stderr)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	res := resolver.New(
		resolver.WithClock(cfg.Clock()),
		resolver.WithLocale(locale.NewEnvProvider()),
	)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Dates:        service.NewDateService(settingsRepo, res, logger, observer),
		Settings:     service.NewSettingsService(settingsRepo, uow, observer),
		History:      service.NewHistoryService(historyRepo, time.Now, observer),
		Now:          time.Now,
		HistoryLimit: cfg.HistoryLimit,
	}

	// Detect interactive terminal for the picker entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}
