package main

import (
	"context"
	"os"

	"github.com/desertthunder/rolo/internal/models"
	"github.com/desertthunder/rolo/internal/repositories"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	// An unavailable store never blocks startup; the REPL starts with an
	// empty book and save reports the fault.
	var store models.BookStore
	if db, err := shared.NewDatabase(config.Database.Path); err != nil {
		logger.Warn("contact store unavailable, starting with an empty book", "error", err)
	} else {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			logger.Warn("failed to run migrations, starting with an empty book", "error", err)
			db.Close()
		} else {
			store = repositories.NewContactRepository(db)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  store,
		Logger: logger,
	})

	app := &cli.Command{
		Name:           "rolo",
		Usage:          "Contact book with birthday reminders",
		Version:        "0.3.0",
		Commands:       runner.register(),
		DefaultCommand: "repl",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
