package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/mysite/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/mysite/internal/config"
	"github.com/vncsmyrnk/mysite/internal/logging"
)

// Usage: migrations [flags] <name|all>
//
// name matches the end of a migration file name, e.g. "create_polls.up".
func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatal(err)
	}

	if len(cfg.Args) < 1 {
		names, _ := postgres.MigrationNames()
		log.WithField("available", names).Fatal("a migration name is required")
	}
	migrationName := cfg.Args[0]

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to apply migrations")
		}
		log.Info("all migrations executed successfully")
		return
	}

	file, content, err := postgres.MigrationContent(migrationName)
	if err != nil {
		log.WithError(err).Fatal("failed to find migration")
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		log.WithError(err).WithField("file", file).Fatal("failed to execute migration")
	}

	log.WithField("file", file).Info("migration file executed successfully")
}
