package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

func main() {
	statusOnly := flag.Bool("status", false, "print migration status without applying")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := run(ctx, cfg, *statusOnly, logger); err != nil {
		logger.Error("Migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, statusOnly bool, logger *slog.Logger) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(cfg.Migrations.Dir)))
	if err != nil {
		return errs.Wrap(err, "preparing atlas working directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), cfg.Migrations.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "initializing atlas client")
	}
	dbURL := databaseURL(cfg.DB)

	if statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dbURL})
		if err != nil {
			return errs.Wrap(err, "reading migration status")
		}
		logger.Info("Migration status",
			"status", status.Status,
			"current", status.Current,
			"next", status.Next,
			"pending", len(status.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dbURL})
	if err != nil {
		return errs.Wrap(err, "applying migrations")
	}
	logger.Info("Migrations applied",
		"count", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}

// databaseURL drops the session timezone parameter, which atlas does not need.
func databaseURL(db config.DBConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%s", db.Host, db.Port),
		Path:   "/" + db.DBName,
	}
	q := u.Query()
	q.Set("sslmode", db.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
