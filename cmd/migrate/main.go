package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/skillhub/skillhub-api/config"
	"github.com/skillhub/skillhub-api/pkg/db"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Applying database migrations",
		zap.String("database", redactDSN(cfg.Database.URL)))

	if err := db.RunMigrations(cfg.Database.URL, "file://migrations"); err != nil {
		logger.Error("Migrations failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database schema is up to date")
}

// redactDSN strips credentials from the connection URL for logging
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
