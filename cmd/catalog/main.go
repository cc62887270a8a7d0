package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mytheresa/go-catalog-seed/config"
	"github.com/mytheresa/go-catalog-seed/logger"
	"github.com/mytheresa/go-catalog-seed/models"
)

var (
	driverFlag string
	dsnFlag    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Manage the product catalog database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "database driver (postgres, pq, sqlite, mysql, sqlserver); overrides DB_DRIVER")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database connection string; overrides DATABASE_URL")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
}

// boot loads config, attaches the logger to ctx and opens the store.
func boot(ctx context.Context) (context.Context, *models.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, fmt.Errorf("load config: %w", err)
	}
	if driverFlag != "" {
		cfg.DBDriver = driverFlag
	}
	if dsnFlag != "" {
		cfg.DatabaseURL = dsnFlag
	}

	log := logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
	ctx = log.WithContext(ctx)

	store, err := models.Open(ctx, models.Options{
		Driver: cfg.DBDriver,
		DSN:    cfg.DatabaseURL,
		Debug:  cfg.Debug(),
	})
	if err != nil {
		return ctx, nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("driver", cfg.DBDriver).Msg("database connected")
	return ctx, store, nil
}
