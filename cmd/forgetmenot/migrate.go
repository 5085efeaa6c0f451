package main

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/forgetmenot/migrations"
	"github.com/limbo/forgetmenot/pkg/cleanup"
	"github.com/limbo/forgetmenot/pkg/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanup.CleanUp()
		pool, err := connectDB(cmd.Context(), config.New())
		if err != nil {
			return err
		}
		return migrate(cmd.Context(), pool)
	},
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := migrations.Up(ctx, db); err != nil {
		return err
	}
	slog.Info("migrations applied")
	return nil
}
