package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"media-share-api/internal/infrastructure/db/postgres/migrations"
)

// RunMigrations applies the embedded schema migrations. goose wants a
// database/sql handle, so it gets its own short-lived pgx stdlib one.
func RunMigrations(ctx context.Context, logger *zap.Logger, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("db open for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	logger.Info("db migrations applied")

	return nil
}
