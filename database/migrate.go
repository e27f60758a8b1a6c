// database/migrate.go
package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/gewnthar/skysql/database/migrations"
)

var gooseOnce sync.Once
var gooseErr error

func initGoose() error {
	gooseOnce.Do(func() {
		goose.SetBaseFS(migrations.FS)
		gooseErr = goose.SetDialect("mysql")
	})
	return gooseErr
}

// MigrateUp applies all pending schema migrations.
func (s *Store) MigrateUp(ctx context.Context) error {
	if err := initGoose(); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	from, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	to, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.log.Info("migration completed", "from_version", from, "to_version", to)
	return nil
}

// MigrateDown rolls back the given number of migrations.
func (s *Store) MigrateDown(ctx context.Context, steps int) error {
	if err := initGoose(); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, s.db, "."); err != nil {
			return fmt.Errorf("failed to rollback migration %d/%d: %w", i+1, steps, err)
		}
	}
	s.log.Info("rollback completed", "steps", steps)
	return nil
}

// MigrationStatus logs the applied state of every migration.
func (s *Store) MigrationStatus(ctx context.Context) error {
	if err := initGoose(); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.StatusContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}
