// database/connection.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-sql-driver/mysql" // MariaDB driver

	"github.com/gewnthar/skysql/config"
	"github.com/gewnthar/skysql/logger"
)

// Store is the data access layer over the SkySQL schema. Every method runs a
// single statement (or a single transaction) against the pool.
type Store struct {
	db     *sql.DB
	dbName string
	log    *slog.Logger
}

// DSN renders the driver connection string for cfg.
func DSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.Local
	if cfg.Charset != "" {
		mc.Params = map[string]string{"charset": cfg.Charset}
	}
	return mc.FormatDSN()
}

// Open connects to the database described by cfg and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := New(db, cfg.DBName)
	s.log.Info("connected to database", "host", cfg.Host, "port", cfg.Port, "database", cfg.DBName)
	return s, nil
}

// New wraps an already opened handle. dbName is the schema inspected by
// TableColumns.
func New(db *sql.DB, dbName string) *Store {
	return &Store{
		db:     db,
		dbName: dbName,
		log:    logger.WithComponent("database"),
	}
}

func (s *Store) Name() string {
	return s.dbName
}

func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1 AS status").Scan(&one); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}
	return nil
}

// Close closes the connection pool. Typically called on application shutdown.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.log.Info("database connection closed")
	return err
}
