package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/mauv0809/roster-api/internal/config"
)

const pingTimeout = 5 * time.Second

// InitDB opens the connection pool, verifies it and migrates the schema to the
// latest version. The returned teardown closes the pool and must be called
// once on shutdown.
func InitDB(cfg config.DBConfig) (*sql.DB, func(), error) {
	driver, dsn := dataSource(cfg)
	if driver == "libsql" {
		log.Info("Initializing Turso database", "url", cfg.Turso.PrimaryURL)
	} else {
		log.Info("Initializing local SQLite database", "path", cfg.Name)
	}

	var db *sql.DB
	var err error
	if driver == "libsql" {
		db, err = openWithForeignKeys(driver, dsn)
	} else {
		db, err = sql.Open(driver, dsn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	if driver == "libsql" {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to ping database within %v: %w", pingTimeout, err)
	}

	if err := migrate(db, cfg.MigrationsDir); err != nil {
		teardown()
		return nil, nil, err
	}

	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func migrate(db *sql.DB, dir string) error {
	goose.SetBaseFS(nil)
	goose.SetLogger(log.Default())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations from %s: %w", dir, err)
	}
	return nil
}

func dataSource(cfg config.DBConfig) (driver, dsn string) {
	if cfg.Turso.PrimaryURL != "" {
		return "libsql", cfg.Turso.PrimaryURL + "?authToken=" + cfg.Turso.AuthToken
	}
	return "sqlite3", sqliteDSN(cfg.Name)
}

// sqliteDSN turns a file name into a go-sqlite3 URI with foreign keys enforced
// on every pooled connection.
func sqliteDSN(name string) string {
	dsn := name
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}
