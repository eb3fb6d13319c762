package database

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/log"
)

// Executor is satisfied by both *sql.DB and *sql.Tx so statements can run
// either directly on the pool or inside a transaction.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn on a dedicated connection inside one transaction. The
// transaction is committed when fn returns nil and rolled back otherwise,
// including on panic. The connection goes back to the pool on every path.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Failure("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx)
			panic(p)
		}
		if err != nil {
			rollback(tx)
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = Failure("commit transaction", commitErr)
		}
	}()

	return fn(tx)
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.Warn("Failed to roll back transaction", "error", err)
	}
}
