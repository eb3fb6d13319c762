package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// openWithForeignKeys opens a pool whose connections all enforce foreign
// keys. SQLite keeps the setting per connection and libsql has no DSN flag
// for it.
func openWithForeignKeys(driverName, dsn string) (*sql.DB, error) {
	lookup, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	drv := lookup.Driver()
	_ = lookup.Close()

	connector, err := newForeignKeyConnector(drv, dsn)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

type foreignKeyConnector struct {
	inner driver.Connector
}

func newForeignKeyConnector(drv driver.Driver, dsn string) (driver.Connector, error) {
	if dc, ok := drv.(driver.DriverContext); ok {
		inner, err := dc.OpenConnector(dsn)
		if err != nil {
			return nil, err
		}
		return &foreignKeyConnector{inner: inner}, nil
	}
	return &foreignKeyConnector{inner: dsnConnector{driver: drv, dsn: dsn}}, nil
}

func (c *foreignKeyConnector) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := c.inner.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := execOnConn(ctx, conn, "PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return conn, nil
}

func (c *foreignKeyConnector) Driver() driver.Driver {
	return c.inner.Driver()
}

type dsnConnector struct {
	driver driver.Driver
	dsn    string
}

func (c dsnConnector) Connect(context.Context) (driver.Conn, error) {
	return c.driver.Open(c.dsn)
}

func (c dsnConnector) Driver() driver.Driver {
	return c.driver
}

func execOnConn(ctx context.Context, conn driver.Conn, query string) error {
	if execer, ok := conn.(driver.ExecerContext); ok {
		_, err := execer.ExecContext(ctx, query, nil)
		if !errors.Is(err, driver.ErrSkip) {
			return err
		}
	}
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec(nil)
	return err
}
