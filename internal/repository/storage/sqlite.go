package storage

import (
	"context"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS results (
	game_id     TEXT PRIMARY KEY,
	status      TEXT NOT NULL,
	winner      TEXT NOT NULL DEFAULT '',
	moves       INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
)`

type Storage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	// sqlite allows a single writer
	conn.SetMaxOpenConns(1)

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, resultsSchema); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
