package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

// Schema creates the tables the catalog sinks write to.
const Schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
	code        TEXT PRIMARY KEY,
	model       TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL,
	quantity    INTEGER NOT NULL,
	power       TEXT NOT NULL,
	circuits    TEXT NOT NULL,
	wifi        BOOLEAN NOT NULL,
	image_path  TEXT NOT NULL,
	status      TEXT NOT NULL,
	category    TEXT NOT NULL,
	power_tier  TEXT NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS catalog_runs (
	id                 UUID PRIMARY KEY,
	finished_at        TIMESTAMPTZ NOT NULL,
	total_products     INTEGER NOT NULL,
	available_products INTEGER NOT NULL,
	new_products       INTEGER NOT NULL,
	restocked_products INTEGER NOT NULL
);`

func New(ctx context.Context, url string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := conn.ExecContext(ctx, Schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return conn, nil
}

func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres (pgxpool): %w", err)
	}
	return pool, nil
}
