package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id TEXT NOT NULL,
    seq BIGSERIAL,
    doc JSONB NOT NULL,
    PRIMARY KEY (collection, id)
)`

// PostgresStore persists documents in a single JSONB table, one logical
// collection per entity type.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to Postgres and ensures the documents table exists.
func OpenPostgres(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure documents table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Collection returns a Collection bound to the named logical collection.
func (s *PostgresStore) Collection(name string) Collection {
	return &postgresCollection{pool: s.pool, name: name}
}

// Ping implements Store.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

type postgresCollection struct {
	pool *pgxpool.Pool
	name string
}

func (c *postgresCollection) Insert(ctx context.Context, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	id, err := documentID(raw)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`
	_, err = c.pool.Exec(ctx, stmt, c.name, id, raw)
	return err
}

func (c *postgresCollection) FindByID(ctx context.Context, id string, out any) error {
	const query = `SELECT doc FROM documents WHERE collection=$1 AND id=$2`

	var raw []byte
	if err := c.pool.QueryRow(ctx, query, c.name, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoDocument
		}
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *postgresCollection) List(ctx context.Context, limit int, out any) error {
	const query = `SELECT doc FROM documents WHERE collection=$1 ORDER BY seq LIMIT $2`

	rows, err := c.pool.Query(ctx, query, c.name, limit)
	if err != nil {
		return err
	}
	defer rows.Close()

	raws := make([]json.RawMessage, 0, limit)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		raws = append(raws, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return decodeList(raws, out)
}

func (c *postgresCollection) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM documents WHERE collection=$1`

	var count int64
	if err := c.pool.QueryRow(ctx, query, c.name).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *postgresCollection) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	const stmt = `UPDATE documents SET doc = doc || $3::jsonb WHERE collection=$1 AND id=$2`
	tag, err := c.pool.Exec(ctx, stmt, c.name, id, patch)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocument
	}
	return nil
}
