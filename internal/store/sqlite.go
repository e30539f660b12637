package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    collection TEXT NOT NULL,
    id TEXT NOT NULL,
    doc TEXT NOT NULL,
    UNIQUE (collection, id)
)`

// SQLiteStore persists documents in an embedded SQLite database, for
// single-node deployments and local development.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// documents table exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure documents table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Collection returns a Collection bound to the named logical collection.
func (s *SQLiteStore) Collection(name string) Collection {
	return &sqliteCollection{db: s.db, name: name}
}

// Ping implements Store.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteCollection struct {
	db   *sql.DB
	name string
}

func (c *sqliteCollection) Insert(ctx context.Context, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	id, err := documentID(raw)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO documents (collection, id, doc) VALUES (?, ?, ?)`
	_, err = c.db.ExecContext(ctx, stmt, c.name, id, string(raw))
	return err
}

func (c *sqliteCollection) FindByID(ctx context.Context, id string, out any) error {
	const query = `SELECT doc FROM documents WHERE collection=? AND id=?`

	var raw string
	if err := c.db.QueryRowContext(ctx, query, c.name, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoDocument
		}
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func (c *sqliteCollection) List(ctx context.Context, limit int, out any) error {
	const query = `SELECT doc FROM documents WHERE collection=? ORDER BY seq LIMIT ?`

	rows, err := c.db.QueryContext(ctx, query, c.name, limit)
	if err != nil {
		return err
	}
	defer rows.Close()

	raws := make([]json.RawMessage, 0, limit)
	for rows.Next() {
		var raw string
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

func (c *sqliteCollection) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM documents WHERE collection=?`

	var count int64
	if err := c.db.QueryRowContext(ctx, query, c.name).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateByID reads, merges, and rewrites the document inside a transaction.
// SQLite serialises writers, so the read-modify-write cannot interleave.
func (c *sqliteCollection) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var raw string
	err = tx.QueryRowContext(ctx, `SELECT doc FROM documents WHERE collection=? AND id=?`, c.name, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoDocument
		}
		return err
	}

	merged, err := mergeDocument([]byte(raw), fields)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE documents SET doc=? WHERE collection=? AND id=?`, string(merged), c.name, id); err != nil {
		return err
	}
	return tx.Commit()
}
