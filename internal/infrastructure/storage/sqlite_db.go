package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite do'kon bazasini ochadi va sxemani yaratadi
func OpenSQLite(dbPath string) (*sql.DB, error) {
	db, err := openSQLiteFile(dbPath)
	if err != nil {
		return nil, err
	}
	if err := createStoreSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openSQLiteFile(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("db path must not be empty")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// go-sqlite3 bitta yozuvchi bilan barqaror ishlaydi
	db.SetMaxOpenConns(1)
	return db, nil
}

// inTx fn xato qaytarsa rollback, aks holda commit
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func createStoreSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	body TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	number INTEGER NOT NULL UNIQUE,
	status TEXT NOT NULL,
	created_unix INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders (created_unix);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// sqliteCollection stores JSON documents of one type under a collection name.
type sqliteCollection[T any] struct {
	db   *sql.DB
	name string
}

func newCollection[T any](db *sql.DB, name string) sqliteCollection[T] {
	return sqliteCollection[T]{db: db, name: name}
}

func (c sqliteCollection[T]) upsert(ctx context.Context, id string, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	_, err = c.db.ExecContext(ctx, `
INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)
ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body`, c.name, id, string(body))
	return err
}

// insert reports false when id already exists.
func (c sqliteCollection[T]) insert(ctx context.Context, id string, v T) (bool, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", c.name, err)
	}
	res, err := c.db.ExecContext(ctx, `
INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)
ON CONFLICT (collection, id) DO NOTHING`, c.name, id, string(body))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// update reports false when id is missing.
func (c sqliteCollection[T]) update(ctx context.Context, id string, v T) (bool, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", c.name, err)
	}
	res, err := c.db.ExecContext(ctx, `UPDATE documents SET body = ? WHERE collection = ? AND id = ?`, string(body), c.name, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (c sqliteCollection[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	var body string
	err := c.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE collection = ? AND id = ?`, c.name, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return zero, false, fmt.Errorf("decode %s/%s: %w", c.name, id, err)
	}
	return v, true, nil
}

// all returns documents in insertion order.
func (c sqliteCollection[T]) all(ctx context.Context) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, body FROM documents WHERE collection = ? ORDER BY rowid`, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.name, id, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c sqliteCollection[T]) remove(ctx context.Context, id string) (bool, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (c sqliteCollection[T]) clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ?`, c.name)
	return err
}
