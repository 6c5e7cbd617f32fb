package databases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteDatabase is a single-file key-value store. Every collection shares
// one table; payloads are bson documents.
type SQLiteDatabase struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the sqlite file at path
func OpenSQLite(path string) (*SQLiteDatabase, error) {
	if path == "" {
		path = "court.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps :memory: databases shared across calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS entities (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		payload BLOB NOT NULL,
		UNIQUE(collection, id)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create entities table: %w", err)
	}
	return &SQLiteDatabase{db: db}, nil
}

// Close releases the underlying database handle
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

type sqliteStore[T any] struct {
	s          *SQLiteDatabase
	collection string
	id         func(*T) string
}

func newSQLiteStore[T any](s *SQLiteDatabase, collection string, id func(*T) string) *sqliteStore[T] {
	return &sqliteStore[T]{s: s, collection: collection, id: id}
}

func (st *sqliteStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var payload []byte
	err := st.s.db.QueryRowContext(ctx,
		`SELECT payload FROM entities WHERE collection = ? AND id = ?`, st.collection, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s %s: %w", st.collection, id, err)
	}
	doc := new(T)
	if err := bson.Unmarshal(payload, doc); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", st.collection, id, err)
	}
	return doc, nil
}

func (st *sqliteStore[T]) Put(ctx context.Context, doc *T) error {
	payload, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", st.collection, err)
	}
	id := st.id(doc)
	_, err = st.s.db.ExecContext(ctx, `INSERT INTO entities (collection, id, payload) VALUES (?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET payload = excluded.payload`, st.collection, id, payload)
	if err != nil {
		return fmt.Errorf("upsert %s %s: %w", st.collection, id, err)
	}
	return nil
}

func (st *sqliteStore[T]) Delete(ctx context.Context, id string) error {
	res, err := st.s.db.ExecContext(ctx, `DELETE FROM entities WHERE collection = ? AND id = ?`, st.collection, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", st.collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", st.collection, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (st *sqliteStore[T]) Scan(ctx context.Context) ([]T, error) {
	rows, err := st.s.db.QueryContext(ctx, `SELECT id, payload FROM entities WHERE collection = ? ORDER BY seq`, st.collection)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", st.collection, err)
	}
	defer func() { _ = rows.Close() }()

	docs := []T{}
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", st.collection, err)
		}
		var doc T
		if err := bson.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", st.collection, id, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
