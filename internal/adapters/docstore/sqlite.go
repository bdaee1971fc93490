package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/chartwell/andy/internal/domain/entities"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	content  TEXT NOT NULL
);`

// SQLite is a durable document store. Insertion order is the physical
// rowid order, which matches the memory store's append order.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) a sqlite-backed store at the
// given DSN.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating documents table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Append adds a document. A primary key violation maps to ErrDuplicateID
// so callers see the same contract as the memory store.
func (s *SQLite) Append(ctx context.Context, doc entities.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, title, doc_type, content) VALUES (?, ?, ?, ?)`,
		doc.ID, doc.Title, doc.DocType, doc.Content,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return fmt.Errorf("%w: %s", ErrDuplicateID, doc.ID)
	}
	if err != nil {
		return fmt.Errorf("inserting document %s: %w", doc.ID, err)
	}
	return nil
}

// ListAll returns every document in insertion order.
func (s *SQLite) ListAll(ctx context.Context) ([]entities.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, doc_type, content FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []entities.Document
	for rows.Next() {
		var d entities.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.DocType, &d.Content); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
