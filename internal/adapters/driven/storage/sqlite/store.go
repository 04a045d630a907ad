// Package sqlite persists the document index in a SQLite database.
// It is the alternative durable record for catalogs too large to
// rewrite as one JSON file per ingestion.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	page_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS chunks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	document_idx INTEGER NOT NULL,
	page INTEGER NOT NULL,
	text TEXT NOT NULL
);
`

// Store is a SQLite implementation of driven.IndexStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite index store at the specified data
// directory. If dataDir is empty, defaults to
// ~/.sos-licitacoes/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sos-licitacoes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Load reads the full index, documents and chunks in insertion order.
func (s *Store) Load(ctx context.Context) (*domain.Index, error) {
	idx := &domain.Index{}

	rows, err := s.db.QueryContext(ctx, "SELECT name, page_count FROM documents ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.Name, &doc.PageCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		idx.Documents = append(idx.Documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	chunkRows, err := s.db.QueryContext(ctx, "SELECT document_idx, page, text FROM chunks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer chunkRows.Close()
	for chunkRows.Next() {
		var ch domain.Chunk
		if err := chunkRows.Scan(&ch.DocumentIndex, &ch.Page, &ch.Text); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		idx.Chunks = append(idx.Chunks, ch)
	}
	if err := chunkRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunks: %w", err)
	}

	return idx, nil
}

// Save replaces the stored index with idx in one transaction.
func (s *Store) Save(ctx context.Context, idx *domain.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return fmt.Errorf("clear chunks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clear documents: %w", err)
	}

	docStmt, err := tx.PrepareContext(ctx, "INSERT INTO documents (name, page_count) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare document insert: %w", err)
	}
	defer docStmt.Close()
	for _, doc := range idx.Documents {
		if _, err := docStmt.ExecContext(ctx, doc.Name, doc.PageCount); err != nil {
			return fmt.Errorf("insert document %s: %w", doc.Name, err)
		}
	}

	chunkStmt, err := tx.PrepareContext(ctx, "INSERT INTO chunks (document_idx, page, text) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare chunk insert: %w", err)
	}
	defer chunkStmt.Close()
	for _, ch := range idx.Chunks {
		if _, err := chunkStmt.ExecContext(ctx, ch.DocumentIndex, ch.Page, ch.Text); err != nil {
			return fmt.Errorf("insert chunk: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
