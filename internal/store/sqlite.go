package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dali-douzi/bracketforge/pkg/bracketgraph"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS brackets (
	key        TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at INTEGER NOT NULL DEFAULT (unixepoch())
);
`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
}

// SQLite is the on-disk BracketStore.
type SQLite struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens or creates the bracket database at the given path,
// creating parent directories as needed.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &SQLite{conn: conn, path: dbPath}, nil
}

// Load implements BracketStore.
func (s *SQLite) Load(tournamentID string) (bracketgraph.Snapshot, bool, error) {
	var doc string
	err := s.conn.QueryRow(
		`SELECT doc FROM brackets WHERE key = ?`, BracketKey(tournamentID),
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return bracketgraph.Snapshot{}, false, nil
	}
	if err != nil {
		return bracketgraph.Snapshot{}, false, fmt.Errorf("querying bracket: %w", err)
	}
	return DecodeDocument([]byte(doc)), true, nil
}

// Save implements BracketStore.
func (s *SQLite) Save(tournamentID string, snap bracketgraph.Snapshot) error {
	data, err := EncodeDocument(snap)
	if err != nil {
		return fmt.Errorf("encoding bracket: %w", err)
	}
	_, err = s.conn.Exec(
		`INSERT INTO brackets (key, doc, updated_at) VALUES (?, ?, unixepoch())
		 ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		BracketKey(tournamentID), string(data),
	)
	if err != nil {
		return fmt.Errorf("writing bracket: %w", err)
	}
	return nil
}

// Close implements BracketStore.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

var _ BracketStore = (*SQLite)(nil)
