// Package store persists audit project snapshots and import history in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/hrpaudit/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	checksum   TEXT NOT NULL DEFAULT '',
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS imports (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id  TEXT NOT NULL,
	kind        TEXT NOT NULL,
	source      TEXT NOT NULL DEFAULT '',
	checksum    TEXT NOT NULL DEFAULT '',
	records     INTEGER NOT NULL DEFAULT 0,
	imported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_imports_project ON imports(project_id);
CREATE INDEX IF NOT EXISTS idx_imports_checksum ON imports(project_id, checksum);
`

// ProjectStore defines the persistence operations of the project service.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with mocks.
type ProjectStore interface {
	GetProject(ctx context.Context, id string) (*Snapshot, error)
	SaveProject(ctx context.Context, p *models.ProjectData) (string, error)
	DeleteProject(ctx context.Context, id string) error
	ProjectExists(ctx context.Context, id string) (bool, error)
	RecordImport(ctx context.Context, rec ImportRecord) error
	ImportedChecksums(ctx context.Context, projectID string) (map[string]struct{}, error)
	ListImports(ctx context.Context, projectID string, limit int) ([]ImportRecord, error)
	DeleteImports(ctx context.Context, projectID string) error
	Close() error
}

// Verify *DB satisfies ProjectStore at compile time.
var _ ProjectStore = (*DB)(nil)

// DB wraps a sql.DB with project-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}
