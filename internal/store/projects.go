package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/checksum"
	"github.com/starford/hrpaudit/internal/models"
)

// Snapshot is a stored project together with its concurrency token.
type Snapshot struct {
	Project   *models.ProjectData
	Checksum  string
	UpdatedAt time.Time
}

// GetProject loads the project stored under id.
// It returns apperr.ErrNotFound when no such project exists.
func (db *DB) GetProject(ctx context.Context, id string) (*Snapshot, error) {
	var (
		data []byte
		snap Snapshot
	)
	err := db.conn.QueryRowContext(ctx,
		`SELECT data, checksum, updated_at FROM projects WHERE id = ?`, id,
	).Scan(&data, &snap.Checksum, &snap.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get project: %w", err)
	}

	var p models.ProjectData
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("store: decode project %s: %w", id, err)
	}
	snap.Project = &p
	return &snap, nil
}

// SaveProject inserts or replaces the project and returns its new checksum.
func (db *DB) SaveProject(ctx context.Context, p *models.ProjectData) (string, error) {
	if p.ID == "" {
		return "", fmt.Errorf("store: save project: %w", apperr.ErrInvalidInput)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("store: encode project: %w", err)
	}
	cs := checksum.Sum(data)

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO projects (id, data, checksum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data       = excluded.data,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, p.ID, data, cs, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("store: upsert project: %w", err)
	}
	return cs, nil
}

// DeleteProject removes a project and its import history.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM imports WHERE project_id = ?`, id); err != nil {
		return fmt.Errorf("store: delete imports: %w", err)
	}
	return tx.Commit()
}

// ProjectExists reports whether a project is stored under id.
func (db *DB) ProjectExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM projects WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("store: project exists: %w", err)
	}
	return n > 0, nil
}
