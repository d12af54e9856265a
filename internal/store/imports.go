package store

import (
	"context"
	"fmt"
	"time"
)

// Import kinds.
const (
	ImportMaster    = "master"
	ImportResponses = "responses"
)

// ImportRecord is one entry of a project's import history.
type ImportRecord struct {
	ProjectID  string    `json:"project_id"`
	Kind       string    `json:"kind"`
	Source     string    `json:"source"`
	Checksum   string    `json:"checksum"`
	Records    int       `json:"records"`
	ImportedAt time.Time `json:"imported_at"`
}

// RecordImport appends rec to the import history.
func (db *DB) RecordImport(ctx context.Context, rec ImportRecord) error {
	if rec.ImportedAt.IsZero() {
		rec.ImportedAt = time.Now().UTC()
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO imports (project_id, kind, source, checksum, records, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ProjectID, rec.Kind, rec.Source, rec.Checksum, rec.Records, rec.ImportedAt)
	if err != nil {
		return fmt.Errorf("store: record import: %w", err)
	}
	return nil
}

// ImportedChecksums returns the checksums of every file already imported
// into the project.
func (db *DB) ImportedChecksums(ctx context.Context, projectID string) (map[string]struct{}, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT checksum FROM imports WHERE project_id = ? AND checksum != ''`, projectID)
	if err != nil {
		return nil, fmt.Errorf("store: imported checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var cs string
		if err := rows.Scan(&cs); err != nil {
			return nil, err
		}
		out[cs] = struct{}{}
	}
	return out, rows.Err()
}

// DeleteImports clears the import history of a project.
func (db *DB) DeleteImports(ctx context.Context, projectID string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM imports WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("store: delete imports: %w", err)
	}
	return nil
}

// ListImports returns the most recent imports of a project, newest first.
// A non-positive limit defaults to 50.
func (db *DB) ListImports(ctx context.Context, projectID string, limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT project_id, kind, source, checksum, records, imported_at
		FROM imports WHERE project_id = ?
		ORDER BY id DESC LIMIT ?
	`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list imports: %w", err)
	}
	defer rows.Close()

	out := []ImportRecord{}
	for rows.Next() {
		var r ImportRecord
		if err := rows.Scan(&r.ProjectID, &r.Kind, &r.Source, &r.Checksum, &r.Records, &r.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
