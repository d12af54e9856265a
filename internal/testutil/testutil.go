// Package testutil provides shared test helpers for setting up stores,
// workspaces and checklist fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/hrpaudit/internal/storage"
	"github.com/starford/hrpaudit/internal/store"
)

// MasterJSON is a small master checklist covering three chapters and every
// graded tier.
const MasterJSON = `[
  {"chapter_level": "1,1", "requirement_level": "0. UNACCEPTABLE", "requirement": "No child under 15 is employed", "explanation": "Check ID copies"},
  {"chapter_level": 2.1, "requirement_level": "1. CONSOLIDATED", "requirement": "Wages are paid on time", "explanation": ""},
  {"chapter_level": "3.2", "requirement_level": "2. ADVANCED", "requirement": "Fire exits are unobstructed", "explanation": "Walk the floor"},
  {"chapter_level": "3.3", "requirement_level": "3. EXCELLENCE", "requirement": "Chemical storage is labelled", "explanation": null}
]`

// ResponsesCSV answers the MasterJSON checklist. Its chapter labels use the
// normalized dotted form.
const ResponsesCSV = `chapter_level,requirement,answer,complies,comments
1.1,No child under 15 is employed,Yes,OK,Checked 20 files
2.1,Wages are paid on time,"No, two weeks late",NOK,Payroll delays
3.2,Fire exits are unobstructed,Yes,OK,
3.3,Chemical storage is labelled,N/A,Not Applicable,No chemicals on site
`

// TestStore creates a temporary SQLite project store that is automatically
// cleaned up.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "hrpaudit-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestWorkspace creates a temporary workspace directory with a storage
// provider rooted at its inbox.
func TestWorkspace(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	inbox := filepath.Join(dir, "inbox")
	if err := os.MkdirAll(inbox, 0o755); err != nil {
		t.Fatal(err)
	}
	fs, err := storage.NewFS(inbox)
	if err != nil {
		t.Fatal(err)
	}
	return dir, fs
}
