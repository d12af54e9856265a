// Package inbox imports checklist files dropped into the workspace inbox.
// Master checklists (.json, .yaml, .yml) replace the requirement list and
// response sheets (.csv) are merged into it. Handled files are moved to
// processed/, rejected ones to failed/.
package inbox

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/checksum"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/storage"
	"github.com/starford/hrpaudit/internal/store"
)

// Subdirectories of the inbox that receive handled files.
const (
	ProcessedDir = "processed"
	FailedDir    = "failed"
)

// Event kinds passed to an EventCallback.
const (
	EventImported  = "imported"
	EventDuplicate = "duplicate"
	EventFailed    = "failed"
)

// Extensions recognised by the inbox.
var (
	masterExts    = []string{".json", ".yaml", ".yml"}
	responsesExts = []string{".csv"}
)

// EventCallback is called after the inbox handled a file.
type EventCallback func(kind string, path string)

// Importer is the part of the project service the inbox drives.
type Importer interface {
	ImportMaster(ctx context.Context, data []byte, source, ifMatch string) (*projectservice.ImportResult, error)
	ImportResponses(ctx context.Context, data []byte, source, ifMatch string) (*projectservice.ImportResult, error)
	ImportedChecksums(ctx context.Context) (map[string]struct{}, error)
}

var _ Importer = (*projectservice.Service)(nil)

// Inbox imports files found at the root of a storage provider.
type Inbox struct {
	files    storage.Provider
	importer Importer
	logger   *slog.Logger
}

// New creates an inbox reading from files.
func New(files storage.Provider, importer Importer, logger *slog.Logger) *Inbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{files: files, importer: importer, logger: logger}
}

// Kind returns the import kind a file name maps to, or "" when the inbox
// ignores it.
func Kind(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range masterExts {
		if ext == e {
			return store.ImportMaster
		}
	}
	for _, e := range responsesExts {
		if ext == e {
			return store.ImportResponses
		}
	}
	return ""
}

// Sync imports every file currently waiting in the inbox, oldest name first.
// It returns the number of files imported.
func (in *Inbox) Sync(ctx context.Context, cb EventCallback) (int, error) {
	files, err := in.files.List("", append(append([]string{}, masterExts...), responsesExts...)...)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}
	imported, err := in.importer.ImportedChecksums(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrNoProject) {
			in.logger.Warn("inbox: no active project, files left in place", slog.Int("files", len(files)))
			return 0, nil
		}
		return 0, err
	}

	n := 0
	for _, f := range files {
		if ctx.Err() != nil {
			return n, ctx.Err()
		}
		kind, err := in.handle(ctx, f.Path, f.Checksum, imported)
		if err != nil {
			if errors.Is(err, apperr.ErrNoProject) {
				in.logger.Warn("inbox: no active project, files left in place")
				return n, nil
			}
			in.logger.Warn("inbox: import failed", slog.String("path", f.Path), slog.String("error", err.Error()))
			continue
		}
		if kind == EventImported {
			n++
			imported[f.Checksum] = struct{}{}
		}
		if cb != nil {
			cb(kind, f.Path)
		}
	}
	return n, nil
}

// ImportFile imports a single inbox file by its path relative to the inbox.
func (in *Inbox) ImportFile(ctx context.Context, rel string) (string, error) {
	data, err := in.files.Read(rel)
	if err != nil {
		return "", err
	}
	imported, err := in.importer.ImportedChecksums(ctx)
	if err != nil {
		return "", err
	}
	return in.handle(ctx, rel, checksum.Sum(data), imported)
}

// handle imports rel unless a file with the same digest was imported before,
// then moves it out of the inbox root. Errors that leave the file in place
// are returned.
func (in *Inbox) handle(ctx context.Context, rel, sum string, imported map[string]struct{}) (string, error) {
	if _, dup := imported[sum]; dup {
		in.logger.Info("inbox: duplicate skipped", slog.String("path", rel))
		return EventDuplicate, in.files.Move(rel, path.Join(ProcessedDir, rel))
	}

	data, err := in.files.Read(rel)
	if err != nil {
		return "", err
	}

	var res *projectservice.ImportResult
	switch Kind(rel) {
	case store.ImportMaster:
		res, err = in.importer.ImportMaster(ctx, data, rel, "")
	case store.ImportResponses:
		res, err = in.importer.ImportResponses(ctx, data, rel, "")
	default:
		return "", nil
	}
	if errors.Is(err, apperr.ErrInvalidInput) {
		in.logger.Warn("inbox: rejected", slog.String("path", rel), slog.String("error", err.Error()))
		return EventFailed, in.files.Move(rel, path.Join(FailedDir, rel))
	}
	if err != nil {
		return "", err
	}

	in.logger.Info("inbox: imported",
		slog.String("path", rel),
		slog.String("kind", res.Kind),
		slog.Int("records", res.Records))
	return EventImported, in.files.Move(rel, path.Join(ProcessedDir, rel))
}
