package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/hrpaudit/internal/metrics"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/storage"
	"github.com/starford/hrpaudit/internal/store"
)

// Components bundles the dependencies shared by the server and the CLI
// commands.
type Components struct {
	Config  *Config
	Logger  *slog.Logger
	DB      *store.DB
	Metrics *metrics.Metrics
	Service *projectservice.Service
	Inbox   *storage.FS
	Exports *storage.FS
}

// NewLogger returns a JSON logger writing to w at the configured level.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
}

// Setup creates the workspace directories, opens the project store and
// builds the project service. Close releases what Setup opened.
func Setup(cfg *Config, logger *slog.Logger, opts ...projectservice.Option) (*Components, error) {
	inboxDir := cfg.Workspace.InboxDir()
	exportsDir := cfg.Workspace.ExportsDir()
	for _, dir := range []string{cfg.Workspace.Path, inboxDir, exportsDir, filepath.Dir(cfg.SQLite.Path)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	inboxFS, err := storage.NewFS(inboxDir)
	if err != nil {
		return nil, fmt.Errorf("init inbox: %w", err)
	}
	exportsFS, err := storage.NewFS(exportsDir)
	if err != nil {
		return nil, fmt.Errorf("init exports: %w", err)
	}

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	m := metrics.New()
	opts = append([]projectservice.Option{projectservice.WithMetrics(m)}, opts...)
	svc := projectservice.New(db, cfg.Project.ID, logger, opts...)

	return &Components{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Metrics: m,
		Service: svc,
		Inbox:   inboxFS,
		Exports: exportsFS,
	}, nil
}

// Close closes the project store.
func (c *Components) Close() error {
	return c.DB.Close()
}
