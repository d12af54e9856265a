// Package storage defines the workspace file-system abstraction used for the
// import drop folder and rendered exports.
package storage

import "time"

// FileInfo describes one file in the workspace.
type FileInfo struct {
	Path      string
	Size      int64
	Checksum  string
	UpdatedAt time.Time
}

// Provider is the interface for workspace file operations.
type Provider interface {
	// Root returns the absolute directory all paths are relative to.
	Root() string
	// List returns the files directly under dir whose extension is one of
	// exts (case-insensitive). No exts means every file.
	List(dir string, exts ...string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path.
	Write(path string, content []byte) error
	// Delete removes the file at path.
	Delete(path string) error
	// Move renames oldPath to newPath.
	Move(oldPath, newPath string) error
}
