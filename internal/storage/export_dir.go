// Package storage manages export destination directories on the local
// filesystem.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportDir is a destination directory for exported files. Paths
// handed to it are confined to the directory; traversal outside it is
// rejected.
type ExportDir struct {
	basePath string
}

func NewExportDir(basePath string) (*ExportDir, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &ExportDir{basePath: basePath}, nil
}

// Path returns the directory itself.
func (d *ExportDir) Path() string {
	return d.basePath
}

// Resolve maps a file name to its full path inside the directory.
func (d *ExportDir) Resolve(name string) (string, error) {
	cleanName := filepath.Clean(name)
	if strings.Contains(cleanName, "..") || filepath.IsAbs(cleanName) {
		return "", fmt.Errorf("invalid file name: %s", name)
	}
	return filepath.Join(d.basePath, cleanName), nil
}

// Create creates (or truncates) a file inside the directory.
func (d *ExportDir) Create(name string) (*os.File, error) {
	fullPath, err := d.Resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return f, nil
}

// Remove deletes a file inside the directory.
func (d *ExportDir) Remove(name string) error {
	fullPath, err := d.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
