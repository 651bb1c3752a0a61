// =============================================================================
// Dealership Inventory - File Manager
// =============================================================================
//
// Small filesystem helper for the CLI: ensures the configured directories
// exist and moves successfully merged input files into the archive so they
// are not imported twice.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileManager handles output and archive directory housekeeping.
type FileManager struct {
	outputDir  string
	archiveDir string
}

// NewFileManager returns a manager over the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		outputDir:  outputDir,
		archiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if absent.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.outputDir, fm.archiveDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// OutputPath resolves a file name against the output directory. Paths that
// already carry a directory component are returned unchanged.
func (fm *FileManager) OutputPath(name string) string {
	if filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(fm.outputDir, name)
}

// Archive moves path into the archive directory, keeping its base name.
// Falls back to copy-and-delete when a rename crosses filesystems.
func (fm *FileManager) Archive(path string) error {
	target := filepath.Join(fm.archiveDir, filepath.Base(path))

	if err := os.Rename(path, target); err == nil {
		return nil
	}

	if err := copyFile(path, target); err != nil {
		return fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s after archiving: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
