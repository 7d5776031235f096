package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// Clean validates and cleans a path without requiring it to exist
func (pv *PathValidator) Clean(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	return filepath.Clean(path), nil
}

// Join joins a file name onto a directory, refusing names that would
// escape the directory
func (pv *PathValidator) Join(dir, name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == ".." || name == "." {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	cleanDir, err := pv.Clean(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(cleanDir, name), nil
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile checks if a path exists and is a regular file
func (pv *PathValidator) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
