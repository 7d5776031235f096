package fileops

import (
	"bytes"
	"io"
	"os"
	"sort"
)

// FileOps provides a unified interface for common file operations
// combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// ListFiles returns the names of the regular files directly inside dirPath,
// sorted by name
func (fo *FileOps) ListFiles(dirPath string) ([]string, error) {
	cleanPath, err := fo.pathValidator.Clean(dirPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapDirectoryReadError(dirPath, err)
	}

	entries, err := os.ReadDir(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapDirectoryReadError(cleanPath, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// EnsureDir creates dirPath and any missing parents
func (fo *FileOps) EnsureDir(dirPath string) error {
	cleanPath, err := fo.pathValidator.Clean(dirPath)
	if err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(dirPath, err)
	}
	if err := os.MkdirAll(cleanPath, 0o755); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return nil
}

// WriteFile writes content to name inside dirPath, replacing any existing
// file, and returns the path written
func (fo *FileOps) WriteFile(dirPath, name string, content []byte) (string, error) {
	path, err := fo.pathValidator.Join(dirPath, name)
	if err != nil {
		return "", fo.errorWrapper.WrapFileWriteError(name, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fo.errorWrapper.WrapFileWriteError(path, err)
	}
	return path, nil
}

// HasPrefix reports whether the file at path starts with prefix, reading
// no more than the prefix length
func (fo *FileOps) HasPrefix(path string, prefix []byte) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fo.errorWrapper.WrapFileReadError(path, err)
	}
	defer file.Close()

	head := make([]byte, len(prefix))
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, fo.errorWrapper.WrapFileReadError(path, err)
	}
	return n == len(prefix) && bytes.Equal(head, prefix), nil
}

// RemoveFile removes a file with error handling
func (fo *FileOps) RemoveFile(filePath string) error {
	cleanPath, err := fo.pathValidator.Clean(filePath)
	if err != nil {
		return fo.errorWrapper.WrapFileRemovalError(filePath, err)
	}

	if err := os.Remove(cleanPath); err != nil {
		return fo.errorWrapper.WrapFileRemovalError(cleanPath, err)
	}
	return nil
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
