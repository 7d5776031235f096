package fileops

import (
	"github.com/toyz/flatgen/internal/models"
)

// ErrorWrapper provides consistent error wrapping for file operations
type ErrorWrapper struct{}

// NewErrorWrapper creates a new ErrorWrapper instance
func NewErrorWrapper() *ErrorWrapper {
	return &ErrorWrapper{}
}

// WrapFileReadError wraps file reading errors with context
func (ew *ErrorWrapper) WrapFileReadError(filePath string, err error) error {
	return models.NewFileSystemError(filePath, "failed to read file", err)
}

// WrapFileWriteError wraps file writing errors with context
func (ew *ErrorWrapper) WrapFileWriteError(filePath string, err error) error {
	wrapped := models.NewFileSystemError(filePath, "failed to write file", err)
	wrapped.Suggestions = []string{"Check that the output directory is writable"}
	return wrapped
}

// WrapDirectoryReadError wraps directory reading errors with context
func (ew *ErrorWrapper) WrapDirectoryReadError(dirPath string, err error) error {
	wrapped := models.NewFileSystemError(dirPath, "failed to read directory", err)
	wrapped.Suggestions = []string{"Check the -headers flag points at the directory holding the isteam*.h headers"}
	return wrapped
}

// WrapDirectoryCreateError wraps directory creation errors with context
func (ew *ErrorWrapper) WrapDirectoryCreateError(dirPath string, err error) error {
	wrapped := models.NewFileSystemError(dirPath, "failed to create directory", err)
	wrapped.Suggestions = []string{"Check that the parent of the output directory is writable"}
	return wrapped
}

// WrapFileRemovalError wraps file removal errors with context
func (ew *ErrorWrapper) WrapFileRemovalError(filePath string, err error) error {
	return models.NewFileSystemError(filePath, "failed to remove file", err)
}
