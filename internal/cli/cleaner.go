package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/flatgen/internal/generator"
	"github.com/toyz/flatgen/internal/utils/fileops"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	fileOps *fileops.FileOps
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileOps: fileops.NewFileOps(),
	}
}

// CleanGeneratedFiles removes every .cpp file of outputDir that starts with
// banner and returns the removed paths. Hand written files are left alone
// and a missing directory is not an error.
func (c *Cleaner) CleanGeneratedFiles(outputDir, banner string) ([]string, error) {
	if banner == "" {
		return nil, fmt.Errorf("refusing to clean %s without a banner to match", outputDir)
	}
	if !c.fileOps.IsDir(outputDir) {
		return nil, nil
	}

	names, err := c.fileOps.ListFiles(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to clean directory %s: %w", outputDir, err)
	}

	var removedFiles []string
	for _, name := range names {
		if !strings.HasSuffix(name, generator.OutputExtension) {
			continue
		}

		path := filepath.Join(outputDir, name)
		generated, err := c.fileOps.HasPrefix(path, []byte(banner))
		if err != nil {
			return removedFiles, fmt.Errorf("failed to clean directory %s: %w", outputDir, err)
		}
		if !generated {
			continue
		}

		if err := c.fileOps.RemoveFile(path); err != nil {
			return removedFiles, fmt.Errorf("failed to clean directory %s: %w", outputDir, err)
		}
		removedFiles = append(removedFiles, path)
	}

	return removedFiles, nil
}
