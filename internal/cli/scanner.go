package cli

import (
	"path/filepath"

	"github.com/toyz/flatgen/internal/config"
	"github.com/toyz/flatgen/internal/models"
	"github.com/toyz/flatgen/internal/utils/fileops"
)

// DocumentScanner lists the documents of a run in processing order
type DocumentScanner struct {
	fileOps *fileops.FileOps
}

// NewDocumentScanner creates a new document scanner
func NewDocumentScanner() *DocumentScanner {
	return &DocumentScanner{
		fileOps: fileops.NewFileOps(),
	}
}

// Scan returns the headers of headerDir sorted by name, without the excluded
// ones, followed by the alias documents in configured order. A header that
// shares its name with an alias is read only as the alias.
func (s *DocumentScanner) Scan(headerDir string, settings *config.Settings) ([]models.Document, error) {
	names, err := s.fileOps.ListFiles(headerDir)
	if err != nil {
		return nil, err
	}

	var documents []models.Document
	for _, name := range names {
		if settings.IsExcluded(name) {
			continue
		}
		if _, aliased := settings.ResolveAlias(name); aliased {
			continue
		}
		documents = append(documents, s.resolve(headerDir, name, settings))
	}

	for _, alias := range settings.Aliases {
		documents = append(documents, s.resolve(headerDir, alias.Document, settings))
	}

	return documents, nil
}

// resolve maps a logical document name to the file to read and the prefix
// override, if any
func (s *DocumentScanner) resolve(headerDir, name string, settings *config.Settings) models.Document {
	if alias, ok := settings.ResolveAlias(name); ok {
		return models.Document{
			Name:           name,
			SourcePath:     filepath.Join(headerDir, alias.Source),
			PrefixOverride: alias.Prefix,
		}
	}
	return models.Document{
		Name:       name,
		SourcePath: filepath.Join(headerDir, name),
	}
}
