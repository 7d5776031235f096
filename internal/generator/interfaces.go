package generator

import "github.com/toyz/flatgen/internal/models"

// CodeGenerator defines the interface for rendering generated units into files
type CodeGenerator interface {
	EmitUnit(unit models.GeneratedUnit) (*models.GeneratedFile, error)
	EmitUnity(fileNames []string) (*models.GeneratedFile, error)
}
