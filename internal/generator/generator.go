package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/flatgen/internal/models"
	"github.com/toyz/flatgen/internal/templates"
)

// OutputExtension is the extension of every generated file
const OutputExtension = ".cpp"

// Generator implements the CodeGenerator interface
type Generator struct {
	banner    string
	unityFile string
	renderer  *templates.Renderer
}

// NewGenerator creates a generator using the default templates
func NewGenerator(banner, unityFile string) *Generator {
	return NewGeneratorWithRenderer(banner, unityFile, templates.NewRenderer(nil))
}

// NewGeneratorWithRenderer creates a generator using renderer
func NewGeneratorWithRenderer(banner, unityFile string, renderer *templates.Renderer) *Generator {
	return &Generator{
		banner:    banner,
		unityFile: unityFile,
		renderer:  renderer,
	}
}

// OutputName returns the generated file name for a document:
// isteamfriends.h becomes isteamfriends.cpp
func OutputName(doc models.Document) string {
	return strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name)) + OutputExtension
}

// EmitUnit renders unit into a file. Units without methods produce no file
// and return nil.
func (g *Generator) EmitUnit(unit models.GeneratedUnit) (*models.GeneratedFile, error) {
	if unit.IsEmpty() {
		return nil, nil
	}

	var content strings.Builder
	if err := g.writeBanner(&content); err != nil {
		return nil, err
	}

	for _, entry := range unit.Entries {
		var (
			rendered string
			err      error
		)
		switch entry.Kind {
		case models.EntryMethod:
			rendered, err = g.renderer.RenderWrapper(entry.Method)
		case models.EntryDirective:
			rendered, err = g.renderer.RenderDirective(entry.Directive)
		default:
			err = fmt.Errorf("unknown entry kind %d", entry.Kind)
		}
		if err != nil {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeGeneration,
				File:    unit.Document.Name,
				Message: "failed to render generated unit",
				Cause:   err,
			}
		}
		content.WriteString(rendered)
	}

	return &models.GeneratedFile{
		Name:    OutputName(unit.Document),
		Content: content.String(),
	}, nil
}

// EmitUnity renders the aggregate file including every file in fileNames,
// in order. No file is produced when nothing was generated.
func (g *Generator) EmitUnity(fileNames []string) (*models.GeneratedFile, error) {
	if len(fileNames) == 0 {
		return nil, nil
	}

	var content strings.Builder
	if err := g.writeBanner(&content); err != nil {
		return nil, err
	}

	for _, name := range fileNames {
		include, err := g.renderer.RenderInclude(name)
		if err != nil {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeGeneration,
				File:    g.unityFile,
				Message: "failed to render unity file",
				Cause:   err,
			}
		}
		content.WriteString(include)
	}

	return &models.GeneratedFile{
		Name:    g.unityFile,
		Content: content.String(),
	}, nil
}

func (g *Generator) writeBanner(content *strings.Builder) error {
	banner, err := g.renderer.RenderBanner(g.banner)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: "failed to render banner",
			Cause:   err,
		}
	}
	content.WriteString(banner)
	return nil
}
