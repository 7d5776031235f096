package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toyz/flatgen/internal/config"
	"github.com/toyz/flatgen/internal/generator"
	"github.com/toyz/flatgen/internal/models"
	"github.com/toyz/flatgen/internal/parser"
	"github.com/toyz/flatgen/internal/registry"
	"github.com/toyz/flatgen/internal/templates"
	"github.com/toyz/flatgen/internal/utils"
	"github.com/toyz/flatgen/internal/utils/fileops"
)

// Generator coordinates the CLI generation process
type Generator struct {
	scanner     *DocumentScanner
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// NewGeneratorWithDiagnostics creates a new CLI generator reporting to diagnostics
func NewGeneratorWithDiagnostics(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:     NewDocumentScanner(),
		fileOps:     fileops.NewFileOps(),
		diagnostics: diagnostics,
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// LoadSettings returns the built-in tables, overlaid with configFile when set
func LoadSettings(configFile string) (*config.Settings, error) {
	if configFile == "" {
		return config.Default(), nil
	}

	settings, err := config.Load(configFile)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeConfiguration,
			File:    configFile,
			Message: "failed to load configuration",
			Cause:   err,
			Suggestions: []string{
				"Check the file is valid YAML",
				"Only banner, unity_file, interface_marker, response_marker, collision_marker, exclusions, aliases, annotation_macros, qualified_types, handle_types and templates are recognized",
			},
		}
	}
	return settings, nil
}

// Run executes the complete generation process. Documents are processed in
// order with one name registry; each file is written as soon as its document
// is done, and the unity file last. A document that cannot be read aborts the
// run, keeping the files already written.
func (g *Generator) Run(cfg Config) error {
	cfg = cfg.withDefaults()
	startTime := time.Now()

	g.summary = GenerationSummary{
		RunID:          uuid.NewString(),
		GeneratedFiles: make([]string, 0),
	}
	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Run %s: headers %s, output %s", g.summary.RunID, cfg.HeaderDir, cfg.OutputDir)

	settings, err := LoadSettings(cfg.ConfigFile)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(settings)
	if err != nil {
		return err
	}

	g.diagnostics.StartProgress("Scanning headers")
	documents, err := g.scanner.Scan(cfg.HeaderDir, settings)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	g.diagnostics.EndProgress(true, fmt.Sprintf("%d documents", len(documents)))

	if err := g.fileOps.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	names := registry.NewNameRegistry(settings.CollisionMarker)
	headerParser := parser.NewParserWithReporter(parser.OptionsFromSettings(settings), names, g.diagnostics)
	emitter := generator.NewGeneratorWithRenderer(settings.Banner, settings.UnityFile, renderer)

	for _, doc := range documents {
		file, err := g.processDocument(headerParser, emitter, doc)
		if err != nil {
			return g.documentError(doc, err)
		}
		if file == nil {
			g.summary.SkippedDocuments = append(g.summary.SkippedDocuments, doc.Name)
			g.diagnostics.Verbose("%s: no methods, no file written", doc.Name)
			continue
		}

		if err := g.write(cfg.OutputDir, file); err != nil {
			return err
		}
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, file.Name)
	}

	unity, err := emitter.EmitUnity(g.summary.GeneratedFiles)
	if err != nil {
		return err
	}
	if unity != nil {
		if err := g.write(cfg.OutputDir, unity); err != nil {
			return err
		}
		g.summary.UnityFile = unity.Name
	}

	g.summary.UnresolvedCollisions = names.Collisions()
	for _, name := range g.summary.UnresolvedCollisions {
		g.diagnostics.Warn("exported name %s was emitted more than once", name)
	}

	g.diagnostics.Verbose("%d exported names registered", names.Len())
	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// newRenderer applies the template overrides of settings to the built-in templates
func newRenderer(settings *config.Settings) (*templates.Renderer, error) {
	templateRegistry := templates.NewTemplateRegistry()

	names := make([]string, 0, len(settings.Templates))
	for name := range settings.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := templateRegistry.Override(name, settings.Templates[name]); err != nil {
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeConfiguration,
				Message: "invalid template override",
				Cause:   err,
				Context: map[string]interface{}{"template": name},
				Suggestions: []string{
					"Template names are: " + strings.Join(templateRegistry.Names(), ", "),
				},
			}
		}
	}
	return templates.NewRenderer(templateRegistry), nil
}

// processDocument parses doc and renders its file, nil when it has no methods
func (g *Generator) processDocument(headerParser parser.HeaderParser, emitter generator.CodeGenerator, doc models.Document) (*models.GeneratedFile, error) {
	if doc.IsAlias() {
		g.diagnostics.Debug("%s: reading %s as %s", doc.Name, doc.SourcePath, doc.PrefixOverride)
	}

	result, err := headerParser.ParseDocument(doc)
	if err != nil {
		return nil, err
	}

	for _, method := range result.Unit.Methods() {
		g.diagnostics.Debug("%s:%d: %s", doc.Name, method.Line, method.ExportedName)
	}

	g.summary.DocumentsProcessed++
	g.summary.InterfacesFound += len(result.Interfaces)
	g.summary.MethodsEmitted += result.Unit.MethodCount()
	g.summary.Warnings = append(g.summary.Warnings, result.Warnings...)
	for _, abandoned := range result.Abandoned {
		g.summary.Abandoned = append(g.summary.Abandoned, AbandonedDeclaration{
			Document:             doc.Name,
			AbandonedDeclaration: abandoned,
		})
	}

	return emitter.EmitUnit(result.Unit)
}

// write stores file in outputDir
func (g *Generator) write(outputDir string, file *models.GeneratedFile) error {
	g.diagnostics.PhaseProgress("Writing " + file.Name)

	if _, err := g.fileOps.WriteFile(outputDir, file.Name, []byte(file.Content)); err != nil {
		return err
	}
	return nil
}

// documentError adds the document to a fatal error
func (g *Generator) documentError(doc models.Document, err error) error {
	var genErr *models.GeneratorError
	if errors.As(err, &genErr) {
		if genErr.Context == nil {
			genErr.Context = make(map[string]interface{})
		}
		genErr.Context["document"] = doc.Name
		genErr.Context["source_path"] = doc.SourcePath
		genErr.Context["files_kept"] = len(g.summary.GeneratedFiles)
		return genErr
	}

	return &models.GeneratorError{
		Type:    models.ErrorTypeParse,
		File:    doc.SourcePath,
		Message: fmt.Sprintf("failed to process document %s", doc.Name),
		Cause:   err,
		Context: map[string]interface{}{
			"document": doc.Name,
		},
	}
}
