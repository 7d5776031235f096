package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toyz/flatgen/internal/config"
	"github.com/toyz/flatgen/internal/models"
	"github.com/toyz/flatgen/internal/registry"
	"github.com/toyz/flatgen/internal/translator"
)

const maxLineLength = 1024 * 1024

// Options configures how declarations are recognized
type Options struct {
	InterfaceMarker  string                     // leading marker of interface names
	ResponseMarker   string                     // interfaces containing this are skipped
	AnnotationMacros []string                   // macros stripped from argument lists
	Translator       *translator.TypeTranslator // ABI type rewrites
}

// OptionsFromSettings builds parser options from the configuration tables
func OptionsFromSettings(settings *config.Settings) Options {
	return Options{
		InterfaceMarker:  settings.InterfaceMarker,
		ResponseMarker:   settings.ResponseMarker,
		AnnotationMacros: settings.AnnotationMacros,
		Translator:       translator.NewTypeTranslator(settings.QualifiedTypes, settings.HandleTypes),
	}
}

// Parser implements the HeaderParser interface. The name allocator is shared
// with every other document of the run.
type Parser struct {
	options  Options
	names    registry.NameAllocator
	reporter Reporter
}

// NewParser creates a parser that discards diagnostics
func NewParser(options Options, names registry.NameAllocator) *Parser {
	return NewParserWithReporter(options, names, nil)
}

// NewParserWithReporter creates a parser that reports diagnostics to reporter
func NewParserWithReporter(options Options, names registry.NameAllocator, reporter Reporter) *Parser {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if options.Translator == nil {
		options.Translator = translator.NewTypeTranslator(nil, nil)
	}
	if options.InterfaceMarker == "" {
		options.InterfaceMarker = "I"
	}
	return &Parser{
		options:  options,
		names:    names,
		reporter: reporter,
	}
}

// ParseDocument reads doc.SourcePath and parses it as doc
func (p *Parser) ParseDocument(doc models.Document) (*models.ParseResult, error) {
	file, err := os.Open(doc.SourcePath)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    doc.SourcePath,
			Message: fmt.Sprintf("failed to open document %s", doc.Name),
			Cause:   err,
			Suggestions: []string{
				"Check that the header directory contains the file",
				"Check the alias table if the document is an alias",
			},
		}
	}
	defer file.Close()

	return p.Parse(doc, file)
}

// ParseSource parses source as doc, for callers that already hold the text
func (p *Parser) ParseSource(doc models.Document, source string) (*models.ParseResult, error) {
	return p.Parse(doc, strings.NewReader(source))
}

// Parse consumes r line by line and returns the generated unit for doc
func (p *Parser) Parse(doc models.Document, r io.Reader) (*models.ParseResult, error) {
	result := &models.ParseResult{
		Unit: models.GeneratedUnit{Document: doc},
	}

	normalizer := NewLineNormalizer()
	tracker := NewInterfaceTracker(p.options.InterfaceMarker, p.options.ResponseMarker)
	lineNum := 0
	machine := NewSignatureMachine(p.names, p.options.AnnotationMacros, func(line int, method, message string) {
		diagnostic := models.Diagnostic{File: doc.Name, Line: line, Method: method, Message: message}
		result.Warnings = append(result.Warnings, diagnostic)
		p.reporter.Warn("%s:%d: %s - %s", doc.Name, line, message, method)
	})

	abandon := func(reason string) {
		if abandoned, ok := machine.Abandon(reason); ok {
			result.Abandoned = append(result.Abandoned, abandoned)
			p.reporter.Debug("%s:%d: dropped unterminated declaration %q (%s)", doc.Name, abandoned.Line, abandoned.Method, reason)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		lineNum++
		line, ok := normalizer.Normalize(scanner.Text())
		if !ok {
			continue
		}

		if iface := tracker.Observe(line, lineNum, doc.PrefixOverride); iface != nil {
			abandon(ReasonInterfaceOpened)
			result.Interfaces = append(result.Interfaces, iface.Prefix)
			p.reporter.Debug("%s:%d: interface %s", doc.Name, lineNum, iface.Prefix)
		}

		if iface := tracker.Active(); iface != nil {
			p.processInterfaceLine(iface, line, lineNum, machine, &result.Unit)
		}

		if closed := tracker.CountBraces(line); closed != nil {
			abandon(ReasonInterfaceClosed)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			File:    doc.SourcePath,
			Line:    lineNum,
			Message: fmt.Sprintf("failed to read document %s", doc.Name),
			Cause:   err,
		}
	}

	abandon(ReasonEndOfDocument)
	if normalizer.InBlockComment() {
		p.reporter.Warn("%s: document ends inside a block comment", doc.Name)
	}
	if depth := tracker.Depth(); depth != 0 {
		p.reporter.Warn("%s: document ends with unbalanced braces (depth %d)", doc.Name, depth)
	}
	return result, nil
}

// processInterfaceLine handles a normalized line inside an open interface
func (p *Parser) processInterfaceLine(iface *models.InterfaceContext, line string, lineNum int, machine *SignatureMachine, unit *models.GeneratedUnit) {
	switch {
	case strings.HasPrefix(line, DirectivePrefix):
		unit.Entries = append(unit.Entries, models.UnitEntry{
			Kind:      models.EntryDirective,
			Directive: RewriteDirective(line),
		})

	case strings.Contains(line, DestructorMarker):
		// destructors are never wrapped

	case machine.Pending() || hasVirtualKeyword(line):
		if !machine.Pending() {
			machine.Begin(iface, lineNum)
		}
		if signature, done := machine.Feed(strings.Fields(line), lineNum); done {
			unit.Entries = append(unit.Entries, models.UnitEntry{
				Kind:   models.EntryMethod,
				Method: p.buildRecord(iface, signature),
			})
		}
	}
}

// buildRecord canonicalizes and translates a completed declaration
func (p *Parser) buildRecord(iface *models.InterfaceContext, signature *completedSignature) *models.MethodRecord {
	typedArgs := signature.TypedArgs()
	returnType, conversion := p.options.Translator.TranslateReturn(signature.ReturnType)

	return &models.MethodRecord{
		Interface:          iface.Prefix,
		Accessor:           iface.Accessor(),
		DeclaredReturnType: signature.ReturnType,
		ReturnType:         returnType,
		ReturnConversion:   conversion,
		RealName:           signature.RealName,
		ExportedName:       signature.ExportedName,
		TypedArgs:          p.options.Translator.TranslateArgs(typedArgs),
		ForwardingArgs:     ForwardingArgs(typedArgs),
		Line:               signature.Line,
	}
}

// RewriteDirective turns #ifdef/#ifndef into their #if defined() forms and
// leaves every other directive unchanged
func RewriteDirective(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}

	switch fields[0] {
	case "#ifdef":
		return "#if defined(" + fields[1] + ")"
	case "#ifndef":
		return "#if !defined(" + fields[1] + ")"
	default:
		return line
	}
}

func hasVirtualKeyword(line string) bool {
	for _, field := range strings.Fields(line) {
		if field == VirtualKeyword {
			return true
		}
	}
	return false
}
