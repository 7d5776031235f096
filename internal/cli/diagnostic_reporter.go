package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/flatgen/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	errOut  io.Writer
}

// NewDiagnosticReporterWithWriter creates a reporter writing to errOut
func NewDiagnosticReporterWithWriter(verbose bool, errOut io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		errOut:  errOut,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string, suggestions ...string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)

	if r.verbose {
		for _, suggestion := range suggestions {
			fmt.Fprintf(r.errOut, "  - %s\n", suggestion)
		}
	}
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.errOut, "\nERROR: Code Generation Failed\n")
	fmt.Fprintf(r.errOut, "=============================\n\n")

	var genErr *models.GeneratorError
	if errors.As(err, &genErr) {
		r.reportGeneratorError(genErr)
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr *models.GeneratorError) {
	r.printErrorHeader(genErr)

	fmt.Fprintf(r.errOut, "Message: %s\n\n", genErr.Message)

	// In verbose mode, show the underlying cause if available
	if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n\n", genErr.Cause.Error())
	}

	if genErr.File != "" {
		if genErr.Line > 0 {
			fmt.Fprintf(r.errOut, "Location: %s:%d\n\n", genErr.File, genErr.Line)
		} else {
			fmt.Fprintf(r.errOut, "File: %s\n\n", genErr.File)
		}
	}

	if len(genErr.Context) > 0 {
		r.printContext(genErr.Context)
	}

	if len(genErr.Suggestions) > 0 {
		r.printSuggestions(genErr.Suggestions)
	}

	r.printAdditionalHelp(genErr.Type)

	if r.verbose {
		r.printVerboseDebuggingInfo(genErr)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())

	// Try to provide some general guidance based on error message
	errorMsg := strings.ToLower(err.Error())

	if strings.Contains(errorMsg, "config") {
		fmt.Fprintf(r.errOut, "This appears to be a configuration issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check the YAML passed with -config\n")
		fmt.Fprintf(r.errOut, "  - Remove keys the generator does not know\n\n")
	} else if strings.Contains(errorMsg, "directory") {
		fmt.Fprintf(r.errOut, "This appears to be a directory issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check the -headers and -output flags\n")
		fmt.Fprintf(r.errOut, "  - Run from the directory holding steam/\n\n")
	}
}

// printErrorHeader prints a formatted error header based on error type
func (r *DiagnosticReporter) printErrorHeader(genErr *models.GeneratorError) {
	errorTypeStr := genErr.Type.String()

	fmt.Fprintf(r.errOut, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.errOut, "Context:\n")

	// Print important context items first
	importantKeys := []string{"document", "source_path", "interface", "method"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	var rest []string
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.errOut, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.errOut, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "document":
		return "Document"
	case "source_path":
		return "Source"
	case "interface":
		return "Interface"
	case "method":
		return "Method"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// printAdditionalHelp prints additional help based on error type
func (r *DiagnosticReporter) printAdditionalHelp(errorType models.ErrorType) {
	switch errorType {
	case models.ErrorTypeConfiguration:
		fmt.Fprintf(r.errOut, "Configuration Help:\n")
		fmt.Fprintf(r.errOut, "  - Lists in the config file replace the built-in ones\n")
		fmt.Fprintf(r.errOut, "  - Maps in the config file are merged into the built-in ones\n\n")

	case models.ErrorTypeFileSystem:
		fmt.Fprintf(r.errOut, "Output Help:\n")
		fmt.Fprintf(r.errOut, "  - Files written before the failure are complete and were kept\n")
		fmt.Fprintf(r.errOut, "  - Documents after the failing one were not processed\n\n")
	}

	fmt.Fprintf(r.errOut, "For more help:\n")
	fmt.Fprintf(r.errOut, "  - Run with -verbose for more detailed output\n")
	fmt.Fprintf(r.errOut, "  - Run with -help to list the flags\n")
}

// printVerboseDebuggingInfo prints additional debugging information in verbose mode
func (r *DiagnosticReporter) printVerboseDebuggingInfo(genErr *models.GeneratorError) {
	fmt.Fprintf(r.errOut, "Verbose Debug Information:\n")
	fmt.Fprintf(r.errOut, "  Error Type Code: %d\n", int(genErr.Type))

	if genErr.Cause != nil {
		fmt.Fprintf(r.errOut, "  Error Chain:\n")
		err := genErr.Cause
		for level := 1; err != nil; level++ {
			fmt.Fprintf(r.errOut, "    %d. %s\n", level, err.Error())
			err = errors.Unwrap(err)
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	RunID                string
	DocumentsProcessed   int
	InterfacesFound      int
	MethodsEmitted       int
	Warnings             []models.Diagnostic
	Abandoned            []AbandonedDeclaration
	UnresolvedCollisions []string
	SkippedDocuments     []string
	GeneratedFiles       []string // per-document files, in processing order
	UnityFile            string   // empty when nothing was generated
}

// AbandonedDeclaration is an unterminated declaration and the document it was in
type AbandonedDeclaration struct {
	Document string
	models.AbandonedDeclaration
}
