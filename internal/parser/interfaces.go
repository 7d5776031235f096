package parser

import "github.com/toyz/flatgen/internal/models"

// HeaderParser turns a header document into the entries of a generated unit
type HeaderParser interface {
	ParseDocument(doc models.Document) (*models.ParseResult, error)
	ParseSource(doc models.Document, source string) (*models.ParseResult, error)
}

// Reporter receives non-fatal diagnostics while a document is parsed.
// utils.DiagnosticSystem satisfies it.
type Reporter interface {
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopReporter struct{}

func (nopReporter) Warn(string, ...interface{})  {}
func (nopReporter) Debug(string, ...interface{}) {}
