package models

// Diagnostic is a non-fatal problem found while parsing a declaration
type Diagnostic struct {
	File    string // logical document name
	Line    int    // physical line number
	Method  string // exported method name assembled so far
	Message string // description of the problem
}

// AbandonedDeclaration is a virtual method that never reached its terminator
type AbandonedDeclaration struct {
	Method string // exported method name if one was assigned, otherwise empty
	Line   int    // line the declaration started on
	Reason string // "end of document" or "interface closed"
}

// ParseResult is the outcome of parsing a single document
type ParseResult struct {
	Unit       GeneratedUnit
	Interfaces []string               // interfaces opened, in order
	Warnings   []Diagnostic           // malformed spacing and similar
	Abandoned  []AbandonedDeclaration // unterminated declarations
}

// GeneratedFile is a rendered output file
type GeneratedFile struct {
	Name    string // file name relative to the output directory
	Content string // full file content including banner
}
