package parser

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/flatgen/internal/models"
)

// classHeader is the grammar of an interface declaration line:
//
//	class ISteamFriends
//	class ISteamFriends : public ISteamBase {
//	class ISteamFriends;
//
// Anything after the header is ignored.
type classHeader struct {
	Name       string   `parser:"'class' @Ident"`
	Bases      []string `parser:"( ':' ( 'public' | 'protected' | 'private' | 'virtual' )* @Ident ( ',' ( 'public' | 'protected' | 'private' | 'virtual' )* @Ident )* )?"`
	Terminator string   `parser:"@( ';' | '{' )?"`
}

// IsForward reports whether the header is a forward declaration
func (h *classHeader) IsForward() bool {
	return h.Terminator == ";"
}

var (
	classKeyword      = regexp.MustCompile(`\bclass\s`)
	classHeaderParser = newClassHeaderParser()
)

// newClassHeaderParser builds the participle parser for class header lines
func newClassHeaderParser() *participle.Parser[classHeader] {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Scope", Pattern: `::`},
		{Name: "Punct", Pattern: `[{};:,<>()*&=]`},
		{Name: "Other", Pattern: `[^\sa-zA-Z0-9_{};:,<>()*&=]+|[0-9]+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return participle.MustBuild[classHeader](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}

// InterfaceTracker follows brace depth through a document and reports which
// interface, if any, the current line belongs to.
type InterfaceTracker struct {
	header         *participle.Parser[classHeader]
	marker         string
	responseMarker string
	depth          int
	active         *models.InterfaceContext
}

// NewInterfaceTracker creates a tracker for one document. marker is the
// leading character(s) of interface names, responseMarker excludes response
// interfaces by substring; an empty responseMarker excludes nothing.
func NewInterfaceTracker(marker, responseMarker string) *InterfaceTracker {
	return &InterfaceTracker{
		header:         classHeaderParser,
		marker:         marker,
		responseMarker: responseMarker,
	}
}

// Observe inspects a normalized line for an interface header and opens a new
// InterfaceContext when it qualifies. It must be called before CountBraces
// for the same line so the context records the depth outside its own brace.
// The returned context is nil when the line opened nothing.
func (t *InterfaceTracker) Observe(line string, lineNum int, prefixOverride string) *models.InterfaceContext {
	name, ok := t.interfaceName(line)
	if !ok {
		return nil
	}

	prefix := name
	if prefixOverride != "" {
		prefix = prefixOverride
	}

	t.active = &models.InterfaceContext{
		Name:   name,
		Prefix: prefix,
		Depth:  t.depth,
		Line:   lineNum,
	}
	return t.active
}

// interfaceName returns the identifier declared on line if the line opens a
// qualifying interface. Forward declarations and response interfaces do not.
func (t *InterfaceTracker) interfaceName(line string) (string, bool) {
	loc := classKeyword.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	if strings.HasSuffix(line, ";") {
		return "", false
	}

	header, err := t.header.ParseString("", line[loc[0]:], participle.AllowTrailing(true))
	if err != nil || header.IsForward() {
		return "", false
	}
	if !strings.HasPrefix(header.Name, t.marker) || len(header.Name) <= len(t.marker) {
		return "", false
	}
	if t.responseMarker != "" && strings.Contains(header.Name, t.responseMarker) {
		return "", false
	}
	return header.Name, true
}

// CountBraces applies every brace on line to the depth counter, in order. It
// returns the context that closed on this line, or nil.
func (t *InterfaceTracker) CountBraces(line string) *models.InterfaceContext {
	var closed *models.InterfaceContext
	for _, r := range line {
		switch r {
		case '{':
			t.depth++
		case '}':
			t.depth--
			if t.active != nil && t.depth == t.active.Depth {
				closed = t.active
				t.active = nil
			}
		}
	}
	return closed
}

// Active returns the open interface, or nil
func (t *InterfaceTracker) Active() *models.InterfaceContext {
	return t.active
}

// Depth returns the current brace depth
func (t *InterfaceTracker) Depth() int {
	return t.depth
}
