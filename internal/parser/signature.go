package parser

import (
	"fmt"
	"strings"

	"github.com/toyz/flatgen/internal/models"
	"github.com/toyz/flatgen/internal/registry"
)

// signatureState is one of the five states a declaration goes through while
// its tokens are consumed. The set is closed: only the types below implement
// it, and step switches over all of them.
type signatureState interface {
	isSignatureState()
}

// returnTypeState accumulates return type tokens until the method name
type returnTypeState struct {
	returnType string
}

// methodNameState extracts the method name from the token holding '('
type methodNameState struct {
	returnType string
}

// argsState accumulates the raw argument tokens. depth counts the parens
// opened by earlier argument tokens, such as a parenthesized default value.
type argsState struct {
	header methodHeader
	args   []string
	depth  int
}

// attributeSkipState discards the body of an annotation macro, then resumes
// the argument list it interrupted. opened is false while the macro name has
// been read but its '(' has not.
type attributeSkipState struct {
	depth  int
	opened bool
	resume argsState
}

// awaitingTerminatorState discards everything up to the closing ';'
type awaitingTerminatorState struct {
	header methodHeader
	args   []string
}

func (returnTypeState) isSignatureState()         {}
func (methodNameState) isSignatureState()         {}
func (argsState) isSignatureState()               {}
func (attributeSkipState) isSignatureState()      {}
func (awaitingTerminatorState) isSignatureState() {}

// methodHeader is what is known about a method once its name has been read
type methodHeader struct {
	returnType   string
	realName     string
	exportedName string
	warned       bool
}

// completedSignature is a declaration that reached its terminator
type completedSignature struct {
	ReturnType   string
	RealName     string
	ExportedName string
	Args         []string
	Line         int
}

// TypedArgs returns the argument tokens joined as they appeared in the header
func (c *completedSignature) TypedArgs() string {
	return strings.TrimSpace(strings.Join(c.Args, " "))
}

// transition is the result of feeding one token to a state. When again is
// set, token is fed to next before moving on to the following token.
type transition struct {
	next  signatureState
	token string
	again bool
	done  *completedSignature
}

// warnFunc receives malformed-spacing diagnostics: line, method so far, message
type warnFunc func(line int, method, message string)

// SignatureMachine assembles one virtual method declaration at a time from
// whitespace separated tokens, across as many lines as the declaration spans.
type SignatureMachine struct {
	state     signatureState
	iface     *models.InterfaceContext
	startLine int
	line      int
	names     registry.NameAllocator
	macros    []string
	warn      warnFunc
}

// NewSignatureMachine creates an idle machine. names assigns exported names,
// macros lists the annotation macro identifiers stripped from argument lists.
func NewSignatureMachine(names registry.NameAllocator, macros []string, warn warnFunc) *SignatureMachine {
	if warn == nil {
		warn = func(int, string, string) {}
	}
	return &SignatureMachine{
		names:  names,
		macros: macros,
		warn:   warn,
	}
}

// Pending reports whether a declaration is in progress
func (m *SignatureMachine) Pending() bool {
	return m.state != nil
}

// Begin starts a declaration for iface on line
func (m *SignatureMachine) Begin(iface *models.InterfaceContext, line int) {
	m.state = returnTypeState{}
	m.iface = iface
	m.startLine = line
}

// Abandon drops the pending declaration, if any, and describes it
func (m *SignatureMachine) Abandon(reason string) (models.AbandonedDeclaration, bool) {
	if m.state == nil {
		return models.AbandonedDeclaration{}, false
	}

	abandoned := models.AbandonedDeclaration{
		Line:   m.startLine,
		Reason: reason,
	}
	switch s := m.state.(type) {
	case argsState:
		abandoned.Method = s.header.exportedName
	case attributeSkipState:
		abandoned.Method = s.resume.header.exportedName
	case awaitingTerminatorState:
		abandoned.Method = s.header.exportedName
	}

	m.state = nil
	m.iface = nil
	return abandoned, true
}

// Feed consumes the tokens of one line. It returns the completed declaration
// when a terminator is reached; tokens after the terminator are dropped.
func (m *SignatureMachine) Feed(tokens []string, line int) (*completedSignature, bool) {
	if m.state == nil {
		return nil, false
	}
	m.line = line

	for _, token := range tokens {
		if token == "" || token == VirtualKeyword {
			continue
		}

		for again := true; again; {
			t := m.step(token)
			if t.done != nil {
				m.state = nil
				m.iface = nil
				return t.done, true
			}
			m.state = t.next
			token = t.token
			again = t.again && token != ""
		}
	}
	return nil, false
}

func (m *SignatureMachine) step(token string) transition {
	switch s := m.state.(type) {
	case returnTypeState:
		return m.stepReturnType(s, token)
	case methodNameState:
		return m.stepMethodName(s, token)
	case argsState:
		return m.stepArgs(s, token)
	case attributeSkipState:
		return m.stepAttributeSkip(s, token)
	case awaitingTerminatorState:
		return m.stepAwaitingTerminator(s, token)
	default:
		panic(fmt.Sprintf("parser: unknown signature state %T", s))
	}
}

func (m *SignatureMachine) stepReturnType(s returnTypeState, token string) transition {
	if strings.HasPrefix(token, "*") {
		name := strings.TrimLeft(token, "*")
		stars := token[:len(token)-len(name)]
		if name == "" {
			return transition{next: returnTypeState{returnType: s.returnType + stars}}
		}
		return transition{next: methodNameState{returnType: s.returnType + stars}, token: name, again: true}
	}
	if !strings.Contains(token, "(") {
		return transition{next: returnTypeState{returnType: s.returnType + token + " "}}
	}
	return transition{next: methodNameState{returnType: s.returnType}, token: token, again: true}
}

func (m *SignatureMachine) stepMethodName(s methodNameState, token string) transition {
	token = strings.TrimLeft(token, "*")

	realName, rest, hasParen := strings.Cut(token, "(")
	header := methodHeader{
		returnType: strings.TrimSpace(s.returnType),
		realName:   realName,
	}
	header.exportedName = m.names.Register(m.iface.Prefix + "_" + realName)

	switch {
	case !hasParen:
		// The '(' is on a later token; argsState drops it when it arrives.
		return transition{next: argsState{header: header}}
	case rest == "":
		return transition{next: argsState{header: header}}
	case rest == ")":
		return transition{next: awaitingTerminatorState{header: header}, token: rest, again: true}
	default:
		m.warnSpacing(&header)
		return transition{next: argsState{header: header}, token: rest, again: true}
	}
}

func (m *SignatureMachine) stepArgs(s argsState, token string) transition {
	if strings.HasPrefix(token, "(") && len(s.args) == 0 && s.depth == 0 {
		return transition{next: s, token: token[1:], again: true}
	}

	if macro, ok := m.annotationMacro(token); ok {
		rest := token[len(macro):]
		if !strings.HasPrefix(rest, "(") {
			return transition{next: attributeSkipState{resume: s}}
		}
		return m.skipAttribute(attributeSkipState{opened: true, resume: s}, rest)
	}

	closing, depth := closingParen(token, s.depth)
	switch {
	case closing == 0:
		return transition{next: awaitingTerminatorState{header: s.header, args: s.args}, token: token, again: true}
	case closing > 0:
		m.warnSpacing(&s.header)
		args := appendArg(s.args, token[:closing])
		return transition{next: awaitingTerminatorState{header: s.header, args: args}, token: token[closing:], again: true}
	default:
		return transition{next: argsState{header: s.header, args: appendArg(s.args, token), depth: depth}}
	}
}

func (m *SignatureMachine) stepAttributeSkip(s attributeSkipState, token string) transition {
	if !s.opened {
		if !strings.HasPrefix(token, "(") {
			// A macro used without arguments; the token belongs to the list.
			return transition{next: s.resume, token: token, again: true}
		}
		s.opened = true
	}
	return m.skipAttribute(s, token)
}

// skipAttribute discards token up to the point where the macro's parens
// balance. Whatever follows on the same token goes back to the argument list.
func (m *SignatureMachine) skipAttribute(s attributeSkipState, token string) transition {
	depth := s.depth
	for i, r := range token {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return transition{next: s.resume, token: token[i+1:], again: true}
			}
		}
	}
	return transition{next: attributeSkipState{depth: depth, opened: true, resume: s.resume}}
}

func (m *SignatureMachine) stepAwaitingTerminator(s awaitingTerminatorState, token string) transition {
	if !strings.HasSuffix(token, ";") {
		return transition{next: s}
	}
	return transition{done: &completedSignature{
		ReturnType:   s.header.returnType,
		RealName:     s.header.realName,
		ExportedName: s.header.exportedName,
		Args:         s.args,
		Line:         m.startLine,
	}}
}

// annotationMacro returns the recognized macro token begins with. The name
// must end at the token end or at a character that cannot continue an
// identifier, so DESC matches DESC(...) but not DESCRIPTOR.
func (m *SignatureMachine) annotationMacro(token string) (string, bool) {
	for _, macro := range m.macros {
		if !strings.HasPrefix(token, macro) {
			continue
		}
		if len(token) == len(macro) || !isIdentByte(token[len(macro)]) {
			return macro, true
		}
	}
	return "", false
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func (m *SignatureMachine) warnSpacing(header *methodHeader) {
	if header.warned {
		return
	}
	header.warned = true
	m.warn(m.line, header.exportedName, "missing whitespace between the brackets of the argument list")
}

// closingParen returns the index of the ')' that closes the argument list,
// or -1, along with the paren depth after token. depth is the number of
// parens left open by earlier tokens of the list.
func closingParen(token string, depth int) (int, int) {
	for i, r := range token {
		switch r {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i, 0
			}
			depth--
		}
	}
	return -1, depth
}

func appendArg(args []string, token string) []string {
	if token == "" {
		return args
	}
	return append(args, token)
}
