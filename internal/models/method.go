package models

// MethodRecord is a finished virtual method declaration ready for emission
type MethodRecord struct {
	Interface          string // owning interface prefix
	Accessor           string // singleton accessor function name
	DeclaredReturnType string // return type as written in the header
	ReturnType         string // return type used in the flat signature
	ReturnConversion   string // accessor appended to the forwarded call, e.g. .ConvertToUint64()
	RealName           string // method name on the interface
	ExportedName       string // unique flat function name
	TypedArgs          string // parameter list for the flat signature
	ForwardingArgs     string // parameter names passed through to the interface
	Line               int    // line the declaration started on
}

// UnitEntry is one element of a generated unit: either a method or a
// preprocessor directive carried through in declaration order.
type UnitEntry struct {
	Kind      EntryKind
	Method    *MethodRecord
	Directive string
}

// GeneratedUnit is everything generated for one document
type GeneratedUnit struct {
	Document Document
	Entries  []UnitEntry
}

// MethodCount returns the number of methods in the unit
func (u *GeneratedUnit) MethodCount() int {
	count := 0
	for _, entry := range u.Entries {
		if entry.Kind == EntryMethod {
			count++
		}
	}
	return count
}

// IsEmpty reports whether the unit produced no method; such units produce no file
func (u *GeneratedUnit) IsEmpty() bool {
	return u.MethodCount() == 0
}

// Methods returns the method records of the unit in declaration order
func (u *GeneratedUnit) Methods() []*MethodRecord {
	var methods []*MethodRecord
	for _, entry := range u.Entries {
		if entry.Kind == EntryMethod {
			methods = append(methods, entry.Method)
		}
	}
	return methods
}
