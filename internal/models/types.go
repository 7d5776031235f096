package models

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeConfiguration ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeParse
	ErrorTypeGeneration
)

// String returns the human readable name of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeConfiguration:
		return "Configuration Error"
	case ErrorTypeFileSystem:
		return "File System Error"
	case ErrorTypeParse:
		return "Parse Error"
	case ErrorTypeGeneration:
		return "Code Generation Error"
	default:
		return "Unknown Error"
	}
}

// EntryKind distinguishes the lines a generated unit is made of
type EntryKind int

const (
	EntryMethod EntryKind = iota
	EntryDirective
)
