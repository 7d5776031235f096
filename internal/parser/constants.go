package parser

const (
	// VirtualKeyword starts a method declaration
	VirtualKeyword = "virtual"

	// DestructorMarker identifies destructor lines, which are never wrapped
	DestructorMarker = "~"

	// DirectivePrefix starts a preprocessor line
	DirectivePrefix = "#"

	// Abandonment reasons for declarations that never reach their terminator
	ReasonEndOfDocument   = "end of document"
	ReasonInterfaceClosed = "interface closed"
	ReasonInterfaceOpened = "interface opened"
)
