package models

// Document is one header processed by the generator. Name is the logical
// document (it names the output file) and SourcePath is the file actually read,
// which differs from Name when the document is an alias.
type Document struct {
	Name           string // logical document name, e.g. isteamgameserverutils.h
	SourcePath     string // path of the file whose lines are read
	PrefixOverride string // interface prefix substituted for aliases, empty otherwise
}

// IsAlias reports whether the document borrows another file's declarations
func (d Document) IsAlias() bool {
	return d.PrefixOverride != ""
}

// InterfaceContext is the interface currently open while scanning a document
type InterfaceContext struct {
	Name   string // identifier as declared, e.g. ISteamFriends
	Prefix string // generated-name prefix (Name unless overridden by an alias)
	Depth  int    // brace depth the interface closes at
	Line   int    // line the interface was opened on
}

// Accessor returns the singleton accessor name for the interface: the prefix
// without its leading interface marker (ISteamFriends -> SteamFriends).
func (c InterfaceContext) Accessor() string {
	if len(c.Prefix) == 0 {
		return ""
	}
	return c.Prefix[1:]
}
