package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Alias reprocesses one header under a different document name and interface prefix
type Alias struct {
	Document string `yaml:"document"` // logical document name, names the output file
	Source   string `yaml:"source"`   // header actually read
	Prefix   string `yaml:"prefix"`   // interface prefix substituted while reading Source
}

// HandleType is a return type that cannot cross a C ABI by value
type HandleType struct {
	FlatType   string `yaml:"flat_type"`  // type used in the flat signature
	Conversion string `yaml:"conversion"` // accessor appended to the forwarded call
}

// Settings holds the tables driving header processing
type Settings struct {
	Banner           string                `yaml:"banner"`
	UnityFile        string                `yaml:"unity_file"`
	InterfaceMarker  string                `yaml:"interface_marker"`
	ResponseMarker   string                `yaml:"response_marker"`
	CollisionMarker  string                `yaml:"collision_marker"`
	Exclusions       []string              `yaml:"exclusions"`
	Aliases          []Alias               `yaml:"aliases"`
	AnnotationMacros []string              `yaml:"annotation_macros"`
	QualifiedTypes   map[string]string     `yaml:"qualified_types"`
	HandleTypes      map[string]HandleType `yaml:"handle_types"`
	Templates        map[string]string     `yaml:"templates"` // replaces built-in output templates by name
}

// Default returns the tables used for the Steamworks headers
func Default() *Settings {
	return &Settings{
		Banner:          "// This file is automatically generated!",
		UnityFile:       "unitybuild.cpp",
		InterfaceMarker: "I",
		ResponseMarker:  "Response",
		CollisionMarker: "_",
		Exclusions: []string{
			// No factory of their own, reached through GetISteamGeneric.
			"isteamappticket.h",
			"isteamgamecoordinator.h",
			"isteamps3overlayrenderer.h",
			"steamvr.h",
			"steam_api_interop.cs",
			"steam_api_flat.h",
			"steam_api.json",
			"steamvr_interop.cs",
			"steamvr_flat.h",
		},
		Aliases: []Alias{
			{Document: "isteamgameserverutils.h", Source: "isteamutils.h", Prefix: "ISteamGameServerUtils"},
			{Document: "isteamgameservernetworking.h", Source: "isteamnetworking.h", Prefix: "ISteamGameServerNetworking"},
			{Document: "isteamgameserverhttp.h", Source: "isteamhttp.h", Prefix: "ISteamGameServerHTTP"},
			{Document: "isteamgameserverinventory.h", Source: "isteaminventory.h", Prefix: "ISteamGameServerInventory"},
		},
		AnnotationMacros: []string{
			"ARRAY_COUNT_D",
			"ARRAY_COUNT",
			"OUT_STRUCT",
			"OUT_ARRAY_CALL",
			"OUT_ARRAY_COUNT",
			"BUFFER_COUNT",
			"OUT_BUFFER_COUNT",
			"DESC",
			"OUT_STRING_COUNT",
		},
		QualifiedTypes: map[string]string{
			"EHTMLMouseButton":  "ISteamHTMLSurface::EHTMLMouseButton",
			"EHTMLKeyModifiers": "ISteamHTMLSurface::EHTMLKeyModifiers",
		},
		HandleTypes: map[string]HandleType{
			"CSteamID": {FlatType: "SteamID_t", Conversion: ".ConvertToUint64()"},
		},
	}
}

// Load returns the default settings overlaid with the YAML file at path.
// Lists present in the file replace the defaults, maps are merged into them.
// An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks the settings for values the generator cannot work with
func (s *Settings) Validate() error {
	if s.InterfaceMarker == "" {
		return fmt.Errorf("interface_marker must not be empty")
	}
	if s.CollisionMarker == "" {
		return fmt.Errorf("collision_marker must not be empty")
	}
	if s.UnityFile == "" {
		return fmt.Errorf("unity_file must not be empty")
	}

	seen := make(map[string]bool)
	for i, alias := range s.Aliases {
		if alias.Document == "" || alias.Source == "" || alias.Prefix == "" {
			return fmt.Errorf("alias %d: document, source and prefix are required", i)
		}
		if seen[alias.Document] {
			return fmt.Errorf("alias %d: duplicate document %s", i, alias.Document)
		}
		seen[alias.Document] = true
	}

	for name, handle := range s.HandleTypes {
		if handle.FlatType == "" {
			return fmt.Errorf("handle type %s: flat_type is required", name)
		}
	}
	return nil
}

// IsExcluded reports whether a header file is skipped
func (s *Settings) IsExcluded(name string) bool {
	for _, excluded := range s.Exclusions {
		if excluded == name {
			return true
		}
	}
	return false
}

// ResolveAlias returns the alias for a logical document name
func (s *Settings) ResolveAlias(document string) (Alias, bool) {
	for _, alias := range s.Aliases {
		if alias.Document == document {
			return alias, true
		}
	}
	return Alias{}, false
}
