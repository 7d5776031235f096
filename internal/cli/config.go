package cli

const (
	// DefaultHeaderDir is where the Steamworks headers are read from
	DefaultHeaderDir = "steam"

	// DefaultOutputDir is where the wrapper files are written
	DefaultOutputDir = "wrapper"
)

// Config holds the configuration for the CLI generator
type Config struct {
	// HeaderDir is the directory holding the isteam*.h headers
	HeaderDir string

	// OutputDir receives one .cpp file per header plus the unity file
	OutputDir string

	// ConfigFile is an optional YAML file overriding the built-in tables
	ConfigFile string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}

// withDefaults fills the directories a bare invocation leaves empty
func (c Config) withDefaults() Config {
	if c.HeaderDir == "" {
		c.HeaderDir = DefaultHeaderDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	return c
}
