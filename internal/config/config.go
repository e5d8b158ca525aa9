package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Search settings
	RootDir        string
	Pattern        string
	MaxDepth       int
	Extensions     string
	ShowHidden     bool
	IncludeIgnored bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Output settings
	OutputFile string
	JSONOutput bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	// Parse command-line flags
	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to search")
	flag.StringVar(&c.Pattern, "pattern", "*", "Name pattern to match against file names ('*' wildcard, naive substring match)")
	flag.IntVar(&c.MaxDepth, "max-depth", -1, "Maximum depth to search; root entries are depth 0 (negative = unlimited)")
	flag.StringVar(&c.Extensions, "ext", "", "Only report files with these extensions (comma-separated, e.g., 'go,md,txt')")
	flag.BoolVar(&c.ShowHidden, "hidden", false, "Include hidden files and directories (starting with '.')")
	flag.BoolVar(&c.IncludeIgnored, "include-ignored", false, "Include files excluded by the root .gitignore")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.JSONOutput, "json", false, "Output matched paths as a JSON array")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
