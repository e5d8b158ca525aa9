package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dirseek/dirseek/internal/config"
	"github.com/dirseek/dirseek/internal/ignore"
	"github.com/dirseek/dirseek/internal/logger"
	"github.com/dirseek/dirseek/internal/printer"
	"github.com/dirseek/dirseek/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes one search: build the filter and matcher, start the walk
// in the background, drain the stream until it closes.
func (a *App) Run() {
	startTime := time.Now()

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("dirseek version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	// An unreachable root is not fatal here: the walker reports it as a
	// failure on the stream, matches stay empty, and we still exit
	// normally after draining.
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}

	// --- Build the search filter ---
	filter := walker.NewFilter()
	filter.Root = a.cfg.RootDir
	filter.Pattern = a.cfg.Pattern
	filter.MaxDepth = a.cfg.MaxDepth
	filter.IncludeHidden = a.cfg.ShowHidden
	filter.IncludeIgnored = a.cfg.IncludeIgnored

	// --- Parse file extensions ---
	if a.cfg.Extensions != "" {
		filter.Extensions = walker.ExtensionSet(strings.Split(a.cfg.Extensions, ","))
		var extList []string
		for ext := range filter.Extensions {
			extList = append(extList, "."+ext)
		}
		infoLog("Filtering enabled. Only including extensions: %s", strings.Join(extList, ", "))
	} else {
		infoLog("No extension filtering (including all file types).")
	}

	if filter.IncludeHidden {
		infoLog("Including hidden files/directories.")
	} else {
		infoLog("Excluding hidden files/directories (starting with '.').")
	}

	// --- Initialize ignore matcher ---
	var matcher *ignore.Matcher
	if filter.IncludeIgnored {
		infoLog("Including gitignored files (%s not consulted).", ignore.FileName)
	} else {
		matcher = ignore.New(absRootDir, ignore.WithLogger(a.log))
	}

	// --- Create the printer ---
	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors)

	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true)
		// Disable colors in JSON mode regardless of other settings
		p.WithColors(false)
	}

	// --- Start the search and drain the stream ---
	infoLog("Searching directory: %s (pattern %q)", absRootDir, filter.Pattern)

	results := walker.Search(filter, matcher,
		walker.WithLogger(a.log),
		walker.WithContext(ctx),
	)

	for r := range results {
		if r.Err != nil {
			p.PrintFailure(r.Err)
			continue
		}
		p.PrintMatch(r.Path)
	}

	// Finalize the printer (important for JSON output to close the array)
	p.Finalize()

	duration := time.Since(startTime)
	infoLog("Found %d files (%d errors) in %v.",
		p.Matches(), p.Failures(), duration.Round(time.Millisecond))
}
