// Package printer renders search results to the configured sinks
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// Printer writes matched paths to the output sink and failures to the
// diagnostic sink
type Printer struct {
	output      io.Writer
	diag        io.Writer
	matches     atomic.Int64
	failures    atomic.Int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
}

// New creates a Printer writing matches to stdout and failures to stderr
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		diag:      os.Stderr,
		useColors: true,
	}
}

// WithOutput sets the match sink
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithDiagnostics sets the failure sink
func (p *Printer) WithDiagnostics(w io.Writer) *Printer {
	p.diag = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON switches the match sink to a JSON array of paths
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// PrintMatch renders one matched path
func (p *Printer) PrintMatch(path string) {
	p.matches.Add(1)

	if p.jsonOutput {
		if !p.jsonStarted {
			// Start the JSON array
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		data, err := json.Marshal(path)
		if err != nil {
			fmt.Fprintf(p.diag, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", data)
		return
	}

	if p.useColors {
		fmt.Fprintf(p.output, "Found: %s\n", color.CyanString(path))
	} else {
		fmt.Fprintf(p.output, "Found: %s\n", path)
	}
}

// PrintFailure renders one failure to the diagnostic sink
func (p *Printer) PrintFailure(err error) {
	p.failures.Add(1)

	if p.useColors {
		fmt.Fprintf(p.diag, "%s %v\n", color.RedString("Error:"), err)
	} else {
		fmt.Fprintf(p.diag, "Error: %v\n", err)
	}
}

// Finalize completes any pending output (like closing the JSON array)
func (p *Printer) Finalize() {
	if p.jsonOutput {
		if p.jsonStarted {
			fmt.Fprint(p.output, "\n]\n")
		} else {
			fmt.Fprint(p.output, "[]\n")
		}
	}
}

// Matches returns the number of matches printed
func (p *Printer) Matches() int64 {
	return p.matches.Load()
}

// Failures returns the number of failures printed
func (p *Printer) Failures() int64 {
	return p.failures.Load()
}
