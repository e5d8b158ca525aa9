//go:build !windows

package walker

import (
	"os"
	"strings"
)

// isHidden reports whether an entry is hidden. Outside Windows only the
// leading-dot naming convention applies.
func isHidden(name string, _ os.FileInfo) bool {
	return strings.HasPrefix(name, ".")
}
