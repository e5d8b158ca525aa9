//go:build windows

package walker

import (
	"os"
	"strings"
	"syscall"
)

// isHidden reports whether an entry is hidden: a leading-dot name on any
// platform, or the hidden attribute bit when the stat data carries one.
func isHidden(name string, info os.FileInfo) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if info == nil {
		return false
	}
	if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return data.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
	}
	return false
}
