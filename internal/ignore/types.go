// Package ignore answers whether paths are excluded by the root .gitignore
package ignore

import (
	"os"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/go-git/go-billy/v5"

	"github.com/dirseek/dirseek/internal/utils"
)

// FileName is the only rule file ever consulted, directly under the
// search root. Nested, global, and system ignore files are out of scope.
const FileName = ".gitignore"

// Filesystem is the subset of filesystem behavior the matcher needs to
// load its rule file. billy filesystems satisfy it.
type Filesystem interface {
	Open(filename string) (billy.File, error)
	Lstat(filename string) (os.FileInfo, error)
}

// Matcher decides whether a path is excluded by the root ignore file.
// It is immutable after construction and safe for concurrent queries.
// A Matcher without a ruleset matches nothing.
type Matcher struct {
	// The compiled ruleset, nil when no usable ignore file was found
	ruleset gitignore.GitIgnore

	rootDir  string
	fs       Filesystem
	logger   utils.Logger
	disabled bool
}
