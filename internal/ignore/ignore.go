package ignore

import (
	gitignore "github.com/denormal/go-gitignore"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/dirseek/dirseek/internal/utils"
)

// New creates a Matcher for rootDir. Construction never fails: a missing,
// irregular, or unparseable ignore file yields a matcher with no ruleset,
// which matches nothing. Favoring search availability over strict ignore
// correctness is deliberate; do not turn these cases into errors.
func New(rootDir string, opts ...Option) *Matcher {
	m := &Matcher{
		rootDir: rootDir,
		logger:  &utils.NoopLogger{},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(m)
	}

	if m.fs == nil {
		m.fs = osfs.New(rootDir)
	}

	if m.disabled {
		m.logger.Debug("ignore.New: matcher disabled, skipping ruleset load")
		return m
	}

	m.ruleset = compile(m.fs, m.rootDir, m.logger)
	return m
}

// compile loads the root-level rule file into a ruleset, or returns nil
// when there is nothing usable to load.
func compile(fsys Filesystem, base string, log utils.Logger) gitignore.GitIgnore {
	info, err := fsys.Lstat(FileName)
	if err != nil {
		log.Debug("ignore: no %s at root, matching nothing", FileName)
		return nil
	}
	if !info.Mode().IsRegular() {
		log.Debug("ignore: %s is not a regular file, matching nothing", FileName)
		return nil
	}

	f, err := fsys.Open(FileName)
	if err != nil {
		log.Warn("ignore: cannot read %s: %v", FileName, err)
		return nil
	}
	defer f.Close()

	var ruleset gitignore.GitIgnore
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn("ignore: panic compiling %s: %v", FileName, r)
				ruleset = nil
			}
		}()
		// Malformed lines are skipped rather than failing the whole file
		ruleset = gitignore.New(f, base, func(gitignore.Error) bool { return true })
	}()

	if ruleset != nil {
		log.Debug("ignore: loaded ruleset from %s", FileName)
	}
	return ruleset
}
