package ignore

import (
	"path"
	"path/filepath"
)

// Match reports whether relPath, or any ancestor directory between it and
// the root, is excluded by the ruleset and not re-included by a later
// negation rule. relPath is relative to the matcher's root; either slash
// style is accepted. A nil or disabled matcher, or one without a ruleset,
// matches nothing.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	if m == nil || m.disabled || m.ruleset == nil {
		return false
	}

	rel := filepath.ToSlash(relPath)
	if rel == "" || rel == "." {
		return false // Never ignore the root itself
	}

	if decided, ignored := m.query(rel, isDir); decided {
		return ignored
	}

	// An excluded ancestor hides everything beneath it
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if decided, ignored := m.query(dir, true); decided && ignored {
			m.logger.Debug("ignore.Match: %q excluded via ancestor %q", rel, dir)
			return true
		}
	}

	return false
}

// query asks the ruleset about a single path. decided is false when no
// rule matched at all; otherwise ignored carries the last matching rule's
// verdict, so negation rules win over earlier exclusions.
func (m *Matcher) query(rel string, isDir bool) (decided, ignored bool) {
	// The library has panicked on odd patterns before; treat that as
	// "cannot determine" and keep the path.
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("ignore: panic matching %q: %v", rel, r)
			decided, ignored = false, false
		}
	}()

	if match := m.ruleset.Relative(rel, isDir); match != nil {
		return true, match.Ignore()
	}
	return false, false
}
