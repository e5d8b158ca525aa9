package walker

import (
	"path/filepath"
	"strings"
)

// Wildcard is the match-everything pattern.
const Wildcard = "*"

// Filter describes a single search. It is a value, immutable for the
// duration of the search; construct it fully before calling Search.
type Filter struct {
	// Root is the directory the search starts from.
	Root string

	// Pattern filters file names. "*" matches every name; any other value
	// has its '*' characters stripped and the remainder matched as a
	// case-sensitive substring of the file name. This is deliberately not
	// glob matching: anchoring, multiple-wildcard positions, and character
	// classes are unsupported.
	Pattern string

	// MaxDepth bounds the traversal. Files directly in the root are depth
	// 0, so MaxDepth 0 reports root-level files only. Negative means
	// unbounded.
	MaxDepth int

	// Extensions, when non-empty, restricts matches to files whose
	// extension (lower-cased, without the dot) is a key of the map. Files
	// without an extension never match a configured set.
	Extensions map[string]struct{}

	// IncludeHidden reports hidden entries and descends hidden directories.
	IncludeHidden bool

	// IncludeIgnored disables the gitignore matcher for this search.
	IncludeIgnored bool
}

// NewFilter returns a Filter with the default surface: current directory,
// match-all pattern, unbounded depth, no extension restriction, hidden
// and gitignored entries excluded.
func NewFilter() Filter {
	return Filter{
		Root:     ".",
		Pattern:  Wildcard,
		MaxDepth: -1,
	}
}

// ExtensionSet normalizes a list of extensions into the set form Filter
// expects: whitespace and leading dots stripped, lower-cased, empties
// dropped. Returns nil for an empty list so the zero value means "no
// restriction".
func ExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		cleaned := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if cleaned != "" {
			set[cleaned] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// MatchName reports whether a file name passes the pattern filter. The
// universal wildcard matches everything; otherwise all '*' characters are
// stripped from the pattern and the name must contain what remains.
func MatchName(name, pattern string) bool {
	if pattern == Wildcard {
		return true
	}
	return strings.Contains(name, strings.ReplaceAll(pattern, Wildcard, ""))
}

// MatchExtension reports whether a path passes the extension filter. An
// empty set allows everything; otherwise the path must carry an extension
// equal to a member of the set, compared case-insensitively.
func MatchExtension(path string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	_, ok := allowed[strings.ToLower(ext)]
	return ok
}

// fileMatches is the combined file filter: pattern against the base name
// AND extension against the allowed set.
func fileMatches(name string, filter *Filter) bool {
	return MatchName(name, filter.Pattern) && MatchExtension(name, filter.Extensions)
}
