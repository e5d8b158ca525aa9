// Package walker implements breadth-first directory search with streaming results
package walker

// Result is one message on the search stream: either a matched path or an
// isolated per-entry/per-directory failure. Exactly one of Path and Err
// is set.
type Result struct {
	Path string
	Err  error
}

// frontierItem pairs a pending directory with its depth below the root.
// The root's own entries are depth 0.
type frontierItem struct {
	dir   string
	depth int
}
