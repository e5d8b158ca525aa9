package walker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/dirseek/dirseek/internal/ignore"
)

// Filesystem is the view of the filesystem the walk consumes: list a
// directory's entries, query one entry's metadata. Paths are relative to
// the search root. billy filesystems satisfy it.
type Filesystem interface {
	ReadDir(path string) ([]os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
}

// Search starts the walk in the background and returns the stream it
// produces. Matches and failures arrive in breadth-first discovery order,
// failures interleaved where they occurred; no global sort order is
// guaranteed. The channel is closed when the traversal completes,
// including after a failure listing the root itself.
func Search(filter Filter, matcher *ignore.Matcher, opts ...Option) <-chan Result {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.fsys == nil {
		options.fsys = osfs.New(filter.Root)
	}

	results := make(chan Result, options.bufSize)
	go func() {
		defer close(results)
		run(filter, matcher, options, results)
	}()
	return results
}

// run drains the frontier sequentially, one directory at a time. All
// output goes through emit; run returns when the frontier is exhausted or
// the consumer has cancelled. Failures never abort the walk: an
// unreadable directory or unqueryable entry costs exactly one Failure
// message and traversal continues with the rest of the frontier.
func run(filter Filter, matcher *ignore.Matcher, options walkOptions, out chan<- Result) {
	options.logger.Debug("walker: starting at %q (pattern %q, max depth %d)",
		filter.Root, filter.Pattern, filter.MaxDepth)

	frontier := []frontierItem{{dir: ".", depth: 0}}
	for len(frontier) > 0 {
		select {
		case <-options.ctx.Done():
			options.logger.Debug("walker: cancelled, stopping")
			return
		default:
		}

		item := frontier[0]
		frontier = frontier[1:]

		if filter.MaxDepth >= 0 && item.depth > filter.MaxDepth {
			continue
		}

		entries, err := options.fsys.ReadDir(item.dir)
		if err != nil {
			failure := fmt.Errorf("list %s: %w", displayPath(filter.Root, item.dir), err)
			if !emit(options, out, Result{Err: failure}) {
				return
			}
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			rel := filepath.Join(item.dir, name)

			// Ignored entries vanish entirely: not reported, not descended
			if !filter.IncludeIgnored && matcher.Match(rel, entry.IsDir()) {
				options.logger.Debug("walker: %q excluded by ignore rules", rel)
				continue
			}

			// Entries can vanish between listing and the metadata query;
			// that costs one Failure for this entry only
			info, err := options.fsys.Lstat(rel)
			if err != nil {
				failure := fmt.Errorf("stat %s: %w", displayPath(filter.Root, rel), err)
				if !emit(options, out, Result{Err: failure}) {
					return
				}
				continue
			}

			if !filter.IncludeHidden && isHidden(name, info) {
				options.logger.Debug("walker: %q hidden, skipping", rel)
				continue
			}

			if info.IsDir() {
				if filter.MaxDepth < 0 || item.depth < filter.MaxDepth {
					frontier = append(frontier, frontierItem{dir: rel, depth: item.depth + 1})
				}
				continue
			}

			if fileMatches(name, &filter) {
				if !emit(options, out, Result{Path: displayPath(filter.Root, rel)}) {
					return
				}
			}
		}
	}

	options.logger.Debug("walker: frontier exhausted")
}

// emit delivers one result, honoring cancellation while blocked on a full
// channel. It reports false when the consumer is gone and the walk should
// stop; that is a clean stop, not an error.
func emit(options walkOptions, out chan<- Result, r Result) bool {
	select {
	case out <- r:
		return true
	case <-options.ctx.Done():
		options.logger.Debug("walker: cancelled while emitting, stopping")
		return false
	}
}

// displayPath rebuilds the caller-facing path from the configured root
// and a root-relative traversal path.
func displayPath(root, rel string) string {
	if rel == "." {
		return root
	}
	return filepath.Join(root, rel)
}
