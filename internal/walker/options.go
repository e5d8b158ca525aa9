package walker

import (
	"context"

	"github.com/dirseek/dirseek/internal/utils"
)

// defaultBufferSize is the result channel capacity. The bound is what
// gives the stream backpressure: a slow consumer throttles the walk
// instead of letting results pile up in memory.
const defaultBufferSize = 100

// walkOptions configures one call to Search
type walkOptions struct {
	logger  utils.Logger
	ctx     context.Context
	fsys    Filesystem
	bufSize int
}

// defaultOptions returns the default walk options
func defaultOptions() walkOptions {
	return walkOptions{
		logger:  &utils.NoopLogger{},
		ctx:     context.Background(),
		bufSize: defaultBufferSize,
	}
}

// Option is a functional option for configuring a search
type Option func(*walkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *walkOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithContext sets the context that cancels the walk. Cancelling is the
// consumer's way of abandoning the stream; the producer stops promptly
// and closes the channel without reporting an error.
func WithContext(ctx context.Context) Option {
	return func(opts *walkOptions) {
		if ctx != nil {
			opts.ctx = ctx
		}
	}
}

// WithFilesystem overrides the filesystem the walk reads. It must be
// rooted at the filter's root directory. Defaults to the host filesystem.
func WithFilesystem(fsys Filesystem) Option {
	return func(opts *walkOptions) {
		if fsys != nil {
			opts.fsys = fsys
		}
	}
}

// WithBufferSize sets the result channel capacity
func WithBufferSize(n int) Option {
	return func(opts *walkOptions) {
		if n > 0 {
			opts.bufSize = n
		}
	}
}
