package ignore

import "github.com/dirseek/dirseek/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithLogger sets a custom logger for the matcher
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithFilesystem overrides where the rule file is read from. The
// filesystem is expected to be rooted at the search root, so the rule
// file is opened by its bare name.
func WithFilesystem(fsys Filesystem) Option {
	return func(m *Matcher) {
		if fsys != nil {
			m.fs = fsys
		}
	}
}

// WithDisabled returns a matcher that ignores nothing
func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
