package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTempMatcher writes rules to a fresh root's ignore file and builds a
// matcher for it.
func newTempMatcher(t *testing.T, rules string) *Matcher {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(rules), 0o644))
	return New(root)
}

func TestMatcherNoRuleFile(t *testing.T) {
	m := New(t.TempDir())
	assert.False(t, m.Match("debug.log", false))
	assert.False(t, m.Match("anything/at/all", true))
}

func TestMatcherNilReceiver(t *testing.T) {
	var m *Matcher
	assert.False(t, m.Match("debug.log", false))
}

func TestMatcherBasicPattern(t *testing.T) {
	m := newTempMatcher(t, "*.log\n")

	assert.True(t, m.Match("debug.log", false))
	assert.True(t, m.Match("sub/debug.log", false), "name patterns apply at any level")
	assert.False(t, m.Match("notes.txt", false))
}

func TestMatcherNegation(t *testing.T) {
	m := newTempMatcher(t, "*.log\n!keep.log\n")

	assert.True(t, m.Match("debug.log", false))
	assert.False(t, m.Match("keep.log", false), "later negation must win")
}

func TestMatcherDirectoryRule(t *testing.T) {
	m := newTempMatcher(t, "build/\n")

	assert.True(t, m.Match("build", true))
	assert.False(t, m.Match("build", false), "a trailing-slash rule only matches directories")
	assert.True(t, m.Match(filepath.Join("build", "out.o"), false),
		"an excluded ancestor hides everything beneath it")
	assert.True(t, m.Match(filepath.Join("build", "deep", "out.o"), false))
}

func TestMatcherRootNeverIgnored(t *testing.T) {
	m := newTempMatcher(t, "*\n")

	assert.False(t, m.Match(".", true))
	assert.False(t, m.Match("", true))
}

func TestMatcherRuleFileIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, FileName), 0o755))

	// An irregular rule file degrades silently to "no ruleset".
	m := New(root)
	assert.False(t, m.Match("debug.log", false))
}

func TestMatcherDisabled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("*.log\n"), 0o644))

	m := New(root, WithDisabled(true))
	assert.False(t, m.Match("debug.log", false))
}

func TestMatcherMemoryFilesystem(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, FileName, []byte("*.tmp\n"), 0o644))

	m := New("/project", WithFilesystem(fsys))
	assert.True(t, m.Match("scratch.tmp", false))
	assert.False(t, m.Match("scratch.txt", false))
}
