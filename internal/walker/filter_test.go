package walker

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomASCII returns a printable ASCII string of length < maxLen.
func randomASCII(rng *rand.Rand, maxLen int) string {
	n := rng.Intn(maxLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(95) + 32)
	}
	return string(b)
}

func TestMatchNameUniversalWildcard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s := randomASCII(rng, 50)
		assert.True(t, MatchName(s, Wildcard), "wildcard must match %q", s)
	}
}

func TestMatchNameSubstringEquivalence(t *testing.T) {
	// With wildcards stripped from the pattern, MatchName is exactly
	// strings.Contains.
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		s := randomASCII(rng, 50)
		p := strings.ReplaceAll(randomASCII(rng, 10), "*", "")
		assert.Equal(t, strings.Contains(s, p), MatchName(s, p),
			"MatchName(%q, %q) must equal strings.Contains", s, p)
	}
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"anything-at-all", "*", true},
		{"abc-file.txt", "abc*", true},
		{"xabc-file.txt", "abc*", true}, // not anchored: substring only
		{"xyz-file.txt", "abc*", false},
		{"debug.log", "*.log", true},
		{"changelog", "*.log", false},
		{"Readme.md", "readme", false}, // case-sensitive
		{"readme.md", "readme", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchName(tt.name, tt.pattern),
			"MatchName(%q, %q)", tt.name, tt.pattern)
	}
}

func TestMatchExtension(t *testing.T) {
	txtPng := map[string]struct{}{"txt": {}, "png": {}}

	tests := []struct {
		path    string
		allowed map[string]struct{}
		want    bool
	}{
		{"anything", nil, true},
		{"hello.txt", txtPng, true},
		{"HELLO.TXT", txtPng, true}, // case-insensitive
		{"pic.PNG", txtPng, true},
		{"readme.md", txtPng, false},
		{"Makefile", txtPng, false}, // no extension never matches a set
		{"trailing.", txtPng, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchExtension(tt.path, tt.allowed),
			"MatchExtension(%q)", tt.path)
	}
}

func TestExtensionSet(t *testing.T) {
	t.Run("normalizes dots, case and whitespace", func(t *testing.T) {
		set := ExtensionSet([]string{".Go", " md ", "TXT", ""})
		assert.Equal(t, map[string]struct{}{"go": {}, "md": {}, "txt": {}}, set)
	})

	t.Run("empty input means no restriction", func(t *testing.T) {
		assert.Nil(t, ExtensionSet(nil))
		assert.Nil(t, ExtensionSet([]string{"", "  "}))
	})
}
