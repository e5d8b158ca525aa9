package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterPlain(t *testing.T) {
	var out, diag bytes.Buffer
	p := New().WithOutput(&out).WithDiagnostics(&diag).WithColors(false)

	p.PrintMatch("data.bin")
	p.PrintMatch("sub/file1.txt")
	p.Finalize()

	assert.Equal(t, "Found: data.bin\nFound: sub/file1.txt\n", out.String())
	assert.Empty(t, diag.String())
	assert.Equal(t, int64(2), p.Matches())
	assert.Equal(t, int64(0), p.Failures())
}

func TestPrinterFailures(t *testing.T) {
	var out, diag bytes.Buffer
	p := New().WithOutput(&out).WithDiagnostics(&diag).WithColors(false)

	p.PrintFailure(assert.AnError)

	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "Error: ")
	assert.Equal(t, int64(1), p.Failures())
}

func TestPrinterJSON(t *testing.T) {
	var out bytes.Buffer
	p := New().WithOutput(&out).WithColors(false).WithJSON(true)

	p.PrintMatch("a.txt")
	p.PrintMatch("b/c.txt")
	p.Finalize()

	var paths []string
	require.NoError(t, json.Unmarshal(out.Bytes(), &paths))
	assert.Equal(t, []string{"a.txt", "b/c.txt"}, paths)
}

func TestPrinterJSONEmpty(t *testing.T) {
	var out bytes.Buffer
	p := New().WithOutput(&out).WithJSON(true)

	p.Finalize()

	assert.Equal(t, "[]\n", out.String())
}
