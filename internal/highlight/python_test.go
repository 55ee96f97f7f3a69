package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPythonKeywordsAndString(t *testing.T) {
	src := []byte(`def f(): return "hi"`)
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "def", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanPythonRawStringDisablesEscapes(t *testing.T) {
	src := []byte(`r"a\nb"`)
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "string_decor", toks[0].Category.String())
	assert.Equal(t, "r", string(src[toks[0].Begin:toks[0].End()]))
	// the backslash-n inside must NOT be classified as string_escape
	for _, tk := range toks[1 : len(toks)-1] {
		assert.NotEqual(t, "string_escape", tk.Category.String())
	}
}

func TestScanPythonFStringField(t *testing.T) {
	src := []byte(`f"hi {name}!"`)
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 5)
	var foundDelim bool
	for _, tk := range toks {
		if tk.Category.String() == "string_interpolation_delim" {
			foundDelim = true
		}
	}
	assert.True(t, foundDelim)
}

func TestScanPythonTripleQuotedString(t *testing.T) {
	src := []byte("\"\"\"doc\nstring\"\"\"")
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 3)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, "string_delim", toks[2].Category.String())
}

func TestScanPythonByteStringPrefix(t *testing.T) {
	src := []byte(`b'raw bytes'`)
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "string_decor", toks[0].Category.String())
	assert.Equal(t, "b", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanPythonNumberWithUnderscoreAndImaginarySuffix(t *testing.T) {
	src := []byte(`1_000j`)
	buf, _ := scanPython(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	last := toks[len(toks)-1]
	assert.Equal(t, "number_decor", last.Category.String())
	assert.Equal(t, "j", string(src[last.Begin:last.End()]))
}
