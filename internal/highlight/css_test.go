package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCSSRuleExample(t *testing.T) {
	src := []byte("a { color: red; }")
	buf, _ := scanCSS(src, Options{})
	toks := buf.Tokens()

	var got []string
	for _, tk := range toks {
		got = append(got, tk.Category.String()+"("+string(src[tk.Begin:tk.End()])+")")
	}
	want := []string{
		"markup_tag(a)", "sym_brace({)", "markup_attr(color)", "sym_punc(:)",
		"id(red)", "sym_punc(;)", "sym_brace(})",
	}
	require.Equal(t, want, got)
}

func TestCSSNumberLength(t *testing.T) {
	assert.Equal(t, 4, cssNumberLength([]byte("12.5")))
	assert.Equal(t, 2, cssNumberLength([]byte("-5")))
	assert.Equal(t, 4, cssNumberLength([]byte("1e10x")))
	assert.Equal(t, 0, cssNumberLength([]byte("x")))
}

func TestScanCSSImportant(t *testing.T) {
	src := []byte("x{color:red!important}")
	buf, _ := scanCSS(src, Options{})
	toks := buf.Tokens()
	found := false
	for _, tk := range toks {
		if tk.Category.String() == "keyword" && string(src[tk.Begin:tk.End()]) == "important" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScanCSSStringNoInfiniteLoop(t *testing.T) {
	src := []byte(`"plain content with no escapes"`)
	buf, _ := scanCSS(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 3)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, "string", toks[1].Category.String())
	assert.Equal(t, "string_delim", toks[2].Category.String())
}
