package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanJSKeywordsAndPunctuation(t *testing.T) {
	src := []byte(`const x = 1 + 2;`)
	buf, _ := scanJS(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "const", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanJSTemplateLiteralWithSubstitution(t *testing.T) {
	src := []byte("`hi ${name}!`")
	buf, _ := scanJS(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 5)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, "string", toks[1].Category.String())
	assert.Equal(t, "string_interpolation_delim", toks[2].Category.String())
}

func TestScanJSTemplateNestedBraces(t *testing.T) {
	src := []byte("`${ {a:1} }`")
	buf, _ := scanJS(src, Options{})
	toks := buf.Tokens()
	// Must close the template at the final backtick, not get confused by
	// the nested object-literal braces.
	last := toks[len(toks)-1]
	assert.Equal(t, "string_delim", last.Category.String())
	assert.Equal(t, len(src)-1, last.Begin)
}

func TestScanTSBuiltinTypeKeyword(t *testing.T) {
	src := []byte(`let x: string;`)
	buf, _ := scanTS(src, Options{})
	toks := buf.Tokens()
	found := false
	for _, tk := range toks {
		if tk.Category.String() == "name_type_builtin" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScanJSPrivateIdentifier(t *testing.T) {
	src := []byte(`this.#field`)
	buf, _ := scanJS(src, Options{})
	toks := buf.Tokens()
	found := false
	for _, tk := range toks {
		if string(src[tk.Begin:tk.End()]) == "#field" {
			found = true
		}
	}
	assert.True(t, found)
}
