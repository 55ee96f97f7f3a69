package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCIntDeclarationWithHexNumber(t *testing.T) {
	src := []byte("int x = 0xFFu;")
	buf, _ := scanC(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)

	var cats []string
	for _, tk := range toks {
		cats = append(cats, tk.Category.String())
	}
	assert.Contains(t, cats, "keyword_type")
	assert.Contains(t, cats, "name")
	assert.Contains(t, cats, "sym_op")
	assert.Contains(t, cats, "number_decor")
	assert.Contains(t, cats, "number")
	assert.Contains(t, cats, "sym_punc")

	// Locate the hex literal specifically.
	foundPrefix, foundDigits, foundSuffix := false, false, false
	for _, tk := range toks {
		lexeme := string(src[tk.Begin:tk.End()])
		switch {
		case tk.Category.String() == "number_decor" && lexeme == "0x":
			foundPrefix = true
		case tk.Category.String() == "number" && lexeme == "FF":
			foundDigits = true
		case tk.Category.String() == "number_decor" && lexeme == "u":
			foundSuffix = true
		}
	}
	assert.True(t, foundPrefix)
	assert.True(t, foundDigits)
	assert.True(t, foundSuffix)
}

func TestScanCppRawString(t *testing.T) {
	src := []byte(`R"x(hi)x"_s`)
	buf, _ := scanCpp(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 4)

	assert.Equal(t, `R"x(`, string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, `hi`, string(src[toks[1].Begin:toks[1].End()]))
	assert.Equal(t, "string", toks[1].Category.String())
	assert.Equal(t, `)x"`, string(src[toks[2].Begin:toks[2].End()]))
	assert.Equal(t, "string_delim", toks[2].Category.String())
	assert.Equal(t, `_s`, string(src[toks[3].Begin:toks[3].End()]))
	assert.Equal(t, "string_decor", toks[3].Category.String())
}

func TestScanCppLineComment(t *testing.T) {
	src := []byte("// hello\nint x;")
	buf, _ := scanCpp(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
	assert.Equal(t, "// hello", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanCppPreprocessorDirective(t *testing.T) {
	src := []byte("#define FOO 1\n")
	buf, _ := scanCpp(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 1)
	assert.Equal(t, "name_macro", toks[0].Category.String())
	assert.Equal(t, "#define FOO 1", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanCppStrictModeExcludesExtensions(t *testing.T) {
	src := []byte("typeof(x)")
	buf, _ := scanCpp(src, Options{Strict: true})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "name", toks[0].Category.String())
}
