package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanKotlinInterpolationExample(t *testing.T) {
	src := []byte(`val x = "hi $y!"`)
	buf, _ := scanKotlin(src, Options{})
	toks := buf.Tokens()
	var got []string
	for _, tk := range toks {
		got = append(got, tk.Category.String()+"("+string(src[tk.Begin:tk.End()])+")")
	}
	assert.Equal(t, []string{
		`keyword(val)`, `name(x)`, `sym_punc(=)`,
		`string_delim(")`, `string(hi )`, `string_interpolation($y)`,
		`string(!)`, `string_delim(")`,
	}, got)
}

func TestScanKotlinTripleQuotedString(t *testing.T) {
	src := []byte(`"""line1
line2""""`)
	buf, _ := scanKotlin(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	last := toks[len(toks)-1]
	assert.Equal(t, "string_delim", last.Category.String())
}

func TestScanKotlinBracedInterpolation(t *testing.T) {
	src := []byte(`"${a + 1}"`)
	buf, _ := scanKotlin(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, "string_interpolation_delim", toks[1].Category.String())
	assert.Equal(t, "${", string(src[toks[1].Begin:toks[1].End()]))
}

func TestScanKotlinBacktickIdentifier(t *testing.T) {
	src := []byte("val `my var` = 1")
	buf, _ := scanKotlin(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "name", toks[1].Category.String())
	assert.Equal(t, "`my var`", string(src[toks[1].Begin:toks[1].End()]))
}

func TestScanKotlinNestedBlockComment(t *testing.T) {
	src := []byte(`/* outer /* inner */ still outer */x`)
	buf, _ := scanKotlin(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 1)
	assert.Equal(t, "comment", toks[0].Category.String())
	assert.Equal(t, "x", string(src[toks[len(toks)-1].Begin:toks[len(toks)-1].End()]))
}
