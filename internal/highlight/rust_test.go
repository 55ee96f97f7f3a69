package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRustLifetimeExample(t *testing.T) {
	src := []byte(`let s: &'a str;`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	var cats []string
	for _, tk := range toks {
		cats = append(cats, tk.Category.String())
	}
	assert.Equal(t, []string{
		"keyword", "name", "sym_punc", "sym_op",
		"name_lifetime_delim", "name_lifetime", "name_type_builtin", "sym_punc",
	}, cats)
}

func TestScanRustCharLiteral(t *testing.T) {
	src := []byte(`'a'`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 3)
	assert.Equal(t, "string_delim", toks[0].Category.String())
	assert.Equal(t, "string", toks[1].Category.String())
	assert.Equal(t, "string_delim", toks[2].Category.String())
}

func TestScanRustLabel(t *testing.T) {
	src := []byte(`'outer: loop {}`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "name_label_delim", toks[0].Category.String())
	assert.Equal(t, "name_label", toks[1].Category.String())
	assert.Equal(t, "outer", string(src[toks[1].Begin:toks[1].End()]))
}

func TestScanRustRawStringWithHashes(t *testing.T) {
	src := []byte(`r#"has "quotes" inside"#`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 3)
	assert.Equal(t, `r#"`, string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, `"#`, string(src[toks[2].Begin:toks[2].End()]))
}

func TestScanRustMacroInvocation(t *testing.T) {
	src := []byte(`println!("hi")`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "name_macro", toks[0].Category.String())
	assert.Equal(t, "println", string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "name_macro_delim", toks[1].Category.String())
}

func TestScanRustIllegalRawIdentifier(t *testing.T) {
	src := []byte(`r#crate`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 1)
	assert.Equal(t, "error", toks[0].Category.String())
}

func TestScanRustNumberWithSeparatorAndSuffix(t *testing.T) {
	src := []byte(`1_000u32`)
	buf, _ := scanRust(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	last := toks[len(toks)-1]
	assert.Equal(t, "number_decor", last.Category.String())
	assert.Equal(t, "u32", string(src[last.Begin:last.End()]))
}
