package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBashKeywordAndCommand(t *testing.T) {
	src := []byte("if true; then echo hi; fi")
	buf, _ := scanBash(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "keyword_control", toks[0].Category.String())
	assert.Equal(t, "if", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanBashDoubleQuotedWithVariable(t *testing.T) {
	src := []byte(`echo "hello $name!"`)
	buf, _ := scanBash(src, Options{})
	toks := buf.Tokens()
	var found bool
	for i, tk := range toks {
		if tk.Category.String() == "name_macro" && string(src[tk.Begin:tk.End()]) == "$name" {
			found = true
			assert.Equal(t, "string", toks[i-1].Category.String())
		}
	}
	assert.True(t, found)
}

func TestScanBashSingleQuotedNoEscapes(t *testing.T) {
	src := []byte(`echo 'no $expansion here'`)
	buf, _ := scanBash(src, Options{})
	toks := buf.Tokens()
	for _, tk := range toks {
		assert.NotEqual(t, "name_macro", tk.Category.String())
	}
}

func TestScanBashComment(t *testing.T) {
	src := []byte("# a comment\necho hi")
	buf, _ := scanBash(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
}

func TestScanBashCommandSubstitution(t *testing.T) {
	src := []byte("x=$(ls -la)")
	buf, _ := scanBash(src, Options{})
	toks := buf.Tokens()
	var found bool
	for _, tk := range toks {
		if tk.Category.String() == "name_macro" && string(src[tk.Begin:tk.End()]) == "$(ls -la)" {
			found = true
		}
	}
	assert.True(t, found)
}
