package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTeXCommandAndGroup(t *testing.T) {
	src := []byte(`\textbf{hello}`)
	buf, _ := scanTeX(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "macro", toks[0].Category.String())
	assert.Equal(t, `\textbf`, string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "sym_brace", toks[1].Category.String())
}

func TestScanTeXLineComment(t *testing.T) {
	src := []byte("% a comment\n\\foo")
	buf, _ := scanTeX(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
}

func TestScanTeXControlSymbol(t *testing.T) {
	src := []byte(`\\`)
	buf, _ := scanTeX(src, Options{})
	toks := buf.Tokens()
	require.Len(t, toks, 1)
	assert.Equal(t, "macro", toks[0].Category.String())
}

func TestScanTeXMathDelimiters(t *testing.T) {
	src := []byte(`$x$`)
	buf, _ := scanTeX(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "sym_punc", toks[0].Category.String())
	assert.Equal(t, "value", toks[1].Category.String())
	assert.Equal(t, "sym_punc", toks[2].Category.String())
}
