package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMMMLDirectiveWithArgsAndContent(t *testing.T) {
	src := []byte(`\b[class=big]{hello}`)
	buf, _ := scanMMML(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 6)
	assert.Equal(t, "macro", toks[0].Category.String())
	assert.Equal(t, `\b`, string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "sym_square", toks[1].Category.String())
	assert.Equal(t, "name", toks[2].Category.String())
	assert.Equal(t, "sym_punc", toks[3].Category.String())
	assert.Equal(t, "name", toks[4].Category.String())
	assert.Equal(t, "sym_square", toks[5].Category.String())
}

func TestScanMMMLEscape(t *testing.T) {
	src := []byte(`\{not a directive\}`)
	buf, _ := scanMMML(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "escape", toks[0].Category.String())
	assert.Equal(t, `\{`, string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanCOWELNestedDirective(t *testing.T) {
	src := []byte(`\b{\i{x}}`)
	buf, _ := scanCOWEL(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 5)
	assert.Equal(t, "macro", toks[0].Category.String())
	assert.Equal(t, "sym_brace", toks[1].Category.String())
	assert.Equal(t, "macro", toks[2].Category.String())
	assert.Equal(t, `\i`, string(src[toks[2].Begin:toks[2].End()]))
}
