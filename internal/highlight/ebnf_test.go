package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEBNFRuleDefinition(t *testing.T) {
	src := []byte(`digit = "0" | "1" ;`)
	buf, _ := scanEBNF(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 6)
	assert.Equal(t, "name", toks[0].Category.String())
	assert.Equal(t, "digit", string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "sym_op", toks[1].Category.String())
	assert.Equal(t, "string_delim", toks[2].Category.String())
}

func TestScanEBNFComment(t *testing.T) {
	src := []byte("(* a comment *) digit = \"0\" ;")
	buf, _ := scanEBNF(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment_delim", toks[0].Category.String())
	assert.Equal(t, "(*", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanEBNFSpecialSequence(t *testing.T) {
	src := []byte(`letter = ? any letter ? ;`)
	buf, _ := scanEBNF(src, Options{})
	toks := buf.Tokens()
	var found bool
	for _, tk := range toks {
		if tk.Category.String() == "escape" {
			found = true
		}
	}
	assert.True(t, found)
}
