package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLLVMDefineWithSigilsAndType(t *testing.T) {
	src := []byte(`define i32 @main() {`)
	buf, _ := scanLLVM(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 4)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "name_type_builtin", toks[1].Category.String())
	assert.Equal(t, "i32", string(src[toks[1].Begin:toks[1].End()]))
	assert.Equal(t, "name_macro", toks[2].Category.String())
	assert.Equal(t, "@main", string(src[toks[2].Begin:toks[2].End()]))
}

func TestScanLLVMLocalNameAndLabel(t *testing.T) {
	src := []byte("entry:\n  %1 = add i32 1, 2")
	buf, _ := scanLLVM(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "name_label", toks[0].Category.String())
	assert.Equal(t, "sym_punc", toks[1].Category.String())
	assert.Equal(t, "name", toks[2].Category.String())
	assert.Equal(t, "%1", string(src[toks[2].Begin:toks[2].End()]))
}

func TestScanLLVMLineComment(t *testing.T) {
	src := []byte("; a comment\nret void")
	buf, _ := scanLLVM(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
}
