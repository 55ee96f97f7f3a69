package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanNASMRegisterAndDirective(t *testing.T) {
	src := []byte("section .text\n    mov eax, 0ffh")
	buf, _ := scanNASM(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "section", string(src[toks[0].Begin:toks[0].End()]))

	var foundReg, foundSuffixNum bool
	for i, tk := range toks {
		if tk.Category.String() == "name_type_builtin" && string(src[tk.Begin:tk.End()]) == "eax" {
			foundReg = true
		}
		if tk.Category.String() == "number_decor" && i > 0 && string(src[tk.Begin:tk.End()]) == "h" {
			foundSuffixNum = true
		}
	}
	assert.True(t, foundReg)
	assert.True(t, foundSuffixNum)
}

func TestScanNASMLineComment(t *testing.T) {
	src := []byte("; a comment\nmov al, 1")
	buf, _ := scanNASM(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
}

func TestScanNASMLabel(t *testing.T) {
	src := []byte("loop_start:\n    jmp loop_start")
	buf, _ := scanNASM(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "name_label", toks[0].Category.String())
}
