package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLuaKeywordsAndString(t *testing.T) {
	src := []byte(`local x = "hi"`)
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 5)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "local", string(src[toks[0].Begin:toks[0].End()]))
	assert.Equal(t, "name", toks[1].Category.String())
	assert.Equal(t, "string_delim", toks[3].Category.String())
	assert.Equal(t, "string", toks[4].Category.String())
}

func TestScanLuaLongBracketString(t *testing.T) {
	src := []byte("x = [==[\nraw ]] text\n]==]")
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 3)
	var openDelim, closeDelim int
	for _, tk := range toks {
		if tk.Category.String() == "string_delim" {
			if openDelim == 0 {
				openDelim = tk.Begin + 1
			} else {
				closeDelim = tk.Begin + 1
			}
		}
	}
	assert.NotZero(t, openDelim)
	assert.NotZero(t, closeDelim)
}

func TestScanLuaLongComment(t *testing.T) {
	src := []byte("--[[\nblock comment\n]]\nprint(1)")
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment_delim", toks[0].Category.String())
	assert.Equal(t, "--[[", string(src[toks[0].Begin:toks[0].End()]))
}

func TestScanLuaLineComment(t *testing.T) {
	src := []byte("-- a comment\nreturn 1")
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, "comment", toks[0].Category.String())
}

func TestScanLuaHexNumber(t *testing.T) {
	src := []byte("local n = 0x1F")
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	var found bool
	for _, tk := range toks {
		if tk.Category.String() == "number_decor" && string(src[tk.Begin:tk.End()]) == "0x" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScanLuaVerticalTabWhitespace(t *testing.T) {
	src := []byte("local\vx")
	buf, _ := scanLua(src, Options{})
	toks := buf.Tokens()
	require.True(t, len(toks) >= 2)
	assert.Equal(t, "keyword", toks[0].Category.String())
	assert.Equal(t, "name", toks[1].Category.String())
}
