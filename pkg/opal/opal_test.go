package opal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightUnknownTag(t *testing.T) {
	_, _, ok := Highlight("cobol", []byte("x"), Options{})
	assert.False(t, ok)
}

func TestHighlightCExample(t *testing.T) {
	src := []byte(`int x = 0xFFu;`)
	toks, _, ok := Highlight("c", src, Options{})
	require.True(t, ok)
	require.True(t, len(toks) >= 5)
	assert.Equal(t, KeywordType, toks[0].Category)
	assert.Equal(t, "int", string(Text(src, toks[0])))
}

func TestHighlightLanguageHelper(t *testing.T) {
	toks, _, ok := HighlightLanguage(Python, []byte(`x = 1`), Options{})
	require.True(t, ok)
	assert.NotEmpty(t, toks)
}

func TestLanguageByTagRoundTrip(t *testing.T) {
	lang, ok := LanguageByTag("rust")
	require.True(t, ok)
	assert.Equal(t, Rust, lang)
	assert.Equal(t, "rust", lang.String())
}

func TestHighlightCoalescing(t *testing.T) {
	src := []byte(`abc`)
	toks, _, ok := Highlight("c", src, Options{Coalescing: true})
	require.True(t, ok)
	require.Len(t, toks, 1)
	assert.Equal(t, Name, toks[0].Category)
}
