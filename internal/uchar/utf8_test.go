package uchar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceLength(t *testing.T) {
	assert.Equal(t, 1, SequenceLength('a'))
	assert.Equal(t, 2, SequenceLength(0xC2))
	assert.Equal(t, 3, SequenceLength(0xE2))
	assert.Equal(t, 4, SequenceLength(0xF0))
	assert.Equal(t, 0, SequenceLength(0x80)) // stray continuation byte
	assert.Equal(t, 0, SequenceLength(0xFF))
}

func TestDecodeOrReplacement(t *testing.T) {
	r, n := DecodeOrReplacement([]byte("é"))
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, n)

	r, n = DecodeOrReplacement([]byte{0xFF})
	assert.Equal(t, ReplacementRune, r)
	assert.Equal(t, 1, n)

	r, n = DecodeOrReplacement(nil)
	assert.Equal(t, ReplacementRune, r)
	assert.Equal(t, 0, n)
}

func TestLengthIf(t *testing.T) {
	isLetter := func(r rune) bool { return r >= 'a' && r <= 'z' }
	assert.Equal(t, 3, LengthIf([]byte("abc123"), isLetter))
	assert.Equal(t, 0, LengthIf([]byte("123"), isLetter))

	// Ill-formed input still makes progress: each bad lead counts as one
	// replacement code point, so scanning never spins.
	notLetter := func(r rune) bool { return r != 'x' }
	n := LengthIf([]byte{0xFF, 0xFF, 'x'}, notLetter)
	assert.Equal(t, 2, n)
}
