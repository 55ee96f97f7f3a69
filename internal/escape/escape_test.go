package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOctal1To3(t *testing.T) {
	r := MatchCommonEscape(Octal1To3, []byte("101x"))
	require.True(t, r.Matched())
	assert.Equal(t, 3, r.Length)
	assert.False(t, r.Erroneous)
}

func TestMatchOctal1To3Truncates(t *testing.T) {
	r := MatchCommonEscape(Octal1To3, []byte("7777"))
	assert.Equal(t, 3, r.Length)
}

func TestMatchOctal1To2EmptyIsErroneous(t *testing.T) {
	r := MatchCommonEscape(Octal1To2, []byte("x"))
	assert.False(t, r.Matched())
	assert.True(t, r.Erroneous)
}

func TestMatchOctal3RequiresExactlyThree(t *testing.T) {
	r := MatchCommonEscape(Octal3, []byte("7x"))
	assert.Equal(t, 1, r.Length)
	assert.True(t, r.Erroneous)
}

func TestMatchHex2(t *testing.T) {
	r := MatchCommonEscape(Hex2, []byte("41\""))
	require.True(t, r.Matched())
	assert.Equal(t, 2, r.Length)
	assert.False(t, r.Erroneous)
}

func TestMatchHex2TooShort(t *testing.T) {
	r := MatchCommonEscape(Hex2, []byte("4\""))
	assert.True(t, r.Erroneous)
}

func TestMatchHex4(t *testing.T) {
	r := MatchCommonEscape(Hex4, []byte("1F600"))
	require.True(t, r.Matched())
	assert.Equal(t, 4, r.Length)
	assert.False(t, r.Erroneous)
}

func TestMatchHex1ToInf(t *testing.T) {
	r := MatchCommonEscape(Hex1ToInf, []byte("1F600 rest"))
	assert.Equal(t, 5, r.Length)
	assert.False(t, r.Erroneous)
}

func TestMatchHexBraced(t *testing.T) {
	r := MatchCommonEscape(HexBraced, []byte("{1F600}"))
	require.True(t, r.Matched())
	assert.Equal(t, 7, r.Length)
	assert.False(t, r.Erroneous)
}

func TestMatchHexBracedEmptyBodyIsErroneous(t *testing.T) {
	r := MatchCommonEscape(HexBraced, []byte("{}"))
	assert.True(t, r.Erroneous)
}

func TestMatchHexBracedUnclosedIsErroneous(t *testing.T) {
	r := MatchCommonEscape(HexBraced, []byte("{1F600"))
	assert.True(t, r.Erroneous)
	assert.Equal(t, 6, r.Length)
}

func TestMatchHexBracedNonHexBodyIsErroneous(t *testing.T) {
	r := MatchCommonEscape(HexBraced, []byte("{zz}"))
	assert.True(t, r.Erroneous)
}

func TestMatchNonemptyBraced(t *testing.T) {
	r := MatchCommonEscape(NonemptyBraced, []byte("{LATIN SMALL LETTER A}rest"))
	require.True(t, r.Matched())
	assert.False(t, r.Erroneous)
	assert.Equal(t, len("{LATIN SMALL LETTER A}"), r.Length)
}

func TestMatchNonemptyBracedNoCloseStillConsumesRemainder(t *testing.T) {
	r := MatchCommonEscape(NonemptyBraced, []byte("{abc"))
	assert.True(t, r.Erroneous)
	assert.Equal(t, 4, r.Length)
}

func TestMatchLfCrCrlf(t *testing.T) {
	assert.Equal(t, Result{Length: 2}, MatchCommonEscape(LfCrCrlf, []byte("\r\n")))
	assert.Equal(t, Result{Length: 1}, MatchCommonEscape(LfCrCrlf, []byte("\r")))
	assert.Equal(t, Result{Length: 1}, MatchCommonEscape(LfCrCrlf, []byte("\n")))

	r := MatchCommonEscape(LfCrCrlf, []byte("x"))
	assert.False(t, r.Matched())
	assert.True(t, r.Erroneous)
}

func TestMatchCommonEscapeAfterPrefix(t *testing.T) {
	// "u1F60" with prefix length 1 (the already-consumed 'u').
	r := MatchCommonEscapeAfterPrefix(Hex4, []byte("u1F60"), 1)
	require.True(t, r.Matched())
	assert.Equal(t, 5, r.Length)
}

func TestMinMaxLengthTables(t *testing.T) {
	assert.Equal(t, 1, Octal1To2.MinLength())
	assert.Equal(t, 2, Octal1To2.MaxLength())
	assert.Equal(t, 8, Hex8.MinLength())
	assert.Equal(t, 8, Hex8.MaxLength())
	assert.Equal(t, -1, Hex1ToInf.MaxLength())
	assert.Equal(t, -1, NonemptyBraced.MaxLength())
}
