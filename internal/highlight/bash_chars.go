package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// Bash character classes, ported from bash_chars.hpp onto the bitset
// engine. isBashWhitespace notably excludes form feed, unlike uchar's own
// IsBlank/IsWhitespace sets — a third, distinct whitespace set bash_chars.hpp
// keeps separate from the HTML and C-locale ones.
var (
	bashWhitespaceSet   = charset.Of(" \t\v\r\n")
	bashBlankSet        = charset.Of(" \t")
	bashMetacharSet     = bashBlankSet.Union(charset.Of("|&;()<>"))
	bashDQEscapableSet  = charset.Of("'$`\"\\\n")
	bashSpecialParamSet = charset.Of("*@#?-$!0")

	bashIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	bashIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))

	// bashUnquotedTerminatorSet excludes '/' and '.', so "./path/to"
	// highlights as a single word.
	bashUnquotedTerminatorSet = charset.Of(`\'"`).Union(bashWhitespaceSet).Union(bashMetacharSet)
)

func isBashWhitespace(c byte) bool             { return bashWhitespaceSet.Contains(c) }
func isBashMetacharacter(c byte) bool          { return bashMetacharSet.Contains(c) }
func isBashEscapableInDoubleQuotes(c byte) bool { return bashDQEscapableSet.Contains(c) }
func isBashSpecialParameter(c byte) bool       { return bashSpecialParamSet.Contains(c) }
func isBashIdentStart(c byte) bool             { return bashIdentStartSet.Contains(c) }
func isBashIdentCont(c byte) bool              { return bashIdentContSet.Contains(c) }
func isBashUnquotedTerminator(c byte) bool     { return bashUnquotedTerminatorSet.Contains(c) }
