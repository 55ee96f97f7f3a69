// Package escape implements the escape-sequence matcher shared across every
// language scanner that needs to recognise \n, \x41, \u{1F600}, and friends.
// Grounded on ulight's Common_Escape enum and match_common_escape family
// (impl/escapes.hpp): the kind alone determines digit-count bounds and
// whether a trailing '}' closes a braced escape.
package escape

import "opal/internal/uchar"

// Kind is a closed enumeration of escape-sequence shapes shared across
// languages. The scanner has already consumed the introducing backslash (and
// any literal prefix like "x" or "u") before calling MatchCommonEscape; Kind
// only governs what follows.
type Kind int

const (
	// Octal1To2 matches 1 or 2 octal digits (Kotlin-style \nnn, truncated).
	Octal1To2 Kind = iota
	// Octal1To3 matches 1 to 3 octal digits (C-style \nnn).
	Octal1To3
	// Octal3 matches exactly 3 octal digits.
	Octal3
	// OctalBraced matches \o{...} with octal digits inside the braces.
	OctalBraced
	// Hex1To2 matches 1 or 2 hex digits (e.g. Python \xNN is fixed-2, but
	// some languages allow a lone digit).
	Hex1To2
	// Hex1ToInf matches one or more hex digits, unbounded.
	Hex1ToInf
	// Hex2 matches exactly 2 hex digits (\xNN).
	Hex2
	// Hex4 matches exactly 4 hex digits (\uNNNN).
	Hex4
	// Hex8 matches exactly 8 hex digits (\UNNNNNNNN).
	Hex8
	// NonemptyBraced matches {...} with any nonempty, unvalidated body
	// (e.g. named character references, \N{LATIN SMALL LETTER A}).
	NonemptyBraced
	// HexBraced matches \u{...} / \x{...} with hex digits inside the braces.
	HexBraced
	// LfCrCrlf matches a line-continuation escape: CRLF, CR, or LF.
	LfCrCrlf
)

var minLength = [...]int{
	Octal1To2:      1,
	Octal1To3:      1,
	Octal3:         3,
	OctalBraced:    0,
	Hex1To2:        1,
	Hex1ToInf:      1,
	Hex2:           2,
	Hex4:           4,
	Hex8:           8,
	NonemptyBraced: 0,
	HexBraced:      0,
	LfCrCrlf:       1,
}

var maxLength = [...]int{
	Octal1To2:      2,
	Octal1To3:      3,
	Octal3:         3,
	OctalBraced:    -1, // unbounded
	Hex1To2:        2,
	Hex1ToInf:      -1,
	Hex2:           2,
	Hex4:           4,
	Hex8:           8,
	NonemptyBraced: -1,
	HexBraced:      -1,
	LfCrCrlf:       2,
}

// MinLength returns the minimum byte count this kind can ever consume.
func (k Kind) MinLength() int { return minLength[k] }

// MaxLength returns the maximum byte count this kind can ever consume, or
// -1 if unbounded.
func (k Kind) MaxLength() int { return maxLength[k] }

// Result is the outcome of matching one escape sequence body (everything
// after the introducing backslash and any fixed literal prefix).
type Result struct {
	Length    int
	Erroneous bool
}

// Matched reports whether any bytes were consumed at all.
func (r Result) Matched() bool { return r.Length != 0 }

// MatchCommonEscape matches the body of an escape sequence of the given
// kind at the front of b. b must NOT include the introducing backslash.
func MatchCommonEscape(kind Kind, b []byte) Result {
	switch kind {
	case Octal1To2, Octal1To3:
		limit := min(len(b), kind.MaxLength())
		n := uchar.LengthIfByte(b[:limit], uchar.IsOctalDigit)
		return Result{Length: n, Erroneous: n == 0}

	case Octal3:
		limit := min(len(b), 3)
		n := uchar.LengthIfByte(b[:limit], uchar.IsOctalDigit)
		return Result{Length: n, Erroneous: n != 3}

	case OctalBraced:
		return matchBraced(b, uchar.IsOctalDigit)

	case Hex1To2:
		limit := min(len(b), 2)
		n := uchar.LengthIfByte(b[:limit], uchar.IsHexDigit)
		return Result{Length: n, Erroneous: n == 0}

	case Hex1ToInf:
		n := uchar.LengthIfByte(b, uchar.IsHexDigit)
		return Result{Length: n, Erroneous: n == 0}

	case Hex2, Hex4, Hex8:
		need := kind.MinLength()
		limit := min(len(b), need)
		n := uchar.LengthIfByte(b[:limit], uchar.IsHexDigit)
		return Result{Length: n, Erroneous: n != need}

	case NonemptyBraced:
		return matchNonemptyBraced(b)

	case HexBraced:
		return matchBraced(b, uchar.IsHexDigit)

	case LfCrCrlf:
		return matchLfCrCrlf(b)

	default:
		return Result{}
	}
}

// MatchCommonEscapeAfterPrefix is MatchCommonEscape applied to b[prefixLen:],
// with prefixLen folded back into the returned Length so callers can treat
// the result as covering the whole escape body including a literal prefix
// they've already skipped past (e.g. the "u" after the backslash of a
// Unicode escape).
func MatchCommonEscapeAfterPrefix(kind Kind, b []byte, prefixLen int) Result {
	if prefixLen > len(b) {
		return Result{}
	}
	r := MatchCommonEscape(kind, b[prefixLen:])
	if !r.Matched() {
		return Result{}
	}
	r.Length += prefixLen
	return r
}

func matchBraced(b []byte, digit func(byte) bool) Result {
	if len(b) == 0 || b[0] != '{' {
		return Result{}
	}
	closeAt := uchar.LengthBefore(b, '}', 1)
	body := b[1:closeAt]
	hasClose := closeAt < len(b)

	erroneous := len(body) == 0 || !uchar.AllOf(body, digit)
	length := closeAt
	if hasClose {
		length++
	} else {
		erroneous = true
	}
	return Result{Length: length, Erroneous: erroneous}
}

func matchNonemptyBraced(b []byte) Result {
	if len(b) == 0 || b[0] != '{' {
		return Result{}
	}
	closeAt := uchar.LengthBefore(b, '}', 1)
	if closeAt >= len(b) {
		// No closing brace at all: still consume the rest as an erroneous
		// escape, matching ulight's "return full remaining length" rule.
		return Result{Length: len(b), Erroneous: true}
	}
	return Result{Length: closeAt + 1, Erroneous: closeAt == 1}
}

func matchLfCrCrlf(b []byte) Result {
	switch {
	case len(b) >= 2 && b[0] == '\r' && b[1] == '\n':
		return Result{Length: 2}
	case len(b) >= 1 && (b[0] == '\r' || b[0] == '\n'):
		return Result{Length: 1}
	default:
		return Result{Erroneous: true}
	}
}
