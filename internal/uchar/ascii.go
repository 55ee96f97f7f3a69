package uchar

import "opal/internal/charset"

// Byte-level ASCII classification. These mirror the teacher's own
// isDigit/isHexDigit/... helpers in internal/compiler/lexer.go, generalised
// so every per-language scanner shares one copy, but the sets themselves are
// built the way original_source's ascii_chars.hpp builds its Charset256
// constants: a handful of primitive predicates or literal byte lists, then
// composed with set union rather than re-deriving each predicate by hand
// (is_ascii_alphanumeric_set = is_ascii_alpha_set | is_ascii_digit_set).
var (
	asciiSet       = charset.MakeSet(func(c byte) bool { return c <= 0x7F })
	digitSet       = charset.Of("0123456789")
	binaryDigitSet = charset.Of("01")
	octalDigitSet  = charset.Of("01234567")
	upperAlphaSet  = charset.MakeSet(func(c byte) bool { return c >= 'A' && c <= 'Z' })
	lowerAlphaSet  = charset.MakeSet(func(c byte) bool { return c >= 'a' && c <= 'z' })
	alphaSet       = upperAlphaSet.Union(lowerAlphaSet)
	alphanumSet    = alphaSet.Union(digitSet)
	hexDigitSet    = digitSet.Union(charset.Of("abcdefABCDEF"))

	// whitespaceSet matches the HTML/WHATWG definition: space, tab, LF, FF,
	// CR. blankSet adds vertical tab for the C-locale isspace definition.
	whitespaceSet = charset.Of("\t\n\f\r ")
	blankSet      = whitespaceSet.Union(charset.Of("\v"))

	controlSet     = charset.MakeSet(func(c byte) bool { return c <= 0x1F || c == 0x7F })
	punctuationSet = charset.Of("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")
)

func IsASCII(c byte) bool { return asciiSet.Contains(c) }

func IsDigit(c byte) bool { return digitSet.Contains(c) }

// IsDigitBase has no fixed Charset256 counterpart in the corpus either: it
// is parameterised over a runtime base, the same way ascii_chars.hpp's own
// is_ascii_digit_base takes a base argument instead of being a precomputed
// set, with only its base-2/8/10/16 instantiations (IsBinaryDigit/
// IsOctalDigit/IsDigit/IsHexDigit here) materialised as sets.
func IsDigitBase(c byte, base int) bool {
	if base < 10 {
		return c >= '0' && int(c) < int('0')+base
	}
	return IsDigit(c) ||
		(c >= 'a' && int(c) < int('a')+base-10) ||
		(c >= 'A' && int(c) < int('A')+base-10)
}

func IsBinaryDigit(c byte) bool { return binaryDigitSet.Contains(c) }

func IsOctalDigit(c byte) bool { return octalDigitSet.Contains(c) }

func IsHexDigit(c byte) bool { return hexDigitSet.Contains(c) }

func IsUpperAlpha(c byte) bool { return upperAlphaSet.Contains(c) }

func IsLowerAlpha(c byte) bool { return lowerAlphaSet.Contains(c) }

func IsAlpha(c byte) bool { return alphaSet.Contains(c) }

func IsAlphanumeric(c byte) bool { return alphanumSet.Contains(c) }

// IsWhitespace matches the HTML/WHATWG definition: space, tab, LF, FF, CR.
// Notably it excludes vertical tab, unlike IsBlank.
func IsWhitespace(c byte) bool { return whitespaceSet.Contains(c) }

// IsBlank matches the C-locale isspace definition, including vertical tab.
func IsBlank(c byte) bool { return blankSet.Contains(c) }

func IsControl(c byte) bool { return controlSet.Contains(c) }

func IsPunctuation(c byte) bool { return punctuationSet.Contains(c) }

func ToUpper(c byte) byte {
	if IsLowerAlpha(c) {
		return c &^ 0x20
	}
	return c
}

func ToLower(c byte) byte {
	if IsUpperAlpha(c) {
		return c | 0x20
	}
	return c
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if ToLower(a[i]) != ToLower(b[i]) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether b starts with prefix under ASCII case
// folding.
func HasPrefixFold(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return EqualFold(b[:len(prefix)], []byte(prefix))
}

// HasPrefix reports whether b starts with prefix, byte for byte.
func HasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}

// LengthIfByte returns the length of the maximal byte-wise prefix of b
// satisfying pred.
func LengthIfByte(b []byte, pred func(byte) bool) int {
	length := 0
	for length < len(b) && pred(b[length]) {
		length++
	}
	return length
}

// LengthBefore returns the byte offset of the first occurrence of delim in
// b at or after start, or len(b) if delim does not occur.
func LengthBefore(b []byte, delim byte, start int) int {
	for i := start; i < len(b); i++ {
		if b[i] == delim {
			return i
		}
	}
	return len(b)
}

// AllOf reports whether pred holds for every byte of b. An empty slice
// vacuously satisfies any predicate.
func AllOf(b []byte, pred func(byte) bool) bool {
	for _, c := range b {
		if !pred(c) {
			return false
		}
	}
	return true
}
