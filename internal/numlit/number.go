// Package numlit implements the numeric-literal matcher shared across every
// language scanner. A single options-driven function recognises
// prefix+integer+fraction+exponent+suffix, parameterised per language by a
// small options struct, grounded on ulight's Common_Number_Options /
// Common_Number_Result (impl/numbers.hpp).
package numlit

import "opal/internal/uchar"

// PrefixRule is one (literal prefix, base) pair, tried in order.
type PrefixRule struct {
	Text string
	Base int
}

// SuffixMatcher returns the byte length of a suffix match at the front of
// rest, or 0 if none applies. Used when a language's suffix set isn't a
// simple fixed list (e.g. a callback that also validates context).
type SuffixMatcher func(rest []byte) int

// Options configures match_common_number for one language/number-kind.
type Options struct {
	// Prefixes is an ordered list of (text, base); the first match fixes
	// the base and is consumed as the Prefix part.
	Prefixes []PrefixRule
	// ExponentSeparators is an ordered list of (text, base); only tried
	// when the current base matches the rule's base.
	ExponentSeparators []PrefixRule
	// Suffixes is a sorted list of literal suffix strings. Ignored if
	// SuffixFunc is set.
	Suffixes []string
	// SuffixFunc, if set, takes priority over Suffixes.
	SuffixFunc SuffixMatcher

	DefaultBase            int
	DefaultLeadingZeroBase int // 0 means "same as DefaultBase"

	// DigitSeparator is an optional single byte allowed between digits; it
	// must not lead, trail, or repeat within one digit run.
	DigitSeparator byte // 0 means "none"

	NonemptyInteger  bool
	NonemptyFraction bool
}

func (o Options) leadingZeroBase() int {
	if o.DefaultLeadingZeroBase != 0 {
		return o.DefaultLeadingZeroBase
	}
	return o.DefaultBase
}

// Result mirrors ulight's Common_Number_Result: six part lengths that sum
// to Length, plus an Erroneous flag for malformed-but-recognised numbers.
type Result struct {
	Length          int
	Prefix          int
	Integer         int
	RadixPoint      int
	Fractional      int
	ExponentSep     int
	ExponentDigits  int
	Suffix          int
	Erroneous       bool
}

// Matched reports whether anything was recognised at all.
func (r Result) Matched() bool { return r.Length != 0 }

// DigitsResult is the result of matching a run of same-base digits,
// optionally interspersed with a single digit-separator byte.
type DigitsResult struct {
	Length    int
	Erroneous bool
}

// Matched reports whether any digits were consumed.
func (d DigitsResult) Matched() bool { return d.Length != 0 }

// MatchDigits returns the byte length of the maximal run of digits of the
// given base at the front of b, with no separator support.
func MatchDigits(b []byte, base int) int {
	return uchar.LengthIfByte(b, func(c byte) bool { return uchar.IsDigitBase(c, base) })
}

// MatchSeparatedDigits matches a run of base-digits that may contain a
// single separator byte between digits. The separator must not lead, must
// not trail, and must never repeat — any violation sets Erroneous but the
// matcher still reports how far it got.
func MatchSeparatedDigits(b []byte, base int, separator byte) DigitsResult {
	if separator == 0 {
		n := MatchDigits(b, base)
		return DigitsResult{Length: n}
	}

	length := 0
	erroneous := false
	lastWasSeparator := false
	sawDigit := false

	for length < len(b) {
		c := b[length]
		if uchar.IsDigitBase(c, base) {
			length++
			lastWasSeparator = false
			sawDigit = true
			continue
		}
		if c == separator {
			if !sawDigit || lastWasSeparator {
				// Leading or repeated separator: stop before consuming it,
				// but flag the run as erroneous since a digit run shaped
				// like this is malformed.
				erroneous = true
				break
			}
			length++
			lastWasSeparator = true
			continue
		}
		break
	}
	if lastWasSeparator {
		// Trailing separator: back it out of the match, it belongs to
		// whatever follows, but the run is still erroneous.
		length--
		erroneous = true
	}
	return DigitsResult{Length: length, Erroneous: erroneous}
}

// MatchCommonNumber matches prefix+integer+fraction+exponent+suffix per
// opts, returning a zero Result (Length==0) if nothing at all matches.
func MatchCommonNumber(b []byte, opts Options) Result {
	var res Result
	rest := b

	base := opts.DefaultBase
	if len(rest) > 0 && rest[0] == '0' {
		base = opts.leadingZeroBase()
	}

	for _, p := range opts.Prefixes {
		if hasPrefixFold(rest, p.Text) {
			res.Prefix = len(p.Text)
			base = p.Base
			rest = rest[len(p.Text):]
			break
		}
	}

	intDigits := MatchSeparatedDigits(rest, base, opts.DigitSeparator)
	res.Integer = intDigits.Length
	if intDigits.Erroneous {
		res.Erroneous = true
	}
	rest = rest[intDigits.Length:]

	if opts.NonemptyInteger && res.Integer == 0 {
		res.Erroneous = true
	}

	if len(rest) > 0 && rest[0] == '.' {
		fracDigits := MatchSeparatedDigits(rest[1:], base, opts.DigitSeparator)
		res.RadixPoint = 1
		res.Fractional = fracDigits.Length
		if fracDigits.Erroneous {
			res.Erroneous = true
		}
		rest = rest[1+fracDigits.Length:]

		if opts.NonemptyFraction && res.Fractional == 0 {
			res.Erroneous = true
		}
		// A non-decimal prefix combined with a fractional part has no
		// agreed meaning in any of the languages this matcher serves; flag
		// it and let the caller decide whether that's fatal.
		if res.Prefix > 0 && base != 10 {
			res.Erroneous = true
		}
	}

	for _, sep := range opts.ExponentSeparators {
		if sep.Base != base {
			continue
		}
		if hasPrefixFold(rest, sep.Text) {
			expRest := rest[len(sep.Text):]
			signLen := 0
			if len(expRest) > 0 && (expRest[0] == '+' || expRest[0] == '-') {
				signLen = 1
			}
			expDigits := MatchDigits(expRest[signLen:], 10)
			if expDigits == 0 {
				// No digits after the separator: this isn't an exponent,
				// leave rest untouched and stop looking.
				break
			}
			res.ExponentSep = len(sep.Text) + signLen
			res.ExponentDigits = expDigits
			rest = expRest[signLen+expDigits:]
			break
		}
	}

	if res.Integer == 0 && res.Fractional == 0 {
		// Nothing resembling digits matched at all: this isn't a number,
		// regardless of what a prefix alone might have consumed.
		return Result{}
	}

	if opts.SuffixFunc != nil {
		res.Suffix = opts.SuffixFunc(rest)
	} else if len(opts.Suffixes) > 0 {
		res.Suffix = matchLongestSuffix(rest, opts.Suffixes)
	}

	res.Length = res.Prefix + res.Integer + res.RadixPoint + res.Fractional +
		res.ExponentSep + res.ExponentDigits + res.Suffix
	return res
}

func matchLongestSuffix(rest []byte, suffixes []string) int {
	best := 0
	for _, s := range suffixes {
		if len(s) > best && hasPrefixFold(rest, s) {
			best = len(s)
		}
	}
	return best
}

func hasPrefixFold(b []byte, s string) bool {
	return uchar.HasPrefixFold(b, s)
}

// SuffixOptions configures MatchSuffixNumber: a number whose base is
// indicated by a trailing letter rather than a leading prefix, as in NASM's
// 0ffh.
type SuffixOptions struct {
	Suffixes       []PrefixRule
	DefaultBase    int
	DigitSeparator byte
}

// SuffixResult is the result of MatchSuffixNumber.
type SuffixResult struct {
	Digits    int
	Suffix    int
	Erroneous bool
}

// Matched reports whether any digits were recognised.
func (r SuffixResult) Matched() bool { return r.Digits != 0 }

// Length is the total byte length of the match.
func (r SuffixResult) Length() int { return r.Digits + r.Suffix }

// MatchSuffixNumber recognises digits followed by a radix-indicating
// suffix letter (e.g. "0ffh" in NASM, base 16 via suffix "h"). It first
// tries matching against the widest base among the suffix rules so that
// e.g. "ffh" matches all three hex digits before the trailing "h", then
// checks which suffix actually terminates the run. Rejects a match whose
// first character isn't a digit in DefaultBase, to avoid stealing plain
// identifiers like "zh".
func MatchSuffixNumber(b []byte, opts SuffixOptions) SuffixResult {
	if len(b) == 0 || !uchar.IsDigitBase(b[0], opts.DefaultBase) {
		return SuffixResult{}
	}

	maxBase := opts.DefaultBase
	for _, s := range opts.Suffixes {
		if s.Base > maxBase {
			maxBase = s.Base
		}
	}

	digits := MatchSeparatedDigits(b, maxBase, opts.DigitSeparator)
	rest := b[digits.Length:]

	for _, s := range opts.Suffixes {
		if hasPrefixFold(rest, s.Text) {
			// Re-validate the digit run against this suffix's actual base:
			// trailing digits that only made sense under maxBase don't
			// belong to a smaller-base literal.
			validDigits := MatchSeparatedDigits(b, s.Base, opts.DigitSeparator)
			if validDigits.Length+len(s.Text) == digits.Length+len(s.Text) &&
				validDigits.Length == digits.Length {
				return SuffixResult{
					Digits:    digits.Length,
					Suffix:    len(s.Text),
					Erroneous: digits.Erroneous,
				}
			}
			return SuffixResult{
				Digits:    validDigits.Length,
				Suffix:    len(s.Text),
				Erroneous: validDigits.Erroneous,
			}
		}
	}

	// A suffix letter that is also a maxBase digit (the "b" of "1010b") was
	// swallowed by the run above: retry each suffix against its own base.
	for _, s := range opts.Suffixes {
		d := MatchSeparatedDigits(b, s.Base, opts.DigitSeparator)
		if d.Length > 0 && hasPrefixFold(b[d.Length:], s.Text) {
			return SuffixResult{Digits: d.Length, Suffix: len(s.Text), Erroneous: d.Erroneous}
		}
	}

	// No radix suffix found: only a valid match if every digit was valid
	// under the default base too (otherwise this is probably an
	// identifier like "1a2b" with no 'h').
	defaultDigits := MatchSeparatedDigits(b, opts.DefaultBase, opts.DigitSeparator)
	if defaultDigits.Length == 0 {
		return SuffixResult{}
	}
	return SuffixResult{Digits: defaultDigits.Length, Erroneous: defaultDigits.Erroneous}
}
