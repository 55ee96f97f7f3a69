package highlight

import (
	"opal/internal/escape"
	"opal/internal/token"
	"opal/internal/uchar"
)

// Feature-source bitmask: which dialects recognise a given keyword table
// entry, mirroring the X-macro feature column described in the design
// notes for the C/C++ scanner.
const (
	featC uint8 = 1 << iota
	featCpp
	featCExt
	featCppExt
)

type cppKeyword struct {
	category token.Category
	features uint8
}

// cppKeywords is not exhaustive of either standard; it covers the
// constructs common highlighters key off: control flow, storage/type
// specifiers, and the small set of context-sensitive literal keywords.
var cppKeywords = map[string]cppKeyword{
	"if": {token.KeywordControl, featC | featCpp}, "else": {token.KeywordControl, featC | featCpp},
	"for": {token.KeywordControl, featC | featCpp}, "while": {token.KeywordControl, featC | featCpp},
	"do": {token.KeywordControl, featC | featCpp}, "switch": {token.KeywordControl, featC | featCpp},
	"case": {token.KeywordControl, featC | featCpp}, "default": {token.KeywordControl, featC | featCpp},
	"break": {token.KeywordControl, featC | featCpp}, "continue": {token.KeywordControl, featC | featCpp},
	"return": {token.KeywordControl, featC | featCpp}, "goto": {token.KeywordControl, featC | featCpp},
	"try": {token.KeywordControl, featCpp}, "catch": {token.KeywordControl, featCpp},
	"throw": {token.KeywordControl, featCpp},
	"int":    {token.KeywordType, featC | featCpp}, "char": {token.KeywordType, featC | featCpp},
	"float": {token.KeywordType, featC | featCpp}, "double": {token.KeywordType, featC | featCpp},
	"void": {token.KeywordType, featC | featCpp}, "short": {token.KeywordType, featC | featCpp},
	"long": {token.KeywordType, featC | featCpp}, "unsigned": {token.KeywordType, featC | featCpp},
	"signed": {token.KeywordType, featC | featCpp}, "bool": {token.KeywordType, featC | featCpp},
	"struct": {token.KeywordType, featC | featCpp}, "union": {token.KeywordType, featC | featCpp},
	"enum": {token.KeywordType, featC | featCpp}, "typedef": {token.Keyword, featC | featCpp},
	"class": {token.KeywordType, featCpp}, "namespace": {token.Keyword, featCpp},
	"using": {token.Keyword, featCpp}, "template": {token.Keyword, featCpp},
	"typename": {token.Keyword, featCpp}, "virtual": {token.Keyword, featCpp},
	"override": {token.Keyword, featCpp}, "final": {token.Keyword, featCpp},
	"public": {token.Keyword, featCpp}, "private": {token.Keyword, featCpp},
	"protected": {token.Keyword, featCpp}, "explicit": {token.Keyword, featCpp},
	"friend": {token.Keyword, featCpp}, "mutable": {token.Keyword, featCpp},
	"const": {token.Keyword, featC | featCpp}, "volatile": {token.Keyword, featC | featCpp},
	"static": {token.Keyword, featC | featCpp}, "extern": {token.Keyword, featC | featCpp},
	"inline": {token.Keyword, featC | featCpp}, "register": {token.Keyword, featC},
	"auto": {token.Keyword, featC | featCpp}, "restrict": {token.Keyword, featC},
	"constexpr": {token.Keyword, featCpp}, "consteval": {token.Keyword, featCpp},
	"constinit": {token.Keyword, featCpp}, "decltype": {token.Keyword, featCpp},
	"sizeof": {token.Keyword, featC | featCpp}, "alignof": {token.Keyword, featCpp},
	"new": {token.Keyword, featCpp}, "delete": {token.Keyword, featCpp},
	"operator": {token.Keyword, featCpp}, "noexcept": {token.Keyword, featCpp},
	"this":     {token.KeywordThis, featCpp},
	"nullptr":  {token.Null, featCpp},
	"true":     {token.Bool, featC | featCpp},
	"false":    {token.Bool, featC | featCpp},
	"_Bool":    {token.KeywordType, featC},
	"typeof":   {token.Keyword, featCExt | featCppExt},
	"__asm__":  {token.Keyword, featCExt | featCppExt},
	"__inline": {token.Keyword, featCExt},
}

func cppFeatureMask(cpp, strict bool) uint8 {
	mask := featC
	if cpp {
		mask = featCpp
	}
	if !strict {
		if cpp {
			mask |= featCppExt
		} else {
			mask |= featCExt
		}
	}
	return mask
}

func scanC(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	return scanCppFamily(src, opts, false)
}

func scanCpp(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	return scanCppFamily(src, opts, true)
}

func scanCppFamily(src []byte, opts Options, cpp bool) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	mask := cppFeatureMask(cpp, opts.Strict)
	freshLine := true

	for !b.Eof() {
		if tryCppDirective(b, freshLine) {
			freshLine = true
			continue
		}
		if n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c == ' ' || c == '\t' }); n > 0 {
			b.Advance(n)
			continue
		}
		if b.Peek(0) == '\n' {
			b.Advance(1)
			freshLine = true
			continue
		}
		if n := matchLineComment(b.Remainder(), "//"); n > 0 && (cpp || mask&featCExt != 0) {
			b.EmitAndAdvance(n, token.Comment)
			freshLine = false
			continue
		}
		if n, _ := matchBlockComment(b.Remainder(), "/*", "*/"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			freshLine = false
			continue
		}
		if cpp && tryCppRawString(b) {
			freshLine = false
			continue
		}
		if tryCppStringOrChar(b) {
			freshLine = false
			continue
		}
		if tryPPNumber(b) {
			freshLine = false
			continue
		}
		if tryCppIdentifier(b, mask) {
			freshLine = false
			continue
		}
		if tryCppPunctuation(b) {
			freshLine = false
			continue
		}
		b.FallbackOne()
		freshLine = false
	}
	return b.Buf, b.Diags
}

// tryCppDirective recognises a preprocessing directive starting with # or
// %: on a fresh line, consuming the rest of the logical line (absorbing line
// continuations) as one name_macro token. The token ends before a newline
// or before the start of a // or /* comment.
func tryCppDirective(b *Base, freshLine bool) bool {
	if !freshLine {
		return false
	}
	lead := 0
	for lead < len(b.Remainder()) && (b.Remainder()[lead] == ' ' || b.Remainder()[lead] == '\t') {
		lead++
	}
	rest := b.Remainder()[lead:]
	markerLen := 0
	switch {
	case len(rest) > 0 && rest[0] == '#':
		markerLen = 1
	case len(rest) >= 2 && rest[0] == '%' && rest[1] == ':':
		markerLen = 2
	default:
		return false
	}
	b.Advance(lead)
	start := b.Index
	i := markerLen
	for i < len(rest) {
		if rest[i] == '\n' {
			break
		}
		if n := ConsumeLineContinuation(rest[i:]); n > 0 {
			i += n
			continue
		}
		if i+1 < len(rest) && rest[i] == '/' && (rest[i+1] == '/' || rest[i+1] == '*') {
			break
		}
		i++
	}
	b.EmitAndAdvance(i, token.NameMacro)
	_ = start
	return true
}

// tryCppRawString recognises R"delim(...)delim" (C++ only, including the
// u8/u/U/L prefixes and a trailing user-defined-literal suffix).
func tryCppRawString(b *Base) bool {
	rest := b.Remainder()
	prefixLen := 0
	for _, p := range []string{"u8R", "LR", "uR", "UR", "R"} {
		if uchar.HasPrefix(rest, p) && len(rest) > len(p) && rest[len(p)] == '"' {
			prefixLen = len(p)
			break
		}
	}
	if prefixLen == 0 {
		return false
	}
	start := b.Index
	after := rest[prefixLen+1:]
	delimLen := uchar.LengthIfByte(after, func(c byte) bool { return c != '(' && c != ' ' && c != '\t' && c != '\n' })
	if delimLen >= len(after) || after[delimLen] != '(' {
		return false
	}
	delim := string(after[:delimLen])
	openerLen := prefixLen + 1 + delimLen + 1 // prefix + '"' + delim + '('
	closer := ")" + delim + "\""

	body := rest[openerLen:]
	closeAt := -1
	for i := 0; i+len(closer) <= len(body); i++ {
		if string(body[i:i+len(closer)]) == closer {
			closeAt = i
			break
		}
	}

	b.EmitAndAdvance(openerLen, token.StringDelim)
	if closeAt < 0 {
		b.EmitAndAdvance(len(body), token.String)
		return true
	}
	if closeAt > 0 {
		b.EmitAndAdvance(closeAt, token.String)
	}
	b.EmitAndAdvance(len(closer), token.StringDelim)

	suffix := uchar.LengthIfByte(b.Remainder(), isCppIdentCont)
	if suffix > 0 {
		b.EmitAndAdvance(suffix, token.StringDecor)
	}
	_ = start
	return true
}

// tryCppStringOrChar recognises ordinary and prefixed string/character
// literals, with common C-family backslash escapes.
func tryCppStringOrChar(b *Base) bool {
	rest := b.Remainder()
	prefixLen := 0
	for _, p := range []string{"u8", "u", "U", "L"} {
		if uchar.HasPrefix(rest, p) {
			prefixLen = len(p)
			break
		}
	}
	if prefixLen >= len(rest) {
		return false
	}
	quote := rest[prefixLen]
	if quote != '"' && quote != '\'' {
		return false
	}
	cat := token.String
	if quote == '\'' {
		cat = token.String // character literal uses the same string machinery
	}
	scanCLikeQuoted(b, prefixLen, quote, cat)
	return true
}

func scanCLikeQuoted(b *Base, prefixLen int, quote byte, cat token.Category) {
	b.EmitAndAdvance(prefixLen+1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		if c == quote {
			b.EmitAndAdvance(1, token.StringDelim)
			return
		}
		if c == '\n' {
			return // unterminated
		}
		if c == '\\' {
			if n := ConsumeLineContinuation(b.Remainder()); n > 0 {
				b.Advance(n)
				continue
			}
			matchAndEmitCEscape(b)
			continue
		}
		n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != quote && c != '\\' && c != '\n' })
		if n == 0 {
			n = 1
		}
		b.EmitAndAdvance(n, cat)
	}
}

func matchAndEmitCEscape(b *Base) {
	n, erroneous := cEscapeLength(b.Remainder())
	if erroneous {
		b.EmitAndAdvance(n, token.Error)
		return
	}
	b.EmitAndAdvance(n, token.StringEscape)
}

// cEscapeLength measures a backslash escape starting at rest[0] == '\\'
// without touching any scanner state, so callers can use it for lookahead
// (e.g. disambiguating a Rust char literal from a lifetime).
func cEscapeLength(rest []byte) (length int, erroneous bool) {
	body := rest[1:] // past backslash
	if len(body) == 0 {
		return 1, true
	}
	switch body[0] {
	case 'n', 't', 'r', '0', 'a', 'b', 'f', 'v', '\\', '\'', '"', '?':
		return 2, false
	case 'x':
		res := escape.MatchCommonEscape(escape.Hex1ToInf, body[1:])
		return 2 + res.Length, res.Erroneous
	case 'u':
		res := escape.MatchCommonEscape(escape.Hex4, body[1:])
		return 2 + res.Length, res.Erroneous
	case 'U':
		res := escape.MatchCommonEscape(escape.Hex8, body[1:])
		return 2 + res.Length, res.Erroneous
	default:
		if uchar.IsOctalDigit(body[0]) {
			res := escape.MatchCommonEscape(escape.Octal1To3, body)
			return 1 + res.Length, res.Erroneous
		}
		return 2, true
	}
}

func pickEscapeCat(erroneous bool) token.Category {
	if erroneous {
		return token.Error
	}
	return token.StringEscape
}

// ppNumberLength matches the C++ preprocessing-number grammar: an optional
// leading dot, a digit, then any run of digit/identifier-continue/'.'/
// digit-separator/exponent-with-sign characters.
func ppNumberLength(b []byte) int {
	i := 0
	if i < len(b) && b[i] == '.' {
		if i+1 >= len(b) || !uchar.IsDigit(b[i+1]) {
			return 0
		}
		i++
	} else if i >= len(b) || !uchar.IsDigit(b[i]) {
		return 0
	}
	i++
	for i < len(b) {
		c := b[i]
		switch {
		case (c == 'e' || c == 'E' || c == 'p' || c == 'P') && i+1 < len(b) && (b[i+1] == '+' || b[i+1] == '-'):
			i += 2
		case c == '\'' && i+1 < len(b) && uchar.IsAlphanumeric(b[i+1]):
			i += 2
		case uchar.IsAlphanumeric(c) || c == '_' || c == '.':
			i++
		case c >= 0x80:
			i++
		default:
			return i
		}
	}
	return i
}

func tryPPNumber(b *Base) bool {
	n := ppNumberLength(b.Remainder())
	if n == 0 {
		return false
	}
	emitPPNumber(b, n)
	return true
}

func emitPPNumber(b *Base, length int) {
	rest := b.Remainder()[:length]
	i := 0
	base := 10
	if uchar.HasPrefixFold(rest, "0x") {
		b.EmitAndAdvance(2, token.NumberDecor)
		i = 2
		base = 16
	} else if uchar.HasPrefixFold(rest, "0b") {
		b.EmitAndAdvance(2, token.NumberDecor)
		i = 2
		base = 2
	}
	// The trailing run of letters/underscores that are not digits of the
	// base (u, ll, f, _km, ...) is the suffix.
	end := length
	for end > i && (uchar.IsAlpha(rest[end-1]) || rest[end-1] == '_') && !uchar.IsDigitBase(rest[end-1], base) {
		end--
	}
	for i < end {
		c := rest[i]
		switch {
		case c == '\'':
			b.EmitAndAdvance(1, token.NumberDelim)
			i++
		case (c == 'e' || c == 'E' || c == 'p' || c == 'P') && i > 0:
			n := 1
			if i+1 < end && (rest[i+1] == '+' || rest[i+1] == '-') {
				n = 2
			}
			b.EmitAndAdvance(n, token.NumberDelim)
			i += n
		default:
			j := i
			for j < end {
				cj := rest[j]
				if cj == '\'' || ((cj == 'e' || cj == 'E' || cj == 'p' || cj == 'P') && j > i) {
					break
				}
				j++
			}
			b.EmitAndAdvance(j-i, token.Number)
			i = j
		}
	}
	if end < length {
		b.EmitAndAdvance(length-end, token.NumberDecor)
	}
}

func tryCppIdentifier(b *Base, mask uint8) bool {
	n := ScanIdentifier(b.Remainder(), isCppIdentStart, isCppIdentCont)
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	if kw, ok := cppKeywords[word]; ok && kw.features&mask != 0 {
		b.EmitAndAdvance(n, kw.category)
		return true
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

var cppPunctuators = []string{
	"<<=", ">>=", "...", "->*", "::", "->", "++", "--", "<<", ">>",
	"<=", ">=", "==", "!=", "&&", "||", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=",
}

func tryCppPunctuation(b *Base) bool {
	for _, p := range cppPunctuators {
		if b.HasPrefix(p) {
			b.EmitAndAdvance(len(p), token.SymOp)
			return true
		}
	}
	c := b.Peek(0)
	switch c {
	case '(', ')':
		b.EmitAndAdvance(1, token.SymParens)
	case '[', ']':
		b.EmitAndAdvance(1, token.SymSquare)
	case '{', '}':
		b.EmitAndAdvance(1, token.SymBrace)
	case '+', '-', '*', '/', '%', '<', '>', '=', '&', '|', '^', '~', '!', '?':
		b.EmitAndAdvance(1, token.SymOp)
	case ',', ';', ':', '.':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}
