package highlight

import (
	"opal/internal/escape"
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var pythonKeywords = map[string]token.Category{
	"if": token.KeywordControl, "elif": token.KeywordControl, "else": token.KeywordControl,
	"for": token.KeywordControl, "while": token.KeywordControl, "break": token.KeywordControl,
	"continue": token.KeywordControl, "return": token.KeywordControl, "yield": token.KeywordControl,
	"try": token.KeywordControl, "except": token.KeywordControl, "finally": token.KeywordControl,
	"raise": token.KeywordControl, "with": token.KeywordControl, "match": token.KeywordControl,
	"case": token.KeywordControl,
	"def":  token.Keyword, "class": token.Keyword, "lambda": token.Keyword,
	"import": token.Keyword, "from": token.Keyword, "as": token.Keyword,
	"global": token.Keyword, "nonlocal": token.Keyword, "del": token.Keyword,
	"pass": token.Keyword, "assert": token.Keyword, "async": token.Keyword, "await": token.Keyword,
	"and": token.Keyword, "or": token.Keyword, "not": token.Keyword, "in": token.Keyword, "is": token.Keyword,
	"self": token.KeywordThis, "cls": token.KeywordThis,
	"True": token.Bool, "False": token.Bool, "None": token.Null,
}

func pythonNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
			{Text: "0o", Base: 8}, {Text: "0O", Base: 8},
			{Text: "0b", Base: 2}, {Text: "0B", Base: 2},
		},
		ExponentSeparators: []numlit.PrefixRule{{Text: "e", Base: 10}, {Text: "E", Base: 10}},
		Suffixes:           []string{"j", "J"},
		DefaultBase:        10,
		DigitSeparator:     '_',
	}
}

// pythonStringPrefix is the closed String_Prefix enum from §4.11: any
// ordering/case of u/r/b/f subsets, classified so raw and byte-ness are
// each a simple flag check rather than a lexeme comparison.
type pythonStringPrefix struct {
	raw   bool
	bytes bool
	fstr  bool
}

// matchPythonStringPrefix recognises a string-literal prefix (possibly
// empty) immediately followed by a quote, returning its length and flags.
func matchPythonStringPrefix(rest []byte) (length int, prefix pythonStringPrefix, ok bool) {
	candidates := []string{
		"rb", "br", "rf", "fr", "r", "b", "f", "u", "",
	}
	for _, c := range candidates {
		if !uchar.HasPrefixFold(rest, c) {
			continue
		}
		if len(rest) <= len(c) || (rest[len(c)] != '"' && rest[len(c)] != '\'') {
			continue
		}
		p := pythonStringPrefix{}
		for _, ch := range []byte(c) {
			switch uchar.ToLower(ch) {
			case 'r':
				p.raw = true
			case 'b':
				p.bytes = true
			case 'f':
				p.fstr = true
			}
		}
		return len(c), p, true
	}
	return 0, pythonStringPrefix{}, false
}

func scanPython(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if n := matchLineComment(b.Remainder(), "#"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if tryPythonString(b) {
			continue
		}
		if tryPythonNumber(b) {
			continue
		}
		if tryPythonIdentifier(b) {
			continue
		}
		if tryPythonPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryPythonString(b *Base) bool {
	rest := b.Remainder()
	prefixLen, prefix, ok := matchPythonStringPrefix(rest)
	if !ok {
		return false
	}
	quote := rest[prefixLen]
	triple := len(rest) >= prefixLen+3 && rest[prefixLen+1] == quote && rest[prefixLen+2] == quote

	if prefixLen > 0 {
		b.EmitAndAdvance(prefixLen, token.StringDecor)
	}
	if triple {
		b.EmitAndAdvance(3, token.StringDelim)
		scanPythonStringBody(b, quote, 3, prefix)
		return true
	}
	b.EmitAndAdvance(1, token.StringDelim)
	scanPythonStringBody(b, quote, 1, prefix)
	return true
}

// scanPythonStringBody scans string content up to the closing delimiter
// (quoteRun consecutive quote bytes). Raw strings disable all escapes
// except the line continuation `\` + newline; byte strings still run the
// common C-like escape set but reject the `\N{...}`/`\u`/`\U` Unicode forms
// since those have no meaning outside text strings.
func scanPythonStringBody(b *Base, quote byte, quoteRun int, prefix pythonStringPrefix) {
	closer := make([]byte, quoteRun)
	for i := range closer {
		closer[i] = quote
	}
	for !b.Eof() {
		rest := b.Remainder()
		if uchar.HasPrefix(rest, string(closer)) {
			b.EmitAndAdvance(quoteRun, token.StringDelim)
			return
		}
		if quoteRun == 1 && rest[0] == '\n' {
			return
		}
		c := rest[0]
		switch {
		case c == '\\' && prefix.raw:
			if n := ConsumeLineContinuation(rest); n > 0 {
				b.EmitAndAdvance(n, token.StringEscape)
			} else {
				n := uchar.LengthIfByte(rest, func(c byte) bool {
					return c != quote && c != '\\'
				})
				if n == 0 {
					n = 1
				}
				b.EmitAndAdvance(n, token.String)
			}
		case c == '\\' && !prefix.raw:
			matchPythonEscape(b, prefix.bytes)
		case c == '{' && prefix.fstr:
			if !tryPythonFStringField(b) {
				n := 1
				if b.Peek(1) == '{' {
					n = 2
				}
				b.EmitAndAdvance(n, token.String)
			}
		default:
			stop := func(c byte) bool {
				if c == quote || c == '\\' {
					return false
				}
				if prefix.fstr && c == '{' {
					return false
				}
				if quoteRun == 1 && c == '\n' {
					return false
				}
				return true
			}
			n := uchar.LengthIfByte(rest, stop)
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
}

// matchPythonEscape emits a single backslash escape in a non-raw string.
// Byte strings reject the text-only \N{...}, \u, and \U forms (they have no
// meaning outside str), matching CPython's bytes-literal escape grammar.
func matchPythonEscape(b *Base, isBytes bool) {
	rest := b.Remainder()
	if len(rest) >= 2 && rest[1] == 'N' && !isBytes {
		res := escape.MatchCommonEscape(escape.NonemptyBraced, rest[2:])
		if res.Matched() {
			b.EmitAndAdvance(2+res.Length, pickEscapeCat(res.Erroneous))
			return
		}
	}
	if len(rest) >= 2 && (rest[1] == 'u' || rest[1] == 'U') && isBytes {
		b.EmitAndAdvance(2, token.Error)
		return
	}
	matchAndEmitCEscape(b)
}

// tryPythonFStringField scans a {expr} replacement field inside an
// f-string, brace-balanced, reentering the full expression grammar.
func tryPythonFStringField(b *Base) bool {
	if b.Peek(0) != '{' || b.Peek(1) == '{' {
		return false
	}
	b.EmitAndAdvance(1, token.StringInterpolationDelim)
	depth := 1
	for !b.Eof() && depth > 0 {
		switch b.Peek(0) {
		case '{':
			depth++
			b.EmitAndAdvance(1, token.SymBrace)
		case '}':
			depth--
			if depth == 0 {
				b.EmitAndAdvance(1, token.StringInterpolationDelim)
			} else {
				b.EmitAndAdvance(1, token.SymBrace)
			}
		case '\'', '"':
			if !tryPythonString(b) {
				b.FallbackOne()
			}
		default:
			if !tryPythonNumber(b) && !tryPythonIdentifier(b) && !tryPythonPunctuation(b) {
				n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace)
				if n == 0 {
					b.FallbackOne()
				} else {
					b.Advance(n)
				}
			}
		}
	}
	return true
}

func tryPythonNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), pythonNumberOptions())
	if !res.Matched() {
		return false
	}
	if res.Prefix > 0 {
		b.EmitAndAdvance(res.Prefix, token.NumberDecor)
	}
	if res.Integer > 0 {
		b.EmitAndAdvance(res.Integer, token.Number)
	}
	if res.RadixPoint > 0 {
		b.EmitAndAdvance(res.RadixPoint+res.Fractional, token.Number)
	}
	if res.ExponentSep > 0 {
		b.EmitAndAdvance(res.ExponentSep, token.NumberDelim)
		b.EmitAndAdvance(res.ExponentDigits, token.Number)
	}
	if res.Suffix > 0 {
		b.EmitAndAdvance(res.Suffix, token.NumberDecor)
	}
	return true
}

func tryPythonIdentifier(b *Base) bool {
	n := ScanIdentifier(b.Remainder(), isPythonIdentStart, isPythonIdentCont)
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	if cat, ok := pythonKeywords[word]; ok {
		b.EmitAndAdvance(n, cat)
		return true
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

var pythonOperators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"->", ":=", "==", "!=", "<=", ">=", "**", "//", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
}

func tryPythonPunctuation(b *Base) bool {
	for _, p := range pythonOperators {
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
	case '+', '-', '*', '/', '%', '<', '>', '=', '&', '|', '^', '~', '@':
		b.EmitAndAdvance(1, token.SymOp)
	case ',', ';', ':', '.':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}
