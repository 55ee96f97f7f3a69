package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var kotlinKeywords = map[string]token.Category{
	"fun": token.Keyword, "val": token.Keyword, "var": token.Keyword,
	"if": token.KeywordControl, "else": token.KeywordControl, "for": token.KeywordControl,
	"while": token.KeywordControl, "do": token.KeywordControl, "when": token.KeywordControl,
	"return": token.KeywordControl, "break": token.KeywordControl, "continue": token.KeywordControl,
	"throw": token.KeywordControl, "try": token.KeywordControl, "catch": token.KeywordControl,
	"finally": token.KeywordControl,
	"class":   token.Keyword, "interface": token.Keyword, "object": token.Keyword,
	"package": token.Keyword, "import": token.Keyword, "typealias": token.Keyword,
	"is": token.Keyword, "as": token.Keyword, "in": token.Keyword, "out": token.Keyword, "by": token.Keyword,
	"constructor": token.Keyword, "init": token.Keyword,
	"companion": token.Keyword, "override": token.Keyword, "open": token.Keyword,
	"abstract": token.Keyword, "final": token.Keyword, "private": token.Keyword,
	"protected": token.Keyword, "public": token.Keyword, "internal": token.Keyword,
	"sealed": token.Keyword, "data": token.Keyword, "enum": token.Keyword,
	"annotation": token.Keyword, "inline": token.Keyword, "noinline": token.Keyword,
	"crossinline": token.Keyword, "reified": token.Keyword, "vararg": token.Keyword,
	"lateinit": token.Keyword, "suspend": token.Keyword, "tailrec": token.Keyword,
	"operator": token.Keyword, "infix": token.Keyword, "external": token.Keyword,
	"const": token.Keyword, "inner": token.Keyword, "expect": token.Keyword, "actual": token.Keyword,
	"this": token.KeywordThis, "super": token.KeywordThis,
	"true": token.Bool, "false": token.Bool, "null": token.Null,
}

var kotlinBuiltinTypes = map[string]bool{
	"Int": true, "Long": true, "Short": true, "Byte": true, "Float": true, "Double": true,
	"Boolean": true, "Char": true, "String": true, "Unit": true, "Any": true, "Nothing": true,
	"Array": true,
}


func kotlinNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
			{Text: "0b", Base: 2}, {Text: "0B", Base: 2},
		},
		ExponentSeparators: []numlit.PrefixRule{{Text: "e", Base: 10}, {Text: "E", Base: 10}},
		Suffixes:           []string{"uL", "UL", "u", "U", "L", "f", "F"},
		DefaultBase:        10,
		DigitSeparator:     '_',
	}
}

func scanKotlin(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if n := matchLineComment(b.Remainder(), "//"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if n := matchNestedBlockComment(b.Remainder()); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if tryKotlinTripleString(b) {
			continue
		}
		if tryKotlinString(b) {
			continue
		}
		if tryKotlinCharLiteral(b) {
			continue
		}
		if tryKotlinBacktickIdentifier(b) {
			continue
		}
		if tryKotlinNumber(b) {
			continue
		}
		if tryKotlinIdentifier(b) {
			continue
		}
		if tryKotlinPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

var kotlinOperators = []string{
	"->", "::", "..", "?.", "?:", "===", "!==", "==", "!=", "<=", ">=",
	"&&", "||", "++", "--", "+=", "-=", "*=", "/=", "%=",
}

// tryKotlinPunctuation classifies operator-shaped lexemes as sym_op and
// purely structural ones (assignment, separators, brackets) as sym_punc,
// matching the distinction the language's own highlighter draws: `=` reads
// as punctuation, `==` as an operator.
func tryKotlinPunctuation(b *Base) bool {
	for _, p := range kotlinOperators {
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
	case '+', '-', '*', '/', '%', '<', '>', '!':
		b.EmitAndAdvance(1, token.SymOp)
	case '=', ',', ';', ':', '.', '?', '@':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}

// matchNestedBlockComment matches /* ... */, counting nested /*...*/ pairs,
// which Kotlin (unlike C) permits.
func matchNestedBlockComment(b []byte) int {
	if !uchar.HasPrefix(b, "/*") {
		return 0
	}
	depth := 1
	i := 2
	for i < len(b) && depth > 0 {
		switch {
		case uchar.HasPrefix(b[i:], "/*"):
			depth++
			i += 2
		case uchar.HasPrefix(b[i:], "*/"):
			depth--
			i += 2
		default:
			i++
		}
	}
	return i
}

func tryKotlinBacktickIdentifier(b *Base) bool {
	if b.Peek(0) != '`' {
		return false
	}
	rest := b.Remainder()
	end := uchar.LengthBefore(rest, '`', 1)
	if end >= len(rest) {
		b.EmitAndAdvance(len(rest), token.Error)
		return true
	}
	b.EmitAndAdvance(end+1, token.Name)
	return true
}

func tryKotlinString(b *Base) bool {
	if b.HasPrefix(`"""`) {
		return false // handled by tryKotlinTripleString
	}
	if b.Peek(0) != '"' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == '"':
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		case c == '\n':
			return true
		case c == '\\':
			matchAndEmitCEscape(b)
		case c == '$':
			tryKotlinInterpolation(b)
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
				return c != '"' && c != '\\' && c != '\n' && c != '$'
			})
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

// tryKotlinTripleString scans a """...""" literal. The terminator is three
// or more consecutive quotes; only the final three close, any extra leading
// quotes are literal content. No escapes are recognised; $ident/${...}
// interpolation stays active.
func tryKotlinTripleString(b *Base) bool {
	if !b.HasPrefix(`"""`) {
		return false
	}
	b.EmitAndAdvance(3, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == '"':
			// Count the run of quotes; if 3 or more remain, the final 3
			// close and anything before them is content.
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c == '"' })
			if n < 3 {
				b.EmitAndAdvance(n, token.String)
				continue
			}
			if n > 3 {
				b.EmitAndAdvance(n-3, token.String)
			}
			b.EmitAndAdvance(3, token.StringDelim)
			return true
		case c == '$':
			tryKotlinInterpolation(b)
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '"' && c != '$' })
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

// tryKotlinInterpolation handles both $ident and ${...} forms at the front
// of b (which must start with '$'). Consumes nothing and returns false if
// neither form applies, leaving the '$' for the caller to treat as content.
func tryKotlinInterpolation(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 {
		return false
	}
	if rest[1] == '{' {
		b.EmitAndAdvance(2, token.StringInterpolationDelim)
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
			case '"':
				if !tryKotlinTripleString(b) {
					tryKotlinString(b)
				}
			default:
				if !tryKotlinNumber(b) && !tryKotlinIdentifier(b) && !tryKotlinPunctuation(b) {
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
	n := ScanIdentifier(rest[1:], isKotlinIdentStart, isKotlinIdentCont)
	if n == 0 {
		return false
	}
	b.EmitAndAdvance(1+n, token.StringInterpolation)
	return true
}

func tryKotlinCharLiteral(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 || rest[0] != '\'' {
		return false
	}
	body := rest[1:]
	var contentLen int
	if body[0] == '\\' {
		n, _ := cEscapeLength(body)
		contentLen = n
	} else {
		_, n := uchar.DecodeOrReplacement(body)
		contentLen = n
	}
	if 1+contentLen >= len(rest) || rest[1+contentLen] != '\'' {
		b.EmitAndAdvance(1, token.Error)
		return true
	}
	b.EmitAndAdvance(1, token.StringDelim)
	if body[0] == '\\' {
		matchAndEmitCEscape(b)
	} else {
		b.EmitAndAdvance(contentLen, token.String)
	}
	b.EmitAndAdvance(1, token.StringDelim)
	return true
}

func tryKotlinNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), kotlinNumberOptions())
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

func tryKotlinIdentifier(b *Base) bool {
	n := ScanIdentifier(b.Remainder(), isKotlinIdentStart, isKotlinIdentCont)
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	total := n
	if word == "super" && b.Peek(n) == '@' {
		total++
	}
	if cat, ok := kotlinKeywords[word]; ok {
		b.EmitAndAdvance(total, cat)
		return true
	}
	if kotlinBuiltinTypes[word] {
		b.EmitAndAdvance(total, token.NameTypeBuiltin)
		return true
	}
	b.EmitAndAdvance(total, token.Name)
	return true
}
