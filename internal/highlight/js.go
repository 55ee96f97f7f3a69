package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

const (
	featJS uint8 = 1 << iota
	featTS
	featJSX
)

type jsKeyword struct {
	category token.Category
	features uint8
}

var jsKeywords = map[string]jsKeyword{
	"if": {token.KeywordControl, featJS | featTS | featJSX}, "else": {token.KeywordControl, featJS | featTS | featJSX},
	"for": {token.KeywordControl, featJS | featTS | featJSX}, "while": {token.KeywordControl, featJS | featTS | featJSX},
	"do": {token.KeywordControl, featJS | featTS | featJSX}, "switch": {token.KeywordControl, featJS | featTS | featJSX},
	"case": {token.KeywordControl, featJS | featTS | featJSX}, "default": {token.KeywordControl, featJS | featTS | featJSX},
	"break": {token.KeywordControl, featJS | featTS | featJSX}, "continue": {token.KeywordControl, featJS | featTS | featJSX},
	"return": {token.KeywordControl, featJS | featTS | featJSX}, "throw": {token.KeywordControl, featJS | featTS | featJSX},
	"try": {token.KeywordControl, featJS | featTS | featJSX}, "catch": {token.KeywordControl, featJS | featTS | featJSX},
	"finally": {token.KeywordControl, featJS | featTS | featJSX}, "yield": {token.KeywordControl, featJS | featTS | featJSX},
	"await": {token.KeywordControl, featJS | featTS | featJSX},
	"function": {token.Keyword, featJS | featTS | featJSX}, "var": {token.Keyword, featJS | featTS | featJSX},
	"let": {token.Keyword, featJS | featTS | featJSX}, "const": {token.Keyword, featJS | featTS | featJSX},
	"class": {token.Keyword, featJS | featTS | featJSX}, "extends": {token.Keyword, featJS | featTS | featJSX},
	"new": {token.Keyword, featJS | featTS | featJSX}, "delete": {token.Keyword, featJS | featTS | featJSX},
	"typeof": {token.Keyword, featJS | featTS | featJSX}, "instanceof": {token.Keyword, featJS | featTS | featJSX},
	"in": {token.Keyword, featJS | featTS | featJSX}, "of": {token.Keyword, featJS | featTS | featJSX},
	"import": {token.Keyword, featJS | featTS | featJSX}, "export": {token.Keyword, featJS | featTS | featJSX},
	"async": {token.Keyword, featJS | featTS | featJSX}, "static": {token.Keyword, featJS | featTS | featJSX},
	"get": {token.Keyword, featJS | featTS | featJSX}, "set": {token.Keyword, featJS | featTS | featJSX},
	"this": {token.KeywordThis, featJS | featTS | featJSX}, "super": {token.KeywordThis, featJS | featTS | featJSX},
	"null": {token.Null, featJS | featTS | featJSX}, "undefined": {token.Null, featJS | featTS | featJSX},
	"true": {token.Bool, featJS | featTS | featJSX}, "false": {token.Bool, featJS | featTS | featJSX},
	"interface": {token.Keyword, featTS}, "type": {token.Keyword, featTS},
	"enum": {token.Keyword, featTS}, "namespace": {token.Keyword, featTS},
	"implements": {token.Keyword, featTS}, "declare": {token.Keyword, featTS},
	"readonly": {token.Keyword, featTS}, "public": {token.Keyword, featTS},
	"private": {token.Keyword, featTS}, "protected": {token.Keyword, featTS},
	"abstract": {token.Keyword, featTS}, "as": {token.Keyword, featTS},
	"string": {token.NameTypeBuiltin, featTS}, "number": {token.NameTypeBuiltin, featTS},
	"boolean": {token.NameTypeBuiltin, featTS}, "any": {token.NameTypeBuiltin, featTS},
	"unknown": {token.NameTypeBuiltin, featTS}, "void": {token.NameTypeBuiltin, featTS},
	"never": {token.NameTypeBuiltin, featTS},
}

func jsNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
			{Text: "0b", Base: 2}, {Text: "0B", Base: 2},
			{Text: "0o", Base: 8}, {Text: "0O", Base: 8},
		},
		ExponentSeparators: []numlit.PrefixRule{{Text: "e", Base: 10}, {Text: "E", Base: 10}},
		Suffixes:           []string{"n"},
		DefaultBase:        10,
	}
}

func scanJS(src []byte, opts Options) (*token.Buffer, []Diagnostic)  { return scanJSFamily(src, opts, featJS) }
func scanTS(src []byte, opts Options) (*token.Buffer, []Diagnostic)  { return scanJSFamily(src, opts, featTS) }
func scanJSX(src []byte, opts Options) (*token.Buffer, []Diagnostic) { return scanJSFamily(src, opts, featJSX) }

func scanJSFamily(src []byte, opts Options, mask uint8) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)

	if b.HasPrefix("#!") {
		n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '\n' })
		b.EmitAndAdvance(n, token.Comment)
	}

	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if n := matchLineComment(b.Remainder(), "//"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if n, _ := matchBlockComment(b.Remainder(), "/*", "*/"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if tryJSTemplateLiteral(b) {
			continue
		}
		if tryJSString(b) {
			continue
		}
		if tryJSPrivateIdentifier(b, mask) {
			continue
		}
		if tryJSNumber(b) {
			continue
		}
		if tryJSIdentifier(b, mask) {
			continue
		}
		if tryJSPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryJSString(b *Base) bool {
	quote := b.Peek(0)
	if quote != '"' && quote != '\'' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == quote:
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		case c == '\n':
			return true
		case c == '\\':
			matchAndEmitCEscape(b)
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != quote && c != '\\' && c != '\n' })
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

// tryJSTemplateLiteral scans a `...${ ... }...` template, recursively
// tracking brace balance inside each substitution so that braces nested in
// the substitution's own object literals don't prematurely close it.
func tryJSTemplateLiteral(b *Base) bool {
	if b.Peek(0) != '`' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == '`':
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		case c == '\\':
			matchAndEmitCEscape(b)
		case c == '$' && b.Peek(1) == '{':
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
				case '`':
					tryJSTemplateLiteral(b)
				case '"', '\'':
					tryJSString(b)
				default:
					if !tryJSNumber(b) && !tryJSIdentifier(b, featJS|featTS|featJSX) && !tryJSPunctuation(b) {
						skipOne := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace)
						if skipOne == 0 {
							b.FallbackOne()
						} else {
							b.Advance(skipOne)
						}
					}
				}
			}
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '`' && c != '\\' && c != '$' })
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

func tryJSPrivateIdentifier(b *Base, mask uint8) bool {
	if b.Peek(0) != '#' {
		return false
	}
	n := ScanIdentifier(b.Remainder()[1:], isJSIdentStart, isJSIdentCont)
	if n == 0 {
		return false
	}
	b.EmitAndAdvance(1+n, token.Name)
	return true
}

func tryJSNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), jsNumberOptions())
	if !res.Matched() {
		return false
	}
	start := b.Index
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
	_ = start
	return true
}

func tryJSIdentifier(b *Base, mask uint8) bool {
	n := ScanIdentifier(b.Remainder(), isJSIdentStart, isJSIdentCont)
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	if kw, ok := jsKeywords[word]; ok && kw.features&mask != 0 {
		b.EmitAndAdvance(n, kw.category)
		return true
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

var jsPunctuators = []string{
	">>>=", "===", "!==", "**=", "<<=", ">>=", ">>>", "...",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.",
	"++", "--", "**", "<<", ">>", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=",
}

func tryJSPunctuation(b *Base) bool {
	for _, p := range jsPunctuators {
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
