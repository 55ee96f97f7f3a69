package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var luaKeywords = map[string]token.Category{
	"if": token.KeywordControl, "then": token.KeywordControl, "else": token.KeywordControl,
	"elseif": token.KeywordControl, "end": token.KeywordControl, "for": token.KeywordControl,
	"while": token.KeywordControl, "repeat": token.KeywordControl, "until": token.KeywordControl,
	"break": token.KeywordControl, "return": token.KeywordControl, "goto": token.KeywordControl,
	"do": token.KeywordControl,
	"function": token.Keyword, "local": token.Keyword, "in": token.Keyword,
	"and": token.Keyword, "or": token.Keyword, "not": token.Keyword,
	"self": token.KeywordThis,
	"true": token.Bool, "false": token.Bool, "nil": token.Null,
}

func luaNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
		},
		ExponentSeparators: []numlit.PrefixRule{
			{Text: "e", Base: 10}, {Text: "E", Base: 10},
			{Text: "p", Base: 16}, {Text: "P", Base: 16},
		},
		DefaultBase: 10,
	}
}

func scanLua(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsBlank); n > 0 {
			b.Advance(n)
			continue
		}
		if tryLuaComment(b) {
			continue
		}
		if tryLuaLongString(b) {
			continue
		}
		if tryLuaString(b) {
			continue
		}
		if tryLuaNumber(b) {
			continue
		}
		if tryLuaIdentifier(b) {
			continue
		}
		if tryLuaPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

// luaLongBracketLevel reports the `=` count of an opening long bracket
// `[=*[` at the front of b, or -1 if b doesn't start with one.
func luaLongBracketLevel(b []byte) int {
	if len(b) == 0 || b[0] != '[' {
		return -1
	}
	level := uchar.LengthIfByte(b[1:], func(c byte) bool { return c == '=' })
	if 1+level >= len(b) || b[1+level] != '[' {
		return -1
	}
	return level
}

func tryLuaComment(b *Base) bool {
	if !b.HasPrefix("--") {
		return false
	}
	rest := b.Remainder()[2:]
	if level := luaLongBracketLevel(rest); level >= 0 {
		openLen := 2 + level + 2
		closer := "]" + repeatByte('=', level) + "]"
		body := b.Remainder()[openLen:]
		closeAt := indexOf(body, closer)
		b.EmitAndAdvance(openLen, token.CommentDelim)
		if closeAt < 0 {
			b.EmitAndAdvance(len(body), token.Comment)
			return true
		}
		if closeAt > 0 {
			b.EmitAndAdvance(closeAt, token.Comment)
		}
		b.EmitAndAdvance(len(closer), token.CommentDelim)
		return true
	}
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '\n' })
	b.EmitAndAdvance(n, token.Comment)
	return true
}

func indexOf(b []byte, sub string) int {
	for i := 0; i+len(sub) <= len(b); i++ {
		if string(b[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}

func tryLuaLongString(b *Base) bool {
	level := luaLongBracketLevel(b.Remainder())
	if level < 0 {
		return false
	}
	openLen := level + 2
	closer := "]" + repeatByte('=', level) + "]"
	body := b.Remainder()[openLen:]
	closeAt := indexOf(body, closer)
	b.EmitAndAdvance(openLen, token.StringDelim)
	if closeAt < 0 {
		b.EmitAndAdvance(len(body), token.String)
		return true
	}
	if closeAt > 0 {
		b.EmitAndAdvance(closeAt, token.String)
	}
	b.EmitAndAdvance(len(closer), token.StringDelim)
	return true
}

func tryLuaString(b *Base) bool {
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
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
				return c != quote && c != '\\' && c != '\n'
			})
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

func tryLuaNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), luaNumberOptions())
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
	return true
}

func tryLuaIdentifier(b *Base) bool {
	n := ScanIdentifier(b.Remainder(), isLuaIdentStart, isLuaIdentCont)
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	if cat, ok := luaKeywords[word]; ok {
		b.EmitAndAdvance(n, cat)
		return true
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

var luaOperators = []string{"...", "..", "==", "~=", "<=", ">=", "::"}

func tryLuaPunctuation(b *Base) bool {
	for _, p := range luaOperators {
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
	case '+', '-', '*', '/', '%', '^', '#', '<', '>', '=', '&', '|', '~':
		b.EmitAndAdvance(1, token.SymOp)
	case ',', ';', ':', '.':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}
