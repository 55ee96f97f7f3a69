package highlight

import (
	"opal/internal/token"
	"opal/internal/uchar"
)

var bashKeywords = map[string]bool{
	"if": true, "then": true, "else": true, "elif": true, "fi": true,
	"for": true, "while": true, "until": true, "do": true, "done": true,
	"case": true, "esac": true, "function": true, "select": true, "in": true,
	"time": true, "coproc": true,
}

var bashBuiltins = map[string]bool{
	"echo": true, "cd": true, "export": true, "local": true, "readonly": true,
	"return": true, "exit": true, "set": true, "unset": true, "shift": true,
	"read": true, "declare": true, "typeset": true, "source": true, "eval": true,
	"exec": true, "trap": true, "test": true, "break": true, "continue": true,
}

func scanBash(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), isBashWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if tryBashComment(b) {
			continue
		}
		if tryBashSingleQuoted(b) {
			continue
		}
		if tryBashDoubleQuoted(b) {
			continue
		}
		if tryBashBacktick(b) {
			continue
		}
		if tryBashVariable(b) {
			continue
		}
		if tryBashNumber(b) {
			continue
		}
		if tryBashWord(b) {
			continue
		}
		if tryBashMetacharacter(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryBashComment(b *Base) bool {
	if b.Peek(0) != '#' {
		return false
	}
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '\n' })
	b.EmitAndAdvance(n, token.Comment)
	return true
}

func tryBashSingleQuoted(b *Base) bool {
	if b.Peek(0) != '\'' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '\'' })
	if n > 0 {
		b.EmitAndAdvance(n, token.String)
	}
	if b.Peek(0) == '\'' {
		b.EmitAndAdvance(1, token.StringDelim)
	}
	return true
}

func tryBashDoubleQuoted(b *Base) bool {
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
		case c == '\\' && isBashEscapableInDoubleQuotes(b.Peek(1)):
			b.EmitAndAdvance(2, token.StringEscape)
		case c == '$':
			if !tryBashVariable(b) {
				b.EmitAndAdvance(1, token.String)
			}
		case c == '`':
			if !tryBashBacktick(b) {
				b.EmitAndAdvance(1, token.String)
			}
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
				return c != '"' && c != '\\' && c != '$' && c != '`'
			})
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

func tryBashBacktick(b *Base) bool {
	if b.Peek(0) != '`' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '`' })
	if n > 0 {
		b.EmitAndAdvance(n, token.String)
	}
	if b.Peek(0) == '`' {
		b.EmitAndAdvance(1, token.StringDelim)
	}
	return true
}

// tryBashVariable scans $name, $$, ${...}, $(...), and special parameters.
func tryBashVariable(b *Base) bool {
	if b.Peek(0) != '$' {
		return false
	}
	if b.Peek(1) == '{' {
		depth := 0
		n := 2
		rest := b.Remainder()
		depth = 1
		for n < len(rest) && depth > 0 {
			switch rest[n] {
			case '{':
				depth++
			case '}':
				depth--
			}
			n++
		}
		b.EmitAndAdvance(n, token.NameMacro)
		return true
	}
	if b.Peek(1) == '(' {
		depth := 1
		n := 2
		rest := b.Remainder()
		for n < len(rest) && depth > 0 {
			switch rest[n] {
			case '(':
				depth++
			case ')':
				depth--
			}
			n++
		}
		b.EmitAndAdvance(n, token.NameMacro)
		return true
	}
	if isBashIdentStart(b.Peek(1)) {
		n := 1 + uchar.LengthIfByte(b.Remainder()[1:], isBashIdentCont)
		b.EmitAndAdvance(n, token.NameMacro)
		return true
	}
	if isBashSpecialParameter(b.Peek(1)) {
		b.EmitAndAdvance(2, token.NameMacro)
		return true
	}
	return false
}

func tryBashNumber(b *Base) bool {
	n := uchar.LengthIfByte(b.Remainder(), uchar.IsDigit)
	if n == 0 {
		return false
	}
	if !isBashUnquotedTerminator(b.Peek(n)) && b.Peek(n) != 0 {
		return false // digits lead into a larger word, e.g. "123abc"
	}
	b.EmitAndAdvance(n, token.Number)
	return true
}

func tryBashWord(b *Base) bool {
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
		return !isBashUnquotedTerminator(c) && c != '#' && c != '$' && c != '`'
	})
	if n == 0 {
		return false
	}
	word := string(b.Remainder()[:n])
	switch {
	case bashKeywords[word]:
		b.EmitAndAdvance(n, token.KeywordControl)
	case bashBuiltins[word]:
		b.EmitAndAdvance(n, token.Keyword)
	default:
		b.EmitAndAdvance(n, token.Value)
	}
	return true
}

func tryBashMetacharacter(b *Base) bool {
	c := b.Peek(0)
	switch c {
	case '(', ')':
		b.EmitAndAdvance(1, token.SymParens)
	case '|', '&', ';', '<', '>':
		b.EmitAndAdvance(1, token.SymOp)
	default:
		return false
	}
	return true
}
