package highlight

import (
	"opal/internal/token"
	"opal/internal/uchar"
)

func scanEBNF(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if tryEBNFComment(b) {
			continue
		}
		if tryEBNFTerminalString(b) {
			continue
		}
		if tryEBNFSpecialSequence(b) {
			continue
		}
		if tryEBNFIdentifier(b) {
			continue
		}
		if tryEBNFPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryEBNFComment(b *Base) bool {
	if !b.HasPrefix("(*") {
		return false
	}
	body := b.Remainder()[2:]
	closeAt := indexOf(body, "*)")
	if closeAt < 0 {
		b.EmitAndAdvance(2, token.CommentDelim)
		b.EmitAndAdvance(len(body), token.Comment)
		return true
	}
	b.EmitAndAdvance(2, token.CommentDelim)
	if closeAt > 0 {
		b.EmitAndAdvance(closeAt, token.Comment)
	}
	b.EmitAndAdvance(2, token.CommentDelim)
	return true
}

func tryEBNFTerminalString(b *Base) bool {
	quote := b.Peek(0)
	if quote != '\'' && quote != '"' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != quote && c != '\n' })
	if n > 0 {
		b.EmitAndAdvance(n, token.String)
	}
	if b.Peek(0) == quote {
		b.EmitAndAdvance(1, token.StringDelim)
	}
	return true
}

// tryEBNFSpecialSequence scans a `? ... ?` special sequence, an escape
// hatch in the grammar for prose outside the formal notation.
func tryEBNFSpecialSequence(b *Base) bool {
	if b.Peek(0) != '?' {
		return false
	}
	b.EmitAndAdvance(1, token.Escape)
	n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '?' && c != '\n' })
	if n > 0 {
		b.EmitAndAdvance(n, token.Value)
	}
	if b.Peek(0) == '?' {
		b.EmitAndAdvance(1, token.Escape)
	}
	return true
}

func tryEBNFIdentifier(b *Base) bool {
	n := ScanIdentifier(b.Remainder(), isEBNFIdentStart, isEBNFIdentCont)
	if n == 0 {
		return false
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

func tryEBNFPunctuation(b *Base) bool {
	c := b.Peek(0)
	switch c {
	case '(', ')':
		b.EmitAndAdvance(1, token.SymParens)
	case '[', ']':
		b.EmitAndAdvance(1, token.SymSquare)
	case '{', '}':
		b.EmitAndAdvance(1, token.SymBrace)
	case '=', '|', ',', ';', '-', '.', '*':
		b.EmitAndAdvance(1, token.SymOp)
	default:
		return false
	}
	return true
}
