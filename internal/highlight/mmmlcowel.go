package highlight

import (
	"opal/internal/token"
	"opal/internal/uchar"
)

// MMML and COWEL share an identical character grammar in mmml_chars.hpp /
// cowel_chars.hpp (ulight ships two near-duplicate headers for what is the
// same directive syntax under two names), so one scanner core serves both
// entry points.

func scanMMML(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	return scanDirectiveMarkup(src, opts)
}

func scanCOWEL(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	return scanDirectiveMarkup(src, opts)
}

func scanDirectiveMarkup(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	scanDirectiveMarkupBody(b, 0)
	return b.Buf, b.Diags
}

// scanDirectiveMarkupBody scans text/directives until EOF (depth == 0) or a
// matching '}' closing an enclosing directive's content block (depth > 0),
// in which case the caller consumes the closing brace.
func scanDirectiveMarkupBody(b *Base, depth int) {
	for !b.Eof() {
		if depth > 0 && b.Peek(0) == '}' {
			return
		}
		if tryDirectiveEscape(b) {
			continue
		}
		if tryDirective(b, depth) {
			continue
		}
		c := b.Peek(0)
		switch c {
		case '{', '}':
			b.EmitAndAdvance(1, token.SymBrace)
			continue
		case '[', ']':
			b.EmitAndAdvance(1, token.SymSquare)
			continue
		case ',', '=':
			b.EmitAndAdvance(1, token.SymPunc)
			continue
		}
		n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
			return !isDirectiveSpecial(c)
		})
		if n == 0 {
			n = 1
		}
		b.EmitAndAdvance(n, token.Value)
	}
}

// tryDirectiveEscape handles \c for one of the special characters, which
// stands for the literal character rather than starting a directive.
func tryDirectiveEscape(b *Base) bool {
	if b.Peek(0) != '\\' {
		return false
	}
	c := b.Peek(1)
	if !isDirectiveSpecial(c) || isDirectiveNameStart(c) {
		return false
	}
	b.EmitAndAdvance(2, token.Escape)
	return true
}

func tryDirective(b *Base, depth int) bool {
	if b.Peek(0) != '\\' {
		return false
	}
	rest := b.Remainder()[1:]
	if len(rest) == 0 || !isDirectiveNameStart(rest[0]) {
		return false
	}
	n := uchar.LengthIfByte(rest, isHTMLTagNameChar)
	b.EmitAndAdvance(1+n, token.Macro)

	if b.Peek(0) == '[' {
		scanDirectiveArguments(b)
	}
	if b.Peek(0) == '{' {
		b.EmitAndAdvance(1, token.SymBrace)
		scanDirectiveMarkupBody(b, depth+1)
		if b.Peek(0) == '}' {
			b.EmitAndAdvance(1, token.SymBrace)
		}
	}
	return true
}

func scanDirectiveArguments(b *Base) {
	b.EmitAndAdvance(1, token.SymSquare) // '['
	for !b.Eof() && b.Peek(0) != ']' {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		switch b.Peek(0) {
		case ',', '=':
			b.EmitAndAdvance(1, token.SymPunc)
			continue
		}
		if n := uchar.LengthIfByte(b.Remainder(), isDirectiveArgNameChar); n > 0 {
			b.EmitAndAdvance(n, token.Name)
			continue
		}
		if b.Peek(0) == '"' {
			scanCLikeQuoted(b, 0, '"', token.String)
			continue
		}
		b.FallbackOne()
	}
	if b.Peek(0) == ']' {
		b.EmitAndAdvance(1, token.SymSquare)
	}
}
