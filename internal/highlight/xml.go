package highlight

import (
	"opal/internal/token"
	"opal/internal/uchar"
)

func scanXML(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)

	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		b.Advance(3)
	}

	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), isXMLWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if tryXMLComment(b) {
			continue
		}
		if tryXMLDeclOrPI(b) {
			continue
		}
		if tryXMLCDATA(b) {
			continue
		}
		if tryHTMLEndTag(b) {
			continue
		}
		if tryXMLStartTag(b) {
			continue
		}
		if tryHTMLCharRef(b) {
			continue
		}
		n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '<' && c != '&' })
		if n > 0 {
			b.Advance(n)
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

// tryXMLComment matches <!--...-->, rejecting any "--" appearing inside the
// body — a rule stricter than HTML's, which XML enforces unconditionally.
func tryXMLComment(b *Base) bool {
	if !b.HasPrefix("<!--") {
		return false
	}
	rest := b.Remainder()
	closeAt := -1
	for i := 4; i+3 <= len(rest); i++ {
		if rest[i] == '-' && rest[i+1] == '-' {
			if rest[i+2] == '>' {
				closeAt = i
			}
			break // "--" not immediately followed by '>' terminates the search
		}
	}
	b.EmitAndAdvance(4, token.CommentDelim)
	if closeAt < 0 {
		b.EmitAndAdvance(len(rest)-4, token.Comment)
		return true
	}
	if closeAt > 4 {
		b.EmitAndAdvance(closeAt-4, token.Comment)
	}
	b.EmitAndAdvance(3, token.CommentDelim)
	return true
}

func tryXMLDeclOrPI(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 || rest[0] != '<' || rest[1] != '?' {
		return false
	}
	end := 2
	for end+1 < len(rest) {
		if rest[end] == '?' && rest[end+1] == '>' {
			end += 2
			b.EmitAndAdvance(end, token.MarkupTag)
			return true
		}
		end++
	}
	b.EmitAndAdvance(len(rest), token.MarkupTag)
	return true
}

func tryXMLCDATA(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 9 || string(rest[:9]) != "<![CDATA[" {
		return false
	}
	closeAt := -1
	for i := 9; i+3 <= len(rest); i++ {
		if rest[i] == ']' && rest[i+1] == ']' && rest[i+2] == '>' {
			closeAt = i
			break
		}
	}
	b.EmitAndAdvance(9, token.StringDelim)
	if closeAt < 0 {
		b.EmitAndAdvance(len(rest)-9, token.String)
		return true
	}
	if closeAt > 9 {
		b.EmitAndAdvance(closeAt-9, token.String)
	}
	b.EmitAndAdvance(3, token.StringDelim)
	return true
}

func tryXMLStartTag(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 || rest[0] != '<' || !isXMLNameStart(rest[1]) {
		return false
	}
	b.EmitAndAdvance(1, token.SymPunc)
	n := uchar.LengthIfByte(b.Remainder(), isXMLNameChar)
	b.EmitAndAdvance(n, token.MarkupTag)

	for {
		skipHTMLWhitespace(b)
		c := b.Peek(0)
		if c == '>' {
			b.EmitAndAdvance(1, token.SymPunc)
			return true
		}
		if c == '/' && b.Peek(1) == '>' {
			b.EmitAndAdvance(2, token.SymPunc)
			return true
		}
		if c == 0 {
			return true
		}
		if !tryXMLAttribute(b) {
			b.FallbackOne()
		}
	}
}

func tryXMLAttribute(b *Base) bool {
	n := uchar.LengthIfByte(b.Remainder(), isXMLNameChar)
	if n == 0 {
		return false
	}
	b.EmitAndAdvance(n, token.MarkupAttr)
	skipHTMLWhitespace(b)
	if b.Peek(0) != '=' {
		return true
	}
	b.EmitAndAdvance(1, token.SymPunc)
	skipHTMLWhitespace(b)
	quote := b.Peek(0)
	if quote != '"' && quote != '\'' {
		return true
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		if c == quote {
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		}
		if c == '&' && tryHTMLCharRef(b) {
			continue
		}
		m := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != quote && c != '&' })
		if m == 0 {
			m = 1
		}
		b.EmitAndAdvance(m, token.String)
	}
	return true
}
