package highlight

import (
	"opal/internal/token"
	"opal/internal/uchar"
)

var htmlRawTextElements = map[string]bool{"script": true, "style": true}
var htmlEscapableRawTextElements = map[string]bool{"textarea": true, "title": true}

func scanHTML(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)

	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		b.Advance(3) // BOM is three UTF-8 bytes; consumed silently per §6.
	}

	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if tryHTMLComment(b) {
			continue
		}
		if tryHTMLDoctypeOrCDATA(b) {
			continue
		}
		if tryHTMLEndTag(b) {
			continue
		}
		if tryHTMLStartTag(b) {
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

func tryHTMLComment(b *Base) bool {
	if !b.HasPrefix("<!--") {
		return false
	}
	rest := b.Remainder()
	// Reject the degenerate opens <!--> and <!--->; any other "<!--" opens a
	// comment, including the empty one "<!---->".
	if len(rest) >= 5 && string(rest[:5]) == "<!-->" {
		return false
	}
	if len(rest) >= 6 && string(rest[:6]) == "<!--->" {
		return false
	}
	closeAt := -1
	for i := 4; i+3 <= len(rest); i++ {
		if rest[i] == '-' && rest[i+1] == '-' && rest[i+2] == '>' {
			closeAt = i
			break
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

func tryHTMLDoctypeOrCDATA(b *Base) bool {
	rest := b.Remainder()
	if uchar.HasPrefixFold(rest, "<!doctype") {
		end := uchar.LengthBefore(rest, '>', 0)
		length := end
		if end < len(rest) {
			length++
		}
		b.EmitAndAdvance(length, token.MarkupTag)
		return true
	}
	if len(rest) >= 9 && string(rest[:9]) == "<![CDATA[" {
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
	return false
}

func tryHTMLEndTag(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 || rest[0] != '<' || rest[1] != '/' {
		return false
	}
	b.EmitAndAdvance(2, token.SymPunc)
	n := uchar.LengthIfByte(b.Remainder(), isHTMLTagNameChar)
	if n > 0 {
		b.EmitAndAdvance(n, token.MarkupTag)
	}
	skipHTMLWhitespace(b)
	if b.Peek(0) == '>' {
		b.EmitAndAdvance(1, token.SymPunc)
	}
	return true
}

func tryHTMLStartTag(b *Base) bool {
	rest := b.Remainder()
	if len(rest) < 2 || rest[0] != '<' || !isHTMLTagNameChar(rest[1]) {
		return false
	}
	b.EmitAndAdvance(1, token.SymPunc)
	nameStart := b.Index
	n := uchar.LengthIfByte(b.Remainder(), isHTMLTagNameChar)
	name := string(b.Source[nameStart : nameStart+n])
	b.EmitAndAdvance(n, token.MarkupTag)

	for {
		skipHTMLWhitespace(b)
		c := b.Peek(0)
		if c == '>' {
			b.EmitAndAdvance(1, token.SymPunc)
			break
		}
		if c == '/' && b.Peek(1) == '>' {
			b.EmitAndAdvance(2, token.SymPunc)
			break
		}
		if c == 0 {
			break // eof, unterminated tag
		}
		if !tryHTMLAttribute(b) {
			b.FallbackOne()
		}
	}

	lower := toLowerASCII(name)
	if htmlRawTextElements[lower] {
		scanHTMLRawText(b, lower, false)
	} else if htmlEscapableRawTextElements[lower] {
		scanHTMLRawText(b, lower, true)
	}
	return true
}

func toLowerASCII(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = uchar.ToLower(s[i])
	}
	return string(out)
}

func skipHTMLWhitespace(b *Base) {
	n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace)
	b.Advance(n)
}

func tryHTMLAttribute(b *Base) bool {
	n := uchar.LengthIfByte(b.Remainder(), isHTMLAttrNameChar)
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
	if quote == '"' || quote == '\'' {
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

	for !b.Eof() {
		c := b.Peek(0)
		if isHTMLUnquotedValueTerminator(c) {
			break
		}
		if c == '&' && tryHTMLCharRef(b) {
			continue
		}
		m := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
			return !isHTMLUnquotedValueTerminator(c) && c != '&'
		})
		if m == 0 {
			break
		}
		b.EmitAndAdvance(m, token.String)
	}
	return true
}

// scanHTMLRawText consumes element content verbatim until a case-
// insensitive end-tag-open for name, per §4.8's raw-text / escapable-raw-
// text distinction. Character references are only recognised when
// escapable is true.
func scanHTMLRawText(b *Base, name string, escapable bool) {
	closer := "</" + name
	for !b.Eof() {
		if uchar.HasPrefixFold(b.Remainder(), closer) {
			after := b.Peek(len(closer))
			if after == 0 || uchar.IsWhitespace(after) || after == '/' || after == '>' {
				return
			}
		}
		if escapable && b.Peek(0) == '&' && tryHTMLCharRef(b) {
			continue
		}
		n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '<' && (!escapable || c != '&') })
		if n == 0 {
			n = 1
		}
		b.Advance(n)
	}
}

// tryHTMLCharRef matches &#digits;, &#x hex-digits;, or &name; — a missing
// terminating ';' is no match at all.
func tryHTMLCharRef(b *Base) bool {
	rest := b.Remainder()
	if len(rest) == 0 || rest[0] != '&' {
		return false
	}
	i := 1
	if i < len(rest) && rest[i] == '#' {
		i++
		if i < len(rest) && (rest[i] == 'x' || rest[i] == 'X') {
			i++
			start := i
			i += uchar.LengthIfByte(rest[i:], uchar.IsHexDigit)
			if i == start {
				return false
			}
		} else {
			start := i
			i += uchar.LengthIfByte(rest[i:], uchar.IsDigit)
			if i == start {
				return false
			}
		}
	} else {
		start := i
		i += uchar.LengthIfByte(rest[i:], uchar.IsAlphanumeric)
		if i == start {
			return false
		}
	}
	if i >= len(rest) || rest[i] != ';' {
		return false
	}
	b.EmitAndAdvance(i+1, token.Escape)
	return true
}
