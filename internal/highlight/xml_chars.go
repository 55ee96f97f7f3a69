package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// XML whitespace and Name-production character classes, ported from
// xml_chars.hpp. XML's own whitespace production is narrower than HTML's
// (no form feed), so it gets its own set rather than reusing uchar's.
var (
	xmlWhitespaceSet = charset.Of(" \t\n\r")

	xmlNameStartSet = charset.MakeSet(uchar.IsAlpha).
				Union(charset.Of(":_")).
				Union(charset.MakeSet(func(c byte) bool { return c >= 0x80 }))

	xmlNameCharSet = xmlNameStartSet.
			Union(charset.MakeSet(uchar.IsDigit)).
			Union(charset.Of("-.")).
			Union(charset.MakeSet(func(c byte) bool { return c == 0xB7 }))
)

func isXMLWhitespace(c byte) bool { return xmlWhitespaceSet.Contains(c) }
func isXMLNameStart(c byte) bool  { return xmlNameStartSet.Contains(c) }
func isXMLNameChar(c byte) bool   { return xmlNameCharSet.Contains(c) }
