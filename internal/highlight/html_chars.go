package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// HTML tag/attribute character classes, ported from html_chars.hpp onto the
// bitset engine. is_html_ascii_tag_name_character_set there is alphanumeric
// union a literal "-._"; the attribute-name set is everything except
// controls and a short exclusion list, built here the same way with
// Complement/Difference rather than a hand-written negative switch.
var (
	htmlTagNameSet = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("-._"))

	htmlAttrNameSet = charset.MakeSet(uchar.IsControl).
			Complement().
			Difference(charset.Of(" \"'>/="))

	htmlUnquotedValueTerminatorSet = charset.MakeSet(uchar.IsWhitespace).Union(charset.Of("\"'=<>`"))
)

func isHTMLTagNameChar(c byte) bool             { return htmlTagNameSet.Contains(c) }
func isHTMLAttrNameChar(c byte) bool            { return htmlAttrNameSet.Contains(c) }
func isHTMLUnquotedValueTerminator(c byte) bool { return htmlUnquotedValueTerminatorSet.Contains(c) }
