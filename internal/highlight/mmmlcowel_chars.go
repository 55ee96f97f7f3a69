package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// Directive character classes shared by MMML and COWEL, ported from
// mmml_chars.hpp/cowel_chars.hpp onto the bitset engine. A directive name
// reuses the HTML tag-name set minus digits at the start position; an
// argument name reuses the HTML attribute-name set minus the directive
// special characters — the same Difference composition cowel_chars.hpp
// checks with its static_assert((tag_name_set & special_set) == {}).
var (
	directiveSpecialSet   = charset.Of("{}\\[],=")
	directiveNameStartSet = htmlTagNameSet.Difference(charset.MakeSet(uchar.IsDigit))
	directiveArgNameSet   = htmlAttrNameSet.Difference(directiveSpecialSet)
)

func isDirectiveSpecial(c byte) bool     { return directiveSpecialSet.Contains(c) }
func isDirectiveNameStart(c byte) bool   { return directiveNameStartSet.Contains(c) }
func isDirectiveArgNameChar(c byte) bool { return directiveArgNameSet.Contains(c) }
