package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// CSS identifier character classes, ported from original_source's
// lang/css_chars.hpp onto the bitset engine: an ident can start with a
// letter, underscore, or any non-ASCII byte, and continue with those plus
// digits and hyphen.
var (
	cssIdentStartSet = charset.MakeSet(uchar.IsAlpha).
				Union(charset.Of("_")).
				Union(charset.MakeSet(func(c byte) bool { return c >= 0x80 }))
	cssIdentContSet = cssIdentStartSet.Union(charset.MakeSet(uchar.IsDigit)).Union(charset.Of("-"))
)

func isCSSIdentStart(c byte) bool { return cssIdentStartSet.Contains(c) }
func isCSSIdentCont(c byte) bool  { return cssIdentContSet.Contains(c) }
