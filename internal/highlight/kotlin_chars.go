package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// Kotlin identifier character classes, ported from kotlin_chars.hpp.
var (
	kotlinIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	kotlinIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))
)

func isKotlinIdentStart(c byte) bool { return kotlinIdentStartSet.Contains(c) }
func isKotlinIdentCont(c byte) bool  { return kotlinIdentContSet.Contains(c) }
