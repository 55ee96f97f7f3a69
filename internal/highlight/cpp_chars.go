package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// C/C++ identifier character classes, ported from cpp_chars.hpp/c_chars.hpp.
var (
	cppIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	cppIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))
)

func isCppIdentStart(c byte) bool { return cppIdentStartSet.Contains(c) }
func isCppIdentCont(c byte) bool  { return cppIdentContSet.Contains(c) }
