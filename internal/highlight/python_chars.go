package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// Python identifier character classes, ported from python_chars.hpp.
var (
	pythonIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	pythonIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))
)

func isPythonIdentStart(c byte) bool { return pythonIdentStartSet.Contains(c) }
func isPythonIdentCont(c byte) bool  { return pythonIdentContSet.Contains(c) }
