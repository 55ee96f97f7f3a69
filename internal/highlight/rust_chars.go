package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// Rust identifier character classes, ported from rust_chars.hpp.
var (
	rustIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	rustIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))
)

func isRustIdentStart(c byte) bool { return rustIdentStartSet.Contains(c) }
func isRustIdentCont(c byte) bool  { return rustIdentContSet.Contains(c) }
