package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// NASM symbol character classes, ported from nasm_chars.hpp's
// is_nasm_identifier_start/is_nasm_identifier: NASM symbols may contain and
// start with a handful of punctuation characters beyond the usual alnum/_.
var (
	nasmIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("._?$"))
	nasmIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_$@-.?"))
)

func isNASMIdentStart(c byte) bool { return nasmIdentStartSet.Contains(c) }
func isNASMIdentCont(c byte) bool  { return nasmIdentContSet.Contains(c) }
