package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// JS/TS/JSX identifier character classes, ported from js_chars.hpp/
// ts_chars.hpp: identifiers additionally allow '$', the one character
// beyond alpha/digit/underscore these dialects share.
var (
	jsIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_$"))
	jsIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_$"))
)

func isJSIdentStart(c byte) bool { return jsIdentStartSet.Contains(c) }
func isJSIdentCont(c byte) bool  { return jsIdentContSet.Contains(c) }
