package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// isLuaIdentStart/Cont mirror lua_chars.hpp's is_lua_identifier_start/
// _continue: letters/underscore to start, alphanumerics to continue.
var (
	luaIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	luaIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("_"))
)

func isLuaIdentStart(c byte) bool { return luaIdentStartSet.Contains(c) }
func isLuaIdentCont(c byte) bool  { return luaIdentContSet.Contains(c) }
