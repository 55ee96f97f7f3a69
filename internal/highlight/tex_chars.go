package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// TeX command-name and special-character classes, ported from
// tex_chars.hpp's is_tex_command_name (plain ASCII letters) and
// is_tex_special (an explicit set of punctuation TeX assigns catcode
// meaning to).
var (
	texCommandNameSet = charset.MakeSet(uchar.IsAlpha)
	texSpecialSet     = charset.Of(`~%$\#&^_@`)
)

func isTeXCommandName(c byte) bool { return texCommandNameSet.Contains(c) }
func isTeXSpecial(c byte) bool     { return texSpecialSet.Contains(c) }
