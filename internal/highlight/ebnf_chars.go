package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// ebnfIdentStartSet/ebnfIdentContSet mirror ebnf_chars.hpp's relaxed
// meta-identifier predicates: ISO 14977 meta identifiers are letters/
// digits/spaces, but real-world grammars also use '-' and '_', which this
// "relaxed" form accepts.
var (
	ebnfIdentStartSet = charset.MakeSet(uchar.IsAlpha).Union(charset.Of("_"))
	ebnfIdentContSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("-_"))
)

func isEBNFIdentStart(c byte) bool { return ebnfIdentStartSet.Contains(c) }
func isEBNFIdentCont(c byte) bool  { return ebnfIdentContSet.Contains(c) }
