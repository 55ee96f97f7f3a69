package highlight

import (
	"opal/internal/charset"
	"opal/internal/uchar"
)

// LLVM IR identifier character classes, ported from llvm_chars.hpp's
// is_llvm_identifier: alnum plus -$._, used for both local (%) and global
// (@) names. Keyword tokens drop '$'/'.' from the continuation set.
var (
	llvmIdentSet    = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("-$._"))
	llvmKeywordSet  = charset.MakeSet(uchar.IsAlphanumeric).Union(charset.Of("-_"))
	llvmAlphaSet    = charset.MakeSet(uchar.IsAlpha)
)

func isLLVMIdentChar(c byte) bool    { return llvmIdentSet.Contains(c) }
func isLLVMKeywordChar(c byte) bool  { return llvmKeywordSet.Contains(c) }
func isLLVMKeywordStart(c byte) bool { return llvmAlphaSet.Contains(c) }
