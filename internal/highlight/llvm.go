package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var llvmKeywords = map[string]bool{
	"define": true, "declare": true, "global": true, "constant": true,
	"alias": true, "ifunc": true, "attributes": true, "target": true,
	"source_filename": true, "module": true, "type": true,
	"private": true, "internal": true, "external": true, "linkonce": true,
	"weak": true, "common": true, "appending": true, "extern_weak": true,
	"linkonce_odr": true, "weak_odr": true, "dllimport": true, "dllexport": true,
	"ret": true, "br": true, "switch": true, "indirectbr": true, "invoke": true,
	"resume": true, "unreachable": true, "call": true, "callbr": true,
	"add": true, "sub": true, "mul": true, "udiv": true, "sdiv": true,
	"urem": true, "srem": true, "shl": true, "lshr": true, "ashr": true,
	"and": true, "or": true, "xor": true, "fadd": true, "fsub": true,
	"fmul": true, "fdiv": true, "frem": true, "alloca": true, "load": true,
	"store": true, "fence": true, "cmpxchg": true, "atomicrmw": true,
	"getelementptr": true, "trunc": true, "zext": true, "sext": true,
	"fptrunc": true, "fpext": true, "fptoui": true, "fptosi": true,
	"uitofp": true, "sitofp": true, "ptrtoint": true, "inttoptr": true,
	"bitcast": true, "addrspacecast": true, "icmp": true, "fcmp": true,
	"phi": true, "select": true, "freeze": true, "nsw": true, "nuw": true,
	"true": true, "false": true, "null": true, "undef": true, "poison": true,
	"zeroinitializer": true, "to": true, "align": true, "noundef": true,
}

var llvmTypeKeywords = map[string]bool{
	"void": true, "half": true, "float": true, "double": true, "fp128": true,
	"x86_fp80": true, "ppc_fp128": true, "label": true, "metadata": true,
	"token": true, "ptr": true, "opaque": true, "x86_mmx": true,
}

func llvmNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
		},
		ExponentSeparators: []numlit.PrefixRule{{Text: "e", Base: 10}, {Text: "E", Base: 10}},
		DefaultBase:        10,
	}
}

func scanLLVM(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if n := matchLineComment(b.Remainder(), ";"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if tryLLVMString(b) {
			continue
		}
		if tryLLVMSigilName(b) {
			continue
		}
		if tryLLVMTypeName(b) {
			continue
		}
		if tryLLVMNumber(b) {
			continue
		}
		if tryLLVMKeywordOrLabel(b) {
			continue
		}
		if tryLLVMPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryLLVMString(b *Base) bool {
	if b.Peek(0) != '"' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == '"':
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		case c == '\\':
			matchAndEmitCEscape(b)
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool { return c != '"' && c != '\\' })
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

// tryLLVMSigilName scans %local, @global, !metadata, and #attrgroup names,
// including the numeric and quoted-string forms those sigils allow.
func tryLLVMSigilName(b *Base) bool {
	c := b.Peek(0)
	if c != '%' && c != '@' && c != '!' && c != '#' {
		return false
	}
	cat := token.Name
	if c == '@' {
		cat = token.NameMacro
	}
	if b.Peek(1) == '"' {
		b.EmitAndAdvance(1, cat)
		return tryLLVMString(b)
	}
	n := uchar.LengthIfByte(b.Remainder()[1:], isLLVMIdentChar)
	if n == 0 {
		return false
	}
	b.EmitAndAdvance(1+n, cat)
	return true
}

func tryLLVMTypeName(b *Base) bool {
	rest := b.Remainder()
	if rest[0] == 'i' && len(rest) > 1 && uchar.IsDigit(rest[1]) {
		n := 1 + uchar.LengthIfByte(rest[1:], uchar.IsDigit)
		b.EmitAndAdvance(n, token.NameTypeBuiltin)
		return true
	}
	n := ScanIdentifier(rest, isLLVMKeywordStart, isLLVMKeywordChar)
	if n == 0 {
		return false
	}
	word := string(rest[:n])
	if llvmTypeKeywords[word] {
		b.EmitAndAdvance(n, token.NameTypeBuiltin)
		return true
	}
	return false
}

func tryLLVMNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), llvmNumberOptions())
	if !res.Matched() {
		return false
	}
	if res.Prefix > 0 {
		b.EmitAndAdvance(res.Prefix, token.NumberDecor)
	}
	if res.Integer > 0 {
		b.EmitAndAdvance(res.Integer, token.Number)
	}
	if res.RadixPoint > 0 {
		b.EmitAndAdvance(res.RadixPoint+res.Fractional, token.Number)
	}
	if res.ExponentSep > 0 {
		b.EmitAndAdvance(res.ExponentSep, token.NumberDelim)
		b.EmitAndAdvance(res.ExponentDigits, token.Number)
	}
	return true
}

func tryLLVMKeywordOrLabel(b *Base) bool {
	rest := b.Remainder()
	n := ScanIdentifier(rest, isLLVMKeywordStart, isLLVMKeywordChar)
	if n == 0 {
		return false
	}
	word := string(rest[:n])
	if b.Peek(n) == ':' {
		b.EmitAndAdvance(n, token.NameLabel)
		return true
	}
	if llvmKeywords[word] {
		b.EmitAndAdvance(n, token.Keyword)
		return true
	}
	b.EmitAndAdvance(n, token.Name)
	return true
}

func tryLLVMPunctuation(b *Base) bool {
	c := b.Peek(0)
	switch c {
	case '(', ')':
		b.EmitAndAdvance(1, token.SymParens)
	case '[', ']':
		b.EmitAndAdvance(1, token.SymSquare)
	case '{', '}':
		b.EmitAndAdvance(1, token.SymBrace)
	case '<', '>':
		b.EmitAndAdvance(1, token.SymOp)
	case '=', ',', '*', ':':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}
