package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var nasmRegisters = map[string]bool{
	"al": true, "ah": true, "ax": true, "eax": true, "rax": true,
	"bl": true, "bh": true, "bx": true, "ebx": true, "rbx": true,
	"cl": true, "ch": true, "cx": true, "ecx": true, "rcx": true,
	"dl": true, "dh": true, "dx": true, "edx": true, "rdx": true,
	"si": true, "esi": true, "rsi": true, "di": true, "edi": true, "rdi": true,
	"sp": true, "esp": true, "rsp": true, "bp": true, "ebp": true, "rbp": true,
	"ip": true, "eip": true, "rip": true,
	"cs": true, "ds": true, "es": true, "fs": true, "gs": true, "ss": true,
	"r8": true, "r9": true, "r10": true, "r11": true, "r12": true, "r13": true, "r14": true, "r15": true,
	"xmm0": true, "xmm1": true, "xmm2": true, "xmm3": true, "xmm4": true, "xmm5": true, "xmm6": true, "xmm7": true,
}

var nasmDirectives = map[string]bool{
	"section": true, "segment": true, "global": true, "extern": true,
	"bits": true, "org": true, "align": true, "default": true,
	"db": true, "dw": true, "dd": true, "dq": true, "dt": true,
	"resb": true, "resw": true, "resd": true, "resq": true, "rest": true,
	"equ": true, "times": true, "incbin": true, "struc": true, "endstruc": true,
	"%define": true, "%include": true, "%ifdef": true, "%endif": true, "%macro": true, "%endmacro": true,
}

var nasmOperatorKeywords = map[string]bool{
	"byte": true, "word": true, "dword": true, "qword": true, "tword": true, "oword": true, "yword": true,
	"near": true, "far": true, "short": true, "ptr": true, "seg": true, "wrt": true,
	"strict": true, "rel": true, "abs": true,
}

func nasmSuffixOptions() numlit.SuffixOptions {
	return numlit.SuffixOptions{
		Suffixes: []numlit.PrefixRule{
			{Text: "h", Base: 16}, {Text: "H", Base: 16},
			{Text: "q", Base: 8}, {Text: "Q", Base: 8}, {Text: "o", Base: 8}, {Text: "O", Base: 8},
			{Text: "b", Base: 2}, {Text: "B", Base: 2},
			{Text: "d", Base: 10}, {Text: "D", Base: 10},
		},
		DefaultBase: 10,
	}
}

func nasmPrefixNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
			{Text: "0b", Base: 2}, {Text: "0B", Base: 2},
			{Text: "0o", Base: 8}, {Text: "0O", Base: 8},
		},
		DefaultBase: 10,
	}
}

func scanNASM(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
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
		if tryNASMString(b) {
			continue
		}
		if tryNASMNumber(b) {
			continue
		}
		if tryNASMIdentifier(b) {
			continue
		}
		if tryNASMPunctuation(b) {
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

func tryNASMString(b *Base) bool {
	quote := b.Peek(0)
	if quote != '"' && quote != '\'' && quote != '`' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	for !b.Eof() {
		c := b.Peek(0)
		switch {
		case c == quote:
			b.EmitAndAdvance(1, token.StringDelim)
			return true
		case c == '\n':
			return true
		case c == '\\' && quote == '`':
			matchAndEmitCEscape(b)
		default:
			n := uchar.LengthIfByte(b.Remainder(), func(c byte) bool {
				if c == quote || c == '\n' {
					return false
				}
				return !(quote == '`' && c == '\\')
			})
			if n == 0 {
				n = 1
			}
			b.EmitAndAdvance(n, token.String)
		}
	}
	return true
}

// tryNASMNumber tries the explicit 0x/0b/0o-prefixed form first (only when
// such a prefix is actually present), then falls back to the NASM-style
// trailing-radix suffix form (e.g. 0ffh).
func tryNASMNumber(b *Base) bool {
	rest := b.Remainder()
	hasPrefix := false
	for _, p := range nasmPrefixNumberOptions().Prefixes {
		if uchar.HasPrefixFold(rest, p.Text) {
			hasPrefix = true
			break
		}
	}
	if hasPrefix {
		res := numlit.MatchCommonNumber(rest, nasmPrefixNumberOptions())
		if res.Prefix > 0 {
			b.EmitAndAdvance(res.Prefix, token.NumberDecor)
		}
		b.EmitAndAdvance(res.Integer, token.Number)
		return true
	}
	res := numlit.MatchSuffixNumber(rest, nasmSuffixOptions())
	if !res.Matched() {
		return false
	}
	b.EmitAndAdvance(res.Digits, token.Number)
	if res.Suffix > 0 {
		b.EmitAndAdvance(res.Suffix, token.NumberDecor)
	}
	return true
}

func tryNASMIdentifier(b *Base) bool {
	rest := b.Remainder()
	n := ScanIdentifier(rest, isNASMIdentStart, isNASMIdentCont)
	if n == 0 {
		if rest[0] == '%' {
			n = 1 + ScanIdentifier(rest[1:], isNASMIdentStart, isNASMIdentCont)
			if n == 1 {
				return false
			}
		} else {
			return false
		}
	}
	word := string(rest[:n])
	lower := asciiToLower(word)
	switch {
	case nasmRegisters[lower]:
		b.EmitAndAdvance(n, token.NameTypeBuiltin)
	case nasmDirectives[lower]:
		b.EmitAndAdvance(n, token.Keyword)
	case nasmOperatorKeywords[lower]:
		b.EmitAndAdvance(n, token.KeywordType)
	default:
		if b.Peek(n) == ':' {
			b.EmitAndAdvance(n, token.NameLabel)
		} else {
			b.EmitAndAdvance(n, token.Name)
		}
	}
	return true
}

func asciiToLower(s string) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = uchar.ToLower(s[i])
	}
	return string(buf)
}

func tryNASMPunctuation(b *Base) bool {
	c := b.Peek(0)
	switch c {
	case '(', ')':
		b.EmitAndAdvance(1, token.SymParens)
	case '[', ']':
		b.EmitAndAdvance(1, token.SymSquare)
	case '{', '}':
		b.EmitAndAdvance(1, token.SymBrace)
	case '+', '-', '*', '/', '%', '<', '>', '=', '&', '|', '^', '~', '!':
		b.EmitAndAdvance(1, token.SymOp)
	case ',', ';', ':':
		b.EmitAndAdvance(1, token.SymPunc)
	default:
		return false
	}
	return true
}
