package highlight

import (
	"opal/internal/numlit"
	"opal/internal/token"
	"opal/internal/uchar"
)

var rustKeywords = map[string]token.Category{
	"fn": token.Keyword, "let": token.Keyword, "mut": token.Keyword,
	"if": token.KeywordControl, "else": token.KeywordControl, "while": token.KeywordControl,
	"loop": token.KeywordControl, "for": token.KeywordControl, "in": token.Keyword,
	"match": token.KeywordControl, "return": token.KeywordControl, "break": token.KeywordControl,
	"continue": token.KeywordControl,
	"struct":   token.Keyword, "enum": token.Keyword, "trait": token.Keyword,
	"impl": token.Keyword, "pub": token.Keyword, "use": token.Keyword, "mod": token.Keyword,
	"const": token.Keyword, "static": token.Keyword, "type": token.Keyword, "where": token.Keyword,
	"as": token.Keyword, "dyn": token.Keyword, "move": token.Keyword, "ref": token.Keyword,
	"unsafe": token.Keyword, "async": token.Keyword, "await": token.KeywordControl,
	"self": token.KeywordThis, "Self": token.KeywordThis, "super": token.KeywordThis, "crate": token.KeywordThis,
	"true": token.Bool, "false": token.Bool,
}

var rustBuiltinTypes = map[string]bool{
	"str": true, "String": true, "bool": true, "char": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
	"f32": true, "f64": true,
}

var rustIllegalRawIdentifiers = map[string]bool{
	"crate": true, "self": true, "super": true, "Self": true, "_": true,
}

func rustNumberOptions() numlit.Options {
	return numlit.Options{
		Prefixes: []numlit.PrefixRule{
			{Text: "0x", Base: 16}, {Text: "0X", Base: 16},
			{Text: "0o", Base: 8}, {Text: "0O", Base: 8},
			{Text: "0b", Base: 2}, {Text: "0B", Base: 2},
		},
		ExponentSeparators: []numlit.PrefixRule{{Text: "e", Base: 10}, {Text: "E", Base: 10}},
		Suffixes: []string{
			"i8", "i16", "i32", "i64", "i128", "isize",
			"u8", "u16", "u32", "u64", "u128", "usize", "f32", "f64",
		},
		DefaultBase:    10,
		DigitSeparator: '_',
	}
}

func scanRust(src []byte, opts Options) (*token.Buffer, []Diagnostic) {
	b := NewBase(src, opts)
	for !b.Eof() {
		if n := uchar.LengthIfByte(b.Remainder(), uchar.IsWhitespace); n > 0 {
			b.Advance(n)
			continue
		}
		if n := matchLineComment(b.Remainder(), "//"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if n, _ := matchBlockComment(b.Remainder(), "/*", "*/"); n > 0 {
			b.EmitAndAdvance(n, token.Comment)
			continue
		}
		if tryRustRawString(b) {
			continue
		}
		if tryRustString(b) {
			continue
		}
		if tryRustCharOrLifetime(b) {
			continue
		}
		if tryRustNumber(b) {
			continue
		}
		if tryRustIdentifier(b) {
			continue
		}
		if tryCppPunctuation(b) { // shares the same C-family operator/punctuation set
			continue
		}
		b.FallbackOne()
	}
	return b.Buf, b.Diags
}

// rustRawStringOpener reports the prefix length and hash count of a raw
// string opener (r, br, or cr, followed by zero or more '#' and a '"'), or
// ok=false if rest does not start with one.
func rustRawStringOpener(rest []byte) (prefixLen, hashes int, ok bool) {
	for _, p := range []string{"br", "cr", "r"} {
		if !uchar.HasPrefix(rest, p) {
			continue
		}
		after := rest[len(p):]
		h := uchar.LengthIfByte(after, func(c byte) bool { return c == '#' })
		if h < len(after) && after[h] == '"' {
			return len(p), h, true
		}
	}
	return 0, 0, false
}

// rustPlainStringPrefix reports the length of a non-raw b/c string prefix
// immediately followed by a quote.
func rustPlainStringPrefix(rest []byte) int {
	for _, p := range []string{"b", "c"} {
		if uchar.HasPrefix(rest, p) && len(rest) > len(p) && rest[len(p)] == '"' {
			return len(p)
		}
	}
	return 0
}

func tryRustRawString(b *Base) bool {
	rest := b.Remainder()
	prefixLen, hashes, ok := rustRawStringOpener(rest)
	if !ok {
		return false
	}
	openerLen := prefixLen + hashes + 1
	closer := "\"" + repeatByte('#', hashes)
	body := rest[openerLen:]
	closeAt := -1
	for i := 0; i+len(closer) <= len(body); i++ {
		if string(body[i:i+len(closer)]) == closer {
			closeAt = i
			break
		}
	}
	b.EmitAndAdvance(openerLen, token.StringDelim)
	if closeAt < 0 {
		b.EmitAndAdvance(len(body), token.String)
		return true
	}
	if closeAt > 0 {
		b.EmitAndAdvance(closeAt, token.String)
	}
	b.EmitAndAdvance(len(closer), token.StringDelim)
	return true
}

func repeatByte(c byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	return string(buf)
}

func tryRustString(b *Base) bool {
	rest := b.Remainder()
	prefixLen := rustPlainStringPrefix(rest)
	if prefixLen == 0 && (len(rest) == 0 || rest[0] != '"') {
		return false
	}
	scanCLikeQuoted(b, prefixLen, '"', token.String)
	return true
}

// tryRustCharOrLifetime disambiguates ' as the start of a char literal, a
// lifetime, or a label, per §4.11: attempt a char literal first (it must
// have a closing quote); if that fails, the identifier after ' is a
// lifetime, or a label if followed by ':'.
func tryRustCharOrLifetime(b *Base) bool {
	if b.Peek(0) != '\'' {
		return false
	}
	rest := b.Remainder()
	if tryScanRustCharLiteral(b, rest) {
		return true
	}

	after := rest[1:]
	nameLen := ScanIdentifier(after, isRustIdentStart, isRustIdentCont)
	if nameLen == 0 {
		b.EmitAndAdvance(1, token.Error)
		return true
	}

	isLabel := b.Peek(1+nameLen) == ':' && b.Peek(1+nameLen+1) != ':'
	if isLabel {
		b.EmitAndAdvance(1, token.NameLabelDelim)
		b.EmitAndAdvance(nameLen, token.NameLabel)
	} else {
		b.EmitAndAdvance(1, token.NameLifetimeDelim)
		b.EmitAndAdvance(nameLen, token.NameLifetime)
	}
	return true
}

// tryScanRustCharLiteral attempts the pessimistic char-literal parse: '
// + (escape | one code point) + '. Returns false (consuming nothing) if no
// closing quote is found where expected, letting the caller fall back to
// lifetime/label parsing.
func tryScanRustCharLiteral(b *Base, rest []byte) bool {
	if len(rest) < 2 {
		return false
	}
	body := rest[1:]
	var contentLen int
	if body[0] == '\\' {
		n, _ := cEscapeLength(body)
		contentLen = n
	} else {
		_, n := uchar.DecodeOrReplacement(body)
		contentLen = n
	}
	if 1+contentLen >= len(rest) || rest[1+contentLen] != '\'' {
		return false
	}
	b.EmitAndAdvance(1, token.StringDelim)
	if body[0] == '\\' {
		matchAndEmitCEscape(b)
	} else {
		b.EmitAndAdvance(contentLen, token.String)
	}
	b.EmitAndAdvance(1, token.StringDelim)
	return true
}

func tryRustNumber(b *Base) bool {
	res := numlit.MatchCommonNumber(b.Remainder(), rustNumberOptions())
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
	if res.Suffix > 0 {
		b.EmitAndAdvance(res.Suffix, token.NumberDecor)
	}
	return true
}

func tryRustIdentifier(b *Base) bool {
	rest := b.Remainder()
	rawIdent := uchar.HasPrefix(rest, "r#")
	skip := 0
	if rawIdent {
		skip = 2
	}
	n := ScanIdentifier(rest[skip:], isRustIdentStart, isRustIdentCont)
	if n == 0 {
		return false
	}
	word := string(rest[skip : skip+n])

	if rawIdent {
		if rustIllegalRawIdentifiers[word] {
			b.EmitAndAdvance(skip+n, token.Error)
			return true
		}
		b.EmitAndAdvance(skip+n, token.Name)
		return true
	}

	total := n
	if b.Peek(n) == '!' {
		b.EmitAndAdvance(n, token.NameMacro)
		b.EmitAndAdvance(1, token.NameMacroDelim)
		return true
	}
	if cat, ok := rustKeywords[word]; ok {
		b.EmitAndAdvance(total, cat)
		return true
	}
	if rustBuiltinTypes[word] {
		b.EmitAndAdvance(total, token.NameTypeBuiltin)
		return true
	}
	b.EmitAndAdvance(total, token.Name)
	return true
}
