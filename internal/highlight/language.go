package highlight

import "opal/internal/token"

// Language is the closed set of source languages the highlighter accepts.
type Language int

const (
	C Language = iota
	Cpp
	CSS
	HTML
	XML
	JS
	TS
	JSX
	Kotlin
	Python
	Rust
	NASM
	LLVM
	Lua
	TeX
	MMML
	COWEL
	Bash
	EBNF

	languageCount
)

var languageNames = [languageCount]string{
	C: "c", Cpp: "cpp", CSS: "css", HTML: "html", XML: "xml",
	JS: "js", TS: "ts", JSX: "jsx", Kotlin: "kotlin", Python: "python",
	Rust: "rust", NASM: "nasm", LLVM: "llvm", Lua: "lua", TeX: "tex",
	MMML: "mmml", COWEL: "cowel", Bash: "bash", EBNF: "ebnf",
}

func (l Language) String() string {
	if l >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "unknown"
}

// LanguageByTag resolves a language tag string (as used by the external
// entry point) to a Language, reporting false for anything unrecognised.
func LanguageByTag(tag string) (Language, bool) {
	for i, name := range languageNames {
		if name == tag {
			return Language(i), true
		}
	}
	return 0, false
}

type scannerFunc func(src []byte, opts Options) (*token.Buffer, []Diagnostic)

var dispatch = map[Language]scannerFunc{
	C:      scanC,
	Cpp:    scanCpp,
	CSS:    scanCSS,
	HTML:   scanHTML,
	XML:    scanXML,
	JS:     scanJS,
	TS:     scanTS,
	JSX:    scanJSX,
	Kotlin: scanKotlin,
	Python: scanPython,
	Rust:   scanRust,
	NASM:   scanNASM,
	LLVM:   scanLLVM,
	Lua:    scanLua,
	TeX:    scanTeX,
	MMML:   scanMMML,
	COWEL:  scanCOWEL,
	Bash:   scanBash,
	EBNF:   scanEBNF,
}

// Highlight is the external entry point: highlight(language_tag,
// source_bytes, options, sink) -> bool from §6. It always returns true —
// there is no global failure mode, only local errors painted as Error
// tokens (§7) — except when the language tag itself is unrecognised.
func Highlight(lang Language, src []byte, opts Options) ([]token.Token, []Diagnostic, bool) {
	scan, ok := dispatch[lang]
	if !ok {
		return nil, nil, false
	}
	buf, diags := scan(src, opts)
	return buf.Tokens(), diags, true
}
