package opal

import (
	"opal/internal/highlight"
	"opal/internal/token"
)

// Language is the closed set of source languages the highlighter accepts.
type Language = highlight.Language

const (
	C      = highlight.C
	Cpp    = highlight.Cpp
	CSS    = highlight.CSS
	HTML   = highlight.HTML
	XML    = highlight.XML
	JS     = highlight.JS
	TS     = highlight.TS
	JSX    = highlight.JSX
	Kotlin = highlight.Kotlin
	Python = highlight.Python
	Rust   = highlight.Rust
	NASM   = highlight.NASM
	LLVM   = highlight.LLVM
	Lua    = highlight.Lua
	TeX    = highlight.TeX
	MMML   = highlight.MMML
	COWEL  = highlight.COWEL
	Bash   = highlight.Bash
	EBNF   = highlight.EBNF
)

// LanguageByTag resolves a language tag string ("python", "cpp", ...) to a
// Language, reporting false for anything outside the closed set.
func LanguageByTag(tag string) (Language, bool) { return highlight.LanguageByTag(tag) }

// Category classifies what a token looks like to a reader: comment, string,
// keyword, and so on. It never encodes meaning the highlighter would need a
// parser or symbol table to know.
type Category = token.Category

const (
	Comment                  = token.Comment
	CommentDelim             = token.CommentDelim
	String                   = token.String
	StringDelim              = token.StringDelim
	StringEscape             = token.StringEscape
	StringDecor              = token.StringDecor
	StringInterpolation      = token.StringInterpolation
	StringInterpolationDelim = token.StringInterpolationDelim
	Number                   = token.Number
	NumberDelim              = token.NumberDelim
	NumberDecor              = token.NumberDecor
	Keyword                  = token.Keyword
	KeywordControl           = token.KeywordControl
	KeywordType              = token.KeywordType
	KeywordThis              = token.KeywordThis
	Bool                     = token.Bool
	Null                     = token.Null
	Name                     = token.Name
	NameType                 = token.NameType
	NameTypeBuiltin          = token.NameTypeBuiltin
	NameMacro                = token.NameMacro
	NameMacroDelim           = token.NameMacroDelim
	NameLabel                = token.NameLabel
	NameLabelDelim           = token.NameLabelDelim
	NameLifetime             = token.NameLifetime
	NameLifetimeDelim        = token.NameLifetimeDelim
	ID                       = token.ID
	IDFunctionUse            = token.IDFunctionUse
	Macro                    = token.Macro
	MarkupTag                = token.MarkupTag
	MarkupAttr               = token.MarkupAttr
	Escape                   = token.Escape
	SymOp                    = token.SymOp
	SymPunc                  = token.SymPunc
	SymParens                = token.SymParens
	SymSquare                = token.SymSquare
	SymBrace                 = token.SymBrace
	Value                    = token.Value
	Error                    = token.Error
)

// Token is a highlight token: a non-overlapping (begin, length, category)
// triple over the source buffer's byte offsets.
type Token = token.Token

// Diagnostic is a non-fatal note attached to a highlight run — a malformed
// construct is always painted as an Error token regardless of whether a
// caller looks at these.
type Diagnostic = highlight.Diagnostic

// Options configures a single Highlight call.
type Options struct {
	// Coalescing merges adjacent same-category tokens on emit.
	Coalescing bool
	// Strict, where applicable (currently C/C++), restricts keyword
	// recognition to the standard feature mask and excludes extensions.
	Strict bool
}

func (o Options) toInternal() highlight.Options {
	return highlight.Options{Coalescing: o.Coalescing, Strict: o.Strict}
}

// Highlight scans src as the language named by tag and returns its tokens in
// non-decreasing begin order. ok is false only when tag isn't one of the
// closed set of supported languages; any lexical error within src still
// produces a complete token stream, with the offending bytes painted as
// Error tokens.
func Highlight(tag string, src []byte, opts Options) (toks []Token, diags []Diagnostic, ok bool) {
	lang, ok := LanguageByTag(tag)
	if !ok {
		return nil, nil, false
	}
	return HighlightLanguage(lang, src, opts)
}

// HighlightLanguage is Highlight for a caller that already has a resolved
// Language rather than a tag string.
func HighlightLanguage(lang Language, src []byte, opts Options) (toks []Token, diags []Diagnostic, ok bool) {
	return highlight.Highlight(lang, src, opts.toInternal())
}

// Text returns the source slice a token spans.
func Text(src []byte, t Token) []byte {
	return src[t.Begin:t.End()]
}
