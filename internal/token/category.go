// Package token defines the highlight token model shared by every
// per-language scanner: the closed category enumeration, the token triple
// itself, and the coalescing emission buffer scanners append to.
package token

// Category is a closed enumeration of visual roles a token can play. It
// classifies what a token LOOKS like to a reader, never what it means
// semantically — the highlighter never resolves names or builds an AST.
type Category int

const (
	Comment Category = iota
	CommentDelim

	String
	StringDelim
	StringEscape
	StringDecor
	StringInterpolation
	StringInterpolationDelim

	Number
	NumberDelim
	NumberDecor

	Keyword
	KeywordControl
	KeywordType
	KeywordThis

	Bool
	Null

	Name
	NameType
	NameTypeBuiltin
	NameMacro
	NameMacroDelim
	NameLabel
	NameLabelDelim
	NameLifetime
	NameLifetimeDelim

	ID
	IDFunctionUse

	Macro

	MarkupTag
	MarkupAttr

	Escape

	SymOp
	SymPunc
	SymParens
	SymSquare
	SymBrace

	Value

	Error

	categoryCount
)

var categoryNames = [categoryCount]string{
	Comment:                  "comment",
	CommentDelim:             "comment_delim",
	String:                   "string",
	StringDelim:              "string_delim",
	StringEscape:             "string_escape",
	StringDecor:              "string_decor",
	StringInterpolation:      "string_interpolation",
	StringInterpolationDelim: "string_interpolation_delim",
	Number:                   "number",
	NumberDelim:              "number_delim",
	NumberDecor:              "number_decor",
	Keyword:                  "keyword",
	KeywordControl:           "keyword_control",
	KeywordType:              "keyword_type",
	KeywordThis:              "keyword_this",
	Bool:                     "bool",
	Null:                     "null",
	Name:                     "name",
	NameType:                 "name_type",
	NameTypeBuiltin:          "name_type_builtin",
	NameMacro:                "name_macro",
	NameMacroDelim:           "name_macro_delim",
	NameLabel:                "name_label",
	NameLabelDelim:           "name_label_delim",
	NameLifetime:             "name_lifetime",
	NameLifetimeDelim:        "name_lifetime_delim",
	ID:                       "id",
	IDFunctionUse:            "id_function_use",
	Macro:                    "macro",
	MarkupTag:                "markup_tag",
	MarkupAttr:               "markup_attr",
	Escape:                   "escape",
	SymOp:                    "sym_op",
	SymPunc:                  "sym_punc",
	SymParens:                "sym_parens",
	SymSquare:                "sym_square",
	SymBrace:                 "sym_brace",
	Value:                    "value",
	Error:                    "error",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}
