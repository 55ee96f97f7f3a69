// Command opal dumps a source file to the terminal with ANSI syntax
// highlighting, picking the language from a file extension or an explicit
// -lang flag.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"opal/pkg/opal"
)

var extToTag = map[string]string{
	".c": "c", ".h": "c",
	".cpp": "cpp", ".cc": "cpp", ".cxx": "cpp", ".hpp": "cpp",
	".css":  "css",
	".html": "html", ".htm": "html",
	".xml":  "xml",
	".js":   "js", ".mjs": "js",
	".ts":     "ts",
	".jsx":    "jsx", ".tsx": "jsx",
	".kt":     "kotlin", ".kts": "kotlin",
	".py":     "python",
	".rs":     "rust",
	".asm":    "nasm", ".nasm": "nasm", ".s": "nasm",
	".ll":     "llvm",
	".lua":    "lua",
	".tex":    "tex",
	".mmml":   "mmml",
	".cow":    "cowel", ".cowel": "cowel",
	".sh":     "bash", ".bash": "bash",
	".ebnf":   "ebnf",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: opal [-lang tag] <file>")
		os.Exit(1)
	}

	args := os.Args[1:]
	langFlag := ""
	if len(args) >= 2 && args[0] == "-lang" {
		langFlag = args[1]
		args = args[2:]
	}
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: opal [-lang tag] <file>")
		os.Exit(1)
	}
	filename := args[0]

	tag := langFlag
	if tag == "" {
		tag = extToTag[strings.ToLower(filepath.Ext(filename))]
	}
	if tag == "" {
		fmt.Fprintf(os.Stderr, "opal: cannot infer language for %q, pass -lang\n", filename)
		os.Exit(1)
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opal: %v\n", err)
		os.Exit(1)
	}

	toks, _, ok := opal.Highlight(tag, src, opal.Options{Coalescing: true})
	if !ok {
		fmt.Fprintf(os.Stderr, "opal: unrecognised language tag %q\n", tag)
		os.Exit(1)
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	dump(os.Stdout, src, toks, colorize, width)
}

func dump(w *os.File, src []byte, toks []opal.Token, colorize bool, width int) {
	pos := 0
	col := 0
	emit := func(text string, code string) {
		for _, line := range strings.SplitAfter(text, "\n") {
			if line == "" {
				continue
			}
			if colorize && code != "" {
				fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", code, line)
			} else {
				fmt.Fprint(w, line)
			}
			if strings.HasSuffix(line, "\n") {
				col = 0
				continue
			}
			col += len(line)
			if width > 0 && col >= width {
				fmt.Fprintln(w)
				col = 0
			}
		}
	}

	for _, t := range toks {
		if t.Begin > pos {
			emit(string(src[pos:t.Begin]), "")
		}
		emit(string(opal.Text(src, t)), ansiCode(t.Category))
		pos = t.End()
	}
	if pos < len(src) {
		emit(string(src[pos:]), "")
	}
}

// ansiCode maps a highlight category to a 256-color-safe SGR code. Kept
// deliberately small: a handful of hues is enough to make structure legible
// without requiring truecolor support.
func ansiCode(c opal.Category) string {
	switch c {
	case opal.Comment, opal.CommentDelim:
		return "2;37"
	case opal.String, opal.StringDelim, opal.StringDecor:
		return "32"
	case opal.StringEscape, opal.Escape:
		return "1;32"
	case opal.StringInterpolation, opal.StringInterpolationDelim:
		return "1;36"
	case opal.Number, opal.NumberDelim, opal.NumberDecor:
		return "33"
	case opal.Keyword, opal.KeywordControl, opal.KeywordType, opal.KeywordThis:
		return "1;35"
	case opal.Bool, opal.Null:
		return "35"
	case opal.NameType, opal.NameTypeBuiltin:
		return "36"
	case opal.NameMacro, opal.NameMacroDelim, opal.Macro:
		return "1;33"
	case opal.NameLabel, opal.NameLabelDelim:
		return "4;33"
	case opal.NameLifetime, opal.NameLifetimeDelim:
		return "36"
	case opal.MarkupTag:
		return "1;34"
	case opal.MarkupAttr:
		return "34"
	case opal.SymOp, opal.SymPunc, opal.SymParens, opal.SymSquare, opal.SymBrace:
		return "37"
	case opal.Error:
		return "1;41;37"
	default:
		return ""
	}
}
