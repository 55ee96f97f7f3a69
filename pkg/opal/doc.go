/*
Package opal provides a public API for lexical syntax highlighting of source
code in Go applications.

# Quick Start

The simplest way to highlight a snippet is by language tag:

	toks, _, ok := opal.Highlight("python", []byte(`def greet(name): return f"hi {name}"`), opal.Options{})
	if !ok {
	    log.Fatal("unrecognised language tag")
	}
	for _, t := range toks {
	    fmt.Println(t.Category, t.Begin, t.Length)
	}

# Supported Languages

	opal.C      opal.Cpp    opal.CSS    opal.HTML   opal.XML
	opal.JS     opal.TS     opal.JSX    opal.Kotlin opal.Python
	opal.Rust   opal.NASM   opal.LLVM   opal.Lua    opal.TeX
	opal.MMML   opal.COWEL  opal.Bash   opal.EBNF

# Options

Coalescing merges adjacent tokens of the same category into one, which is
usually what a renderer wants:

	opal.Highlight("c", src, opal.Options{Coalescing: true})

Strict restricts C/C++ keyword recognition to the standard feature mask,
excluding compiler extensions.

# Result Shape

Highlight never fails on malformed input — a lexical error becomes an Error
token rather than an aborted call. The returned bool is false only when the
language tag itself isn't one of the closed set above.

# Thread Safety

Highlight and HighlightLanguage hold no shared state between calls: two
calls on two buffers may run concurrently on separate goroutines without
synchronization.
*/
package opal
