package token

// Coalescing controls whether a particular Push may merge into the
// preceding token. Forced overrides a buffer configured without coalescing,
// for the rare case (CSS compound selectors, runs of fallback Error bytes) where
// consecutive same-category pieces must always render as one span
// regardless of the caller's global option.
type Coalescing int

const (
	// Default means "use the buffer's configured Coalesce option".
	Default Coalescing = iota
	Forced
	Suppressed
)

// Buffer is an append-only sequence of highlight tokens, the sink every
// per-language scanner appends to. When Coalesce is set, adjacent tokens of
// identical category that touch byte-for-byte are merged into one.
type Buffer struct {
	Coalesce bool
	tokens   []Token
}

// NewBuffer returns an empty Buffer with the given global coalescing policy.
func NewBuffer(coalesce bool) *Buffer {
	return &Buffer{Coalesce: coalesce}
}

// Push appends tok, merging it into the last token when coalescing applies:
// the buffer is non-empty, the last token's category matches, the two are
// byte-adjacent, and mode doesn't suppress it.
func (b *Buffer) Push(tok Token) {
	b.PushMode(tok, Default)
}

// PushMode is Push with an explicit per-call coalescing override.
func (b *Buffer) PushMode(tok Token, mode Coalescing) {
	if tok.Length <= 0 {
		return
	}
	coalesce := b.Coalesce
	switch mode {
	case Forced:
		coalesce = true
	case Suppressed:
		coalesce = false
	}

	if coalesce && len(b.tokens) > 0 {
		last := &b.tokens[len(b.tokens)-1]
		if last.Category == tok.Category && last.End() == tok.Begin {
			last.Length += tok.Length
			return
		}
	}
	b.tokens = append(b.tokens, tok)
}

// Tokens returns the accumulated token sequence. The slice is owned by the
// buffer and must not be mutated by the caller.
func (b *Buffer) Tokens() []Token {
	return b.tokens
}

// Len reports how many tokens are currently buffered.
func (b *Buffer) Len() int {
	return len(b.tokens)
}

// Coalesced runs the same merge rule over an already-produced token stream,
// as if it had been pushed with coalescing enabled from the start. Used to
// verify the coalescing-idempotence property: re-coalescing a coalesced
// stream is a no-op, and coalescing a non-coalesced stream post hoc matches
// what pushing with Coalesce=true would have produced.
func Coalesced(in []Token) []Token {
	out := make([]Token, 0, len(in))
	for _, tok := range in {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Category == tok.Category && last.End() == tok.Begin {
				last.Length += tok.Length
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
