package token

import "fmt"

// Token is a highlight token: a non-overlapping (begin, length, category)
// triple over the source buffer's byte offsets.
type Token struct {
	Begin    int
	Length   int
	Category Category
}

// End returns the exclusive end offset of the token.
func (t Token) End() int { return t.Begin + t.Length }

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.Category, t.Begin, t.End())
}
