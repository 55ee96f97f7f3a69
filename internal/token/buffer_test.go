package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushWithoutCoalescing(t *testing.T) {
	b := NewBuffer(false)
	b.Push(Token{Begin: 0, Length: 3, Category: Keyword})
	b.Push(Token{Begin: 3, Length: 2, Category: Keyword})

	require.Len(t, b.Tokens(), 2)
}

func TestPushCoalescesAdjacentSameCategory(t *testing.T) {
	b := NewBuffer(true)
	b.Push(Token{Begin: 0, Length: 3, Category: Number})
	b.Push(Token{Begin: 3, Length: 2, Category: Number})

	require.Len(t, b.Tokens(), 1)
	assert.Equal(t, Token{Begin: 0, Length: 5, Category: Number}, b.Tokens()[0])
}

func TestPushDoesNotCoalesceAcrossGapOrCategory(t *testing.T) {
	b := NewBuffer(true)
	b.Push(Token{Begin: 0, Length: 1, Category: Number})
	b.Push(Token{Begin: 2, Length: 1, Category: Number}) // gap at offset 1
	require.Len(t, b.Tokens(), 2)

	b2 := NewBuffer(true)
	b2.Push(Token{Begin: 0, Length: 1, Category: Number})
	b2.Push(Token{Begin: 1, Length: 1, Category: String})
	require.Len(t, b2.Tokens(), 2)
}

func TestPushModeForcedOverridesDisabledCoalescing(t *testing.T) {
	b := NewBuffer(false)
	b.PushMode(Token{Begin: 0, Length: 1, Category: MarkupTag}, Forced)
	b.PushMode(Token{Begin: 1, Length: 1, Category: MarkupTag}, Forced)

	require.Len(t, b.Tokens(), 1)
	assert.Equal(t, 2, b.Tokens()[0].Length)
}

func TestPushModeSuppressedOverridesEnabledCoalescing(t *testing.T) {
	b := NewBuffer(true)
	b.PushMode(Token{Begin: 0, Length: 1, Category: Error}, Suppressed)
	b.PushMode(Token{Begin: 1, Length: 1, Category: Error}, Suppressed)

	require.Len(t, b.Tokens(), 2)
}

func TestZeroLengthPushIsIgnored(t *testing.T) {
	b := NewBuffer(true)
	b.Push(Token{Begin: 0, Length: 0, Category: Error})
	require.Len(t, b.Tokens(), 0)
}

func TestCoalescedIdempotence(t *testing.T) {
	raw := []Token{
		{Begin: 0, Length: 1, Category: Number},
		{Begin: 1, Length: 1, Category: Number},
		{Begin: 2, Length: 1, Category: String},
		{Begin: 3, Length: 1, Category: String},
		{Begin: 5, Length: 1, Category: String}, // gap: offset 4 missing
	}
	once := Coalesced(raw)
	twice := Coalesced(once)
	assert.Equal(t, once, twice)

	require.Len(t, once, 3)
	assert.Equal(t, 2, once[0].Length)
	assert.Equal(t, 2, once[1].Length)
	assert.Equal(t, 1, once[2].Length)
}
