package question

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBank_IsValid(t *testing.T) {
	b := DefaultBank()
	require.Greater(t, b.Len(), 0)

	for i := 0; i < b.Len(); i++ {
		q := b.Draw()
		require.NotEmpty(t, q.Prompt)
		require.GreaterOrEqual(t, q.Correct, 0)
		require.LessOrEqual(t, q.Correct, 3)
		for _, opt := range q.Options {
			require.NotEmpty(t, opt)
		}
	}
}

func TestDraw_ReturnsCopy(t *testing.T) {
	b := NewBank([]Question{{
		Prompt:  "p",
		Options: [4]string{"a", "b", "c", "d"},
		Correct: 1,
	}})

	q := b.Draw()
	q.Prompt = "mutated"
	q.Options[0] = "mutated"

	again := b.Draw()
	require.Equal(t, "p", again.Prompt)
	require.Equal(t, "a", again.Options[0])
}

func TestDraw_CoversBank(t *testing.T) {
	b := NewBank([]Question{
		{Prompt: "one", Options: [4]string{"a", "b", "c", "d"}},
		{Prompt: "two", Options: [4]string{"a", "b", "c", "d"}},
	})

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[b.Draw().Prompt] = true
	}
	require.True(t, seen["one"])
	require.True(t, seen["two"])
}
