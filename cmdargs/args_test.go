package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_IterateTokens(t *testing.T) {
	t.Parallel()

	args := NewArgs([]string{"a:1", "7", "x", "b=2"}).WithKeyValueSeparators(":", "=")
	var seen []Kind
	args.IterateTokens(func(token Token) bool {
		seen = append(seen, token.Kind)
		return true
	})
	require.Equal(t, []Kind{KindNamed, KindInteger, KindText, KindNamed}, seen)

	seen = nil
	args.IterateTokens(func(token Token) bool {
		seen = append(seen, token.Kind)
		return false
	})
	require.Equal(t, []Kind{KindNamed}, seen)
}

func TestArgs_LookupNamed(t *testing.T) {
	t.Parallel()

	args := NewArgs([]string{"a:1", "b:x", "a:2", "a"}).WithKeyValueSeparators(":")

	token, has := args.LookupNamed("a")
	require.True(t, has)
	require.Equal(t, "2", token.Value)
	require.Equal(t, "a:2", token.Arg)

	_, has = args.LookupNamed("c")
	require.False(t, has)
}

func TestArgs_WithKeyValueSeparators(t *testing.T) {
	t.Parallel()

	seps := []string{":"}
	args := NewArgs([]string{"a:1"}).WithKeyValueSeparators(seps...)
	seps[0] = "="
	require.Equal(t, []string{":"}, args.KeyValueSeparators())

	_, has := NewArgs([]string{"a:1"}).LookupNamed("a")
	require.False(t, has)
}

func TestArgs_CountKinds(t *testing.T) {
	t.Parallel()

	counts := NewArgs([]string{"1", "2", "1.5", "x", "k=v", "k=w"}).
		WithKeyValueSeparators("=").
		CountKinds()
	require.Equal(t, map[Kind]int{
		KindInteger: 2,
		KindDecimal: 1,
		KindText:    1,
		KindNamed:   2,
	}, counts)
}
