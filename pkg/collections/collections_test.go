package collections_test

import (
	"strings"
	"testing"

	"github.com/alkime/cotola/pkg/collections"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		ints := []int{1, 2, 3, 4}
		squared := collections.Apply(ints, func(i int) int {
			return i * i
		})

		require.Equal(t, []int{1, 4, 9, 16}, squared)
	})

	t.Run("structs", func(t *testing.T) {
		type option struct {
			Value string
			Label string
		}

		opts := []option{
			{Value: "casual", Label: "カジュアル"},
			{Value: "formal", Label: "フォーマル"},
		}

		values := collections.Apply(opts, func(o option) string {
			return o.Value
		})
		require.Equal(t, []string{"casual", "formal"}, values)
	})

	t.Run("empty input", func(t *testing.T) {
		out := collections.Apply([]int{}, func(i int) string { return "" })
		assert.Empty(t, out)
	})
}

func TestFind(t *testing.T) {
	words := []string{"note", "threads", "facebook"}

	got, ok := collections.Find(words, func(s string) bool { return strings.HasPrefix(s, "th") })
	assert.True(t, ok)
	assert.Equal(t, "threads", got)

	got, ok = collections.Find(words, func(s string) bool { return s == "line" })
	assert.False(t, ok)
	assert.Empty(t, got)
}
