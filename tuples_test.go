package mf2lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTuplesCount(t *testing.T) {
	sets := [][]PluralCategory{
		{PluralOther},
		english,
		{PluralOne, PluralFew, PluralOther},
		czech,
		{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther},
	}

	for _, categories := range sets {
		for n := 1; n <= 3; n++ {
			tuples := CategoryTuples(n, categories)

			want := 1
			for range n {
				want *= len(categories)
			}
			require.Len(t, tuples, want, "n=%d categories=%v", n, categories)

			seen := make(map[string]struct{}, len(tuples))
			for _, tuple := range tuples {
				require.Len(t, tuple, n)
				id := tupleID(tuple)
				_, dup := seen[id]
				require.False(t, dup, "duplicate tuple %v", tuple)
				seen[id] = struct{}{}
			}
		}
	}
}

func TestCategoryTuplesOrder(t *testing.T) {
	tuples := CategoryTuples(2, english)

	got := make([]string, len(tuples))
	for i, tuple := range tuples {
		got[i] = strings.ReplaceAll(tupleID(tuple), "\x00", ",")
	}

	assert.Equal(t, []string{"one,one", "one,other", "other,one", "other,other"}, got)
}

func TestCategoryTuplesEdgeCases(t *testing.T) {
	assert.Nil(t, CategoryTuples(0, czech))
	assert.Nil(t, CategoryTuples(-1, czech))
	assert.Nil(t, CategoryTuples(2, nil))

	tuples := CategoryTuples(1, []PluralCategory{PluralOne, PluralOne, PluralOther})
	assert.Equal(t, [][]PluralCategory{{PluralOne}, {PluralOther}}, tuples)
}
