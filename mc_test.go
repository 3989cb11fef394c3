package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMultiplicityColorExtension exercises both extensions at once: 3
// primary items (one ranged 2..3) plus 2 secondary items, colored
// options, a single solution.
func TestMultiplicityColorExtension(t *testing.T) {
	require := require.New(t)

	bounds := [][2]int{{1, 1}, {1, 1}, {2, 3}}
	options := [][]OptEntry{
		{{Item: 0}, {Item: 1}, {Item: 3}, {Item: 4}},
		{{Item: 0}, {Item: 2}, {Item: 3, Color: 1}, {Item: 4, Color: 1}},
		{{Item: 2}, {Item: 3}},
		{{Item: 1}, {Item: 3, Color: 1}},
		{{Item: 2}, {Item: 4, Color: 1}},
	}
	p := NewMC(bounds, 2, options, SeqOrder())

	itemsBefore := append([]int(nil), p.items.snapshot()...)
	optsBefore := append([]int(nil), p.opts.snapshot()...)

	got := solveAll(t, p, NewMRVChooser(PreferAny(), NoTiebreak()))
	sort.Slice(got, func(a, b int) bool { return lessIntSlice(got[a], got[b]) })

	require.Equal([][]int{{1, 3, 4}}, got)
	require.Equal(itemsBefore, p.items.snapshot())
	require.Equal(optsBefore, p.opts.snapshot())
}
