package dlx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var knuthRows = [][]int{
	{2, 4},
	{0, 3, 6},
	{1, 2, 5},
	{0, 3, 5},
	{1, 6},
	{3, 4, 6},
}

// TestSearchProtocol walks the full resumable-search contract: updates
// is positive while solutions remain, goes negative exactly on
// exhaustion, and is reset to its magnitude when the next call
// restarts the search.
func TestSearchProtocol(t *testing.T) {
	require := require.New(t)

	p := NewX(7, 0, itemOpts(knuthRows), SeqOrder())
	solver := NewSolver(p, nil)
	chooser := NewMRVChooser(PreferAny(), NoTiebreak())

	require.True(solver.NextSolution(chooser))
	afterFirst := solver.GetUpdates()
	require.Positive(afterFirst)

	require.False(solver.NextSolution(chooser))
	exhausted := solver.GetUpdates()
	require.Negative(exhausted)
	require.GreaterOrEqual(-exhausted, afterFirst, "updates may not decrease during a search")
	require.Equal(0, solver.l)
	require.False(solver.restart)

	// The next call restarts from scratch and finds the same solution.
	require.True(solver.NextSolution(chooser))
	require.Equal([]int{0, 3, 4}, append([]int(nil), solver.GetSolution()...))
	require.Greater(solver.GetUpdates(), -exhausted)
}

// TestSeqDeterminism: two solvers built from the same input with Seq
// order and identical choosers emit identical solution sequences, in
// order, not just as sets.
func TestSeqDeterminism(t *testing.T) {
	require := require.New(t)

	rows := [][]int{
		{0, 1},
		{2, 3},
		{0, 2},
		{1, 3},
		{0, 3},
		{1, 2},
	}
	run := func() [][]int {
		p := NewX(4, 0, itemOpts(rows), SeqOrder())
		solver := NewSolver(p, nil)
		chooser := NewMRVChooser(PreferAny(), NoTiebreak())
		var seq [][]int
		for solver.NextSolution(chooser) {
			seq = append(seq, append([]int(nil), solver.GetSolution()...))
		}
		return seq
	}
	first := run()
	require.NotEmpty(first)
	require.Equal(first, run())
}

// TestRndOrderSeedDeterminism: with Rnd insertion order the solution
// sequence is a pure function of the seed, and exhaustion still
// restores the arena bit-for-bit.
func TestRndOrderSeedDeterminism(t *testing.T) {
	require := require.New(t)

	run := func(seed uint32) ([][]int, *problemX) {
		p := NewX(7, 0, itemOpts(knuthRows), RndOrder(NewRng(seed)))
		solver := NewSolver(p, nil)
		chooser := NewMRVChooser(PreferAny(), RandomTiebreak(seed))
		var seq [][]int
		for solver.NextSolution(chooser) {
			seq = append(seq, append([]int(nil), solver.GetSolution()...))
		}
		return seq, p
	}

	p := NewX(7, 0, itemOpts(knuthRows), RndOrder(NewRng(99)))
	itemsBefore := p.items.snapshot()
	optsBefore := p.opts.snapshot()

	a, _ := run(99)
	b, pb := run(99)
	require.Equal(a, b)
	require.Equal(itemsBefore, pb.items.snapshot())
	require.Equal(optsBefore, pb.opts.snapshot())
}

// TestUncoloredSecondaryConflict: without colors, two chosen options may
// never share a secondary item at all. This option set only has covers
// of the primary items that collide on x or y, so the search must come
// up empty and still restore the arena.
func TestUncoloredSecondaryConflict(t *testing.T) {
	require := require.New(t)

	// p q r | x y
	options := [][]OptEntry{
		{{Item: 0}, {Item: 1}, {Item: 3}, {Item: 4}}, // p q x y
		{{Item: 0}, {Item: 2}, {Item: 3}, {Item: 4}}, // p r x y
		{{Item: 0}, {Item: 3}},                       // p x
		{{Item: 1}, {Item: 3}},                       // q x
		{{Item: 2}, {Item: 4}},                       // r y
	}
	p := NewX(3, 2, options, SeqOrder())

	itemsBefore := p.items.snapshot()
	optsBefore := p.opts.snapshot()

	got := solveAll(t, p, NewMRVChooser(PreferAny(), NoTiebreak()))
	require.Empty(got)
	require.Negative(p.Updates())
	require.Equal(itemsBefore, p.items.snapshot())
	require.Equal(optsBefore, p.opts.snapshot())
}
