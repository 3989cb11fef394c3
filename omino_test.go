package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Polyomino tiling fixture. A placement option names the cells a piece
// occupies plus one item per piece, so a tiling is an exact cover of
// every cell and every piece.

type gridCell struct{ x, y int }

type omino struct {
	c          []gridCell
	xmax, ymax int
}

func newOmino(cells []gridCell) omino {
	c := append([]gridCell(nil), cells...)
	sort.Slice(c, func(a, b int) bool {
		if c[a].x != c[b].x {
			return c[a].x < c[b].x
		}
		return c[a].y < c[b].y
	})
	xmin, xmax := c[0].x, c[len(c)-1].x
	ymin, ymax := c[0].y, c[0].y
	for _, cl := range c {
		if cl.y < ymin {
			ymin = cl.y
		}
		if cl.y > ymax {
			ymax = cl.y
		}
	}
	for i := range c {
		c[i] = gridCell{c[i].x - xmin, c[i].y - ymin}
	}
	return omino{c: c, xmax: xmax - xmin, ymax: ymax - ymin}
}

func (o omino) rotate() omino {
	out := make([]gridCell, len(o.c))
	for i, cl := range o.c {
		out[i] = gridCell{cl.y, o.xmax - cl.x}
	}
	return newOmino(out)
}

func (o omino) reflect() omino {
	out := make([]gridCell, len(o.c))
	for i, cl := range o.c {
		out[i] = gridCell{cl.y, cl.x}
	}
	return newOmino(out)
}

func (o omino) eq(p omino) bool {
	if len(o.c) != len(p.c) {
		return false
	}
	for i := range o.c {
		if o.c[i] != p.c[i] {
			return false
		}
	}
	return true
}

func containsOmino(os []omino, o omino) bool {
	for _, x := range os {
		if x.eq(o) {
			return true
		}
	}
	return false
}

// bases returns every distinct orientation of o under rotation and
// reflection.
func (o omino) bases() []omino {
	b := []omino{o}
	for k := 0; k < 3; k++ {
		r := b[len(b)-1].rotate()
		if containsOmino(b, r) {
			break
		}
		b = append(b, r)
	}
	refl := b[0].reflect()
	if !containsOmino(b, refl) {
		b = append(b, refl)
		for k := 0; k < 3; k++ {
			r := b[len(b)-1].rotate()
			if containsOmino(b, r) {
				break
			}
			b = append(b, r)
		}
	}
	return b
}

// options enumerates every placement of o fully inside the box, each as
// the occupied cell items (y*cols+x) plus the piece item (cells+name).
func (o omino) options(name, rows, cols int) [][]int {
	return o.optionsWithin(name, 0, 0, cols-1, rows-1, rows, cols)
}

// optionsWithin restricts placements to the sub-box
// [xmin..xmax]x[ymin..ymax]; shrinking it for one piece is how a
// tiling's board symmetry gets broken.
func (o omino) optionsWithin(name, xmin, ymin, xmax, ymax, rows, cols int) [][]int {
	var os [][]int
	for yd := ymin; yd <= ymax-o.ymax; yd++ {
		for xd := xmin; xd <= xmax-o.xmax; xd++ {
			cells := make([]int, 0, len(o.c)+1)
			for _, cl := range o.c {
				cells = append(cells, (cl.y+yd)*cols+(cl.x+xd))
			}
			cells = append(cells, name+rows*cols)
			os = append(os, cells)
		}
	}
	return os
}

func pentominoes() []omino {
	shapes := [][]gridCell{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, // O
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}, // P
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}, // Q
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}, // R
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}}, // S
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}, // T
		{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, // U
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, // V
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}, // W
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}, // X
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}, // Y
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}}, // Z
	}
	out := make([]omino, len(shapes))
	for i, s := range shapes {
		out[i] = newOmino(s)
	}
	return out
}

// pent6x10Options builds the placement options for tiling a 6x10 board
// with the 12 pentominoes. The fully symmetric X piece is confined to
// one quadrant, so each of the board's four symmetric variants of a
// tiling is counted once.
func pent6x10Options() [][]int {
	const rows, cols = 6, 10
	ps := pentominoes()
	var os [][]int
	for p, piece := range ps {
		if p == 9 {
			os = append(os, piece.optionsWithin(9, 0, 0, 5, 3, rows, cols)...)
			continue
		}
		for _, base := range piece.bases() {
			os = append(os, base.options(p, rows, cols)...)
		}
	}
	return os
}

func exhaust(d Solve) (solutions, updates int) {
	solver := NewSolver(d, nil)
	chooser := NewMRVChooser(PreferAny(), NoTiebreak())
	for solver.NextSolution(chooser) {
		solutions++
	}
	return solutions, -solver.GetUpdates()
}

// reducedProblem renumbers a reduced arena's surviving items to a fresh
// contiguous range and rebuilds the option list in the new numbering.
func reducedProblem(pp *Preprocessor) (np, ns int, options [][]OptEntry) {
	primary, secondary := pp.Items()
	renum := make(map[int]int, len(primary)+len(secondary))
	for k, itm := range primary {
		renum[itm] = k
	}
	for k, itm := range secondary {
		renum[itm] = len(primary) + k
	}
	_, reduced := pp.Options()
	options = make([][]OptEntry, len(reduced))
	for i, opt := range reduced {
		entries := make([]OptEntry, len(opt))
		for j, e := range opt {
			entries[j] = OptEntry{Item: renum[e.Item], Color: e.Color}
		}
		options[i] = entries
	}
	return len(primary), len(secondary), options
}

// TestPentomino6x10 counts the 2339 pentomino tilings of a 6x10 board,
// raw and after preprocessing, and checks the reduction pays for
// itself in the work metric.
func TestPentomino6x10(t *testing.T) {
	if testing.Short() {
		t.Skip("full tiling enumeration")
	}
	require := require.New(t)

	rows := pent6x10Options()

	raw := NewX(72, 0, itemOpts(rows), SeqOrder())
	rawSols, rawUpdates := exhaust(raw)
	require.Equal(2339, rawSols)

	pre := NewC(72, 0, itemOpts(rows), SeqOrder())
	pp := NewPreprocessor(pre)
	require.NoError(pp.Reduce(200))

	np, ns, options := reducedProblem(pp)
	red := NewX(np, ns, options, SeqOrder())
	redSols, redUpdates := exhaust(red)
	require.Equal(2339, redSols)
	require.Less(redUpdates, rawUpdates)
}
