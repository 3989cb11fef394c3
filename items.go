package dlx

// itemsTable holds the two horizontal item rings described by the data
// model: a primary ring threaded through header 0 and a secondary ring
// threaded through header count+1. Indices 1..primary are primary items,
// primary+1..count are secondary items.
type itemsTable struct {
	llink, rlink []int
	primary      int
	count        int
}

func newItemsTable(primary, secondary int) *itemsTable {
	n := primary + secondary
	t := &itemsTable{
		llink:   make([]int, n+2),
		rlink:   make([]int, n+2),
		primary: primary,
		count:   n,
	}
	t.initLinks()
	return t
}

// initLinks wires the two rings: a single forward pass links every item
// 1..n to its predecessor, then six targeted assignments close the
// primary ring through header 0 and the secondary ring through header
// n+1.
func (t *itemsTable) initLinks() {
	n1 := t.primary
	n := t.count
	if n1 <= 0 {
		panic("dlx: no primary items")
	}
	for i := 1; i <= n; i++ {
		t.llink[i] = i - 1
		t.rlink[i-1] = i
	}
	t.llink[n+1] = n
	t.rlink[n] = n + 1
	t.llink[n1+1] = n + 1
	t.rlink[n+1] = n1 + 1
	t.llink[0] = n1
	t.rlink[n1] = 0
}

func (t *itemsTable) Llink(i int) int   { return t.llink[i] }
func (t *itemsTable) SetLlink(i, v int) { t.llink[i] = v }
func (t *itemsTable) Rlink(i int) int   { return t.rlink[i] }
func (t *itemsTable) SetRlink(i, v int) { t.rlink[i] = v }
func (t *itemsTable) Primary() int      { return t.primary }
func (t *itemsTable) Count() int        { return t.count }

// snapshot captures llink/rlink for round-trip-invariance checks: after
// exhaustion the arena must be bit-identical to its post-construction
// state.
func (t *itemsTable) snapshot() []int {
	out := make([]int, 0, 2*len(t.llink))
	out = append(out, t.llink...)
	out = append(out, t.rlink...)
	return out
}
