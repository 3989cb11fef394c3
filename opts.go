package dlx

// OptOrder controls where a new entry is spliced into its item's vertical
// ring during construction: Seq appends at the bottom (closest to the
// header), Rnd inserts at a uniformly random rank.
type OptOrder struct {
	random bool
	rng    *Rng
}

// SeqOrder is the deterministic insertion order.
func SeqOrder() OptOrder { return OptOrder{} }

// RndOrder inserts entries at a uniformly random rank within each item's
// vertical ring, using rng for the rank draws.
func RndOrder(rng *Rng) OptOrder { return OptOrder{random: true, rng: rng} }

// OptEntry is one item reference within an option's entry list, as
// written in input order. Color is 0 for uncolored entries; only
// secondary items may carry a nonzero color.
type OptEntry struct {
	Item  int // 0-based item index into the combined primary+secondary list
	Color int
}

// optsTable is the base (uncolored) option arena: header nodes 0..count+1
// followed by entry/spacer records. len and top share one backing slice:
// header positions only ever need len, entry/spacer positions only ever
// need top.
type optsTable struct {
	top          []int
	ulink, dlink []int
	nOptions     int
}

func (o *optsTable) Len(i int) int     { return o.top[i] }
func (o *optsTable) SetLen(i, v int)   { o.top[i] = v }
func (o *optsTable) Top(i int) int     { return o.top[i] }
func (o *optsTable) SetTop(i, v int)   { o.top[i] = v }
func (o *optsTable) Ulink(i int) int   { return o.ulink[i] }
func (o *optsTable) SetUlink(i, v int) { o.ulink[i] = v }
func (o *optsTable) Dlink(i int) int   { return o.dlink[i] }
func (o *optsTable) SetDlink(i, v int) { o.dlink[i] = v }

// setData records the option-local spec for entry node pk and returns the
// entry's 0-based item index; the base flavor ignores color.
func (o *optsTable) setData(pk int, e OptEntry) int { return e.Item }

func (o *optsTable) snapshot() []int {
	out := make([]int, 0, 3*len(o.top))
	out = append(out, o.top...)
	out = append(out, o.ulink...)
	out = append(out, o.dlink...)
	return out
}

// optsData is the narrow capability initOpts needs from either flavor of
// option arena: get/set len+top+ulink+dlink, plus setData to record a
// flavor-specific per-entry payload (color, for colorOptsTable).
type optsData interface {
	Len(i int) int
	SetLen(i, v int)
	Top(i int) int
	SetTop(i, v int)
	Ulink(i int) int
	SetUlink(i, v int)
	Dlink(i int) int
	SetDlink(i, v int)
	setData(pk int, e OptEntry) int
}

// initOpts lays out the option arena for n items (np of them primary) from
// options in input order: a header-only first pass (ulink(i)=dlink(i)=i,
// len(i)=0), then one pass per option
// appending k entries and a spacer, splicing each entry into its item's
// vertical ring either at the bottom (Seq) or at a uniformly random rank
// (Rnd). Options with no primary item are skipped but still consume an
// ordinal, so external numbering survives the skip.
func initOpts(n, np int, order OptOrder, options [][]OptEntry, o optsData) int {
	for i := 1; i <= n; i++ {
		o.SetUlink(i, i)
		o.SetDlink(i, i)
	}
	m := 0
	p := n + 1
	for _, opt := range options {
		hasPrimary := false
		for _, e := range opt {
			if e.Item < np {
				hasPrimary = true
				break
			}
		}
		m++
		if !hasPrimary {
			continue
		}
		k := 0
		for _, e := range opt {
			k++
			// Internal item indices are 1-based.
			i := o.setData(p+k, e) + 1
			o.SetLen(i, o.Len(i)+1)
			var q int
			if order.random {
				q = i
				steps := int(order.rng.Uniform(uint32(o.Len(i))))
				for s := 0; s < steps; s++ {
					q = o.Dlink(q)
				}
			} else {
				q = o.Ulink(i)
			}
			qd := o.Dlink(q)
			o.SetUlink(p+k, q)
			o.SetDlink(p+k, qd)
			o.SetDlink(q, p+k)
			o.SetUlink(qd, p+k)
			o.SetTop(p+k, i)
		}
		o.SetDlink(p, p+k)
		// Append the trailing spacer.
		p = p + k + 1
		o.SetTop(p, -m)
		o.SetUlink(p, p-k)
	}
	if m == 0 {
		panic("dlx: no options")
	}
	return p
}

func optsArenaSize(n, nOptions, nOptionEntries int) int {
	return n + 2 + nOptions + nOptionEntries
}

func newOptsTable(n, np int, order OptOrder, options [][]OptEntry) *optsTable {
	nEntries := 0
	for _, opt := range options {
		nEntries += len(opt)
	}
	size := optsArenaSize(n, len(options), nEntries)
	o := &optsTable{
		top:      make([]int, size),
		ulink:    make([]int, size),
		dlink:    make([]int, size),
		nOptions: len(options),
	}
	initOpts(n, np, order, options, o)
	return o
}
