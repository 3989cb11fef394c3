package dlx

// coloredOpts extends opts with the per-entry color slot secondary items
// use for agreement checks. Color 0 means uncolored; color -1 is the
// transient "shared with the option that purified this item" marker
// purify/unpurify swap in and out.
type coloredOpts interface {
	opts
	Color(i int) int
	SetColor(i, v int)
}

// colorOptsTable is the option arena for the color-aware flavors: an
// optsTable plus one color slot per node.
type colorOptsTable struct {
	optsTable
	color []int
}

func (o *colorOptsTable) Color(i int) int   { return o.color[i] }
func (o *colorOptsTable) SetColor(i, v int) { o.color[i] = v }

// setData records both the item index and the color for entry node pk.
func (o *colorOptsTable) setData(pk int, e OptEntry) int {
	o.color[pk] = e.Color
	return e.Item
}

func newColorOptsTable(n, np int, order OptOrder, options [][]OptEntry) *colorOptsTable {
	nEntries := 0
	for _, opt := range options {
		nEntries += len(opt)
	}
	size := optsArenaSize(n, len(options), nEntries)
	o := &colorOptsTable{
		optsTable: optsTable{
			top:      make([]int, size),
			ulink:    make([]int, size),
			dlink:    make([]int, size),
			nOptions: len(options),
		},
		color: make([]int, size),
	}
	initOpts(n, np, order, options, o)
	return o
}

// ColorDance is the capability the color-aware primitives need beyond
// Dance: the option table's color slots, plus purify/unpurify.
type ColorDance interface {
	Dance
	ColorOpts() coloredOpts
	Purify(p int)
	Unpurify(p int)
}

// colorHide is hide, refined to leave entries already purified into
// agreement (color < 0) untouched: repeated agreement on the same item
// is then idempotent, since such an entry was never unlinked.
func colorHide(p int, d ColorDance) {
	o := d.ColorOpts()
	q := p + 1
	for q != p {
		x := o.Top(q)
		u, dn := o.Ulink(q), o.Dlink(q)
		if x <= 0 {
			q = u
		} else {
			if o.Color(q) >= 0 {
				o.SetDlink(u, dn)
				o.SetUlink(dn, u)
				o.SetLen(x, o.Len(x)-1)
				d.addUpdates(1)
			}
			q++
		}
	}
}

// colorUnhide is colorHide's exact inverse.
func colorUnhide(p int, d ColorDance) {
	o := d.ColorOpts()
	q := p - 1
	for q != p {
		x := o.Top(q)
		u, dn := o.Ulink(q), o.Dlink(q)
		if x <= 0 {
			q = dn
		} else {
			if o.Color(q) >= 0 {
				o.SetDlink(u, q)
				o.SetUlink(dn, q)
				o.SetLen(x, o.Len(x)+1)
			}
			q--
		}
	}
}

// purify hides every entry of item i = top(p) whose color disagrees with
// p's, and marks the agreeing entries (including p) with the transient
// -1 marker so colorHide/colorUnhide skip them.
func purify(p int, d ColorDance) {
	o := d.ColorOpts()
	c := o.Color(p)
	i := o.Top(p)
	q := o.Dlink(i)
	for q != i {
		if o.Color(q) == c {
			o.SetColor(q, -1)
		} else {
			d.Hide(q)
		}
		q = o.Dlink(q)
	}
}

// unpurify is purify's exact inverse.
func unpurify(p int, d ColorDance) {
	o := d.ColorOpts()
	c := o.Color(p)
	i := o.Top(p)
	q := o.Ulink(i)
	for q != i {
		if o.Color(q) < 0 {
			o.SetColor(q, c)
		} else {
			d.Unhide(q)
		}
		q = o.Ulink(q)
	}
}

// colorCommit is commit, dispatching to cover for uncolored entries and
// to purify for colored ones.
func colorCommit(d ColorDance, p, j int) {
	o := d.ColorOpts()
	if o.Color(p) == 0 {
		d.Cover(j)
	} else if o.Color(p) > 0 {
		d.Purify(p)
	}
}

// colorUncommit is colorCommit's exact inverse.
func colorUncommit(d ColorDance, p, j int) {
	o := d.ColorOpts()
	if o.Color(p) == 0 {
		d.Uncover(j)
	} else if o.Color(p) > 0 {
		d.Unpurify(p)
	}
}
