package dlx

// items is the narrow read/write surface every flavor's item table
// exposes to the shared primitives.
type items interface {
	Llink(i int) int
	SetLlink(i, v int)
	Rlink(i int) int
	SetRlink(i, v int)
	Primary() int
	Count() int
}

// opts is the narrow read/write surface every flavor's option table
// exposes to the shared primitives.
type opts interface {
	Len(i int) int
	SetLen(i, v int)
	Top(i int) int
	SetTop(i, v int)
	Ulink(i int) int
	SetUlink(i, v int)
	Dlink(i int) int
	SetDlink(i, v int)
}

// Dance is the capability every problem flavor provides to the solver
// and the chooser: item/option table access, the global update counter,
// and the mutating primitives.
type Dance interface {
	Items() items
	Opts() opts
	Updates() int
	addUpdates(delta int)

	Cover(i int)
	Uncover(i int)
	Commit(p, j int)
	Uncommit(p, j int)
	Hide(p int)
	Unhide(p int)
	BranchDegree(i int) int
}

// Solve is the search-hook capability the iterative driver (component S)
// consults at each node: entering a new level, branching on an item,
// retrying siblings, and undoing a branch.
type Solve interface {
	Dance
	EnterLevel(i, l, xl int)
	PrepareToBranch(i, l, xl int)
	TryItem(i, l, xl int) bool
	TryAgain(i, l int, xl *int) bool
	RestoreItem(i, l, xl int)
}

// cover removes item i from its ring and hides every option that still
// covers it.
func cover(i int, d Dance) {
	o := d.Opts()
	p := o.Dlink(i)
	for p != i {
		d.Hide(p)
		p = o.Dlink(p)
	}
	it := d.Items()
	l, r := it.Llink(i), it.Rlink(i)
	it.SetRlink(l, r)
	it.SetLlink(r, l)
}

// uncover is cover's exact inverse, walking bottom-to-top.
func uncover(i int, d Dance) {
	it := d.Items()
	l, r := it.Llink(i), it.Rlink(i)
	it.SetRlink(l, i)
	it.SetLlink(r, i)
	o := d.Opts()
	p := o.Ulink(i)
	for p != i {
		d.Unhide(p)
		p = o.Ulink(p)
	}
}

// hide unlinks every sibling entry of p (p itself is left untouched) from
// its item's vertical ring, walking forward through the option and
// hopping spacer-to-spacer-owner via ulink when a spacer is met.
func hide(p int, d Dance) {
	o := d.Opts()
	q := p + 1
	for q != p {
		x := o.Top(q)
		u, dn := o.Ulink(q), o.Dlink(q)
		if x <= 0 {
			q = u
		} else {
			o.SetDlink(u, dn)
			o.SetUlink(dn, u)
			o.SetLen(x, o.Len(x)-1)
			d.addUpdates(1)
			q++
		}
	}
}

// unhide is hide's exact inverse, walking backward.
func unhide(p int, d Dance) {
	o := d.Opts()
	q := p - 1
	for q != p {
		x := o.Top(q)
		u, dn := o.Ulink(q), o.Dlink(q)
		if x <= 0 {
			q = dn
		} else {
			o.SetDlink(u, q)
			o.SetUlink(dn, q)
			o.SetLen(x, o.Len(x)+1)
			q--
		}
	}
}

// branchDegree reports the number of options still covering item i.
func branchDegree(i int, d Dance) int {
	return d.Opts().Len(i)
}

// commit is cover(j) in the unextended flavor; C replaces it with a
// color-aware variant.
func commit(_, j int, d Dance) {
	d.Cover(j)
}

// uncommit is uncover(j) in the unextended flavor.
func uncommit(_, j int, d Dance) {
	d.Uncover(j)
}

// prepareToBranch covers the chosen item i before the driver tries its
// first candidate option.
func prepareToBranch(d Solve, i, _, _ int) {
	d.Cover(i)
}

// tryItem commits every other item mentioned by the option at xl. It
// fails (returns false) exactly when xl has walked back to the item
// header, meaning every candidate was exhausted.
func tryItem(d Solve, i, xl int) bool {
	if xl == i {
		return false
	}
	o := d.Opts()
	p := xl + 1
	for p != xl {
		j := o.Top(p)
		if j <= 0 {
			p = o.Ulink(p)
		} else {
			d.Commit(p, j)
			p++
		}
	}
	return true
}

// tryAgain undoes the commits made for xl, advances xl to the next
// candidate in i's vertical ring, and retries. Once the retry fails
// (xl has walked back to the header) it restores i, so the caller's
// backtrack loop never sees a still-covered item.
func tryAgain(d Solve, i int, xl *int) bool {
	o := d.Opts()
	p := *xl - 1
	for p != *xl {
		j := o.Top(p)
		if j <= 0 {
			p = o.Dlink(p)
		} else {
			d.Uncommit(p, j)
			p--
		}
	}
	*xl = o.Dlink(*xl)
	if !tryItem(d, i, *xl) {
		restoreItem(d, i)
		return false
	}
	return true
}

// restoreItem uncovers i after every candidate has been exhausted.
func restoreItem(d Solve, i int) {
	d.Uncover(i)
}
