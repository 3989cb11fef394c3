package dlx

// multItems extends items with a per-primary-item (bound, slack) pair:
// bound is the remaining quota (the upper bound, decremented as options
// are chosen), slack is the fixed upper-minus-lower gap that lets an
// item go under-covered by that amount.
type multItems interface {
	items
	Bound(i int) int
	SetBound(i, v int)
	Slack(i int) int
}

// multItemsTable is itemsTable plus bound/slack arrays.
type multItemsTable struct {
	itemsTable
	bound, slack []int
}

// newMultItemsTable builds the item rings for np primary items (each with
// a (lower, upper) bound pair) and ns secondary items. Secondary items and
// the two ring headers carry bound = slack = 0, which is never consulted
// since multBranchDegree/multTryItem only read these fields for primary i.
func newMultItemsTable(bounds [][2]int, ns int) *multItemsTable {
	np := len(bounds)
	n := np + ns
	t := &multItemsTable{
		itemsTable: itemsTable{
			llink:   make([]int, n+2),
			rlink:   make([]int, n+2),
			primary: np,
			count:   n,
		},
		bound: make([]int, n+2),
		slack: make([]int, n+2),
	}
	for idx, uv := range bounds {
		u, v := uv[0], uv[1]
		t.bound[idx+1] = v
		t.slack[idx+1] = v - u
	}
	t.initLinks()
	return t
}

func (t *multItemsTable) Bound(i int) int   { return t.bound[i] }
func (t *multItemsTable) SetBound(i, v int) { t.bound[i] = v }
func (t *multItemsTable) Slack(i int) int   { return t.slack[i] }

// MultDance is the capability the multiplicity primitives need beyond
// Dance: bound/slack access, tweak/untweak, and the per-level ft trail
// untweak consults to find which option it is undoing.
type MultDance interface {
	Dance
	MultItems() multItems
	Tweak(x, p int)
	Untweak(l int, unblock bool)
	FTLen() int
	FTGet(l int) int
	FTSet(l, v int)
	FTPush(v int)
}

// multTweak partially detaches entry x from item p's vertical ring
// without covering p: used when an option is skipped for an
// under-quota item rather than chosen. If p's bound is already
// exhausted the entry was already hidden by cover, so only the splice
// runs; otherwise hide(x) first removes x's siblings from their own
// items' rings.
func multTweak(xPos, p int, d MultDance) {
	mi := d.MultItems()
	if mi.Bound(p) != 0 {
		d.Hide(xPos)
	}
	o := d.Opts()
	dn := o.Dlink(xPos)
	o.SetDlink(p, dn)
	o.SetUlink(dn, p)
	o.SetLen(p, o.Len(p)-1)
	d.addUpdates(1)
}

// multUntweak is multTweak's exact inverse for every tweak recorded at
// level l, found via ft[l].
func multUntweak(l int, unblock bool, d MultDance) {
	it := d.MultItems()
	o := d.Opts()
	ftl := d.FTGet(l)
	var p int
	if ftl <= it.Count() {
		p = ftl
	} else {
		p = o.Top(ftl)
	}
	x := ftl
	y := p
	z := o.Dlink(p)
	o.SetDlink(p, x)
	k := 0
	for x != z {
		o.SetUlink(x, y)
		k++
		if unblock {
			d.Unhide(x)
		}
		y = x
		x = o.Dlink(x)
	}
	o.SetUlink(z, y)
	o.SetLen(p, o.Len(p)+k)
	if !unblock {
		d.Uncover(p)
	}
}

// multBranchDegree refines branchDegree with the item's remaining quota:
// an item that can still go (bound-slack) short of full coverage is
// cheaper to branch on than its raw option count suggests.
func multBranchDegree(i int, d MultDance) int {
	mi := d.MultItems()
	deg := d.Opts().Len(i) + 1 - (mi.Bound(i) - mi.Slack(i))
	if deg < 0 {
		return 0
	}
	return deg
}

// multEnterLevel pushes a fresh ft slot for the level being entered;
// prepareToBranch overwrites it only when a tweak trail needs recording.
func multEnterLevel(d MultDance) {
	d.FTPush(0)
}

// multPrepareToBranch consumes one unit of i's bound before branching. If
// that exhausts the quota the item is fully covered; otherwise the ft
// slot records where to resume untweaking on backtrack.
func multPrepareToBranch(d MultDance, i, l, xl int) {
	mi := d.MultItems()
	mi.SetBound(i, mi.Bound(i)-1)
	if mi.Bound(i) == 0 {
		d.Cover(i)
		if mi.Slack(i) != 0 {
			d.FTSet(l, xl)
		}
	} else {
		d.FTSet(l, xl)
	}
}

// multTryItem is try_item from the multiplicity extension: first decide
// whether xl is even a usable candidate for i (skipping it via tweak, or
// detaching i's header entirely once its slack is spent), then commit
// every other item the chosen option mentions.
func multTryItem(d MultDance, i, xl int) bool {
	mi := d.MultItems()
	o := d.Opts()
	switch {
	case mi.Slack(i) == 0 && mi.Bound(i) == 0:
		if xl == i {
			return false
		}
	case o.Len(i) <= mi.Bound(i)-mi.Slack(i):
		return false
	case xl != i:
		d.Tweak(xl, i)
	case mi.Bound(i) != 0:
		it := d.Items()
		l, r := it.Llink(i), it.Rlink(i)
		it.SetRlink(l, r)
		it.SetLlink(r, l)
	}
	if xl != i {
		p := xl + 1
		for p != xl {
			j := o.Top(p)
			switch {
			case j <= 0:
				p = o.Ulink(p)
			case j <= mi.Primary():
				p++
				mi.SetBound(j, mi.Bound(j)-1)
				if mi.Bound(j) == 0 {
					d.Cover(j)
				}
			default:
				d.Commit(p, j)
				p++
			}
		}
	}
	return true
}

// multTryAgain undoes the commits/bound-decrements made for xl, advances
// to the next candidate, and retries; once xl runs out it restores i's
// header linkage and reports failure up to the caller.
func multTryAgain(d MultDance, i int, l int, xl *int) bool {
	mi := d.MultItems()
	o := d.Opts()
	var again bool
	if *xl > mi.Count() {
		p := *xl - 1
		for p != *xl {
			j := o.Top(p)
			switch {
			case j <= 0:
				p = o.Dlink(p)
			case j <= mi.Primary():
				p--
				mi.SetBound(j, mi.Bound(j)+1)
				if mi.Bound(j) == 1 {
					d.Uncover(j)
				}
			default:
				d.Uncommit(p, j)
				p--
			}
		}
		*xl = o.Dlink(*xl)
		again = multTryItem(d, i, *xl)
	} else {
		i = *xl
		it := d.Items()
		p, q := it.Llink(i), it.Rlink(i)
		it.SetRlink(p, i)
		it.SetLlink(q, i)
		again = false
	}
	if !again {
		multRestoreItem(d, i, l)
	}
	return again
}

// multRestoreItem undoes prepareToBranch: a fully consumed item is
// uncovered outright, otherwise its tweak trail at level l is unwound.
func multRestoreItem(d MultDance, i int, l int) {
	mi := d.MultItems()
	if mi.Bound(i) == 0 && mi.Slack(i) == 0 {
		d.Uncover(i)
	} else {
		unblock := mi.Bound(i) != 0
		d.Untweak(l, unblock)
	}
	mi.SetBound(i, mi.Bound(i)+1)
}
