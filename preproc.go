package dlx

// ReducedEntry is one item reference returned by Preprocessor.Options,
// using the same 0-based external item numbering as OptEntry.
type ReducedEntry struct {
	Item  int
	Color int
}

// Preprocessor performs an in-place, non-backtracking reduction:
// repeated passes delete options whose choice would leave some primary
// item uncoverable, and items left with no options, until a pass makes
// no change or maxRounds is reached. It always operates on a
// color-capable arena (color 0 entries behave as uncolored) since the
// option-deletion step needs per-entry color comparisons even for
// uncolored problems. This is Knuth's preprocessing algorithm for
// exact cover with colors (TAOCP 7.2.2.1, exercise answers 33-41; his
// step numbering is kept in the comments below).
type Preprocessor struct {
	d           ColorDance
	rounds      int
	optStart    int
	stack       int
	change      bool
	infeasible  bool
	infeasibleI int
}

// NewPreprocessor wraps d for preprocessing. d's tables are mutated in
// place; construct it from a freshly built, unsearched problem.
func NewPreprocessor(d ColorDance) *Preprocessor {
	return &Preprocessor{d: d, optStart: d.Items().Count() + 2}
}

// Reduce runs reduceOptions over every item with a nonempty vertical
// ring, repeating until a full pass makes no change or maxRounds passes
// have run. It reports a KindInfeasible *BuildError the moment any
// primary item's option set collapses to empty, whether before the
// first pass or as a side effect of a later one, and stops reducing
// immediately, leaving the arena in the partially-reduced state at
// which infeasibility was detected.
func (pp *Preprocessor) Reduce(maxRounds int) error {
	it := pp.d.Items()
	o := pp.d.Opts()
	for pItm := 1; pItm <= it.Primary(); pItm++ {
		if o.Len(pItm) == 0 {
			return infeasiblef("primary item %d is in no options", pItm-1)
		}
	}
	for pp.rounds < maxRounds {
		pp.rounds++
		pp.change = false
		for itm := 1; itm <= it.Count(); itm++ {
			if o.Len(itm) != 0 {
				pp.reduceOptions(itm)
				if pp.infeasible {
					return infeasiblef("primary item %d's option set collapsed to empty during reduction", pp.infeasibleI-1)
				}
			}
		}
		if !pp.change {
			break
		}
	}
	// Clear the item-header color slots reduceOptions used as scratch.
	co := pp.d.ColorOpts()
	for c := 1; c <= it.Count(); c++ {
		co.SetColor(c, 0)
	}
	return nil
}

// Items returns the surviving primary and secondary item numbers
// (0-based, external), in ring order.
func (pp *Preprocessor) Items() (primary, secondary []int) {
	it := pp.d.Items()
	o := pp.d.Opts()
	for c := 1; c <= it.Count(); c++ {
		if o.Len(c) == 0 {
			continue
		}
		if pp.isPrimary(c) {
			primary = append(primary, c-1)
		} else {
			secondary = append(secondary, c-1)
		}
	}
	return primary, secondary
}

// Options returns the surviving options: idx[k] is the original 0-based
// ordinal of options[k], since reduction can delete options out of
// order and callers need to map back to any external bookkeeping keyed
// by the original numbering.
func (pp *Preprocessor) Options() (idx []int, options [][]ReducedEntry) {
	it := pp.d.Items()
	o := pp.d.Opts()
	for c := 1; c <= it.Count(); c++ {
		if o.Len(c) == 0 {
			continue
		}
		r := o.Dlink(c)
		for r >= pp.optStart {
			q := r - 1
			for o.Dlink(q) == q-1 {
				q--
			}
			if o.Top(q) <= 0 {
				ordinal, entries := pp.getOption(r)
				idx = append(idx, ordinal)
				options = append(options, entries)
			}
			r = o.Dlink(r)
		}
	}
	return idx, options
}

func (pp *Preprocessor) getOption(p int) (int, []ReducedEntry) {
	co := pp.d.ColorOpts()
	p--
	for co.Top(p) > 0 || co.Dlink(p) < p {
		p--
	}
	q := p + 1
	var out []ReducedEntry
	for {
		itm := co.Top(q)
		if itm < 0 {
			return -itm - 1, out
		}
		if itm > 0 {
			out = append(out, ReducedEntry{Item: itm - 1, Color: co.Color(q)})
		}
		q++
	}
}

// reduceOptions is Knuth's step for a single item itm: hide it
// tentatively; if doing so starved some other primary item, the item
// itself must be removed outright (BEGIN 33). Otherwise scan its
// remaining options and stack for deletion any that would themselves
// starve some primary item once chosen.
func (pp *Preprocessor) reduceOptions(itm int) {
	o := pp.d.ColorOpts()
	pp.stack = 0
	pp.hide(itm)
	if pp.stack != 0 {
		pp.removeItem(itm)
		return
	}
	r := o.Dlink(itm)
	for r >= pp.optStart {
		q := r - 1
		for o.Dlink(q) == q-1 {
			q--
		}
		if o.Top(q) <= 0 && o.Color(r) == 0 {
			q = r + 1
			for {
				cc := o.Top(q)
				if cc <= 0 {
					q = o.Ulink(q)
					if q > r {
						continue
					}
					break
				}
				o.SetColor(cc, r)
				q++
			}
			if !pp.hideEntries(r) {
				pp.backup(r-1, r)
			} else {
				pp.change = true
				o.SetTop(r, pp.stack)
				pp.stack = r
			}
		}
		r = o.Dlink(r)
	}
	pp.unhide(itm)
	r = pp.stack
	for r != 0 {
		rr := o.Top(r)
		o.SetTop(r, itm)
		pp.reallyDeleteOption(r)
		r = rr
	}
}

// hideEntries tentatively hides option r's other entries' sibling
// options. It reports true (after undoing its own hides) the moment doing
// so would starve a primary item, meaning r really can be deleted; false
// means no item starved, and the caller's backup undoes the hides.
func (pp *Preprocessor) hideEntries(r int) bool {
	o := pp.d.ColorOpts()
	q := r + 1
	for {
		cc := o.Top(q)
		if cc <= 0 {
			q = o.Ulink(q)
			if q > r {
				continue
			}
			return false
		}
		x := o.Color(q)
		p := o.Dlink(cc)
		for p >= pp.optStart {
			if x > 0 && x == o.Color(p) {
				p = o.Dlink(p)
				continue
			}
			qq := p + 1
			for qq != p {
				cc2 := o.Top(qq)
				if cc2 <= 0 {
					qq = o.Ulink(qq)
					continue
				}
				t := o.Len(cc2) - 1
				if t == 0 && pp.isPrimary(cc2) && o.Color(cc2) != r {
					pp.unhideEntries(qq-1, p)
					up := o.Ulink(p)
					pp.pass2(up, x)
					pp.backup(q-1, r)
					return true
				}
				o.SetLen(cc2, t)
				uu, dd := o.Ulink(qq), o.Dlink(qq)
				o.SetDlink(uu, dd)
				o.SetUlink(dd, uu)
				qq++
			}
			p = o.Dlink(p)
		}
		q++
	}
}

func (pp *Preprocessor) backup(q, r int) {
	o := pp.d.ColorOpts()
	for q != r {
		cc := o.Top(q)
		if cc <= 0 {
			q = o.Dlink(q)
			continue
		}
		x := o.Color(q)
		p := o.Ulink(cc)
		pp.pass2(p, x)
		q--
	}
}

func (pp *Preprocessor) pass2(p, x int) {
	o := pp.d.ColorOpts()
	for p >= pp.optStart {
		if x > 0 && x == o.Color(p) {
			p = o.Ulink(p)
			continue
		}
		pp.unhideEntries(p-1, p)
		p = o.Ulink(p)
	}
}

func (pp *Preprocessor) unhideEntries(qq, p int) {
	o := pp.d.ColorOpts()
	for qq != p {
		cc := o.Top(qq)
		if cc <= 0 {
			qq = o.Dlink(qq)
			continue
		}
		o.SetLen(cc, o.Len(cc)+1)
		uu, dd := o.Ulink(qq), o.Dlink(qq)
		o.SetDlink(uu, qq)
		o.SetUlink(dd, qq)
		qq--
	}
}

// removeItem deletes item c outright, shortening or deleting every
// option that still mentions it (BEGIN 33/34/35 in Knuth's numbering).
func (pp *Preprocessor) removeItem(c int) {
	o := pp.d.ColorOpts()
	pp.unhide(c)
	r := o.Dlink(c)
	for r >= pp.optStart {
		rrr := o.Dlink(r)
		q := r + 1
		for q != r {
			cc := o.Top(q)
			if cc <= 0 {
				q = o.Ulink(q)
				continue
			}
			if cc == pp.stack {
				break
			}
			q++
		}
		if q != r {
			o.SetUlink(r, r+1)
			o.SetDlink(r, r-1)
			o.SetTop(r, 0)
		} else {
			q = r + 1
			for q != r {
				cc := o.Top(q)
				if cc <= 0 {
					q = o.Ulink(q)
					continue
				}
				t := o.Len(cc) - 1
				if t == 0 && pp.isPrimary(cc) {
					pp.infeasible, pp.infeasibleI = true, cc
					return
				}
				o.SetLen(cc, t)
				uu, dd := o.Ulink(q), o.Dlink(q)
				o.SetDlink(uu, dd)
				o.SetUlink(dd, uu)
				q++
			}
		}
		r = rrr
	}
	o.SetUlink(c, c)
	o.SetDlink(c, c)
	o.SetLen(c, 0)
	pp.change = true
}

// reallyDeleteOption (step 41) fully detaches every entry of option r
// from its item's ring.
func (pp *Preprocessor) reallyDeleteOption(r int) {
	o := pp.d.ColorOpts()
	p := r + 1
	for {
		cc := o.Top(p)
		if cc <= 0 {
			p = o.Ulink(p)
			continue
		}
		uu, dd := o.Ulink(p), o.Dlink(p)
		o.SetDlink(uu, dd)
		o.SetUlink(dd, uu)
		o.SetLen(cc, o.Len(cc)-1)
		if o.Len(cc) == 0 && pp.isPrimary(cc) {
			pp.infeasible, pp.infeasibleI = true, cc
			return
		}
		if p == r {
			return
		}
		p++
	}
}

func (pp *Preprocessor) isPrimary(i int) bool {
	return i <= pp.d.Items().Primary()
}

// hide tentatively removes every uncolored option under item c from
// their other items' rings, recording in pp.stack the first primary
// item this starves (0 if none).
func (pp *Preprocessor) hide(c int) {
	o := pp.d.ColorOpts()
	rr := o.Dlink(c)
	for rr >= pp.optStart {
		if o.Color(rr) == 0 {
			nn := rr + 1
			for nn != rr {
				uu, dd := o.Ulink(nn), o.Dlink(nn)
				cc := o.Top(nn)
				if cc <= 0 {
					nn = uu
					continue
				}
				o.SetDlink(uu, dd)
				o.SetUlink(dd, uu)
				t := o.Len(cc) - 1
				o.SetLen(cc, t)
				if t == 0 && pp.isPrimary(cc) {
					pp.stack = cc
				}
				nn++
			}
		}
		rr = o.Dlink(rr)
	}
}

// unhide is hide's exact inverse.
func (pp *Preprocessor) unhide(c int) {
	o := pp.d.ColorOpts()
	rr := o.Dlink(c)
	for rr >= pp.optStart {
		if o.Color(rr) == 0 {
			nn := rr + 1
			for nn != rr {
				uu, dd := o.Ulink(nn), o.Dlink(nn)
				cc := o.Top(nn)
				if cc <= 0 {
					nn = uu
					continue
				}
				t := o.Len(cc)
				o.SetDlink(uu, nn)
				o.SetUlink(dd, nn)
				o.SetLen(cc, t+1)
				nn++
			}
		}
		rr = o.Dlink(rr)
	}
}
