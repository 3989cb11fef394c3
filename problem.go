package dlx

// problemX is the unextended flavor: plain items/options, no color, no
// multiplicity. A thin wrapper delegating to the free functions in
// dance.go.
type problemX struct {
	items   *itemsTable
	opts    *optsTable
	updates int
}

// NewX builds an unextended exact-cover problem from np primary and ns
// secondary items and a list of options, each a list of item references.
func NewX(np, ns int, options [][]OptEntry, order OptOrder) *problemX {
	return &problemX{
		items: newItemsTable(np, ns),
		opts:  newOptsTable(np+ns, np, order, options),
	}
}

func (p *problemX) Items() items         { return p.items }
func (p *problemX) Opts() opts           { return p.opts }
func (p *problemX) Updates() int         { return p.updates }
func (p *problemX) addUpdates(delta int) { p.updates += delta }

func (p *problemX) Cover(i int)         { cover(i, p) }
func (p *problemX) Uncover(i int)       { uncover(i, p) }
func (p *problemX) Commit(pos, j int)   { commit(pos, j, p) }
func (p *problemX) Uncommit(pos, j int) { uncommit(pos, j, p) }
func (p *problemX) Hide(pos int)        { hide(pos, p) }
func (p *problemX) Unhide(pos int)      { unhide(pos, p) }
func (p *problemX) BranchDegree(i int) int {
	return branchDegree(i, p)
}

func (p *problemX) EnterLevel(i, l, xl int)           {}
func (p *problemX) PrepareToBranch(i, l, xl int)      { prepareToBranch(p, i, l, xl) }
func (p *problemX) TryItem(i, l, xl int) bool         { return tryItem(p, i, xl) }
func (p *problemX) TryAgain(i, l int, xl *int) bool   { return tryAgain(p, i, xl) }
func (p *problemX) RestoreItem(i, l, xl int)          { restoreItem(p, i) }

// problemC is the color flavor: plain items, colored options.
type problemC struct {
	items   *itemsTable
	opts    *colorOptsTable
	updates int
}

// NewC builds a color-aware exact-cover problem. Entries referencing a
// secondary item may carry a nonzero color; primary-item entries must
// leave OptEntry.Color at 0.
func NewC(np, ns int, options [][]OptEntry, order OptOrder) *problemC {
	return &problemC{
		items: newItemsTable(np, ns),
		opts:  newColorOptsTable(np+ns, np, order, options),
	}
}

func (p *problemC) Items() items           { return p.items }
func (p *problemC) Opts() opts             { return p.opts }
func (p *problemC) ColorOpts() coloredOpts { return p.opts }
func (p *problemC) Updates() int           { return p.updates }
func (p *problemC) addUpdates(delta int)   { p.updates += delta }

func (p *problemC) Cover(i int)         { cover(i, p) }
func (p *problemC) Uncover(i int)       { uncover(i, p) }
func (p *problemC) Commit(pos, j int)   { colorCommit(p, pos, j) }
func (p *problemC) Uncommit(pos, j int) { colorUncommit(p, pos, j) }
func (p *problemC) Hide(pos int)        { colorHide(pos, p) }
func (p *problemC) Unhide(pos int)      { colorUnhide(pos, p) }
func (p *problemC) BranchDegree(i int) int {
	return branchDegree(i, p)
}
func (p *problemC) Purify(pos int)   { purify(pos, p) }
func (p *problemC) Unpurify(pos int) { unpurify(pos, p) }

func (p *problemC) EnterLevel(i, l, xl int)         {}
func (p *problemC) PrepareToBranch(i, l, xl int)    { prepareToBranch(p, i, l, xl) }
func (p *problemC) TryItem(i, l, xl int) bool       { return tryItem(p, i, xl) }
func (p *problemC) TryAgain(i, l int, xl *int) bool { return tryAgain(p, i, xl) }
func (p *problemC) RestoreItem(i, l, xl int)        { restoreItem(p, i) }

// problemM is the multiplicity flavor: bounded primary items, plain
// options.
type problemM struct {
	items   *multItemsTable
	opts    *optsTable
	updates int
	ft      []int
}

// NewM builds a multiplicity-aware exact-cover problem. bounds holds one
// (lower, upper) pair per primary item, in item order.
func NewM(bounds [][2]int, ns int, options [][]OptEntry, order OptOrder) *problemM {
	np := len(bounds)
	return &problemM{
		items: newMultItemsTable(bounds, ns),
		opts:  newOptsTable(np+ns, np, order, options),
	}
}

func (p *problemM) Items() items         { return p.items }
func (p *problemM) MultItems() multItems { return p.items }
func (p *problemM) Opts() opts           { return p.opts }
func (p *problemM) Updates() int         { return p.updates }
func (p *problemM) addUpdates(delta int) { p.updates += delta }

func (p *problemM) Cover(i int)         { cover(i, p) }
func (p *problemM) Uncover(i int)       { uncover(i, p) }
func (p *problemM) Commit(pos, j int)   { commit(pos, j, p) }
func (p *problemM) Uncommit(pos, j int) { uncommit(pos, j, p) }
func (p *problemM) Hide(pos int)        { hide(pos, p) }
func (p *problemM) Unhide(pos int)      { unhide(pos, p) }
func (p *problemM) BranchDegree(i int) int {
	return multBranchDegree(i, p)
}

func (p *problemM) Tweak(x, pItem int)          { multTweak(x, pItem, p) }
func (p *problemM) Untweak(l int, unblock bool) { multUntweak(l, unblock, p) }
func (p *problemM) FTLen() int                  { return len(p.ft) }
func (p *problemM) FTGet(l int) int             { return p.ft[l] }
func (p *problemM) FTSet(l, v int)              { p.ft[l] = v }
func (p *problemM) FTPush(v int)                { p.ft = append(p.ft, v) }

func (p *problemM) EnterLevel(i, l, xl int)         { multEnterLevel(p) }
func (p *problemM) PrepareToBranch(i, l, xl int)    { multPrepareToBranch(p, i, l, xl) }
func (p *problemM) TryItem(i, l, xl int) bool       { return multTryItem(p, i, xl) }
func (p *problemM) TryAgain(i, l int, xl *int) bool { return multTryAgain(p, i, l, xl) }
func (p *problemM) RestoreItem(i, l, xl int)        { multRestoreItem(p, i, l) }

// problemMC is the combined multiplicity+color flavor: the multiplicity
// item table wired to the colored option table, with both extensions'
// primitives composed.
type problemMC struct {
	items   *multItemsTable
	opts    *colorOptsTable
	updates int
	ft      []int
}

// NewMC builds a problem using both extensions at once.
func NewMC(bounds [][2]int, ns int, options [][]OptEntry, order OptOrder) *problemMC {
	np := len(bounds)
	return &problemMC{
		items: newMultItemsTable(bounds, ns),
		opts:  newColorOptsTable(np+ns, np, order, options),
	}
}

func (p *problemMC) Items() items           { return p.items }
func (p *problemMC) MultItems() multItems   { return p.items }
func (p *problemMC) Opts() opts             { return p.opts }
func (p *problemMC) ColorOpts() coloredOpts { return p.opts }
func (p *problemMC) Updates() int           { return p.updates }
func (p *problemMC) addUpdates(delta int)   { p.updates += delta }

func (p *problemMC) Cover(i int)         { cover(i, p) }
func (p *problemMC) Uncover(i int)       { uncover(i, p) }
func (p *problemMC) Commit(pos, j int)   { colorCommit(p, pos, j) }
func (p *problemMC) Uncommit(pos, j int) { colorUncommit(p, pos, j) }
func (p *problemMC) Hide(pos int)        { colorHide(pos, p) }
func (p *problemMC) Unhide(pos int)      { colorUnhide(pos, p) }
func (p *problemMC) BranchDegree(i int) int {
	return multBranchDegree(i, p)
}
func (p *problemMC) Purify(pos int)   { purify(pos, p) }
func (p *problemMC) Unpurify(pos int) { unpurify(pos, p) }

func (p *problemMC) Tweak(x, pItem int)          { multTweak(x, pItem, p) }
func (p *problemMC) Untweak(l int, unblock bool) { multUntweak(l, unblock, p) }
func (p *problemMC) FTLen() int                  { return len(p.ft) }
func (p *problemMC) FTGet(l int) int             { return p.ft[l] }
func (p *problemMC) FTSet(l, v int)              { p.ft[l] = v }
func (p *problemMC) FTPush(v int)                { p.ft = append(p.ft, v) }

func (p *problemMC) EnterLevel(i, l, xl int)         { multEnterLevel(p) }
func (p *problemMC) PrepareToBranch(i, l, xl int)    { multPrepareToBranch(p, i, l, xl) }
func (p *problemMC) TryItem(i, l, xl int) bool       { return multTryItem(p, i, xl) }
func (p *problemMC) TryAgain(i, l int, xl *int) bool { return multTryAgain(p, i, l, xl) }
func (p *problemMC) RestoreItem(i, l, xl int)        { multRestoreItem(p, i, l) }
