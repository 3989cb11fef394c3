package dlx

import "log"

// Stats carries the logging/progress knobs Solver consults on every
// node: Debug gates the per-step trace, Verbosity raises its detail,
// and Progress/Delta/Theta drive a periodic "still searching"
// heartbeat for long-running enumerations.
type Stats struct {
	Debug     bool
	Verbosity int
	Progress  bool
	Delta     int
	Theta     int
	Nodes     int
	MaxLevel  int
}

func (s *Stats) debugf(format string, args ...any) {
	if s != nil && s.Debug {
		log.Printf(format, args...)
	}
}

func (s *Stats) trace(format string, args ...any) {
	if s != nil && s.Debug && s.Verbosity > 1 {
		log.Printf(format, args...)
	}
}

func (s *Stats) showProgress(l int) {
	if s == nil || !s.Progress {
		return
	}
	s.Nodes++
	if l > s.MaxLevel {
		s.MaxLevel = l
	}
	if s.Verbosity > 0 && s.Nodes >= s.Theta {
		log.Printf("progress: nodes=%d level=%d", s.Nodes, l)
		s.Theta += s.Delta
	}
}

// Solver drives the resumable iterative search: each call to
// NextSolution runs the dance forward from wherever the previous call
// left off and returns at the next solution, or once the search is
// exhausted. The main loop follows the step structure of Knuth's
// Algorithm C (TAOCP 7.2.2.1), generalized over the Solve hooks so the
// same driver serves all four problem flavors.
type Solver struct {
	problem Solve
	x       []int
	o       []int
	profile []int
	l       int
	i       int
	restart bool
	stats   *Stats
}

// NewSolver wraps problem for resumable search. stats may be nil to
// disable all logging.
func NewSolver(problem Solve, stats *Stats) *Solver {
	return &Solver{problem: problem, stats: stats}
}

// NextSolution advances the search using chooser to pick the branching
// item at each level, returning true and leaving GetSolution readable
// when a solution is found, or false once the search space is exhausted.
// Calling it again after false restarts the search from scratch; the
// updates counter, left negative by exhaustion, is reset to its
// magnitude.
func (s *Solver) NextSolution(chooser Chooser) bool {
	l := s.l
	i := s.i
	if s.problem.Updates() < 0 {
		s.setUpdates(-s.problem.Updates())
	}

	for {
		if s.restart {
			s.restart = false
		} else if s.problem.Items().Rlink(0) == 0 {
			s.l = l
			s.i = i
			s.restart = true
			s.stats.debugf("C2. Visit the solution")
			return true
		} else {
			if len(s.x) == l {
				s.x = append(s.x, 0)
				s.profile = append(s.profile, 0)
				s.problem.EnterLevel(i, l, s.x[l])
			}
			s.profile[l]++
			s.stats.showProgress(l)
			i = chooser.Choose(s.problem)
			s.stats.trace("C3. Choose i=%d", i)
			if s.problem.BranchDegree(i) != 0 {
				s.x[l] = s.problem.Opts().Dlink(i)
				s.problem.PrepareToBranch(i, l, s.x[l])
				s.stats.trace("C4. Cover i=%d", i)
				if s.problem.TryItem(i, l, s.x[l]) {
					s.stats.trace("C5. Try l=%d, x=%v", l, s.x[:l+1])
					l++
					continue
				}
				s.problem.RestoreItem(i, l, s.x[l])
			}
		}
		for {
			if l == 0 {
				s.l = l
				s.setUpdates(-s.problem.Updates())
				return false
			}
			l--
			i = s.problem.Opts().Top(s.x[l])
			s.stats.trace("C6. Try again l=%d", l)
			if s.problem.TryAgain(i, l, &s.x[l]) {
				l++
				break
			}
			s.stats.trace("C7. Backtrack l=%d", l)
		}
	}
}

// setUpdates routes through the Dance interface's addUpdates, since
// Updates() only exposes a read.
func (s *Solver) setUpdates(v int) {
	s.problem.addUpdates(v - s.problem.Updates())
}

// GetSolution returns the option ordinals chosen at the level most
// recently reached by NextSolution, in branch order. Valid only
// immediately after NextSolution returns true.
func (s *Solver) GetSolution() []int {
	n := s.problem.Items().Count()
	o := s.problem.Opts()
	out := s.o[:0]
	for _, xj := range s.x[:s.l] {
		r := xj
		if r <= n {
			continue
		}
		for o.Top(r) >= 0 {
			r++
		}
		out = append(out, -o.Top(r)-1)
	}
	s.o = out
	return out
}

// GetUpdates reports the elementary-pointer-edit counter, negative once
// the search has been exhausted by a call to NextSolution that returned
// false.
func (s *Solver) GetUpdates() int {
	return s.problem.Updates()
}

// GetProfile returns, per search level reached so far, the number of
// times NextSolution's main loop visited that level.
func (s *Solver) GetProfile() []int {
	return s.profile
}
