package dlx

import "testing"

func TestPreferAny(t *testing.T) {
	pref := PreferAny()
	for _, i := range []int{0, 1, 5, 100} {
		if !pref.Prefer(i) {
			t.Errorf("PreferAny().Prefer(%d) = false, want true", i)
		}
	}
}

func TestPreferFirstN(t *testing.T) {
	pref := PreferFirstN(3)
	cases := map[int]bool{0: true, 1: true, 2: true, 3: false, 10: false}
	for i, want := range cases {
		if got := pref.Prefer(i); got != want {
			t.Errorf("PreferFirstN(3).Prefer(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestNoTiebreak(t *testing.T) {
	tb := NoTiebreak()
	tb.Reset()
	if tb.Replace(1, 2, nil) {
		t.Error("NoTiebreak.Replace must always report false")
	}
}

// TestRandomTiebreakDeterministic checks that two reservoir samplers
// seeded identically make identical accept/reject decisions.
func TestRandomTiebreakDeterministic(t *testing.T) {
	a := RandomTiebreak(42)
	b := RandomTiebreak(42)
	a.Reset()
	b.Reset()
	for k := 0; k < 20; k++ {
		if a.Replace(0, 1, nil) != b.Replace(0, 1, nil) {
			t.Fatalf("replace decision %d diverged between identically seeded tiebreaks", k)
		}
	}
}

func TestKnuthTiebreakPrefersLowerSlack(t *testing.T) {
	bounds := [][2]int{{1, 1}, {0, 2}}
	options := [][]OptEntry{
		{{Item: 0}},
		{{Item: 1}},
	}
	p := NewM(bounds, 0, options, SeqOrder())
	tb := KnuthTiebreak()

	// item 1 (index 2 internally, 0-based external item 1) has slack 2,
	// item 0 has slack 0: the lower-slack item must win the tie.
	if !tb.Replace(2, 1, p) {
		t.Error("KnuthTiebreak should replace the higher-slack incumbent with the lower-slack challenger")
	}
	if tb.Replace(1, 2, p) {
		t.Error("KnuthTiebreak should not replace a lower-slack incumbent with a higher-slack challenger")
	}
}
