package dlx

import (
	"strconv"
	"strings"
)

// Spec is a parsed problem file: a whitespace-separated items line
// (primary items, an optional '|' separating out secondary items, with
// per-primary-item multiplicity prefixes), followed by one option line
// per row.
type Spec struct {
	Primary   []string
	Secondary []string
	Options   [][]string
}

// ParseSpec parses text into a Spec. Blank lines and lines starting
// with '|' are dropped before parsing, the latter letting problem files
// use a leading '|' as a comment marker without colliding with the
// items line's group separator. sharpPref controls whether primary item
// names beginning with '#' are moved to the front (true) or back (false) of
// the primary list; this only affects display/iteration order, never
// meaning.
func ParseSpec(text string, sharpPref bool) (*Spec, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "|") {
			continue
		}
		lines = append(lines, t)
	}
	if len(lines) == 0 {
		return nil, malformedf("no items specified")
	}
	itemsLine := lines[0]
	optLines := lines[1:]
	if len(optLines) == 0 {
		return nil, semanticf("no options specified")
	}

	var groups [][]string
	cur := []string{}
	for _, tok := range strings.Fields(itemsLine) {
		if tok == "|" {
			groups = append(groups, cur)
			cur = []string{}
			continue
		}
		cur = append(cur, tok)
	}
	groups = append(groups, cur)
	if len(groups) > 2 {
		return nil, malformedf("too many '|' separators in items line")
	}

	var secondary []string
	if len(groups) > 1 {
		if len(groups[1]) == 0 {
			return nil, malformedf("no secondary items after '|'")
		}
		secondary = groups[1]
	}
	primary := groups[0]
	if len(primary) == 0 {
		return nil, semanticf("no primary items")
	}
	sortPrimaryBySharp(primary, sharpPref)

	options := make([][]string, len(optLines))
	for i, line := range optLines {
		options[i] = strings.Fields(line)
	}

	return &Spec{Primary: primary, Secondary: secondary, Options: options}, nil
}

// sortPrimaryBySharp stably partitions names into '#'-prefixed and
// plain groups, placing the sharpPref-favored group first.
func sortPrimaryBySharp(names []string, sharpPref bool) {
	var sharp, plain []string
	for _, n := range names {
		if strings.HasPrefix(n, "#") {
			sharp = append(sharp, n)
		} else {
			plain = append(plain, n)
		}
	}
	out := names[:0]
	if sharpPref {
		out = append(out, sharp...)
		out = append(out, plain...)
	} else {
		out = append(out, plain...)
		out = append(out, sharp...)
	}
	copy(names, out)
}

func validateName(name string) error {
	if name == "" {
		return malformedf("empty item name")
	}
	for _, r := range name {
		if !(r == '#' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')) {
			return malformedf("invalid item name %q: names must be alphanumeric plus '#'", name)
		}
	}
	return nil
}

// parsePrimaryToken splits a primary-items-line token into its bare
// name and (lower, upper) multiplicity bound, per the "l:u|name" /
// "m|name" / "name" grammar. A bare name defaults to (1, 1): a primary
// item with no multiplicity prefix must be covered exactly once.
func parsePrimaryToken(tok string) (name string, lower, upper int, err error) {
	if !strings.Contains(tok, "|") {
		return tok, 1, 1, nil
	}
	parts := strings.Split(tok, "|")
	if len(parts) > 2 {
		return "", 0, 0, malformedf("too many '|' (multiplicity) separators in %q", tok)
	}
	name = parts[1]
	data := parts[0]
	if strings.Contains(data, ":") {
		bp := strings.Split(data, ":")
		if len(bp) > 2 {
			return "", 0, 0, malformedf("too many ':' (multiplicity) separators in %q", tok)
		}
		lower, err = strconv.Atoi(bp[0])
		if err != nil {
			return "", 0, 0, malformedf("non-numeric lower bound in %q", tok)
		}
		upper, err = strconv.Atoi(bp[1])
		if err != nil {
			return "", 0, 0, malformedf("non-numeric upper bound in %q", tok)
		}
	} else {
		v, verr := strconv.Atoi(data)
		if verr != nil {
			return "", 0, 0, malformedf("non-numeric bound in %q", tok)
		}
		lower, upper = v, v
	}
	if lower < 1 || lower > upper {
		return "", 0, 0, malformedf("multiplicity %q: lower bound must satisfy 1 <= lower <= upper", tok)
	}
	return name, lower, upper, nil
}

// names resolves a Spec's primary tokens into bare names and their
// (lower, upper) bounds, validating uniqueness and character class
// across the full primary+secondary name set.
func (s *Spec) names() (names []string, bounds [][2]int, err error) {
	seen := map[string]bool{}
	for _, tok := range s.Primary {
		name, lo, hi, perr := parsePrimaryToken(tok)
		if perr != nil {
			return nil, nil, perr
		}
		if verr := validateName(name); verr != nil {
			return nil, nil, verr
		}
		if seen[name] {
			return nil, nil, malformedf("duplicate item name %q", name)
		}
		seen[name] = true
		names = append(names, name)
		bounds = append(bounds, [2]int{lo, hi})
	}
	for _, name := range s.Secondary {
		if verr := validateName(name); verr != nil {
			return nil, nil, verr
		}
		if seen[name] {
			return nil, nil, malformedf("duplicate item name %q", name)
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, bounds, nil
}

// buildOptionEntries resolves every option line's tokens against names,
// interning any "name:color" suffixes into positive color IDs assigned
// in first-seen order. allowColor rejects the ":color" syntax outright
// for the uncolored flavors, since a silently-ignored color suffix
// would be a correctness trap. np is the primary-item count (names[:np]
// are primary): a color on a primary item, a name repeated within one
// option, and a primary item absent from every option are all rejected
// as semantic errors.
func buildOptionEntries(spec *Spec, names []string, np int, allowColor bool) ([][]OptEntry, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	colors := map[string]int{}
	covered := make([]bool, np)
	options := make([][]OptEntry, len(spec.Options))
	for oi, tokens := range spec.Options {
		entries := make([]OptEntry, 0, len(tokens))
		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			name := tok
			color := 0
			if ci := strings.IndexByte(tok, ':'); ci >= 0 {
				if !allowColor {
					return nil, semanticf("option %d: color suffix not allowed in this flavor", oi)
				}
				name = tok[:ci]
				colorName := tok[ci+1:]
				c, ok := colors[colorName]
				if !ok {
					c = len(colors) + 1
					colors[colorName] = c
				}
				color = c
			}
			if seen[name] {
				return nil, semanticf("option %d: item %q used twice", oi, name)
			}
			seen[name] = true
			item, ok := idx[name]
			if !ok {
				return nil, semanticf("option %d: unknown item %q", oi, name)
			}
			if item < np {
				if color != 0 {
					return nil, semanticf("option %d: primary item %q may not carry a color", oi, name)
				}
				covered[item] = true
			}
			entries = append(entries, OptEntry{Item: item, Color: color})
		}
		options[oi] = entries
	}
	for item, ok := range covered {
		if !ok {
			return nil, semanticf("primary item %q is in no options", names[item])
		}
	}
	return options, nil
}

// BuildX builds the unextended (X) flavor from a parsed Spec.
func BuildX(spec *Spec, order OptOrder) (*problemX, error) {
	names, _, err := spec.names()
	if err != nil {
		return nil, err
	}
	options, err := buildOptionEntries(spec, names, len(spec.Primary), false)
	if err != nil {
		return nil, err
	}
	return NewX(len(spec.Primary), len(spec.Secondary), options, order), nil
}

// BuildC builds the color (XC) flavor from a parsed Spec.
func BuildC(spec *Spec, order OptOrder) (*problemC, error) {
	names, _, err := spec.names()
	if err != nil {
		return nil, err
	}
	options, err := buildOptionEntries(spec, names, len(spec.Primary), true)
	if err != nil {
		return nil, err
	}
	return NewC(len(spec.Primary), len(spec.Secondary), options, order), nil
}

// BuildM builds the multiplicity (XM) flavor from a parsed Spec, using
// each primary token's "l:u|name" bound.
func BuildM(spec *Spec, order OptOrder) (*problemM, error) {
	names, bounds, err := spec.names()
	if err != nil {
		return nil, err
	}
	options, err := buildOptionEntries(spec, names, len(spec.Primary), false)
	if err != nil {
		return nil, err
	}
	return NewM(bounds, len(spec.Secondary), options, order), nil
}

// BuildMC builds the combined multiplicity+color (XMC) flavor from a
// parsed Spec.
func BuildMC(spec *Spec, order OptOrder) (*problemMC, error) {
	names, bounds, err := spec.names()
	if err != nil {
		return nil, err
	}
	options, err := buildOptionEntries(spec, names, len(spec.Primary), true)
	if err != nil {
		return nil, err
	}
	return NewMC(bounds, len(spec.Secondary), options, order), nil
}
