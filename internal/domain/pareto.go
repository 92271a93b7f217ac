package domain

// Cost is a (duration, emissions) pair accumulated along a path.
type Cost struct {
	Duration float64
	CO2      float64
}

// ParetoFront holds the non-dominated costs seen at one node during one search.
// It is not safe for concurrent use.
type ParetoFront struct {
	entries []Cost
}

// Report whether c is covered by an existing entry.
// An identical entry counts as covering.
func (f *ParetoFront) Covers(c Cost) bool {
	for _, e := range f.entries {
		if e.Duration <= c.Duration && e.CO2 <= c.CO2 {
			return true
		}
	}
	return false
}

// Add inserts c unless it is covered, evicting any entries c covers.
// Returns false when c was rejected.
func (f *ParetoFront) Add(c Cost) bool {
	if f.Covers(c) {
		return false
	}
	kept := f.entries[:0]
	for _, e := range f.entries {
		if !(c.Duration <= e.Duration && c.CO2 <= e.CO2) {
			kept = append(kept, e)
		}
	}
	f.entries = append(kept, c)
	return true
}

// Contains reports whether c is currently an entry of the front.
func (f *ParetoFront) Contains(c Cost) bool {
	for _, e := range f.entries {
		if e == c {
			return true
		}
	}
	return false
}

func (f *ParetoFront) Len() int { return len(f.entries) }

// Return a copy of the current entries in insertion order.
func (f *ParetoFront) Entries() []Cost {
	out := make([]Cost, len(f.entries))
	copy(out, f.entries)
	return out
}
