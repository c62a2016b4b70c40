package cube

// List is a finite set of cubes, denoting their disjunction (sum of
// products). The empty list denotes false; a list containing the empty
// cube denotes true. Equality between List values is set equality over
// their Cube elements, not slice/positional equality - use Equal, not
// reflect.DeepEqual, in every comparison (including tests).
type List []Cube

// NewList deduplicates cubes (by canonical Key) and returns the resulting
// set. Every URP operation in algebra.go funnels its result through NewList so
// callers never need to dedup manually.
func NewList(cubes []Cube) List {
	seen := make(map[string]struct{}, len(cubes))
	out := make(List, 0, len(cubes))
	for _, c := range cubes {
		nc := NewCube(c...)
		key := nc.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, nc)
	}
	return out
}

// IsFalse reports whether the list denotes the constant false (no cubes).
func (l List) IsFalse() bool { return len(l) == 0 }

// IsTrue reports whether some cube in the list is the empty (don't-care)
// cube, i.e. the list denotes the constant true.
func (l List) IsTrue() bool {
	for _, c := range l {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// IsPresent reports whether variable k appears, in either polarity, in any
// cube of the list.
func (l List) IsPresent(k int) bool {
	for _, c := range l {
		for _, lit := range c {
			if lit.Var() == k {
				return true
			}
		}
	}
	return false
}

func (l List) toSet() map[string]struct{} {
	set := make(map[string]struct{}, len(l))
	for _, c := range l {
		set[NewCube(c...).Key()] = struct{}{}
	}
	return set
}

// Equal reports whether a and b denote the same set of cubes. This is the
// PCN round-trip and algebraic-law equality of spec §8, not bit/ordering
// equality - ROBDDs, not cube lists, provide canonicity (spec §1).
func Equal(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	sa := a.toSet()
	for _, c := range b {
		if _, ok := sa[NewCube(c...).Key()]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a defensive copy of l.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}
