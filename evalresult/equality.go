//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"math"
	"slices"
	"strings"
)

// relTolerance is the relative tolerance applied when comparing score
// values. It matches the widely used isclose default: values are equal when
// their difference is within relTolerance of the larger magnitude. No
// absolute floor is applied, so a value only compares equal to zero when it
// is exactly zero. NaN never compares equal to anything, including itself.
const relTolerance = 1e-9

// floatsClose reports whether a and b are equal within relTolerance. Exact
// equality short-circuits first so equal infinities compare equal.
func floatsClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// equalNamedSets reports whether a and b hold equal items when treated as
// sets keyed by name. The presence check runs first: two empty collections
// are equal no matter which of them is nil, and an empty collection never
// equals a populated one. A cardinality mismatch is a failure on its own.
// Otherwise both collections are sorted by name on private copies and
// compared pairwise with the item equality relation.
//
// Name is the only stable identity key: producers may accumulate scores in
// any order, so positional comparison would be wrong. Pairing after the name
// sort assumes names are unique within each collection; EvalOutput
// construction enforces that for everything it owns.
func equalNamedSets[T any](a, b []T, name func(T) string, equal func(T, T) bool) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	if len(a) != len(b) {
		return false
	}
	as := sortedByName(a, name)
	bs := sortedByName(b, name)
	for i := range as {
		if !equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// sortedByName returns a copy of items ordered by name, leaving the caller's
// slice untouched.
func sortedByName[T any](items []T, name func(T) string) []T {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(x, y T) int {
		return strings.Compare(name(x), name(y))
	})
	return sorted
}
