// Package keyset implements the narrow KeySet dependency surface that
// ability.Ability projects its key-set views through: a four-variant sum
// type over {All, None, Some(K), AllExceptSome(K)} supporting a Remove
// operation with set-difference semantics lifted to the lattice.
//
// This is deliberately small and sealed: the rest of the module consumes
// KeySet through the All/None/Some constructors and the Remove method
// only, per the spec's "consumed, not defined here" framing of this
// component.
package keyset

import "sort"

// KeySet is a set of key strings expressed as one of four variants. It is
// a sealed interface: the only implementations are the ones returned by
// All, None, Some, and AllExceptSome in this package.
type KeySet interface {
	// Remove returns the KeySet that results from subtracting other from
	// the receiver.
	Remove(other KeySet) KeySet

	sealed()
}

type allSet struct{}

// None is the empty KeySet.
type noneSet struct{}

// someSet holds exactly the given keys.
type someSet struct{ keys []string }

// allExceptSomeSet holds every key except the given ones.
type allExceptSomeSet struct{ keys []string }

func (allSet) sealed()           {}
func (noneSet) sealed()          {}
func (someSet) sealed()          {}
func (allExceptSomeSet) sealed() {}

// All returns the KeySet containing every key.
func All() KeySet { return allSet{} }

// None returns the KeySet containing no keys.
func None() KeySet { return noneSet{} }

// Some returns the KeySet containing exactly the given keys.
func Some(keys ...string) KeySet { return someSet{keys: sortedUnique(keys)} }

// AllExceptSome returns the KeySet containing every key except the given
// ones. It is exported so callers that receive a KeySet back from Remove
// can pattern-match on it (e.g. in tests asserting a specific variant),
// but it is not a top-level constructor per the KeySet dependency surface
// — the usual way to produce one is All().Remove(Some(...)).
func AllExceptSome(keys ...string) KeySet { return allExceptSomeSet{keys: sortedUnique(keys)} }

// Keys returns the explicit keys backing a Some or AllExceptSome variant,
// and false for All or None (which have no explicit key list).
func Keys(k KeySet) ([]string, bool) {
	switch v := k.(type) {
	case someSet:
		return v.keys, true
	case allExceptSomeSet:
		return v.keys, true
	default:
		return nil, false
	}
}

func sortedUnique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func diff(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, k := range b {
		exclude[k] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, k := range a {
		if _, ok := exclude[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, k := range b {
		set[k] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, k := range a {
		if _, ok := set[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

func union(a, b []string) []string {
	return sortedUnique(append(append([]string{}, a...), b...))
}

func (allSet) Remove(other KeySet) KeySet {
	switch o := other.(type) {
	case allSet:
		return None()
	case noneSet:
		return All()
	case someSet:
		return AllExceptSome(o.keys...)
	case allExceptSomeSet:
		return Some(o.keys...)
	default:
		return All()
	}
}

func (noneSet) Remove(KeySet) KeySet { return None() }

func (s someSet) Remove(other KeySet) KeySet {
	switch o := other.(type) {
	case allSet:
		return None()
	case noneSet:
		return Some(s.keys...)
	case someSet:
		return Some(diff(s.keys, o.keys)...)
	case allExceptSomeSet:
		return Some(intersect(s.keys, o.keys)...)
	default:
		return Some(s.keys...)
	}
}

func (s allExceptSomeSet) Remove(other KeySet) KeySet {
	switch o := other.(type) {
	case allSet:
		return None()
	case noneSet:
		return AllExceptSome(s.keys...)
	case someSet:
		return AllExceptSome(union(s.keys, o.keys)...)
	case allExceptSomeSet:
		return Some(diff(o.keys, s.keys)...)
	default:
		return AllExceptSome(s.keys...)
	}
}
