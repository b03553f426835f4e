// Package claimset implements ClaimSet: an ordered, deduplicated
// collection of claim.Claim values with set-level queries that fold
// across members.
package claimset

import (
	"encoding/json"
	"sort"

	"github.com/arya-analytics/claims/pkg/claim"
	"github.com/cockroachdb/errors"
)

// Set is an ordered set of claim.Claim values, sorted ascending by
// CleanString and deduplicated by claim equality. The zero Set is empty
// and ready to use. Queries never mutate a Set; Add is the one exception
// (see Add on sharing a Set across goroutines).
type Set struct {
	claims []claim.Claim
}

// Option configures New.
type Option func(*options)

type options struct {
	strict bool
}

// Strict controls whether New aborts on the first invalid claim string
// (true, the default) or silently skips invalid strings (false).
func Strict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// New parses strs into a Set. With Strict(true) (the default), the first
// invalid claim string aborts construction with claim.ErrInvalidClaim.
// With Strict(false), invalid strings are skipped.
func New(strs []string, opts ...Option) (Set, error) {
	o := options{strict: true}
	for _, opt := range opts {
		opt(&o)
	}
	claims := make([]claim.Claim, 0, len(strs))
	for _, s := range strs {
		c, err := claim.Parse(s)
		if err != nil {
			if o.strict {
				return Set{}, err
			}
			continue
		}
		claims = append(claims, c)
	}
	return For(claims), nil
}

// MustNew is like New but panics on error. Intended for literal claim
// lists known at compile time, such as in tests.
func MustNew(strs []string, opts ...Option) Set {
	s, err := New(strs, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// For builds a Set directly from already-parsed Claims, sorting and
// deduplicating them. It is the safe way to rebuild a Set for sharing
// across goroutines instead of mutating one in place with Add.
func For(claims []claim.Claim) Set {
	seen := make(map[string]struct{}, len(claims))
	out := make([]claim.Claim, 0, len(claims))
	for _, c := range claims {
		if _, ok := seen[c.CleanString()]; ok {
			continue
		}
		seen[c.CleanString()] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CleanString() < out[j].CleanString() })
	return Set{claims: out}
}

// Add inserts c into the Set, maintaining sort order and deduplication.
// It is the only mutating operation on Set; a Set shared across
// goroutines must not call Add without external synchronisation, or
// should instead be rebuilt with For.
func (s *Set) Add(c claim.Claim) {
	for _, existing := range s.claims {
		if existing.CleanString() == c.CleanString() {
			return
		}
	}
	i := sort.Search(len(s.claims), func(i int) bool { return s.claims[i].CleanString() >= c.CleanString() })
	s.claims = append(s.claims, claim.Claim{})
	copy(s.claims[i+1:], s.claims[i:])
	s.claims[i] = c
}

// Len returns the number of claims in the Set.
func (s Set) Len() int { return len(s.claims) }

// Claims returns a copy of the Set's claims, in order.
func (s Set) Claims() []claim.Claim {
	out := make([]claim.Claim, len(s.claims))
	copy(out, s.claims)
	return out
}

// Query reports whether any member claim answers q's Query relation.
func (s Set) Query(q claim.Query) bool {
	for _, c := range s.claims {
		if c.Query(q) {
			return true
		}
	}
	return false
}

// QueryClaim reports whether any member claim answers the Query relation
// for c's own (verb, resource) pair, treating a global c as having no
// resource.
func (s Set) QueryClaim(c claim.Claim) bool {
	return s.Query(claim.QueryFromClaim(c))
}

// Exact reports whether any member claim answers q's Exact relation.
func (s Set) Exact(q claim.Query) bool {
	for _, c := range s.claims {
		if c.Exact(q) {
			return true
		}
	}
	return false
}

// DirectChildren returns the sorted, deduplicated set of every non-empty
// result of DirectChild(q) across the Set's members.
func (s Set) DirectChildren(q claim.Query) []string {
	return s.foldSegments(q, claim.Claim.DirectChild)
}

// DirectDescendants returns the sorted, deduplicated set of every
// non-empty result of DirectDescendant(q) across the Set's members.
func (s Set) DirectDescendants(q claim.Query) []string {
	return s.foldSegments(q, claim.Claim.DirectDescendant)
}

func (s Set) foldSegments(q claim.Query, f func(claim.Claim, claim.Query) (string, bool)) []string {
	seen := make(map[string]struct{})
	for _, c := range s.claims {
		if seg, ok := f(c, q); ok {
			seen[seg] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for seg := range seen {
		out = append(out, seg)
	}
	sort.Strings(out)
	return out
}

// Select returns a new Set containing only the members for which
// predicate returns true.
func (s Set) Select(predicate func(claim.Claim) bool) Set {
	out := make([]claim.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		if predicate(c) {
			out = append(out, c)
		}
	}
	return Set{claims: out}
}

// Reject returns a new Set containing only the members for which
// predicate returns false.
func (s Set) Reject(predicate func(claim.Claim) bool) Set {
	return s.Select(func(c claim.Claim) bool { return !predicate(c) })
}

// Equal reports whether s and other contain the same claims in the same
// order, i.e. have identical sorted CleanString lists.
func (s Set) Equal(other Set) bool {
	if len(s.claims) != len(other.claims) {
		return false
	}
	for i, c := range s.claims {
		if c.CleanString() != other.claims[i].CleanString() {
			return false
		}
	}
	return true
}

// CleanStrings returns the sorted CleanString of every member claim.
func (s Set) CleanStrings() []string {
	out := make([]string, len(s.claims))
	for i, c := range s.claims {
		out[i] = c.CleanString()
	}
	return out
}

// MarshalJSON implements the as_json surface: a Set encodes as a sorted
// JSON array of its members' clean strings.
func (s Set) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(s.CleanStrings())
	if err != nil {
		return nil, errors.Wrap(err, "[claimset] - failed to marshal")
	}
	return b, nil
}
