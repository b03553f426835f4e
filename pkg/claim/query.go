package claim

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Query is the normalised form of the query-hash surface described in
// claim's external interface: a single verb paired with an optional
// resource. The zero Query is not meaningful on its own; build one with
// NewQuery, GlobalQuery, or QueryFromMap.
type Query struct {
	Verb     Verb
	Resource string
	Parts    []string
	present  bool
}

// HasResource reports whether the query names a concrete resource path,
// as opposed to an absent, empty, or "*" resource (all of which are
// equivalent "no resource" forms).
func (q Query) HasResource() bool { return q.present }

// NewQuery builds a Query for verb over resource. resource may be "" or
// "*" to mean "no resource" (matching only a claim's global reach), or a
// valid resource path optionally suffixed ".*". Any other shape returns
// ErrInvalidArgument.
func NewQuery(verb Verb, resource string) (Query, error) {
	return newQuery(verb, &resource)
}

// GlobalQuery builds a Query for verb with no resource.
func GlobalQuery(verb Verb) (Query, error) {
	return newQuery(verb, nil)
}

func newQuery(verb Verb, resource *string) (Query, error) {
	if verb == "" {
		return Query{}, errors.Wrap(ErrInvalidArgument, "[claim] - query verb is required")
	}
	if resource == nil || *resource == "" || *resource == "*" {
		return Query{Verb: verb}, nil
	}
	r := strings.TrimSuffix(*resource, ".*")
	if r == "" {
		return Query{}, errors.Wrapf(ErrInvalidArgument, "%q is not a valid query resource", *resource)
	}
	parts := strings.Split(r, ".")
	for _, p := range parts {
		if !segmentPattern.MatchString(p) {
			return Query{}, errors.Wrapf(ErrInvalidArgument, "%q is not a valid query resource", *resource)
		}
	}
	return Query{Verb: verb, Resource: r, Parts: parts, present: true}, nil
}

// QueryFromMap adapts the single-entry-mapping query-hash surface: m must
// contain exactly one verb, mapped to its resource (nil for absent).
// Any other shape returns ErrInvalidArgument.
func QueryFromMap(m map[string]*string) (Query, error) {
	if len(m) != 1 {
		return Query{}, errors.Wrap(ErrInvalidArgument, "[claim] - query must have exactly one verb")
	}
	for v, r := range m {
		return newQuery(Verb(v), r)
	}
	panic("unreachable")
}

// QueryFromClaim builds the Query that exactly names c's own (verb,
// resource) pair, treating a global claim's resource as absent. c's
// resource was already validated at parse time, so this never fails.
func QueryFromClaim(c Claim) Query {
	if c.global {
		return Query{Verb: c.verb}
	}
	return Query{Verb: c.verb, Resource: c.resource, Parts: c.ResourceParts(), present: true}
}
