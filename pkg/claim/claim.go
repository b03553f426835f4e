// Package claim implements parsing, normalisation, and containment
// matching for a single hierarchical authorization claim of the form
// "verb:resource.path".
package claim

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Verb is the action token preceding the colon in a claim string, e.g.
// "read" or "admin".
type Verb string

var (
	globalPattern   = regexp.MustCompile(`^([A-Za-z0-9_-]+):\*$`)
	resourcePattern = regexp.MustCompile(`^([A-Za-z0-9_-]+):([A-Za-z0-9_.-]*[A-Za-z0-9_-])(\.\*)?$`)
	segmentPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Claim is an immutable grant of a Verb over a dotted resource path, or
// over every resource under that Verb ("global"). The zero value is not a
// valid Claim; construct one with Parse.
type Claim struct {
	verb     Verb
	global   bool
	resource string
	parts    []string
	clean    string
}

// Parse parses a single claim string per the grammar in the claim string
// grammar: "verb:*" (global) or "verb:resource[.*]" (scoped, with the
// trailing ".*" stripped as syntactic sugar). Anything else returns
// ErrInvalidClaim.
func Parse(s string) (Claim, error) {
	if m := globalPattern.FindStringSubmatch(s); m != nil {
		v := Verb(m[1])
		return Claim{verb: v, global: true, clean: string(v) + ":*"}, nil
	}
	if m := resourcePattern.FindStringSubmatch(s); m != nil {
		v := Verb(m[1])
		resource := m[2]
		parts := strings.Split(resource, ".")
		for _, p := range parts {
			if !segmentPattern.MatchString(p) {
				return Claim{}, errors.Wrapf(ErrInvalidClaim, "%q has an invalid resource segment", s)
			}
		}
		return Claim{verb: v, resource: resource, parts: parts, clean: string(v) + ":" + resource}, nil
	}
	return Claim{}, errors.Wrapf(ErrInvalidClaim, "%q is not a valid claim", s)
}

// MustParse parses s and panics if it is not a valid claim. Intended for
// literal claim strings known at compile time, such as in tests.
func MustParse(s string) Claim {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Verb returns the claim's verb.
func (c Claim) Verb() Verb { return c.verb }

// Global reports whether the claim grants its Verb over every resource.
func (c Claim) Global() bool { return c.global }

// Resource returns the claim's resource path and true, or ("", false) if
// the claim is global.
func (c Claim) Resource() (string, bool) {
	if c.global {
		return "", false
	}
	return c.resource, true
}

// ResourceParts returns a copy of the resource path split on ".", or nil
// if the claim is global.
func (c Claim) ResourceParts() []string {
	if c.global {
		return nil
	}
	out := make([]string, len(c.parts))
	copy(out, c.parts)
	return out
}

// CleanString returns the canonical textual form of the claim. It is
// uniquely determined by (Verb, Resource) and is the claim's identity.
func (c Claim) CleanString() string { return c.clean }

// String implements fmt.Stringer by returning CleanString.
func (c Claim) String() string { return c.clean }

// Equal reports whether c and other have the same Verb and Resource.
// Because of trailing-wildcard normalisation, "read:a.b" and "read:a.b.*"
// are equal.
func (c Claim) Equal(other Claim) bool {
	return c.verb == other.verb && c.global == other.global && c.resource == other.resource
}

// MarshalJSON implements the as_json/to_json surface: a Claim encodes as
// the JSON string form of its CleanString.
func (c Claim) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.clean)
}

func ancestorOrEqual(p, r string) bool {
	return p == r || strings.HasPrefix(r, p+".")
}

// Query reports whether the claim authorizes the given Query: same verb,
// and either the claim is global or the query's resource is the claim's
// resource or a descendant of it. A global query against a non-global
// claim is false; a global claim matches any resource under its verb.
func (c Claim) Query(q Query) bool {
	if c.verb != q.Verb {
		return false
	}
	if c.global {
		return true
	}
	return q.present && ancestorOrEqual(c.resource, q.Resource)
}

// Exact reports whether the claim is precisely the given Query: same
// verb, and either both are global (claim global, query resource absent)
// or both name the identical resource path.
func (c Claim) Exact(q Query) bool {
	if c.verb != q.Verb {
		return false
	}
	if c.global {
		return !q.present
	}
	return q.present && c.resource == q.Resource
}

// DirectChild returns the claim's resource segment that sits exactly one
// level below the query's resource (or, if the query has no resource, the
// claim's sole segment), and true if such a segment exists.
func (c Claim) DirectChild(q Query) (string, bool) {
	if c.verb != q.Verb || c.global {
		return "", false
	}
	if !q.present {
		if len(c.parts) == 1 {
			return c.parts[0], true
		}
		return "", false
	}
	if len(c.parts) != len(q.Parts)+1 || !strings.HasPrefix(c.resource, q.Resource+".") {
		return "", false
	}
	return c.parts[len(c.parts)-1], true
}

// DirectChildOK is the boolean projection of DirectChild.
func (c Claim) DirectChildOK(q Query) bool {
	_, ok := c.DirectChild(q)
	return ok
}

// DirectDescendant returns the claim's resource segment that sits
// immediately below the query's resource along the claim's actual path
// (which may lie deeper than one level), and true if the claim strictly
// extends the query's resource (or, if the query has no resource, the
// claim's first segment).
func (c Claim) DirectDescendant(q Query) (string, bool) {
	if c.verb != q.Verb || c.global {
		return "", false
	}
	if !q.present {
		return c.parts[0], true
	}
	if !strings.HasPrefix(c.resource, q.Resource+".") {
		return "", false
	}
	return c.parts[len(q.Parts)], true
}

// DirectDescendantOK is the boolean projection of DirectDescendant.
func (c Claim) DirectDescendantOK(q Query) bool {
	_, ok := c.DirectDescendant(q)
	return ok
}
