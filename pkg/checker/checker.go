// Package checker implements the string-level shortcut API described in
// the spec's Checker component: the same ancestor/descendant relations
// as claim and claimset, but operating directly on raw claim strings so
// callers that cannot afford Claim parsing can still answer the same
// questions. It splits a string uniformly on both "." and ":" — the verb
// segment is just the outermost path component.
package checker

import (
	"sort"
	"strings"
)

// All is the sentinel SubClaims returns in place of an enumerated list
// when the query itself is exactly or ancestrally covered by one of the
// claims: there is no finite list of sub-keys to enumerate because every
// key under the query is accessible.
const All = "*"

func segments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ':' })
}

func stripWildcard(segs []string) []string {
	if len(segs) > 0 && segs[len(segs)-1] == "*" {
		return segs[:len(segs)-1]
	}
	return segs
}

func isPrefix(prefix, of []string) bool {
	if len(prefix) > len(of) {
		return false
	}
	for i, s := range prefix {
		if of[i] != s {
			return false
		}
	}
	return true
}

// QueryClaims reports whether some rule in claims is an ancestor (a
// segment-prefix) of query; a rule ending in "*" matches any descendant.
func QueryClaims(query string, claims []string) bool {
	querySegs := segments(query)
	for _, c := range claims {
		if isPrefix(stripWildcard(segments(c)), querySegs) {
			return true
		}
	}
	return false
}

// ExactOrAncestor reports whether the exact query, or any of its
// segment-prefixes, appears verbatim in claims — or appears there
// suffixed ":*" (for the verb-only prefix) or ".*" (for a deeper one).
func ExactOrAncestor(query string, claims []string) bool {
	present := make(map[string]struct{}, len(claims))
	for _, c := range claims {
		present[c] = struct{}{}
	}
	segs := segments(query)
	for k := 1; k <= len(segs); k++ {
		prefix := segs[0]
		if k > 1 {
			prefix += ":" + strings.Join(segs[1:k], ".")
		}
		if _, ok := present[prefix]; ok {
			return true
		}
		if _, ok := present[prefix+":*"]; ok {
			return true
		}
		if _, ok := present[prefix+".*"]; ok {
			return true
		}
	}
	return false
}

// SubClaims returns [All] if query is exactly or ancestrally covered by
// one of claims; otherwise it returns every claim string that has
// query+"." or query+":" as a literal prefix.
func SubClaims(query string, claims []string) []string {
	if ExactOrAncestor(query, claims) {
		return []string{All}
	}
	out := make([]string, 0, len(claims))
	for _, c := range claims {
		if strings.HasPrefix(c, query+".") || strings.HasPrefix(c, query+":") {
			out = append(out, c)
		}
	}
	return out
}

// SubClaimsDirectChildren returns the sorted, unique first segments of
// SubClaims(query, claims), after stripping the query+separator prefix
// from each. With onlyDirect true, a sub-claim is retained only if its
// remainder (after stripping the prefix) is a single segment, or a single
// segment followed by ".*". If SubClaims itself resolves to the [All]
// sentinel, that sentinel is returned unchanged: there is no finite key
// list to strip a prefix from when everything is accessible.
func SubClaimsDirectChildren(query string, claims []string, onlyDirect bool) []string {
	sub := SubClaims(query, claims)
	if len(sub) == 1 && sub[0] == All {
		return []string{All}
	}

	seen := make(map[string]struct{})
	for _, c := range sub {
		var remainder string
		switch {
		case strings.HasPrefix(c, query+"."):
			remainder = c[len(query)+1:]
		case strings.HasPrefix(c, query+":"):
			remainder = c[len(query)+1:]
		default:
			continue
		}
		if onlyDirect {
			trimmed := strings.TrimSuffix(remainder, ".*")
			if strings.ContainsAny(trimmed, ".:") {
				continue
			}
		}
		first := segments(remainder)
		if len(first) == 0 {
			continue
		}
		seen[first[0]] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
