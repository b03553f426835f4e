// Package ability implements Ability: the composition of a permitted
// ClaimSet and a prohibited ClaimSet into an effective authorisation
// decision surface, including derivation of key-set views over
// sub-namespaces.
package ability

import (
	"github.com/arya-analytics/claims/pkg/claim"
	"github.com/arya-analytics/claims/pkg/claimset"
	"github.com/cockroachdb/errors"
)

// ErrInvalidClaim is returned by Can, Cannot, ExplicitlyProhibited, and
// the AccessTo* views when the query they're given is malformed. The
// returned error wraps ErrInvalidClaim, so errors.Is matches it, and its
// message carries the lower-level fault (claim.ErrInvalidArgument from
// query parsing) that produced it.
var ErrInvalidClaim = errors.New("[ability] - invalid claim")

// Ability is a pair of permitted and prohibited ClaimSets, reduced at
// construction time so that no permitted claim the prohibited set
// already covers survives. The reduction is asymmetric: prohibited is
// never reduced against permitted, so a denial persists even if nothing
// currently grants it.
type Ability struct {
	permitted  claimset.Set
	prohibited claimset.Set
}

// New builds an Ability from a permitted and a prohibited ClaimSet,
// dropping every permitted claim that the prohibited set's query_claim?
// relation already covers.
func New(permitted, prohibited claimset.Set) Ability {
	reduced := permitted.Reject(func(c claim.Claim) bool { return prohibited.QueryClaim(c) })
	return Ability{permitted: reduced, prohibited: prohibited}
}

// Permitted returns the Ability's reduced permitted ClaimSet.
func (a Ability) Permitted() claimset.Set { return a.permitted }

// Prohibited returns the Ability's prohibited ClaimSet, verbatim.
func (a Ability) Prohibited() claimset.Set { return a.prohibited }

// Can reports whether the Ability permits verb over resource: the
// permitted set answers the query and the prohibited set does not. An
// empty or "*" resource means "no resource" (a global-only query); see
// claim.NewQuery. A malformed resource returns ErrInvalidClaim.
func (a Ability) Can(verb claim.Verb, resource string) (bool, error) {
	q, err := claim.NewQuery(verb, resource)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidClaim, "[ability] - invalid query: %v", err)
	}
	return a.canQuery(q), nil
}

// Cannot is the negation of Can.
func (a Ability) Cannot(verb claim.Verb, resource string) (bool, error) {
	can, err := a.Can(verb, resource)
	return !can, err
}

// ExplicitlyProhibited reports whether the prohibited ClaimSet answers
// the query for verb over resource, independent of what is permitted.
func (a Ability) ExplicitlyProhibited(verb claim.Verb, resource string) (bool, error) {
	q, err := claim.NewQuery(verb, resource)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidClaim, "[ability] - invalid query: %v", err)
	}
	return a.prohibited.Query(q), nil
}

func (a Ability) canQuery(q claim.Query) bool {
	return a.permitted.Query(q) && !a.prohibited.Query(q)
}
