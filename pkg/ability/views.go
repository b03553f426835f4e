package ability

import (
	"strings"

	"github.com/arya-analytics/claims/pkg/claim"
	"github.com/arya-analytics/claims/pkg/keyset"
	"github.com/cockroachdb/errors"
)

// AccessToResources derives a keyset.KeySet describing which keys
// directly under namespace (for verb) the Ability exposes:
//
//	allowed   = permitted covers namespace entirely -> All, else Some(permitted's direct descendants)
//	forbidden = prohibited covers namespace entirely -> All, else Some(prohibited's direct children)
//	result    = allowed.Remove(forbidden)
//
// The asymmetry is deliberate: a grant anywhere under namespace counts
// its first descendant segment as allowed, but a denial only removes a
// key exactly one level below namespace — a deeper denial does not
// subtract the whole subtree it sits under.
func (a Ability) AccessToResources(verb claim.Verb, namespace string) (keyset.KeySet, error) {
	q, err := claim.NewQuery(verb, namespace)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidClaim, "[ability] - invalid namespace: %v", err)
	}

	var allowed keyset.KeySet
	if a.permitted.Query(q) {
		allowed = keyset.All()
	} else {
		allowed = keyset.Some(a.permitted.DirectDescendants(q)...)
	}

	var forbidden keyset.KeySet
	if a.prohibited.Query(q) {
		forbidden = keyset.All()
	} else {
		forbidden = keyset.Some(a.prohibited.DirectChildren(q)...)
	}

	return allowed.Remove(forbidden), nil
}

// AccessToClientKeys is the key-set view over the "clients" namespace.
func (a Ability) AccessToClientKeys(verb claim.Verb) (keyset.KeySet, error) {
	return a.AccessToResources(verb, "clients")
}

// AccessToBusinessGroupKeys is the key-set view over the
// "business-groups" namespace.
func (a Ability) AccessToBusinessGroupKeys(verb claim.Verb) (keyset.KeySet, error) {
	return a.AccessToResources(verb, "business-groups")
}

// AccessToProjectKeys is the key-set view over a given client's
// "projects.project" namespace.
func (a Ability) AccessToProjectKeys(verb claim.Verb, client string) (keyset.KeySet, error) {
	return a.AccessToResources(verb, clientNamespace(client, "projects", "project"))
}

// AccessToTeamKeys is the key-set view over a given client's
// "teams.team" namespace.
func (a Ability) AccessToTeamKeys(verb claim.Verb, client string) (keyset.KeySet, error) {
	return a.AccessToResources(verb, clientNamespace(client, "teams", "team"))
}

// AccessToPeopleIDs is the key-set view over a given client's
// "people.person" namespace.
func (a Ability) AccessToPeopleIDs(verb claim.Verb, client string) (keyset.KeySet, error) {
	return a.AccessToResources(verb, clientNamespace(client, "people", "person"))
}

// AccessToProgrammeKeys is the key-set view over a given client's
// "programmes.programme" namespace.
func (a Ability) AccessToProgrammeKeys(verb claim.Verb, client string) (keyset.KeySet, error) {
	return a.AccessToResources(verb, clientNamespace(client, "programmes", "programme"))
}

func clientNamespace(client, plural, singular string) string {
	return strings.Join([]string{"clients", client, plural, singular}, ".")
}
