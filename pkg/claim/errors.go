package claim

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidClaim is returned when a string fails the claim grammar: empty,
	// no colon, a wildcard outside the trailing position, or any other shape
	// not accepted by the global or resource forms.
	ErrInvalidClaim = errors.New("[claim] - invalid claim")
	// ErrInvalidArgument is returned by query parsing when the caller's
	// resource argument does not conform to the resource grammar.
	ErrInvalidArgument = errors.New("[claim] - invalid argument")
)
