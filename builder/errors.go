package builder

import "errors"

// Sentinel errors for the builder package. Constructors attach context
// with %w wrapping; callers must branch with errors.Is, never on strings.
var (
	// ErrTooFewVertices indicates that a size parameter (n) is smaller
	// than the minimum the requested topology needs.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrConstructFailed indicates that Build was given a nil Constructor
	// or a constructor could not complete without breaking an invariant.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadDocument indicates that a YAML graph document is malformed:
	// unparsable, an edge with a missing endpoint, or no content at all.
	ErrBadDocument = errors.New("builder: bad graph document")
)
