package sampler

import "errors"

var (
	// ErrMissingPrior is returned when a free parameter has no prior
	// configured. Raised before any likelihood evaluation.
	ErrMissingPrior = errors.New("free parameter has no prior")

	// ErrUnsupportedBackend is returned when a backend name does not
	// resolve to a registered engine. Fatal at run start, never a
	// fallback to a default.
	ErrUnsupportedBackend = errors.New("unsupported sampler backend")

	// ErrDimensionMismatch is returned when posterior statistics or the
	// sample matrix do not line up with the free parameters. This is a
	// programming error in the engine glue, not a runtime condition.
	ErrDimensionMismatch = errors.New("posterior dimensions do not match free parameters")
)
