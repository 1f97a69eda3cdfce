package ratelimit

import (
	"errors"
	"fmt"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

var (
	ErrLimitTooHigh         = errors.New("limit exceeds type(uint192).max")
	ErrNegativeValue        = errors.New("limit and window must not be negative")
	ErrMissingValue         = errors.New("limit and window must be set")
	ErrSelfLoop             = errors.New("destination equals source")
	ErrDuplicateDestination = errors.New("duplicate destination")
	ErrNotInTopology        = errors.New("network is not part of the topology")
)

// ConfigurationError reports authored rate limit data that can never be
// submitted. It is raised before any chain interaction and must not be retried.
type ConfigurationError struct {
	Source      endpoint.ID
	Destination endpoint.ID
	Err         error
}

func (e *ConfigurationError) Error() string {
	if e.Destination == 0 {
		return fmt.Sprintf("invalid rate limit configuration for %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("invalid rate limit from %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// LookupError is returned by Reconcile when on-chain state was not fetched for
// a desired destination. It points at a bug in the caller, not at chain data.
type LookupError struct {
	Destination endpoint.ID
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no on-chain rate limit state for destination %s", e.Destination)
}
