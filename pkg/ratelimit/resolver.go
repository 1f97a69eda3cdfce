package ratelimit

import (
	"slices"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

// Resolve returns the complete outbound rate limit set of source.
//
// The authored entries of source come first, in authored order, followed by a
// DefaultConfig for every other network of the topology not already covered,
// in topology order. Authored destinations outside the topology are kept.
// Nothing in explicit is modified and the result shares no memory with it.
//
// Every entry is validated before returning; on failure no entries are
// returned and the error is a *ConfigurationError.
func Resolve(source endpoint.ID, networks []endpoint.ID, explicit map[endpoint.ID][]Config) ([]Config, error) {
	if !slices.Contains(networks, source) {
		return nil, &ConfigurationError{Source: source, Err: ErrNotInTopology}
	}

	authored := explicit[source]
	resolved := make([]Config, 0, max(len(authored), len(networks)-1))
	covered := make(map[endpoint.ID]struct{}, len(networks))

	for _, c := range authored {
		if c.Destination == source {
			return nil, &ConfigurationError{Source: source, Destination: c.Destination, Err: ErrSelfLoop}
		}
		if _, ok := covered[c.Destination]; ok {
			return nil, &ConfigurationError{Source: source, Destination: c.Destination, Err: ErrDuplicateDestination}
		}
		covered[c.Destination] = struct{}{}
		resolved = append(resolved, c.Clone())
	}

	for _, network := range networks {
		if network == source {
			continue
		}
		if _, ok := covered[network]; ok {
			continue
		}
		covered[network] = struct{}{}
		resolved = append(resolved, DefaultConfig(network))
	}

	for _, c := range resolved {
		if err := validate(c); err != nil {
			return nil, &ConfigurationError{Source: source, Destination: c.Destination, Err: err}
		}
	}
	return resolved, nil
}

func validate(c Config) error {
	if c.Limit == nil || c.Window == nil {
		return ErrMissingValue
	}
	if c.Limit.Sign() < 0 || c.Window.Sign() < 0 {
		return ErrNegativeValue
	}
	if c.Limit.Cmp(maxLimit) > 0 {
		return ErrLimitTooHigh
	}
	return nil
}
