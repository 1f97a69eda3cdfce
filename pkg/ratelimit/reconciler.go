package ratelimit

import (
	"math/big"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

// Reconcile compares desired against the on-chain state of each of its
// destinations. Limits and windows are compared exactly.
//
// onChain must hold an entry for every desired destination, otherwise a
// *LookupError is returned. When the result needs an update the caller submits
// the whole desired set in one call, never only the mismatching entries.
func Reconcile(desired []Config, onChain map[endpoint.ID]State) (Result, error) {
	var mismatches []Mismatch
	for _, want := range desired {
		have, ok := onChain[want.Destination]
		if !ok {
			return Result{}, &LookupError{Destination: want.Destination}
		}
		if equal(have.Limit, want.Limit) && equal(have.Window, want.Window) {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Destination:   want.Destination,
			OnChainLimit:  cloneInt(have.Limit),
			OnChainWindow: cloneInt(have.Window),
			DesiredLimit:  cloneInt(want.Limit),
			DesiredWindow: cloneInt(want.Window),
		})
	}
	return Result{
		NeedsUpdate: len(mismatches) > 0,
		Mismatches:  mismatches,
	}, nil
}

func equal(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}
