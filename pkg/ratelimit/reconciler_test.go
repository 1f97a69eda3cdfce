package ratelimit_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
)

func state(limit, window int64) ratelimit.State {
	return ratelimit.State{
		AmountInFlight: big.NewInt(5),
		LastUpdated:    big.NewInt(123),
		Limit:          big.NewInt(limit),
		Window:         big.NewInt(window),
	}
}

func TestReconcile_InSync(t *testing.T) {
	desired := []ratelimit.Config{ratelimit.NewConfig(netB, big.NewInt(100), 50)}
	onChain := map[endpoint.ID]ratelimit.State{netB: state(100, 50)}

	result, err := ratelimit.Reconcile(desired, onChain)
	require.NoError(t, err)
	assert.False(t, result.NeedsUpdate)
	assert.Empty(t, result.Mismatches)
}

func TestReconcile_ReportsOnlyDifferingDestinations(t *testing.T) {
	desired := []ratelimit.Config{
		ratelimit.NewConfig(netB, big.NewInt(100), 50),
		ratelimit.NewConfig(netC, big.NewInt(200), 100),
	}
	onChain := map[endpoint.ID]ratelimit.State{
		netB: state(100, 50),
		netC: state(150, 100),
	}

	result, err := ratelimit.Reconcile(desired, onChain)
	require.NoError(t, err)
	assert.True(t, result.NeedsUpdate)
	assert.Equal(t, []ratelimit.Mismatch{{
		Destination:   netC,
		OnChainLimit:  big.NewInt(150),
		OnChainWindow: big.NewInt(100),
		DesiredLimit:  big.NewInt(200),
		DesiredWindow: big.NewInt(100),
	}}, result.Mismatches)
}

func TestReconcile_ComparesLimitAndWindow(t *testing.T) {
	tests := []struct {
		name    string
		onChain ratelimit.State
		want    bool
	}{
		{name: "equal", onChain: state(100, 50), want: false},
		{name: "limit differs by one", onChain: state(101, 50), want: true},
		{name: "window differs", onChain: state(100, 49), want: true},
		{name: "both differ", onChain: state(0, 0), want: true},
		{name: "unset on chain", onChain: ratelimit.State{}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired := []ratelimit.Config{ratelimit.NewConfig(netB, big.NewInt(100), 50)}
			result, err := ratelimit.Reconcile(desired, map[endpoint.ID]ratelimit.State{netB: tt.onChain})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.NeedsUpdate)
			if tt.want {
				require.Len(t, result.Mismatches, 1)
				assert.Equal(t, netB, result.Mismatches[0].Destination)
			}
		})
	}
}

func TestReconcile_IgnoresTelemetry(t *testing.T) {
	desired := []ratelimit.Config{ratelimit.NewConfig(netB, big.NewInt(100), 50)}
	onChain := map[endpoint.ID]ratelimit.State{netB: {
		AmountInFlight: big.NewInt(99),
		LastUpdated:    big.NewInt(1_700_000_000),
		Limit:          big.NewInt(100),
		Window:         big.NewInt(50),
	}}

	result, err := ratelimit.Reconcile(desired, onChain)
	require.NoError(t, err)
	assert.False(t, result.NeedsUpdate)
}

func TestReconcile_MissingStateIsLookupError(t *testing.T) {
	desired := []ratelimit.Config{
		ratelimit.NewConfig(netB, big.NewInt(100), 50),
		ratelimit.NewConfig(netC, big.NewInt(100), 50),
	}
	onChain := map[endpoint.ID]ratelimit.State{netB: state(1, 1)}

	result, err := ratelimit.Reconcile(desired, onChain)
	require.Error(t, err)
	assert.Equal(t, ratelimit.Result{}, result)

	var lookupErr *ratelimit.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, netC, lookupErr.Destination)
}

func TestReconcile_EmptyDesired(t *testing.T) {
	result, err := ratelimit.Reconcile(nil, nil)
	require.NoError(t, err)
	assert.False(t, result.NeedsUpdate)
}

func TestReconcile_ResolvedDefaultsInSync(t *testing.T) {
	desired, err := ratelimit.Resolve(netA, []endpoint.ID{netA, netB, netC}, nil)
	require.NoError(t, err)

	onChain := make(map[endpoint.ID]ratelimit.State)
	for _, dst := range ratelimit.Destinations(desired) {
		onChain[dst] = ratelimit.State{
			AmountInFlight: big.NewInt(0),
			LastUpdated:    big.NewInt(0),
			Limit:          ratelimit.MaxLimit(),
			Window:         ratelimit.DefaultWindowValue(),
		}
	}

	result, err := ratelimit.Reconcile(desired, onChain)
	require.NoError(t, err)
	assert.False(t, result.NeedsUpdate)
}
