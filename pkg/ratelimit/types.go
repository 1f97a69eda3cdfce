// Package ratelimit derives the desired outbound rate limits of a network and
// reconciles them against the state read from its OFT adapter.
//
// Everything in this package is pure and safe for concurrent use.
package ratelimit

import (
	"math/big"
	"time"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

// DefaultWindow is the window applied to every destination without an authored limit.
const DefaultWindow = 30 * 24 * time.Hour

// DefaultWindowSeconds is DefaultWindow expressed in seconds (2,592,000).
const DefaultWindowSeconds = uint64(DefaultWindow / time.Second)

// maxLimit is type(uint192).max, the widest limit the adapter can store.
var maxLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 192), big.NewInt(1))

// MaxLimit returns 2^192 - 1. A fresh value is returned on every call.
func MaxLimit() *big.Int {
	return new(big.Int).Set(maxLimit)
}

// DefaultWindowValue returns DefaultWindowSeconds as a fresh *big.Int.
func DefaultWindowValue() *big.Int {
	return new(big.Int).SetUint64(DefaultWindowSeconds)
}

// Config is one outbound rate limit: at most Limit token units may flow toward
// Destination within a sliding Window (seconds).
type Config struct {
	Destination endpoint.ID
	Limit       *big.Int
	Window      *big.Int
}

// NewConfig builds a Config from plain integers.
func NewConfig(destination endpoint.ID, limit *big.Int, windowSeconds uint64) Config {
	return Config{
		Destination: destination,
		Limit:       new(big.Int).Set(limit),
		Window:      new(big.Int).SetUint64(windowSeconds),
	}
}

// DefaultConfig returns the limit synthesized for destinations nobody configured.
func DefaultConfig(destination endpoint.ID) Config {
	return Config{
		Destination: destination,
		Limit:       MaxLimit(),
		Window:      DefaultWindowValue(),
	}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	return Config{
		Destination: c.Destination,
		Limit:       cloneInt(c.Limit),
		Window:      cloneInt(c.Window),
	}
}

// State is the adapter's view of one outbound rate limit. Only Limit and Window
// take part in reconciliation.
type State struct {
	AmountInFlight *big.Int
	LastUpdated    *big.Int
	Limit          *big.Int
	Window         *big.Int
}

// Mismatch records a destination whose on-chain limit or window differs from
// the desired one.
type Mismatch struct {
	Destination   endpoint.ID
	OnChainLimit  *big.Int
	OnChainWindow *big.Int
	DesiredLimit  *big.Int
	DesiredWindow *big.Int
}

// Result is the outcome of Reconcile.
type Result struct {
	NeedsUpdate bool
	Mismatches  []Mismatch
}

// Destinations lists the destinations of desired in order. Callers fetch
// on-chain state for exactly these before reconciling.
func Destinations(desired []Config) []endpoint.ID {
	out := make([]endpoint.ID, 0, len(desired))
	for _, c := range desired {
		out = append(out, c.Destination)
	}
	return out
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
