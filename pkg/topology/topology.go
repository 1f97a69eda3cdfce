// Package topology holds the static deployment topology: which adapter lives on
// which network, and the per-network wiring, ownership and rate limit settings.
package topology

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
)

var ErrNotConfigured = errors.New("not configured")

// Topology is the set of networks taking part in the deployment along with the
// settings authored for each of them. Missing per-network entries fall back to
// the defaults described on each getter.
type Topology struct {
	Contracts []Contract
	// Block confirmations required on the source chain. Unset means 0.
	Confirmations map[endpoint.ID]uint64
	// Unset networks use DefaultEnforcedOptions.
	EnforcedOptions        map[endpoint.ID][]EnforcedOption
	DefaultEnforcedOptions []EnforcedOption
	Owners                 map[endpoint.ID]string
	// One-way outbound rate limits keyed by source network.
	RateLimits map[endpoint.ID][]ratelimit.Config
}

// Networks returns the endpoint ids of Contracts, in order.
func (t *Topology) Networks() []endpoint.ID {
	out := make([]endpoint.ID, 0, len(t.Contracts))
	for _, c := range t.Contracts {
		out = append(out, c.EID)
	}
	return out
}

// Has reports whether eid is part of the topology.
func (t *Topology) Has(eid endpoint.ID) bool {
	return slices.Contains(t.Networks(), eid)
}

// ContractName returns the adapter contract name deployed on eid.
func (t *Topology) ContractName(eid endpoint.ID) (string, error) {
	for _, c := range t.Contracts {
		if c.EID == eid {
			return c.ContractName, nil
		}
	}
	return "", fmt.Errorf("contract name for endpoint %s: %w", eid, ErrNotConfigured)
}

func (t *Topology) ConfirmationsFor(eid endpoint.ID) uint64 {
	return t.Confirmations[eid]
}

// EnforcedOptionsFor returns a copy of the enforced options of eid.
func (t *Topology) EnforcedOptionsFor(eid endpoint.ID) []EnforcedOption {
	if opts, ok := t.EnforcedOptions[eid]; ok {
		return slices.Clone(opts)
	}
	return slices.Clone(t.DefaultEnforcedOptions)
}

// OwnerAddress returns the intended owner of the contracts on eid. Empty,
// placeholder and zero addresses are rejected.
func (t *Topology) OwnerAddress(eid endpoint.ID) (common.Address, error) {
	raw := strings.TrimSpace(t.Owners[eid])
	if raw == "" || strings.EqualFold(raw, "TODO") || !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("owner address for endpoint %s: %w", eid, ErrNotConfigured)
	}
	addr := common.HexToAddress(raw)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("owner address for endpoint %s: %w", eid, ErrNotConfigured)
	}
	return addr, nil
}

// RateLimitsFor resolves the complete outbound rate limit set of eid.
func (t *Topology) RateLimitsFor(eid endpoint.ID) ([]ratelimit.Config, error) {
	return ratelimit.Resolve(eid, t.Networks(), t.RateLimits)
}

// TokenContractName returns the token contract name deployed on eid. Arbitrum
// carries a dedicated token contract.
func TokenContractName(eid endpoint.ID) string {
	if eid == endpoint.ArbitrumV2Mainnet {
		return ContractMorphoTokenArbitrum
	}
	return ContractMorphoToken
}

var weiPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ToUnit converts a whole token amount to its 18 decimals base unit.
func ToUnit(amount int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(amount), weiPerToken)
}
