// Package wiring generates the messaging pathways between every pair of
// adapters in the topology, in the two-way layout consumed by the LayerZero
// metadata tooling.
package wiring

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

var (
	DefaultRequiredDVNs             = []string{"LayerZero Labs", "Canary"}
	DefaultOptionalDVNs             = []string{"Deutsche Telekom", "P2P"}
	DefaultOptionalDVNThreshold int = 1
)

// DVNs lists the verifier networks securing a pathway.
type DVNs struct {
	Required          []string
	Optional          []string
	OptionalThreshold int
}

// Pathway is a bidirectional connection between A and B.
//
// Confirmations holds [A to B, B to A]. EnforcedOptions holds [options of B,
// options of A]: options are enforced on the receiving side of each direction.
type Pathway struct {
	A               topology.Contract
	B               topology.Contract
	DVNs            DVNs
	Confirmations   [2]uint64
	EnforcedOptions [2][]topology.EnforcedOption
}

// MarshalJSON encodes the pathway as the TwoWayConfig tuple
// [A, B, [required, [optional, threshold]], [confirmations], [options]].
func (p Pathway) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		p.A,
		p.B,
		[]any{nonNil(p.DVNs.Required), []any{nonNil(p.DVNs.Optional), p.DVNs.OptionalThreshold}},
		p.Confirmations,
		[]any{nonNilOptions(p.EnforcedOptions[0]), nonNilOptions(p.EnforcedOptions[1])},
	})
}

// ContractConfig sets the owner and delegate of one adapter.
type ContractConfig struct {
	Contract topology.Contract `json:"contract"`
	Owner    common.Address    `json:"owner"`
	Delegate common.Address    `json:"delegate"`
}

// Config is the full OApp graph of the topology.
type Config struct {
	Contracts   []ContractConfig `json:"contracts"`
	Connections []Pathway        `json:"connections"`
}

// Generate builds one pathway per unordered pair of contracts, in topology
// order, and the owner config of every contract. It fails when a contract has
// no configured owner.
func Generate(topo *topology.Topology) (*Config, error) {
	cfg := &Config{
		Contracts:   make([]ContractConfig, 0, len(topo.Contracts)),
		Connections: Pathways(topo),
	}
	for _, c := range topo.Contracts {
		owner, err := topo.OwnerAddress(c.EID)
		if err != nil {
			return nil, fmt.Errorf("failed to build contract config: %w", err)
		}
		cfg.Contracts = append(cfg.Contracts, ContractConfig{
			Contract: c,
			Owner:    owner,
			Delegate: owner,
		})
	}
	return cfg, nil
}

// Pathways returns the pairwise pathways of the topology.
func Pathways(topo *topology.Topology) []Pathway {
	n := len(topo.Contracts)
	pathways := make([]Pathway, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			from, to := topo.Contracts[i], topo.Contracts[j]
			pathways = append(pathways, Pathway{
				A: from,
				B: to,
				DVNs: DVNs{
					Required:          append([]string(nil), DefaultRequiredDVNs...),
					Optional:          append([]string(nil), DefaultOptionalDVNs...),
					OptionalThreshold: DefaultOptionalDVNThreshold,
				},
				Confirmations: [2]uint64{topo.ConfirmationsFor(from.EID), topo.ConfirmationsFor(to.EID)},
				EnforcedOptions: [2][]topology.EnforcedOption{
					topo.EnforcedOptionsFor(to.EID),
					topo.EnforcedOptionsFor(from.EID),
				},
			})
		}
	}
	return pathways
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilOptions(s []topology.EnforcedOption) []topology.EnforcedOption {
	if s == nil {
		return []topology.EnforcedOption{}
	}
	return s
}
