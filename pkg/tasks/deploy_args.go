package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

// AddressBook resolves deployed contract addresses per network.
type AddressBook interface {
	Address(network, contract string) (common.Address, error)
}

// RateLimitArg is the JSON form of a RateLimiter.RateLimitConfig constructor argument.
type RateLimitArg struct {
	DstEid uint32 `json:"dstEid"`
	Limit  string `json:"limit"`
	Window string `json:"window"`
}

// DeployArgs lists the constructor arguments of the adapter on one network.
// Addresses are checksummed.
type DeployArgs struct {
	Network  string            `json:"network"`
	EID      uint32            `json:"eid"`
	Contract string            `json:"contract"`
	Args     []json.RawMessage `json:"args"`
}

// BuildDeployArgs computes the constructor arguments of the adapter deployed
// on eid. The Ethereum adapter locks the existing token; every other network
// uses the mint-burn adapter on top of its own token deployment.
func BuildDeployArgs(network string, eid endpoint.ID, topo *topology.Topology, book AddressBook, owner common.Address) (*DeployArgs, error) {
	contract, err := topo.ContractName(eid)
	if err != nil {
		return nil, err
	}
	endpointV2, err := book.Address(network, topology.ContractEndpointV2)
	if err != nil {
		return nil, err
	}
	limits, err := topo.RateLimitsFor(eid)
	if err != nil {
		return nil, err
	}

	var args []any
	switch contract {
	case topology.ContractMorphoOFTAdapter:
		args = []any{topology.EthereumMorphoTokenAddress.Hex(), endpointV2.Hex(), owner.Hex(), rateLimitArgs(limits)}
	case topology.ContractMorphoMintBurnOFTAdapter:
		token, err := book.Address(network, topology.TokenContractName(eid))
		if err != nil {
			return nil, err
		}
		args = []any{token.Hex(), token.Hex(), endpointV2.Hex(), owner.Hex(), rateLimitArgs(limits)}
	default:
		return nil, fmt.Errorf("no constructor layout for %s", contract)
	}

	out := &DeployArgs{Network: network, EID: uint32(eid), Contract: contract}
	for _, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode constructor argument: %w", err)
		}
		out.Args = append(out.Args, raw)
	}
	return out, nil
}

func rateLimitArgs(configs []ratelimit.Config) []RateLimitArg {
	out := make([]RateLimitArg, 0, len(configs))
	for _, c := range configs {
		out = append(out, RateLimitArg{
			DstEid: uint32(c.Destination),
			Limit:  c.Limit.String(),
			Window: c.Window.String(),
		})
	}
	return out
}
