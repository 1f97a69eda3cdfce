// Package endpoint identifies the networks of the deployment topology by their
// LayerZero V2 endpoint id.
package endpoint

import (
	"fmt"
	"strconv"
	"strings"

	selectors "github.com/smartcontractkit/chain-selectors"
)

// ID is a LayerZero V2 endpoint id. It is the network key used throughout the
// topology and as the destination key of outbound rate limits.
type ID uint32

const (
	EthereumV2Mainnet    ID = 30101
	ArbitrumV2Mainnet    ID = 30110
	HyperliquidV2Mainnet ID = 30367
)

var names = map[ID]string{
	EthereumV2Mainnet:    "ETHEREUM_V2_MAINNET",
	ArbitrumV2Mainnet:    "ARBITRUM_V2_MAINNET",
	HyperliquidV2Mainnet: "HYPERLIQUID_V2_MAINNET",
}

// evmChainIDs maps known endpoints to the EVM chain id they are deployed on.
var evmChainIDs = map[ID]uint64{
	EthereumV2Mainnet:    1,
	ArbitrumV2Mainnet:    42161,
	HyperliquidV2Mainnet: 999,
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return fmt.Sprintf("%s(%d)", name, uint32(id))
	}
	return fmt.Sprintf("EndpointID(%d)", uint32(id))
}

// Name returns the well-known name of the endpoint or its decimal value.
func (id ID) Name() string {
	if name, ok := names[id]; ok {
		return name
	}
	return strconv.FormatUint(uint64(id), 10)
}

// EVMChainID returns the EVM chain id of a known endpoint.
func (id ID) EVMChainID() (uint64, bool) {
	chainID, ok := evmChainIDs[id]
	return chainID, ok
}

// ParseID accepts either a decimal endpoint id or a well-known name such as
// "ETHEREUM_V2_MAINNET" (case-insensitive).
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty endpoint id")
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return ID(v), nil
	}
	for id, name := range names {
		if strings.EqualFold(name, s) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint %q", s)
}

// ChainDetails resolves the chain selector and canonical chain name of an EVM chain id.
func ChainDetails(chainID uint64) (selectors.ChainDetails, error) {
	details, err := selectors.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(chainID, 10), selectors.FamilyEVM)
	if err != nil {
		return selectors.ChainDetails{}, fmt.Errorf("failed to get chain details for EVM chain %d: %w", chainID, err)
	}
	return details, nil
}
