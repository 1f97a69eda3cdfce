package topology

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
)

// EthereumMorphoTokenAddress is the MORPHO token on Ethereum mainnet.
//
// https://etherscan.io/address/0x58D97B57BB95320F9a05dC918Aef65434969c2B2
var EthereumMorphoTokenAddress = common.HexToAddress("0x58D97B57BB95320F9a05dC918Aef65434969c2B2")

// Mainnet returns the production topology. Each call builds a fresh value.
func Mainnet() *Topology {
	defaultOptions := []EnforcedOption{
		{MsgType: 1, OptionType: ExecutorOptionLzReceive, Gas: 100_000},
		// Compose sends carry a variable size compose message and need extra gas.
		{MsgType: 2, OptionType: ExecutorOptionLzReceive, Gas: 130_000},
	}

	return &Topology{
		Contracts: []Contract{
			{EID: endpoint.EthereumV2Mainnet, ContractName: ContractMorphoOFTAdapter},
			{EID: endpoint.ArbitrumV2Mainnet, ContractName: ContractMorphoMintBurnOFTAdapter},
			{EID: endpoint.HyperliquidV2Mainnet, ContractName: ContractMorphoMintBurnOFTAdapter},
		},
		Confirmations: map[endpoint.ID]uint64{
			endpoint.EthereumV2Mainnet:    15,
			endpoint.ArbitrumV2Mainnet:    20,
			endpoint.HyperliquidV2Mainnet: 1,
		},
		DefaultEnforcedOptions: defaultOptions,
		EnforcedOptions: map[endpoint.ID][]EnforcedOption{
			endpoint.EthereumV2Mainnet: {
				{MsgType: 1, OptionType: ExecutorOptionLzReceive, Gas: 70_000},
				{MsgType: 2, OptionType: ExecutorOptionLzReceive, Gas: 97_000},
			},
		},
		Owners: map[endpoint.ID]string{
			endpoint.EthereumV2Mainnet:    "0xcBa28b38103307Ec8dA98377ffF9816C164f9AFa",
			endpoint.ArbitrumV2Mainnet:    "0xFd358f49678bd408FBCe0cF6bb9DFA5857d5d9b2",
			endpoint.HyperliquidV2Mainnet: "0x34EdAe4f1Fd1b5947f6bE560ca371a56042daCbA",
		},
		RateLimits: map[endpoint.ID][]ratelimit.Config{
			endpoint.EthereumV2Mainnet: {
				ratelimit.NewConfig(endpoint.ArbitrumV2Mainnet, ToUnit(250_000), ratelimit.DefaultWindowSeconds),
				ratelimit.NewConfig(endpoint.HyperliquidV2Mainnet, ToUnit(500_000), ratelimit.DefaultWindowSeconds),
			},
			endpoint.ArbitrumV2Mainnet: {
				ratelimit.NewConfig(endpoint.EthereumV2Mainnet, ToUnit(100_000), ratelimit.DefaultWindowSeconds),
			},
			endpoint.HyperliquidV2Mainnet: {
				ratelimit.NewConfig(endpoint.EthereumV2Mainnet, ToUnit(500_000), ratelimit.DefaultWindowSeconds),
			},
		},
	}
}
