package tasks_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinom9/morpho-token-l0/pkg/deployments"
	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/tasks"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

type addressBook map[string]common.Address

func (b addressBook) Address(network, contract string) (common.Address, error) {
	addr, ok := b[network+"/"+contract]
	if !ok {
		return common.Address{}, fmt.Errorf("%s on %s: %w", contract, network, deployments.ErrNotDeployed)
	}
	return addr, nil
}

var (
	endpointV2 = common.HexToAddress("0x1a44076050125825900e736c501f859c50fE728c")
	hypeToken  = common.HexToAddress("0x00000000000000000000000000000000000000b0")
	deployer   = common.HexToAddress("0x00000000000000000000000000000000000000c0")
)

func decodeArgs(t *testing.T, args *tasks.DeployArgs) []any {
	t.Helper()
	out := make([]any, 0, len(args.Args))
	for _, raw := range args.Args {
		var v any
		require.NoError(t, json.Unmarshal(raw, &v))
		out = append(out, v)
	}
	return out
}

func TestBuildDeployArgs_Ethereum(t *testing.T) {
	book := addressBook{"ethereum-mainnet/EndpointV2": endpointV2}

	args, err := tasks.BuildDeployArgs("ethereum-mainnet", endpoint.EthereumV2Mainnet, topology.Mainnet(), book, deployer)
	require.NoError(t, err)
	assert.Equal(t, topology.ContractMorphoOFTAdapter, args.Contract)

	decoded := decodeArgs(t, args)
	require.Len(t, decoded, 4)
	assert.Equal(t, topology.EthereumMorphoTokenAddress.Hex(), decoded[0])
	assert.Equal(t, endpointV2.Hex(), decoded[1])
	assert.Equal(t, deployer.Hex(), decoded[2])

	limits, ok := decoded[3].([]any)
	require.True(t, ok)
	require.Len(t, limits, 2)
	assert.Equal(t, map[string]any{
		"dstEid": float64(30110),
		"limit":  topology.ToUnit(250_000).String(),
		"window": "2592000",
	}, limits[0])
}

func TestBuildDeployArgs_MintBurn(t *testing.T) {
	book := addressBook{
		"hyperevm-mainnet/EndpointV2":  endpointV2,
		"hyperevm-mainnet/MorphoToken": hypeToken,
	}

	args, err := tasks.BuildDeployArgs("hyperevm-mainnet", endpoint.HyperliquidV2Mainnet, topology.Mainnet(), book, deployer)
	require.NoError(t, err)
	assert.Equal(t, topology.ContractMorphoMintBurnOFTAdapter, args.Contract)

	decoded := decodeArgs(t, args)
	require.Len(t, decoded, 5)
	assert.Equal(t, hypeToken.Hex(), decoded[0])
	assert.Equal(t, hypeToken.Hex(), decoded[1])
	assert.Equal(t, endpointV2.Hex(), decoded[2])
	assert.Equal(t, deployer.Hex(), decoded[3])
}

func TestBuildDeployArgs_MissingDeployment(t *testing.T) {
	_, err := tasks.BuildDeployArgs("arbitrum-mainnet", endpoint.ArbitrumV2Mainnet, topology.Mainnet(),
		addressBook{"arbitrum-mainnet/EndpointV2": endpointV2}, deployer)
	require.ErrorIs(t, err, deployments.ErrNotDeployed)
	assert.Contains(t, err.Error(), topology.ContractMorphoTokenArbitrum)
}
