package endpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	selectors "github.com/smartcontractkit/chain-selectors"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

func TestID_String(t *testing.T) {
	assert.Equal(t, "ETHEREUM_V2_MAINNET(30101)", endpoint.EthereumV2Mainnet.String())
	assert.Equal(t, "EndpointID(42)", endpoint.ID(42).String())
	assert.Equal(t, "ARBITRUM_V2_MAINNET", endpoint.ArbitrumV2Mainnet.Name())
	assert.Equal(t, "42", endpoint.ID(42).Name())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    endpoint.ID
		wantErr bool
	}{
		{name: "decimal", input: "30110", want: endpoint.ArbitrumV2Mainnet},
		{name: "name", input: "HYPERLIQUID_V2_MAINNET", want: endpoint.HyperliquidV2Mainnet},
		{name: "lower case name with spaces", input: " ethereum_v2_mainnet ", want: endpoint.EthereumV2Mainnet},
		{name: "unknown decimal is accepted", input: "40000", want: endpoint.ID(40000)},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown name", input: "MOON_V2_MAINNET", wantErr: true},
		{name: "overflow", input: "4294967296", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := endpoint.ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEVMChainID(t *testing.T) {
	chainID, ok := endpoint.EthereumV2Mainnet.EVMChainID()
	require.True(t, ok)
	assert.Equal(t, uint64(1), chainID)

	_, ok = endpoint.ID(1).EVMChainID()
	assert.False(t, ok)
}

func TestChainDetails(t *testing.T) {
	details, err := endpoint.ChainDetails(1)
	require.NoError(t, err)
	assert.Equal(t, selectors.ETHEREUM_MAINNET.Selector, details.ChainSelector)

	_, err = endpoint.ChainDetails(0)
	require.Error(t, err)
}
