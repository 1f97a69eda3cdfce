package evm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
)

func TestToBindingConfigs(t *testing.T) {
	configs := []ratelimit.Config{
		ratelimit.NewConfig(endpoint.ArbitrumV2Mainnet, big.NewInt(250), 60),
		ratelimit.DefaultConfig(endpoint.HyperliquidV2Mainnet),
	}

	out, err := ToBindingConfigs(configs)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, uint32(30110), out[0].DstEid)
	assert.Equal(t, "250", out[0].Limit.String())
	assert.Equal(t, "60", out[0].Window.String())
	assert.Equal(t, uint32(30367), out[1].DstEid)
	assert.Equal(t, 0, out[1].Limit.Cmp(ratelimit.MaxLimit()))
	assert.Equal(t, "2592000", out[1].Window.String())

	out[0].Limit.SetInt64(1)
	assert.Equal(t, "250", configs[0].Limit.String())
}

func TestToBindingConfigs_RejectsNonUint256(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	tests := []struct {
		name string
		cfg  ratelimit.Config
	}{
		{"nil limit", ratelimit.Config{Destination: endpoint.EthereumV2Mainnet, Window: big.NewInt(1)}},
		{"negative window", ratelimit.Config{Destination: endpoint.EthereumV2Mainnet, Limit: big.NewInt(1), Window: big.NewInt(-1)}},
		{"limit overflows", ratelimit.Config{Destination: endpoint.EthereumV2Mainnet, Limit: tooBig, Window: big.NewInt(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBindingConfigs([]ratelimit.Config{tt.cfg})
			require.Error(t, err)
		})
	}
}

func TestToBindingConfigs_Empty(t *testing.T) {
	out, err := ToBindingConfigs(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
