package tasks

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

func TestFormatLimit(t *testing.T) {
	assert.Equal(t, "-", FormatLimit(nil))
	assert.Equal(t, "max", FormatLimit(ratelimit.MaxLimit()))
	assert.Equal(t, "250,000 tokens", FormatLimit(topology.ToUnit(250_000)))
	assert.Equal(t, "1,234,567", FormatLimit(big.NewInt(1_234_567)))
	assert.Equal(t, "0", FormatLimit(big.NewInt(0)))
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "-", FormatWindow(nil))
	assert.Equal(t, "30d", FormatWindow(ratelimit.DefaultWindowValue()))
	assert.Equal(t, "3600s", FormatWindow(big.NewInt(3600)))
	assert.Equal(t, "0s", FormatWindow(big.NewInt(0)))
}

func TestRenderReport(t *testing.T) {
	desired := []ratelimit.Config{
		ratelimit.NewConfig(endpoint.EthereumV2Mainnet, topology.ToUnit(100_000), ratelimit.DefaultWindowSeconds),
		ratelimit.DefaultConfig(endpoint.HyperliquidV2Mainnet),
	}
	onChain := map[endpoint.ID]ratelimit.State{
		endpoint.EthereumV2Mainnet:    {Limit: topology.ToUnit(100_000), Window: ratelimit.DefaultWindowValue()},
		endpoint.HyperliquidV2Mainnet: {Limit: big.NewInt(0), Window: big.NewInt(0)},
	}
	result, err := ratelimit.Reconcile(desired, onChain)
	assert.NoError(t, err)

	var buf bytes.Buffer
	RenderReport(&buf, []*SyncResult{nil, {Network: "arbitrum-mainnet", Desired: desired, OnChain: onChain, Result: result}})

	out := buf.String()
	assert.Contains(t, out, "arbitrum-mainnet")
	assert.Contains(t, out, "ETHEREUM_V2_MAINNET")
	assert.Contains(t, out, "100,000 tokens")
	assert.Contains(t, out, "HYPERLIQUID_V2_MAINNET")
	assert.Contains(t, out, "max")
	assert.Contains(t, out, "mismatch")
}
