package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	commonconfig "github.com/smartcontractkit/chainlink-common/pkg/config"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
)

const validConfig = `
LogLevel = "debug"
TxTimeout = "2m"

[Retry]
MaxRetries = 5

[Networks.ethereum-mainnet]
EID = 30101
ChainID = 1
RPCURL = "https://eth.example/${TEST_RPC_KEY}"

[Networks.arbitrum-mainnet]
EID = 30110
ChainID = 42161
RPCURL = "https://arb.example"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, DefaultDeploymentsDir, cfg.DeploymentsDir)
	assert.Equal(t, DefaultPrivateKeyEnv, cfg.PrivateKeyEnv)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout.Duration())
	assert.Equal(t, 2*time.Minute, cfg.TxTimeout.Duration())
	assert.Equal(t, 5, *cfg.Retry.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.InitialBackoff.Duration())
	assert.Equal(t, []string{"arbitrum-mainnet", "ethereum-mainnet"}, cfg.NetworkNames())
	assert.Equal(t, endpoint.ArbitrumV2Mainnet, cfg.Networks["arbitrum-mainnet"].Endpoint())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "Bogus = 1\n" + validConfig,
			wantErr: "failed to load config",
		},
		{
			name:    "no networks",
			content: `LogLevel = "info"`,
			wantErr: "no networks configured",
		},
		{
			name: "chain id does not match endpoint",
			content: `
[Networks.ethereum-mainnet]
EID = 30101
ChainID = 42161
RPCURL = "https://eth.example"
`,
			wantErr: "does not match",
		},
		{
			name: "missing rpc",
			content: `
[Networks.ethereum-mainnet]
EID = 30101
ChainID = 1
`,
			wantErr: "RPCURL must be set",
		},
		{
			name: "duplicate eid",
			content: `
[Networks.eth-a]
EID = 30101
ChainID = 1
RPCURL = "https://a.example"

[Networks.eth-b]
EID = 30101
ChainID = 1
RPCURL = "https://b.example"
`,
			wantErr: "share EID 30101",
		},
		{
			name: "backoff inverted",
			content: `
[Retry]
InitialBackoff = "10s"
MaxBackoff = "1s"

[Networks.ethereum-mainnet]
EID = 30101
ChainID = 1
RPCURL = "https://eth.example"
`,
			wantErr: "MaxBackoff must not be below InitialBackoff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config")
}

func TestConfig_EVM(t *testing.T) {
	t.Setenv("TEST_RPC_KEY", "secret")
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	evmCfg, err := cfg.EVM("ethereum-mainnet", "0x01")
	require.NoError(t, err)
	assert.Equal(t, "https://eth.example/secret", evmCfg.RPCURL)
	assert.Equal(t, uint64(1), evmCfg.ChainID)
	assert.Equal(t, "0x01", evmCfg.PrivateKey)
	assert.Equal(t, 2*time.Minute, evmCfg.TxTimeout)
	assert.Equal(t, 5, evmCfg.Retry.MaxRetries)

	_, err = cfg.EVM("base-mainnet", "")
	require.Error(t, err)
}

func TestConfig_PrivateKey(t *testing.T) {
	cfg := &Config{PrivateKeyEnv: "TEST_MORPHO_PRIVATE_KEY"}
	t.Setenv("TEST_MORPHO_PRIVATE_KEY", "")
	_, err := cfg.PrivateKey()
	require.Error(t, err)

	t.Setenv("TEST_MORPHO_PRIVATE_KEY", "abcd")
	key, err := cfg.PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, "abcd", key)
}

func TestConfig_Encode(t *testing.T) {
	cfg := &Config{
		RequestTimeout: commonconfig.MustNewDuration(time.Second),
		Networks: map[string]Network{
			"ethereum-mainnet": {EID: 30101, ChainID: 1, RPCURL: "https://eth.example"},
		},
	}
	cfg.SetDefaults()

	out, err := cfg.Encode()
	require.NoError(t, err)
	assert.Regexp(t, `LogLevel = ["']info["']`, string(out))
	assert.Contains(t, string(out), "[Networks.ethereum-mainnet]")
	assert.Contains(t, string(out), "EID = 30101")
}
