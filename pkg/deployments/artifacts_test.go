package deployments_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinom9/morpho-token-l0/pkg/deployments"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestStore_Address(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethereum-mainnet", "MorphoOFTAdapter.json"),
		`{"address":"0x1A2b3C4D5e6F7a8B9c0D1e2F3a4B5c6D7e8F9a0B","abi":[],"transactionHash":"0xabc"}`)

	store := deployments.NewStore(dir)

	addr, err := store.Address("ethereum-mainnet", "MorphoOFTAdapter")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b"), addr)

	artifact, err := store.Get("ethereum-mainnet", "MorphoOFTAdapter")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", artifact.TransactionHash)
}

func TestStore_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "arbitrum-mainnet", "Broken.json"), `{"address":`)
	writeFile(t, filepath.Join(dir, "arbitrum-mainnet", "Empty.json"), `{"abi":[]}`)
	store := deployments.NewStore(dir)

	_, err := store.Address("arbitrum-mainnet", "Missing")
	require.ErrorIs(t, err, deployments.ErrNotDeployed)

	_, err = store.Address("arbitrum-mainnet", "Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse artifact")

	_, err = store.Address("arbitrum-mainnet", "Empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no address")
}

func TestStore_ChainID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hyperevm-mainnet", ".chainId"), "999\n")
	store := deployments.NewStore(dir)

	id, ok, err := store.ChainID("hyperevm-mainnet")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(999), id)

	_, ok, err = store.ChainID("ethereum-mainnet")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.CheckChainID("hyperevm-mainnet", 999))
	require.NoError(t, store.CheckChainID("ethereum-mainnet", 1))
	require.Error(t, store.CheckChainID("hyperevm-mainnet", 1))
}
