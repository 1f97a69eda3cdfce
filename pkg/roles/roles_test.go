package roles_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/internal/mocks"
	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/evm"
	"github.com/tinom9/morpho-token-l0/pkg/prompt"
	"github.com/tinom9/morpho-token-l0/pkg/roles"
)

var (
	tokenAddr   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	adapterAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	signerAddr  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	ownerAddr   = common.HexToAddress("0x00000000000000000000000000000000000000dd")

	adminRole    = common.Hash{}
	minterRole   = evm.RoleHashFromName(evm.MinterRole)
	burnerRole   = evm.RoleHashFromName(evm.BurnerRole)
	upgraderRole = evm.RoleHashFromName(evm.UpgraderRole)

	txA = common.HexToHash("0x0a")
	txB = common.HexToHash("0x0b")
)

func TestManaged(t *testing.T) {
	assert.True(t, roles.Managed(endpoint.EthereumV2Mainnet))
	assert.True(t, roles.Managed(endpoint.HyperliquidV2Mainnet))
	assert.False(t, roles.Managed(endpoint.ArbitrumV2Mainnet))
}

func TestGrantMintBurn(t *testing.T) {
	t.Run("grants only missing roles", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		token.EXPECT().RoleHash(mock.Anything, evm.MinterRole).Return(minterRole, nil)
		token.EXPECT().RoleHash(mock.Anything, evm.BurnerRole).Return(burnerRole, nil)
		token.EXPECT().HasRole(mock.Anything, minterRole, adapterAddr).Return(true, nil)
		token.EXPECT().HasRole(mock.Anything, burnerRole, adapterAddr).Return(false, nil)
		token.EXPECT().GrantRole(mock.Anything, burnerRole, adapterAddr).Return(txA, nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txA).Return(nil).Once()

		require.NoError(t, roles.GrantMintBurn(t.Context(), logger.Test(t), endpoint.HyperliquidV2Mainnet, token, adapterAddr))
	})

	t.Run("skipped on arbitrum", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		lggr, hook := logger.TestObserved(t, zapcore.InfoLevel)

		require.NoError(t, roles.GrantMintBurn(t.Context(), lggr, endpoint.ArbitrumV2Mainnet, token, adapterAddr))
		require.Len(t, hook.All(), 1)
		assert.Equal(t, "Skipping role grant", hook.All()[0].Message)
	})

	t.Run("failed grant stops", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		token.EXPECT().RoleHash(mock.Anything, evm.MinterRole).Return(minterRole, nil)
		token.EXPECT().HasRole(mock.Anything, minterRole, adapterAddr).Return(false, nil)
		token.EXPECT().GrantRole(mock.Anything, minterRole, adapterAddr).Return(common.Hash{}, errors.New("insufficient funds"))

		err := roles.GrantMintBurn(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, adapterAddr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
	})
}

func TestRenounceDeployerRoles(t *testing.T) {
	t.Run("renounces held roles after confirmation", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		confirmer := mocks.NewMockConfirmer(t)

		token.EXPECT().Address().Return(tokenAddr).Maybe()
		token.EXPECT().RoleHash(mock.Anything, evm.MinterRole).Return(minterRole, nil)
		// Older implementations lack the getter, the name hash is used instead.
		token.EXPECT().RoleHash(mock.Anything, evm.BurnerRole).Return(common.Hash{}, errors.New("execution reverted"))
		token.EXPECT().RoleHash(mock.Anything, evm.UpgraderRole).Return(upgraderRole, nil)
		token.EXPECT().HasRole(mock.Anything, minterRole, signerAddr).Return(true, nil)
		token.EXPECT().HasRole(mock.Anything, burnerRole, signerAddr).Return(true, nil)
		token.EXPECT().HasRole(mock.Anything, upgraderRole, signerAddr).Return(false, nil)

		confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(nil).Times(2)
		token.EXPECT().RenounceRole(mock.Anything, minterRole, signerAddr).Return(txA, nil).Once()
		token.EXPECT().RenounceRole(mock.Anything, burnerRole, signerAddr).Return(txB, nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txA).Return(nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txB).Return(nil).Once()

		require.NoError(t, roles.RenounceDeployerRoles(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, confirmer))
	})

	t.Run("zero role hash is left alone", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		confirmer := mocks.NewMockConfirmer(t)

		token.EXPECT().RoleHash(mock.Anything, mock.Anything).Return(common.Hash{}, nil).Times(3)

		require.NoError(t, roles.RenounceDeployerRoles(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, confirmer))
	})

	t.Run("declined confirmation sends nothing", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		confirmer := mocks.NewMockConfirmer(t)

		token.EXPECT().Address().Return(tokenAddr).Maybe()
		token.EXPECT().RoleHash(mock.Anything, evm.MinterRole).Return(minterRole, nil)
		token.EXPECT().HasRole(mock.Anything, minterRole, signerAddr).Return(true, nil)
		confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(prompt.ErrOperationCancelled)

		err := roles.RenounceDeployerRoles(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, confirmer)
		require.ErrorIs(t, err, prompt.ErrOperationCancelled)
	})

	t.Run("skipped on arbitrum", func(t *testing.T) {
		require.NoError(t, roles.RenounceDeployerRoles(t.Context(), logger.Test(t), endpoint.ArbitrumV2Mainnet,
			mocks.NewMockAccessControl(t), signerAddr, mocks.NewMockConfirmer(t)))
	})
}

func TestTransferAdmin(t *testing.T) {
	t.Run("owner equal to signer is rejected", func(t *testing.T) {
		err := roles.TransferAdmin(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet,
			mocks.NewMockAccessControl(t), signerAddr, signerAddr, mocks.NewMockConfirmer(t))
		require.ErrorIs(t, err, roles.ErrOwnerIsSigner)
	})

	t.Run("grants then renounces once owner is admin", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		confirmer := mocks.NewMockConfirmer(t)

		token.EXPECT().Address().Return(tokenAddr).Maybe()
		token.EXPECT().RoleHash(mock.Anything, evm.DefaultAdminRole).Return(adminRole, nil)
		// Owner is not admin before the grant and is admin after it.
		token.EXPECT().HasRole(mock.Anything, adminRole, ownerAddr).Return(false, nil).Once()
		token.EXPECT().HasRole(mock.Anything, adminRole, signerAddr).Return(true, nil).Twice()
		token.EXPECT().GrantRole(mock.Anything, adminRole, ownerAddr).Return(txA, nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txA).Return(nil).Once()
		token.EXPECT().HasRole(mock.Anything, adminRole, ownerAddr).Return(true, nil).Once()
		token.EXPECT().RenounceRole(mock.Anything, adminRole, signerAddr).Return(txB, nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txB).Return(nil).Once()
		confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(nil).Twice()

		require.NoError(t, roles.TransferAdmin(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, ownerAddr, confirmer))
	})

	t.Run("signer without admin cannot grant", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)

		token.EXPECT().RoleHash(mock.Anything, evm.DefaultAdminRole).Return(adminRole, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, ownerAddr).Return(false, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, signerAddr).Return(false, nil)

		err := roles.TransferAdmin(t.Context(), logger.Test(t), endpoint.HyperliquidV2Mainnet, token, signerAddr, ownerAddr, mocks.NewMockConfirmer(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not default admin")
	})

	t.Run("does not renounce when owner grant is not visible", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)
		confirmer := mocks.NewMockConfirmer(t)

		token.EXPECT().Address().Return(tokenAddr).Maybe()
		token.EXPECT().RoleHash(mock.Anything, evm.DefaultAdminRole).Return(adminRole, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, ownerAddr).Return(false, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, signerAddr).Return(true, nil)
		token.EXPECT().GrantRole(mock.Anything, adminRole, ownerAddr).Return(txA, nil).Once()
		token.EXPECT().WaitMined(mock.Anything, txA).Return(nil).Once()
		confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(nil).Once()

		err := roles.TransferAdmin(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, ownerAddr, confirmer)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot renounce role")
	})

	t.Run("nothing to do when already transferred", func(t *testing.T) {
		token := mocks.NewMockAccessControl(t)

		token.EXPECT().RoleHash(mock.Anything, evm.DefaultAdminRole).Return(adminRole, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, ownerAddr).Return(true, nil)
		token.EXPECT().HasRole(mock.Anything, adminRole, signerAddr).Return(false, nil)

		require.NoError(t, roles.TransferAdmin(t.Context(), logger.Test(t), endpoint.EthereumV2Mainnet, token, signerAddr, ownerAddr, mocks.NewMockConfirmer(t)))
	})
}
