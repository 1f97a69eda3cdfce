// Package roles moves token roles between the deployer, the mint-burn adapter
// and the configured owner. Every step reads on-chain state first and only
// sends a transaction when that state is not already the intended one.
package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/evm"
	"github.com/tinom9/morpho-token-l0/pkg/prompt"
)

// AccessControl is the role surface of the token.
type AccessControl interface {
	Address() common.Address
	RoleHash(ctx context.Context, name string) (common.Hash, error)
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	GrantRole(ctx context.Context, role common.Hash, account common.Address) (common.Hash, error)
	RenounceRole(ctx context.Context, role common.Hash, account common.Address) (common.Hash, error)
	WaitMined(ctx context.Context, txHash common.Hash) error
}

var _ AccessControl = (*evm.AccessControl)(nil)

// ErrOwnerIsSigner is returned when the admin role would be handed to the account already holding it.
var ErrOwnerIsSigner = errors.New("intended owner is signer, cannot transfer roles")

// Managed reports whether the token on eid is administered by this tooling.
// The Arbitrum token is a separate deployment whose roles are out of scope.
func Managed(eid endpoint.ID) bool {
	return eid != endpoint.ArbitrumV2Mainnet
}

// Deployer renounces these after the adapters hold what they need.
var renouncedRoles = []string{evm.MinterRole, evm.BurnerRole, evm.UpgraderRole}

// GrantMintBurn gives the mint-burn adapter the minter and burner roles it
// needs to bridge.
func GrantMintBurn(ctx context.Context, lggr logger.Logger, eid endpoint.ID, token AccessControl, adapter common.Address) error {
	if !Managed(eid) {
		lggr.Infow("Skipping role grant", "eid", eid)
		return nil
	}

	for _, name := range []string{evm.MinterRole, evm.BurnerRole} {
		role, err := token.RoleHash(ctx, name)
		if err != nil {
			return err
		}

		has, err := token.HasRole(ctx, role, adapter)
		if err != nil {
			return err
		}
		if has {
			lggr.Infow("Adapter already has role", "role", name, "adapter", adapter.Hex())
			continue
		}

		lggr.Infow("Granting role", "role", name, "adapter", adapter.Hex())
		txHash, err := token.GrantRole(ctx, role, adapter)
		if err != nil {
			return fmt.Errorf("failed to grant %s: %w", name, err)
		}
		lggr.Infow("Grant role TX sent", "role", name, "tx", txHash.Hex())
		if err := token.WaitMined(ctx, txHash); err != nil {
			return err
		}
		lggr.Infow("Grant role TX confirmed", "role", name, "tx", txHash.Hex())
	}
	return nil
}

// RenounceDeployerRoles drops the minter, burner and upgrader roles held by signer.
func RenounceDeployerRoles(ctx context.Context, lggr logger.Logger, eid endpoint.ID, token AccessControl, signer common.Address, confirmer prompt.Confirmer) error {
	if !Managed(eid) {
		lggr.Infow("Skipping role renounce", "eid", eid)
		return nil
	}

	for _, name := range renouncedRoles {
		if err := renounceIfHeld(ctx, lggr, token, signer, confirmer, name); err != nil {
			return err
		}
	}
	return nil
}

func renounceIfHeld(ctx context.Context, lggr logger.Logger, token AccessControl, signer common.Address, confirmer prompt.Confirmer, name string) error {
	role, err := token.RoleHash(ctx, name)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		lggr.Warnw("Role could not be fetched, using keccak256 of its name", "role", name, "error", err)
		role = evm.RoleHashFromName(name)
	}

	// The zero hash is DEFAULT_ADMIN_ROLE, which TransferAdmin handles.
	if role == (common.Hash{}) {
		lggr.Infow("Role is not renounced by this task", "role", name)
		return nil
	}

	has, err := token.HasRole(ctx, role, signer)
	if err != nil {
		return err
	}
	if !has {
		lggr.Infow("Signer does not have role, nothing to renounce", "role", name, "signer", signer.Hex())
		return nil
	}

	lggr.Infow("Signer has role, renouncing", "role", name, "signer", signer.Hex())
	if err := confirmer.Confirm(ctx, fmt.Sprintf("Renounce %s of %s on token %s", name, signer.Hex(), token.Address().Hex())); err != nil {
		return err
	}

	txHash, err := token.RenounceRole(ctx, role, signer)
	if err != nil {
		return fmt.Errorf("failed to renounce %s: %w", name, err)
	}
	lggr.Infow("Role renounce TX sent", "role", name, "tx", txHash.Hex())
	if err := token.WaitMined(ctx, txHash); err != nil {
		return err
	}
	lggr.Infow("Role renounce TX confirmed", "role", name, "tx", txHash.Hex())
	return nil
}

// TransferAdmin makes owner the only default admin. The signer's admin role is
// renounced only after the owner is observed holding it on-chain.
func TransferAdmin(ctx context.Context, lggr logger.Logger, eid endpoint.ID, token AccessControl, signer, owner common.Address, confirmer prompt.Confirmer) error {
	if !Managed(eid) {
		lggr.Infow("Skipping role transfer", "eid", eid)
		return nil
	}
	if owner == signer {
		return ErrOwnerIsSigner
	}

	admin, err := token.RoleHash(ctx, evm.DefaultAdminRole)
	if err != nil {
		return err
	}

	if err := grantAdmin(ctx, lggr, token, admin, signer, owner, confirmer); err != nil {
		return err
	}
	return renounceAdmin(ctx, lggr, token, admin, signer, owner, confirmer)
}

func grantAdmin(ctx context.Context, lggr logger.Logger, token AccessControl, admin common.Hash, signer, owner common.Address, confirmer prompt.Confirmer) error {
	ownerIsAdmin, err := token.HasRole(ctx, admin, owner)
	if err != nil {
		return err
	}
	if ownerIsAdmin {
		lggr.Infow("Intended owner is already default admin", "owner", owner.Hex())
		return nil
	}

	lggr.Infow("Intended owner is not default admin, granting role", "owner", owner.Hex(), "signer", signer.Hex())
	signerIsAdmin, err := token.HasRole(ctx, admin, signer)
	if err != nil {
		return err
	}
	if !signerIsAdmin {
		return fmt.Errorf("signer %s is not default admin", signer.Hex())
	}

	if err := confirmer.Confirm(ctx, fmt.Sprintf("Grant %s to %s on token %s", evm.DefaultAdminRole, owner.Hex(), token.Address().Hex())); err != nil {
		return err
	}

	txHash, err := token.GrantRole(ctx, admin, owner)
	if err != nil {
		return fmt.Errorf("failed to grant %s: %w", evm.DefaultAdminRole, err)
	}
	lggr.Infow("Intended owner default admin grant TX sent", "tx", txHash.Hex())
	if err := token.WaitMined(ctx, txHash); err != nil {
		return err
	}
	lggr.Infow("Intended owner default admin grant TX confirmed", "tx", txHash.Hex())
	return nil
}

func renounceAdmin(ctx context.Context, lggr logger.Logger, token AccessControl, admin common.Hash, signer, owner common.Address, confirmer prompt.Confirmer) error {
	signerIsAdmin, err := token.HasRole(ctx, admin, signer)
	if err != nil {
		return err
	}
	if !signerIsAdmin {
		lggr.Infow("Signer is not default admin, nothing to renounce", "signer", signer.Hex())
		return nil
	}

	ownerIsAdmin, err := token.HasRole(ctx, admin, owner)
	if err != nil {
		return err
	}
	if !ownerIsAdmin {
		return fmt.Errorf("intended owner %s is not default admin, cannot renounce role", owner.Hex())
	}

	lggr.Infow("Both signer and intended owner are default admins, renouncing signer role",
		"signer", signer.Hex(), "owner", owner.Hex())
	if err := confirmer.Confirm(ctx, fmt.Sprintf("Renounce %s of %s on token %s", evm.DefaultAdminRole, signer.Hex(), token.Address().Hex())); err != nil {
		return err
	}

	txHash, err := token.RenounceRole(ctx, admin, signer)
	if err != nil {
		return fmt.Errorf("failed to renounce %s: %w", evm.DefaultAdminRole, err)
	}
	lggr.Infow("Signer default admin renounce TX sent", "tx", txHash.Hex())
	if err := token.WaitMined(ctx, txHash); err != nil {
		return err
	}
	lggr.Infow("Signer default admin renounce TX confirmed", "tx", txHash.Hex())
	return nil
}
