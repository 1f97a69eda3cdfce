package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tinom9/morpho-token-l0/pkg/evm/gobindings"
)

// Role names exposed as public getters by the token.
const (
	DefaultAdminRole = "DEFAULT_ADMIN_ROLE"
	MinterRole       = "MINTER_ROLE"
	BurnerRole       = "BURNER_ROLE"
	UpgraderRole     = "UPGRADER_ROLE"
)

// AccessControl manages the roles of the token deployed at a fixed address.
type AccessControl struct {
	client   *Client
	address  common.Address
	contract *gobindings.MorphoToken
}

// AccessControl binds the token deployed at address.
func (c *Client) AccessControl(address common.Address) (*AccessControl, error) {
	contract, err := gobindings.NewMorphoToken(address, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token at %s: %w", address.Hex(), err)
	}
	return &AccessControl{client: c, address: address, contract: contract}, nil
}

// Address returns the token address.
func (a *AccessControl) Address() common.Address {
	return a.address
}

// RoleHash calls the public getter of the named role.
func (a *AccessControl) RoleHash(ctx context.Context, name string) (common.Hash, error) {
	c := a.client
	var getter func(ctx context.Context) ([32]byte, error)
	switch name {
	case DefaultAdminRole:
		getter = func(ctx context.Context) ([32]byte, error) { return a.contract.DEFAULTADMINROLE(c.callOpts(ctx)) }
	case MinterRole:
		getter = func(ctx context.Context) ([32]byte, error) { return a.contract.MINTERROLE(c.callOpts(ctx)) }
	case BurnerRole:
		getter = func(ctx context.Context) ([32]byte, error) { return a.contract.BURNERROLE(c.callOpts(ctx)) }
	case UpgraderRole:
		getter = func(ctx context.Context) ([32]byte, error) { return a.contract.UPGRADERROLE(c.callOpts(ctx)) }
	default:
		return common.Hash{}, fmt.Errorf("unknown role %q", name)
	}
	role, err := withRetry(ctx, c.lggr, c.cfg.Retry, c.cfg.RequestTimeout, name, getter)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	return role, nil
}

// HasRole reports whether account holds role.
func (a *AccessControl) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	c := a.client
	ok, err := withRetry(ctx, c.lggr, c.cfg.Retry, c.cfg.RequestTimeout, "hasRole",
		func(ctx context.Context) (bool, error) {
			return a.contract.HasRole(c.callOpts(ctx), role, account)
		})
	if err != nil {
		return false, fmt.Errorf("failed to check role %s for %s: %w", role.Hex(), account.Hex(), err)
	}
	return ok, nil
}

// GrantRole sends a grantRole transaction and returns its hash.
func (a *AccessControl) GrantRole(ctx context.Context, role common.Hash, account common.Address) (common.Hash, error) {
	opts, err := a.client.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := a.contract.GrantRole(opts, role, account)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send grantRole: %w", err)
	}
	return tx.Hash(), nil
}

// RenounceRole sends a renounceRole transaction for account, which must be the signer.
func (a *AccessControl) RenounceRole(ctx context.Context, role common.Hash, account common.Address) (common.Hash, error) {
	opts, err := a.client.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	if opts.From != account {
		return common.Hash{}, fmt.Errorf("cannot renounce role of %s from signer %s", account.Hex(), opts.From.Hex())
	}
	tx, err := a.contract.RenounceRole(opts, role, account)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send renounceRole: %w", err)
	}
	return tx.Hash(), nil
}

// WaitMined waits for a transaction sent through this token.
func (a *AccessControl) WaitMined(ctx context.Context, txHash common.Hash) error {
	return a.client.WaitMined(ctx, txHash)
}

// RoleHashFromName is the conventional role id, keccak256 of the role name.
func RoleHashFromName(name string) common.Hash {
	return crypto.Keccak256Hash([]byte(name))
}
