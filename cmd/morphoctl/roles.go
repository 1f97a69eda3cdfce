package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/evm"
	"github.com/tinom9/morpho-token-l0/pkg/roles"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

// tokenTask runs fn against the token of every selected network the tooling manages.
func (e *env) tokenTask(ctx context.Context, name string, fn func(ctx context.Context, lggr logger.Logger, network string, client *evm.Client, token *evm.AccessControl) error) error {
	return e.run(ctx, name, func(ctx context.Context, lggr logger.Logger, network string) error {
		eid := e.cfg.Networks[network].Endpoint()
		if !roles.Managed(eid) {
			lggr.Infow("Skipping, token roles are not managed on this network", "eid", eid)
			return nil
		}

		client, _, err := e.dial(ctx, lggr, network, true)
		if err != nil {
			return err
		}
		defer client.Close()

		address, err := e.store.Address(network, topology.TokenContractName(eid))
		if err != nil {
			return err
		}
		token, err := client.AccessControl(address)
		if err != nil {
			return err
		}
		return fn(ctx, lggr, network, client, token)
	})
}

func newGrantRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-roles",
		Short: "Grant the minter and burner roles of the token to the mint-burn adapter",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return e.tokenTask(cmd.Context(), "grant-roles", func(ctx context.Context, lggr logger.Logger, network string, _ *evm.Client, token *evm.AccessControl) error {
				eid := e.cfg.Networks[network].Endpoint()
				contract, err := e.topo.ContractName(eid)
				if err != nil {
					return err
				}
				if contract != topology.ContractMorphoMintBurnOFTAdapter {
					lggr.Infow("Adapter does not mint or burn, no roles to grant", "contract", contract)
					return nil
				}
				adapter, err := e.store.Address(network, contract)
				if err != nil {
					return err
				}
				return roles.GrantMintBurn(ctx, lggr, eid, token, adapter)
			})
		},
	}
}

func newRenounceRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renounce-roles",
		Short: "Renounce the minter, burner and upgrader roles held by the signer",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return e.tokenTask(cmd.Context(), "renounce-roles", func(ctx context.Context, lggr logger.Logger, network string, client *evm.Client, token *evm.AccessControl) error {
				signer, err := client.Signer()
				if err != nil {
					return err
				}
				return roles.RenounceDeployerRoles(ctx, lggr, e.cfg.Networks[network].Endpoint(), token, signer, e.confirmer)
			})
		},
	}
}

func newTransferAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-admin",
		Short: "Transfer the default admin role of the token from the signer to the configured owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return e.tokenTask(cmd.Context(), "transfer-admin", func(ctx context.Context, lggr logger.Logger, network string, client *evm.Client, token *evm.AccessControl) error {
				eid := e.cfg.Networks[network].Endpoint()
				owner, err := e.topo.OwnerAddress(eid)
				if err != nil {
					return err
				}
				signer, err := client.Signer()
				if err != nil {
					return err
				}
				return roles.TransferAdmin(ctx, lggr, eid, token, signer, owner, e.confirmer)
			})
		},
	}
}
