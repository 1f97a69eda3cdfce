package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/tinom9/morpho-token-l0/pkg/tasks"
)

func newDeployArgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-args",
		Short: "Print the adapter constructor arguments of each network",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			owner, err := e.deployOwner(cmd)
			if err != nil {
				return err
			}

			names := e.networks
			if len(names) == 0 {
				names = e.cfg.NetworkNames()
			}
			var out []*tasks.DeployArgs
			for _, network := range names {
				n, ok := e.cfg.Networks[network]
				if !ok {
					return fmt.Errorf("%w: %s", tasks.ErrMissingNetworks, network)
				}
				deployArgs, err := tasks.BuildDeployArgs(network, n.Endpoint(), e.topo, e.store, owner)
				if err != nil {
					return fmt.Errorf("%s: %w", network, err)
				}
				out = append(out, deployArgs)
			}

			enc := json.NewEncoder(e.out)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().String("owner", "", "initial adapter owner (default: address of the signer key)")
	return cmd
}

// deployOwner is the --owner flag or, like the deploy scripts, the deployer itself.
func (e *env) deployOwner(cmd *cobra.Command) (common.Address, error) {
	owner, err := cmd.Flags().GetString("owner")
	if err != nil {
		return common.Address{}, err
	}
	if owner != "" {
		if !common.IsHexAddress(owner) {
			return common.Address{}, fmt.Errorf("invalid --owner %q", owner)
		}
		return common.HexToAddress(owner), nil
	}
	key, err := e.cfg.PrivateKey()
	if err != nil {
		return common.Address{}, err
	}
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid private key: %w", err)
	}
	return crypto.PubkeyToAddress(pk.PublicKey), nil
}
