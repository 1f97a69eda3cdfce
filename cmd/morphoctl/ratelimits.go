package main

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/monitoring"
	"github.com/tinom9/morpho-token-l0/pkg/tasks"
)

func newSetRateLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-rate-limits",
		Short: "Set the outbound rate limits of each adapter to the configured values",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			_, err = e.syncRateLimits(cmd.Context(), "set-rate-limits", false)
			return err
		},
	}
}

func newShowRateLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-rate-limits",
		Short: "Compare on-chain rate limits with the configured values without sending transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			results, err := e.syncRateLimits(cmd.Context(), "show-rate-limits", true)
			tasks.RenderReport(e.out, results)
			return err
		},
	}
}

func (e *env) syncRateLimits(ctx context.Context, name string, dryRun bool) ([]*tasks.SyncResult, error) {
	var (
		mu      sync.Mutex
		results []*tasks.SyncResult
	)
	err := e.run(ctx, name, func(ctx context.Context, lggr logger.Logger, network string) error {
		client, n, err := e.dial(ctx, lggr, network, !dryRun)
		if err != nil {
			return err
		}
		defer client.Close()

		contract, err := e.topo.ContractName(n.Endpoint())
		if err != nil {
			return err
		}
		address, err := e.store.Address(network, contract)
		if err != nil {
			return err
		}
		adapter, err := client.OFTAdapter(address)
		if err != nil {
			return err
		}

		res, err := tasks.SyncRateLimits(ctx, lggr, network, n.Endpoint(), e.topo, adapter, monitoring.NewMetricLabeler(network), dryRun)
		if res != nil {
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}
		return err
	})
	sortResults(results)
	return results, err
}

func sortResults(results []*tasks.SyncResult) {
	slices.SortFunc(results, func(a, b *tasks.SyncResult) int {
		return strings.Compare(a.Network, b.Network)
	})
}
