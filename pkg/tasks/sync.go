package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/evm"
	"github.com/tinom9/morpho-token-l0/pkg/monitoring"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

// RateLimiter is the rate limit surface of an OFT adapter.
type RateLimiter interface {
	Address() common.Address
	RateLimit(ctx context.Context, dst endpoint.ID) (ratelimit.State, error)
	SetRateLimits(ctx context.Context, configs []ratelimit.Config) (common.Hash, error)
	WaitMined(ctx context.Context, txHash common.Hash) error
}

var _ RateLimiter = (*evm.OFTAdapter)(nil)

// SyncResult describes one network after a sync.
type SyncResult struct {
	Network string
	Source  endpoint.ID
	Desired []ratelimit.Config
	OnChain map[endpoint.ID]ratelimit.State
	ratelimit.Result
	// TxHash is zero unless a setRateLimits transaction was confirmed.
	TxHash common.Hash
}

// SyncRateLimits brings the outbound rate limits of the adapter on source in
// line with the topology. When any destination differs, the full desired set
// is submitted in one transaction. dryRun stops after reporting.
func SyncRateLimits(
	ctx context.Context,
	lggr logger.Logger,
	network string,
	source endpoint.ID,
	topo *topology.Topology,
	limiter RateLimiter,
	metrics *monitoring.MetricLabeler,
	dryRun bool,
) (*SyncResult, error) {
	desired, err := topo.RateLimitsFor(source)
	if err != nil {
		return nil, err
	}

	onChain, err := FetchRateLimits(ctx, limiter, ratelimit.Destinations(desired))
	if err != nil {
		return nil, err
	}

	result, err := ratelimit.Reconcile(desired, onChain)
	if err != nil {
		return nil, err
	}
	out := &SyncResult{Network: network, Source: source, Desired: desired, OnChain: onChain, Result: result}

	for _, m := range result.Mismatches {
		lggr.Infow("Rate limit mismatches desired rate limit",
			"destination", m.Destination.String(),
			"onChainLimit", m.OnChainLimit.String(),
			"onChainWindow", m.OnChainWindow.String(),
			"desiredLimit", m.DesiredLimit.String(),
			"desiredWindow", m.DesiredWindow.String(),
		)
		metrics.RecordMismatch(m.Destination.Name())
	}

	if !result.NeedsUpdate {
		lggr.Infow("No rate limits need to be updated")
		return out, nil
	}
	if dryRun {
		lggr.Warnw("Rate limits need to be updated, dry run so nothing is sent", "mismatches", len(result.Mismatches))
		return out, nil
	}

	txHash, err := limiter.SetRateLimits(ctx, desired)
	if err != nil {
		return out, fmt.Errorf("failed to set rate limits on %s: %w", limiter.Address().Hex(), err)
	}
	lggr.Infow("Set rate limits TX sent", "tx", txHash.Hex(), "configs", len(desired))
	if err := limiter.WaitMined(ctx, txHash); err != nil {
		return out, err
	}
	out.TxHash = txHash
	metrics.RecordUpdate()
	lggr.Infow("Rate limits set", "tx", txHash.Hex())
	return out, nil
}

// FetchRateLimits reads the on-chain state of every destination concurrently.
func FetchRateLimits(ctx context.Context, limiter RateLimiter, destinations []endpoint.ID) (map[endpoint.ID]ratelimit.State, error) {
	var (
		mu      sync.Mutex
		onChain = make(map[endpoint.ID]ratelimit.State, len(destinations))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, dst := range destinations {
		g.Go(func() error {
			state, err := limiter.RateLimit(gctx, dst)
			if err != nil {
				return err
			}
			mu.Lock()
			onChain[dst] = state
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return onChain, nil
}
