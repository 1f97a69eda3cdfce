package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/evm/gobindings"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
)

// OFTAdapter reads and writes the outbound rate limits of a deployed adapter.
type OFTAdapter struct {
	client   *Client
	address  common.Address
	contract *gobindings.MorphoOFTAdapter
}

// OFTAdapter binds the adapter deployed at address.
func (c *Client) OFTAdapter(address common.Address) (*OFTAdapter, error) {
	contract, err := gobindings.NewMorphoOFTAdapter(address, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind OFT adapter at %s: %w", address.Hex(), err)
	}
	return &OFTAdapter{client: c, address: address, contract: contract}, nil
}

// Address returns the adapter address.
func (a *OFTAdapter) Address() common.Address {
	return a.address
}

// RateLimit reads the rate limit state toward dst.
func (a *OFTAdapter) RateLimit(ctx context.Context, dst endpoint.ID) (ratelimit.State, error) {
	c := a.client
	raw, err := withRetry(ctx, c.lggr, c.cfg.Retry, c.cfg.RequestTimeout, "rateLimits",
		func(ctx context.Context) (struct {
			AmountInFlight *big.Int
			LastUpdated    *big.Int
			Limit          *big.Int
			Window         *big.Int
		}, error) {
			return a.contract.RateLimits(c.callOpts(ctx), uint32(dst))
		})
	if err != nil {
		return ratelimit.State{}, fmt.Errorf("failed to read rate limit toward %s: %w", dst, err)
	}
	return ratelimit.State{
		AmountInFlight: raw.AmountInFlight,
		LastUpdated:    raw.LastUpdated,
		Limit:          raw.Limit,
		Window:         raw.Window,
	}, nil
}

// Owner returns the adapter owner.
func (a *OFTAdapter) Owner(ctx context.Context) (common.Address, error) {
	c := a.client
	return withRetry(ctx, c.lggr, c.cfg.Retry, c.cfg.RequestTimeout, "owner",
		func(ctx context.Context) (common.Address, error) {
			return a.contract.Owner(c.callOpts(ctx))
		})
}

// SetRateLimits submits every config in a single setRateLimits transaction and
// returns its hash without waiting for it to be mined.
func (a *OFTAdapter) SetRateLimits(ctx context.Context, configs []ratelimit.Config) (common.Hash, error) {
	params, err := ToBindingConfigs(configs)
	if err != nil {
		return common.Hash{}, err
	}
	opts, err := a.client.transactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := a.contract.SetRateLimits(opts, params)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send setRateLimits: %w", err)
	}
	return tx.Hash(), nil
}

// WaitMined waits for a transaction sent through this adapter.
func (a *OFTAdapter) WaitMined(ctx context.Context, txHash common.Hash) error {
	return a.client.WaitMined(ctx, txHash)
}

// ToBindingConfigs converts configs to the tuple layout of setRateLimits.
// Values are copied so the caller may keep mutating its own.
func ToBindingConfigs(configs []ratelimit.Config) ([]gobindings.RateLimiterRateLimitConfig, error) {
	out := make([]gobindings.RateLimiterRateLimitConfig, 0, len(configs))
	for _, cfg := range configs {
		if !isUint256(cfg.Limit) {
			return nil, fmt.Errorf("limit toward %s is not a uint256: %v", cfg.Destination, cfg.Limit)
		}
		if !isUint256(cfg.Window) {
			return nil, fmt.Errorf("window toward %s is not a uint256: %v", cfg.Destination, cfg.Window)
		}
		out = append(out, gobindings.RateLimiterRateLimitConfig{
			DstEid: uint32(cfg.Destination),
			Limit:  new(big.Int).Set(cfg.Limit),
			Window: new(big.Int).Set(cfg.Window),
		})
	}
	return out, nil
}

func isUint256(v *big.Int) bool {
	if v == nil || v.Sign() < 0 {
		return false
	}
	_, overflow := uint256.FromBig(v)
	return !overflow
}
