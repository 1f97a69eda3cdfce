package evm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"
)

// RetryConfig controls how RPC reads are retried.
type RetryConfig struct {
	MaxRetries     int           // Maximum number of retry attempts (default: 3)
	InitialBackoff time.Duration // Initial backoff duration (default: 250ms)
	MaxBackoff     time.Duration // Maximum backoff duration (default: 5s)
	Jitter         time.Duration // Jitter added to backoff (default: 0)
}

// DefaultRetryConfig returns the retry settings used when none are configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 250 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

// isRetryable reports whether a failed read is worth another attempt. Reverts
// and missing code are deterministic, cancellation is the caller giving up.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, bind.ErrNoCode) {
		return false
	}
	return !strings.Contains(err.Error(), "execution reverted")
}

func createRetryPolicy[R any](cfg RetryConfig, lggr logger.Logger, op string) retrypolicy.RetryPolicy[R] {
	builder := retrypolicy.NewBuilder[R]().
		HandleIf(func(_ R, err error) bool {
			return isRetryable(err)
		}).
		WithMaxRetries(cfg.MaxRetries).
		OnRetry(func(event failsafe.ExecutionEvent[R]) {
			lggr.Debugw("Retrying request", "op", op, "attempt", event.Attempts(), "error", event.LastError())
		}).
		OnRetriesExceeded(func(event failsafe.ExecutionEvent[R]) {
			lggr.Warnw("Max retries exceeded", "op", op, "max_retries", cfg.MaxRetries, "error", event.LastError())
		})
	if cfg.InitialBackoff > 0 && cfg.MaxBackoff > cfg.InitialBackoff {
		builder = builder.WithBackoff(cfg.InitialBackoff, cfg.MaxBackoff)
	} else if cfg.InitialBackoff > 0 {
		builder = builder.WithDelay(cfg.InitialBackoff)
	}
	if cfg.Jitter > 0 {
		builder = builder.WithJitter(cfg.Jitter)
	}
	return builder.Build()
}

func createTimeoutPolicy[R any](d time.Duration, lggr logger.Logger, op string) timeout.Timeout[R] {
	return timeout.NewBuilder[R](d).
		OnTimeoutExceeded(func(event failsafe.ExecutionDoneEvent[R]) {
			lggr.Warnw("Request timeout exceeded", "op", op, "timeout", d)
		}).
		Build()
}

// withRetry runs fn under a retry policy wrapped around a per-attempt timeout.
func withRetry[R any](ctx context.Context, lggr logger.Logger, cfg RetryConfig, requestTimeout time.Duration, op string, fn func(ctx context.Context) (R, error)) (R, error) {
	retry := createRetryPolicy[R](cfg, lggr, op)
	executor := failsafe.With[R](retry)
	if requestTimeout > 0 {
		executor = failsafe.With[R](retry, createTimeoutPolicy[R](requestTimeout, lggr, op))
	}
	return executor.
		WithContext(ctx).
		GetWithExecution(func(exec failsafe.Execution[R]) (R, error) {
			return fn(exec.Context())
		})
}
