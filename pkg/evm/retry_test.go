package evm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"
)

func testRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond}
}

func TestWithRetry_RecoversFromTransientErrors(t *testing.T) {
	attempts := 0
	got, err := withRetry(t.Context(), logger.Test(t), testRetryConfig(), time.Second, "test",
		func(ctx context.Context) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("connection reset by peer")
			}
			return 42, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, attempts)
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	_, err := withRetry(t.Context(), logger.Test(t), testRetryConfig(), 0, "test",
		func(ctx context.Context) (int, error) {
			attempts++
			return 0, errors.New("503 service unavailable")
		})
	require.Error(t, err)
	assert.Equal(t, 4, attempts)
}

func TestWithRetry_DoesNotRetryDeterministicFailures(t *testing.T) {
	for _, failure := range []error{
		errors.New("execution reverted"),
		fmt.Errorf("call failed: %w", bind.ErrNoCode),
		context.Canceled,
	} {
		t.Run(failure.Error(), func(t *testing.T) {
			attempts := 0
			_, err := withRetry(t.Context(), logger.Test(t), testRetryConfig(), 0, "test",
				func(ctx context.Context) (bool, error) {
					attempts++
					return false, failure
				})
			require.Error(t, err)
			assert.Equal(t, 1, attempts)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(nil))
	assert.True(t, isRetryable(errors.New("i/o timeout")))
	assert.False(t, isRetryable(errors.New("execution reverted: AccessControl")))
}
