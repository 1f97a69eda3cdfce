// Package tasks runs operator tasks against one or more networks.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/monitoring"
)

// ErrMissingNetworks is returned when a requested network is not configured.
var ErrMissingNetworks = errors.New("missing networks")

// Task runs on a single network.
type Task func(ctx context.Context, lggr logger.Logger, network string) error

// ParseNetworks splits a comma separated --networks value.
func ParseNetworks(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// RunMultiNetwork runs task on every requested network concurrently, or on
// every configured network when none are requested. If any requested network
// is not configured nothing runs. A failing network does not stop the others;
// all failures are returned together once every network has finished.
func RunMultiNetwork(ctx context.Context, lggr logger.Logger, name string, configured, requested []string, task Task) error {
	if len(requested) == 0 {
		requested = configured
	}

	var missing []string
	for _, network := range requested {
		if !slices.Contains(configured, network) {
			missing = append(missing, network)
		}
	}
	if len(missing) > 0 {
		lggr.Errorw("Missing networks", "networks", missing)
		return fmt.Errorf("%w: %s", ErrMissingNetworks, strings.Join(missing, ", "))
	}

	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	for _, network := range requested {
		g.Go(func() error {
			nlggr := logger.With(lggr, "task", name, "network", network)
			start := time.Now()

			err := task(ctx, nlggr, network)
			monitoring.NewMetricLabeler(network).RecordTask(name, time.Since(start), err)
			if err != nil {
				nlggr.Errorw("Error executing task", "error", err)
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", network, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
