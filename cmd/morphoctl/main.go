// Package main provides the morphoctl operator CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/chainlink-common/pkg/logger"

	"github.com/tinom9/morpho-token-l0/pkg/config"
	"github.com/tinom9/morpho-token-l0/pkg/deployments"
	"github.com/tinom9/morpho-token-l0/pkg/evm"
	"github.com/tinom9/morpho-token-l0/pkg/logging"
	"github.com/tinom9/morpho-token-l0/pkg/monitoring"
	"github.com/tinom9/morpho-token-l0/pkg/prompt"
	"github.com/tinom9/morpho-token-l0/pkg/tasks"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "morphoctl",
		Short:        "Operate the Morpho OFT deployment across LayerZero networks",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", "morphoctl.toml", "path to config file")
	cmd.PersistentFlags().String("networks", "", "comma-separated networks to run on (default: all configured)")
	cmd.PersistentFlags().String("log-level", "", "log level, overrides the config file")
	cmd.PersistentFlags().String("metrics-file", "", "write Prometheus metrics to this file after the run")
	cmd.PersistentFlags().Bool("yes", false, "confirm every transaction without prompting")

	cmd.AddCommand(
		newSetRateLimitsCmd(),
		newShowRateLimitsCmd(),
		newGrantRolesCmd(),
		newRenounceRolesCmd(),
		newTransferAdminCmd(),
		newWiringCmd(),
		newDeployArgsCmd(),
		newConfigCmd(),
	)
	return cmd
}

// env holds what every network task needs.
type env struct {
	cfg       *config.Config
	lggr      logger.Logger
	topo      *topology.Topology
	store     *deployments.Store
	confirmer prompt.Confirmer
	networks  []string
	metrics   string
	out       io.Writer
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Flags()
	configFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	level, err := flags.GetString("log-level")
	if err != nil {
		return nil, err
	}
	if level != "" {
		if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	lggr, err := logging.New(cfg.LogLevel, "morphoctl")
	if err != nil {
		return nil, err
	}

	networks, err := flags.GetString("networks")
	if err != nil {
		return nil, err
	}
	metricsFile, err := flags.GetString("metrics-file")
	if err != nil {
		return nil, err
	}
	yes, err := flags.GetBool("yes")
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:       cfg,
		lggr:      lggr,
		topo:      topology.Mainnet(),
		store:     deployments.NewStore(cfg.DeploymentsDir),
		confirmer: newConfirmer(yes, cmd.InOrStdin(), cmd.ErrOrStderr()),
		networks:  tasks.ParseNetworks(networks),
		metrics:   metricsFile,
		out:       cmd.OutOrStdout(),
	}, nil
}

func newConfirmer(yes bool, in io.Reader, out io.Writer) prompt.Confirmer {
	if yes {
		return prompt.AutoApprove{}
	}
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return prompt.NewTerminal(in, out)
	}
	return prompt.Refuse{}
}

// run executes task on the selected networks and flushes metrics afterwards.
func (e *env) run(ctx context.Context, name string, task tasks.Task) error {
	err := tasks.RunMultiNetwork(ctx, e.lggr, name, e.cfg.NetworkNames(), e.networks, task)
	if e.metrics != "" {
		if merr := monitoring.WriteTextfile(e.metrics); merr != nil {
			e.lggr.Errorw("Failed to write metrics", "error", merr)
		}
	}
	return err
}

// dial connects to network, with the signer key when withSigner is set.
func (e *env) dial(ctx context.Context, lggr logger.Logger, network string, withSigner bool) (*evm.Client, config.Network, error) {
	n := e.cfg.Networks[network]
	if err := e.store.CheckChainID(network, n.ChainID); err != nil {
		return nil, n, err
	}

	var key string
	if withSigner {
		var err error
		if key, err = e.cfg.PrivateKey(); err != nil {
			return nil, n, err
		}
	}
	evmCfg, err := e.cfg.EVM(network, key)
	if err != nil {
		return nil, n, err
	}
	client, err := evm.Dial(ctx, lggr, evmCfg)
	if err != nil {
		return nil, n, err
	}
	return client, n, nil
}
