package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinom9/morpho-token-l0/pkg/topology"
	"github.com/tinom9/morpho-token-l0/pkg/wiring"
)

func newWiringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiring",
		Short: "Print the pathway configuration consumed by the LayerZero wiring tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wiring.Generate(topology.Mainnet())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode wiring config: %w", err)
			}
			data = append(data, '\n')

			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().String("out", "", "write to this file instead of stdout")
	return cmd
}
