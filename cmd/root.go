// Package cmd wires the kairos CLI: ABI encoding/decoding, selector and
// topic derivation, keccak hashing, and ABI inspection.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/kairoschain/kairos-go/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "kairos",
	Short: "ABI toolbox for the Kairos chain",
	Long: `kairos — encode and decode contract ABI data without touching a node.

  Build calldata from signatures, decode calldata and return data,
  derive function selectors and event topics, and inspect ABI files.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// KAIROS_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("KAIROS_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.kairos)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		encodeCmd,
		decodeCmd,
		selectorCmd,
		keccakCmd,
		abiCmd,
	)
}
