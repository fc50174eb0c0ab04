package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/hexutil"
	"github.com/kairoschain/kairos-go/internal/ui"
)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature>",
	Short: "Compute the 4-byte selector and event topic of a signature",
	Long: `Compute the canonical signature, 4-byte function selector, and
32-byte event topic from a human-readable signature. Parameter names are
stripped and implicit widths normalized (uint → uint256).

Examples:
  kairos selector "transfer(address to, uint256 amount)"   # → 0xa9059cbb
  kairos selector "Transfer(address,address,uint256)"      # → topic0
  kairos selector "swap((address,uint256)[],bytes32)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, params, err := abi.ParseSignature(args[0])
		if err != nil {
			return err
		}

		sel := abi.FunctionSelector(name, params)
		topic := abi.EventTopic(name, params)

		pairs := [][2]string{
			{"Signature", abi.Signature(name, params)},
			{"Selector", ui.Val(hexutil.Encode(sel[:]))},
			{"Topic (32 bytes)", hexutil.Encode(topic[:])},
		}
		if abi.RequiresFullCodec(params) {
			pairs = append(pairs, [2]string{"Codec", "full (tuples or nested arrays present)"})
		}

		fmt.Println(ui.KeyValueBlock("Function Selector", pairs))
		return nil
	},
}

func init() {
	// No flags — positional arg only.
}
