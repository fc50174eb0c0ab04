package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/hexutil"
	"github.com/kairoschain/kairos-go/internal/ui"
)

var encodeDataOnly bool

var encodeCmd = &cobra.Command{
	Use:   "encode <signature> [args...]",
	Short: "Encode calldata from a function signature and arguments",
	Long: `Build ABI-encoded calldata from a function signature and arguments.

This is the reverse of the decode command. Useful for building calldata
for multisigs, timelocks, or manual call submission.

Tuples and arrays are written as Solidity types in the signature and JSON
in the arguments.

Examples:
  kairos encode "transfer(address,uint256)" 0xRecipient 1000000000000000000
  kairos encode "batch(uint256[] ids)" "[1,2,3]"
  kairos encode "submit((address,uint256)[] orders)" '[["0xMaker","500"]]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, params, err := abi.ParseSignature(args[0])
		if err != nil {
			return err
		}

		funcArgs := args[1:]
		if len(funcArgs) != len(params) {
			return fmt.Errorf("%w: signature has %d parameters, got %d arguments",
				abi.ErrArityMismatch, len(params), len(funcArgs))
		}

		values := make([]any, len(params))
		for i, p := range params {
			values[i], err = parseArg(p, funcArgs[i])
			if err != nil {
				return err
			}
		}

		enc, err := abi.EncodeTuple(params, values)
		if err != nil {
			return fmt.Errorf("encoding failed: %w", err)
		}

		sel := abi.FunctionSelector(name, params)
		calldata := enc
		if !encodeDataOnly {
			calldata = hexutil.Concat(sel[:], enc)
		}

		pairs := [][2]string{
			{"Signature", abi.Signature(name, params)},
			{"Selector", hexutil.Encode(sel[:])},
		}
		for i, p := range params {
			label := fmt.Sprintf("Arg[%d] (%s)", i, p.Type.Canonical())
			pairs = append(pairs, [2]string{label, funcArgs[i]})
		}
		pairs = append(pairs, [2]string{"Calldata", ui.Val(hexutil.Encode(calldata))})
		pairs = append(pairs, [2]string{"Bytes", fmt.Sprintf("%d", len(calldata))})

		fmt.Println(ui.KeyValueBlock("Encoded Calldata", pairs))

		if verbose {
			fmt.Println(ui.Meta("Argument words:"))
			for _, line := range wordLines(enc) {
				fmt.Println("  " + ui.Meta(line))
			}
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeDataOnly, "data-only", false, "omit the 4-byte selector (bare argument encoding)")
}
