package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/hexutil"
	"github.com/kairoschain/kairos-go/internal/ui"
)

var (
	decodeAsReturn bool
	decodeABIName  string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [signature] <hex-data>",
	Short: "Decode calldata or return data against a signature or ABI",
	Long: `Decode ABI-encoded data.

With a signature, the data is treated as calldata: the leading 4 bytes must
match the signature's selector and the rest decodes as the arguments. With
--returns the signature's parameter list is decoded directly, with no
selector — use this for return data or bare tuples.

With --abi, the signature is omitted and the function is identified by the
calldata's own selector, looked up in a registered ABI, a built-in, or an
ABI JSON file. Bare hex data with no signature uses the default_abi from
the config file.

Examples:
  kairos decode "transfer(address,uint256)" 0xa9059cbb0000…
  kairos decode --returns "balanceOf(uint256)" 0x0000…03e8
  kairos decode --abi krc20 0xa9059cbb0000…
  kairos decode --abi ./build/Exchange.json 0x1b2c3d4e0000…`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if decodeABIName != "" {
			if decodeAsReturn {
				return fmt.Errorf("--returns needs a signature; it cannot be combined with --abi")
			}
			if len(args) != 1 {
				return fmt.Errorf("with --abi, pass only the hex data")
			}
			return decodeWithABI(decodeABIName, args[0])
		}

		if len(args) == 1 {
			// Bare hex data falls back to the configured default ABI.
			if cfg.DefaultABI == "" {
				return fmt.Errorf("pass a signature, or set --abi / default_abi in config")
			}
			if decodeAsReturn {
				return fmt.Errorf("--returns needs a signature")
			}
			return decodeWithABI(cfg.DefaultABI, args[0])
		}
		return decodeWithSignature(args[0], args[1])
	},
}

func decodeWithSignature(sig, hexData string) error {
	name, params, err := abi.ParseSignature(sig)
	if err != nil {
		return err
	}

	data, err := hexutil.Decode(hexData)
	if err != nil {
		return fmt.Errorf("invalid hex data: %w", err)
	}

	sel := abi.FunctionSelector(name, params)
	body := data
	if !decodeAsReturn {
		if len(data) < 4 {
			return fmt.Errorf("%w: calldata shorter than a selector", abi.ErrBufferOverrun)
		}
		if !bytes.Equal(data[:4], sel[:]) {
			return fmt.Errorf("%w: data has selector %s, signature %q expects %s",
				abi.ErrInvalidArgument, hexutil.Encode(data[:4]),
				abi.Signature(name, params), hexutil.Encode(sel[:]))
		}
		body = data[4:]
	}

	values, err := abi.DecodeTuple(params, body, 0)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	printDecoded(abi.Signature(name, params), sel, params, values, body)
	return nil
}

func decodeWithABI(abiName, hexData string) error {
	iface, err := resolveInterface(abiName)
	if err != nil {
		return err
	}

	data, err := hexutil.Decode(hexData)
	if err != nil {
		return fmt.Errorf("invalid hex data: %w", err)
	}

	fn, values, err := iface.DecodeCall(data)
	if err != nil {
		return err
	}

	printDecoded(fn.Signature(), fn.Selector(), fn.Inputs, values, data[4:])
	return nil
}

func printDecoded(sig string, sel [4]byte, params []abi.Param, values []any, body []byte) {
	pairs := [][2]string{
		{"Signature", sig},
		{"Selector", hexutil.Encode(sel[:])},
	}
	for i, p := range params {
		label := fmt.Sprintf("Arg[%d] (%s)", i, p.Type.Canonical())
		if p.Name != "" {
			label = fmt.Sprintf("%s (%s)", p.Name, p.Type.Canonical())
		}
		pairs = append(pairs, [2]string{label, ui.Val(formatValue(values[i]))})
	}

	fmt.Println(ui.KeyValueBlock("Decoded Data", pairs))

	if verbose {
		fmt.Println(ui.Meta("Data words:"))
		for _, line := range wordLines(body) {
			fmt.Println("  " + ui.Meta(line))
		}
	}
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeAsReturn, "returns", false, "decode without a selector (return data / bare tuple)")
	decodeCmd.Flags().StringVar(&decodeABIName, "abi", "", "identify the function by selector from this ABI (registry name, built-in, or JSON file)")
}
