package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/hexutil"
	"github.com/kairoschain/kairos-go/internal/keccak"
	"github.com/kairoschain/kairos-go/internal/ui"
)

var keccakCmd = &cobra.Command{
	Use:   "keccak <input>",
	Short: "Compute Keccak-256 hash of text or hex input",
	Long: `Compute the Keccak-256 hash of the given input.

If the input starts with 0x, it's treated as raw hex bytes.
Otherwise, it's treated as a UTF-8 string.

Also shows the 4-byte selector (first 4 bytes) for quick function
selector lookups.

Examples:
  kairos keccak "transfer(address,uint256)"    # → function selector
  kairos keccak "Hello, world!"                # → hash of string
  kairos keccak 0xdeadbeef                     # → hash of raw bytes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		var data []byte
		inputType := "text"

		if hexutil.Has0xPrefix(input) {
			raw, err := hexutil.Decode(input)
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			data = raw
			inputType = "hex"
		} else {
			data = []byte(input)
		}

		hash := keccak.Sum256(data)

		pairs := [][2]string{
			{"Input", input},
			{"Type", inputType},
			{"Keccak-256", ui.Val(hexutil.Encode(hash[:]))},
			{"Selector (4 bytes)", hexutil.Encode(hash[:4])},
		}

		fmt.Println(ui.KeyValueBlock("Keccak-256 Hash", pairs))
		return nil
	},
}

func init() {
	// No flags — positional arg only.
}
