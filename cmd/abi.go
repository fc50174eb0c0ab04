package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/contract"
	"github.com/kairoschain/kairos-go/internal/hexutil"
	"github.com/kairoschain/kairos-go/internal/ui"
)

var abiAddAddress string

var abiCmd = &cobra.Command{
	Use:   "abi",
	Short: "Manage and inspect contract ABIs",
	Long: `Manage the local contract ABI registry and inspect ABIs.

Stored ABIs live in contracts.json under the config directory. Built-in
ABIs (like krc20) ship with the binary and are always available.`,
}

var abiListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered contract ABIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		entries := reg.All()
		if len(entries) == 0 {
			fmt.Println(ui.Meta("No contracts registered. Add one with: kairos abi add <name> <abi.json>"))
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "NAME", Width: 20},
			{Title: "ADDRESS", Width: 28},
			{Title: "ENTRIES", Width: 8},
		})
		for _, e := range entries {
			addr := e.Address
			if addr == "" {
				addr = "-"
			}
			t.AddRow(ui.Row{e.Name, ui.TruncateHex(addr), fmt.Sprintf("%d", len(e.ABI))})
		}
		fmt.Println(t.Render())
		return nil
	},
}

var abiBuiltinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List built-in contract ABIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := ui.NewTable([]ui.Column{
			{Title: "ID", Width: 12},
			{Title: "NAME", Width: 24},
			{Title: "DESCRIPTION", Width: 48},
		})
		for _, b := range contract.AllBuiltins() {
			t.AddRow(ui.Row{b.ID, b.Name, b.Description})
		}
		fmt.Println(t.Render())
		return nil
	},
}

var abiShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show every entry of an ABI with selectors and topics",
	Long: `Show all functions and events of a registered or built-in ABI,
with canonical signatures, 4-byte selectors, and event topics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iface, err := resolveInterface(args[0])
		if err != nil {
			return err
		}

		t := ui.NewTable([]ui.Column{
			{Title: "KIND", Width: 10},
			{Title: "SIGNATURE", Width: 56},
			{Title: "ID", Width: 12},
			{Title: "MUTABILITY", Width: 14},
		})
		for _, e := range iface.Entries() {
			switch e.Type {
			case "function":
				sel := e.Selector()
				t.AddRow(ui.Row{"function", e.Signature(), hexutil.Encode(sel[:]), e.StateMutability})
			case "event":
				topic := e.Topic()
				t.AddRow(ui.Row{"event", e.Signature(), ui.TruncateHex(hexutil.Encode(topic[:])), "-"})
			}
		}
		fmt.Println(t.Render())
		return nil
	},
}

var abiInspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Interactively inspect one entry of an ABI",
	Long: `Pick a function or event from an ABI interactively, then show its
full detail: canonical signature, selector or topic, parameter list, and
whether calls need the full tuple-aware codec.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		iface, err := resolveInterface(args[0])
		if err != nil {
			return err
		}

		var items []ui.PickerItem
		for _, e := range iface.Entries() {
			switch e.Type {
			case "function":
				sel := e.Selector()
				items = append(items, ui.PickerItem{
					Label:    e.Signature(),
					SubLabel: hexutil.Encode(sel[:]),
					Tag:      "function",
					Value:    e.Signature(),
				})
			case "event":
				topic := e.Topic()
				items = append(items, ui.PickerItem{
					Label:    e.Signature(),
					SubLabel: ui.TruncateHex(hexutil.Encode(topic[:])),
					Tag:      "event",
					Value:    e.Signature(),
				})
			}
		}

		picked, err := ui.PickItem("Inspect ABI: "+args[0], items)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil // cancelled
		}

		for _, e := range iface.Entries() {
			if e.Signature() != picked {
				continue
			}
			printEntryDetail(e)
			return nil
		}
		return fmt.Errorf("entry %q not found", picked)
	},
}

var abiAddCmd = &cobra.Command{
	Use:   "add <name> <abi-file>",
	Short: "Register a contract ABI from a JSON file",
	Long: `Register a contract ABI under a name. The file may be a raw ABI
array or a Hardhat/Foundry artifact with an "abi" field. The ABI is
compiled before saving, so malformed types are rejected up front.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading ABI file: %w", err)
		}
		entries, err := abi.ParseJSON(data)
		if err != nil {
			return err
		}
		// Compile now so a broken ABI never lands in the registry.
		if _, err := contract.NewInterface(entries); err != nil {
			return fmt.Errorf("ABI does not compile: %w", err)
		}

		if abiAddAddress != "" {
			if _, err := abi.HexToAddress(abiAddAddress); err != nil {
				return fmt.Errorf("invalid contract address: %w", err)
			}
		}

		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		reg.Add(&contract.Entry{Name: name, Address: abiAddAddress, ABI: entries})
		if err := reg.Save(); err != nil {
			return fmt.Errorf("saving registry: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Registered %q (%d entries)", name, len(entries))))
		return nil
	},
}

var abiRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a contract ABI from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		if err := reg.Remove(args[0]); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("saving registry: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed %q", args[0])))
		return nil
	},
}

// loadRegistry opens the contract registry at the configured path.
func loadRegistry() (*contract.Registry, error) {
	reg := contract.NewRegistry(cfg.ContractsPath())
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("loading contract registry: %w", err)
	}
	return reg, nil
}

// resolveInterface compiles an ABI by name: the local registry first, then
// the built-ins (so `kairos abi show krc20` always works), then a path to
// an ABI JSON file.
func resolveInterface(name string) (*contract.Interface, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	if iface, err := reg.Interface(name); err == nil {
		return iface, nil
	}
	if iface, err := contract.BuiltinInterface(name); err == nil {
		return iface, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return contract.ParseInterface(data)
	}
	return nil, fmt.Errorf("%w: %q is not registered, not a built-in, and not a readable ABI file", contract.ErrContractNotFound, name)
}

func printEntryDetail(e *abi.CompiledEntry) {
	pairs := [][2]string{
		{"Kind", e.Type},
		{"Signature", ui.Val(e.Signature())},
	}

	switch e.Type {
	case "function":
		sel := e.Selector()
		pairs = append(pairs,
			[2]string{"Selector", hexutil.Encode(sel[:])},
			[2]string{"Mutability", e.StateMutability},
		)
		if abi.RequiresFullCodec(e.Inputs) || abi.RequiresFullCodec(e.Outputs) {
			pairs = append(pairs, [2]string{"Codec", "full (tuples or nested arrays present)"})
		}
	case "event":
		topic := e.Topic()
		pairs = append(pairs, [2]string{"Topic", hexutil.Encode(topic[:])})
	}

	for i, p := range e.Inputs {
		label := fmt.Sprintf("Input[%d]", i)
		val := p.Type.Canonical()
		if p.Name != "" {
			val += " " + p.Name
		}
		pairs = append(pairs, [2]string{label, val})
	}
	for i, p := range e.Outputs {
		label := fmt.Sprintf("Output[%d]", i)
		val := p.Type.Canonical()
		if p.Name != "" {
			val += " " + p.Name
		}
		pairs = append(pairs, [2]string{label, val})
	}

	fmt.Println(ui.KeyValueBlock("ABI Entry", pairs))
}

func init() {
	abiAddCmd.Flags().StringVar(&abiAddAddress, "address", "", "deployed contract address (0x-prefixed, 32 bytes)")

	abiCmd.AddCommand(
		abiListCmd,
		abiBuiltinsCmd,
		abiShowCmd,
		abiInspectCmd,
		abiAddCmd,
		abiRemoveCmd,
	)
}
