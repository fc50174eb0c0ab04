package contract

import "github.com/kairoschain/kairos-go/internal/abi"

// krc20 is the standard Kairos fungible token interface. It mirrors the
// EIP-20 surface, with 32-byte account addresses. Any command that takes an
// ABI name accepts "krc20" without a file.
func init() {
	RegisterBuiltin(BuiltinKind{
		ID:          "krc20",
		Name:        "KRC-20 Standard Token",
		Description: "Standard Kairos fungible token interface (EIP-20 surface, 32-byte addresses)",
		ABI:         krc20ABI,
	})
}

var krc20ABI = []abi.Entry{
	// ── Read ─────────────────────────────────────────────────────────────────
	{
		Name: "name", Type: "function",
		Inputs: nil, Outputs: []abi.ParamDef{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "symbol", Type: "function",
		Inputs: nil, Outputs: []abi.ParamDef{{Name: "", Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "decimals", Type: "function",
		Inputs: nil, Outputs: []abi.ParamDef{{Name: "", Type: "uint8"}},
		StateMutability: "view",
	},
	{
		Name: "totalSupply", Type: "function",
		Inputs: nil, Outputs: []abi.ParamDef{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "balanceOf", Type: "function",
		Inputs:          []abi.ParamDef{{Name: "account", Type: "address"}},
		Outputs:         []abi.ParamDef{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "allowance", Type: "function",
		Inputs:          []abi.ParamDef{{Name: "owner", Type: "address"}, {Name: "spender", Type: "address"}},
		Outputs:         []abi.ParamDef{{Name: "", Type: "uint256"}},
		StateMutability: "view",
	},

	// ── Write ────────────────────────────────────────────────────────────────
	{
		Name: "transfer", Type: "function",
		Inputs:          []abi.ParamDef{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
		Outputs:         []abi.ParamDef{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "approve", Type: "function",
		Inputs:          []abi.ParamDef{{Name: "spender", Type: "address"}, {Name: "amount", Type: "uint256"}},
		Outputs:         []abi.ParamDef{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferFrom", Type: "function",
		Inputs: []abi.ParamDef{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
		Outputs:         []abi.ParamDef{{Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
	},

	// ── Events ───────────────────────────────────────────────────────────────
	{
		Name: "Transfer", Type: "event",
		Inputs: []abi.ParamDef{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
	{
		Name: "Approval", Type: "event",
		Inputs: []abi.ParamDef{
			{Name: "owner", Type: "address", Indexed: true},
			{Name: "spender", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
}
