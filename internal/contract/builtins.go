package contract

import (
	"sort"

	"github.com/kairoschain/kairos-go/internal/abi"
)

// BuiltinKind describes a built-in contract type whose ABI is embedded in
// the binary. New built-ins register themselves via init() in their own
// file — create internal/contract/<name>_abi.go and call RegisterBuiltin().
type BuiltinKind struct {
	ID          string      // machine key, e.g. "krc20"
	Name        string      // human label
	Description string      // one-line summary shown in `abi builtins`
	ABI         []abi.Entry // full ABI, ready to compile
}

var builtinRegistry = map[string]BuiltinKind{}

// RegisterBuiltin adds a built-in ABI to the global registry.
// Call this from init() in the file that defines the ABI.
func RegisterBuiltin(b BuiltinKind) {
	builtinRegistry[b.ID] = b
}

// GetBuiltin returns a built-in by ID. ok is false if not found.
func GetBuiltin(id string) (BuiltinKind, bool) {
	b, ok := builtinRegistry[id]
	return b, ok
}

// BuiltinInterface compiles a built-in's ABI, or returns ok=false.
func BuiltinInterface(id string) (*Interface, error) {
	b, ok := builtinRegistry[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return NewInterface(b.ABI)
}

// AllBuiltins returns all registered built-ins sorted by ID.
func AllBuiltins() []BuiltinKind {
	out := make([]BuiltinKind, 0, len(builtinRegistry))
	for _, b := range builtinRegistry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
