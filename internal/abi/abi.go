package abi

import (
	"encoding/json"
	"fmt"
)

// ParamDef is one parameter as it appears in ABI JSON. internalType only
// matters for struct naming upstream and is carried verbatim.
type ParamDef struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Components   []ParamDef `json:"components,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
	InternalType string     `json:"internalType,omitempty"`
}

// Entry is one ABI entry (function, event, error, constructor) as it appears
// in ABI JSON.
type Entry struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Inputs          []ParamDef `json:"inputs"`
	Outputs         []ParamDef `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
	Anonymous       bool       `json:"anonymous,omitempty"`
}

// IsReadFunction returns true if the entry is a read-only (view/pure) function.
func (e Entry) IsReadFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "view" || e.StateMutability == "pure")
}

// IsWriteFunction returns true if the entry is a state-changing function.
func (e Entry) IsWriteFunction() bool {
	return e.Type == "function" &&
		(e.StateMutability == "nonpayable" || e.StateMutability == "payable")
}

// Compile resolves the JSON parameter definition into a descriptor tree.
func (d ParamDef) Compile() (Param, error) {
	var components []Param
	if len(d.Components) > 0 {
		var err error
		components, err = CompileParams(d.Components)
		if err != nil {
			return Param{}, err
		}
	}
	t, err := ParseType(d.Type, components)
	if err != nil {
		if d.Name != "" {
			return Param{}, fmt.Errorf("parameter %s: %w", d.Name, err)
		}
		return Param{}, err
	}
	return Param{Name: d.Name, Type: t}, nil
}

// CompileParams compiles a JSON parameter list into descriptors.
func CompileParams(defs []ParamDef) ([]Param, error) {
	params := make([]Param, len(defs))
	for i, d := range defs {
		p, err := d.Compile()
		if err != nil {
			return nil, err
		}
		params[i] = p
	}
	return params, nil
}

// CompiledEntry is an Entry with its descriptor trees built once. Selector
// and topic are derived lazily from the compiled inputs.
type CompiledEntry struct {
	Entry
	Inputs  []Param
	Outputs []Param
}

// Compile builds the descriptor trees for an ABI entry.
func Compile(e Entry) (*CompiledEntry, error) {
	in, err := CompileParams(e.Inputs)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.Name, err)
	}
	out, err := CompileParams(e.Outputs)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.Name, err)
	}
	return &CompiledEntry{Entry: e, Inputs: in, Outputs: out}, nil
}

// Signature returns the canonical signature of the entry.
func (e *CompiledEntry) Signature() string {
	return Signature(e.Name, e.Inputs)
}

// Selector returns the 4-byte function selector.
func (e *CompiledEntry) Selector() [4]byte {
	return FunctionSelector(e.Name, e.Inputs)
}

// Topic returns the 32-byte event topic (topics[0]).
func (e *CompiledEntry) Topic() [32]byte {
	return EventTopic(e.Name, e.Inputs)
}

// ParseJSON parses ABI JSON: either a raw entry array or a Hardhat/Foundry
// style artifact object with an "abi" key. Both are detected automatically.
func ParseJSON(data []byte) ([]Entry, error) {
	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if json.Unmarshal(data, &artifact) == nil && len(artifact.ABI) > 1 && artifact.ABI[0] == '[' {
		data = artifact.ABI
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing ABI JSON: %v", ErrInvalidArgument, err)
	}
	return entries, nil
}

// RequiresFullCodec reports whether the parameter set needs this codec
// rather than the flat native packer: true when a tuple appears at any
// nesting depth, or when an array's element type is itself an array. The
// dispatch layer calls this per ABI entry.
func RequiresFullCodec(params []Param) bool {
	for _, p := range params {
		if typeNeedsFullCodec(p.Type) {
			return true
		}
	}
	return false
}

func typeNeedsFullCodec(t *Type) bool {
	switch t.Kind {
	case KindTuple:
		return true
	case KindArray:
		if t.Elem.Kind == KindArray {
			return true
		}
		return typeNeedsFullCodec(t.Elem)
	default:
		return false
	}
}
