// Package contract is the integration surface around the ABI codec: parsed
// contract interfaces with selector/topic lookup, calldata building and
// decoding, event log decoding, and registries for stored and built-in ABIs.
package contract

import (
	"fmt"

	"github.com/kairoschain/kairos-go/internal/abi"
)

// Interface is a compiled contract ABI with lookup tables by name, call
// selector, and event topic. Build it once and reuse it; it is read-only
// after construction.
type Interface struct {
	entries []*abi.CompiledEntry

	functions  map[string]*abi.CompiledEntry
	bySelector map[[4]byte]*abi.CompiledEntry
	events     map[string]*abi.CompiledEntry
	byTopic    map[[32]byte]*abi.CompiledEntry
}

// NewInterface compiles parsed ABI entries into an Interface.
func NewInterface(entries []abi.Entry) (*Interface, error) {
	iface := &Interface{
		functions:  make(map[string]*abi.CompiledEntry),
		bySelector: make(map[[4]byte]*abi.CompiledEntry),
		events:     make(map[string]*abi.CompiledEntry),
		byTopic:    make(map[[32]byte]*abi.CompiledEntry),
	}

	for _, e := range entries {
		ce, err := abi.Compile(e)
		if err != nil {
			return nil, err
		}
		iface.entries = append(iface.entries, ce)

		switch e.Type {
		case "function":
			iface.functions[e.Name] = ce
			iface.bySelector[ce.Selector()] = ce
		case "event":
			iface.events[e.Name] = ce
			if !e.Anonymous {
				iface.byTopic[ce.Topic()] = ce
			}
		}
	}
	return iface, nil
}

// ParseInterface compiles an Interface straight from ABI JSON (raw array or
// Hardhat/Foundry artifact).
func ParseInterface(abiJSON []byte) (*Interface, error) {
	entries, err := abi.ParseJSON(abiJSON)
	if err != nil {
		return nil, err
	}
	return NewInterface(entries)
}

// Entries returns every compiled entry in declaration order.
func (i *Interface) Entries() []*abi.CompiledEntry {
	return i.entries
}

// Function looks up a function entry by name.
func (i *Interface) Function(name string) (*abi.CompiledEntry, bool) {
	e, ok := i.functions[name]
	return e, ok
}

// FunctionBySelector looks up a function entry by its 4-byte selector.
func (i *Interface) FunctionBySelector(sel [4]byte) (*abi.CompiledEntry, bool) {
	e, ok := i.bySelector[sel]
	return e, ok
}

// Event looks up an event entry by name.
func (i *Interface) Event(name string) (*abi.CompiledEntry, bool) {
	e, ok := i.events[name]
	return e, ok
}

// EventByTopic looks up a non-anonymous event entry by topics[0].
func (i *Interface) EventByTopic(topic [32]byte) (*abi.CompiledEntry, bool) {
	e, ok := i.byTopic[topic]
	return e, ok
}

// NeedsFullCodec reports whether calls to the named function must go through
// this codec rather than the flat native packer: true when the inputs or
// outputs contain a tuple at any depth or a nested array.
func (i *Interface) NeedsFullCodec(name string) (bool, error) {
	e, ok := i.functions[name]
	if !ok {
		return false, fmt.Errorf("function %q not found in ABI", name)
	}
	return abi.RequiresFullCodec(e.Inputs) || abi.RequiresFullCodec(e.Outputs), nil
}
