package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/kairoschain/kairos-go/internal/abi"
)

// ErrContractNotFound is returned when a contract is not in the registry.
var ErrContractNotFound = errors.New("contract not found")

// Entry is a stored contract: a name, an optional deployed address, and its
// ABI.
type Entry struct {
	Name    string      `json:"name"`
	Address string      `json:"address,omitempty"`
	ABI     []abi.Entry `json:"abi"`
}

// Registry stores and retrieves contract entries, backed by a JSON file.
type Registry struct {
	path      string
	contracts map[string]*Entry
}

// NewRegistry creates a Registry backed by the JSON file at path.
func NewRegistry(path string) *Registry {
	return &Registry{
		path:      path,
		contracts: make(map[string]*Entry),
	}
}

// Load reads stored contracts from disk. A missing file is an empty registry.
func (r *Registry) Load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing contract registry: %w", err)
	}
	for i := range entries {
		e := &entries[i]
		r.contracts[e.Name] = e
	}
	return nil
}

// Save writes all contracts to disk, sorted by name for stable files.
func (r *Registry) Save() error {
	entries := make([]Entry, 0, len(r.contracts))
	for _, e := range r.contracts {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o600)
}

// Add adds or replaces a contract entry.
func (r *Registry) Add(e *Entry) {
	r.contracts[e.Name] = e
}

// Get returns a contract by name.
func (r *Registry) Get(name string) (*Entry, error) {
	e, ok := r.contracts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, name)
	}
	return e, nil
}

// Remove deletes a contract by name.
func (r *Registry) Remove(name string) error {
	if _, ok := r.contracts[name]; !ok {
		return fmt.Errorf("%w: %s", ErrContractNotFound, name)
	}
	delete(r.contracts, name)
	return nil
}

// All returns all registered contracts sorted by name.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.contracts))
	for _, e := range r.contracts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Interface compiles the stored ABI of a contract.
func (r *Registry) Interface(name string) (*Interface, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return NewInterface(e.ABI)
}
