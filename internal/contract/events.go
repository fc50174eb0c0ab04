package contract

import (
	"fmt"

	"github.com/kairoschain/kairos-go/internal/abi"
)

// Log is the slice of a receipt log this package needs: the topic list and
// the data section. Transport concerns (block, tx hash, log index) live with
// the RPC layer, not here.
type Log struct {
	Topics [][32]byte
	Data   []byte
}

// DecodedField is one event parameter with its decoded value. For indexed
// parameters of dynamic type the chain only stores the keccak hash of the
// value, so Value holds that opaque 32-byte hash and Hashed is set.
type DecodedField struct {
	Name    string
	Value   any
	Indexed bool
	Hashed  bool
}

// DecodedEvent is a log matched to its ABI entry.
type DecodedEvent struct {
	Event  *abi.CompiledEntry
	Fields []DecodedField
}

// DecodeLog matches topics[0] against the interface's events and decodes
// indexed parameters from the topic words and the rest from the data
// section.
func (i *Interface) DecodeLog(log Log) (*DecodedEvent, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("%w: log has no topics", abi.ErrInvalidArgument)
	}
	ev, ok := i.EventByTopic(log.Topics[0])
	if !ok {
		return nil, fmt.Errorf("no event with topic %x", log.Topics[0])
	}
	return DecodeLogAgainst(ev, log)
}

// DecodeLogAgainst decodes a log against one specific event entry.
func DecodeLogAgainst(ev *abi.CompiledEntry, log Log) (*DecodedEvent, error) {
	var indexed, unindexed []abi.Param
	for idx, def := range ev.Entry.Inputs {
		if def.Indexed {
			indexed = append(indexed, ev.Inputs[idx])
		} else {
			unindexed = append(unindexed, ev.Inputs[idx])
		}
	}

	topicWords := log.Topics[1:]
	if len(topicWords) != len(indexed) {
		return nil, fmt.Errorf("%w: event %s expects %d indexed topics, log has %d",
			abi.ErrInvalidArgument, ev.Signature(), len(indexed), len(topicWords))
	}

	dataValues, err := abi.DecodeTuple(unindexed, log.Data, 0)
	if err != nil {
		return nil, fmt.Errorf("decoding %s data: %w", ev.Signature(), err)
	}

	out := &DecodedEvent{Event: ev}
	topicAt, dataAt := 0, 0
	for idx, def := range ev.Entry.Inputs {
		p := ev.Inputs[idx]
		if !def.Indexed {
			out.Fields = append(out.Fields, DecodedField{Name: p.Name, Value: dataValues[dataAt]})
			dataAt++
			continue
		}

		word := topicWords[topicAt]
		topicAt++
		if indexedValueIsHashed(p.Type) {
			// Only the hash of the value is on chain.
			hash := make([]byte, len(word))
			copy(hash, word[:])
			out.Fields = append(out.Fields, DecodedField{Name: p.Name, Value: hash, Indexed: true, Hashed: true})
			continue
		}

		vals, err := abi.DecodeTuple([]abi.Param{p}, word[:], 0)
		if err != nil {
			return nil, fmt.Errorf("decoding %s topic %s: %w", ev.Signature(), p.Name, err)
		}
		out.Fields = append(out.Fields, DecodedField{Name: p.Name, Value: vals[0], Indexed: true})
	}
	return out, nil
}

// indexedValueIsHashed reports whether an indexed parameter of this type is
// stored as its keccak hash rather than inline in the topic word. Everything
// wider than one value word — strings, bytes, arrays, tuples — is hashed.
func indexedValueIsHashed(t *abi.Type) bool {
	switch t.Kind {
	case abi.KindString, abi.KindBytes, abi.KindArray, abi.KindTuple:
		return true
	default:
		return false
	}
}
