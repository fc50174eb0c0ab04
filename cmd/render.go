package cmd

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/kairoschain/kairos-go/internal/abi"
	"github.com/kairoschain/kairos-go/internal/hexutil"
)

// formatValue renders a decoded value tree for display. Integers print in
// decimal, byte strings as 0x hex, composites in bracketed lists.
func formatValue(v any) string {
	switch val := v.(type) {
	case *big.Int:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return fmt.Sprintf("%q", val)
	case []byte:
		return hexutil.Encode(val)
	case abi.Address:
		return val.Hex()
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// wordLines splits encoded data into 32-byte words for verbose display,
// labelled with the byte offset of each word.
func wordLines(data []byte) []string {
	var lines []string
	for off := 0; off < len(data); off += 32 {
		end := off + 32
		if end > len(data) {
			end = len(data)
		}
		lines = append(lines, fmt.Sprintf("0x%03x  %x", off, data[off:end]))
	}
	return lines
}

// parseArg converts one CLI argument string into a codec value. Composite
// parameters (arrays, tuples) take JSON; elementary parameters pass through
// as strings, which the codec coerces itself.
func parseArg(p abi.Param, raw string) (any, error) {
	switch p.Type.Kind {
	case abi.KindArray, abi.KindTuple:
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("argument %q: composite values take JSON (e.g. [1,2,3]): %w", raw, err)
		}
		return normalizeJSON(v), nil
	default:
		return raw, nil
	}
}

// normalizeJSON rewrites json.Number leaves into plain strings so the codec's
// integer coercion handles them without float64 precision loss.
func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		return val.String()
	case []any:
		for i, e := range val {
			val[i] = normalizeJSON(e)
		}
		return val
	case map[string]any:
		for k, e := range val {
			val[k] = normalizeJSON(e)
		}
		return val
	default:
		return v
	}
}
