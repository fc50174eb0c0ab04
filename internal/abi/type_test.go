package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeCanonical(t *testing.T) {
	tests := []struct {
		in        string
		canonical string
	}{
		{"bool", "bool"},
		{"address", "address"},
		{"string", "string"},
		{"bytes", "bytes"},
		{"bytes1", "bytes1"},
		{"bytes32", "bytes32"},
		{"uint", "uint256"},
		{"int", "int256"},
		{"uint8", "uint8"},
		{"int128", "int128"},
		{"uint256[]", "uint256[]"},
		{"uint256[3]", "uint256[3]"},
		{"uint8[2][]", "uint8[2][]"},
		{"bytes32[4][2]", "bytes32[4][2]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			typ, err := ParseType(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, typ.Canonical())
		})
	}
}

func TestParseTypeTuple(t *testing.T) {
	inner, err := ParseType("uint256", nil)
	require.NoError(t, err)
	str, err := ParseType("string", nil)
	require.NoError(t, err)

	typ, err := ParseType("tuple[2]", []Param{
		{Name: "amount", Type: inner},
		{Name: "memo", Type: str},
	})
	require.NoError(t, err)
	assert.Equal(t, "(uint256,string)[2]", typ.Canonical())
	assert.Equal(t, KindArray, typ.Kind)
	assert.Equal(t, KindTuple, typ.Elem.Kind)
}

func TestParseTypeUnsupported(t *testing.T) {
	for _, name := range []string{
		"fixed128x18", "ufixed", "function", "uint7", "uint0", "uint264",
		"bytes0", "bytes33", "frobnicate", "int12",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseType(name, nil)
			require.ErrorIs(t, err, ErrNotImplemented)
		})
	}
}

func TestIsDynamic(t *testing.T) {
	tests := []struct {
		sig     string
		dynamic bool
	}{
		{"string", true},
		{"bytes", true},
		{"bytes32", false},
		{"uint256", false},
		{"uint256[]", true},
		{"uint256[3]", false},
		{"string[3]", true},       // dynamism propagates through fixed arrays
		{"(uint256,bool)", false}, // static tuple
		{"(uint256,string)", true},
		{"(uint256,bool)[2]", false},
		{"((string,bool),uint8)", true}, // nested dynamic component
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			typ, err := parseTypeString(tt.sig)
			require.NoError(t, err)
			assert.Equal(t, tt.dynamic, typ.IsDynamic())
		})
	}
}

func TestStaticWords(t *testing.T) {
	tests := []struct {
		sig   string
		words int
	}{
		{"uint256", 1},
		{"bytes32", 1},
		{"string", 1}, // dynamic: head holds the offset word only
		{"uint256[]", 1},
		{"uint256[3]", 3},
		{"uint8[2][3]", 6},
		{"(uint256,bool)", 2},
		{"(uint256,bool)[2]", 4},
		{"((uint8,uint8),bytes32)", 3},
		{"(uint256,string)", 1}, // dynamic tuple collapses to one offset word
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			typ, err := parseTypeString(tt.sig)
			require.NoError(t, err)
			assert.Equal(t, tt.words, typ.StaticWords())
		})
	}
}
