package abi

import (
	"fmt"
	"strings"
)

// ParseSignature parses a human-readable function or event signature into a
// name and parameter descriptors. Parameter names are optional and tuples
// use parenthesized Solidity syntax:
//
//	transfer(address to, uint256 amount)
//	swap((address,uint256)[] orders, bytes32 salt)
func ParseSignature(sig string) (string, []Param, error) {
	open := strings.IndexByte(sig, '(')
	if open < 0 || !strings.HasSuffix(sig, ")") {
		return "", nil, fmt.Errorf("%w: signature %q must look like name(type,...)", ErrInvalidArgument, sig)
	}
	name := strings.TrimSpace(sig[:open])
	if name == "" {
		return "", nil, fmt.Errorf("%w: signature %q has no name", ErrInvalidArgument, sig)
	}

	inner := sig[open+1 : len(sig)-1]
	if strings.TrimSpace(inner) == "" {
		return name, nil, nil
	}

	segments, err := splitTopLevel(inner)
	if err != nil {
		return "", nil, err
	}

	params := make([]Param, len(segments))
	for i, seg := range segments {
		p, err := parseParamString(seg)
		if err != nil {
			return "", nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		params[i] = p
	}
	return name, params, nil
}

// parseParamString parses one "type [name]" segment.
func parseParamString(seg string) (Param, error) {
	seg = strings.TrimSpace(seg)
	typeStr, paramName := seg, ""
	// The optional parameter name follows the last space outside brackets;
	// spaces between named tuple components don't count.
	if idx := lastTopLevelSpace(seg); idx >= 0 {
		typeStr, paramName = strings.TrimSpace(seg[:idx]), strings.TrimSpace(seg[idx+1:])
	}
	t, err := parseTypeString(typeStr)
	if err != nil {
		return Param{}, err
	}
	return Param{Name: paramName, Type: t}, nil
}

// lastTopLevelSpace returns the index of the last space not nested inside
// parentheses or brackets, or -1.
func lastTopLevelSpace(s string) int {
	depth, last := 0, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ' ':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// parseTypeString parses a textual type, including parenthesized tuple
// syntax, into a descriptor.
func parseTypeString(s string) (*Type, error) {
	if !strings.HasPrefix(s, "(") {
		return ParseType(s, nil)
	}

	close := matchParen(s)
	if close < 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidArgument, s)
	}

	var components []Param
	if inner := s[1:close]; strings.TrimSpace(inner) != "" {
		segments, err := splitTopLevel(inner)
		if err != nil {
			return nil, err
		}
		components = make([]Param, len(segments))
		for i, seg := range segments {
			p, err := parseParamString(seg)
			if err != nil {
				return nil, err
			}
			components[i] = p
		}
	}

	t := &Type{Kind: KindTuple, Components: components}
	if suffix := s[close+1:]; suffix != "" {
		return applyArraySuffix(t, suffix)
	}
	return t, nil
}

// splitTopLevel splits on commas that are not nested inside parentheses or
// brackets.
func splitTopLevel(s string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidArgument, s)
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidArgument, s)
	}
	return append(out, s[start:]), nil
}

// matchParen returns the index of the parenthesis closing s[0], or -1.
func matchParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
