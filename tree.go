// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

// Value is the default eager EJSON tree: a node owning one Layer whose
// children are further *Value nodes.  It closes OneLayer's open recursion
// for callers that do not need a custom tree representation.
//
// Recursion depth while building a Value equals the nesting depth of the
// input; pathologically nested documents can exhaust the stack.
type Value struct {
	Layer[*Value]
}

// layerParser is the fixpoint: one layer whose children are parsed by
// parseChild, which parses one layer whose children...  Assigned in init
// because the mutual reference would otherwise be an initialization cycle.
var layerParser Parser[Layer[*Value]]

func init() {
	layerParser = OneLayer[*Value](parseChild)
}

func parseChild(c Cursor) (*Value, Cursor, error) {
	l, rest, err := layerParser(c)
	if err != nil {
		return nil, rest, err
	}
	return &Value{Layer: l}, rest, nil
}

// ParseValue parses a single complete EJSON value starting at the cursor
// and returns it with the cursor past the consumed input.
func ParseValue(c Cursor) (*Value, Cursor, error) {
	return parseChild(c)
}

// Parse decodes one EJSON document: a single value with optional
// surrounding whitespace.  Trailing input after the value is an error.
func Parse(input string) (*Value, error) {
	c := skipSpaces(NewCursor(input))
	v, rest, err := parseChild(c)
	if err != nil {
		return nil, err
	}
	if rest = skipSpaces(rest); !rest.AtEOF() {
		return nil, rest.errorf("unexpected trailing input")
	}
	return v, nil
}
