// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

// Cursor is an immutable view of the remaining input: the full input text
// plus a consumed offset.  Parsers take a cursor and return an advanced
// copy; the original stays valid, which is what makes explicit backtracking
// cheap.  The whole input must be resident in memory.
type Cursor struct {
	input string
	pos   int
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Pos returns the number of bytes consumed so far.
func (c Cursor) Pos() int { return c.pos }

// Rest returns the unconsumed remainder of the input.
func (c Cursor) Rest() string { return c.input[c.pos:] }

// AtEOF reports whether the cursor has consumed the entire input.
func (c Cursor) AtEOF() bool { return c.pos >= len(c.input) }

func (c Cursor) peek() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c Cursor) advance(n int) Cursor {
	c.pos += n
	return c
}
