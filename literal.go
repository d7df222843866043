// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import (
	"math/big"
	"strings"
)

// Null parses the null keyword.
func Null(c Cursor) (struct{}, Cursor, error) {
	_, rest, err := keyword("null")(c)
	return struct{}{}, rest, err
}

// Bool parses the true and false keywords.
func Bool(c Cursor) (bool, Cursor, error) {
	if _, rest, err := keyword("true")(c); err == nil {
		return true, rest, nil
	}
	if _, rest, err := keyword("false")(c); err == nil {
		return false, rest, nil
	}
	return false, c, c.errorf("expecting boolean")
}

// natural parses one or more digits as an unbounded non-negative integer.
func natural(c Cursor) (*big.Int, Cursor, error) {
	run, rest := takeWhile(c, isDigit)
	if run == "" {
		return nil, c, c.errorf("expecting digits")
	}
	n, _ := new(big.Int).SetString(run, 10)
	return n, rest, nil
}

var integerParser = signed[*big.Int](natural, func(n *big.Int) *big.Int {
	return new(big.Int).Neg(n)
})

// Integer parses a signed integer literal of any magnitude.  Leading zeros
// are permitted and "-0" parses as zero.
func Integer(c Cursor) (*big.Int, Cursor, error) {
	return integerParser(c)
}

// String parses a double-quoted string literal.  The only recognized
// escape is a backslash before a double quote; every other byte, including
// a lone backslash, stands for itself.
func String(c Cursor) (string, Cursor, error) {
	cur, err := expectByte(c, '"')
	if err != nil {
		return "", c, err
	}
	var b strings.Builder
	for {
		ch, ok := cur.peek()
		if !ok {
			return "", cur, cur.errorf("unterminated string")
		}
		switch {
		case ch == '\\':
			if next, ok := cur.advance(1).peek(); ok && next == '"' {
				b.WriteByte('"')
				cur = cur.advance(2)
				continue
			}
			b.WriteByte('\\')
			cur = cur.advance(1)
		case ch == '"':
			return b.String(), cur.advance(1), nil
		default:
			b.WriteByte(ch)
			cur = cur.advance(1)
		}
	}
}
