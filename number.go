// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Digit matches exactly one decimal digit and yields its numeric value.
func Digit(c Cursor) (int, Cursor, error) {
	ch, ok := c.peek()
	if !ok || !isDigit(ch) {
		return 0, c, c.errorf("expecting digit")
	}
	return int(ch - '0'), c.advance(1), nil
}

// digitField matches one to max digits, longest run first, and folds them
// into an unsigned int.  The calendar and clock grammars fix their field
// widths with it: 2 for clock fields, months and days, 4 for years.
func digitField(max int) Parser[int] {
	return func(c Cursor) (int, Cursor, error) {
		n := 0
		cur := c
		for i := 0; i < max; i++ {
			ch, ok := cur.peek()
			if !ok || !isDigit(ch) {
				break
			}
			n = n*10 + int(ch-'0')
			cur = cur.advance(1)
		}
		if cur.pos == c.pos {
			return 0, c, c.errorf("expecting digit")
		}
		return n, cur, nil
	}
}

var (
	clockField = digitField(2)
	yearField  = digitField(4)
)

// negative parses a leading '-', optional whitespace, then the quantity,
// and negates the result.
func negative[T any](p Parser[T], negate func(T) T) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		cur, err := expectByte(c, '-')
		if err != nil {
			return zero, c, err
		}
		v, rest, err := p(skipSpaces(cur))
		if err != nil {
			return zero, rest, err
		}
		return negate(v), rest, nil
	}
}

// positive parses the quantity with an optional leading '+' and optional
// whitespace after the sign.
func positive[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		cur := c
		if ch, ok := c.peek(); ok && ch == '+' {
			cur = skipSpaces(c.advance(1))
		}
		return p(cur)
	}
}

// signed tries the negative form first, then the positive form.
func signed[T any](p Parser[T], negate func(T) T) Parser[T] {
	return alt(negative(p, negate), positive(p))
}
