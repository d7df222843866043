// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import "strings"

// Parser is a pure function from a cursor to a parsed value and the cursor
// past the consumed input.  On failure the returned cursor marks how far
// the parser got before failing: a parser whose failure cursor equals its
// starting cursor has not committed any input and may be retried with a
// different alternative, while a committed failure aborts the parse.
type Parser[T any] func(Cursor) (T, Cursor, error)

// Attempt wraps p so that any failure, committed or not, rolls the cursor
// back to the starting position.  Alternatives that share a syntactic
// prefix with a later alternative must run under Attempt; alternatives
// whose first byte already disambiguates them need not pay for it.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		v, rest, err := p(c)
		if err != nil {
			var zero T
			return zero, c, err
		}
		return v, rest, nil
	}
}

// alt tries each alternative in order and returns the first success.  A
// committed failure propagates immediately; if every alternative fails
// without committing, the last failure is reported at the start position.
func alt[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		var lastErr error
		for _, p := range ps {
			v, rest, err := p(c)
			if err == nil {
				return v, rest, nil
			}
			if rest.pos != c.pos {
				return zero, rest, err
			}
			lastErr = err
		}
		return zero, c, lastErr
	}
}

// mapParser applies f to the result of p.
func mapParser[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c Cursor) (B, Cursor, error) {
		v, rest, err := p(c)
		if err != nil {
			var zero B
			return zero, rest, err
		}
		return f(v), rest, nil
	}
}

// keyword matches s exactly, consuming all of it or nothing.
func keyword(s string) Parser[string] {
	return func(c Cursor) (string, Cursor, error) {
		if strings.HasPrefix(c.Rest(), s) {
			return s, c.advance(len(s)), nil
		}
		return "", c, c.errorf("expecting %q", s)
	}
}

// expectByte consumes b or fails without consuming.
func expectByte(c Cursor, b byte) (Cursor, error) {
	if ch, ok := c.peek(); ok && ch == b {
		return c.advance(1), nil
	}
	return c, c.errorf("expecting '%c'", b)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipSpaces consumes any run of whitespace.
func skipSpaces(c Cursor) Cursor {
	for {
		ch, ok := c.peek()
		if !ok || !isSpace(ch) {
			return c
		}
		c = c.advance(1)
	}
}

// takeWhile consumes the maximal run of bytes satisfying pred, which may
// be empty.
func takeWhile(c Cursor, pred func(byte) bool) (string, Cursor) {
	start := c.pos
	for {
		ch, ok := c.peek()
		if !ok || !pred(ch) {
			break
		}
		c = c.advance(1)
	}
	return c.input[start:c.pos], c
}

// sepByComma parses zero or more elements separated by a comma with
// optional whitespace on either side of it.  A comma must be followed by
// another element, so trailing commas fail the sequence.
func sepByComma[T any](elem Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, error) {
		first, rest, err := elem(c)
		if err != nil {
			if rest.pos == c.pos {
				return nil, c, nil
			}
			return nil, rest, err
		}
		out := []T{first}
		cur := rest
		for {
			look := skipSpaces(cur)
			ch, ok := look.peek()
			if !ok || ch != ',' {
				return out, cur, nil
			}
			look = skipSpaces(look.advance(1))
			v, after, err := elem(look)
			if err != nil {
				return nil, after, err
			}
			out = append(out, v)
			cur = after
		}
	}
}

// delimited consumes open, runs inner, then consumes close.  A missing
// close delimiter fails the whole construct.
func delimited[T any](open, close byte, inner Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		cur, err := expectByte(c, open)
		if err != nil {
			return zero, c, err
		}
		v, cur, err := inner(cur)
		if err != nil {
			return zero, cur, err
		}
		after, err := expectByte(cur, close)
		if err != nil {
			return zero, cur, err
		}
		return v, after, nil
	}
}

// quoted runs inner between double quotes.
func quoted[T any](inner Parser[T]) Parser[T] {
	return delimited('"', '"', inner)
}
