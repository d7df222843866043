// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind identifies the variant held by a Layer.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindDecimal
	KindInteger
	KindString
	KindTimestamp
	KindTime
	KindDate
	KindInterval
	KindObjectID
	KindArray
	KindMap
)

var kindNames = [...]string{
	KindNull:      "null",
	KindBool:      "bool",
	KindDecimal:   "decimal",
	KindInteger:   "integer",
	KindString:    "string",
	KindTimestamp: "timestamp",
	KindTime:      "time",
	KindDate:      "date",
	KindInterval:  "interval",
	KindObjectID:  "objectid",
	KindArray:     "array",
	KindMap:       "map",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Pair is one key/value entry of an EJSON map.  Keys are full EJSON
// values, not just strings.
type Pair[T any] struct {
	Key   T
	Value T
}

// Layer is one level of an EJSON tree: a tagged variant whose child slots
// (array elements and map pairs) hold the caller-chosen type T.  Exactly
// the field selected by Kind is meaningful; Str carries the payload for
// KindString, KindInterval and KindObjectID.
//
// An EJSON map is an ordered pair list, never a Go map: duplicate keys and
// input order are preserved.
type Layer[T any] struct {
	Kind      Kind
	Bool      bool
	Int       *big.Int
	Dec       *apd.Decimal
	Str       string
	Timestamp Timestamp
	Time      Time
	Date      Date
	Elems     []T
	Pairs     []Pair[T]
}

// ObjectID interprets an object id payload as a MongoDB-style object id.
// Parsing keeps the payload opaque; this conversion is for callers that
// know their ids are 24-character hex.
func (l Layer[T]) ObjectID() (primitive.ObjectID, error) {
	if l.Kind != KindObjectID {
		return primitive.NilObjectID, fmt.Errorf("ejson: %s value is not an object id", l.Kind)
	}
	return primitive.ObjectIDFromHex(l.Str)
}

// Array parses a bracket-delimited, comma-separated sequence of elements.
// The element parser is supplied by the caller; an empty array is valid.
func Array[T any](elem Parser[T]) Parser[[]T] {
	return delimited('[', ']', sepByComma(elem))
}

// Map parses a brace-delimited, comma-separated sequence of key:value
// assignments where both key and value use the caller-supplied element
// parser.  The colon may be padded with whitespace.  The result preserves
// input order and duplicate keys.
func Map[T any](elem Parser[T]) Parser[[]Pair[T]] {
	return delimited('{', '}', sepByComma(pairOf(elem)))
}

func pairOf[T any](elem Parser[T]) Parser[Pair[T]] {
	return func(c Cursor) (Pair[T], Cursor, error) {
		var zero Pair[T]
		key, cur, err := elem(c)
		if err != nil {
			return zero, cur, err
		}
		after, err := expectByte(skipSpaces(cur), ':')
		if err != nil {
			return zero, cur, err
		}
		val, after, err := elem(skipSpaces(after))
		if err != nil {
			return zero, after, err
		}
		return Pair[T]{Key: key, Value: val}, after, nil
	}
}

// OneLayer builds the parser for one layer of an EJSON tree.  It tries
// every alternative in a fixed priority order; Decimal runs under Attempt
// because its grammar shares a prefix with Integer's, and whether a digit
// run is a decimal can only be known after scanning ahead for a '.' or an
// exponent.  The remaining alternatives are disambiguated by their first
// token and fail without consuming, so they need no rollback marker.
//
// elem parses one nested child value.  OneLayer never recurses into
// children itself; the caller supplies its own fixpoint.
func OneLayer[T any](elem Parser[T]) Parser[Layer[T]] {
	layers := alt(
		mapParser(Parser[struct{}](Null), func(struct{}) Layer[T] {
			return Layer[T]{Kind: KindNull}
		}),
		mapParser(Parser[bool](Bool), func(b bool) Layer[T] {
			return Layer[T]{Kind: KindBool, Bool: b}
		}),
		Attempt(mapParser(Parser[*apd.Decimal](Decimal), func(d *apd.Decimal) Layer[T] {
			return Layer[T]{Kind: KindDecimal, Dec: d}
		})),
		mapParser(Parser[*big.Int](Integer), func(n *big.Int) Layer[T] {
			return Layer[T]{Kind: KindInteger, Int: n}
		}),
		mapParser(Parser[string](String), func(s string) Layer[T] {
			return Layer[T]{Kind: KindString, Str: s}
		}),
		mapParser(Parser[Timestamp](TimestampLiteral), func(ts Timestamp) Layer[T] {
			return Layer[T]{Kind: KindTimestamp, Timestamp: ts}
		}),
		mapParser(Parser[Time](TimeLiteral), func(t Time) Layer[T] {
			return Layer[T]{Kind: KindTime, Time: t}
		}),
		mapParser(Parser[Date](DateLiteral), func(d Date) Layer[T] {
			return Layer[T]{Kind: KindDate, Date: d}
		}),
		mapParser(Parser[string](IntervalLiteral), func(s string) Layer[T] {
			return Layer[T]{Kind: KindInterval, Str: s}
		}),
		mapParser(Parser[string](ObjectIDLiteral), func(s string) Layer[T] {
			return Layer[T]{Kind: KindObjectID, Str: s}
		}),
		mapParser(Array(elem), func(es []T) Layer[T] {
			return Layer[T]{Kind: KindArray, Elems: es}
		}),
		mapParser(Map(elem), func(ps []Pair[T]) Layer[T] {
			return Layer[T]{Kind: KindMap, Pairs: ps}
		}),
	)
	return func(c Cursor) (Layer[T], Cursor, error) {
		l, rest, err := layers(c)
		if err != nil && rest.pos == c.pos {
			return l, rest, c.errorf("expecting EJSON value")
		}
		return l, rest, err
	}
}
