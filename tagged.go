// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

// taggedLiteral parses TAG("payload"): the exact tag text immediately
// followed by an opening paren, a double-quoted payload, and a closing
// paren, with no whitespace anywhere in between.  The tag match is atomic,
// so a non-matching tag never commits input; after the tag, failures
// commit.
func taggedLiteral[T any](tag string, payload Parser[T]) Parser[T] {
	tagKeyword := keyword(tag)
	body := delimited('(', ')', quoted(payload))
	return func(c Cursor) (T, Cursor, error) {
		_, cur, err := tagKeyword(c)
		if err != nil {
			var zero T
			return zero, c, err
		}
		return body(cur)
	}
}

// quoteFree consumes everything up to the next double quote.  Interval and
// object id payloads are opaque, so this is all the structure they get.
func quoteFree(c Cursor) (string, Cursor, error) {
	run, rest := takeWhile(c, func(b byte) bool { return b != '"' })
	return run, rest, nil
}

var (
	timestampLiteral = taggedLiteral[Timestamp]("TIMESTAMP", TimestampValue)
	timeLiteral      = taggedLiteral[Time]("TIME", TimeValue)
	dateLiteral      = taggedLiteral[Date]("DATE", DateValue)
	intervalLiteral  = taggedLiteral[string]("INTERVAL", quoteFree)
	objectIDLiteral  = taggedLiteral[string]("OID", quoteFree)
)

// TimestampLiteral parses TIMESTAMP("<date>T<time>Z").
func TimestampLiteral(c Cursor) (Timestamp, Cursor, error) {
	return timestampLiteral(c)
}

// TimeLiteral parses TIME("HH:MM:SS").
func TimeLiteral(c Cursor) (Time, Cursor, error) {
	return timeLiteral(c)
}

// DateLiteral parses DATE("YYYY-MM-DD").
func DateLiteral(c Cursor) (Date, Cursor, error) {
	return dateLiteral(c)
}

// IntervalLiteral parses INTERVAL("...") with an opaque payload.
func IntervalLiteral(c Cursor) (string, Cursor, error) {
	return intervalLiteral(c)
}

// ObjectIDLiteral parses OID("...") with an opaque payload.
func ObjectIDLiteral(c Cursor) (string, Cursor, error) {
	return objectIDLiteral(c)
}
