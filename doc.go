// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package ejson is a recursive-descent parser for the EJSON text format.
// EJSON extends the core JSON data model with arbitrary-precision decimal
// numbers, unbounded signed integers, calendar dates, times of day, UTC
// timestamps, opaque time intervals, object identifiers, and maps that
// preserve key order and tolerate duplicate keys.  Only UTF-8 input is
// supported.
//
// # Grammar layering
//
// Every parser in this package is a pure function from a Cursor to a value
// and an advanced cursor.  The structural parsers (Array, Map, OneLayer)
// never parse nested children themselves: they take the child parser as an
// explicit argument, so the caller supplies the recursion and chooses the
// tree representation.  OneLayer yields exactly one Layer of the tree with
// child slots filled by that argument.
//
// Callers that just want an eager tree can use Parse, which closes the
// recursion over the concrete Value type.
//
// # Backtracking
//
// Alternatives are tried in a fixed order, and a failed alternative is only
// retried when it failed without consuming input.  Attempt marks the places
// where the grammar requires full rollback; most notably the decimal
// grammar, which overlaps the integer grammar and must be allowed to scan
// ahead for a '.' or exponent before the integer parser runs.
//
// # Extended literals
//
// Timestamps, times, dates, intervals and object ids use the tagged form
// NAME("payload"), for example TIMESTAMP("2021-01-02T03:04:05Z").  Date and
// time payloads are validated against the real calendar and clock, not just
// the syntax: TIMESTAMP("2021-02-30T00:00:00Z") is rejected.  Interval and
// object id payloads are opaque strings.
package ejson
