// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import (
	"math/big"
	"testing"
)

func TestAttemptRollsBack(t *testing.T) {
	// String commits on the opening quote; an unterminated literal is a
	// committed failure unless wrapped in Attempt.
	c := NewCursor(`"abc`)
	_, rest, err := String(c)
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
	if rest.Pos() == 0 {
		t.Errorf("String should have committed input, cursor still at 0")
	}

	_, rest, err = Attempt[string](String)(c)
	if err == nil {
		t.Fatal("expected unterminated string error")
	}
	if rest.Pos() != 0 {
		t.Errorf("Attempt should restore the cursor, got pos %d", rest.Pos())
	}
}

func TestAltCommitDiscipline(t *testing.T) {
	// The first alternative fails after consuming the opening quote, so
	// the second must not run even though it would match.
	p := alt(
		Parser[string](String),
		mapParser(keyword(`"abc`), func(s string) string { return s }),
	)
	_, _, err := p(NewCursor(`"abc`))
	if err == nil {
		t.Fatal("committed failure must propagate past later alternatives")
	}

	// Keyword matching is atomic, so a non-matching keyword lets the next
	// alternative run.
	p = alt(keyword("true"), keyword("false"))
	v, rest, err := p(NewCursor("false!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "false" || rest.Rest() != "!" {
		t.Errorf("got %q with rest %q", v, rest.Rest())
	}
}

func TestSepByComma(t *testing.T) {
	intsOf := func(vals []*big.Int) []int64 {
		out := make([]int64, len(vals))
		for i, v := range vals {
			out[i] = v.Int64()
		}
		return out
	}
	p := sepByComma(Parser[*big.Int](Integer))

	cases := []struct {
		label string
		input string
		want  []int64
		rest  string
	}{
		{"empty", "", nil, ""},
		{"single", "7", []int64{7}, ""},
		{"plain", "1,2,3", []int64{1, 2, 3}, ""},
		{"padded commas", "1 , 2 ,3", []int64{1, 2, 3}, ""},
		{"stops before delimiter", "1,2]", []int64{1, 2}, "]"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			vals, rest, err := p(NewCursor(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := intsOf(vals)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("element %d: got %d, want %d", i, got[i], tc.want[i])
				}
			}
			if rest.Rest() != tc.rest {
				t.Errorf("rest: got %q, want %q", rest.Rest(), tc.rest)
			}
		})
	}

	if _, _, err := p(NewCursor("1,")); err == nil {
		t.Error("trailing comma should fail the sequence")
	}
}

func TestDelimited(t *testing.T) {
	p := delimited('(', ')', Parser[*big.Int](Integer))
	v, rest, err := p(NewCursor("(42)x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int64() != 42 || rest.Rest() != "x" {
		t.Errorf("got %v with rest %q", v, rest.Rest())
	}
	if _, _, err := p(NewCursor("(42")); err == nil {
		t.Error("missing close delimiter should fail")
	}
	if _, _, err := p(NewCursor("42)")); err == nil {
		t.Error("missing open delimiter should fail")
	}
}

func TestSkipSpaces(t *testing.T) {
	c := skipSpaces(NewCursor(" \t\r\n x"))
	if c.Rest() != "x" {
		t.Errorf("got %q", c.Rest())
	}
}
