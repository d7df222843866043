// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import "testing"

func TestDigit(t *testing.T) {
	v, rest, err := Digit(NewCursor("5x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 || rest.Rest() != "x" {
		t.Errorf("got %d with rest %q", v, rest.Rest())
	}
	if _, _, err := Digit(NewCursor("x")); err == nil {
		t.Error("non-digit should fail")
	}
	if _, _, err := Digit(NewCursor("")); err == nil {
		t.Error("EOF should fail")
	}
}

func TestDigitField(t *testing.T) {
	cases := []struct {
		label string
		max   int
		input string
		want  int
		rest  string
	}{
		{"two digits greedy", 2, "123", 12, "3"},
		{"two digits short", 2, "7-", 7, "-"},
		{"four digits greedy", 4, "12345", 1234, "5"},
		{"four digits short", 4, "86T", 86, "T"},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			v, rest, err := digitField(tc.max)(NewCursor(tc.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tc.want || rest.Rest() != tc.rest {
				t.Errorf("got %d with rest %q, want %d with rest %q", v, rest.Rest(), tc.want, tc.rest)
			}
		})
	}
	if _, _, err := digitField(2)(NewCursor("x")); err == nil {
		t.Error("zero digits should fail")
	}
}

func TestSignHandling(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"12", 12},
		{"-12", -12},
		{"- 12", -12},
		{"+12", 12},
		{"+ 12", 12},
	}
	for _, tc := range cases {
		v, _, err := Integer(NewCursor(tc.input))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if v.Int64() != tc.want {
			t.Errorf("%q: got %v, want %d", tc.input, v, tc.want)
		}
	}
	if _, _, err := Integer(NewCursor("+x")); err == nil {
		t.Error("sign without digits should fail")
	}
	if _, _, err := Integer(NewCursor("-")); err == nil {
		t.Error("bare minus should fail")
	}
}
