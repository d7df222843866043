// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import "fmt"

// excerptLen bounds the amount of trailing input quoted in error messages.
const excerptLen = 20

// ParseError records EJSON parsing errors.  It carries the input offset at
// which the failure was detected and a small excerpt of the input from that
// point.
type ParseError struct {
	Offset int
	Msg    string
	After  string
}

func (pe *ParseError) Error() string {
	if pe.After == "" {
		return fmt.Sprintf("parse error at offset %d: %s", pe.Offset, pe.Msg)
	}
	return fmt.Sprintf("parse error at offset %d: %s, followed by %q", pe.Offset, pe.Msg, pe.After)
}

// errorf builds a *ParseError located at the cursor position.
func (c Cursor) errorf(format string, args ...interface{}) error {
	after := c.Rest()
	if len(after) > excerptLen {
		after = after[:excerptLen] + "..."
	}
	return &ParseError{
		Offset: c.pos,
		Msg:    fmt.Sprintf(format, args...),
		After:  after,
	}
}
