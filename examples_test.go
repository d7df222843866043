// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson_test

import (
	"fmt"

	ejson "github.com/kRITZCREEK/ejson-go"
)

func ExampleParse() {
	v, err := ejson.Parse(`{"name": "ada", "tags": ["x", "y"]}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Kind, len(v.Pairs))
	for _, p := range v.Pairs {
		fmt.Println(p.Key.Str, p.Value.Kind)
	}
	// Output:
	// map 2
	// name string
	// tags array
}

func ExampleParse_taggedLiterals() {
	v, err := ejson.Parse(`TIMESTAMP("2021-01-02T03:04:05Z")`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Kind)
	fmt.Println(v.Timestamp)
	fmt.Println(v.Timestamp.Date, v.Timestamp.Time)
	// Output:
	// timestamp
	// 2021-01-02T03:04:05Z
	// 2021-01-02 03:04:05
}

func ExampleParse_invalid() {
	_, err := ejson.Parse(`{"a": }`)
	fmt.Println(err)
	// Output:
	// parse error at offset 6: expecting EJSON value, followed by "}"
}
