// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package ejson

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// maxDecimalExponent bounds the exponent of a scientific literal.  The
// arithmetic context is sized from it, so literals inside the bound are
// assembled exactly.
const maxDecimalExponent = 4096

// Decimal parses an arbitrary-precision decimal literal.  The plain form,
// a single run of digits with a sign and a fractional point, is tried
// first under full rollback; the scientific form with a mandatory exponent
// is the fallback.  A bare digit run is not a decimal, so "1" is left for
// the integer parser while "1.0" and "1e-style" forms are claimed here.
func Decimal(c Cursor) (*apd.Decimal, Cursor, error) {
	if d, rest, err := Attempt[*apd.Decimal](plainDecimal)(c); err == nil {
		return d, rest, nil
	}
	return scientificParser(c)
}

func isPlainDecimalByte(b byte) bool {
	return isDigit(b) || b == '-' || b == '.'
}

// plainDecimal scans the maximal run of digits, '-' and '.' and interprets
// the run wholesale as one signed decimal.  Runs without a fractional
// point belong to the integer grammar, and runs followed by an exponent
// marker belong to the scientific form, so both are rejected here.
func plainDecimal(c Cursor) (*apd.Decimal, Cursor, error) {
	run, rest := takeWhile(c, isPlainDecimalByte)
	if run == "" {
		return nil, c, c.errorf("expecting decimal")
	}
	if !strings.Contains(run, ".") {
		return nil, rest, c.errorf("expecting '.' in decimal %q", run)
	}
	if ch, ok := rest.peek(); ok && (ch == 'e' || ch == 'E') {
		return nil, rest, c.errorf("decimal %q carries an exponent", run)
	}
	d, _, err := new(apd.Decimal).SetString(run)
	if err != nil {
		return nil, rest, c.errorf("invalid decimal %q", run)
	}
	return d, rest, nil
}

var scientificParser = signed[*apd.Decimal](unsignedScientific, func(d *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	out.Neg(d)
	return out
})

// unsignedScientific parses digits '.' digits* ('e'|'E') integer and
// assembles (integer-part + fractional-part) × 10^exponent.
func unsignedScientific(c Cursor) (*apd.Decimal, Cursor, error) {
	intRun, cur := takeWhile(c, isDigit)
	if intRun == "" {
		return nil, c, c.errorf("expecting digit")
	}
	cur, err := expectByte(cur, '.')
	if err != nil {
		return nil, cur, err
	}
	fracRun, cur := takeWhile(cur, isDigit)
	ch, ok := cur.peek()
	if !ok || (ch != 'e' && ch != 'E') {
		return nil, cur, cur.errorf("expecting exponent")
	}
	expStart := cur.advance(1)
	expInt, cur, err := Integer(expStart)
	if err != nil {
		return nil, cur, err
	}
	if !expInt.IsInt64() || expInt.Int64() > maxDecimalExponent || expInt.Int64() < -maxDecimalExponent {
		return nil, cur, expStart.errorf("exponent %s out of range", expInt)
	}
	exp := int(expInt.Int64())

	// Every operation below divides or multiplies by a power of ten, so a
	// context wide enough for all the digits keeps the result exact.
	prec := len(intRun) + len(fracRun) + abs(exp) + 8
	ctx := apd.BaseContext.WithPrecision(uint32(prec))

	intPart, _, err := new(apd.Decimal).SetString(intRun)
	if err != nil {
		return nil, cur, c.errorf("invalid mantissa %q", intRun)
	}
	mant := new(apd.Decimal)
	ctx.Add(mant, intPart, fracPart(ctx, fracRun))
	return applyExponent(ctx, mant, exp), cur, nil
}

// fracPart folds the fractional digits right to left as digit/10 + acc/10,
// building the magnitude without ever looking at the digit count.
func fracPart(ctx *apd.Context, digits string) *apd.Decimal {
	acc := new(apd.Decimal)
	ten := apd.New(10, 0)
	for i := len(digits) - 1; i >= 0; i-- {
		d := apd.New(int64(digits[i]-'0'), 0)
		ctx.Quo(d, d, ten)
		ctx.Quo(acc, acc, ten)
		ctx.Add(acc, acc, d)
	}
	return acc
}

// applyExponent scales mant by 10^exp.  Exponent zero is the identity for
// any mantissa including zero, so the undefined zero-power case never
// arises.
func applyExponent(ctx *apd.Context, mant *apd.Decimal, exp int) *apd.Decimal {
	if exp == 0 {
		return mant
	}
	p := powTen(ctx, abs(exp))
	out := new(apd.Decimal)
	if exp > 0 {
		ctx.Mul(out, mant, p)
	} else {
		ctx.Quo(out, mant, p)
	}
	return out
}

// powTen raises ten to a non-negative power by repeated multiplication;
// n == 0 yields one.
func powTen(ctx *apd.Context, n int) *apd.Decimal {
	out := apd.New(1, 0)
	ten := apd.New(10, 0)
	for ; n > 0; n-- {
		ctx.Mul(out, out, ten)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
