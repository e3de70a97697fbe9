// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decint

import (
	"math"

	"github.com/cockroachdb/decint/int10"
)

// Sign is the sign of an Int. Zero is a sign of its own so that a value
// with no magnitude is never confused with a signed one.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return "Sign(?)"
}

func (s Sign) neg() Sign {
	return -s
}

// Int is an arbitrary-precision signed decimal integer. Its value is:
//
//     sign * digits
//
// where digits holds one decimal digit per element, least significant first.
// The only representation of 0 is sign Zero with digits [0].
//
// The zero value for an Int represents 0 and is ready to use. An Int owns its
// digits; Set and every arithmetic result copy digits rather than share them.
type Int struct {
	sign   Sign
	digits int10.Int
}

// canonicalZero is the digit vector of 0. It is never handed out or written.
var canonicalZero = int10.Int{0}

// New returns a new Int with value x.
func New(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	switch {
	case x == 0:
		return z.setZero()
	case x == math.MinInt64:
		z.digits = append(z.digits[:0], int10.NewInt(uint64(math.MaxInt64)+1)...)
		z.sign = Negative
	case x < 0:
		z.digits = append(z.digits[:0], int10.NewInt(uint64(-x))...)
		z.sign = Negative
	default:
		z.digits = append(z.digits[:0], int10.NewInt(uint64(x))...)
		z.sign = Positive
	}
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	if x == 0 {
		return z.setZero()
	}
	z.digits = append(z.digits[:0], int10.NewInt(x)...)
	z.sign = Positive
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	if x.sign == Zero {
		return z.setZero()
	}
	z.digits.Set(x.digits)
	z.sign = x.sign
	return z
}

func (z *Int) setZero() *Int {
	z.sign = Zero
	z.digits = append(z.digits[:0], 0)
	return z
}

// mag returns the magnitude of x. The zero value Int has no digits yet, so
// it is read as the canonical [0].
func (x *Int) mag() int10.Int {
	if x.sign == Zero {
		return canonicalZero
	}
	return x.digits
}

// canonicalize restores the sign/digits invariant after the magnitude has
// been replaced: a magnitude of 0 always carries sign Zero.
func (z *Int) canonicalize(sign Sign) *Int {
	if z.digits.Zero() {
		return z.setZero()
	}
	z.sign = sign
	return z
}

// Sign returns the sign of x.
func (x *Int) Sign() Sign {
	return x.sign
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.sign == Zero
}

// NumDigits returns the number of decimal digits of x. 0 has one digit.
func (x *Int) NumDigits() int {
	return len(x.mag())
}

// Digits returns a copy of the decimal digits of |x|, least significant
// first. The result is never empty.
func (x *Int) Digits() int10.Int {
	return x.mag().Clone()
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.sign = z.sign.neg()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.sign == Negative {
		z.sign = Positive
	}
	return z
}

// negated returns a read-only view of -x sharing x's digits. It must not be
// mutated or retained.
func (x *Int) negated() *Int {
	return &Int{sign: x.sign.neg(), digits: x.digits}
}
