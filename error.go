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
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why a string could not be parsed as an Int.
type ErrorKind int

const (
	// EmptyInput means the string, or the digit run after its sign, was empty.
	EmptyInput ErrorKind = iota + 1
	// LeadingZeros means a multi-character digit run began with '0'.
	LeadingZeros
	// NonDigitCharacter means a character outside 0-9 followed the sign.
	NonDigitCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case LeadingZeros:
		return "leading zeros"
	case NonDigitCharacter:
		return "non-digit character"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned, wrapped with a stack trace, when a string is not a
// valid decimal integer. A new ParseError is created for every failure.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyInput:
		if e.Input == "" {
			return "the input string is empty"
		}
		return fmt.Sprintf("%q has no digits after its sign", e.Input)
	case LeadingZeros:
		return fmt.Sprintf("%q: the input number cannot have leading zeros", e.Input)
	case NonDigitCharacter:
		return fmt.Sprintf("%q: the input string contains non digit characters", e.Input)
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Kind)
}

func newParseError(kind ErrorKind, input string) error {
	return errors.WithStack(&ParseError{Kind: kind, Input: input})
}

// KindOf returns the ErrorKind of err if its cause is a *ParseError, and 0
// otherwise.
func KindOf(err error) ErrorKind {
	if pe, ok := errors.Cause(err).(*ParseError); ok {
		return pe.Kind
	}
	return 0
}

// IsKind reports whether err was caused by a parse failure of kind k.
func IsKind(err error, k ErrorKind) bool {
	return err != nil && KindOf(err) == k
}

// ErrInt performs operations on Ints and collects errors during
// operations. If an error is already set, the operation is skipped. Designed to
// be used for many operations in a row, with a single error check at the end.
// Only parsing can fail; arithmetic is skipped after a failure so that the
// values involved keep their last good state.
type ErrInt struct {
	Err error
}

// SetString performs z.SetString(s).
func (e *ErrInt) SetString(z *Int, s string) {
	if e.Err != nil {
		return
	}
	_, e.Err = z.SetString(s)
}

// Parse returns NewFromString(s). It returns a new zero Int if Err is set or
// the parse fails.
func (e *ErrInt) Parse(s string) *Int {
	if e.Err != nil {
		return new(Int)
	}
	z, err := NewFromString(s)
	if err != nil {
		e.Err = err
		return new(Int)
	}
	return z
}

// Add performs z.Add(x, y).
func (e *ErrInt) Add(z, x, y *Int) {
	if e.Err != nil {
		return
	}
	z.Add(x, y)
}

// Sub performs z.Sub(x, y).
func (e *ErrInt) Sub(z, x, y *Int) {
	if e.Err != nil {
		return
	}
	z.Sub(x, y)
}

// Mul performs z.Mul(x, y).
func (e *ErrInt) Mul(z, x, y *Int) {
	if e.Err != nil {
		return
	}
	z.Mul(x, y)
}

// Neg performs z.Neg(x).
func (e *ErrInt) Neg(z, x *Int) {
	if e.Err != nil {
		return
	}
	z.Neg(x)
}

// Cmp returns 0 if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrInt) Cmp(x, y *Int) int {
	if e.Err != nil {
		return 0
	}
	return x.Cmp(y)
}
