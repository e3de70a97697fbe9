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

	"github.com/cockroachdb/decint/int10"
)

// NewFromString returns a new Int with the value of s. s must match:
//
//     [+-]? ( '0' | [1-9][0-9]* )
//
// "+0" and "-0" are accepted and yield 0. On failure the returned error's
// cause is a *ParseError.
func NewFromString(s string) (*Int, error) {
	sign, digits, err := parse(s)
	if err != nil {
		return nil, err
	}
	return &Int{sign: sign, digits: digits}, nil
}

// MustParse is like NewFromString but panics if s cannot be parsed. It
// simplifies safe initialization of global variables holding Ints.
func MustParse(s string) *Int {
	z, err := NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// SetString sets z to the value of s and returns z. If s is not a valid
// decimal integer z is left unchanged and the error is returned.
func (z *Int) SetString(s string) (*Int, error) {
	sign, digits, err := parse(s)
	if err != nil {
		return z, err
	}
	z.sign = sign
	z.digits = digits
	return z, nil
}

// parse validates s completely before building the digit vector, so a
// failure never yields a partially filled value.
func parse(s string) (Sign, int10.Int, error) {
	if s == "" {
		return Zero, nil, newParseError(EmptyInput, s)
	}
	sign := Positive
	run := s
	switch s[0] {
	case '-':
		sign = Negative
		run = s[1:]
	case '+':
		run = s[1:]
	}
	if run == "" {
		return Zero, nil, newParseError(EmptyInput, s)
	}
	if run[0] == '0' {
		if len(run) > 1 {
			return Zero, nil, newParseError(LeadingZeros, s)
		}
		return Zero, int10.Int{0}, nil
	}
	for i := 0; i < len(run); i++ {
		if c := run[i]; c < '0' || c > '9' {
			return Zero, nil, newParseError(NonDigitCharacter, s)
		}
	}
	digits, ok := int10.NewIntString(run)
	if !ok {
		return Zero, nil, newParseError(NonDigitCharacter, s)
	}
	return sign, digits, nil
}
