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

/*
Package decint implements arbitrary-precision signed decimal integers.

An Int stores a sign and a vector of decimal digits, least significant
first. Addition, subtraction and multiplication are exact and never fail;
the magnitude grows as needed. There is no division, rounding or
precision.

Values are built from native integers or from strings:

	a := decint.New(-31642)
	b, err := decint.NewFromString("295712491461964816498164981")

Strings follow the grammar [+-]? ( '0' | [1-9][0-9]* ). Anything else is
rejected with an error whose cause is a *ParseError carrying one of the
kinds EmptyInput, LeadingZeros or NonDigitCharacter. A failed SetString
leaves its receiver unchanged.

Arithmetic follows math/big: the receiver is set to the result and
returned, so both chained and in-place forms read naturally:

	z := new(decint.Int).Mul(a, b)
	z.Add(z, a) // z += a

Package-level Add, Sub and Mul return a fresh Int instead.

The zero value for an Int represents 0. An Int is not safe for concurrent
mutation; distinct Ints share no state.
*/
package decint
