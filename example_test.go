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

package decint_test

import (
	"fmt"

	"github.com/cockroachdb/decint"
)

func ExampleNewFromString() {
	for _, s := range []string{
		"295712491461964816498164981",
		"+572907418046716498164891",
		"13816361.3131",
		"00000313131",
		"",
	} {
		x, err := decint.NewFromString(s)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(x)
	}
	// Output: 295712491461964816498164981
	// 572907418046716498164891
	// Error: "13816361.3131": the input string contains non digit characters
	// Error: "00000313131": the input number cannot have leading zeros
	// Error: the input string is empty
}

func ExampleInt_SetString() {
	a := decint.New(123321)
	if _, err := a.SetString("AB131351"); err != nil {
		fmt.Println("Error:", decint.KindOf(err))
	}
	// The failed set leaves a unchanged.
	fmt.Println(a)
	// Output: Error: non-digit character
	// 123321
}

func ExampleInt_Add() {
	a := decint.MustParse("12345678910111213141516")
	b := decint.MustParse("-161718192021222324252627")
	fmt.Println(decint.Add(a, b))
	a.Add(a, b) // a += b
	fmt.Println(a)
	// Output: -149372513111111111111111
	// -149372513111111111111111
}

func ExampleInt_Sub() {
	a := decint.MustParse("10000000000000000000000")
	fmt.Println(decint.Sub(a, decint.New(1)))
	fmt.Println(decint.Sub(new(decint.Int).Neg(a), a))
	// Output: 9999999999999999999999
	// -20000000000000000000000
}

func ExampleInt_Mul() {
	a := decint.MustParse("592491734917987491")
	b := decint.MustParse("999999988888888888")
	fmt.Println(decint.Mul(a, b))
	fmt.Println(decint.Mul(a.Neg(a), b))
	// Output: 592491728334745991384590780072900008
	// -592491728334745991384590780072900008
}

func ExampleInt_Cmp() {
	a := decint.New(-5)
	b := decint.New(3)
	fmt.Println(a.Cmp(b), a.Less(b), a.GreaterEq(b))
	// Output: -1 true false
}

func ExampleErrInt() {
	var ed decint.ErrInt
	d := ed.Parse("10")
	fmt.Printf("%s, err: %v\n", d, ed.Err)
	ed.Add(d, d, ed.Parse("20"))
	fmt.Printf("%s, err: %v\n", d, ed.Err)
	ed.Mul(d, d, ed.Parse("2.5"))
	fmt.Printf("%s, err: %v\n", d, ed.Err)
	ed.Sub(d, d, decint.New(1)) // attempt to subtract 1
	// The subtraction doesn't occur and doesn't change the error.
	fmt.Printf("%s, err: %v\n", d, ed.Err)
	// Output: 10, err: <nil>
	// 30, err: <nil>
	// 30, err: "2.5": the input string contains non digit characters
	// 30, err: "2.5": the input string contains non digit characters
}
