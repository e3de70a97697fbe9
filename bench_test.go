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
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// randDigits returns a random decimal string with exactly numDigits digits,
// negative when d is below zero.
func randDigits(d int) string {
	numDigits := d
	var buf bytes.Buffer
	if d < 0 {
		numDigits = -d
		buf.WriteByte('-')
	}
	buf.WriteByte('1' + byte(rand.Intn(9)))
	for j := 1; j < numDigits; j++ {
		buf.WriteByte('0' + byte(rand.Intn(10)))
	}
	return buf.String()
}

// runBenches benchmarks fn on random Ints for every combination of digit
// counts in xDigits and yDigits. A negative count produces negative numbers
// with that many digits.
func runBenches(b *testing.B, xDigits, yDigits []int, fn func(z, x, y *Int)) {
	for _, dx := range xDigits {
		for _, dy := range yDigits {
			xs := make([]*Int, 100)
			ys := make([]*Int, len(xs))
			for i := range xs {
				var err error
				if xs[i], err = NewFromString(randDigits(dx)); err != nil {
					b.Fatal(err)
				}
				if ys[i], err = NewFromString(randDigits(dy)); err != nil {
					b.Fatal(err)
				}
			}
			b.Run(fmt.Sprintf("X%d/Y%d", dx, dy), func(b *testing.B) {
				var z Int
				for i := 0; i < b.N; i++ {
					j := i % len(xs)
					fn(&z, xs[j], ys[j])
				}
			})
		}
	}
}

var benchDigits = []int{-100, -10, 1, 10, 100, 1000}

func BenchmarkAdd(b *testing.B) {
	runBenches(b, benchDigits, benchDigits, func(z, x, y *Int) { z.Add(x, y) })
}

func BenchmarkSub(b *testing.B) {
	runBenches(b, benchDigits, benchDigits, func(z, x, y *Int) { z.Sub(x, y) })
}

func BenchmarkMul(b *testing.B) {
	runBenches(b, benchDigits, []int{-10, 10, 100}, func(z, x, y *Int) { z.Mul(x, y) })
}

func BenchmarkSetString(b *testing.B) {
	for _, d := range []int{1, 20, 1000} {
		s := randDigits(d)
		b.Run(fmt.Sprintf("D%d", d), func(b *testing.B) {
			var z Int
			for i := 0; i < b.N; i++ {
				if _, err := z.SetString(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	x := MustParse(randDigits(-1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
