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
	"math/big"
	"math/rand"
	"testing"
)

func TestBig(t *testing.T) {
	for i := 0; i < 1e3; i++ {
		x := getBigString(true)
		y := getBigString(true)
		t.Run(fmt.Sprintf("%s, %s", x, y), func(t *testing.T) {
			t.Parallel()
			testBig(t, x, y)
		})
	}
}

// getBigString returns a random valid decimal integer string of up to 99
// digits. When signed is set the result may carry a '+' or '-' prefix.
func getBigString(signed bool) string {
	var b []byte
	if signed {
		switch rand.Intn(3) {
		case 0:
			b = append(b, '-')
		case 1:
			b = append(b, '+')
		}
	}
	n := rand.Intn(100)
	if n == 0 {
		return string(append(b, '0'))
	}
	b = append(b, '1'+byte(rand.Intn(9)))
	for j := 1; j < n; j++ {
		b = append(b, '0'+byte(rand.Intn(10)))
	}
	return string(b)
}

func testBig(t *testing.T, x, y string) {
	var bx, by, bz big.Int
	if _, ok := bx.SetString(x, 10); !ok {
		t.Fatal(x)
	}
	if _, ok := by.SetString(y, 10); !ok {
		t.Fatal(y)
	}
	ix := newInt(t, x)
	iy := newInt(t, y)
	var iz Int

	ops := []string{
		"+",
		"-",
		"*",
	}
	bfns := []func(*big.Int, *big.Int) *big.Int{
		bz.Add,
		bz.Sub,
		bz.Mul,
	}
	ifns := []func(*Int, *Int) *Int{
		iz.Add,
		iz.Sub,
		iz.Mul,
	}

	for i, bfn := range bfns {
		t.Run(ops[i], func(t *testing.T) {
			bfn(&bx, &by)
			ifns[i](ix, iy)
			iz.V(t)
			bs := bz.String()
			is := iz.String()
			if bs != is {
				t.Fatalf("got %s, want %s", is, bs)
			}
			if iz.Big().Cmp(&bz) != 0 {
				t.Fatalf("Big: got %s, want %s", iz.Big(), bs)
			}
		})
	}
	if c, bc := ix.Cmp(iy), bx.Cmp(&by); c != bc {
		t.Fatalf("cmp: got %d, want %d", c, bc)
	}
	if c, bc := ix.CmpAbs(iy), bx.CmpAbs(&by); c != bc {
		t.Fatalf("cmpabs: got %d, want %d", c, bc)
	}
}
