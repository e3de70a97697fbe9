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

// Add sets z to the sum x+y and returns z. z may alias x or y.
func (z *Int) Add(x, y *Int) *Int {
	if z == y {
		y = new(Int).Set(y)
	}
	return z.Set(x).add(y)
}

// Sub sets z to the difference x-y and returns z. z may alias x or y.
func (z *Int) Sub(x, y *Int) *Int {
	if z == y {
		y = new(Int).Set(y)
	}
	return z.Set(x).sub(y)
}

// Mul sets z to the product x*y and returns z. z may alias x or y.
func (z *Int) Mul(x, y *Int) *Int {
	if x.sign == Zero || y.sign == Zero {
		return z.setZero()
	}
	sign := Positive
	if x.sign != y.sign {
		sign = Negative
	}
	z.digits.Mul(x.digits, y.digits)
	return z.canonicalize(sign)
}

// Add returns a new Int set to x+y.
func Add(x, y *Int) *Int {
	return new(Int).Add(x, y)
}

// Sub returns a new Int set to x-y.
func Sub(x, y *Int) *Int {
	return new(Int).Sub(x, y)
}

// Mul returns a new Int set to x*y.
func Mul(x, y *Int) *Int {
	return new(Int).Mul(x, y)
}

// add performs z += y. Opposite signs are handed to sub so borrow handling
// lives in one place.
func (z *Int) add(y *Int) *Int {
	switch {
	case y.sign == Zero:
		return z
	case z.sign == Zero:
		return z.Set(y)
	case z.sign == y.sign:
		z.digits.Add(z.digits, y.digits)
		return z
	default:
		return z.sub(y.negated())
	}
}

// sub performs z -= y.
func (z *Int) sub(y *Int) *Int {
	switch {
	case y.sign == Zero:
		return z
	case z.sign == Zero:
		return z.Neg(y)
	case z.sign != y.sign:
		return z.add(y.negated())
	}
	switch z.CmpAbs(y) {
	case 0:
		return z.setZero()
	case 1:
		z.digits.Sub(z.digits, y.digits)
		return z.canonicalize(z.sign)
	default:
		z.digits.Sub(y.digits, z.digits)
		return z.canonicalize(z.sign.neg())
	}
}
