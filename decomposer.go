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
	"math/big"

	"github.com/pkg/errors"
)

// decomposer is the interface database drivers use to exchange decimal values
// without going through strings.
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

var _ decomposer = (*Int)(nil)

// Decompose returns the magnitude of x as a big-endian coefficient with an
// exponent of zero. Form is always 0 (finite). buf is used for the
// coefficient when it has enough capacity.
func (x *Int) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	var b big.Int
	if _, ok := b.SetString(x.mag().String(), 10); !ok {
		panic(errors.Errorf("decint: invalid digits %v", x.mag()))
	}
	n := (b.BitLen() + 7) / 8
	if cap(buf) >= n {
		coefficient = b.FillBytes(buf[:n])
	} else {
		coefficient = b.Bytes()
	}
	return 0, x.Sign() == Negative, coefficient, 0
}

var bigTen = big.NewInt(10)

// Compose sets z to the value described by the parts. Only finite values are
// accepted, and a negative exponent is only accepted when it drops trailing
// zeros. z is unchanged on error.
func (z *Int) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	switch form {
	case 0:
	case 1:
		return errors.New("decint: cannot compose infinite value")
	case 2:
		return errors.New("decint: cannot compose NaN")
	default:
		return errors.Errorf("decint: unknown form %d", form)
	}
	var b big.Int
	b.SetBytes(coefficient)
	if exponent > 0 {
		var p big.Int
		p.Exp(bigTen, big.NewInt(int64(exponent)), nil)
		b.Mul(&b, &p)
	} else if exponent < 0 {
		var p, r big.Int
		p.Exp(bigTen, big.NewInt(-int64(exponent)), nil)
		b.QuoRem(&b, &p, &r)
		if r.Sign() != 0 {
			return errors.Errorf("decint: exponent %d leaves a fractional part", exponent)
		}
	}
	if negative {
		b.Neg(&b)
	}
	z.SetBig(&b)
	return nil
}
