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
	"math/big"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// Int64 returns x as an int64. An error is returned if x does not fit.
func (x *Int) Int64() (int64, error) {
	u, ok := x.mag().Uint64()
	if !ok {
		return 0, errors.Errorf("decint: %s overflows int64", x)
	}
	if x.sign == Negative {
		if u == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		v, err := safecast.Conv[int64](u)
		if err != nil {
			return 0, errors.Wrapf(err, "decint: %s overflows int64", x)
		}
		return -v, nil
	}
	v, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, errors.Wrapf(err, "decint: %s overflows int64", x)
	}
	return v, nil
}

// Uint64 returns x as a uint64. An error is returned if x is negative or
// does not fit.
func (x *Int) Uint64() (uint64, error) {
	if x.sign == Negative {
		return 0, errors.Errorf("decint: %s is negative", x)
	}
	u, ok := x.mag().Uint64()
	if !ok {
		return 0, errors.Errorf("decint: %s overflows uint64", x)
	}
	return u, nil
}

// NewFromBig returns a new Int set to b.
func NewFromBig(b *big.Int) *Int {
	return new(Int).SetBig(b)
}

// SetBig sets z to b and returns z.
func (z *Int) SetBig(b *big.Int) *Int {
	if _, err := z.SetString(b.String()); err != nil {
		// big.Int always renders a valid decimal integer.
		panic(err)
	}
	return z
}

// Big returns x as a new *big.Int.
func (x *Int) Big() *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic(errors.Errorf("decint: cannot convert %s", x))
	}
	return b
}
