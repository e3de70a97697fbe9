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

// CmpAbs compares |x| and |y| and returns:
//
//   -1 if |x| <  |y|
//    0 if |x| == |y|
//   +1 if |x| >  |y|
//
func (x *Int) CmpAbs(y *Int) int {
	return x.mag().Cmp(y.mag())
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.sign == y.sign && x.mag().Equal(y.mag())
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool {
	if x.Equal(y) {
		return false
	}
	switch x.sign {
	case Negative:
		if y.sign == Negative {
			return x.CmpAbs(y) > 0
		}
		return true
	case Zero:
		return y.sign == Positive
	default:
		if y.sign == Positive {
			return x.CmpAbs(y) < 0
		}
		return false
	}
}

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool {
	return !x.Less(y) && !x.Equal(y)
}

// GreaterEq reports whether x >= y.
func (x *Int) GreaterEq(y *Int) bool {
	return !x.Less(y)
}

// LessEq reports whether x <= y.
func (x *Int) LessEq(y *Int) bool {
	return !x.Greater(y)
}

// Cmp compares x and y and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.Equal(y):
		return 0
	case x.Less(y):
		return -1
	}
	return 1
}
