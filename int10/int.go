// Package int10 implements unsigned, base-10, multi-precision magnitudes.
// It is the digit kernel underneath decint.Int and knows nothing about
// signs.
package int10

// Int represents an unsigned, base-10, multi-precision integer. Each index is
// a single base-10 digit, in reverse order as written. That is, [0] is the 1s
// digit, [1] 10s, [2] 100s, etc. A normalized Int has no high-order zero
// digits, and 0 is represented by the single digit [0].
type Int []Word

// Word is a single decimal digit in [0, 9].
type Word uint8

const base = 10

// zero returns a fresh canonical zero.
func zero() Int {
	return Int{0}
}

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	if x == 0 {
		return zero()
	}
	var arr [20]Word
	i := 0
	for ; x != 0; i++ {
		arr[i] = Word(x % base)
		x /= base
	}
	a := make(Int, i)
	copy(a, arr[:i])
	return a
}

// NewIntString makes a new Int with value s. s must be a non-empty run of
// characters 0-9. The second return value is false otherwise. Leading zeros
// in s are accepted and dropped.
func NewIntString(s string) (Int, bool) {
	if s == "" {
		return nil, false
	}
	x := make(Int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		x[len(x)-i-1] = Word(c - '0')
	}
	return x.norm(), true
}

// Set sets z to the value of x and returns z. z never shares x's backing
// array afterwards.
func (z *Int) Set(x Int) *Int {
	if len(x) == 0 {
		*z = append((*z)[:0], 0)
		return z
	}
	*z = append((*z)[:0], x...)
	return z
}

// Clone returns a copy of a with its own backing array.
func (a Int) Clone() Int {
	if len(a) == 0 {
		return zero()
	}
	c := make(Int, len(a))
	copy(c, a)
	return c
}

// Uint64 returns a as a uint64. The second return value is false if a does
// not fit.
func (a Int) Uint64() (uint64, bool) {
	if len(a) > 20 {
		return 0, false
	}
	var x uint64
	for i := len(a) - 1; i >= 0; i-- {
		d := uint64(a[i])
		if x > (^uint64(0)-d)/base {
			return 0, false
		}
		x = x*base + d
	}
	return x, true
}

// Cmp compares the magnitudes a and b and returns -1, 0 or +1. Both must be
// normalized: with no high-order zeros the digit count orders magnitudes.
func (a Int) Cmp(b Int) int {
	if len(a) > len(b) {
		return 1
	}
	if len(b) > len(a) {
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Zero returns whether z is 0.
func (z Int) Zero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether a == b. a and b are required to not have any leading 0s.
func (a Int) Equal(b Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// Valid reports whether a is normalized and every digit is in range.
func (a Int) Valid() bool {
	if len(a) == 0 {
		return false
	}
	for _, d := range a {
		if d >= base {
			return false
		}
	}
	return len(a) == 1 || a[len(a)-1] != 0
}

func (z Int) String() string {
	return string(z.Append(nil))
}

// Append appends the digits of z, most significant first, to buf.
func (z Int) Append(buf []byte) []byte {
	if len(z) == 0 {
		return append(buf, '0')
	}
	for i := len(z) - 1; i >= 0; i-- {
		buf = append(buf, byte(z[i])+'0')
	}
	return buf
}

// norm strips high-order zero digits, leaving [0] for zero.
func (z Int) norm() Int {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return append(z[:0], 0)
	}
	return z[:n]
}

// Add sets z to x+y. Any of z, x and y may alias.
func (z *Int) Add(x, y Int) *Int {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if cap(*z) < n+1 {
		// x and y keep pointing at the old array.
		*z = make(Int, 0, n+1)
	} else {
		*z = (*z)[:0]
	}
	var carry Word
	for i := 0; i < n; i++ {
		s := carry
		if i < len(x) {
			s += x[i]
		}
		if i < len(y) {
			s += y[i]
		}
		carry = s / base
		*z = append(*z, s%base)
	}
	if carry > 0 {
		*z = append(*z, carry)
	}
	*z = z.norm()
	return z
}

// Sub sets z to x-y. x must be at least y in magnitude. Any of z, x and y may
// alias.
func (z *Int) Sub(x, y Int) *Int {
	if x.Cmp(y) < 0 {
		panic("int10: Sub underflow")
	}
	n := len(x)
	if cap(*z) < n {
		*z = make(Int, 0, n)
	} else {
		*z = (*z)[:0]
	}
	var borrow int8
	for i := 0; i < n; i++ {
		t := int8(x[i]) - borrow
		if i < len(y) {
			t -= int8(y[i])
		}
		if t < 0 {
			t += base
			borrow = 1
		} else {
			borrow = 0
		}
		*z = append(*z, Word(t))
	}
	*z = z.norm()
	return z
}

// Diff sets z to the difference of x and y. That is, |x-y|. d is true if x-y < 0.
func (z *Int) Diff(x, y Int) (d bool) {
	if x.Cmp(y) < 0 {
		z.Sub(y, x)
		return true
	}
	z.Sub(x, y)
	return false
}

// Mul sets z to the product x*y using schoolbook multiplication. The shorter
// operand drives the outer loop; each of its digits yields one shifted
// partial product which is accumulated with Add.
func (z *Int) Mul(x, y Int) *Int {
	if x.Zero() || y.Zero() {
		*z = append((*z)[:0], 0)
		return z
	}
	outer, inner := x, y
	if len(outer) > len(inner) {
		outer, inner = inner, outer
	}
	acc := make(Int, 0, len(x)+len(y))
	acc = append(acc, 0)
	var partial Int
	for i, d := range outer {
		if d == 0 {
			continue
		}
		partial = partial.mulWord(inner, d, i)
		acc.Add(acc, partial)
	}
	*z = acc
	return z
}

// mulWord sets z to x*d*10^shift, reusing z's storage.
func (z Int) mulWord(x Int, d Word, shift int) Int {
	z = z[:0]
	for i := 0; i < shift; i++ {
		z = append(z, 0)
	}
	var carry Word
	for _, v := range x {
		t := v*d + carry
		carry = t / base
		z = append(z, t%base)
	}
	if carry > 0 {
		z = append(z, carry)
	}
	return z
}
