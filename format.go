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
	"io"
	"strconv"

	"github.com/cockroachdb/decint/int10"
	"github.com/pkg/errors"
)

// String returns the canonical decimal form of x: "0" for zero, a leading
// '-' for negative values and no sign otherwise. There is no trailing
// newline; callers that print one line per value add it themselves.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil))
}

// Append appends the canonical decimal form of x to buf and returns the
// extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x.sign == Negative {
		buf = append(buf, '-')
	}
	return x.mag().Append(buf)
}

// GoString implements fmt.GoStringer.
func (x *Int) GoString() string {
	return fmt.Sprintf(`{Sign: %s, Digits: %v}`, x.sign, []int10.Word(x.mag()))
}

// WriteTo writes the canonical decimal form of x to w. It implements
// io.WriterTo.
func (x *Int) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(x.Append(nil))
	return int64(n), err
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v'
// for the canonical form and 'q' for a quoted canonical form. The '+' flag
// forces a sign on positive values; width pads with spaces, or with zeros
// after the sign when the '0' flag is set, and '-' left-justifies.
func (x *Int) Format(s fmt.State, verb rune) {
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if s.Flag('#') {
			fmt.Fprint(s, x.GoString())
			return
		}
	case 'd', 's', 'q':
	default:
		fmt.Fprintf(s, "%%!%c(decint.Int=%s)", verb, x.String())
		return
	}

	var sign string
	switch {
	case x.sign == Negative:
		sign = "-"
	case x.sign == Positive && s.Flag('+'):
		sign = "+"
	}
	digits := x.mag().Append(nil)
	if verb == 'q' {
		digits = []byte(strconv.Quote(sign + string(digits)))
		sign = ""
	}

	var left, zeros, right int
	if w, ok := s.Width(); ok {
		if pad := w - len(sign) - len(digits); pad > 0 {
			switch {
			case s.Flag('-'):
				right = pad
			case s.Flag('0') && verb != 'q':
				zeros = pad
			default:
				left = pad
			}
		}
	}
	buf := make([]byte, 0, left+len(sign)+zeros+len(digits)+right)
	buf = appendRepeat(buf, ' ', left)
	buf = append(buf, sign...)
	buf = appendRepeat(buf, '0', zeros)
	buf = append(buf, digits...)
	buf = appendRepeat(buf, ' ', right)
	_, _ = s.Write(buf)
}

func appendRepeat(buf []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, c)
	}
	return buf
}

// Scan is a support routine for fmt.Scanner. It reads one space-delimited
// token and parses it with SetString, so trailing garbage such as "12.5" is
// an error rather than being left in the input. The verbs 'd', 's' and 'v'
// are accepted.
func (z *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return errors.Errorf("decint: invalid verb %q for Int.Scan", verb)
	}
	state.SkipSpace()
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	_, err = z.SetString(string(tok))
	return err
}
