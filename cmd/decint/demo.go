package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/decint"
)

func newDemoCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through construction, comparison and arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return runDemo(out, errColor(out, cfg.Color), outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "output.txt", "file the demo writes a value to; empty to skip")
	return cmd
}

// demo prints through w and stops at the first write error.
type demo struct {
	w   io.Writer
	bad *color.Color
	err error
}

func (d *demo) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *demo) fail(err error) {
	if d.err != nil {
		return
	}
	_, d.err = d.bad.Fprintf(d.w, "Error: %v\n", err)
}

func (d *demo) show(name string, x *decint.Int) {
	d.printf("%s = %s\n", name, x)
}

func runDemo(w io.Writer, bad *color.Color, outPath string) error {
	d := &demo{w: w, bad: bad}

	// The zero value is ready to use.
	var a decint.Int
	d.show("a", &a)
	b := decint.New(267481)
	d.show("b", b)
	c := decint.New(-31642)
	d.show("c", c)

	for i, s := range []string{
		"295712491461964816498164981",
		"-343284521048104795104781",
		"+572907418046716498164891",
	} {
		x, err := decint.NewFromString(s)
		if err != nil {
			return err
		}
		d.show(string(rune('d'+i)), x)
	}

	// Invalid input never produces a value.
	for _, s := range []string{"13816361.3131", "00000313131", "gk%45#^$#!"} {
		if g, err := decint.NewFromString(s); err != nil {
			d.fail(err)
		} else {
			d.show("g", g)
		}
	}

	a.SetInt64(123321)
	d.show("a", &a)
	if _, err := a.SetString("-9888898888"); err != nil {
		return err
	}
	d.show("a", &a)
	// A failed set leaves the value unchanged.
	if _, err := a.SetString("AB131351"); err != nil {
		d.fail(err)
	}
	d.show("a", &a)

	if outPath != "" {
		z := decint.MustParse("173917386716391371739")
		if err := writeValue(outPath, z); err != nil {
			d.fail(err)
		} else {
			d.printf("wrote %s to %s\n", z, outPath)
		}
	}

	d.show("h", new(decint.Int).Neg(&a))
	a.SetInt64(0)

	d.printf("Comparing two decint numbers:\n")
	i := decint.New(267481)
	d.printf("267481 == 267481? %v\n", b.Equal(i))
	d.printf("267481 == -31642? %v\n", b.Equal(c))
	d.printf("267481 != 267481? %v\n", !b.Equal(i))
	d.printf("267481 != -31642? %v\n", !b.Equal(c))
	d.printf("267481 < 267481? %v\n", b.Less(i))
	d.printf("267481 < -31642? %v\n", b.Less(c))
	d.printf("-31642 < 267481? %v\n", c.Less(b))
	d.printf("267481 > -31642? %v\n", b.Greater(c))
	d.printf("-31642 > 267481? %v\n", c.Greater(b))
	d.printf("267481 <= 267481? %v\n", b.LessEq(i))
	d.printf("267481 <= -31642? %v\n", b.LessEq(c))
	d.printf("267481 >= 267481? %v\n", b.GreaterEq(i))
	d.printf("267481 >= -31642? %v\n", b.GreaterEq(c))

	j := decint.New(123)
	k := decint.MustParse("-456")
	d.show("j", j)
	d.show("k", k)
	j.Set(k)
	d.printf("After j = k assignment: j = %s\n", j)

	// Every scenario below reuses a and b, so parse errors are collected
	// once at the end.
	var ed decint.ErrInt
	set := func(z *decint.Int, s string) *decint.Int {
		ed.SetString(z, s)
		return z
	}

	d.printf("\nAdding two decint numbers:\n")
	set(b, "186418")
	d.show("a", &a)
	d.show("b", b)
	d.show("a += b : a", a.Add(&a, b))
	d.show("b", set(b, "-186418"))
	d.show("a += b : a", a.Add(&a, b))
	d.show("a", set(&a, "12345678910111213141516"))
	d.show("b", set(b, "-161718192021222324252627"))
	d.show("a += b : a", a.Add(&a, b))
	d.show("a", set(&a, "9999"))
	d.show("b", b.SetInt64(-9999))
	d.show("a + b", decint.Add(&a, b))

	d.printf("\nSubtracting two decint numbers:\n")
	d.show("a", set(&a, "10000000000000000000000"))
	d.show("b", b.SetInt64(1))
	d.show("a -= b : a", a.Sub(&a, b))
	d.show("b", set(b, "9999999999999999999999"))
	d.show("a -= b : a", a.Sub(&a, b))
	d.show("a", set(&a, "10000000000000000000000"))
	d.show("b", set(b, "-10000000000000000000000"))
	d.show("a - b", decint.Sub(&a, b))
	d.show("a", set(&a, "-10000000000000000000000"))
	d.show("b", set(b, "10000000000000000000000"))
	d.show("a - b", decint.Sub(&a, b))
	d.show("b", b.SetInt64(0))
	d.show("a - b", decint.Sub(&a, b))
	d.show("b - a", decint.Sub(b, &a))

	d.printf("\nMultiplying two decint numbers:\n")
	a.SetInt64(0)
	set(b, "500")
	d.show("a", a.Mul(&a, b))
	d.show("b", b)
	d.show("a *= b : a", a.Mul(&a, b))
	d.show("a", set(&a, "-32674816684"))
	d.show("a *= b : a", a.Mul(&a, b))
	d.show("a", set(&a, "592491734917987491"))
	d.show("b", set(b, "999999988888888888"))
	d.show("a * b", decint.Mul(&a, b))
	d.show("b", set(b, "-999999988888888888"))
	d.show("a * b", decint.Mul(&a, b))

	if ed.Err != nil {
		return ed.Err
	}
	return d.err
}

func writeValue(path string, x *decint.Int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	if _, err := x.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
