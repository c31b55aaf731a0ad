package main

import (
	"fmt"
	"log"
	"runtime/debug"
	"strconv"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type binaryOp func(a, b *matrix.Dense) (*matrix.Dense, error)

type Operands struct {
	Left  string `arg:"" help:"path to the left operand" type:"existingfile" predictor:"matrix"`
	Right string `arg:"" help:"path to the right operand" type:"existingfile" predictor:"matrix"`
}

func (t Operands) run(gctx *Global, name string, op binaryOp) (err error) {
	var (
		a, b, r *matrix.Dense
	)

	if a, err = gctx.load(t.Left); err != nil {
		return err
	}

	if b, err = gctx.load(t.Right); err != nil {
		return err
	}

	if r, err = op(a, b); err != nil {
		return errors.Wrapf(err, "%s %s %s", name, t.Left, t.Right)
	}

	if gctx.Verbosity > 1 {
		log.Printf("%s %dx%d %dx%d -> %dx%d\n", name, a.Rows(), a.Cols(), b.Rows(), b.Cols(), r.Rows(), r.Cols())
	}

	return gctx.emit(r)
}

type cmdAdd struct {
	Operands
}

func (t cmdAdd) Run(gctx *Global) error {
	return t.run(gctx, "add", (*matrix.Dense).Add)
}

type cmdSub struct {
	Operands
}

func (t cmdSub) Run(gctx *Global) error {
	return t.run(gctx, "sub", (*matrix.Dense).Sub)
}

type cmdMul struct {
	Operands
}

func (t cmdMul) Run(gctx *Global) error {
	return t.run(gctx, "mul", (*matrix.Dense).Mul)
}

type cmdScale struct {
	By     float64 `help:"scalar factor" required:""`
	Matrix string  `arg:"" help:"path to the matrix" type:"existingfile" predictor:"matrix"`
}

func (t cmdScale) Run(gctx *Global) (err error) {
	var m *matrix.Dense

	if m, err = gctx.load(t.Matrix); err != nil {
		return err
	}

	return gctx.emit(m.Scale(t.By))
}

type cmdTranspose struct {
	Matrix string `arg:"" help:"path to the matrix" type:"existingfile" predictor:"matrix"`
}

func (t cmdTranspose) Run(gctx *Global) (err error) {
	var m *matrix.Dense

	if m, err = gctx.load(t.Matrix); err != nil {
		return err
	}

	return gctx.emit(m.T())
}

type info struct {
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Square    bool     `yaml:"square"`
	Symmetric bool     `yaml:"symmetric"`
	Trace     *float64 `yaml:"trace,omitempty"`
}

type cmdInfo struct {
	Matrix string `arg:"" help:"path to the matrix" type:"existingfile" predictor:"matrix"`
}

func (t cmdInfo) Run(gctx *Global) (err error) {
	var m *matrix.Dense

	if m, err = gctx.load(t.Matrix); err != nil {
		return err
	}

	details := info{
		Rows:      m.Rows(),
		Cols:      m.Cols(),
		Square:    m.IsSquare(),
		Symmetric: m.IsSymmetric(),
	}

	if details.Square {
		tr, err := m.Trace()
		if err != nil {
			return errors.Wrap(err, "trace")
		}
		details.Trace = &tr
	}

	if gctx.Output == outputYAML {
		enc := yaml.NewEncoder(gctx.Stdout)
		if err = enc.Encode(details); err != nil {
			return errors.Wrap(err, "unable to write info")
		}
		return errors.Wrap(enc.Close(), "unable to flush info")
	}

	if _, err = fmt.Fprintf(gctx.Stdout, "shape: %dx%d\nsquare: %t\nsymmetric: %t\n", details.Rows, details.Cols, details.Square, details.Symmetric); err != nil {
		return errors.Wrap(err, "unable to write info")
	}

	if details.Trace != nil {
		if _, err = fmt.Fprintf(gctx.Stdout, "trace: %s\n", strconv.FormatFloat(*details.Trace, 'g', -1, 64)); err != nil {
			return errors.Wrap(err, "unable to write info")
		}
	}

	return nil
}

type cmdAt struct {
	Matrix string `arg:"" help:"path to the matrix" type:"existingfile" predictor:"matrix"`
	Row    int    `arg:"" help:"zero-based row index"`
	Col    int    `arg:"" help:"zero-based column index"`
}

func (t cmdAt) Run(gctx *Global) (err error) {
	var (
		m *matrix.Dense
		v float64
	)

	if m, err = gctx.load(t.Matrix); err != nil {
		return err
	}

	if v, err = m.At(t.Row, t.Col); err != nil {
		return errors.Wrapf(err, "at %s", t.Matrix)
	}

	if gctx.Output == outputYAML {
		enc := yaml.NewEncoder(gctx.Stdout)
		if err = enc.Encode(v); err != nil {
			return errors.Wrap(err, "unable to write element")
		}
		return errors.Wrap(enc.Close(), "unable to flush element")
	}

	_, err = fmt.Fprintln(gctx.Stdout, strconv.FormatFloat(v, 'g', -1, 64))
	return errors.Wrap(err, "unable to write element")
}

type cmdVersion struct{}

func (t cmdVersion) Run(gctx *Global) (err error) {
	var (
		ok    bool
		binfo *debug.BuildInfo
	)

	if binfo, ok = debug.ReadBuildInfo(); !ok {
		return errors.New("unable to read build info")
	}

	_, err = fmt.Fprintf(gctx.Stdout, "matrixcalc %s %s\n", binfo.Main.Version, binfo.GoVersion)
	return errors.Wrap(err, "unable to write version")
}
