package main

import (
	"io"
	"log"

	"github.com/katalvlaran/densemat/internal/matrixio"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/pkg/errors"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type Global struct {
	Verbosity  int       `help:"increase verbosity of logging" short:"v" type:"counter" default:"0"`
	Output     string    `help:"output format (text, yaml)" enum:"text,yaml" default:"${vars_output_default}" env:"MATRIXCALC_OUTPUT"`
	FiniteOnly bool      `help:"reject matrices containing NaN or Inf" name:"finite-only" default:"false"`
	Stdout     io.Writer `kong:"-"`
}

func (t Global) options() (opts []matrix.Option) {
	if t.FiniteOnly {
		opts = append(opts, matrix.WithFiniteOnly())
	}
	return opts
}

func (t Global) load(path string) (m *matrix.Dense, err error) {
	if m, err = matrixio.Load(path, t.options()...); err != nil {
		return nil, err
	}

	if t.Verbosity > 0 {
		log.Printf("loaded %s %dx%d\n", path, m.Rows(), m.Cols())
	}

	return m, nil
}

func (t Global) emit(m *matrix.Dense) (err error) {
	switch t.Output {
	case outputYAML:
		return matrixio.Encode(t.Stdout, m)
	case outputText, "":
		_, err = io.WriteString(t.Stdout, m.String())
		return errors.Wrap(err, "unable to write matrix")
	default:
		return errors.Errorf("unknown output format: %s", t.Output)
	}
}
