// Package densemat is a small library for immutable dense float64 matrices.
//
// The work happens in subpackages:
//
//	matrix/             Dense type: construction, accessors, Add/Sub/Scale/Mul,
//	                    transpose, predicates, text rendering, gonum interop
//	internal/matrixio/  YAML/JSON reading and writing of matrices
//	cmd/matrixcalc/     command line front end over matrix and matrixio
//
// Quick start:
//
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.New([][]float64{{5, 6}, {7, 8}})
//	p, err := a.Mul(b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(p)
//
// Values are never mutated after construction, so they can be shared across
// goroutines without locking.
package densemat
