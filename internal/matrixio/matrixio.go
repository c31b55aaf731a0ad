// Package matrixio reads and writes matrices as YAML documents.
//
// Two layouts are accepted on input, a bare sequence of rows or a mapping
// with a rows key:
//
//	# sequence
//	- [1, 2]
//	- [3, 4]
//
//	# mapping
//	rows:
//	  - [1, 2]
//	  - [3, 4]
//
// JSON is a subset of YAML, so [[1,2],[3,4]] and {"rows": [[1,2],[3,4]]} work too.
// Output always uses the mapping layout with one flow-style row per line.
package matrixio

import (
	"io"
	"os"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("matrixio: empty document")

// ErrLayout is returned when the document is neither a sequence nor a rows mapping.
var ErrLayout = errors.New("matrixio: document must be a sequence of rows or a mapping with a rows key")

type document struct {
	Rows [][]float64 `yaml:"rows"`
}

// Decode parses the first YAML document from r into a grid.
// The grid is not validated; matrix.New does that.
func Decode(r io.Reader) (grid [][]float64, err error) {
	var root yaml.Node

	if err = yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Wrap(err, "unable to parse document")
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		if err = node.Decode(&grid); err != nil {
			return nil, errors.Wrap(err, "unable to decode rows")
		}
	case yaml.MappingNode:
		var doc document
		if err = node.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "unable to decode rows mapping")
		}
		grid = doc.Rows
	default:
		return nil, ErrLayout
	}

	return grid, nil
}

// Load reads the matrix stored at path.
func Load(path string, opts ...matrix.Option) (_ *matrix.Dense, err error) {
	var (
		f    *os.File
		grid [][]float64
	)

	if f, err = os.Open(path); err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	if grid, err = Decode(f); err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	m, err := matrix.New(grid, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid matrix in %s", path)
	}

	return m, nil
}

// Encode writes m as a rows mapping with flow-style rows.
// NaN and ±Inf are written as .nan, .inf and -.inf.
func Encode(w io.Writer, m *matrix.Dense) (err error) {
	if m == nil {
		return errors.Wrap(matrix.ErrNilMatrix, "unable to encode")
	}

	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range m.ToArray() {
		var rn yaml.Node
		if err = rn.Encode(row); err != nil {
			return errors.Wrap(err, "unable to encode row")
		}
		rn.Style = yaml.FlowStyle
		rows.Content = append(rows.Content, &rn)
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "rows"},
			rows,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return errors.Wrap(err, "unable to write document")
	}

	return errors.Wrap(enc.Close(), "unable to flush document")
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *matrix.Dense) (err error) {
	var f *os.File

	if f, err = os.Create(path); err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "unable to close %s", path)
		}
	}()

	return Encode(f, m)
}
