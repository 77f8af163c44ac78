package sfl

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

//ReadCountTable reads a 2-D count table stored as a .npy array of <f8, <i8 or <u8
//values, in C or Fortran order, and checks it with CheckCountTable.
func ReadCountTable(r io.Reader) (*mat.Dense, error) {
	npyReader, err := npyio.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "read npy header")
	}

	shape := npyReader.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, errors.Errorf("count table must be 2-D, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 || cols == 0 {
		return nil, errors.Wrapf(ErrEmptyTable, "shape %v", shape)
	}

	var data []float64
	switch npyReader.Header.Descr.Type {
	case "<f8":
		err = npyReader.Read(&data)
	case "<i8":
		var raw []int64
		err = npyReader.Read(&raw)
		data = make([]float64, len(raw))
		for ind, v := range raw {
			data[ind] = float64(v)
		}
	case "<u8":
		var raw []uint64
		err = npyReader.Read(&raw)
		data = make([]float64, len(raw))
		for ind, v := range raw {
			data[ind] = float64(v)
		}
	default:
		return nil, errors.Errorf("unsupported count table dtype %q", npyReader.Header.Descr.Type)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read npy data")
	}
	if len(data) != rows*cols {
		return nil, errors.Errorf("npy data has %d values, shape %v needs %d", len(data), shape, rows*cols)
	}

	var table *mat.Dense
	if npyReader.Header.Descr.Fortran {
		table = mat.DenseCopyOf(mat.NewDense(cols, rows, data).T())
	} else {
		table = mat.NewDense(rows, cols, data)
	}

	if err := CheckCountTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

//ReadCountTableFile reads a count table from a .npy file.
func ReadCountTableFile(fileName string) (*mat.Dense, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() { HandleError(f.Close()) }()

	log.Print("\tload count table <", fileName, ">")
	return ReadCountTable(f)
}

//WriteCountTable writes counts as a <f8 .npy array.
func WriteCountTable(w io.Writer, counts mat.Matrix) error {
	return errors.Wrap(npyio.Write(w, mat.DenseCopyOf(counts)), "write npy")
}
