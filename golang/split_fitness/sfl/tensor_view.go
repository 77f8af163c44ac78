package sfl

import (
	"log"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

//attributeTable is a read-only count table view of one attribute of a
//[attributes, classes, partitions] statistics tensor.
type attributeTable struct {
	stats      *tensor.Dense
	attribute  int
	rows, cols int
}

//AttributeTables returns one count table per attribute of stats, a 3-D tensor of shape
//[attributes, classes, partitions] with Float64, Int64 or Uint64 counts. The tables
//read through to stats, so later updates of the tensor are visible in them.
func AttributeTables(stats *tensor.Dense) ([]mat.Matrix, error) {
	if stats == nil {
		return nil, errors.New("nil statistics tensor")
	}
	shape := stats.Shape()
	if len(shape) != 3 {
		return nil, errors.Errorf("statistics tensor has shape %v, expected [attributes, classes, partitions]", shape)
	}
	switch stats.Dtype() {
	case tensor.Float64, tensor.Int64, tensor.Uint64:
	default:
		return nil, errors.Errorf("unsupported statistics dtype %v", stats.Dtype())
	}
	numAttributes, numClasses, numPartitions := shape[0], shape[1], shape[2]
	if numClasses == 0 || numPartitions == 0 {
		return nil, errors.Wrapf(ErrEmptyTable, "statistics tensor shape %v", shape)
	}

	tables := make([]mat.Matrix, numAttributes)
	for a := 0; a < numAttributes; a++ {
		tables[a] = attributeTable{stats: stats, attribute: a, rows: numClasses, cols: numPartitions}
	}
	return tables, nil
}

func (t attributeTable) Dims() (r, c int) {
	return t.rows, t.cols
}

func (t attributeTable) At(i, j int) float64 {
	if i < 0 || i >= t.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= t.cols {
		panic(mat.ErrColAccess)
	}
	v, err := t.stats.At(t.attribute, i, j)
	HandleError(err)
	switch count := v.(type) {
	case float64:
		return count
	case int64:
		return float64(count)
	case uint64:
		return float64(count)
	}
	log.Panicf("unsupported count type %T", v)
	return 0
}

func (t attributeTable) T() mat.Matrix {
	return mat.Transpose{Matrix: t}
}
