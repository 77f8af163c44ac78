package sfl

import (
	"log"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Counts above this value are no longer exact in a float64.
const maxExactCount = 1 << 53

var (
	//ErrEmptyTable is reported for a table without classes or without partitions.
	ErrEmptyTable = errors.New("count table has no classes or no partitions")
	//ErrNegativeCount is reported for a count below zero.
	ErrNegativeCount = errors.New("count table has a negative count")
	//ErrFractionalCount is reported for a NaN or non-integer count.
	ErrFractionalCount = errors.New("count table has a non-integer count")
	//ErrCountOverflow is reported when a count or the grand total is above 2^53.
	ErrCountOverflow = errors.New("count table exceeds the exactly representable range")
)

//HandleError panics on a non-nil error.
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}

//NewCountTable converts per-class, per-partition tallies into a count table.
//counts[c][p] is the number of observations of class c routed to partition p.
//It panics on ragged rows and on tallies above 2^53, which a float64 can not hold exactly.
func NewCountTable(counts [][]uint64) *mat.Dense {
	if len(counts) == 0 || len(counts[0]) == 0 {
		log.Panic("a count table needs at least one class and one partition")
	}
	numPartitions := len(counts[0])
	table := mat.NewDense(len(counts), numPartitions, nil)
	for c, row := range counts {
		if len(row) != numPartitions {
			log.Panicf("class %d has %d partitions, expected %d", c, len(row), numPartitions)
		}
		for p, count := range row {
			if count > maxExactCount {
				log.Panicf("counts[%d][%d] = %d is above %d", c, p, count, uint64(maxExactCount))
			}
			table.Set(c, p, float64(count))
		}
	}
	return table
}

//CheckCountTable reports whether counts is a well-formed count table: at least one
//class and one partition, every entry a non-negative integer, and the grand total
//small enough to be summed without losing precision.
func CheckCountTable(counts mat.Matrix) error {
	if counts == nil {
		return ErrEmptyTable
	}
	numClasses, numPartitions := counts.Dims()
	if numClasses == 0 || numPartitions == 0 {
		return errors.Wrapf(ErrEmptyTable, "dims %dx%d", numClasses, numPartitions)
	}

	total := 0.0
	for c := 0; c < numClasses; c++ {
		for p := 0; p < numPartitions; p++ {
			v := counts.At(c, p)
			switch {
			case v < 0:
				return errors.Wrapf(ErrNegativeCount, "counts[%d][%d] = %v", c, p, v)
			case math.IsNaN(v) || v != math.Trunc(v):
				return errors.Wrapf(ErrFractionalCount, "counts[%d][%d] = %v", c, p, v)
			case v > maxExactCount:
				return errors.Wrapf(ErrCountOverflow, "counts[%d][%d] = %v", c, p, v)
			}
			total += v
		}
	}
	if total > maxExactCount {
		return errors.Wrapf(ErrCountOverflow, "grand total %v", total)
	}
	return nil
}
