// Package sfl scores candidate splits of a streaming decision tree leaf.
//
// A candidate split is described by a count table: rows are classes, columns
// are the child partitions the split would produce, and every cell holds the
// number of observations of that class routed to that partition.
package sfl

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//FitnessFunction scores a count table. Higher is better; every well-formed table,
//including the all-zero one, gets a finite score and the no-information case scores 0.
type FitnessFunction interface {
	Evaluate(counts mat.Matrix) float64
}

//RangedFitnessFunction is a fitness function that also reports the width of the range
//its scores fall into for a given number of classes.
type RangedFitnessFunction interface {
	FitnessFunction
	Range(numClasses int) float64
}

//GiniImpurity scores a split by the reduction of Gini impurity it achieves.
type GiniImpurity struct{}

//Evaluate returns the Gini impurity of the unsplit node minus the weighted Gini impurity
//of the partitions. Empty partitions are skipped, an empty table scores exactly 0.
//counts is read only and may be a view into a larger matrix.
func (GiniImpurity) Evaluate(counts mat.Matrix) float64 {
	numClasses, numPartitions := counts.Dims()

	column := make([]float64, numClasses)
	splitCounts := make([]float64, numPartitions)
	numElem := 0.0
	for p := 0; p < numPartitions; p++ {
		splitCounts[p] = floats.Sum(mat.Col(column, p, counts))
		numElem += splitCounts[p]
	}

	if numElem == 0 {
		return 0.0
	}

	row := make([]float64, numPartitions)
	impurity := 0.0
	for c := 0; c < numClasses; c++ {
		f := floats.Sum(mat.Row(row, c, counts)) / numElem
		impurity += f * (1.0 - f)
	}

	for p := 0; p < numPartitions; p++ {
		if splitCounts[p] == 0 {
			continue
		}
		splitImpurity := giniOf(mat.Col(column, p, counts), splitCounts[p])
		impurity -= (splitCounts[p] / numElem) * splitImpurity
	}

	return impurity
}

//Range returns the largest possible Gini impurity for numClasses classes, 1 - 1/k.
func (GiniImpurity) Range(numClasses int) float64 {
	if numClasses <= 1 {
		return 0.0
	}
	return 1.0 - 1.0/float64(numClasses)
}

//EvaluateGini is GiniImpurity{}.Evaluate in the form of a free function.
func EvaluateGini(counts mat.Matrix) float64 {
	return GiniImpurity{}.Evaluate(counts)
}

// giniOf expects total > 0.
func giniOf(classCounts []float64, total float64) float64 {
	impurity := 0.0
	for _, count := range classCounts {
		f := count / total
		impurity += f * (1.0 - f)
	}
	return impurity
}
