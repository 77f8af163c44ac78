package sfl

import (
	"context"
	"log"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Candidate is one candidate split of a leaf together with its count table.
type Candidate struct {
	Name   string
	Counts mat.Matrix
}

//Score is the fitness of the candidate at position Index of the scored batch.
type Score struct {
	Index int
	Name  string
	Value float64
}

//ScorerParams collect arguments required to score a batch of candidates.
type ScorerParams struct {
	Fitness    FitnessFunction // GiniImpurity when nil
	ThreadsNum int
	Validate   bool
	Verbose    bool
}

//ScoreCandidates evaluates every candidate and returns the scores ordered from the best
//to the worst, ties broken by the candidate position. With ThreadsNum greater than one
//the candidates are evaluated concurrently by at most ThreadsNum goroutines.
//With Validate set every table is checked by CheckCountTable first and the batch fails
//on a malformed one; which failure is reported is unspecified when several run concurrently.
func ScoreCandidates(ctx context.Context, params ScorerParams, candidates []Candidate) ([]Score, error) {
	fitness := params.Fitness
	if fitness == nil {
		fitness = GiniImpurity{}
	}

	scores := make([]Score, len(candidates))
	scoreOne := func(ind int) error {
		candidate := candidates[ind]
		if params.Validate {
			if err := CheckCountTable(candidate.Counts); err != nil {
				return errors.Wrapf(err, "candidate %d (%s)", ind, candidate.Name)
			}
		}
		scores[ind] = Score{Index: ind, Name: candidate.Name, Value: fitness.Evaluate(candidate.Counts)}
		return nil
	}

	if params.ThreadsNum <= 1 {
		for ind := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := scoreOne(ind); err != nil {
				return nil, err
			}
		}
	} else {
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(params.ThreadsNum)
		for ind := range candidates {
			localInd := ind
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				return scoreOne(localInd)
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Index < scores[j].Index
	})

	if params.Verbose && len(scores) > 0 {
		log.Printf("scored %d candidates, best %q = %g", len(scores), scores[0].Name, scores[0].Value)
	}
	return scores, nil
}

//BestTwo returns the two leading scores of a batch ordered by ScoreCandidates.
//ok is false when the batch has fewer than two candidates.
func BestTwo(scores []Score) (best, second Score, ok bool) {
	if len(scores) > 0 {
		best = scores[0]
	}
	if len(scores) < 2 {
		return best, second, false
	}
	return best, scores[1], true
}
