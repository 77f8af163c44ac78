package sfl

import (
	"context"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDecodeScorerConfig(t *testing.T) {
	config, err := DecodeScorerConfig(strings.NewReader(`{
		"fitness": "gini",
		"threads_num": 4,
		"validate": true
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ScorerConfig{Fitness: "gini", ThreadsNum: 4, Validate: true}
	if config != want {
		t.Errorf("got %+v, want %+v", config, want)
	}

	params, err := config.Params()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := params.Fitness.(GiniImpurity); !ok || params.ThreadsNum != 4 || !params.Validate {
		t.Errorf("unexpected params %+v", params)
	}

	scores, err := ScoreCandidates(context.Background(), params, []Candidate{{"perfect", mat.NewDense(2, 2, []float64{10, 0, 0, 10})}})
	if err != nil || scores[0].Value != 0.5 {
		t.Errorf("got %v, %v", scores, err)
	}
}

func TestDecodeScorerConfigErrors(t *testing.T) {
	for _, src := range []string{
		`{"threads_num": -1}`,
		`{"thread_num": 2}`,
		`{"fitness": 3}`,
		`not json`,
	} {
		if _, err := DecodeScorerConfig(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected an error", src)
		}
	}

	config, err := DecodeScorerConfig(strings.NewReader(`{"fitness": "information_gain"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := config.Params(); err == nil {
		t.Errorf("unknown fitness function accepted")
	}
}

func TestNewFitnessFunctionDefault(t *testing.T) {
	fitness, err := NewFitnessFunction("")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fitness.(GiniImpurity); !ok {
		t.Errorf("default fitness is %T, want GiniImpurity", fitness)
	}
}
