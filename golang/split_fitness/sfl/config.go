package sfl

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

//fitnessFunctions maps configuration names to fitness functions.
var fitnessFunctions = map[string]FitnessFunction{
	"gini": GiniImpurity{},
}

//ScorerConfig is the JSON form of ScorerParams.
type ScorerConfig struct {
	Fitness    string `json:"fitness"`
	ThreadsNum int    `json:"threads_num"`
	Validate   bool   `json:"validate"`
	Verbose    bool   `json:"verbose"`
}

//NewFitnessFunction looks a fitness function up by name. The empty name selects gini.
func NewFitnessFunction(name string) (FitnessFunction, error) {
	if name == "" {
		name = "gini"
	}
	fitness, ok := fitnessFunctions[name]
	if !ok {
		return nil, errors.Errorf("unknown fitness function '%s'", name)
	}
	return fitness, nil
}

//DecodeScorerConfig reads a ScorerConfig from JSON.
func DecodeScorerConfig(r io.Reader) (config ScorerConfig, err error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(&config); err != nil {
		return ScorerConfig{}, errors.Wrap(err, "decode scorer config")
	}
	if config.ThreadsNum < 0 {
		return ScorerConfig{}, errors.Errorf("threads_num must not be negative, got %d", config.ThreadsNum)
	}
	return config, nil
}

//Params resolves the configuration into scorer arguments.
func (config ScorerConfig) Params() (ScorerParams, error) {
	fitness, err := NewFitnessFunction(config.Fitness)
	if err != nil {
		return ScorerParams{}, err
	}
	return ScorerParams{
		Fitness:    fitness,
		ThreadsNum: config.ThreadsNum,
		Validate:   config.Validate,
		Verbose:    config.Verbose,
	}, nil
}
