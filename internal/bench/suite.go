package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Case describes one batch of random instances to time.
type Case struct {
	Variables int
	Clauses   int
	Width     int // 0 selects density-style generation
	Instances int
}

// Suite is the benchmark configuration.
type Suite struct {
	Cases []Case
}

// Default returns the suite used when no configuration file is given.
func Default() Suite {
	return Suite{
		Cases: []Case{
			{Variables: 20, Clauses: 40, Instances: 20},
			{Variables: 50, Clauses: 100, Instances: 20},
			{Variables: 100, Clauses: 200, Instances: 10},
			{Variables: 12, Clauses: 50, Width: 3, Instances: 20},
			{Variables: 16, Clauses: 67, Width: 3, Instances: 10},
		},
	}
}

// SuiteFromJson loads a suite from a JSON file.
func SuiteFromJson(file string) (Suite, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Suite{}, err
	}

	var suiteJson map[string]any
	if err := json.Unmarshal(bytes, &suiteJson); err != nil {
		return Suite{}, err
	}

	var suite Suite
	if err := mapstructure.Decode(suiteJson, &suite); err != nil {
		return Suite{}, err
	}

	if err := suite.validate(); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

func (suite Suite) validate() error {
	if len(suite.Cases) == 0 {
		return errors.New("suite has no cases")
	}
	for i, benchCase := range suite.Cases {
		if benchCase.Variables < 1 || benchCase.Clauses < 1 || benchCase.Instances < 1 {
			return fmt.Errorf("case %v must have positive variables, clauses and instances", i)
		}
		if benchCase.Width < 0 {
			return fmt.Errorf("case %v has a negative width", i)
		}
	}
	return nil
}
