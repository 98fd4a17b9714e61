package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/snsinfu/dpll-sat/internal/bench"
)

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 0.12, durationMillis(120*time.Microsecond))
	assert.Equal(t, 1.5, durationMillis(1500*time.Microsecond))
	assert.Equal(t, 1000.0, durationMillis(time.Second))
}

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Case:        bench.Case{Variables: 12, Clauses: 50, Width: 3, Instances: 20},
		Instance:    7,
		Satisfiable: true,
		Duration:    1500 * time.Microsecond,
	}

	assert.Equal(t, []string{"12", "50", "3", "7", "satisfiable", "1.500"}, toRecord(result))
}

func TestResultName(t *testing.T) {
	assert.Equal(t, "satisfiable", resultName(true))
	assert.Equal(t, "unsatisfiable", resultName(false))
}
