package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominantVariable(t *testing.T) {
	t.Run("picks the most frequent variable", func(t *testing.T) {
		formula := Formula{
			{Var(0), Var(1), Var(2)},
			{Not(0), Var(1)},
			{Not(1), Var(2)},
			{Var(0), Not(1), Not(2)},
		}
		assert.Equal(t, 1, formula.dominantVariable(3))
	})

	t.Run("breaks ties toward the lowest index", func(t *testing.T) {
		formula := Formula{{Var(0), Var(1)}}
		assert.Equal(t, 0, formula.dominantVariable(2))
	})

	t.Run("counts repeated occurrences within a clause", func(t *testing.T) {
		formula := Formula{{Var(1), Var(1)}, {Var(0)}}
		assert.Equal(t, 1, formula.dominantVariable(2))
	})

	t.Run("defaults to variable 0 when no literal occurs", func(t *testing.T) {
		assert.Equal(t, 0, Formula{}.dominantVariable(4))
	})
}
