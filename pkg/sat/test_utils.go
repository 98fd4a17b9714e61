package sat

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// GenerateFormula returns a random formula over the given number of
// variables. Each clause includes each variable with probability 1/2 and
// negates it with probability 1/2; a clause that comes out empty receives
// one random literal, so generated formulas never contain empty clauses.
func GenerateFormula(variables, clauses int) Formula {
	formula := make(Formula, clauses)

	for i := range clauses {
		formula[i] = make(Clause, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.5 {
				formula[i] = append(formula[i], Literal{Index: j, Negated: rand.Float32() < 0.5})
			}
		}

		if len(formula[i]) == 0 {
			formula[i] = append(formula[i], Literal{Index: rand.IntN(variables), Negated: rand.Float32() < 0.5})
		}
	}

	return formula
}

// GenerateUniformFormula returns a random formula whose clauses all hold
// exactly width literals. Variables are drawn uniformly with replacement,
// so a clause may mention the same variable more than once.
func GenerateUniformFormula(variables, clauses, width int) Formula {
	formula := make(Formula, clauses)

	for i := range clauses {
		clause := make(Clause, width)
		for j := range width {
			clause[j] = Literal{Index: rand.IntN(variables), Negated: rand.Float32() < 0.5}
		}
		formula[i] = clause
	}

	return formula
}

// Verify reports whether the assignment satisfies every clause of the
// formula.
func Verify(formula Formula, assignment Assignment) bool {
	return lo.EveryBy(formula, func(clause Clause) bool {
		return lo.SomeBy(clause, func(literal Literal) bool { return literal.Satisfied(assignment) })
	})
}
