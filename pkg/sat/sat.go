package sat

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Literal is a propositional variable with a polarity. The zero value is
// the positive literal of variable 0.
type Literal struct {
	Index   int
	Negated bool
}

// Var returns the positive literal of the given variable.
func Var(index int) Literal {
	return Literal{Index: index}
}

// Not returns the negated literal of the given variable.
func Not(index int) Literal {
	return Literal{Index: index, Negated: true}
}

// Negation returns the literal of the same variable with opposite polarity.
func (literal Literal) Negation() Literal {
	literal.Negated = !literal.Negated
	return literal
}

// Satisfied reports whether the literal holds under the given assignment.
// The assignment must cover the literal's variable.
func (literal Literal) Satisfied(assignment Assignment) bool {
	return assignment[literal.Index] != literal.Negated
}

// String renders the literal as a 1-based signed integer, DIMACS style.
func (literal Literal) String() string {
	if literal.Negated {
		return strconv.Itoa(-(literal.Index + 1))
	}
	return strconv.Itoa(literal.Index + 1)
}

// Clause is a disjunction of literals. An empty clause is unsatisfiable.
// Duplicate literals are allowed and never deduplicated.
type Clause []Literal

// Formula is a conjunction of clauses. An empty formula is trivially
// satisfiable. The order of clauses carries no logical meaning.
type Formula []Clause

// Assignment holds one truth value per variable, indexed by variable.
type Assignment []bool

// NumVariables returns one more than the largest variable index referenced
// by the formula. A formula referencing no variables yields 0.
func (formula Formula) NumVariables() int {
	variables := 0
	for _, clause := range formula {
		for _, literal := range clause {
			if literal.Index+1 > variables {
				variables = literal.Index + 1
			}
		}
	}
	return variables
}

// Clone returns a deep copy sharing no clause storage with the original.
func (formula Formula) Clone() Formula {
	clone := make(Formula, len(formula))
	for i, clause := range formula {
		clone[i] = slices.Clone(clause)
	}
	return clone
}

// ToDIMACS serializes the formula in DIMACS CNF format.
func (formula Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", formula.NumVariables(), len(formula))
	for _, clause := range formula {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%v ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
