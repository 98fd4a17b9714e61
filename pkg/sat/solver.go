package sat

import "github.com/samber/lo"

// CheckSat decides the satisfiability of the formula. It returns a
// satisfying assignment and true when one exists, or nil and false
// otherwise. The assignment covers variables 0 through NumVariables()-1;
// variables the formula never constrains keep the false default. The input
// formula is left untouched.
func CheckSat(formula Formula) (Assignment, bool) {
	assignment := make(Assignment, formula.NumVariables())
	if !dpll(formula, assignment) {
		return nil, false
	}
	return assignment, true
}

// dpll runs one level of the Davis-Putnam-Logemann-Loveland search. Each
// level owns a private copy of the formula, so sibling branches never see
// each other's simplifications; the assignment buffer is shared along the
// whole search path.
func dpll(formula Formula, assignment Assignment) bool {
	work := formula.Clone()
	work.propagateUnits(assignment)

	if len(work) == 0 {
		return true
	}
	if lo.SomeBy(work, func(clause Clause) bool { return len(clause) == 0 }) {
		return false
	}

	// Branch on the most frequent variable, trying true before false. The
	// synthetic unit clause makes the next propagation record the choice.
	variable := work.dominantVariable(len(assignment))
	work = append(work, Clause{Var(variable)})
	if dpll(work, assignment) {
		return true
	}
	work[len(work)-1] = Clause{Not(variable)}
	return dpll(work, assignment)
}
