package sat

import "slices"

// assign rewrites the formula in place under the assumption that variable
// takes the given truth value. Clauses containing the literal made true are
// removed; every occurrence of the literal made false is deleted from the
// clauses that remain. Removal swaps the victim with the last element and
// truncates, so clause and literal order are not preserved.
//
// Simplification dominates the solver's run time, so the loops reuse the
// existing storage and allocate nothing.
func (formula *Formula) assign(variable int, truth bool) {
	truthy := Var(variable)
	if !truth {
		truthy = Not(variable)
	}
	falsey := truthy.Negation()

	clauses := *formula
	for i := 0; i < len(clauses); {
		if slices.Contains(clauses[i], truthy) {
			clauses[i] = clauses[len(clauses)-1]
			clauses = clauses[:len(clauses)-1]
			continue
		}

		clause := clauses[i]
		for j := 0; j < len(clause); {
			if clause[j] == falsey {
				clause[j] = clause[len(clause)-1]
				clause = clause[:len(clause)-1]
				continue
			}
			j++
		}
		clauses[i] = clause
		i++
	}
	*formula = clauses
}
