package sat

import "github.com/samber/lo"

// propagateUnits repeatedly takes the first unit clause in formula order,
// records its forced truth value in onto, and simplifies the formula under
// it, until no unit clause remains. Entries written while exploring a
// branch that later fails are not rolled back.
func (formula *Formula) propagateUnits(onto Assignment) {
	for {
		unit, found := lo.Find(*formula, func(clause Clause) bool { return len(clause) == 1 })
		if !found {
			return
		}

		literal := unit[0]
		onto[literal.Index] = !literal.Negated
		formula.assign(literal.Index, !literal.Negated)
	}
}
