package dimacs

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/snsinfu/dpll-sat/pkg/sat"
)

// FormatAssignment renders an assignment as 1-based signed integers in
// increasing variable order, separated by single spaces: "1 -2 3 -4". An
// empty assignment yields an empty string.
func FormatAssignment(assignment sat.Assignment) string {
	tokens := lo.Map(assignment, func(truth bool, index int) string {
		if truth {
			return strconv.Itoa(index + 1)
		}
		return strconv.Itoa(-(index + 1))
	})
	return strings.Join(tokens, " ")
}
