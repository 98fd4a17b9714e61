package dimacs

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/snsinfu/dpll-sat/pkg/sat"
)

func TestFormatAssignment(t *testing.T) {
	g := NewWithT(t)

	g.Expect(FormatAssignment(sat.Assignment{true, false, true, false})).To(Equal("1 -2 3 -4"))
	g.Expect(FormatAssignment(sat.Assignment{false})).To(Equal("-1"))
	g.Expect(FormatAssignment(sat.Assignment{})).To(BeEmpty())
}
