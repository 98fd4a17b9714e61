package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/snsinfu/dpll-sat/pkg/sat"
)

// Errors reported by Decode. Decode may wrap them with token context, so
// match with errors.Is.
var (
	ErrNoHeader      = errors.New("missing cnf header")
	ErrBadHeader     = errors.New("malformed cnf header")
	ErrBadClause     = errors.New("malformed clause")
	ErrVariableRange = errors.New("variable out of declared range")
	ErrClauseCount   = errors.New("clause count mismatch")
)

// header carries the counts declared by the "p cnf" line.
type header struct {
	variables int
	clauses   int
}

// Decode parses DIMACS CNF text into a formula. Input literals are 1-based
// signed integers; the resulting formula uses 0-based variable indices.
// Lines starting with "c" and blank lines are skipped. A trailing run of
// literals missing its 0 terminator is dropped.
func Decode(r io.Reader) (sat.Formula, error) {
	scanner := bufio.NewScanner(r)

	head, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}
	return parseClauses(scanner, head)
}

func parseHeader(scanner *bufio.Scanner) (header, error) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] != "p" {
			return header{}, ErrNoHeader
		}
		if len(fields) != 4 || fields[1] != "cnf" {
			return header{}, ErrBadHeader
		}

		variables, err := strconv.Atoi(fields[2])
		if err != nil || variables < 0 {
			return header{}, fmt.Errorf("invalid variable count %q: %w", fields[2], ErrBadHeader)
		}
		clauses, err := strconv.Atoi(fields[3])
		if err != nil || clauses < 0 {
			return header{}, fmt.Errorf("invalid clause count %q: %w", fields[3], ErrBadHeader)
		}
		return header{variables: variables, clauses: clauses}, nil
	}

	if err := scanner.Err(); err != nil {
		return header{}, fmt.Errorf("reading header: %w", err)
	}
	return header{}, ErrNoHeader
}

func parseClauses(scanner *bufio.Scanner, head header) (sat.Formula, error) {
	// The declared count is untrusted, so preallocation is capped.
	formula := make(sat.Formula, 0, min(head.clauses, 65536))
	clause := sat.Clause{}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}

		for _, token := range strings.Fields(line) {
			value, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %w", token, ErrBadClause)
			}

			// 0 terminates the clause under construction.
			if value == 0 {
				formula = append(formula, clause)
				clause = sat.Clause{}
				continue
			}

			index := value - 1
			negated := false
			if value < 0 {
				index = -value - 1
				negated = true
			}
			if index >= head.variables {
				return nil, fmt.Errorf("literal %v exceeds %v declared variables: %w", value, head.variables, ErrVariableRange)
			}
			clause = append(clause, sat.Literal{Index: index, Negated: negated})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading clauses: %w", err)
	}

	if len(formula) != head.clauses {
		return nil, fmt.Errorf("declared %v clauses, found %v: %w", head.clauses, len(formula), ErrClauseCount)
	}
	return formula, nil
}
