package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"

	"github.com/snsinfu/dpll-sat/internal/bench"
	"github.com/snsinfu/dpll-sat/pkg/sat"
)

type BenchmarkResult struct {
	Case        bench.Case
	Instance    int
	Satisfiable bool
	Duration    time.Duration
}

func main() {
	configPtr := flag.String("config", "", "Path to a JSON suite configuration; if empty, a built-in suite is used")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where results will be written")
	dumpPtr := flag.String("dump", "", "Directory where generated instances are kept as DIMACS files; if empty, instances are discarded")
	flag.Parse()

	suite := bench.Default()
	if *configPtr != "" {
		var err error
		suite, err = bench.SuiteFromJson(*configPtr)
		if err != nil {
			log.Fatalf("cannot load suite configuration: %v", err)
		}
	}

	if *dumpPtr != "" {
		if err := os.MkdirAll(*dumpPtr, 0777); err != nil {
			log.Fatalf("cannot create dump directory: %v", err)
		}
	}

	results := make([]BenchmarkResult, 0, lo.SumBy(suite.Cases, func(benchCase bench.Case) int { return benchCase.Instances }))

	for _, benchCase := range suite.Cases {
		fmt.Printf("Benchmarking %v instances with %v variables, %v clauses, width %v\n", benchCase.Instances, benchCase.Variables, benchCase.Clauses, benchCase.Width)

		for instance := range benchCase.Instances {
			formula := generate(benchCase)

			if *dumpPtr != "" {
				dump(*dumpPtr, benchCase, instance, formula)
			}

			start := time.Now()
			assignment, satisfiable := sat.CheckSat(formula)
			duration := time.Since(start)

			if satisfiable && !sat.Verify(formula, assignment) {
				log.Fatalf("solver returned a non-satisfying assignment for:\n%v", formula.ToDIMACS())
			}

			results = append(results, BenchmarkResult{
				Case:        benchCase,
				Instance:    instance,
				Satisfiable: satisfiable,
				Duration:    duration,
			})
		}
	}

	toCsv(results, *outPtr)

	satisfied := lo.CountBy(results, func(result BenchmarkResult) bool { return result.Satisfiable })
	fmt.Printf("Solved %v instances (%v satisfiable, %v unsatisfiable)\n", len(results), satisfied, len(results)-satisfied)
}

func generate(benchCase bench.Case) sat.Formula {
	if benchCase.Width > 0 {
		return sat.GenerateUniformFormula(benchCase.Variables, benchCase.Clauses, benchCase.Width)
	}
	return sat.GenerateFormula(benchCase.Variables, benchCase.Clauses)
}

func dump(directory string, benchCase bench.Case, instance int, formula sat.Formula) {
	name := fmt.Sprintf("v%d_c%d_w%d_%03d.cnf", benchCase.Variables, benchCase.Clauses, benchCase.Width, instance)
	if err := os.WriteFile(filepath.Join(directory, name), []byte(formula.ToDIMACS()), 0666); err != nil {
		log.Fatalf("cannot write instance file: %v", err)
	}
}

func toCsv(results []BenchmarkResult, file string) {
	out, err := os.Create(file)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"Variables", "Clauses", "Width", "Instance", "Result", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		fmt.Sprintf("%d", result.Case.Variables),
		fmt.Sprintf("%d", result.Case.Clauses),
		fmt.Sprintf("%d", result.Case.Width),
		fmt.Sprintf("%d", result.Instance),
		resultName(result.Satisfiable),
		fmt.Sprintf("%.3f", durationMillis(result.Duration)),
	}
}

func resultName(satisfiable bool) string {
	if satisfiable {
		return "satisfiable"
	}
	return "unsatisfiable"
}

func durationMillis(duration time.Duration) float64 {
	return float64(duration.Microseconds()) / 1000
}
