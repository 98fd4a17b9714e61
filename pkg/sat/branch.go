package sat

// dominantVariable returns the variable with the most occurrences in the
// formula, counting a variable once per occurrence even within a single
// clause. Ties go to the lowest index; a formula with no literals yields 0.
func (formula Formula) dominantVariable(numVariables int) int {
	frequencies := make([]int, numVariables)
	for _, clause := range formula {
		for _, literal := range clause {
			frequencies[literal.Index]++
		}
	}

	dominant := 0
	maxFrequency := 0
	for variable, frequency := range frequencies {
		if frequency > maxFrequency {
			dominant = variable
			maxFrequency = frequency
		}
	}

	return dominant
}
