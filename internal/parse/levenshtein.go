package parse

// Distance computes the classic Levenshtein edit distance between two strings
// with unit-cost insertions, deletions and substitutions. Inputs are compared
// as-is; callers lowercase beforehand when they want case-insensitive results.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(rb)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(ra)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(ra); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(rb); i++ {
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min3(
					matrix[i-1][j-1]+1,
					matrix[i][j-1]+1,
					matrix[i-1][j]+1,
				)
			}
		}
	}
	return matrix[len(rb)][len(ra)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
