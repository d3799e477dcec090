package frauddetection

// stringSimilarity returns a similarity value in [0, 1] based on normalized
// Levenshtein distance: (len(longer) - distance) / len(longer). Either input
// being empty yields 0.0. Callers normalize case before calling.
func stringSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	longer, shorter := a, b
	if len([]rune(b)) > len([]rune(a)) {
		longer, shorter = b, a
	}

	longerLen := len([]rune(longer))
	if longerLen == 0 {
		return 1.0
	}

	distance := levenshteinDistance(longer, shorter)
	return float64(longerLen-distance) / float64(longerLen)
}

// levenshteinDistance computes the classic edit distance (unit-cost insert,
// delete, substitute) between a and b over runes, using the full DP table.
func levenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
	}

	for i := 0; i <= len(ra); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
			} else {
				matrix[i][j] = min(
					matrix[i-1][j]+1,
					matrix[i][j-1]+1,
					matrix[i-1][j-1]+1,
				)
			}
		}
	}

	return matrix[len(ra)][len(rb)]
}
