package match

// Levenshtein returns the number of single-rune insertions, deletions and
// substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// row[i] is the distance between ra[:i] and the prefix of rb seen so far.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			subst := diag
			if ca != cb {
				subst++
			}

			diag = row[i+1]
			row[i+1] = min(row[i+1]+1, row[i]+1, subst)
		}
	}

	return row[len(ra)]
}

// ratio scales the edit distance into a similarity in [0, 1], where 1 means
// equal strings.
func ratio(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Similarity compares two identifiers after NormalizeIdent, so "mut_" and
// "Mut" score 1.
func Similarity(a, b string) float64 {
	return ratio(NormalizeIdent(a), NormalizeIdent(b))
}
