package suggest

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-rune insertions, deletions and substitutions transforming one
// into the other. Distance to the empty string is the other string's length.
//
// Uses the classic DP with a single rolling row, so memory is O(min(a,b)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	// Let ra be the shorter string.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		prev := row[0]
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			sub := prev
			if ra[i-1] != rb[j-1] {
				sub++
			}
			del := row[i] + 1
			ins := row[i-1] + 1

			k := sub
			if del < k {
				k = del
			}
			if ins < k {
				k = ins
			}
			prev, row[i] = row[i], k
		}
	}
	return row[len(ra)]
}
