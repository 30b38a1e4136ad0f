package naming

// Distance computes the Levenshtein distance between two strings, counted
// in runes: the minimum number of single-rune insertions, deletions or
// substitutions turning one into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep ra the shorter one, two rows of len(ra)+1 are enough.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similar reports whether two distinct keys probably name the same thing:
// they normalize to the same form ("user_id" and "userID") or their
// normalized forms are one edit apart and long enough for that to matter.
func Similar(a, b string) bool {
	if a == b {
		return false
	}

	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}

	return min(len(na), len(nb)) >= 4 && Distance(na, nb) == 1
}
