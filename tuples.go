package mf2lint

// CategoryTuples returns every ordered tuple of length n drawn with
// repetition from categories, in odometer order with the last position
// varying fastest. Repeated input categories are collapsed first, so the
// result holds exactly len(unique)^n distinct tuples. n <= 0 yields nil.
func CategoryTuples(n int, categories []PluralCategory) [][]PluralCategory {
	unique := dedupCategories(categories)
	if n <= 0 || len(unique) == 0 {
		return nil
	}

	total := 1
	for range n {
		total *= len(unique)
	}

	tuples := make([][]PluralCategory, 0, total)
	counters := make([]int, n)
	for {
		tuple := make([]PluralCategory, n)
		for pos, idx := range counters {
			tuple[pos] = unique[idx]
		}
		tuples = append(tuples, tuple)

		pos := n - 1
		for pos >= 0 {
			counters[pos]++
			if counters[pos] < len(unique) {
				break
			}
			counters[pos] = 0
			pos--
		}
		if pos < 0 {
			return tuples
		}
	}
}

func allOther(tuple []PluralCategory) bool {
	for _, category := range tuple {
		if category != PluralOther {
			return false
		}
	}
	return true
}
