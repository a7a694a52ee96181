package catalog

import "sort"

// CategoryCount is the number of records filed under one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Summarize counts records per category, largest first. Ties are broken
// by category name so the report is stable between runs.
func Summarize(tools []Tool) []CategoryCount {
	counts := make(map[string]int)
	for _, t := range tools {
		counts[t.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Top returns at most n entries of counts. A non-positive n returns all.
func Top(counts []CategoryCount, n int) []CategoryCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}
