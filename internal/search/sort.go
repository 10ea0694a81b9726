package search

import "sort"

// SortResults orders results by prefix flag, then score (both descending).
// Equal results keep their input order, which is catalog order.
func SortResults(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Prefix != results[j].Prefix {
			return results[i].Prefix
		}
		return results[i].Score > results[j].Score
	})
}
