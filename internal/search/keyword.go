package search

import "strings"

// substringHits returns the positions whose lowercase name + keywords text
// contains queryLower, in catalog order.
func substringHits(idx *Index, queryLower string) []int {
	var hits []int
	for i, text := range idx.textsLower {
		if strings.Contains(text, queryLower) {
			hits = append(hits, i)
		}
	}
	return hits
}
