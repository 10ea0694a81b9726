package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rank returns catalog positions for query, best first. See RankResults.
func Rank(idx *Index, query string, cfg Config, m Matcher) []int {
	results, _ := RankResults(idx, query, cfg, m)
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Index
	}
	return out
}

// RankResults ranks the index against query.
//
// An empty query returns the first InitialResults entries in catalog order.
// A query of two or more runes that occurs literally in some entry's name +
// keywords text restricts the candidates to those entries. Otherwise every
// entry is scored by m and non-matches are dropped; for queries of two or more
// runes the survivors must also reach MinScore and best*ScoreThreshold.
// Results never exceed MaxResults (when positive).
func RankResults(idx *Index, query string, cfg Config, m Matcher) ([]SearchResult, Mode) {
	query = strings.TrimSpace(query)
	queryLen := utf8.RuneCountInString(query)

	if queryLen == 0 {
		n := clampLimit(cfg.InitialResults, idx.Len())
		if cfg.MaxResults > 0 && n > cfg.MaxResults {
			n = cfg.MaxResults
		}
		out := make([]SearchResult, n)
		for i := range out {
			out[i] = SearchResult{Index: i}
		}
		return out, ModeBrowse
	}

	queryLower := cases.Lower(language.Und).String(query)
	prefix := func(i int) bool {
		return cfg.PreferPrefix && strings.HasPrefix(idx.names[i], queryLower)
	}

	var hits []int
	if queryLen >= 2 {
		hits = substringHits(idx, queryLower)
	}

	var (
		results []SearchResult
		mode    Mode
	)
	if len(hits) > 0 {
		mode = ModeSubstring
		results = make([]SearchResult, 0, len(hits))
		for _, i := range hits {
			score, _ := m.Score(idx.texts[i], query)
			results = append(results, SearchResult{Index: i, Score: score, Prefix: prefix(i)})
		}
	} else {
		mode = ModeFuzzy
		for i, text := range idx.texts {
			score, ok := m.Score(text, query)
			if !ok {
				continue
			}
			results = append(results, SearchResult{Index: i, Score: score, Prefix: prefix(i)})
		}
	}

	SortResults(results)

	if mode == ModeFuzzy && queryLen >= 2 {
		results = applyScoreFloor(results, cfg)
	}

	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results, mode
}

// applyScoreFloor drops results under MinScore, then under best*threshold
// where best is the highest surviving score. The cutoff truncates toward zero.
func applyScoreFloor(results []SearchResult, cfg Config) []SearchResult {
	kept := results[:0]
	for _, r := range results {
		if r.Score >= cfg.MinScore {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return kept
	}

	threshold := cfg.ScoreThreshold
	if threshold < 0 {
		threshold = 0
	} else if threshold > 1 {
		threshold = 1
	}
	best := kept[0].Score
	for _, r := range kept[1:] {
		if r.Score > best {
			best = r.Score
		}
	}
	cutoff := int(float64(best) * threshold)

	out := kept[:0]
	for _, r := range kept {
		if r.Score >= cutoff {
			out = append(out, r)
		}
	}
	return out
}

func clampLimit(limit, n int) int {
	if limit < 0 {
		return 0
	}
	if limit > n {
		return n
	}
	return limit
}
