package search

import (
	"strings"
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Matcher scores how well query fuzzily matches text. ok is false when the
// query does not match at all. Higher scores are better.
type Matcher interface {
	Score(text, query string) (score int, ok bool)
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(text, query string) (int, bool)

// Score calls f.
func (f MatcherFunc) Score(text, query string) (int, bool) { return f(text, query) }

var fzfInit sync.Once

// FzfMatcher scores with fzf's v2 algorithm using smart case: the match is
// case-insensitive unless the query contains an upper-case letter.
// It reuses a scratch buffer and is not safe for concurrent use.
type FzfMatcher struct {
	slab *util.Slab
}

// NewFzfMatcher returns a ready FzfMatcher.
func NewFzfMatcher() *FzfMatcher {
	fzfInit.Do(func() { algo.Init("default") })
	return &FzfMatcher{slab: util.MakeSlab(100*1024, 2048)}
}

// Score implements Matcher.
func (m *FzfMatcher) Score(text, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	caseSensitive := strings.IndexFunc(query, unicode.IsUpper) >= 0
	pattern := []rune(query)
	if !caseSensitive {
		pattern = []rune(strings.ToLower(query))
	}
	chars := util.ToChars([]byte(text))
	res, _ := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, false, m.slab)
	if res.Start < 0 {
		return 0, false
	}
	return res.Score, true
}
