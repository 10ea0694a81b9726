package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/HotpotSnowguy/yeet/internal/apps"
)

func catalogOf(t *testing.T, list ...apps.Application) *apps.Catalog {
	t.Helper()
	custom := make([]apps.CustomApp, 0, len(list))
	for _, a := range list {
		custom = append(custom, apps.CustomApp{Name: a.Name, Exec: "true", Keywords: a.Keywords})
	}
	return apps.BuildCatalog(apps.Options{Custom: custom})
}

// tableMatcher scores by exact text lookup, ignoring the query.
func tableMatcher(scores map[string]int) Matcher {
	return MatcherFunc(func(text, _ string) (int, bool) {
		s, ok := scores[text]
		return s, ok
	})
}

// subsequenceMatcher is a tiny case-insensitive subsequence matcher scoring
// 10 per matched rune minus the number of skipped runes.
var subsequenceMatcher = MatcherFunc(func(text, query string) (int, bool) {
	t := []rune(strings.ToLower(text))
	q := []rune(strings.ToLower(query))
	score, ti := 0, 0
	for _, qc := range q {
		found := false
		for ; ti < len(t); ti++ {
			if t[ti] == qc {
				score += 10
				ti++
				found = true
				break
			}
			score--
		}
		if !found {
			return 0, false
		}
	}
	return score, true
})

var defaultCfg = Config{
	InitialResults: 3,
	MaxResults:     5,
	MinScore:       0,
	ScoreThreshold: 0,
	PreferPrefix:   true,
}

func TestRank_EmptyQueryReturnsCatalogPrefix(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Alpha"}, apps.Application{Name: "Beta"},
		apps.Application{Name: "Gamma"}, apps.Application{Name: "Delta"},
	)
	idx := NewIndex(cat)

	called := false
	m := MatcherFunc(func(string, string) (int, bool) { called = true; return 0, true })

	for _, q := range []string{"", "   "} {
		got, mode := RankResults(idx, q, defaultCfg, m)
		if mode != ModeBrowse {
			t.Errorf("mode = %v, want browse", mode)
		}
		if diff := cmp.Diff([]int{0, 1, 2}, Rank(idx, q, defaultCfg, m)); diff != "" {
			t.Errorf("query %q mismatch (-want +got):\n%s", q, diff)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	}
	if called {
		t.Error("matcher must not be called for an empty query")
	}
}

func TestRank_EmptyQueryBounds(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "Alpha"}, apps.Application{Name: "Beta"})
	idx := NewIndex(cat)

	cfg := defaultCfg
	cfg.InitialResults = 10
	if diff := cmp.Diff([]int{0, 1}, Rank(idx, "", cfg, subsequenceMatcher)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	cfg.InitialResults = 0
	if got := Rank(idx, "", cfg, subsequenceMatcher); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}

func TestRank_SubstringDominatesFuzzy(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Firefox", Keywords: []string{"web", "browser"}},
		apps.Application{Name: "GIMP", Keywords: []string{"image", "editor"}},
		apps.Application{Name: "File Roller", Keywords: []string{"archive"}},
		apps.Application{Name: "Wireshark"},
	)
	idx := NewIndex(cat)

	got, mode := RankResults(idx, "fire", defaultCfg, subsequenceMatcher)
	if mode != ModeSubstring {
		t.Fatalf("mode = %v, want substring", mode)
	}
	if len(got) != 1 || cat.At(got[0].Index).Name != "Firefox" {
		t.Fatalf("expected only Firefox, got %+v", got)
	}
}

func TestRank_SubstringResultsAllContainQuery(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Visual Studio Code", Keywords: []string{"editor", "ide"}},
		apps.Application{Name: "Gedit", Keywords: []string{"text", "editor"}},
		apps.Application{Name: "Vim"},
		apps.Application{Name: "Emacs", Keywords: []string{"EDITOR"}},
		apps.Application{Name: "Detailed Viewer"},
	)
	idx := NewIndex(cat)

	got := Rank(idx, "Edit", defaultCfg, subsequenceMatcher)
	if len(got) != 3 {
		t.Fatalf("expected 3 substring hits, got %v", got)
	}
	for _, i := range got {
		if !strings.Contains(strings.ToLower(idx.texts[i]), "edit") {
			t.Errorf("result %q does not contain the query", idx.texts[i])
		}
	}
}

func TestRank_SubstringModeNotFiltered(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "Terminal"}, apps.Application{Name: "xterm"})
	idx := NewIndex(cat)

	cfg := defaultCfg
	cfg.MinScore = 1000
	cfg.ScoreThreshold = 1

	m := tableMatcher(map[string]int{"Terminal": 5})
	got := Rank(idx, "term", cfg, m)
	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_PrefixPinnedAheadOfHigherScores(t *testing.T) {
	// Catalog order: Neovim (0), Vim (1).
	cat := catalogOf(t, apps.Application{Name: "Vim"}, apps.Application{Name: "Neovim"})
	idx := NewIndex(cat)
	m := tableMatcher(map[string]int{"Vim": 10, "Neovim": 90})

	if diff := cmp.Diff([]int{1, 0}, Rank(idx, "vi", defaultCfg, m)); diff != "" {
		t.Errorf("prefer_prefix mismatch (-want +got):\n%s", diff)
	}

	cfg := defaultCfg
	cfg.PreferPrefix = false
	if diff := cmp.Diff([]int{0, 1}, Rank(idx, "vi", cfg, m)); diff != "" {
		t.Errorf("no prefix preference mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Aa Tool"}, apps.Application{Name: "Bb Tool"}, apps.Application{Name: "Cc Tool"},
	)
	idx := NewIndex(cat)
	m := MatcherFunc(func(string, string) (int, bool) { return 7, true })

	if diff := cmp.Diff([]int{0, 1, 2}, Rank(idx, "tool", defaultCfg, m)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_FuzzyFallbackFilters(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Firefox"},
		apps.Application{Name: "Files"},
		apps.Application{Name: "Fractal"},
		apps.Application{Name: "Inkscape"},
	)
	idx := NewIndex(cat)
	m := tableMatcher(map[string]int{"Firefox": 80, "Files": 41, "Fractal": 39, "Inkscape": 15})

	cfg := defaultCfg
	cfg.MinScore = 20
	cfg.ScoreThreshold = 0.5

	got, mode := RankResults(idx, "ffx", cfg, m)
	if mode != ModeFuzzy {
		t.Fatalf("mode = %v, want fuzzy", mode)
	}
	// Catalog order: Files, Firefox, Fractal, Inkscape.
	want := []SearchResult{{Index: 1, Score: 80}, {Index: 0, Score: 41}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for _, r := range got {
		if r.Score < cfg.MinScore || r.Score < int(float64(got[0].Score)*cfg.ScoreThreshold) {
			t.Errorf("result %+v below floor", r)
		}
	}
}

func TestRank_CutoffTruncatesTowardZero(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "One"}, apps.Application{Name: "Two"})
	idx := NewIndex(cat)
	// best 9 * 0.5 = 4.5 -> cutoff 4, so a score of 4 survives.
	m := tableMatcher(map[string]int{"One": 9, "Two": 4})

	cfg := defaultCfg
	cfg.ScoreThreshold = 0.5
	if diff := cmp.Diff([]int{0, 1}, Rank(idx, "qq", cfg, m)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_ThresholdIsClamped(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "One"}, apps.Application{Name: "Two"})
	idx := NewIndex(cat)
	m := tableMatcher(map[string]int{"One": 9, "Two": 4})

	cfg := defaultCfg
	cfg.ScoreThreshold = 3
	if diff := cmp.Diff([]int{0}, Rank(idx, "qq", cfg, m)); diff != "" {
		t.Errorf("threshold > 1 mismatch (-want +got):\n%s", diff)
	}
	cfg.ScoreThreshold = -2
	if diff := cmp.Diff([]int{0, 1}, Rank(idx, "qq", cfg, m)); diff != "" {
		t.Errorf("threshold < 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_SingleRuneQueryIsFuzzyAndUnfiltered(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "Firefox"}, apps.Application{Name: "Thunar"}, apps.Application{Name: "Vim"})
	idx := NewIndex(cat)

	cfg := defaultCfg
	cfg.MinScore = 1000

	got, mode := RankResults(idx, "f", cfg, subsequenceMatcher)
	if mode != ModeFuzzy {
		t.Fatalf("mode = %v, want fuzzy", mode)
	}
	if len(got) != 1 || got[0].Index != 0 || !got[0].Prefix {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestRank_NoMatchesIsEmpty(t *testing.T) {
	cat := catalogOf(t, apps.Application{Name: "Firefox"})
	idx := NewIndex(cat)
	got := Rank(idx, "zzz", defaultCfg, subsequenceMatcher)
	if diff := cmp.Diff([]int{}, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_NeverExceedsMaxResults(t *testing.T) {
	var list []apps.Application
	for _, n := range []string{"Tool A", "Tool B", "Tool C", "Tool D", "Tool E", "Tool F", "Tool G"} {
		list = append(list, apps.Application{Name: n})
	}
	idx := NewIndex(catalogOf(t, list...))

	cfg := defaultCfg
	cfg.InitialResults = 7
	cfg.MaxResults = 4
	for _, q := range []string{"", "t", "tool", "tl"} {
		if got := Rank(idx, q, cfg, subsequenceMatcher); len(got) > cfg.MaxResults {
			t.Errorf("query %q returned %d results, max %d", q, len(got), cfg.MaxResults)
		}
	}
}

func TestRank_KeywordsAreSearched(t *testing.T) {
	cat := catalogOf(t,
		apps.Application{Name: "Nautilus", Keywords: []string{"files", "folder"}},
		apps.Application{Name: "Calculator"},
	)
	idx := NewIndex(cat)
	if diff := cmp.Diff([]int{0}, Rank(idx, "calc", defaultCfg, subsequenceMatcher)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, Rank(idx, "folder", defaultCfg, subsequenceMatcher)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSortResults_Stable(t *testing.T) {
	results := []SearchResult{
		{Index: 0, Score: 5},
		{Index: 1, Score: 9},
		{Index: 2, Score: 5, Prefix: true},
		{Index: 3, Score: 9},
		{Index: 4, Score: 1, Prefix: true},
	}
	SortResults(results)
	var order []int
	for _, r := range results {
		order = append(order, r.Index)
	}
	if diff := cmp.Diff([]int{2, 4, 1, 3, 0}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
