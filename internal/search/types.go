package search

// Config controls how Rank filters and orders matches.
type Config struct {
	// InitialResults is how many catalog entries to show for an empty query.
	InitialResults int
	// MaxResults caps every ranked result.
	MaxResults int
	// MinScore is the absolute floor for fuzzy matches (queries of 2+ runes).
	MinScore int
	// ScoreThreshold drops fuzzy matches below best*threshold (queries of 2+ runes).
	ScoreThreshold float64
	// PreferPrefix pins entries whose name starts with the query ahead of the rest.
	PreferPrefix bool
}

// Mode reports which tier produced a ranking.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSubstring
	ModeFuzzy
)

func (m Mode) String() string {
	switch m {
	case ModeSubstring:
		return "substring"
	case ModeFuzzy:
		return "fuzzy"
	default:
		return "browse"
	}
}

// SearchResult is one ranked catalog position.
type SearchResult struct {
	Index  int
	Score  int
	Prefix bool
}
