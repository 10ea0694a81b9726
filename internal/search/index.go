package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HotpotSnowguy/yeet/internal/apps"
)

// Index holds per-entry text derived from a Catalog so that ranking does no
// allocation-heavy string work per keystroke. Positions match the catalog.
// Build a new Index whenever the catalog is rebuilt.
type Index struct {
	names      []string // lowercase display names
	texts      []string // name + keywords, original case
	textsLower []string // name + keywords, lowercase
}

// NewIndex derives the search text for every catalog entry.
func NewIndex(c *apps.Catalog) *Index {
	n := c.Len()
	idx := &Index{
		names:      make([]string, n),
		texts:      make([]string, n),
		textsLower: make([]string, n),
	}
	lower := cases.Lower(language.Und)
	for i := 0; i < n; i++ {
		a := c.At(i)
		idx.names[i] = lower.String(a.Name)
		idx.texts[i] = a.SearchText()
		idx.textsLower[i] = lower.String(idx.texts[i])
	}
	return idx
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.names)
}
