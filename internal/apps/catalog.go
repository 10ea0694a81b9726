package apps

import (
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HotpotSnowguy/yeet/internal/desktop"
)

// DiscoveryError describes a desktop entry that could not be read. It is
// reported through Options.Logf and the entry is skipped.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("cannot load desktop entry %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// Options is everything BuildCatalog needs.
type Options struct {
	// Sources are scanned in order. Use desktop.DefaultDirs plus any extras.
	Sources []string
	Custom  []CustomApp
	// Exclude and Favorites hold exact display names.
	Exclude   []string
	Favorites []string
	// Locale for Name/Comment/Keywords; desktop.DefaultLocale when empty.
	Locale string
	// Logf receives skipped-entry diagnostics. May be nil.
	Logf func(format string, args ...any)
}

// Catalog is the ordered, read-only list of launchable applications.
type Catalog struct {
	apps []Application
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.apps)
}

// At returns the entry at catalog position i.
func (c *Catalog) At(i int) Application {
	return c.apps[i]
}

// All returns a copy of the entries in catalog order.
func (c *Catalog) All() []Application {
	if c == nil {
		return nil
	}
	return append([]Application(nil), c.apps...)
}

// Sources returns the default application directories followed by extra,
// skipping repeats of the same cleaned path.
func Sources(extra []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range append(desktop.DefaultDirs(), extra...) {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// BuildCatalog discovers desktop entries, appends custom entries and orders
// the result: favorites first, then by case-insensitive name. Ties keep
// discovery order.
func BuildCatalog(opts Options) *Catalog {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	locale := opts.Locale
	if locale == "" {
		locale = desktop.DefaultLocale
	}
	exclude := toSet(opts.Exclude)

	var list []Application
	files := desktop.Files(opts.Sources, func(path string, err error) {
		logf("%v", &DiscoveryError{Path: path, Err: err})
	})
	for _, path := range files {
		entry, err := desktop.ParseFile(path, locale)
		if err != nil {
			logf("%v", &DiscoveryError{Path: path, Err: err})
			continue
		}
		app, ok := fromEntry(entry)
		if !ok {
			continue
		}
		if _, skip := exclude[app.Name]; skip {
			logf("excluded %q (%s)", app.Name, path)
			continue
		}
		list = append(list, app)
	}

	for _, c := range opts.Custom {
		if c.Name == "" || c.Exec == "" {
			logf("skipping custom app with empty name or exec: %+v", c)
			continue
		}
		if _, skip := exclude[c.Name]; skip {
			continue
		}
		list = append(list, c.application())
	}

	sortApps(list, toSet(opts.Favorites))
	return &Catalog{apps: list}
}

// fromEntry maps a parsed entry to an Application; entries that are hidden
// or lack a name or command are rejected.
func fromEntry(e *desktop.Entry) (Application, bool) {
	if e.NoDisplay || e.Hidden {
		return Application{}, false
	}
	if e.Exec == "" || e.Name == "" {
		return Application{}, false
	}
	return Application{
		Name:        e.Name,
		Exec:        e.Exec,
		Icon:        e.Icon,
		Description: e.Comment,
		Keywords:    e.Keywords,
		Terminal:    e.Terminal,
	}, true
}

func sortApps(list []Application, favorites map[string]struct{}) {
	lower := cases.Lower(language.Und)
	keys := make([]string, len(list))
	favs := make([]bool, len(list))
	for i, a := range list {
		keys[i] = lower.String(a.Name)
		_, favs[i] = favorites[a.Name]
	}

	idx := make([]int, len(list))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if favs[a] != favs[b] {
			return favs[a]
		}
		return keys[a] < keys[b]
	})

	sorted := make([]Application, len(list))
	for i, k := range idx {
		sorted[i] = list[k]
	}
	copy(list, sorted)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
