package cmd

import (
	"fmt"

	"github.com/HotpotSnowguy/yeet/internal/apps"
	"github.com/HotpotSnowguy/yeet/internal/config"
	"github.com/HotpotSnowguy/yeet/internal/search"
)

// session is the loaded config plus the catalog and index derived from it.
type session struct {
	cfg     *config.Config
	catalog *apps.Catalog
	index   *search.Index
	matcher search.Matcher
}

// loadSession reads the config named by --config and discovers applications.
func loadSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'yeet doctor' to check your setup.", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config:\n%w", err)
	}
	cat := apps.BuildCatalog(cfg.CatalogOptions(debugf))
	debugf("catalog built: %d application(s)", cat.Len())
	return newSession(cfg, cat), nil
}

func newSession(cfg *config.Config, cat *apps.Catalog) *session {
	return &session{
		cfg:     cfg,
		catalog: cat,
		index:   search.NewIndex(cat),
		matcher: search.NewFzfMatcher(),
	}
}

func (s *session) rank(query string) ([]search.SearchResult, search.Mode) {
	return search.RankResults(s.index, query, s.cfg.SearchConfig(), s.matcher)
}

// top returns the best match for query.
func (s *session) top(query string) (apps.Application, error) {
	results, _ := s.rank(query)
	if len(results) == 0 {
		return apps.Application{}, fmt.Errorf("no application matches %q", query)
	}
	return s.catalog.At(results[0].Index), nil
}
