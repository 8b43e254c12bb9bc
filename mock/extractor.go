package mock

import "github.com/malippew/xivchar"

var _ xivchar.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of xivchar.Extractor.
type Extractor struct {
	ExtractSearchFn func(html string, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error)
	ExtractDetailFn func(html string, id string) (*xivchar.CharacterDetail, error)
	ExtractWorldsFn func(html string) ([]xivchar.Area, error)
}

func (e *Extractor) ExtractSearch(html string, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error) {
	return e.ExtractSearchFn(html, q)
}

func (e *Extractor) ExtractDetail(html string, id string) (*xivchar.CharacterDetail, error) {
	return e.ExtractDetailFn(html, id)
}

func (e *Extractor) ExtractWorlds(html string) ([]xivchar.Area, error) {
	return e.ExtractWorldsFn(html)
}
