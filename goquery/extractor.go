package goquery

import "github.com/malippew/xivchar"

var _ xivchar.Extractor = (*Extractor)(nil)

// Extractor implements xivchar.Extractor for Lodestone pages.
// It holds no per-call state and is safe for concurrent use as long as the
// configured MalformedFunc is.
type Extractor struct {
	origin      string
	onMalformed xivchar.MalformedFunc
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMalformedFunc sets the callback receiving partially extracted entries.
func WithMalformedFunc(fn xivchar.MalformedFunc) Option {
	return func(e *Extractor) {
		e.onMalformed = fn
	}
}

// NewExtractor creates an Extractor resolving links against origin
// (e.g., "https://eu.finalfantasyxiv.com").
func NewExtractor(origin string, opts ...Option) *Extractor {
	e := &Extractor{origin: origin}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractSearch parses a search listing and returns its characters.
func (e *Extractor) ExtractSearch(html string, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return xivchar.ExtractSearch(doc, e.origin, q, e.onMalformed), nil
}

// ExtractDetail parses a character profile page.
func (e *Extractor) ExtractDetail(html string, id string) (*xivchar.CharacterDetail, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return xivchar.ExtractDetail(doc, e.origin, id, e.onMalformed)
}

// ExtractWorlds parses the world status page.
func (e *Extractor) ExtractWorlds(html string) ([]xivchar.Area, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return xivchar.ExtractWorlds(doc), nil
}
