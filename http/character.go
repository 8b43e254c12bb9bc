package http

import (
	"context"
	"strings"
	"time"

	"github.com/malippew/xivchar"
)

// Ensure CharacterService implements xivchar.CharacterService at compile time.
var _ xivchar.CharacterService = (*CharacterService)(nil)

// CharacterService looks up characters by fetching Lodestone pages and
// handing them to an extractor.
type CharacterService struct {
	fetcher   xivchar.Fetcher
	extractor xivchar.Extractor
	origin    string
	delays    []time.Duration
	logger    LogFunc
}

// ServiceOption configures a CharacterService.
type ServiceOption func(*CharacterService)

// WithRetryDelays retries failed fetches once per delay.
// By default a fetch is attempted once.
func WithRetryDelays(delays []time.Duration) ServiceOption {
	return func(s *CharacterService) {
		s.delays = delays
	}
}

// WithRetryLogger sets the function called before each retry.
func WithRetryLogger(fn LogFunc) ServiceOption {
	return func(s *CharacterService) {
		s.logger = fn
	}
}

// NewCharacterService creates a CharacterService for the Lodestone at origin
// (e.g., "https://eu.finalfantasyxiv.com").
func NewCharacterService(fetcher xivchar.Fetcher, extractor xivchar.Extractor, origin string, opts ...ServiceOption) *CharacterService {
	s := &CharacterService{
		fetcher:   fetcher,
		extractor: extractor,
		origin:    origin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchCharacters fetches the search listing for q and extracts it.
func (s *CharacterService) SearchCharacters(ctx context.Context, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	html, err := s.fetch(ctx, xivchar.SearchURL(s.origin, q))
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractSearch(html, q)
}

// FindCharacterByID fetches and extracts a character profile.
func (s *CharacterService) FindCharacterByID(ctx context.Context, id string) (*xivchar.CharacterDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, xivchar.Errorf(xivchar.EINVALID, "character ID required")
	}

	html, err := s.fetch(ctx, xivchar.CharacterURL(s.origin, id))
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractDetail(html, id)
}

// FindWorlds fetches and extracts the world status page.
func (s *CharacterService) FindWorlds(ctx context.Context) ([]xivchar.Area, error) {
	html, err := s.fetch(ctx, xivchar.WorldStatusURL(s.origin))
	if err != nil {
		return nil, err
	}
	return s.extractor.ExtractWorlds(html)
}

// fetch retrieves url and reports any failure as EUPSTREAM.
func (s *CharacterService) fetch(ctx context.Context, url string) (string, error) {
	html, err := FetchWithRetryDelays(ctx, url, s.fetcher.Fetch, s.logger, s.delays)
	if err != nil {
		return "", xivchar.Upstream(err)
	}
	return html, nil
}
