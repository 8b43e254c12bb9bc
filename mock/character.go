package mock

import (
	"context"

	"github.com/malippew/xivchar"
)

var _ xivchar.CharacterService = (*CharacterService)(nil)

// CharacterService is a mock implementation of xivchar.CharacterService.
type CharacterService struct {
	SearchCharactersFn  func(ctx context.Context, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error)
	FindCharacterByIDFn func(ctx context.Context, id string) (*xivchar.CharacterDetail, error)
	FindWorldsFn        func(ctx context.Context) ([]xivchar.Area, error)
}

func (s *CharacterService) SearchCharacters(ctx context.Context, q xivchar.SearchQuery) ([]*xivchar.CharacterSummary, error) {
	return s.SearchCharactersFn(ctx, q)
}

func (s *CharacterService) FindCharacterByID(ctx context.Context, id string) (*xivchar.CharacterDetail, error) {
	return s.FindCharacterByIDFn(ctx, id)
}

func (s *CharacterService) FindWorlds(ctx context.Context) ([]xivchar.Area, error) {
	return s.FindWorldsFn(ctx)
}
