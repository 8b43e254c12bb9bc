package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/malippew/xivchar"
)

// Ensure LoggingCharacterService implements xivchar.CharacterService.
var _ xivchar.CharacterService = (*LoggingCharacterService)(nil)

// LoggingCharacterService wraps a CharacterService with logging.
type LoggingCharacterService struct {
	next   xivchar.CharacterService
	logger *slog.Logger
}

// NewLoggingCharacterService creates a new LoggingCharacterService.
func NewLoggingCharacterService(next xivchar.CharacterService, logger *slog.Logger) *LoggingCharacterService {
	return &LoggingCharacterService{next: next, logger: logger}
}

// SearchCharacters delegates to the wrapped service and logs the search.
func (s *LoggingCharacterService) SearchCharacters(ctx context.Context, q xivchar.SearchQuery) (chars []*xivchar.CharacterSummary, err error) {
	defer func(begin time.Time) {
		s.logger.Info("character search",
			"name", q.Name,
			"server", q.Server,
			"dataCenter", q.DataCenter,
			"count", len(chars),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchCharacters(ctx, q)
}

// FindCharacterByID delegates to the wrapped service and logs the lookup.
func (s *LoggingCharacterService) FindCharacterByID(ctx context.Context, id string) (detail *xivchar.CharacterDetail, err error) {
	defer func(begin time.Time) {
		jobs := 0
		if detail != nil {
			jobs = len(detail.Jobs)
		}
		s.logger.Info("character detail",
			"id", id,
			"jobs", jobs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCharacterByID(ctx, id)
}

// FindWorlds delegates to the wrapped service and logs the areas found.
func (s *LoggingCharacterService) FindWorlds(ctx context.Context) (areas []xivchar.Area, err error) {
	defer func(begin time.Time) {
		s.logger.Info("world status",
			"count", len(areas),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindWorlds(ctx)
}
