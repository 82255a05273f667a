package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsight/courtside/internal/cache"
	"github.com/hoopsight/courtside/internal/query"
	"github.com/hoopsight/courtside/internal/resolve"
)

// MatchupService answers head-to-head queries.
type MatchupService struct {
	engine *query.Engine
	cache  *cache.RedisCache
	ttl    time.Duration
}

// NewMatchupService creates a new matchup service. A nil cache is allowed
// and disables caching.
func NewMatchupService(engine *query.Engine, c *cache.RedisCache, ttl time.Duration) *MatchupService {
	return &MatchupService{engine: engine, cache: c, ttl: ttl}
}

// Matchup resolves two team queries to their historical head-to-head
// record. The key is orientation-sensitive: team1/team2 order is part of
// the response shape, so "lakers vs celtics" and "celtics vs lakers" cache
// separately.
func (s *MatchupService) Matchup(ctx context.Context, team1Query, team2Query string) (*query.MatchupSummary, error) {
	key := fmt.Sprintf("matchup:%s:%s", resolve.Normalize(team1Query), resolve.Normalize(team2Query))
	return fetchCached(ctx, s.cache, s.ttl, key, func() (*query.MatchupSummary, error) {
		return s.engine.Matchup(team1Query, team2Query)
	})
}
