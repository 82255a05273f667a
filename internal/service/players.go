package service

import (
	"context"
	"time"

	"github.com/hoopsight/courtside/internal/cache"
	"github.com/hoopsight/courtside/internal/query"
	"github.com/hoopsight/courtside/internal/resolve"
)

// PlayerService answers career-summary queries.
type PlayerService struct {
	engine *query.Engine
	cache  *cache.RedisCache
	ttl    time.Duration
}

// NewPlayerService creates a new player service. A nil cache is allowed
// and disables caching.
func NewPlayerService(engine *query.Engine, c *cache.RedisCache, ttl time.Duration) *PlayerService {
	return &PlayerService{engine: engine, cache: c, ttl: ttl}
}

// CareerSummary resolves a player query to career averages and team history.
func (s *PlayerService) CareerSummary(ctx context.Context, playerQuery string) (*query.PlayerSummary, error) {
	key := "career:" + resolve.Normalize(playerQuery)
	return fetchCached(ctx, s.cache, s.ttl, key, func() (*query.PlayerSummary, error) {
		return s.engine.CareerSummary(playerQuery)
	})
}
