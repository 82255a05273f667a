package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsight/courtside/internal/cache"
	"github.com/hoopsight/courtside/internal/query"
	"github.com/hoopsight/courtside/internal/resolve"
)

// TeamService answers leading-scorer queries.
type TeamService struct {
	engine *query.Engine
	cache  *cache.RedisCache
	ttl    time.Duration
}

// NewTeamService creates a new team service. A nil cache is allowed and
// disables caching.
func NewTeamService(engine *query.Engine, c *cache.RedisCache, ttl time.Duration) *TeamService {
	return &TeamService{engine: engine, cache: c, ttl: ttl}
}

// TopScorers resolves a team query to its all-time leading scorers.
func (s *TeamService) TopScorers(ctx context.Context, teamQuery string, limit int) (*query.TeamSummary, error) {
	if limit <= 0 {
		limit = query.DefaultScorersLimit
	}
	key := fmt.Sprintf("scorers:%s:%d", resolve.Normalize(teamQuery), limit)
	return fetchCached(ctx, s.cache, s.ttl, key, func() (*query.TeamSummary, error) {
		return s.engine.TopScorers(teamQuery, limit)
	})
}
