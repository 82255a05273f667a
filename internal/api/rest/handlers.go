package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hoopsight/courtside/internal/cache"
	"github.com/hoopsight/courtside/internal/query"
	"github.com/hoopsight/courtside/internal/resolve"
	"github.com/hoopsight/courtside/internal/service"
	"github.com/hoopsight/courtside/internal/store"
)

const suggestionLimit = 3

// Handler contains dependencies for HTTP handlers
type Handler struct {
	catalog        *store.Catalog
	playerService  *service.PlayerService
	teamService    *service.TeamService
	matchupService *service.MatchupService
}

// NewHandler creates a new handler over the given catalog. The cache may
// be nil, in which case every query recomputes.
func NewHandler(catalog *store.Catalog, c *cache.RedisCache, cacheTTL time.Duration) *Handler {
	engine := query.NewEngine(catalog)
	return &Handler{
		catalog:        catalog,
		playerService:  service.NewPlayerService(engine, c, cacheTTL),
		teamService:    service.NewTeamService(engine, c, cacheTTL),
		matchupService: service.NewMatchupService(engine, c, cacheTTL),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	snap := h.catalog.Snapshot()
	if snap == nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "courtside",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"service":      "courtside",
		"player_games": len(snap.PlayerGames),
		"team_games":   len(snap.TeamGames),
		"teams":        len(snap.Directory),
	})
}

// GetCareerSummary returns a player's career averages and team history
func (h *Handler) GetCareerSummary(w http.ResponseWriter, r *http.Request) {
	playerQuery := r.URL.Query().Get("q")
	if playerQuery == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	summary, err := h.playerService.CareerSummary(r.Context(), playerQuery)
	if err != nil {
		h.respondQueryError(w, err, h.playerSuggestions(playerQuery))
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetTopScorers returns a team's all-time leading scorers
func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	teamQuery := r.URL.Query().Get("q")
	if teamQuery == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	limitStr := r.URL.Query().Get("limit")
	limit := query.DefaultScorersLimit
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 50 {
			limit = l
		}
	}

	summary, err := h.teamService.TopScorers(r.Context(), teamQuery, limit)
	if err != nil {
		h.respondQueryError(w, err, h.teamSuggestions(teamQuery))
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetMatchup returns the head-to-head record between two teams
func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	team1 := r.URL.Query().Get("team1")
	team2 := r.URL.Query().Get("team2")
	if team1 == "" || team2 == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameters 'team1' and 'team2'", nil)
		return
	}

	summary, err := h.matchupService.Matchup(r.Context(), team1, team2)
	if err != nil {
		// Suggest against whichever side failed; the error names it.
		failed := team1
		if _, ok := resolve.Teams(h.directory(), team1); ok {
			failed = team2
		}
		h.respondQueryError(w, err, h.teamSuggestions(failed))
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetTeams returns the team directory
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	snap := h.catalog.Snapshot()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "Record store unavailable", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": snap.Directory})
}

func (h *Handler) directory() []store.TeamDirectoryEntry {
	if snap := h.catalog.Snapshot(); snap != nil {
		return snap.Directory
	}
	return nil
}

// teamSuggestions offers close directory names for a failed team query.
func (h *Handler) teamSuggestions(teamQuery string) []string {
	dir := h.directory()
	candidates := make([]string, 0, len(dir))
	for _, entry := range dir {
		candidates = append(candidates, entry.FullName)
	}
	return resolve.Suggest(teamQuery, candidates, suggestionLimit)
}

// playerSuggestions offers close player names for a failed player query.
func (h *Handler) playerSuggestions(playerQuery string) []string {
	snap := h.catalog.Snapshot()
	if snap == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []string
	for i := range snap.PlayerGames {
		name := snap.PlayerGames[i].PlayerName
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}
	return resolve.Suggest(playerQuery, candidates, suggestionLimit)
}

// respondQueryError maps engine errors onto HTTP statuses. NotFound and
// malformed-query are normal outcomes, not faults; only unknown errors
// surface as 500.
func (h *Handler) respondQueryError(w http.ResponseWriter, err error, suggestions []string) {
	switch {
	case errors.Is(err, query.ErrEmptyQuery):
		respondError(w, http.StatusBadRequest, "Query must not be empty", err)
	case errors.Is(err, query.ErrPlayerNotFound):
		respondNotFound(w, "Player not found", err, suggestions)
	case errors.Is(err, query.ErrTeamNotFound):
		respondNotFound(w, "Team not found", err, suggestions)
	case errors.Is(err, query.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Record store unavailable", err)
	default:
		respondError(w, http.StatusInternalServerError, "Query failed", err)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}

// respondNotFound writes a 404 with optional "did you mean" suggestions
func respondNotFound(w http.ResponseWriter, message string, err error, suggestions []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)

	response := map[string]interface{}{
		"error":  message,
		"status": http.StatusNotFound,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	if len(suggestions) > 0 {
		response["suggestions"] = suggestions
	}

	json.NewEncoder(w).Encode(response)
}
