package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/application/games"
	"github.com/playshelf/playshelf/internal/domain"
	"github.com/playshelf/playshelf/internal/infrastructure/http/middleware"
)

// GamesHandler exposes the catalog lookups.
type GamesHandler struct {
	list     *games.ListGames
	random   *games.RandomGame
	trending *games.TrendingGames
	log      zerolog.Logger
}

// NewGamesHandler wires the use cases.
func NewGamesHandler(list *games.ListGames, random *games.RandomGame, trending *games.TrendingGames, log zerolog.Logger) *GamesHandler {
	return &GamesHandler{list: list, random: random, trending: trending, log: log}
}

// List handles GET /api/games. A signed-in caller gets the catalog
// filtered by their preferences; anonymous callers get everything.
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	var prefs *domain.Preferences
	if user := middleware.UserFromContext(r.Context()); user != nil {
		prefs = user.Preferences
	}
	result, err := h.list.Execute(r.Context(), games.ListGamesInput{Preferences: prefs})
	if err != nil {
		h.log.Error().Err(err).Msg("list games failed")
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": result.Games})
}

// Random handles GET /api/games/random.
func (h *GamesHandler) Random(w http.ResponseWriter, r *http.Request) {
	game, err := h.random.Execute(r.Context())
	if err != nil {
		if errors.Is(err, games.ErrNoGames) {
			writeErr(w, http.StatusNotFound, "game not found")
			return
		}
		h.log.Error().Err(err).Msg("random game failed")
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// Trending handles GET /api/games/trending?limit=N.
func (h *GamesHandler) Trending(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	trending, err := h.trending.Execute(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("trending games failed")
		writeErr(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"games": trending})
}
