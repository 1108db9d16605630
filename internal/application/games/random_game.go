package games

import (
	"context"
	"errors"
	"math/rand"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
)

// ErrNoGames is returned when the catalog has nothing to pick from.
var ErrNoGames = errors.New("no games available")

// RandomGame picks one game at random from a fixed pool of app IDs.
type RandomGame struct {
	catalog ports.GameCatalog
	pool    []int
}

// NewRandomGame builds the use case with the app ID pool to draw from.
func NewRandomGame(catalog ports.GameCatalog, pool []int) *RandomGame {
	return &RandomGame{catalog: catalog, pool: pool}
}

// Execute fetches details for a randomly chosen app ID.
func (uc *RandomGame) Execute(ctx context.Context) (*domain.Game, error) {
	if len(uc.pool) == 0 {
		return nil, ErrNoGames
	}
	appID := uc.pool[rand.Intn(len(uc.pool))]
	game, err := uc.catalog.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNoGames
	}
	return game, nil
}
