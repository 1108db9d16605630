package games

import (
	"context"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
)

// steamDeckAppID shows up in the top sellers feed but is hardware, not a
// game.
const steamDeckAppID = 1675200

// TrendingGames resolves the storefront's current top sellers into full
// catalog entries.
type TrendingGames struct {
	catalog ports.GameCatalog
}

// NewTrendingGames builds the use case.
func NewTrendingGames(catalog ports.GameCatalog) *TrendingGames {
	return &TrendingGames{catalog: catalog}
}

// Execute returns up to limit trending games, de-duplicated and in feed
// order. Entries whose details cannot be fetched are skipped rather than
// failing the whole listing.
func (uc *TrendingGames) Execute(ctx context.Context, limit int) ([]*domain.Game, error) {
	if limit <= 0 {
		limit = 10
	}
	appIDs, err := uc.catalog.TopSellers(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{steamDeckAppID: true}
	trending := make([]*domain.Game, 0, limit)
	for _, appID := range appIDs {
		if seen[appID] {
			continue
		}
		seen[appID] = true
		game, err := uc.catalog.GetByAppID(ctx, appID)
		if err != nil || game == nil {
			continue
		}
		trending = append(trending, game)
		if len(trending) >= limit {
			break
		}
	}
	return trending, nil
}
