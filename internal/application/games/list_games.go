// Package games holds the catalog lookup and filtering use cases. These
// are plain data-fetch-and-filter operations with no consistency concerns
// of their own.
package games

import (
	"context"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
)

// ListGamesInput optionally narrows the listing to the caller's
// preferences. Nil preferences return the full catalog.
type ListGamesInput struct {
	Preferences *domain.Preferences
}

// ListGamesResult is the (possibly filtered) catalog.
type ListGamesResult struct {
	Games []*domain.Game
}

// ListGames fetches the catalog and applies preference filtering.
type ListGames struct {
	catalog ports.GameCatalog
}

// NewListGames builds the use case.
func NewListGames(catalog ports.GameCatalog) *ListGames {
	return &ListGames{catalog: catalog}
}

// Execute returns every game matching the preferences.
func (uc *ListGames) Execute(ctx context.Context, input ListGamesInput) (*ListGamesResult, error) {
	all, err := uc.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if input.Preferences == nil {
		return &ListGamesResult{Games: all}, nil
	}
	filtered := make([]*domain.Game, 0, len(all))
	for _, g := range all {
		if input.Preferences.Matches(g) {
			filtered = append(filtered, g)
		}
	}
	return &ListGamesResult{Games: filtered}, nil
}
