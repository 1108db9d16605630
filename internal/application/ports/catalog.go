package ports

import (
	"context"

	"github.com/playshelf/playshelf/internal/domain"
)

// GameCatalog fetches catalog data from the storefront.
type GameCatalog interface {
	ListAll(ctx context.Context) ([]*domain.Game, error)
	GetByAppID(ctx context.Context, appID int) (*domain.Game, error)
	// TopSellers returns current top-selling app IDs, most popular first.
	TopSellers(ctx context.Context) ([]int, error)
}
