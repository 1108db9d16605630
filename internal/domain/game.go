package domain

// Game is a catalog entry as returned by the storefront.
type Game struct {
	AppID            int      `json:"app_id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	PriceDisplay     string   `json:"price_display"`
	Genres           []string `json:"genres"`
	Rating           float64  `json:"rating"`
	ESRB             string   `json:"esrb,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
	HeaderImage      string   `json:"image"`
	ShortDescription string   `json:"short_description"`
	ReleaseDate      string   `json:"release_date"`
	ReviewSummary    string   `json:"review_summary"`
}

// Preferences narrows which catalog entries a user wants to see.
// Zero-valued fields mean "no constraint".
type Preferences struct {
	PreferredGenres []string `json:"preferred_genres,omitempty"`
	MinRating       *float64 `json:"min_rating,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	ESRBRatings     []string `json:"esrb_ratings,omitempty"`
	Platforms       []string `json:"platforms,omitempty"`
}

// Matches reports whether the game satisfies every constraint set on p.
func (p *Preferences) Matches(g *Game) bool {
	if p == nil {
		return true
	}
	if len(p.PreferredGenres) > 0 && !intersects(g.Genres, p.PreferredGenres) {
		return false
	}
	if p.MinRating != nil && g.Rating < *p.MinRating {
		return false
	}
	if p.MaxPrice != nil && g.Price > *p.MaxPrice {
		return false
	}
	if len(p.ESRBRatings) > 0 && !contains(p.ESRBRatings, g.ESRB) {
		return false
	}
	if len(p.Platforms) > 0 && !intersects(g.Platforms, p.Platforms) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
