// Package catalog implements the game catalog against the Steam
// storefront API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
)

const defaultBaseURL = "https://store.steampowered.com"

// SteamClient fetches game details, reviews, and top sellers from the
// storefront.
type SteamClient struct {
	client  *http.Client
	baseURL string
	country string
	lang    string
	// appIDs is the curated pool served by ListAll.
	appIDs []int
}

// SteamClientOption configures SteamClient.
type SteamClientOption func(*SteamClient)

// WithHTTPClient sets the HTTP client (default: 10s timeout).
func WithHTTPClient(c *http.Client) SteamClientOption {
	return func(s *SteamClient) { s.client = c }
}

// WithBaseURL overrides the storefront URL, used by tests.
func WithBaseURL(url string) SteamClientOption {
	return func(s *SteamClient) { s.baseURL = url }
}

// NewSteamClient returns a client serving the given curated app ID pool.
func NewSteamClient(appIDs []int, opts ...SteamClientOption) *SteamClient {
	s := &SteamClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		country: "us",
		lang:    "en",
		appIDs:  appIDs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type appDetailsEntry struct {
	Success bool `json:"success"`
	Data    struct {
		Name          string `json:"name"`
		PriceOverview struct {
			Final          int    `json:"final"`
			FinalFormatted string `json:"final_formatted"`
		} `json:"price_overview"`
		Genres []struct {
			Description string `json:"description"`
		} `json:"genres"`
		HeaderImage      string `json:"header_image"`
		ShortDescription string `json:"short_description"`
		ReleaseDate      struct {
			Date string `json:"date"`
		} `json:"release_date"`
	} `json:"data"`
}

type appReviewsResponse struct {
	QuerySummary struct {
		ReviewScore     float64 `json:"review_score"`
		ReviewScoreDesc string  `json:"review_score_desc"`
	} `json:"query_summary"`
}

type featuredCategoriesResponse struct {
	TopSellers struct {
		Items []struct {
			ID int `json:"id"`
		} `json:"items"`
	} `json:"top_sellers"`
}

// GetByAppID fetches one game's details plus its review summary. Returns
// (nil, nil) when the storefront reports no data for the app.
func (s *SteamClient) GetByAppID(ctx context.Context, appID int) (*domain.Game, error) {
	url := fmt.Sprintf("%s/api/appdetails?appids=%d&cc=%s&l=%s", s.baseURL, appID, s.country, s.lang)
	var payload map[string]appDetailsEntry
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	entry, ok := payload[strconv.Itoa(appID)]
	if !ok || !entry.Success {
		return nil, nil
	}

	game := &domain.Game{
		AppID:            appID,
		Name:             entry.Data.Name,
		Price:            float64(entry.Data.PriceOverview.Final) / 100,
		PriceDisplay:     entry.Data.PriceOverview.FinalFormatted,
		HeaderImage:      entry.Data.HeaderImage,
		ShortDescription: entry.Data.ShortDescription,
		ReleaseDate:      entry.Data.ReleaseDate.Date,
	}
	if game.PriceDisplay == "" {
		game.PriceDisplay = "Free"
	}
	for _, g := range entry.Data.Genres {
		game.Genres = append(game.Genres, g.Description)
	}

	// Reviews are best-effort; a missing summary does not fail the fetch.
	reviewURL := fmt.Sprintf("%s/appreviews/%d?json=1&num_per_page=1", s.baseURL, appID)
	var reviews appReviewsResponse
	if err := s.getJSON(ctx, reviewURL, &reviews); err == nil && reviews.QuerySummary.ReviewScoreDesc != "" {
		game.ReviewSummary = reviews.QuerySummary.ReviewScoreDesc
		game.Rating = reviews.QuerySummary.ReviewScore
	} else {
		game.ReviewSummary = "No reviews"
	}
	return game, nil
}

// TopSellers returns the current top-selling app IDs in feed order.
func (s *SteamClient) TopSellers(ctx context.Context) ([]int, error) {
	url := fmt.Sprintf("%s/api/featuredcategories?cc=%s&l=%s", s.baseURL, s.country, s.lang)
	var payload featuredCategoriesResponse
	if err := s.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(payload.TopSellers.Items))
	for _, item := range payload.TopSellers.Items {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

// ListAll resolves the curated pool into full entries, skipping apps the
// storefront has no data for.
func (s *SteamClient) ListAll(ctx context.Context) ([]*domain.Game, error) {
	games := make([]*domain.Game, 0, len(s.appIDs))
	for _, appID := range s.appIDs {
		game, err := s.GetByAppID(ctx, appID)
		if err != nil {
			return nil, err
		}
		if game != nil {
			games = append(games, game)
		}
	}
	return games, nil
}

func (s *SteamClient) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("storefront returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

var _ ports.GameCatalog = (*SteamClient)(nil)
