package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeStorefront(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/appdetails", func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("appids")
		switch appID {
		case "10":
			fmt.Fprintf(w, `{"10":{"success":true,"data":{
				"name":"Cheap RPG",
				"price_overview":{"final":999,"final_formatted":"$9.99"},
				"genres":[{"description":"RPG"},{"description":"Indie"}],
				"header_image":"https://cdn.example/10.jpg",
				"short_description":"A cheap RPG.",
				"release_date":{"date":"1 Jan, 2020"}}}}`)
		case "30":
			// Free game: no price_overview block at all.
			fmt.Fprintf(w, `{"30":{"success":true,"data":{
				"name":"Free Indie",
				"genres":[{"description":"Indie"}],
				"release_date":{"date":"5 May, 2021"}}}}`)
		default:
			fmt.Fprintf(w, `{%q:{"success":false}}`, appID)
		}
	})
	mux.HandleFunc("/appreviews/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/appreviews/10" {
			fmt.Fprint(w, `{"query_summary":{"review_score":8,"review_score_desc":"Very Positive"}}`)
			return
		}
		fmt.Fprint(w, `{"query_summary":{}}`)
	})
	mux.HandleFunc("/api/featuredcategories", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"top_sellers":{"items":[{"id":10},{"id":30},{"id":99}]}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSteamClient_GetByAppID(t *testing.T) {
	srv := newFakeStorefront(t)
	c := NewSteamClient(nil, WithBaseURL(srv.URL))

	game, err := c.GetByAppID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Cheap RPG", game.Name)
	assert.InDelta(t, 9.99, game.Price, 0.001)
	assert.Equal(t, "$9.99", game.PriceDisplay)
	assert.Equal(t, []string{"RPG", "Indie"}, game.Genres)
	assert.Equal(t, "Very Positive", game.ReviewSummary)
	assert.InDelta(t, 8, game.Rating, 0.001)
	assert.Equal(t, "1 Jan, 2020", game.ReleaseDate)
}

func TestSteamClient_GetByAppID_FreeGameAndNoReviews(t *testing.T) {
	srv := newFakeStorefront(t)
	c := NewSteamClient(nil, WithBaseURL(srv.URL))

	game, err := c.GetByAppID(context.Background(), 30)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Zero(t, game.Price)
	assert.Equal(t, "Free", game.PriceDisplay)
	assert.Equal(t, "No reviews", game.ReviewSummary)
}

func TestSteamClient_GetByAppID_NotFound(t *testing.T) {
	srv := newFakeStorefront(t)
	c := NewSteamClient(nil, WithBaseURL(srv.URL))

	game, err := c.GetByAppID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestSteamClient_TopSellers(t *testing.T) {
	srv := newFakeStorefront(t)
	c := NewSteamClient(nil, WithBaseURL(srv.URL))

	ids, err := c.TopSellers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{10, 30, 99}, ids)
}

func TestSteamClient_ListAllSkipsMissing(t *testing.T) {
	srv := newFakeStorefront(t)
	c := NewSteamClient([]int{10, 99, 30}, WithBaseURL(srv.URL))

	games, err := c.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Cheap RPG", games[0].Name)
	assert.Equal(t, "Free Indie", games[1].Name)
}

func TestSteamClient_StorefrontDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := NewSteamClient(nil, WithBaseURL(srv.URL))

	_, err := c.GetByAppID(context.Background(), 10)
	assert.Error(t, err)
	_, err = c.TopSellers(context.Background())
	assert.Error(t, err)
}
