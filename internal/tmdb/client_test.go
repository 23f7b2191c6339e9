package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marquee/pkg/domain"
)

// newFakeTMDB starts a minimal stand-in for the TMDB v3 API. Every route
// rejects requests without an api_key query param, mirroring the real API.
func newFakeTMDB(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits.Add(1)
			if req.URL.Query().Get("api_key") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/search/movie", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("query") == "the matrix" {
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{"id": 603, "title": "The Matrix", "release_date": "1999-03-30"},
					{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15"},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	r.Get("/movie/{id}", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "credits", req.URL.Query().Get("append_to_response"))
		require.Equal(t, "603", chi.URLParam(req, "id"))
		json.NewEncoder(w).Encode(map[string]any{
			"id": 603, "title": "The Matrix", "release_date": "1999-03-30",
			"credits": map[string]any{
				"cast": []map[string]any{{"name": "Keanu Reeves"}, {"name": "Carrie-Anne Moss"}},
				"crew": []map[string]any{
					{"name": "Lana Wachowski", "job": "Director"},
					{"name": "Bill Pope", "job": "Director of Photography"},
				},
			},
		})
	})

	r.Get("/discover/movie", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		switch {
		case q.Get("primary_release_year") == "1999":
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{{"id": 603, "title": "The Matrix", "release_date": "1999-03-30"}},
			})
		case q.Get("primary_release_date.gte") == "1990-01-01" && q.Get("primary_release_date.lte") == "1995-12-31":
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{{"id": 280, "title": "Terminator 2", "release_date": "1991-07-03"}},
			})
		default:
			json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
		}
	})

	r.Get("/search/person", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"id": 6384, "name": "Keanu Reeves"}},
		})
	})

	r.Get("/person/{id}/movie_credits", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "6384", chi.URLParam(req, "id"))
		json.NewEncoder(w).Encode(map[string]any{
			"cast": []map[string]any{{"title": "John Wick"}, {"title": "Speed"}},
			"crew": []map[string]any{{"title": "Man of Tai Chi", "job": "Director"}},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestSearchMovies(t *testing.T) {
	srv, _ := newFakeTMDB(t)
	c := New("k", WithBaseURL(srv.URL))

	movies, err := c.SearchMovies(context.Background(), "the matrix")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, 603, movies[0].ID)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, "1999", movies[0].Year())
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	srv, _ := newFakeTMDB(t)
	c := New("k", WithBaseURL(srv.URL))

	details, err := c.MovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", details.Title)
	require.Len(t, details.Credits.Crew, 2)
	assert.Equal(t, "Director", details.Credits.Crew[0].Job)
	assert.Len(t, details.Credits.Cast, 2)
}

func TestDiscoverMoviesByYear(t *testing.T) {
	srv, _ := newFakeTMDB(t)
	c := New("k", WithBaseURL(srv.URL))

	movies, err := c.DiscoverMoviesByYear(context.Background(), 1999)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
}

func TestDiscoverMoviesByYearRangeDates(t *testing.T) {
	srv, _ := newFakeTMDB(t)
	c := New("k", WithBaseURL(srv.URL))

	movies, err := c.DiscoverMoviesByYearRange(context.Background(), 1990, 1995)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Terminator 2", movies[0].Title)
}

func TestPersonMovieCredits(t *testing.T) {
	srv, _ := newFakeTMDB(t)
	c := New("k", WithBaseURL(srv.URL))

	people, err := c.SearchPeople(context.Background(), "keanu reeves")
	require.NoError(t, err)
	require.Len(t, people, 1)

	credits, err := c.PersonMovieCredits(context.Background(), people[0].ID)
	require.NoError(t, err)
	assert.Len(t, credits.Cast, 2)
	require.Len(t, credits.Crew, 1)
	assert.Equal(t, "Director", credits.Crew[0].Job)
}

func TestMissingAPIKeySkipsNetwork(t *testing.T) {
	srv, hits := newFakeTMDB(t)
	c := New("", WithBaseURL(srv.URL))

	_, err := c.SearchMovies(context.Background(), "anything")
	require.ErrorIs(t, err, ErrNoAPIKey)
	assert.Equal(t, int64(0), hits.Load(), "keyless client must not touch the network")
}

func TestNon200StatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.SearchMovies(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/search/movie")
}

func TestHooksFirePerRequest(t *testing.T) {
	srv, _ := newFakeTMDB(t)

	var calls, returns []string
	var lastStatus int
	hooks := domain.LifecycleHooks{
		OnAPICall: func(ctx context.Context, e *domain.APIEvent) {
			calls = append(calls, e.Endpoint)
		},
		OnAPIReturn: func(ctx context.Context, e *domain.APIEvent) {
			returns = append(returns, e.Endpoint)
			lastStatus = e.Status
		},
	}

	c := New("k", WithBaseURL(srv.URL), WithHooks(hooks))
	_, err := c.MovieDetails(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, []string{"/movie/{id}"}, calls)
	assert.Equal(t, []string{"/movie/{id}"}, returns)
	assert.Equal(t, http.StatusOK, lastStatus)
}

func TestMovieYearFallbacks(t *testing.T) {
	assert.Equal(t, "", Movie{}.Year())
	assert.Equal(t, "1999", Movie{ReleaseDate: "1999-03-30"}.Year())
	assert.Equal(t, "1999", Movie{ReleaseDate: "1999"}.Year())
}
