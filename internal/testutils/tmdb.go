package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/marquee/internal/tmdb"
)

// FakeTMDB serves canned TMDB v3 responses. Zero-value maps mean the
// corresponding endpoint answers with an empty result set, which is exactly
// what the real API does for unknown queries.
type FakeTMDB struct {
	MoviesByQuery   map[string][]tmdb.Movie
	DetailsByID     map[int]*tmdb.MovieDetails
	MoviesByYear    map[int][]tmdb.Movie
	MoviesByRange   map[[2]int][]tmdb.Movie
	PeopleByQuery   map[string][]tmdb.Person
	CreditsByPerson map[int]*tmdb.PersonCredits
}

// Start runs the fake behind an httptest server that is torn down with the test.
func (f *FakeTMDB) Start(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Get("/search/movie", func(w http.ResponseWriter, req *http.Request) {
		writeResults(w, f.MoviesByQuery[req.URL.Query().Get("query")])
	})

	r.Get("/movie/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		details, ok := f.DetailsByID[id]
		if !ok {
			http.NotFound(w, req)
			return
		}
		writeJSON(w, details)
	})

	r.Get("/discover/movie", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if year := q.Get("primary_release_year"); year != "" {
			y, _ := strconv.Atoi(year)
			writeResults(w, f.MoviesByYear[y])
			return
		}
		key := [2]int{yearOf(q.Get("primary_release_date.gte")), yearOf(q.Get("primary_release_date.lte"))}
		writeResults(w, f.MoviesByRange[key])
	})

	r.Get("/search/person", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"results": orEmptyPeople(f.PeopleByQuery[req.URL.Query().Get("query")])})
	})

	r.Get("/person/{id}/movie_credits", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		credits, ok := f.CreditsByPerson[id]
		if !ok {
			writeJSON(w, &tmdb.PersonCredits{})
			return
		}
		writeJSON(w, credits)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// Client starts the fake and returns a real tmdb client pointed at it.
func (f *FakeTMDB) Client(t *testing.T, opts ...tmdb.Option) *tmdb.Client {
	t.Helper()

	srv := f.Start(t)
	opts = append([]tmdb.Option{tmdb.WithBaseURL(srv.URL)}, opts...)
	return tmdb.New("test-key", opts...)
}

func writeResults(w http.ResponseWriter, movies []tmdb.Movie) {
	if movies == nil {
		movies = []tmdb.Movie{}
	}
	writeJSON(w, map[string]any{"results": movies})
}

func orEmptyPeople(people []tmdb.Person) []tmdb.Person {
	if people == nil {
		return []tmdb.Person{}
	}
	return people
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func yearOf(date string) int {
	year, _ := strconv.Atoi(strings.SplitN(date, "-", 2)[0])
	return year
}
