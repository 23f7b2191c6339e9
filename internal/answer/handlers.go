// Package answer implements the builtin query handlers.
//
// Each handler takes the wildcard bindings captured by a pattern match,
// consults the TMDB API, and returns raw answer lines. Handlers never
// truncate: the presentation layer owns the result limit. An empty slice
// means the question was understood but has no answer.
package answer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/marquee/internal/tmdb"
	"github.com/aretw0/marquee/pkg/domain"
)

const jobDirector = "Director"

// earliestYear anchors open-ended "before" queries. TMDB has nothing useful
// earlier than this.
const earliestYear = 1900

// Service holds the dependencies shared by every builtin handler.
type Service struct {
	api *tmdb.Client
	now func() time.Time
}

// NewService builds a handler service on top of a TMDB client.
func NewService(api *tmdb.Client) *Service {
	return &Service{api: api, now: time.Now}
}

// TitleByYear answers "what movies were made in _".
func (s *Service) TitleByYear(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "title_by_year"); err != nil {
		return nil, err
	}
	year, err := parseYear(bindings[0])
	if err != nil {
		return nil, err
	}
	movies, err := s.api.DiscoverMoviesByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return movieTitles(movies), nil
}

// TitleByYearRange answers "what movies were made between _ and _".
func (s *Service) TitleByYearRange(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 2, "title_by_year_range"); err != nil {
		return nil, err
	}
	from, err := parseYear(bindings[0])
	if err != nil {
		return nil, err
	}
	to, err := parseYear(bindings[1])
	if err != nil {
		return nil, err
	}
	movies, err := s.api.DiscoverMoviesByYearRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return movieTitles(movies), nil
}

// TitleBeforeYear answers "what movies were made before _".
func (s *Service) TitleBeforeYear(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "title_before_year"); err != nil {
		return nil, err
	}
	year, err := parseYear(bindings[0])
	if err != nil {
		return nil, err
	}
	movies, err := s.api.DiscoverMoviesByYearRange(ctx, earliestYear, year-1)
	if err != nil {
		return nil, err
	}
	return movieTitles(movies), nil
}

// TitleAfterYear answers "what movies were made after _". The range is open
// on the right up to the current year.
func (s *Service) TitleAfterYear(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "title_after_year"); err != nil {
		return nil, err
	}
	year, err := parseYear(bindings[0])
	if err != nil {
		return nil, err
	}
	movies, err := s.api.DiscoverMoviesByYearRange(ctx, year+1, s.now().Year())
	if err != nil {
		return nil, err
	}
	return movieTitles(movies), nil
}

// DirectorByTitle answers "who directed %" and "who was the director of %".
// The best title match wins; all of its credited directors are returned.
func (s *Service) DirectorByTitle(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "director_by_title"); err != nil {
		return nil, err
	}
	details, err := s.bestMatchDetails(ctx, bindings[0])
	if err != nil || details == nil {
		return nil, err
	}
	var directors []string
	for _, member := range details.Credits.Crew {
		if member.Job == jobDirector {
			directors = append(directors, member.Name)
		}
	}
	return directors, nil
}

// TitleByDirector answers "what movies were directed by %".
func (s *Service) TitleByDirector(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "title_by_director"); err != nil {
		return nil, err
	}
	credits, err := s.bestMatchCredits(ctx, bindings[0])
	if err != nil || credits == nil {
		return nil, err
	}
	var titles []string
	for _, movie := range credits.Crew {
		if movie.Job == jobDirector {
			titles = append(titles, movie.Title)
		}
	}
	return titles, nil
}

// ActorsByTitle answers "who acted in %".
func (s *Service) ActorsByTitle(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "actors_by_title"); err != nil {
		return nil, err
	}
	details, err := s.bestMatchDetails(ctx, bindings[0])
	if err != nil || details == nil {
		return nil, err
	}
	var actors []string
	for _, member := range details.Credits.Cast {
		actors = append(actors, member.Name)
	}
	return actors, nil
}

// YearByTitle answers "when was % made".
func (s *Service) YearByTitle(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "year_by_title"); err != nil {
		return nil, err
	}
	movies, err := s.api.SearchMovies(ctx, bindings[0])
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	year := movies[0].Year()
	if year == "" {
		return nil, nil
	}
	return []string{year}, nil
}

// TitleByActor answers "in what movies did % appear".
func (s *Service) TitleByActor(ctx context.Context, bindings []string) ([]string, error) {
	if err := need(bindings, 1, "title_by_actor"); err != nil {
		return nil, err
	}
	credits, err := s.bestMatchCredits(ctx, bindings[0])
	if err != nil || credits == nil {
		return nil, err
	}
	var titles []string
	for _, movie := range credits.Cast {
		titles = append(titles, movie.Title)
	}
	return titles, nil
}

// Bye ends the session.
func (s *Service) Bye(ctx context.Context, bindings []string) ([]string, error) {
	return nil, domain.ErrSessionEnd
}

// bestMatchDetails resolves a free-text title to its top search hit and
// fetches that movie with credits. A nil result means no hit.
func (s *Service) bestMatchDetails(ctx context.Context, title string) (*tmdb.MovieDetails, error) {
	movies, err := s.api.SearchMovies(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, nil
	}
	return s.api.MovieDetails(ctx, movies[0].ID)
}

// bestMatchCredits resolves a free-text person name to its top search hit
// and fetches that person's movie credits. A nil result means no hit.
func (s *Service) bestMatchCredits(ctx context.Context, name string) (*tmdb.PersonCredits, error) {
	people, err := s.api.SearchPeople(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, nil
	}
	return s.api.PersonMovieCredits(ctx, people[0].ID)
}

func movieTitles(movies []tmdb.Movie) []string {
	var titles []string
	for _, movie := range movies {
		titles = append(titles, movie.Title)
	}
	return titles
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse year %q: %w", s, err)
	}
	return year, nil
}

// need rejects calls whose binding count does not fit the handler. This only
// fires when a user card wires a handler to a template with the wrong number
// of wildcards.
func need(bindings []string, n int, handler string) error {
	if len(bindings) != n {
		return fmt.Errorf("%s expects %d binding(s), got %d", handler, n, len(bindings))
	}
	return nil
}
