package answer

import (
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/registry"
)

// Register mounts every builtin handler under its table name.
func (s *Service) Register(reg *registry.Registry) {
	reg.Register("title_by_year", s.TitleByYear)
	reg.Register("title_by_year_range", s.TitleByYearRange)
	reg.Register("title_before_year", s.TitleBeforeYear)
	reg.Register("title_after_year", s.TitleAfterYear)
	reg.Register("director_by_title", s.DirectorByTitle)
	reg.Register("title_by_director", s.TitleByDirector)
	reg.Register("actors_by_title", s.ActorsByTitle)
	reg.Register("year_by_title", s.YearByTitle)
	reg.Register("title_by_actor", s.TitleByActor)
	reg.Register("bye", s.Bye)
}

// Builtins returns the default pattern table. Order is significant: the
// dispatcher walks it top to bottom and the first match wins, so the
// narrower year templates sit above the free-text ones.
func Builtins() []domain.Card {
	return []domain.Card{
		{ID: "builtin/title_by_year", Template: "what movies were made in _", Handler: "title_by_year",
			Description: "Movies released in a given year."},
		{ID: "builtin/title_by_year_range", Template: "what movies were made between _ and _", Handler: "title_by_year_range",
			Description: "Movies released between two years, inclusive."},
		{ID: "builtin/title_before_year", Template: "what movies were made before _", Handler: "title_before_year",
			Description: "Movies released before a given year."},
		{ID: "builtin/title_after_year", Template: "what movies were made after _", Handler: "title_after_year",
			Description: "Movies released after a given year."},
		{ID: "builtin/director_by_title", Template: "who directed %", Handler: "director_by_title",
			Description: "Directors of the best-matching movie."},
		{ID: "builtin/director_of_title", Template: "who was the director of %", Handler: "director_by_title",
			Description: "Directors of the best-matching movie."},
		{ID: "builtin/title_by_director", Template: "what movies were directed by %", Handler: "title_by_director",
			Description: "Movies directed by the best-matching person."},
		{ID: "builtin/actors_by_title", Template: "who acted in %", Handler: "actors_by_title",
			Description: "Cast of the best-matching movie."},
		{ID: "builtin/year_by_title", Template: "when was % made", Handler: "year_by_title",
			Description: "Release year of the best-matching movie."},
		{ID: "builtin/title_by_actor", Template: "in what movies did % appear", Handler: "title_by_actor",
			Description: "Movies featuring the best-matching person."},
		{ID: "builtin/bye", Template: "bye", Handler: "bye",
			Description: "End the session."},
	}
}
