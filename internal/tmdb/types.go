package tmdb

import "strings"

// Movie is a single result from the search and discover endpoints.
type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// Year returns the four-digit release year, or "" when the release date is unset.
func (m Movie) Year() string {
	if m.ReleaseDate == "" {
		return ""
	}
	if i := strings.IndexByte(m.ReleaseDate, '-'); i >= 0 {
		return m.ReleaseDate[:i]
	}
	return m.ReleaseDate
}

// Person is a single result from the person search endpoint.
type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is an acting credit on a movie.
type CastMember struct {
	Name string `json:"name"`
}

// CrewMember is a crew credit on a movie.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits holds the cast and crew appended to a movie details response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the /movie/{id} response with credits appended.
type MovieDetails struct {
	Movie
	Credits Credits `json:"credits"`
}

// CreditMovie is one movie entry in a person's credit history. Job is only
// populated on crew entries.
type CreditMovie struct {
	Title string `json:"title"`
	Job   string `json:"job,omitempty"`
}

// PersonCredits is the /person/{id}/movie_credits response.
type PersonCredits struct {
	Cast []CreditMovie `json:"cast"`
	Crew []CreditMovie `json:"crew"`
}

type movieResults struct {
	Results []Movie `json:"results"`
}

type personResults struct {
	Results []Person `json:"results"`
}
