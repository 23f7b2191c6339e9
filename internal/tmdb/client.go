// Package tmdb is a thin client for The Movie Database (TMDB) v3 API.
//
// The client is stateless and safe for concurrent use. It performs no caching,
// no retries, and fetches only the first page of any listing; callers decide
// how much of a result set to keep. Without an API key every call fails fast
// with ErrNoAPIKey instead of touching the network.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aretw0/marquee/internal/logging"
	"github.com/aretw0/marquee/pkg/domain"
)

// DefaultBaseURL is the public TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

const defaultTimeout = 10 * time.Second

// ErrNoAPIKey is returned by every endpoint method when the client holds no
// API key. The dispatcher treats it like any handler failure, so a keyless
// session degrades to "no answer" rather than crashing.
var ErrNoAPIKey = errors.New("tmdb api key not set")

// Client calls the TMDB v3 REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Tests point this at a local fake.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHooks registers lifecycle hooks fired around every outbound request.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// New constructs a Client with defaults applied. An empty apiKey is legal;
// the resulting client returns ErrNoAPIKey from every call.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovies looks up movies by title. Results arrive in TMDB relevance
// order; the first entry is the best match.
func (c *Client) SearchMovies(ctx context.Context, title string) ([]Movie, error) {
	var page movieResults
	q := url.Values{"query": {title}}
	if err := c.get(ctx, "/search/movie", "/search/movie", q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// MovieDetails fetches one movie with its credits appended.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var details MovieDetails
	q := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, "/movie/{id}", "/movie/"+strconv.Itoa(id), q, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// DiscoverMoviesByYear lists movies whose primary release falls in year.
func (c *Client) DiscoverMoviesByYear(ctx context.Context, year int) ([]Movie, error) {
	var page movieResults
	q := url.Values{"primary_release_year": {strconv.Itoa(year)}}
	if err := c.get(ctx, "/discover/movie", "/discover/movie", q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// DiscoverMoviesByYearRange lists movies released between the two years,
// inclusive on both ends.
func (c *Client) DiscoverMoviesByYearRange(ctx context.Context, from, to int) ([]Movie, error) {
	var page movieResults
	q := url.Values{
		"primary_release_date.gte": {fmt.Sprintf("%d-01-01", from)},
		"primary_release_date.lte": {fmt.Sprintf("%d-12-31", to)},
	}
	if err := c.get(ctx, "/discover/movie", "/discover/movie", q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// SearchPeople looks up people (actors, directors) by name.
func (c *Client) SearchPeople(ctx context.Context, name string) ([]Person, error) {
	var page personResults
	q := url.Values{"query": {name}}
	if err := c.get(ctx, "/search/person", "/search/person", q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// PersonMovieCredits fetches a person's full movie credit history, split
// into cast and crew entries.
func (c *Client) PersonMovieCredits(ctx context.Context, personID int) (*PersonCredits, error) {
	var credits PersonCredits
	path := "/person/" + strconv.Itoa(personID) + "/movie_credits"
	if err := c.get(ctx, "/person/{id}/movie_credits", path, nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// get performs one API request. endpoint is the stable label used for hooks
// and logs (no IDs baked in); path is the concrete URL path.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}

	c.fireCall(ctx, endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fireReturn(ctx, endpoint, 0, time.Since(start), true)
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	c.logger.Debug("tmdb request", "endpoint", endpoint, "status", resp.StatusCode, "duration", elapsed)

	if resp.StatusCode != http.StatusOK {
		c.fireReturn(ctx, endpoint, resp.StatusCode, elapsed, true)
		return fmt.Errorf("%s returned %s", endpoint, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.fireReturn(ctx, endpoint, resp.StatusCode, elapsed, true)
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	c.fireReturn(ctx, endpoint, resp.StatusCode, elapsed, false)
	return nil
}

func (c *Client) fireCall(ctx context.Context, endpoint string) {
	if c.hooks.OnAPICall == nil {
		return
	}
	c.hooks.OnAPICall(ctx, &domain.APIEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAPICall},
		Endpoint:  endpoint,
	})
}

func (c *Client) fireReturn(ctx context.Context, endpoint string, status int, d time.Duration, isErr bool) {
	if c.hooks.OnAPIReturn == nil {
		return
	}
	c.hooks.OnAPIReturn(ctx, &domain.APIEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAPIReturn},
		Endpoint:  endpoint,
		Status:    status,
		Duration:  d,
		IsError:   isErr,
	})
}
