package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/types"
)

// Upstream base URLs, overridable in tests.
var (
	GeniusBaseURL      = "https://api.genius.com"
	TMDBBaseURL        = "https://api.themoviedb.org/3"
	GoogleBooksBaseURL = "https://www.googleapis.com/books/v1"
)

// SearchGeniusRaw proxies a keyword search to Genius and returns the upstream
// response body untouched. The access token never leaves the server.
func SearchGeniusRaw(query string) (json.RawMessage, error) {
	token := os.Getenv("GENIUS_ACCESS_TOKEN")

	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s/search?q=%s", GeniusBaseURL, url.QueryEscape(query)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharing.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: genius returned status %d", sharing.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sharing.ErrUpstream, err)
	}

	return json.RawMessage(body), nil
}

// SearchMovies queries TMDB and normalizes the hits.
func SearchMovies(query string) ([]types.SearchResult, error) {
	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		TMDBBaseURL, url.QueryEscape(os.Getenv("TMDB_API_KEY")), url.QueryEscape(query))

	var payload struct {
		Results []types.MovieResult `json:"results"`
	}
	if err := getJSON(u, &payload); err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(payload.Results))
	for _, m := range payload.Results {
		results = append(results, types.NormalizeMovie(m))
	}
	return results, nil
}

// SearchBooks queries Google Books and normalizes the volumes.
func SearchBooks(query string) ([]types.SearchResult, error) {
	u := fmt.Sprintf("%s/volumes?q=%s&key=%s",
		GoogleBooksBaseURL, url.QueryEscape(query), url.QueryEscape(os.Getenv("GOOGLE_BOOKS_API_KEY")))

	var payload struct {
		Items []types.BookResult `json:"items"`
	}
	if err := getJSON(u, &payload); err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(payload.Items))
	for _, b := range payload.Items {
		results = append(results, types.NormalizeBook(b))
	}
	return results, nil
}

// SearchSongs queries Genius and normalizes the hits.
func SearchSongs(query string) ([]types.SearchResult, error) {
	raw, err := SearchGeniusRaw(query)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Response struct {
			Hits []types.SongResult `json:"hits"`
		} `json:"response"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed genius response: %v", sharing.ErrUpstream, err)
	}

	results := make([]types.SearchResult, 0, len(payload.Response.Hits))
	for _, s := range payload.Response.Hits {
		results = append(results, types.NormalizeSong(s))
	}
	return results, nil
}

func getJSON(u string, dest interface{}) error {
	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("%w: %v", sharing.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: upstream returned status %d", sharing.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", sharing.ErrUpstream, err)
	}

	return nil
}
