package types

import (
	"encoding/json"
	"fmt"
)

// Search categories. Each upstream provider returns a structurally different
// shape, so results are modeled as explicit variants resolved by category tag
// and mapped into one normalized record.
const (
	SearchCategoryMovie = "Movie"
	SearchCategoryBook  = "Book"
	SearchCategorySong  = "Song"
)

// MovieResult is one TMDB search hit.
type MovieResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// BookResult is one Google Books volume.
type BookResult struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title      string   `json:"title"`
		Authors    []string `json:"authors"`
		ImageLinks struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

// SongResult is one Genius search hit.
type SongResult struct {
	Result struct {
		ID                       int    `json:"id"`
		Title                    string `json:"title"`
		ArtistNames              string `json:"artist_names"`
		SongArtImageThumbnailURL string `json:"song_art_image_thumbnail_url"`
	} `json:"result"`
}

// SearchResult is the normalized shape a favorite is created from.
type SearchResult struct {
	Category string          `json:"category"`
	Title    string          `json:"title"`
	ImageURL string          `json:"image_url,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

const tmdbImageBase = "https://image.tmdb.org/t/p/w500"

func NormalizeMovie(m MovieResult) SearchResult {
	imageURL := ""
	if m.PosterPath != "" {
		imageURL = tmdbImageBase + m.PosterPath
	}

	raw, _ := json.Marshal(m)

	return SearchResult{
		Category: SearchCategoryMovie,
		Title:    m.Title,
		ImageURL: imageURL,
		Metadata: raw,
	}
}

func NormalizeBook(b BookResult) SearchResult {
	raw, _ := json.Marshal(b)

	return SearchResult{
		Category: SearchCategoryBook,
		Title:    b.VolumeInfo.Title,
		ImageURL: b.VolumeInfo.ImageLinks.Thumbnail,
		Metadata: raw,
	}
}

func NormalizeSong(s SongResult) SearchResult {
	raw, _ := json.Marshal(s)

	return SearchResult{
		Category: SearchCategorySong,
		Title:    fmt.Sprintf("%s - %s", s.Result.Title, s.Result.ArtistNames),
		ImageURL: s.Result.SongArtImageThumbnailURL,
		Metadata: raw,
	}
}
