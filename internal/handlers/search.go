package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/internal/services"
	"github.com/timecapsule-dev/timecapsule/internal/types"
)

type SearchSongRequest struct {
	Query string `json:"query"`
}

type SearchRequest struct {
	Category string `json:"category" binding:"required,oneof=Movie Book Song"`
	Query    string `json:"query" binding:"required"`
}

// SearchSong proxies a keyword search to the lyrics API and passes the
// upstream JSON through untouched. The access token stays server-side.
func SearchSong(ctx *gin.Context) {
	var body SearchSongRequest

	if err := ctx.BindJSON(&body); err != nil || body.Query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": `Missing "query" parameter.`})
		return
	}

	data, err := services.SearchGeniusRaw(body.Query)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, "application/json", data)
}

// Search dispatches on the category tag and returns normalized results ready
// to be saved as favorites.
func Search(ctx *gin.Context) {
	var body SearchRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var results []types.SearchResult
	var err error

	switch body.Category {
	case types.SearchCategoryMovie:
		results, err = services.SearchMovies(body.Query)
	case types.SearchCategoryBook:
		results, err = services.SearchBooks(body.Query)
	case types.SearchCategorySong:
		results, err = services.SearchSongs(body.Query)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}
