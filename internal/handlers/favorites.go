package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/types"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
	"gorm.io/datatypes"
)

// CreateFavoriteRequest carries a normalized search result plus the user's
// comments. Category is an explicit tag; the raw upstream payload rides along
// in metadata.
type CreateFavoriteRequest struct {
	Category string `json:"category" binding:"required,oneof=Movie Book Song"`
	Title    string `json:"title" binding:"required"`
	Notes    string `json:"notes"`
	ImageURL string `json:"image_url"`
	Metadata string `json:"metadata"`
}

func ListFavorites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	favorites, err := sharing.NewEngine(db.DB).ListFavorites(userID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	response := make([]types.FavoriteResponse, 0, len(favorites))

	for _, favorite := range favorites {
		response = append(response, types.FavoriteResponse{
			ID:        favorite.ID,
			Category:  favorite.Category,
			Title:     favorite.Title,
			Notes:     favorite.Notes,
			ImageURL:  favorite.ImageURL,
			CreatedAt: favorite.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateFavorite(ctx *gin.Context) {
	var body CreateFavoriteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	favorite := models.Favorite{
		UserID:   userID,
		Category: body.Category,
		Title:    body.Title,
		Notes:    body.Notes,
		ImageURL: body.ImageURL,
	}

	if body.Metadata != "" {
		favorite.Metadata = datatypes.JSON(body.Metadata)
	}

	if err := db.DB.Create(&favorite).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		return
	}

	ctx.JSON(http.StatusCreated, types.FavoriteResponse{
		ID:        favorite.ID,
		Category:  favorite.Category,
		Title:     favorite.Title,
		Notes:     favorite.Notes,
		ImageURL:  favorite.ImageURL,
		CreatedAt: favorite.CreatedAt,
	})
}

func DeleteFavorite(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := sharing.NewEngine(db.DB).DeleteFavorite(userID, uint(id)); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
