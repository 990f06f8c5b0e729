package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/types"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
	"gorm.io/gorm"
)

type CreateBucketListItemRequest struct {
	Text string `json:"text" binding:"required"`
}

func ListBucketListItems(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := sharing.NewEngine(db.DB).ListBucketList(userID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	response := make([]types.BucketListItemResponse, 0, len(items))

	for _, item := range items {
		response = append(response, types.BucketListItemResponse{
			ID:         item.ID,
			Text:       item.Text,
			IsComplete: item.IsComplete,
			CreatedAt:  item.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateBucketListItem(ctx *gin.Context) {
	var body CreateBucketListItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	item := models.BucketListItem{
		UserID: userID,
		Text:   body.Text,
	}

	if err := db.DB.Create(&item).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	ctx.JSON(http.StatusCreated, types.BucketListItemResponse{
		ID:         item.ID,
		Text:       item.Text,
		IsComplete: item.IsComplete,
		CreatedAt:  item.CreatedAt,
	})
}

// ToggleBucketListItem flips is_complete on the caller's own item.
func ToggleBucketListItem(ctx *gin.Context) {
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

	var item models.BucketListItem

	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	if err := db.DB.Model(&item).Update("is_complete", !item.IsComplete).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	ctx.JSON(http.StatusOK, types.BucketListItemResponse{
		ID:         item.ID,
		Text:       item.Text,
		IsComplete: item.IsComplete,
		CreatedAt:  item.CreatedAt,
	})
}

func DeleteBucketListItem(ctx *gin.Context) {
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

	if err := sharing.NewEngine(db.DB).DeleteBucketListItem(userID, uint(id)); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
