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
)

type CreateJournalEntryRequest struct {
	Text     string `json:"text" binding:"required"`
	ImageURL string `json:"image_url"`
}

func ListJournalEntries(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entries, err := sharing.NewEngine(db.DB).ListJournal(userID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	response := make([]types.JournalEntryResponse, 0, len(entries))

	for _, entry := range entries {
		response = append(response, types.JournalEntryResponse{
			ID:        entry.ID,
			Text:      entry.Text,
			ImageURL:  entry.ImageURL,
			CreatedAt: entry.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateJournalEntry(ctx *gin.Context) {
	var body CreateJournalEntryRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entry := models.JournalEntry{
		UserID:   userID,
		Text:     body.Text,
		ImageURL: body.ImageURL,
	}

	if err := db.DB.Create(&entry).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		return
	}

	ctx.JSON(http.StatusCreated, types.JournalEntryResponse{
		ID:        entry.ID,
		Text:      entry.Text,
		ImageURL:  entry.ImageURL,
		CreatedAt: entry.CreatedAt,
	})
}

// GetJournalEntry serves the share content viewer: it resolves the row by id
// even after a soft delete, for the owner and share parties only.
func GetJournalEntry(ctx *gin.Context) {
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

	entry, err := sharing.NewEngine(db.DB).GetJournalContent(userID, uint(id))

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.JournalEntryResponse{
		ID:        entry.ID,
		Text:      entry.Text,
		ImageURL:  entry.ImageURL,
		CreatedAt: entry.CreatedAt,
	})
}

func DeleteJournalEntry(ctx *gin.Context) {
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

	if err := sharing.NewEngine(db.DB).SoftDeleteJournal(userID, uint(id)); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
