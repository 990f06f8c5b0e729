package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/types"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
)

type CreateFutureLetterRequest struct {
	Text       string    `json:"text" binding:"required"`
	UnlockDate time.Time `json:"unlock_date" binding:"required"`
}

// letterResponse masks the text while the letter is locked. The owner sees
// the placeholder too: nobody reads a sealed letter early.
func letterResponse(letter models.FutureLetter, now time.Time) types.FutureLetterResponse {
	locked := sharing.IsLocked(&letter.UnlockDate, now)

	response := types.FutureLetterResponse{
		ID:         letter.ID,
		UnlockDate: letter.UnlockDate,
		Locked:     locked,
		CreatedAt:  letter.CreatedAt,
	}

	if !locked {
		response.Text = letter.Text
	}

	return response
}

func ListFutureLetters(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	letters, err := sharing.NewEngine(db.DB).ListFutureLetters(userID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	now := time.Now()
	response := make([]types.FutureLetterResponse, 0, len(letters))

	for _, letter := range letters {
		response = append(response, letterResponse(letter, now))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateFutureLetter(ctx *gin.Context) {
	var body CreateFutureLetterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	letter := models.FutureLetter{
		UserID:     userID,
		Text:       body.Text,
		UnlockDate: body.UnlockDate,
	}

	if err := db.DB.Create(&letter).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save letter"})
		return
	}

	ctx.JSON(http.StatusCreated, letterResponse(letter, time.Now()))
}

// GetFutureLetter serves the share content viewer. Soft-deleted letters stay
// reachable for share parties; locked letters come back as placeholders.
func GetFutureLetter(ctx *gin.Context) {
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

	letter, err := sharing.NewEngine(db.DB).GetLetterContent(userID, uint(id))

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, letterResponse(*letter, time.Now()))
}

func DeleteFutureLetter(ctx *gin.Context) {
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

	if err := sharing.NewEngine(db.DB).SoftDeleteLetter(userID, uint(id)); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
