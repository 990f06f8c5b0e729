package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
)

type CreateCapsuleJournalRequest struct {
	Text     string `json:"text" binding:"required"`
	ImageURL string `json:"image_url"`
}

type CreateCapsuleBucketItemRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateCapsuleLetterRequest struct {
	Text       string    `json:"text" binding:"required"`
	UnlockDate time.Time `json:"unlock_date" binding:"required"`
}

type CreateCapsuleFavoriteRequest struct {
	Category string `json:"category" binding:"required,oneof=Movie Book Song"`
	Title    string `json:"title" binding:"required"`
	Notes    string `json:"notes"`
	ImageURL string `json:"image_url"`
}

// capsuleRequest pulls the authenticated user and the capsule id out of the
// request. Membership and feature checks happen in the engine.
func capsuleRequest(ctx *gin.Context) (uint, uint, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, 0, false
	}

	capsuleID, err := strconv.ParseUint(ctx.Param("capsule_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capsule id"})
		return 0, 0, false
	}

	return userID, uint(capsuleID), true
}

func itemParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("item_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return 0, false
	}

	return uint(id), true
}

// --- Journal ---

func ListCapsuleJournal(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	entries, err := sharing.NewEngine(db.DB).ListCapsuleJournal(userID, capsuleID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

func CreateCapsuleJournal(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	var body CreateCapsuleJournalRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	entry := models.CapsuleJournal{
		Text:     body.Text,
		ImageURL: body.ImageURL,
	}

	if err := sharing.NewEngine(db.DB).CreateCapsuleJournal(userID, capsuleID, &entry); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

func DeleteCapsuleJournal(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	itemID, ok := itemParam(ctx)
	if !ok {
		return
	}

	if err := sharing.NewEngine(db.DB).DeleteCapsuleJournal(userID, capsuleID, itemID); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// --- Bucket list ---

func ListCapsuleBucketList(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	items, err := sharing.NewEngine(db.DB).ListCapsuleBucketList(userID, capsuleID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func CreateCapsuleBucketItem(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	var body CreateCapsuleBucketItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.CapsuleBucketItem{
		Text: body.Text,
	}

	if err := sharing.NewEngine(db.DB).CreateCapsuleBucketItem(userID, capsuleID, &item); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func DeleteCapsuleBucketItem(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	itemID, ok := itemParam(ctx)
	if !ok {
		return
	}

	if err := sharing.NewEngine(db.DB).DeleteCapsuleBucketItem(userID, capsuleID, itemID); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// --- Future letters ---

type capsuleLetterResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Text       string    `json:"text,omitempty"`
	UnlockDate time.Time `json:"unlock_date"`
	Locked     bool      `json:"locked"`
	CreatedAt  time.Time `json:"created_at"`
}

func ListCapsuleLetters(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	letters, err := sharing.NewEngine(db.DB).ListCapsuleLetters(userID, capsuleID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	now := time.Now()
	response := make([]capsuleLetterResponse, 0, len(letters))

	for _, letter := range letters {
		item := capsuleLetterResponse{
			ID:         letter.ID,
			UserID:     letter.UserID,
			UnlockDate: letter.UnlockDate,
			Locked:     sharing.IsLocked(&letter.UnlockDate, now),
			CreatedAt:  letter.CreatedAt,
		}
		if !item.Locked {
			item.Text = letter.Text
		}
		response = append(response, item)
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateCapsuleLetter(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	var body CreateCapsuleLetterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	letter := models.CapsuleLetter{
		Text:       body.Text,
		UnlockDate: body.UnlockDate,
	}

	if err := sharing.NewEngine(db.DB).CreateCapsuleLetter(userID, capsuleID, &letter); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, capsuleLetterResponse{
		ID:         letter.ID,
		UserID:     letter.UserID,
		UnlockDate: letter.UnlockDate,
		Locked:     sharing.IsLocked(&letter.UnlockDate, time.Now()),
		CreatedAt:  letter.CreatedAt,
	})
}

// DeleteCapsuleLetter hard-deletes for every member; locked letters refuse.
func DeleteCapsuleLetter(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	itemID, ok := itemParam(ctx)
	if !ok {
		return
	}

	if err := sharing.NewEngine(db.DB).DeleteCapsuleLetter(userID, capsuleID, itemID, time.Now()); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// --- Favorites ---

func ListCapsuleFavorites(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	favorites, err := sharing.NewEngine(db.DB).ListCapsuleFavorites(userID, capsuleID)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

func CreateCapsuleFavorite(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	var body CreateCapsuleFavoriteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	favorite := models.CapsuleFavorite{
		Category: body.Category,
		Title:    body.Title,
		Notes:    body.Notes,
		ImageURL: body.ImageURL,
	}

	if err := sharing.NewEngine(db.DB).CreateCapsuleFavorite(userID, capsuleID, &favorite); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, favorite)
}

func DeleteCapsuleFavorite(ctx *gin.Context) {
	userID, capsuleID, ok := capsuleRequest(ctx)
	if !ok {
		return
	}

	itemID, ok := itemParam(ctx)
	if !ok {
		return
	}

	if err := sharing.NewEngine(db.DB).DeleteCapsuleFavorite(userID, capsuleID, itemID); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
