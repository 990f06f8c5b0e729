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

// ListInbox serves both tabs of the inbox. The view query parameter selects
// the side; rows the caller dismissed are already filtered out by the engine.
func ListInbox(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view := sharing.InboxView(ctx.DefaultQuery("view", string(sharing.ViewReceived)))

	if view != sharing.ViewReceived && view != sharing.ViewSent {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "view must be 'received' or 'sent'"})
		return
	}

	items, err := sharing.NewEngine(db.DB).ListInbox(userID, view)

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	now := time.Now()
	response := make([]types.InboxItemResponse, 0, len(items))

	for _, item := range items {
		response = append(response, inboxItemResponse(item, now))
	}

	ctx.JSON(http.StatusOK, response)
}

func inboxItemResponse(item models.SharedItem, now time.Time) types.InboxItemResponse {
	locked := item.ItemType == models.ItemTypeLetter && sharing.IsLocked(item.UnlockDate, now)

	return types.InboxItemResponse{
		ID:             item.ID,
		ItemType:       item.ItemType,
		SourceItemID:   item.SourceItemID,
		SenderEmail:    item.Sender.Email,
		RecipientEmail: item.Recipient.Email,
		PersonalNote:   item.PersonalNote,
		UnlockDate:     item.UnlockDate,
		Locked:         locked,
		CreatedAt:      item.CreatedAt,
	}
}

// DeleteInboxCopy removes the caller's copy only; the other party's inbox and
// the source item stay as they are.
func DeleteInboxCopy(ctx *gin.Context) {
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

	if err := sharing.NewEngine(db.DB).DeleteInboxCopy(userID, uint(id)); err != nil {
		respondEngineError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
