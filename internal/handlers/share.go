package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/services"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
)

// ShareItemRequest mirrors the share-item function's wire contract.
type ShareItemRequest struct {
	RecipientEmail string     `json:"recipientEmail" binding:"required"`
	SourceItemID   uint       `json:"source_item_id" binding:"required"`
	ItemType       string     `json:"item_type" binding:"required,oneof=journal letter"`
	UnlockDate     *time.Time `json:"unlock_date"`
	PersonalNote   string     `json:"personal_note"`
}

// ShareItem is the privileged share-creation relay. Clients cannot write
// shared_items rows naming another user; this handler resolves the recipient
// by email and performs the insert on their behalf. The notification email is
// best-effort and degrades to a warning.
func ShareItem(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ShareItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, err := sharing.NewEngine(db.DB).CreateShare(
		currentUser.ID,
		body.RecipientEmail,
		body.SourceItemID,
		body.ItemType,
		body.UnlockDate,
		body.PersonalNote,
	)

	if err != nil {
		if errors.Is(err, sharing.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipient user not found"})
			return
		}
		// Everything else is a generic failure with the store message
		// attached for diagnosis, matching the relay contract.
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The response carries the inbox projection, never the raw rows: the
	// recipient's profile stays server-side.
	item.Sender.Email = currentUser.Email
	response := gin.H{"item": inboxItemResponse(*item, time.Now())}

	email := services.NewEmailServiceFromEnv()

	if email.Enabled() {
		if err := email.SendShareNotification(item.Recipient.Email, currentUser.Email, body.PersonalNote); err != nil {
			log.Printf("Share notification email failed: %v", err)
			response["warning"] = "Item shared, but the notification email failed to send"
		}
	}

	ctx.JSON(http.StatusOK, response)
}
