package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/internal/services"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
)

type PresignUploadRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// PresignJournalImage hands out a presigned PUT URL for a journal image plus
// the public URL to store as image_url. Bytes never pass through the server.
func PresignJournalImage(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body PresignUploadRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	storage := services.NewStorageServiceFromEnv()

	if !storage.Enabled() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	uploadURL, publicURL, err := storage.PresignJournalImage(ctx.Request.Context(), userID, body.Filename)

	if err != nil {
		log.Printf("Failed to presign upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"public_url": publicURL,
	})
}
