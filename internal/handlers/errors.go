package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
)

// respondEngineError maps engine failures onto HTTP statuses. Anything
// outside the taxonomy is an internal error and gets logged server-side only.
func respondEngineError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, sharing.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, sharing.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, sharing.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, sharing.ErrLockedItem):
		ctx.JSON(http.StatusLocked, gin.H{"error": "Item is still locked"})
	case errors.Is(err, sharing.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	case errors.Is(err, sharing.ErrUpstream):
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
