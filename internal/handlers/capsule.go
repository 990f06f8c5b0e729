package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/services"
	"github.com/timecapsule-dev/timecapsule/internal/sharing"
	"github.com/timecapsule-dev/timecapsule/internal/types"
	"github.com/timecapsule-dev/timecapsule/internal/utils"
	"gorm.io/gorm"
)

type CreateCapsuleRequest struct {
	Name             string `json:"name" binding:"required"`
	HasJournal       bool   `json:"has_journal"`
	HasBucketList    bool   `json:"has_bucket_list"`
	HasFutureLetters bool   `json:"has_future_letters"`
	HasFavorites     bool   `json:"has_favorites"`
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func capsuleResponse(capsule models.Capsule) types.CapsuleResponse {
	return types.CapsuleResponse{
		ID:               capsule.ID,
		Name:             capsule.Name,
		OwnerID:          capsule.OwnerID,
		HasJournal:       capsule.HasJournal,
		HasBucketList:    capsule.HasBucketList,
		HasFutureLetters: capsule.HasFutureLetters,
		HasFavorites:     capsule.HasFavorites,
	}
}

// CreateCapsule creates the capsule row and the owner's membership row in one
// transaction, so a failure leaves no half-created capsule behind.
func CreateCapsule(ctx *gin.Context) {
	var body CreateCapsuleRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !body.HasJournal && !body.HasBucketList && !body.HasFutureLetters && !body.HasFavorites {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "At least one feature is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var existing models.Capsule

	err = db.DB.Where("owner_id = ? AND name = ?", userID, body.Name).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A capsule with that name already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking capsule name: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	capsule := models.Capsule{
		OwnerID:          userID,
		Name:             body.Name,
		HasJournal:       body.HasJournal,
		HasBucketList:    body.HasBucketList,
		HasFutureLetters: body.HasFutureLetters,
		HasFavorites:     body.HasFavorites,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&capsule).Error; err != nil {
			return err
		}

		membership := models.CapsuleMembership{
			CapsuleID: capsule.ID,
			UserID:    userID,
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		// A race past the name pre-check lands on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A capsule with that name already exists"})
			return
		}
		log.Printf("Failed to create capsule: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create capsule"})
		return
	}

	ctx.JSON(http.StatusCreated, capsuleResponse(capsule))
}

// ListCapsules returns every capsule the caller owns or is a member of,
// newest first.
func ListCapsules(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var capsules []models.Capsule

	err = db.DB.
		Where("owner_id = ? OR id IN (?)", userID,
			db.DB.Model(&models.CapsuleMembership{}).Select("capsule_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&capsules).Error

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve capsules"})
		return
	}

	response := make([]types.CapsuleResponse, 0, len(capsules))

	for _, capsule := range capsules {
		response = append(response, capsuleResponse(capsule))
	}

	ctx.JSON(http.StatusOK, response)
}

func DeleteCapsule(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	capsuleID := ctx.Param("capsule_id")

	var capsule models.Capsule

	if err := db.DB.Where("id = ? AND owner_id = ?", capsuleID, userID).First(&capsule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Capsule not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve capsule"})
		}
		return
	}

	if err := db.DB.Delete(&capsule).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete capsule"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// InviteMember adds a user to a capsule by email. The notification email is
// best-effort: when it fails the membership stands and the response carries a
// warning instead of an error.
func InviteMember(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	capsuleID, err := strconv.ParseUint(ctx.Param("capsule_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capsule id"})
		return
	}

	var body InviteMemberRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	capsule, err := sharing.NewEngine(db.DB).CapsuleForMember(currentUser.ID, uint(capsuleID))

	if err != nil {
		respondEngineError(ctx, err)
		return
	}

	var invitee models.User

	err = db.DB.Where("email = ?", sharing.NormalizeEmail(body.Email)).First(&invitee).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found with that email"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var existing models.CapsuleMembership

	err = db.DB.Where("capsule_id = ? AND user_id = ?", capsule.ID, invitee.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "This user is already a member of this capsule"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	membership := models.CapsuleMembership{
		CapsuleID: capsule.ID,
		UserID:    invitee.ID,
	}

	if err := db.DB.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "This user is already a member of this capsule"})
			return
		}
		log.Printf("Failed to create membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		return
	}

	response := gin.H{"message": "Member added"}

	email := services.NewEmailServiceFromEnv()

	if email.Enabled() {
		if err := email.SendCapsuleInvite(invitee.Email, currentUser.Email, capsule.Name); err != nil {
			log.Printf("Invite email failed: %v", err)
			response["warning"] = "Member added, but the notification email failed to send"
		}
	}

	ctx.JSON(http.StatusOK, response)
}
