package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timecapsule-dev/timecapsule/internal/handlers"
	"github.com/timecapsule-dev/timecapsule/internal/models"
)

func lettersRouter(current *models.User) *gin.Engine {
	return testRouter(current, func(r *gin.Engine) {
		r.GET("/api/letters", handlers.ListFutureLetters)
		r.POST("/api/letters", handlers.CreateFutureLetter)
		r.GET("/api/letters/:id", handlers.GetFutureLetter)
		r.DELETE("/api/letters/:id", handlers.DeleteFutureLetter)
	})
}

// A sealed letter is listed but its text is withheld from everyone, the
// author included, until its unlock day arrives.
func TestLockedLetterTextIsMasked(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")

	sealed := models.FutureLetter{
		UserID:     alice.ID,
		Text:       "open me next year",
		UnlockDate: time.Now().AddDate(1, 0, 0),
	}
	open := models.FutureLetter{
		UserID:     alice.ID,
		Text:       "open me now",
		UnlockDate: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, database.Create(&sealed).Error)
	require.NoError(t, database.Create(&open).Error)

	r := lettersRouter(&alice)

	w := doJSON(t, r, http.MethodGet, "/api/letters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var letters []map[string]interface{}
	decodeBody(t, w, &letters)
	require.Len(t, letters, 2)

	for _, letter := range letters {
		if letter["locked"] == true {
			assert.NotContains(t, letter, "text")
		} else {
			assert.Equal(t, "open me now", letter["text"])
		}
	}
}

func TestGetLetterMasksLockedText(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")

	sealed := models.FutureLetter{
		UserID:     alice.ID,
		Text:       "patience",
		UnlockDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, database.Create(&sealed).Error)

	r := lettersRouter(&alice)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/letters/%d", sealed.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Equal(t, true, body["locked"])
	assert.NotContains(t, body, "text")
}

func TestDeleteLetterIsSoft(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")

	letter := models.FutureLetter{
		UserID:     alice.ID,
		Text:       "gone from view",
		UnlockDate: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, database.Create(&letter).Error)

	r := lettersRouter(&alice)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/letters/%d", letter.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/letters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var letters []map[string]interface{}
	decodeBody(t, w, &letters)
	assert.Empty(t, letters)

	// The row itself survives: shares referencing it stay readable.
	var stored models.FutureLetter
	require.NoError(t, database.First(&stored, letter.ID).Error)
	assert.True(t, stored.IsDeleted)
}
