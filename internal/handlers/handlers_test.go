package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/timecapsule-dev/timecapsule/db"
	"github.com/timecapsule-dev/timecapsule/internal/middleware"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens a per-test in-memory database and points the package-global
// handle at it, so handlers under test hit the same store as the assertions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.BucketListItem{},
		&models.FutureLetter{},
		&models.Favorite{},
		&models.Capsule{},
		&models.CapsuleMembership{},
		&models.CapsuleJournal{},
		&models.CapsuleBucketItem{},
		&models.CapsuleLetter{},
		&models.CapsuleFavorite{},
		&models.SharedItem{},
	)
	require.NoError(t, err)

	db.DB = database
	return database
}

func createUser(t *testing.T, database *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, database.Create(&user).Error)
	return user
}

// testRouter builds a router with a stub session layer: every request runs as
// whoever *current points at. Tests switch identity by reassigning the
// pointed-at user between requests.
func testRouter(current *models.User, register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()

	r.Use(func(ctx *gin.Context) {
		if current != nil && current.ID != 0 {
			ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{
				ID:    current.ID,
				Name:  current.Name,
				Email: current.Email,
			})
		}
		ctx.Next()
	})

	register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), "body: %s", w.Body.String())
}
