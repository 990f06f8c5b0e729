package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timecapsule-dev/timecapsule/internal/handlers"
	"github.com/timecapsule-dev/timecapsule/internal/models"
	"github.com/timecapsule-dev/timecapsule/internal/services"
	"github.com/timecapsule-dev/timecapsule/internal/types"
)

func shareRouter(current *models.User) *gin.Engine {
	return testRouter(current, func(r *gin.Engine) {
		r.POST("/functions/share-item", handlers.ShareItem)
		r.GET("/api/inbox", handlers.ListInbox)
		r.DELETE("/api/inbox/:id", handlers.DeleteInboxCopy)
	})
}

func TestShareItemLifecycle(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")
	bob := createUser(t, database, "Bob", "bob@example.com")

	entry := models.JournalEntry{UserID: alice.ID, Text: "our trip to the coast"}
	require.NoError(t, database.Create(&entry).Error)

	current := alice
	r := shareRouter(&current)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "bob@example.com",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
		"personal_note":  "thought of you",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Item types.InboxItemResponse `json:"item"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, bob.Email, created.Item.RecipientEmail)
	assert.Equal(t, alice.Email, created.Item.SenderEmail)

	// Bob's received tab shows one unlocked item carrying the note.
	current = bob
	w = doJSON(t, r, http.MethodGet, "/api/inbox?view=received", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var received []map[string]interface{}
	decodeBody(t, w, &received)
	require.Len(t, received, 1)
	assert.Equal(t, "thought of you", received[0]["personal_note"])
	assert.Equal(t, false, received[0]["locked"])
	assert.Equal(t, "alice@example.com", received[0]["sender_email"])

	// Bob dismisses his copy.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/inbox/%d", created.Item.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/inbox?view=received", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &received)
	assert.Empty(t, received)

	// Alice's sent tab is untouched, and so is her journal entry.
	current = alice
	w = doJSON(t, r, http.MethodGet, "/api/inbox?view=sent", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sent []map[string]interface{}
	decodeBody(t, w, &sent)
	assert.Len(t, sent, 1)

	var source models.JournalEntry
	require.NoError(t, database.First(&source, entry.ID).Error)
	assert.False(t, source.IsDeleted)
}

func TestShareItemUnknownRecipient(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")

	entry := models.JournalEntry{UserID: alice.ID, Text: "to nobody"}
	require.NoError(t, database.Create(&entry).Error)

	r := shareRouter(&alice)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "nobody@example.com",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "Recipient user not found", body["error"])
}

func TestShareItemNormalizesRecipientEmail(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")
	bob := createUser(t, database, "Bob", "bob@example.com")

	entry := models.JournalEntry{UserID: alice.ID, Text: "hello"}
	require.NoError(t, database.Create(&entry).Error)

	r := shareRouter(&alice)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "  Bob@Example.COM ",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Item types.InboxItemResponse `json:"item"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, bob.Email, created.Item.RecipientEmail)
}

// The relay response must never carry the recipient's stored credentials or
// any other profile column beyond the email.
func TestShareItemResponseOmitsRecipientSecrets(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")

	bob := models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "bcrypt-secret-hash"}
	require.NoError(t, database.Create(&bob).Error)

	entry := models.JournalEntry{UserID: alice.ID, Text: "hello"}
	require.NoError(t, database.Create(&entry).Error)

	r := shareRouter(&alice)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "bob@example.com",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.NotContains(t, body, "bcrypt-secret-hash")
	assert.NotContains(t, body, "PasswordHash")
	assert.NotContains(t, body, "Recipient")
}

func TestShareItemRejectsForeignSource(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")
	bob := createUser(t, database, "Bob", "bob@example.com")

	entry := models.JournalEntry{UserID: alice.ID, Text: "alice's entry"}
	require.NoError(t, database.Create(&entry).Error)

	r := shareRouter(&bob)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "alice@example.com",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareItemWarnsWhenEmailFails(t *testing.T) {
	database := newTestDB(t)

	alice := createUser(t, database, "Alice", "alice@example.com")
	createUser(t, database, "Bob", "bob@example.com")

	entry := models.JournalEntry{UserID: alice.ID, Text: "hello"}
	require.NoError(t, database.Create(&entry).Error)

	t.Setenv("EMAILJS_SERVICE_ID", "svc")
	t.Setenv("EMAILJS_TEMPLATE_ID", "tpl")
	t.Setenv("EMAILJS_PUBLIC_KEY", "key")

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mailer down", http.StatusBadGateway)
	}))
	defer stub.Close()

	previous := services.EmailJSEndpoint
	services.EmailJSEndpoint = stub.URL
	defer func() { services.EmailJSEndpoint = previous }()

	r := shareRouter(&alice)

	w := doJSON(t, r, http.MethodPost, "/functions/share-item", gin.H{
		"recipientEmail": "bob@example.com",
		"source_item_id": entry.ID,
		"item_type":      models.ItemTypeJournal,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Contains(t, body, "warning")
	assert.Contains(t, body, "item")
}
